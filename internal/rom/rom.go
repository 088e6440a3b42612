// Package rom handles loading of CHIP-8 ROM image files.
package rom

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// ErrEmptyROM is returned when a ROM file contains no data.
var ErrEmptyROM = errors.New("ROM file is empty")

// LoadFile reads a ROM image from disk and validates that it fits into the
// machine's program memory. The returned bytes are copied verbatim into
// memory at the program start address by the caller.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file '%s': %w", filename, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("loading '%s': %w", filename, ErrEmptyROM)
	}
	if len(data) > chip8.MaxProgramSize {
		return nil, fmt.Errorf("loading '%s': ROM size %d exceeds maximum program size %d",
			filename, len(data), chip8.MaxProgramSize)
	}

	return data, nil
}
