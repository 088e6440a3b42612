package rom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func writeTestROM(t *testing.T, data []byte) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(filename, data, 0o644))
	return filename
}

func TestLoadFile(t *testing.T) {
	data := []byte{0x6A, 0x05, 0x12, 0x00}
	filename := writeTestROM(t, data)

	loaded, err := LoadFile(filename)
	assert.NoError(t, err)
	assert.Equal(t, data, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.ch8"))
	assert.Error(t, err)
}

func TestLoadFile_Empty(t *testing.T) {
	filename := writeTestROM(t, nil)

	_, err := LoadFile(filename)
	assert.True(t, errors.Is(err, ErrEmptyROM))
}

func TestLoadFile_TooLarge(t *testing.T) {
	filename := writeTestROM(t, make([]byte, chip8.MaxProgramSize+1))

	_, err := LoadFile(filename)
	assert.ErrorContains(t, err, "exceeds maximum program size")
}
