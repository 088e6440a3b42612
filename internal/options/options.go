// Package options contains the program options.
package options

// Default emulation settings.
const (
	// DefaultCyclesPerFrame is the number of instructions executed per 60 Hz
	// frame, roughly 600 instructions per second.
	DefaultCyclesPerFrame = 10

	// DefaultScale is the window scaling factor for the 64x32 display.
	DefaultScale = 10
)

// Program options of the emulator.
type Program struct {
	Input string // ROM file to run

	CyclesPerFrame int // instructions executed per frame
	Scale          int // window pixels per framebuffer pixel

	Trace bool // log every executed instruction
	Debug bool // enable debug logging
	Quiet bool // only log errors
}
