// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Machine Overview
//
// CHIP-8 is an interpreted programming language from the 1970s designed for
// simple games. The machine it describes has 4KB of memory, 16 general
// purpose 8-bit registers (V0-VF), a 16 level call stack, a 16-bit index
// register and a 64x32 monochrome framebuffer.
//
// # Memory Layout
//
//	0x000-0x1FF: interpreter area, holds the font table at FontStart
//	0x200-0xFFF: user program and data area
//
// The package contains only the instruction execution engine: machine state,
// the instruction decoder and the operation handlers. ROM file access,
// windowing, input polling and timer cadence are provided by external
// collaborators that drive Step, TickTimers and SetKey.
package chip8

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// CHIP-8 memory layout constants.
const (
	// MemorySize is the total addressable memory of the machine (4KB).
	MemorySize = 0x1000

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// FontStart is the memory address the built-in font table is installed at.
	FontStart = 0x050

	// MaxProgramSize is the largest ROM image that fits into program memory.
	MaxProgramSize = MemorySize - ProgramStart

	// AddressMask masks a computed address to the 12-bit memory space.
	AddressMask = 0x0FFF
)

// Display and machine dimensions.
const (
	// ScreenWidth is the framebuffer width in pixels.
	ScreenWidth = 64

	// ScreenHeight is the framebuffer height in pixels.
	ScreenHeight = 32

	// StackDepth is the number of call stack levels.
	StackDepth = 16

	// KeyCount is the number of keypad keys.
	KeyCount = 16

	flagRegister = 0xF
	glyphSize    = 5
)

// Call stack faults, fatal to the emulated program.
var (
	// ErrStackOverflow is returned when a call instruction is executed with
	// the call stack already at capacity.
	ErrStackOverflow = errors.New("call stack overflow")

	// ErrStackUnderflow is returned when a return instruction is executed
	// with the call stack already empty.
	ErrStackUnderflow = errors.New("call stack underflow")
)

// TraceFunc is invoked once per executed instruction when tracing is
// enabled. pc is the address the instruction was fetched from, opcode the
// raw instruction word and code the formatted assembly representation.
type TraceFunc func(pc, opcode uint16, code string)

// System is the CHIP-8 machine state. It is owned exclusively by whichever
// execution context drives the cycle loop, one Step is one fully completed
// state transition.
type System struct {
	v      [16]uint8          // general purpose registers, V15 doubles as the flag register
	i      uint16             // index register, used as base pointer by memory and draw instructions
	pc     uint16             // program counter
	sp     uint8              // call stack pointer, 0-16
	stack  [StackDepth]uint16 // return addresses
	memory [MemorySize]uint8  // 4KB addressable memory

	framebuffer [ScreenWidth * ScreenHeight]uint8 // row-major, values 0 or 1

	delayTimer uint8
	soundTimer uint8

	keys [KeyCount]bool

	rand  *rand.Rand
	trace TraceFunc
}

// fontSet is the standard CHIP-8 font, 16 glyphs of 5 bytes each for the
// hexadecimal digits 0-F. ROMs reference it through the glyph address
// instruction, the values have to stay bit-exact.
var fontSet = [80]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Option configures a System on construction.
type Option func(*System)

// WithTrace sets a trace hook that gets invoked once per executed
// instruction. Tracing is off by default.
func WithTrace(trace TraceFunc) Option {
	return func(s *System) {
		s.trace = trace
	}
}

// WithRandomSource sets the random source used by the random number
// instruction. Useful for deterministic tests.
func WithRandomSource(source rand.Source) Option {
	return func(s *System) {
		s.rand = rand.New(source)
	}
}

// New returns a new CHIP-8 system with the font table installed and the
// program counter set to the program start address.
func New(opts ...Option) *System {
	sys := &System{
		pc:   ProgramStart,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	copy(sys.memory[FontStart:], fontSet[:])

	for _, opt := range opts {
		opt(sys)
	}
	return sys
}

// Load copies a ROM image into program memory starting at ProgramStart.
// The bytes are copied verbatim, file access is the caller's concern.
func (s *System) Load(rom []byte) error {
	if len(rom) > MaxProgramSize {
		return fmt.Errorf("ROM size %d exceeds maximum program size %d", len(rom), MaxProgramSize)
	}
	copy(s.memory[ProgramStart:], rom)
	return nil
}

// Framebuffer returns the 64x32 display contents, row-major, one byte per
// pixel with value 0 or 1. The returned slice aliases the machine state and
// must only be read.
func (s *System) Framebuffer() []uint8 {
	return s.framebuffer[:]
}

// SetKey records the pressed state of a keypad key (0-F). Called by the
// hosting frontend when translating host keyboard events.
func (s *System) SetKey(key uint8, down bool) {
	s.keys[key&0xF] = down
}

// TickTimers decrements the delay and sound timers by one if they are
// nonzero. The hosting frontend calls this at a 60 Hz cadence, decoupled
// from the instruction cycle rate.
func (s *System) TickTimers() {
	if s.delayTimer > 0 {
		s.delayTimer--
	}
	if s.soundTimer > 0 {
		s.soundTimer--
	}
}

// SoundActive reports whether the sound timer is running and a tone should
// be emitted.
func (s *System) SoundActive() bool {
	return s.soundTimer > 0
}
