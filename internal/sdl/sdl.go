// Package sdl implements the SDL2 frontend for the emulator. It owns the
// window, renders the framebuffer, translates keyboard events to keypad
// state and drives the cycle loop at a fixed frame cadence.
package sdl

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	backgroundColor = 0x000000
	pixelColor      = 0xFFFFFF

	frameRate = 60
)

// Window is the SDL2 frontend for a CHIP-8 system.
type Window struct {
	logger *log.Logger
	sys    *chip8.System

	window  *sdl.Window
	surface *sdl.Surface

	scale          int32
	cyclesPerFrame int
}

// New returns a new SDL2 frontend for the given system.
func New(logger *log.Logger, sys *chip8.System, opts options.Program) *Window {
	return &Window{
		logger:         logger,
		sys:            sys,
		scale:          int32(opts.Scale),
		cyclesPerFrame: opts.CyclesPerFrame,
	}
}

// Setup initialises SDL and creates the main window.
func (w *Window) Setup(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initialising SDL: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		chip8.ScreenWidth*w.scale, chip8.ScreenHeight*w.scale, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	w.window = window

	w.surface, err = window.GetSurface()
	if err != nil {
		return fmt.Errorf("getting window surface: %w", err)
	}

	_ = w.surface.FillRect(nil, backgroundColor)
	return nil
}

// Destroy releases the window resources, to be called before quitting.
func (w *Window) Destroy() {
	if w.window != nil {
		_ = w.window.Destroy()
	}
	sdl.Quit()
}

// Run executes the main emulation loop: a fixed number of instruction
// cycles per frame, one timer tick per frame and a framebuffer redraw.
// It returns when the window is closed, the context is cancelled or the
// emulated program runs into a fatal fault.
func (w *Window) Run(ctx context.Context) error {
	frameDuration := time.Second / frameRate

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		start := time.Now()

		for range w.cyclesPerFrame {
			if err := w.sys.Step(); err != nil {
				return fmt.Errorf("emulated program fault: %w", err)
			}
		}
		w.sys.TickTimers()

		if err := w.render(); err != nil {
			return err
		}

		if w.pollEvents() {
			w.logger.Debug("Window closed")
			return nil
		}

		if remaining := frameDuration - time.Since(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// render draws the framebuffer to the window surface, one scaled rectangle
// per lit pixel.
func (w *Window) render() error {
	if err := w.surface.FillRect(nil, backgroundColor); err != nil {
		return fmt.Errorf("clearing surface: %w", err)
	}

	framebuffer := w.sys.Framebuffer()
	for y := int32(0); y < chip8.ScreenHeight; y++ {
		for x := int32(0); x < chip8.ScreenWidth; x++ {
			if framebuffer[y*chip8.ScreenWidth+x] == 0 {
				continue
			}
			rect := sdl.Rect{X: x * w.scale, Y: y * w.scale, W: w.scale, H: w.scale}
			if err := w.surface.FillRect(&rect, pixelColor); err != nil {
				return fmt.Errorf("drawing pixel: %w", err)
			}
		}
	}

	if err := w.window.UpdateSurface(); err != nil {
		return fmt.Errorf("updating window surface: %w", err)
	}
	return nil
}

// pollEvents processes pending SDL events and reports whether the window
// was closed.
func (w *Window) pollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.KeyboardEvent:
			key := keymap(t.Keysym.Scancode)
			if key == -1 {
				continue
			}
			switch t.GetType() {
			case sdl.KEYDOWN:
				w.sys.SetKey(uint8(key), true)
			case sdl.KEYUP:
				w.sys.SetKey(uint8(key), false)
			}

		case *sdl.QuitEvent:
			return true
		}
	}
	return false
}

// keymap maps keys from a QWERTY keyboard to the CHIP-8 keypad:
//
//	+--------+--------+--------+--------+
//	| 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
//	+--------+--------+--------+--------+
//	| Q -> 4 | W -> 5 | E -> 6 | R -> D |
//	+--------+--------+--------+--------+
//	| A -> 7 | S -> 8 | D -> 9 | F -> E |
//	+--------+--------+--------+--------+
//	| Z -> A | X -> 0 | C -> B | V -> F |
//	+--------+--------+--------+--------+
//
// Unmapped keys return -1.
func keymap(code sdl.Scancode) int8 {
	switch code {
	case sdl.SCANCODE_1:
		return 0x1
	case sdl.SCANCODE_2:
		return 0x2
	case sdl.SCANCODE_3:
		return 0x3
	case sdl.SCANCODE_4:
		return 0xC
	case sdl.SCANCODE_Q:
		return 0x4
	case sdl.SCANCODE_W:
		return 0x5
	case sdl.SCANCODE_E:
		return 0x6
	case sdl.SCANCODE_R:
		return 0xD
	case sdl.SCANCODE_A:
		return 0x7
	case sdl.SCANCODE_S:
		return 0x8
	case sdl.SCANCODE_D:
		return 0x9
	case sdl.SCANCODE_F:
		return 0xE
	case sdl.SCANCODE_Z:
		return 0xA
	case sdl.SCANCODE_X:
		return 0x0
	case sdl.SCANCODE_C:
		return 0xB
	case sdl.SCANCODE_V:
		return 0xF
	default:
		return -1
	}
}
