package sdl

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeymap(t *testing.T) {
	tests := []struct {
		name     string
		scancode sdl.Scancode
		expected int8
	}{
		{"digit row", sdl.SCANCODE_1, 0x1},
		{"digit row mapped to C", sdl.SCANCODE_4, 0xC},
		{"top letter row", sdl.SCANCODE_Q, 0x4},
		{"home row", sdl.SCANCODE_S, 0x8},
		{"bottom row mapped to 0", sdl.SCANCODE_X, 0x0},
		{"bottom row mapped to F", sdl.SCANCODE_V, 0xF},
		{"unmapped key", sdl.SCANCODE_P, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keymap(tt.scancode))
		})
	}
}
