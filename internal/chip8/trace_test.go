package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTraceCode(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		expected string
	}{
		{"cls", 0x00E0, "cls"},
		{"ret", 0x00EE, "ret"},
		{"jp direct", 0x1234, "jp $234"},
		{"jp V0 indexed", 0xB234, "jp V0, $234"},
		{"call", 0x2234, "call $234"},
		{"se Vx, byte", 0x3234, "se V2, $34"},
		{"se Vx, Vy", 0x5230, "se V2, V3"},
		{"sne Vx, byte", 0x4234, "sne V2, $34"},
		{"sne Vx, Vy", 0x9230, "sne V2, V3"},
		{"ld Vx, byte", 0x6234, "ld V2, $34"},
		{"ld Vx, Vy", 0x8230, "ld V2, V3"},
		{"ld I, addr", 0xA234, "ld I, $234"},
		{"add Vx, byte", 0x7234, "add V2, $34"},
		{"add Vx, Vy", 0x8234, "add V2, V3"},
		{"or Vx, Vy", 0x8231, "or V2, V3"},
		{"and Vx, Vy", 0x8232, "and V2, V3"},
		{"xor Vx, Vy", 0x8233, "xor V2, V3"},
		{"sub Vx, Vy", 0x8235, "sub V2, V3"},
		{"subn Vx, Vy", 0x8237, "subn V2, V3"},
		{"shr Vx", 0x8236, "shr V2"},
		{"shl Vx", 0x823E, "shl V2"},
		{"rnd Vx, byte", 0xC234, "rnd V2, $34"},
		{"drw Vx, Vy, n", 0xD235, "drw V2, V3, $5"},
		{"skp Vx", 0xE29E, "skp V2"},
		{"sknp Vx", 0xE2A1, "sknp V2"},
		{"ld Vx, DT", 0xF207, "ld V2, DT"},
		{"ld Vx, K", 0xF20A, "ld V2, K"},
		{"ld DT, Vx", 0xF215, "ld DT, V2"},
		{"ld ST, Vx", 0xF218, "ld ST, V2"},
		{"add I, Vx", 0xF21E, "add I, V2"},
		{"ld F, Vx", 0xF229, "ld F, V2"},
		{"ld B, Vx", 0xF233, "ld B, V2"},
		{"ld [I], Vx", 0xF255, "ld [I], V2"},
		{"ld Vx, [I]", 0xF265, "ld V2, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := traceCode(decode(tt.opcode), tt.opcode)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTraceCode_Unknown(t *testing.T) {
	result := traceCode(nil, 0xFFFF)
	assert.Equal(t, ".word $FFFF", result)
}
