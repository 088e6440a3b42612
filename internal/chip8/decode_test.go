package chip8

import (
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		expected *chip8cpu.Instruction
	}{
		{"cls", 0x00E0, chip8cpu.ClsInst},
		{"ret", 0x00EE, chip8cpu.RetInst},
		{"jp addr", 0x1234, chip8cpu.JpInst},
		{"call addr", 0x2300, chip8cpu.CallInst},
		{"se Vx, byte", 0x3234, chip8cpu.SeInst},
		{"sne Vx, byte", 0x4234, chip8cpu.SneInst},
		{"se Vx, Vy", 0x5230, chip8cpu.SeInst},
		{"ld Vx, byte", 0x6A05, chip8cpu.LdInst},
		{"add Vx, byte", 0x7305, chip8cpu.AddInst},
		{"ld Vx, Vy", 0x8340, chip8cpu.LdInst},
		{"or Vx, Vy", 0x8341, chip8cpu.OrInst},
		{"and Vx, Vy", 0x8342, chip8cpu.AndInst},
		{"xor Vx, Vy", 0x8343, chip8cpu.XorInst},
		{"add Vx, Vy", 0x8344, chip8cpu.AddInst},
		{"sub Vx, Vy", 0x8345, chip8cpu.SubInst},
		{"shr Vx", 0x8346, chip8cpu.ShrInst},
		{"subn Vx, Vy", 0x8347, chip8cpu.SubnInst},
		{"shl Vx", 0x834E, chip8cpu.ShlInst},
		{"sne Vx, Vy", 0x9230, chip8cpu.SneInst},
		{"ld I, addr", 0xA234, chip8cpu.LdInst},
		{"jp V0, addr", 0xB300, chip8cpu.JpInst},
		{"rnd Vx, byte", 0xC30F, chip8cpu.RndInst},
		{"drw Vx, Vy, n", 0xD235, chip8cpu.DrwInst},
		{"skp Vx", 0xE39E, chip8cpu.SkpInst},
		{"sknp Vx", 0xE3A1, chip8cpu.SknpInst},
		{"ld Vx, DT", 0xF307, chip8cpu.LdInst},
		{"ld DT, Vx", 0xF315, chip8cpu.LdInst},
		{"add I, Vx", 0xF31E, chip8cpu.AddInst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := decode(tt.opcode)
			assert.NotNil(t, ins)
			assert.Equal(t, tt.expected.Name, ins.Name)
		})
	}
}

func TestDecode_Unknown(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
	}{
		{"invalid F family", 0xFFFF},
		{"invalid E family", 0xE3FF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, decode(tt.opcode))
		})
	}
}

func TestRegisterExtraction(t *testing.T) {
	assert.Equal(t, uint16(0x2), registerX(0x8234))
	assert.Equal(t, uint16(0x3), registerY(0x8234))
	assert.Equal(t, uint16(0xF), registerX(0x6F00))
	assert.Equal(t, uint16(0x0), registerY(0x6F0F))
}
