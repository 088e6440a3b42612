package chip8

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// decode identifies the instruction encoded by a 16-bit instruction word.
// The word is matched against the opcode table for its first nibble, each
// table entry carries a mask and value pair that selects exactly one
// instruction. A nil result marks an unrecognized word, the cycle driver
// executes those as a no-op instead of failing so that the cycle loop
// always progresses.
func decode(opcode uint16) *chip8cpu.Instruction {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8cpu.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}

// registerX extracts the primary operand register index, bits 8-11 of the
// instruction word.
func registerX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

// registerY extracts the secondary operand register index, bits 4-7 of the
// instruction word.
func registerY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}
