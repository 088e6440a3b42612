package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// traceCode formats a decoded instruction as assembly for the trace hook.
// Unrecognized words are rendered as raw data.
func traceCode(ins *chip8cpu.Instruction, opcode uint16) string {
	if ins == nil {
		return fmt.Sprintf(".word $%04X", opcode)
	}
	if params := formatParams(ins.Name, opcode); params != "" {
		return fmt.Sprintf("%s %s", ins.Name, params)
	}
	return ins.Name
}

// formatParams formats the parameters of an instruction.
// Returns an empty string for instructions without parameters.
func formatParams(name string, opcode uint16) string {
	switch name {
	case chip8cpu.ClsInst.Name, chip8cpu.RetInst.Name:
		return ""
	case chip8cpu.JpInst.Name:
		return formatJumpParams(opcode)
	case chip8cpu.CallInst.Name:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case chip8cpu.SeInst.Name, chip8cpu.SneInst.Name:
		return formatCompareParams(opcode)
	case chip8cpu.LdInst.Name:
		return formatLoadParams(opcode)
	case chip8cpu.AddInst.Name:
		return formatAddParams(opcode)
	case chip8cpu.OrInst.Name, chip8cpu.AndInst.Name, chip8cpu.XorInst.Name,
		chip8cpu.SubInst.Name, chip8cpu.SubnInst.Name:
		return fmt.Sprintf("V%X, V%X", registerX(opcode), registerY(opcode))
	case chip8cpu.ShrInst.Name, chip8cpu.ShlInst.Name:
		return fmt.Sprintf("V%X", registerX(opcode))
	case chip8cpu.RndInst.Name:
		return fmt.Sprintf("V%X, $%02X", registerX(opcode), opcode&0x00FF)
	case chip8cpu.DrwInst.Name:
		return fmt.Sprintf("V%X, V%X, $%X", registerX(opcode), registerY(opcode), opcode&0x000F)
	case chip8cpu.SkpInst.Name, chip8cpu.SknpInst.Name:
		return fmt.Sprintf("V%X", registerX(opcode))
	}
	return ""
}

// formatJumpParams formats jump parameters (jp addr, jp V0+addr).
func formatJumpParams(opcode uint16) string {
	if opcode&0xF000 == 0xB000 {
		return fmt.Sprintf("V0, $%03X", opcode&0x0FFF)
	}
	return fmt.Sprintf("$%03X", opcode&0x0FFF)
}

// formatCompareParams formats comparison parameters (se/sne with an
// immediate or a second register).
func formatCompareParams(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	}
	return ""
}

// formatLoadParams formats the parameters of the many ld variants.
func formatLoadParams(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xA000:
		return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
	case 0xF000:
		return formatLoadMiscParams(opcode)
	}
	return ""
}

// formatLoadMiscParams formats the 0xF family ld variants, timer, keypad,
// font and register file transfers.
func formatLoadMiscParams(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0x00FF {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

// formatAddParams formats add parameters (immediate, register or index).
func formatAddParams(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xF000:
		return fmt.Sprintf("I, V%X", x)
	}
	return ""
}
