package chip8

import (
	"fmt"
)

// Step executes one fetch-decode-execute cycle: it fetches the big-endian
// 16-bit instruction word at the program counter, advances the counter by 2
// before dispatching so that jump and call handlers do not need to
// compensate, and executes the matched operation handler. Unrecognized
// instruction words are skipped. Timers are not touched, TickTimers is the
// external 60 Hz contract.
func (s *System) Step() error {
	pc := s.pc
	opcode := uint16(s.memory[pc&AddressMask])<<8 | uint16(s.memory[(pc+1)&AddressMask])
	s.pc = (s.pc + 2) & AddressMask

	ins := decode(opcode)
	if s.trace != nil {
		s.trace(pc, opcode, traceCode(ins, opcode))
	}
	if ins == nil {
		return nil // unrecognized word, treated as a skipped cycle
	}

	if err := s.execute(opcode); err != nil {
		return fmt.Errorf("executing opcode $%04X at address $%03X: %w", opcode, pc, err)
	}
	return nil
}

// execute dispatches an instruction word to its operation handler. The
// dispatch key is the top nibble, the 0x0, 0x8, 0xE and 0xF families
// subdivide further on the bottom nibble or byte.
func (s *System) execute(opcode uint16) error {
	x := registerX(opcode)
	y := registerY(opcode)
	n := opcode & 0x000F
	nn := uint8(opcode & 0x00FF)
	nnn := opcode & 0x0FFF

	switch opcode & 0xF000 {
	case 0x0000:
		switch nn {
		case 0xE0: // cls
			s.framebuffer = [ScreenWidth * ScreenHeight]uint8{}
		case 0xEE: // ret
			if s.sp == 0 {
				return ErrStackUnderflow
			}
			s.sp--
			s.pc = s.stack[s.sp]
		}
		// sys is ignored, as on every modern interpreter

	case 0x1000: // jp nnn
		s.pc = nnn

	case 0x2000: // call nnn
		if s.sp == StackDepth {
			return ErrStackOverflow
		}
		s.stack[s.sp] = s.pc
		s.sp++
		s.pc = nnn

	case 0x3000: // se Vx, nn
		if s.v[x] == nn {
			s.skip()
		}

	case 0x4000: // sne Vx, nn
		if s.v[x] != nn {
			s.skip()
		}

	case 0x5000: // se Vx, Vy
		if s.v[x] == s.v[y] {
			s.skip()
		}

	case 0x6000: // ld Vx, nn
		s.v[x] = nn

	case 0x7000: // add Vx, nn - wraps, carry flag untouched
		s.v[x] += nn

	case 0x8000:
		s.executeRegisterOp(opcode, x, y)

	case 0x9000: // sne Vx, Vy
		if s.v[x] != s.v[y] {
			s.skip()
		}

	case 0xA000: // ld I, nnn
		s.i = nnn

	case 0xB000: // jp V0, nnn
		s.pc = (nnn + uint16(s.v[0])) & AddressMask

	case 0xC000: // rnd Vx, nn
		s.v[x] = uint8(s.rand.Intn(256)) & nn

	case 0xD000: // drw Vx, Vy, n
		s.drawSprite(s.v[x], s.v[y], n)

	case 0xE000:
		switch nn {
		case 0x9E: // skp Vx
			if s.keys[s.v[x]&0xF] {
				s.skip()
			}
		case 0xA1: // sknp Vx
			if !s.keys[s.v[x]&0xF] {
				s.skip()
			}
		}

	case 0xF000:
		s.executeMisc(x, nn)
	}
	return nil
}

// executeRegisterOp handles the 0x8 opcode family, register to register
// arithmetic and bitwise operations. The flag register is written last so
// that operations targeting V15 itself still report the correct flag.
func (s *System) executeRegisterOp(opcode, x, y uint16) {
	switch opcode & 0x000F {
	case 0x0: // ld Vx, Vy
		s.v[x] = s.v[y]

	case 0x1: // or Vx, Vy
		s.v[x] |= s.v[y]

	case 0x2: // and Vx, Vy
		s.v[x] &= s.v[y]

	case 0x3: // xor Vx, Vy
		s.v[x] ^= s.v[y]

	case 0x4: // add Vx, Vy - flag is carry
		sum := uint16(s.v[x]) + uint16(s.v[y])
		s.v[x] = uint8(sum)
		if sum > 0xFF {
			s.v[flagRegister] = 1
		} else {
			s.v[flagRegister] = 0
		}

	case 0x5: // sub Vx, Vy - flag is no-borrow
		noBorrow := s.v[x] >= s.v[y]
		s.v[x] -= s.v[y]
		s.setFlag(noBorrow)

	case 0x6: // shr Vx - flag is the shifted out bit
		bit := s.v[x] & 0x01
		s.v[x] >>= 1
		s.v[flagRegister] = bit

	case 0x7: // subn Vx, Vy - flag is no-borrow
		noBorrow := s.v[y] >= s.v[x]
		s.v[x] = s.v[y] - s.v[x]
		s.setFlag(noBorrow)

	case 0xE: // shl Vx - flag is the shifted out bit
		bit := s.v[x] >> 7
		s.v[x] <<= 1
		s.v[flagRegister] = bit
	}
}

// executeMisc handles the 0xF opcode family, timer transfers, keypad
// waiting and index register operations.
func (s *System) executeMisc(x uint16, nn uint8) {
	switch nn {
	case 0x07: // ld Vx, DT
		s.v[x] = s.delayTimer

	case 0x0A: // ld Vx, K - repeat the instruction until a key is down
		for key := uint8(0); key < KeyCount; key++ {
			if s.keys[key] {
				s.v[x] = key
				return
			}
		}
		s.pc = (s.pc - 2) & AddressMask

	case 0x15: // ld DT, Vx
		s.delayTimer = s.v[x]

	case 0x18: // ld ST, Vx
		s.soundTimer = s.v[x]

	case 0x1E: // add I, Vx
		s.i += uint16(s.v[x])

	case 0x29: // ld F, Vx - address of the font glyph for digit Vx
		s.i = FontStart + glyphSize*uint16(s.v[x]&0xF)

	case 0x33: // ld B, Vx - binary coded decimal of Vx
		s.memory[s.i&AddressMask] = s.v[x] / 100
		s.memory[(s.i+1)&AddressMask] = (s.v[x] / 10) % 10
		s.memory[(s.i+2)&AddressMask] = s.v[x] % 10

	case 0x55: // ld [I], Vx - store V0 through Vx, I is preserved
		for reg := uint16(0); reg <= x; reg++ {
			s.memory[(s.i+reg)&AddressMask] = s.v[reg]
		}

	case 0x65: // ld Vx, [I] - load V0 through Vx, I is preserved
		for reg := uint16(0); reg <= x; reg++ {
			s.v[reg] = s.memory[(s.i+reg)&AddressMask]
		}
	}
}

// drawSprite XOR-draws a sprite of the given height read from memory at the
// index register to position (posX, posY). Coordinates wrap at the
// framebuffer edges per pixel placement. The flag register is set to 1 if
// any toggle turned a previously lit pixel off.
func (s *System) drawSprite(posX, posY uint8, height uint16) {
	s.v[flagRegister] = 0

	for row := uint16(0); row < height; row++ {
		spriteByte := s.memory[(s.i+row)&AddressMask]

		for col := uint16(0); col < 8; col++ {
			if spriteByte&(0x80>>col) == 0 {
				continue
			}
			px := (uint16(posX) + col) % ScreenWidth
			py := (uint16(posY) + row) % ScreenHeight
			pixel := &s.framebuffer[py*ScreenWidth+px]
			if *pixel == 1 {
				s.v[flagRegister] = 1
			}
			*pixel ^= 1
		}
	}
}

// skip advances the program counter over the next instruction.
func (s *System) skip() {
	s.pc = (s.pc + 2) & AddressMask
}

func (s *System) setFlag(value bool) {
	if value {
		s.v[flagRegister] = 1
	} else {
		s.v[flagRegister] = 0
	}
}
