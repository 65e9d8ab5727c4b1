package processor

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/opcode"
)

// execute runs the decoded instruction. The program counter already points
// to the next instruction, jumps overwrite it.
//
//nolint:cyclop,funlen // one case per instruction kind
func (p *Processor) execute(ins opcode.Instruction, display Display, keys KeyState) error {
	switch ins.Kind {
	case opcode.KindClearScreen:
		display.Clear()
	case opcode.KindReturn:
		return p.returnSubroutine()
	case opcode.KindJump:
		p.pc = ins.NNN
	case opcode.KindCall:
		return p.callSubroutine(ins)

	case opcode.KindSkipEqualImm:
		p.skipIf(p.v[ins.X] == ins.NN)
	case opcode.KindSkipNotEqualImm:
		p.skipIf(p.v[ins.X] != ins.NN)
	case opcode.KindSkipEqualReg:
		p.skipIf(p.v[ins.X] == p.v[ins.Y])
	case opcode.KindSkipNotEqualReg:
		p.skipIf(p.v[ins.X] != p.v[ins.Y])

	case opcode.KindLoadImm:
		p.v[ins.X] = ins.NN
	case opcode.KindAddImm:
		p.v[ins.X] += ins.NN

	case opcode.KindLoadReg:
		p.v[ins.X] = p.v[ins.Y]
	case opcode.KindOr:
		p.logic(ins, p.v[ins.X]|p.v[ins.Y])
	case opcode.KindAnd:
		p.logic(ins, p.v[ins.X]&p.v[ins.Y])
	case opcode.KindXor:
		p.logic(ins, p.v[ins.X]^p.v[ins.Y])
	case opcode.KindAddReg:
		p.addRegister(ins)
	case opcode.KindSub:
		p.subtract(ins.X, p.v[ins.X], p.v[ins.Y])
	case opcode.KindSubReversed:
		p.subtract(ins.X, p.v[ins.Y], p.v[ins.X])
	case opcode.KindShiftRight:
		p.shiftRight(ins)
	case opcode.KindShiftLeft:
		p.shiftLeft(ins)

	case opcode.KindLoadIndex:
		p.i = ins.NNN
	case opcode.KindJumpOffset:
		p.jumpOffset(ins)
	case opcode.KindRandom:
		p.v[ins.X] = p.random() & ins.NN
	case opcode.KindDraw:
		return p.drawSprite(ins, display)

	case opcode.KindSkipKeyDown:
		p.skipIf(keys.IsKeyDown(p.v[ins.X]))
	case opcode.KindSkipKeyUp:
		p.skipIf(!keys.IsKeyDown(p.v[ins.X]))

	case opcode.KindLoadDelay:
		p.v[ins.X] = p.dt
	case opcode.KindWaitKey:
		p.waitForKey(ins, keys)
	case opcode.KindSetDelay:
		p.dt = p.v[ins.X]
	case opcode.KindSetSound:
		p.st = p.v[ins.X]
	case opcode.KindAddIndex:
		p.i += uint16(p.v[ins.X])
	case opcode.KindLoadGlyph:
		p.i = memory.GlyphAddress(p.v[ins.X])
	case opcode.KindStoreBCD:
		return p.storeBCD(ins)
	case opcode.KindStoreRegisters:
		return p.storeRegisters(ins)
	case opcode.KindLoadRegisters:
		return p.loadRegisters(ins)

	case opcode.KindSys:
		return fmt.Errorf("%w: 0NNN - call native routine $%03X", ErrInvalidOpcode, ins.NNN)
	default:
		if family := ins.Word >> 12; family == 0x5 || family == 0x9 {
			return fmt.Errorf("%w: $%04X - register skips require the lowest nibble to be 0",
				ErrUnknownOpcode, ins.Word)
		}
		return fmt.Errorf("%w: $%04X", ErrUnknownOpcode, ins.Word)
	}
	return nil
}

func (p *Processor) skipIf(condition bool) {
	if condition {
		p.pc += opcode.Size
	}
}

// setFlag writes the flag register. It is called after the result was
// written so that the flag wins when VF is the destination register.
func (p *Processor) setFlag(set bool) {
	if set {
		p.v[FlagRegister] = 1
	} else {
		p.v[FlagRegister] = 0
	}
}

// returnSubroutine handles 00EE.
func (p *Processor) returnSubroutine() error {
	address, err := p.stack.Pop()
	if err != nil {
		return err
	}
	p.pc = address
	return nil
}

// callSubroutine handles 2NNN.
func (p *Processor) callSubroutine(ins opcode.Instruction) error {
	if err := p.stack.Push(p.pc); err != nil {
		return err
	}
	p.pc = ins.NNN
	return nil
}

// logic handles 8XY1, 8XY2 and 8XY3.
func (p *Processor) logic(ins opcode.Instruction, result uint8) {
	p.v[ins.X] = result
	if p.quirks.ResetFlagOnLogic {
		p.setFlag(false)
	}
}

// addRegister handles 8XY4, the carry is detected by the wrapped result
// being smaller than the previous value of VX.
func (p *Processor) addRegister(ins opcode.Instruction) {
	vx := p.v[ins.X]
	result := vx + p.v[ins.Y]
	p.v[ins.X] = result
	p.setFlag(result < vx)
}

// subtract handles 8XY5 and 8XY7, the flag is set when no borrow occurred.
func (p *Processor) subtract(register, minuend, subtrahend uint8) {
	p.v[register] = minuend - subtrahend
	p.setFlag(minuend >= subtrahend)
}

// shiftRight handles 8XY6.
func (p *Processor) shiftRight(ins opcode.Instruction) {
	if p.quirks.ShiftCopiesVY {
		p.v[ins.X] = p.v[ins.Y]
	}
	value := p.v[ins.X]
	p.v[ins.X] = value >> 1
	p.setFlag(value&0x01 != 0)
}

// shiftLeft handles 8XYE.
func (p *Processor) shiftLeft(ins opcode.Instruction) {
	if p.quirks.ShiftCopiesVY {
		p.v[ins.X] = p.v[ins.Y]
	}
	value := p.v[ins.X]
	p.v[ins.X] = value << 1
	p.setFlag(value&0x80 != 0)
}

// jumpOffset handles BNNN.
func (p *Processor) jumpOffset(ins opcode.Instruction) {
	register := uint8(0)
	if p.quirks.JumpWithVX {
		register = ins.X
	}
	p.pc = uint16(p.v[register]) + ins.NNN
}

// drawSprite handles DXYN.
func (p *Processor) drawSprite(ins opcode.Instruction, display Display) error {
	sprite, err := p.memory.ReadSlice(p.i, uint16(ins.N))
	if err != nil {
		return fmt.Errorf("reading sprite: %w", err)
	}

	collision := display.Draw(sprite, p.v[ins.X], p.v[ins.Y])
	p.setFlag(collision)
	return nil
}

// waitForKey handles FX0A. Without a pressed key the program counter is
// moved back so that the instruction executes again in the next cycle.
func (p *Processor) waitForKey(ins opcode.Instruction, keys KeyState) {
	key, ok := keys.FirstKeyDown()
	if !ok {
		p.pc -= opcode.Size
		return
	}
	p.v[ins.X] = key
}

// storeBCD handles FX33.
func (p *Processor) storeBCD(ins opcode.Instruction) error {
	value := p.v[ins.X]
	digits := []byte{value / 100, (value / 10) % 10, value % 10}
	if err := p.memory.WriteSlice(digits, p.i); err != nil {
		return fmt.Errorf("storing BCD: %w", err)
	}
	return nil
}

// storeRegisters handles FX55.
func (p *Processor) storeRegisters(ins opcode.Instruction) error {
	count := int(ins.X) + 1
	if err := p.memory.WriteSlice(p.v[:count], p.i); err != nil {
		return fmt.Errorf("storing registers: %w", err)
	}
	if p.quirks.LoadStoreIncrementsI {
		p.i += uint16(count)
	}
	return nil
}

// loadRegisters handles FX65.
func (p *Processor) loadRegisters(ins opcode.Instruction) error {
	count := int(ins.X) + 1
	data, err := p.memory.ReadSlice(p.i, uint16(count))
	if err != nil {
		return fmt.Errorf("loading registers: %w", err)
	}
	copy(p.v[:count], data)
	if p.quirks.LoadStoreIncrementsI {
		p.i += uint16(count)
	}
	return nil
}
