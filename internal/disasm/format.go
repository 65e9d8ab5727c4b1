package disasm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/opcode"
)

// Mnemonic returns the assembler mnemonic of the decoded instruction as
// named by the matched opcode table entry.
func Mnemonic(ins opcode.Instruction) (string, bool) {
	if ins.Kind == opcode.KindSys {
		return sysName, true
	}
	if ins.Kind == opcode.KindUnknown || ins.Opcode.Instruction == nil {
		return "", false
	}
	return ins.Opcode.Instruction.Name, true
}

// formatOperands returns the operand string of the instruction.
//
//nolint:cyclop // one case per operand layout
func formatOperands(ins opcode.Instruction) string {
	switch ins.Kind {
	case opcode.KindClearScreen, opcode.KindReturn:
		return ""

	case opcode.KindSys, opcode.KindJump, opcode.KindCall:
		return fmt.Sprintf("$%03X", ins.NNN)
	case opcode.KindJumpOffset:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case opcode.KindLoadIndex:
		return fmt.Sprintf("I, $%03X", ins.NNN)

	case opcode.KindSkipEqualImm, opcode.KindSkipNotEqualImm,
		opcode.KindLoadImm, opcode.KindAddImm, opcode.KindRandom:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)

	case opcode.KindSkipEqualReg, opcode.KindSkipNotEqualReg,
		opcode.KindLoadReg, opcode.KindOr, opcode.KindAnd, opcode.KindXor,
		opcode.KindAddReg, opcode.KindSub, opcode.KindSubReversed:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)

	case opcode.KindShiftRight, opcode.KindShiftLeft,
		opcode.KindSkipKeyDown, opcode.KindSkipKeyUp:
		return fmt.Sprintf("V%X", ins.X)

	case opcode.KindDraw:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)

	case opcode.KindLoadDelay:
		return fmt.Sprintf("V%X, DT", ins.X)
	case opcode.KindWaitKey:
		return fmt.Sprintf("V%X, K", ins.X)
	case opcode.KindSetDelay:
		return fmt.Sprintf("DT, V%X", ins.X)
	case opcode.KindSetSound:
		return fmt.Sprintf("ST, V%X", ins.X)
	case opcode.KindAddIndex:
		return fmt.Sprintf("I, V%X", ins.X)
	case opcode.KindLoadGlyph:
		return fmt.Sprintf("F, V%X", ins.X)
	case opcode.KindStoreBCD:
		return fmt.Sprintf("B, V%X", ins.X)
	case opcode.KindStoreRegisters:
		return fmt.Sprintf("[I], V%X", ins.X)
	case opcode.KindLoadRegisters:
		return fmt.Sprintf("V%X, [I]", ins.X)
	}
	return ""
}
