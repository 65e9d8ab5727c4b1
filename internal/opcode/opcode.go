// Package opcode decodes 16 bit CHIP-8 instruction words into a closed set
// of instruction shapes. It is shared by the processor and the disassembler
// so that both always agree on the opcode table.
package opcode

import (
	"fmt"
	"math/bits"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Size is the size of an instruction word in bytes.
const Size = 2

// Kind identifies the decoded instruction.
type Kind uint8

// All instruction kinds. The comment shows the opcode pattern.
const (
	KindUnknown         Kind = iota // unrecognized form of a family
	KindSys                         // 0NNN - call native routine, not supported
	KindClearScreen                 // 00E0
	KindReturn                      // 00EE
	KindJump                        // 1NNN
	KindCall                        // 2NNN
	KindSkipEqualImm                // 3XNN
	KindSkipNotEqualImm             // 4XNN
	KindSkipEqualReg                // 5XY0
	KindLoadImm                     // 6XNN
	KindAddImm                      // 7XNN
	KindLoadReg                     // 8XY0
	KindOr                          // 8XY1
	KindAnd                         // 8XY2
	KindXor                         // 8XY3
	KindAddReg                      // 8XY4
	KindSub                         // 8XY5
	KindShiftRight                  // 8XY6
	KindSubReversed                 // 8XY7
	KindShiftLeft                   // 8XYE
	KindSkipNotEqualReg             // 9XY0
	KindLoadIndex                   // ANNN
	KindJumpOffset                  // BNNN
	KindRandom                      // CXNN
	KindDraw                        // DXYN
	KindSkipKeyDown                 // EX9E
	KindSkipKeyUp                   // EXA1
	KindLoadDelay                   // FX07
	KindWaitKey                     // FX0A
	KindSetDelay                    // FX15
	KindSetSound                    // FX18
	KindAddIndex                    // FX1E
	KindLoadGlyph                   // FX29
	KindStoreBCD                    // FX33
	KindStoreRegisters              // FX55
	KindLoadRegisters               // FX65
)

var kindNames = [...]string{
	KindUnknown:         "unknown",
	KindSys:             "sys",
	KindClearScreen:     "clear_screen",
	KindReturn:          "return",
	KindJump:            "jump",
	KindCall:            "call",
	KindSkipEqualImm:    "skip_equal_imm",
	KindSkipNotEqualImm: "skip_not_equal_imm",
	KindSkipEqualReg:    "skip_equal_reg",
	KindLoadImm:         "load_imm",
	KindAddImm:          "add_imm",
	KindLoadReg:         "load_reg",
	KindOr:              "or",
	KindAnd:             "and",
	KindXor:             "xor",
	KindAddReg:          "add_reg",
	KindSub:             "sub",
	KindShiftRight:      "shift_right",
	KindSubReversed:     "sub_reversed",
	KindShiftLeft:       "shift_left",
	KindSkipNotEqualReg: "skip_not_equal_reg",
	KindLoadIndex:       "load_index",
	KindJumpOffset:      "jump_offset",
	KindRandom:          "random",
	KindDraw:            "draw",
	KindSkipKeyDown:     "skip_key_down",
	KindSkipKeyUp:       "skip_key_up",
	KindLoadDelay:       "load_delay",
	KindWaitKey:         "wait_key",
	KindSetDelay:        "set_delay",
	KindSetSound:        "set_sound",
	KindAddIndex:        "add_index",
	KindLoadGlyph:       "load_glyph",
	KindStoreBCD:        "store_bcd",
	KindStoreRegisters:  "store_registers",
	KindLoadRegisters:   "load_registers",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Instruction is a decoded instruction word with all operand fields
// extracted. Which fields are meaningful depends on the Kind.
type Instruction struct {
	Kind   Kind
	Opcode chip8.Opcode // matched table entry, zero for KindSys and KindUnknown
	Word   uint16
	X      uint8  // register selector in bits 8-11
	Y      uint8  // register selector in bits 4-7
	N      uint8  // 4 bit immediate
	NN     uint8  // 8 bit immediate
	NNN    uint16 // 12 bit address
}

// Decode splits the instruction word into its fields and identifies the
// instruction by matching it against the CHIP-8 opcode table.
//
// 5XYn and 9XYn are only recognized with n = 0, other forms decode as
// KindUnknown. Interpreters that dispatch on the top nibble alone execute
// them as register skips, ROMs relying on that fail with an unknown opcode.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word: word,
		X:    uint8(word>>8) & 0x0F,
		Y:    uint8(word>>4) & 0x0F,
		N:    uint8(word) & 0x0F,
		NN:   uint8(word),
		NNN:  word & 0x0FFF,
	}
	ins.Opcode, ins.Kind = match(word)
	return ins
}

// FromBytes composes an instruction word from the high and low byte.
func FromBytes(high, low byte) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// kinds maps the value of an opcode table entry, the instruction word with
// all operand bits cleared, to the instruction kind.
var kinds = map[uint16]Kind{
	0x00E0: KindClearScreen,
	0x00EE: KindReturn,
	0x1000: KindJump,
	0x2000: KindCall,
	0x3000: KindSkipEqualImm,
	0x4000: KindSkipNotEqualImm,
	0x5000: KindSkipEqualReg,
	0x6000: KindLoadImm,
	0x7000: KindAddImm,
	0x8000: KindLoadReg,
	0x8001: KindOr,
	0x8002: KindAnd,
	0x8003: KindXor,
	0x8004: KindAddReg,
	0x8005: KindSub,
	0x8006: KindShiftRight,
	0x8007: KindSubReversed,
	0x800E: KindShiftLeft,
	0x9000: KindSkipNotEqualReg,
	0xA000: KindLoadIndex,
	0xB000: KindJumpOffset,
	0xC000: KindRandom,
	0xD000: KindDraw,
	0xE09E: KindSkipKeyDown,
	0xE0A1: KindSkipKeyUp,
	0xF007: KindLoadDelay,
	0xF00A: KindWaitKey,
	0xF015: KindSetDelay,
	0xF018: KindSetSound,
	0xF01E: KindAddIndex,
	0xF029: KindLoadGlyph,
	0xF033: KindStoreBCD,
	0xF055: KindStoreRegisters,
	0xF065: KindLoadRegisters,
}

// match returns the most specific table entry that matches the word.
func match(word uint16) (chip8.Opcode, Kind) {
	var (
		matched  chip8.Opcode
		kind     = KindUnknown
		maskBits = -1
	)

	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word != op.Info.Value || op.Instruction == nil {
			continue
		}
		k, ok := kinds[op.Info.Value]
		if !ok {
			continue
		}
		if n := bits.OnesCount16(op.Info.Mask); n > maskBits {
			matched, kind, maskBits = op, k, n
		}
	}

	switch {
	case kind == KindUnknown && firstNibble == 0:
		return chip8.Opcode{}, KindSys
	case kind == KindUnknown:
		return chip8.Opcode{}, KindUnknown
	case (kind == KindSkipEqualReg || kind == KindSkipNotEqualReg) && word&0x000F != 0:
		return chip8.Opcode{}, KindUnknown
	}
	return matched, kind
}

func (i Instruction) String() string {
	return fmt.Sprintf("%04X %s", i.Word, i.Kind)
}
