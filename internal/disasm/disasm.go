// Package disasm converts CHIP-8 ROM images into assembly listings.
//
// The listing contains one line per instruction word, starting at the
// address that the ROM is loaded to:
//
//	200: cls
//	202: ld V0, $0A
//	204: jp $202
//
// Words that do not decode to an instruction are written as .word
// directives, a trailing odd byte as a .byte directive.
package disasm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/opcode"
)

// sysName is the mnemonic of 0NNN which has no entry in the instruction table.
const sysName = "sys"

// commentColumn is the width that code is padded to when a comment follows.
const commentColumn = 32

// Options controls the listing output.
type Options struct {
	HexComments bool // append the opcode bytes as comment
	Labels      bool // emit labels for jump and call targets inside the ROM
}

// DefaultOptions returns the options that are used by the command line tool
// when no flags are passed.
func DefaultOptions() Options {
	return Options{
		HexComments: true,
	}
}

type disassembler struct {
	rom    []byte
	w      *bufio.Writer
	opts   Options
	labels map[uint16]struct{}
}

// Disassemble writes the listing of the ROM to the writer.
func Disassemble(rom []byte, w io.Writer, opts Options) error {
	if len(rom) > memory.MaxROMSize {
		return fmt.Errorf("%w: %d bytes", memory.ErrInvalidROMSize, len(rom))
	}

	dis := &disassembler{
		rom:    rom,
		w:      bufio.NewWriter(w),
		opts:   opts,
		labels: map[uint16]struct{}{},
	}
	if opts.Labels {
		dis.collectLabels()
	}

	for offset := 0; offset < len(rom); offset += opcode.Size {
		if err := dis.writeOffset(offset); err != nil {
			return err
		}
	}

	if err := dis.w.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// collectLabels marks all jump and call targets that point into the ROM.
func (d *disassembler) collectLabels() {
	for offset := 0; offset+1 < len(d.rom); offset += opcode.Size {
		ins := opcode.Decode(opcode.FromBytes(d.rom[offset], d.rom[offset+1]))
		if target, ok := d.targetInROM(ins); ok {
			d.labels[target] = struct{}{}
		}
	}
}

// targetInROM returns the branch target of the instruction if it points to
// an address that is covered by the ROM.
func (d *disassembler) targetInROM(ins opcode.Instruction) (uint16, bool) {
	if ins.Kind != opcode.KindJump && ins.Kind != opcode.KindCall {
		return 0, false
	}
	end := memory.ProgramStart + uint16(len(d.rom))
	if ins.NNN < memory.ProgramStart || ins.NNN >= end {
		return 0, false
	}
	return ins.NNN, true
}

func (d *disassembler) writeOffset(offset int) error {
	address := memory.ProgramStart + uint16(offset)

	if _, ok := d.labels[address]; ok {
		if _, err := fmt.Fprintf(d.w, "%s:\n", labelName(address)); err != nil {
			return fmt.Errorf("writing label: %w", err)
		}
	}

	if offset+1 >= len(d.rom) {
		b := d.rom[offset]
		return d.writeLine(address, fmt.Sprintf(".byte $%02X", b), []byte{b})
	}

	data := d.rom[offset : offset+opcode.Size]
	ins := opcode.Decode(opcode.FromBytes(data[0], data[1]))
	return d.writeLine(address, d.formatCode(ins), data)
}

func (d *disassembler) writeLine(address uint16, code string, data []byte) error {
	line := fmt.Sprintf("%03X: %s", address, code)

	var err error
	if d.opts.HexComments {
		_, err = fmt.Fprintf(d.w, "%-*s ; %s\n", commentColumn, line, hexBytes(data))
	} else {
		_, err = fmt.Fprintf(d.w, "%s\n", line)
	}
	if err != nil {
		return fmt.Errorf("writing line at $%03X: %w", address, err)
	}
	return nil
}

// formatCode returns the mnemonic and its operands.
func (d *disassembler) formatCode(ins opcode.Instruction) string {
	name, ok := Mnemonic(ins)
	if !ok {
		return fmt.Sprintf(".word $%04X", ins.Word)
	}

	if target, ok := d.targetInROM(ins); ok && d.opts.Labels {
		return fmt.Sprintf("%s %s", name, labelName(target))
	}

	if params := formatOperands(ins); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

func labelName(address uint16) string {
	return fmt.Sprintf("label_%03X", address)
}

func hexBytes(data []byte) string {
	if len(data) == 1 {
		return fmt.Sprintf("%02X", data[0])
	}
	return fmt.Sprintf("%02X %02X", data[0], data[1])
}
