// Package options contains the program options.
package options

import (
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/processor"
)

// Flags contains behavior options shared by all tools.
type Flags struct {
	Debug bool `flag:"debug" usage:"enable debug logging"`
	Quiet bool `flag:"q" usage:"quiet mode"`
}

// Display contains window and pacing options of the emulator.
type Display struct {
	Scale          int  `flag:"scale" usage:"window scale factor" default:"20"`
	CyclesPerFrame int  `flag:"cpf" usage:"instructions executed per frame" default:"10"`
	FrameRate      int  `flag:"fps" usage:"frames per second" default:"60"`
	Headless       bool `flag:"headless" usage:"run without a window"`
	Frames         int  `flag:"frames" usage:"stop after the given number of frames, 0 runs forever"`
}

// QuirkFlags selects interpreter behavior variants.
type QuirkFlags struct {
	ShiftCopiesVY        bool `flag:"quirk-shift-vy" usage:"8XY6/8XYE copy VY into VX before shifting" default:"true"`
	LoadStoreIncrementsI bool `flag:"quirk-loadstore-i" usage:"FX55/FX65 increment I"`
	JumpWithVX           bool `flag:"quirk-jump-vx" usage:"BNNN jumps relative to VX instead of V0"`
	ResetFlagOnLogic     bool `flag:"quirk-logic-vf" usage:"8XY1/8XY2/8XY3 reset VF"`
}

// Emulator options of the emulator.
type Emulator struct {
	Flags
	Display
	QuirkFlags

	Input      string `arg:"positional" usage:"ROM file to run"`
	WavFile    string `flag:"wav" usage:"record the beeper to the given .wav file"`
	Screenshot string `flag:"screenshot" usage:"save the last frame of a headless run as .png file"`
}

// Quirks returns the processor quirk settings selected by the flags.
func (e Emulator) Quirks() processor.Quirks {
	return processor.Quirks{
		ShiftCopiesVY:        e.ShiftCopiesVY,
		LoadStoreIncrementsI: e.LoadStoreIncrementsI,
		JumpWithVX:           e.JumpWithVX,
		ResetFlagOnLogic:     e.ResetFlagOnLogic,
	}
}

// Disassembler options of the disassembler.
type Disassembler struct {
	Flags

	Input  string `arg:"positional" usage:"file to disassemble"`
	Output string `flag:"o" usage:"output .asm file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.ch8)"`

	NoHexComments bool `flag:"nohexcomments" usage:"omit hex opcode bytes in comments"`
	Labels        bool `flag:"labels" usage:"emit labels for jump and call targets"`
}

// Listing returns the listing options selected by the flags.
func (d Disassembler) Listing() disasm.Options {
	opts := disasm.DefaultOptions()
	opts.HexComments = !d.NoHexComments
	opts.Labels = d.Labels
	return opts
}
