// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/processor"
)

const defaultScale = 20

// ParseEmulatorFlags parses the command line flags of the emulator.
func ParseEmulatorFlags() (options.Emulator, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Emulator
	readFlags(flags, &opts.Flags)
	readEmulatorFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags, usage: "retrochip8 [options] <ROM file>"}
	}
	if err := validateArgs(args, "ROM file to run"); err != nil {
		return opts, err
	}
	if err := validateEmulatorOptions(opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// ParseDisassemblerFlags parses the command line flags of the disassembler.
func ParseDisassemblerFlags() (options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Disassembler
	readFlags(flags, &opts.Flags)
	readDisassemblerFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, &UsageError{flags: flags, usage: "chip8disasm [options] <file to disassemble>"}
	}
	if err := validateArgs(args, "file to disassemble"); err != nil {
		return opts, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	usage string
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: %s\n\n", e.usage)
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string, positional string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after %s, please pass the %s as last argument",
					arg, positional, positional),
			}
		}
	}
	return nil
}

// validateEmulatorOptions checks the numeric options for sane values.
func validateEmulatorOptions(opts options.Emulator) error {
	switch {
	case opts.Scale < 1:
		return fmt.Errorf("invalid scale %d: must be at least 1", opts.Scale)
	case opts.CyclesPerFrame < 1:
		return fmt.Errorf("invalid cycles per frame %d: must be at least 1", opts.CyclesPerFrame)
	case opts.FrameRate < 1:
		return fmt.Errorf("invalid frame rate %d: must be at least 1", opts.FrameRate)
	case opts.Frames < 0:
		return fmt.Errorf("invalid frame count %d: must not be negative", opts.Frames)
	}
	return nil
}

func readFlags(flags *flag.FlagSet, opts *options.Flags) {
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readEmulatorFlags(flags *flag.FlagSet, opts *options.Emulator) {
	defaults := processor.DefaultQuirks()

	flags.IntVar(&opts.Scale, "scale", defaultScale, "window scale factor")
	flags.IntVar(&opts.CyclesPerFrame, "cpf", machine.DefaultCyclesPerFrame, "instructions executed per frame")
	flags.IntVar(&opts.FrameRate, "fps", machine.DefaultFrameRate, "frames per second")
	flags.BoolVar(&opts.Headless, "headless", false, "run without a window")
	flags.IntVar(&opts.Frames, "frames", 0, "stop after the given number of frames, 0 runs until interrupted")
	flags.StringVar(&opts.WavFile, "wav", "", "record the beeper to the given .wav file")
	flags.StringVar(&opts.Screenshot, "screenshot", "", "save the last frame of a headless run as .png file")

	flags.BoolVar(&opts.ShiftCopiesVY, "quirk-shift-vy", defaults.ShiftCopiesVY, "8XY6/8XYE copy VY into VX before shifting")
	flags.BoolVar(&opts.LoadStoreIncrementsI, "quirk-loadstore-i", defaults.LoadStoreIncrementsI, "FX55/FX65 increment I")
	flags.BoolVar(&opts.JumpWithVX, "quirk-jump-vx", defaults.JumpWithVX, "BNNN jumps relative to VX instead of V0")
	flags.BoolVar(&opts.ResetFlagOnLogic, "quirk-logic-vf", defaults.ResetFlagOnLogic, "8XY1/8XY2/8XY3 reset VF")
}

func readDisassemblerFlags(flags *flag.FlagSet, opts *options.Disassembler) {
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.ch8")
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(&opts.Labels, "labels", false, "output labels for jump and call targets")
}
