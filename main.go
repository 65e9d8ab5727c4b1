// Package main implements a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/beeper"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/processor"
	"github.com/retroenv/retrochip8/internal/screenshot"
	"github.com/retroenv/retrochip8/internal/wavwriter"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const name = "retrochip8"

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseEmulatorFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Flags)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			config.PrintBanner(logger, opts.Flags, name, version, commit, date)
			if usageErr.Error() != "" {
				logger.Error(usageErr.Error())
			}
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Flags)
	config.PrintBanner(logger, opts.Flags, name, version, commit, date)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation stopped")
			return
		}

		var opErr *processor.OpcodeError
		if errors.As(err, &opErr) {
			logger.Error("Emulation failed",
				log.Hex("address", opErr.Address),
				log.Hex("opcode", opErr.Instruction.Word),
				log.Err(err))
		} else {
			logger.Error("Emulation failed", log.Err(err))
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Emulator) (rerr error) {
	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	if err := detector.New(logger).Check(opts.Input, rom); err != nil {
		return err
	}

	procOptions := []processor.Option{processor.WithQuirks(opts.Quirks())}
	if opts.Debug {
		procOptions = append(procOptions, processor.WithLogger(logger))
	}
	proc := processor.New(memory.New(), procOptions...)
	if err := proc.LoadROM(rom); err != nil {
		return err
	}

	m := machine.New(logger, proc, display.New(), keypad.New(), opts.CyclesPerFrame)
	logger.Info("ROM loaded",
		log.String("file", opts.Input),
		log.Int("size", len(rom)))

	if opts.WavFile != "" {
		recorder := wavwriter.New(logger, opts.WavFile, beeper.DefaultSampleRate, opts.FrameRate)
		m.AddBeepListener(recorder.Beep)
		defer func() {
			if err := recorder.Close(); err != nil && rerr == nil {
				rerr = err
			}
		}()
	}

	if opts.Headless {
		return runHeadless(ctx, logger, m, opts)
	}

	audio, err := beeper.New(beeper.DefaultSampleRate)
	if err != nil {
		logger.Warn("Audio output not available", log.Err(err))
	} else {
		m.AddBeepListener(audio.SetOn)
		defer func() { _ = audio.Close() }()
	}

	return window.Run(ctx, logger, m, window.Options{
		Title:     fmt.Sprintf("%s - %s", name, filepath.Base(opts.Input)),
		Scale:     opts.Scale,
		FrameRate: opts.FrameRate,
	})
}

func runHeadless(ctx context.Context, logger *log.Logger, m *machine.Machine, opts options.Emulator) error {
	fe := headless.New(opts.Frames, nil)

	err := m.Run(ctx, fe, config.FrameInterval(opts.FrameRate))
	if !errors.Is(err, machine.ErrFrontendClosed) {
		return err
	}

	logger.Info("Emulation finished",
		log.Int("frames", int(m.Frames())),
		log.Int("cycles", int(m.Cycles())),
		log.Int("redraws", fe.Presented()))
	if opts.Screenshot != "" {
		palette := screenshot.Palette{On: window.Foreground, Off: window.Background}
		if err := screenshot.Save(opts.Screenshot, m.Display().Pixels(), display.Width, display.Height, opts.Scale, palette); err != nil {
			return fmt.Errorf("saving screenshot: %w", err)
		}
		logger.Info("Screenshot saved", log.String("file", opts.Screenshot))
	}
	if opts.Debug && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(m.Display().String())
	}
	return nil
}
