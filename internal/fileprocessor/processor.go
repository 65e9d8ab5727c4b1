// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile disassembles the input file of the options into the output
// file or stdout if no output file is set.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Disassembler) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("processing %s: %w", opts.Input, err)
	}

	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	if err := detector.New(logger).Check(opts.Input, rom); err != nil {
		return err
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}

	if err := disasm.Disassemble(rom, writer, opts.Listing()); err != nil {
		_ = writer.Close()
		return fmt.Errorf("disassembling: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	logger.Debug("Disassembled file",
		log.String("input", opts.Input),
		log.String("output", opts.Output),
		log.Int("size", len(rom)))
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Disassembler) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

func createWriter(opts options.Disassembler) (io.WriteCloser, error) {
	if opts.Output == "" {
		return nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// nopCloser wraps an io.Writer to add a no-op Close method
type nopCloser struct {
	io.Writer
}

func (nc nopCloser) Close() error {
	return nil
}
