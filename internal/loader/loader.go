// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/memory"
)

// Loader handles loading ROM files from disk.
type Loader struct {
	maxSize int
}

// New creates a new ROM loader that accepts ROMs that fit into the
// program area of the memory.
func New() *Loader {
	return &Loader{
		maxSize: memory.MaxROMSize,
	}
}

// Load reads the ROM file. Files that are empty or do not fit into memory
// are rejected without reading them completely.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.Read(file)
}

// Read reads a ROM image from the reader.
func (l *Loader) Read(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(l.maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: ROM is empty", memory.ErrInvalidROMSize)
	}
	if len(data) > l.maxSize {
		return nil, fmt.Errorf("%w: ROM exceeds %d bytes", memory.ErrInvalidROMSize, l.maxSize)
	}
	return data, nil
}
