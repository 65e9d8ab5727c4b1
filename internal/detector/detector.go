// Package detector handles system detection of ROM files.
package detector

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnsupportedSystem is returned for ROMs of other systems.
var ErrUnsupportedSystem = errors.New("unsupported system")

// inesMagic starts the header of NES ROM files.
var inesMagic = []byte{'N', 'E', 'S', 0x1A}

// Detector handles system detection from file headers and extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system of the ROM. CHIP-8 ROMs have no header, so a
// known header of another system wins over the file extension. Unknown
// extensions are treated as CHIP-8.
func (d *Detector) Detect(filename string, data []byte) arch.System {
	if bytes.HasPrefix(data, inesMagic) {
		return arch.NES
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8", ".c8", ".rom":
		return arch.CHIP8System
	case ".nes":
		return arch.NES
	default:
		d.logger.Debug("Unknown file extension, assuming CHIP-8",
			log.String("file", filename),
			log.String("extension", ext))
		return arch.CHIP8System
	}
}

// Check returns an error if the ROM was not detected as CHIP-8 ROM.
func (d *Detector) Check(filename string, data []byte) error {
	system := d.Detect(filename, data)
	if system != arch.CHIP8System {
		return fmt.Errorf("%w: %s looks like a %s ROM", ErrUnsupportedSystem, filename, system)
	}
	return nil
}
