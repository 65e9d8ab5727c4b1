// Package memory implements the 4KB CHIP-8 RAM including the ROM loader
// and the built-in hexadecimal font.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: Reserved for the interpreter
//	0x050-0x09F: Font glyphs 0-F, 5 bytes each
//	0x0A0-0x1FF: Reserved for the interpreter
//	0x200-0xFFF: ROM and program data
package memory

import (
	"errors"
	"fmt"
)

const (
	// Size is the number of addressable bytes.
	Size = 4096

	// ProgramStart is the address that ROMs are loaded to and execution starts at.
	ProgramStart = 0x200

	// MaxROMSize is the largest ROM that fits between ProgramStart and the end of memory.
	MaxROMSize = Size - ProgramStart
)

var (
	// ErrInvalidROMSize is returned when a ROM does not fit into memory.
	ErrInvalidROMSize = errors.New("invalid ROM size")
	// ErrInvalidRAMAddress is returned when an address range runs off the end of memory.
	ErrInvalidRAMAddress = errors.New("reached or accessed invalid address in RAM")
)

// Memory is the flat byte addressable RAM of the virtual machine.
type Memory struct {
	ram       [Size]byte
	romLoaded bool
}

// New returns an empty memory with the font glyphs preloaded.
func New() *Memory {
	m := &Memory{}
	m.loadFont()
	return m
}

// LoadROM copies the ROM to ProgramStart and marks the memory as loaded.
// Oversized ROMs are rejected before any byte is copied.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes exceeds maximum of %d", ErrInvalidROMSize, len(rom), MaxROMSize)
	}

	copy(m.ram[ProgramStart:], rom)
	m.romLoaded = true
	return nil
}

// ROMLoaded returns whether a ROM has been loaded since construction or the last reset.
func (m *Memory) ROMLoaded() bool {
	return m.romLoaded
}

// Read returns the byte at the given address. The caller has to ensure that
// the address is inside of memory.
func (m *Memory) Read(address uint16) byte {
	return m.ram[address]
}

// Write sets the byte at the given address. The caller has to ensure that
// the address is inside of memory.
func (m *Memory) Write(address uint16, value byte) {
	m.ram[address] = value
}

// ReadSlice returns a copy of length bytes starting at address.
func (m *Memory) ReadSlice(address, length uint16) ([]byte, error) {
	if !InRange(address, int(length)) {
		return nil, fmt.Errorf("%w: reading %d bytes at $%04X", ErrInvalidRAMAddress, length, address)
	}

	data := make([]byte, length)
	copy(data, m.ram[address:int(address)+int(length)])
	return data, nil
}

// WriteSlice copies data to memory starting at address.
func (m *Memory) WriteSlice(data []byte, address uint16) error {
	if !InRange(address, len(data)) {
		return fmt.Errorf("%w: writing %d bytes at $%04X", ErrInvalidRAMAddress, len(data), address)
	}

	copy(m.ram[address:], data)
	return nil
}

// Reset zeroes the whole memory, reloads the font and clears the loaded flag.
func (m *Memory) Reset() {
	m.ram = [Size]byte{}
	m.loadFont()
	m.romLoaded = false
}

// InRange returns whether the range of length bytes starting at address
// is fully inside of memory.
func InRange(address uint16, length int) bool {
	return int(address)+length <= Size
}

func (m *Memory) loadFont() {
	copy(m.ram[FontAddress:], font[:])
}
