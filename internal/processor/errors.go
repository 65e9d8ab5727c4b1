package processor

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrochip8/internal/stack"
)

// Errors reported by the processor. All of them are fatal to the current run,
// the driver decides whether to halt or reset.
var (
	// ErrInvalidOpcode is returned for a recognized form that is not supported,
	// like the 0NNN native routine call.
	ErrInvalidOpcode = errors.New("program contained an invalid opcode")
	// ErrUnknownOpcode is returned for an instruction word that does not match
	// any known form.
	ErrUnknownOpcode = errors.New("program contained an unknown opcode")
	// ErrMissingROM is returned when cycling before a ROM was loaded.
	ErrMissingROM = errors.New("no ROM has been loaded yet")

	ErrInvalidROMSize    = memory.ErrInvalidROMSize
	ErrInvalidRAMAddress = memory.ErrInvalidRAMAddress
	ErrStackOverflow     = stack.ErrOverflow
	ErrStackUnderflow    = stack.ErrUnderflow
)

// OpcodeError wraps an error that occurred while executing an instruction
// with the address and instruction word that caused it.
type OpcodeError struct {
	Address     uint16
	Instruction opcode.Instruction
	Err         error
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("executing opcode $%04X (%s) at $%04X: %s",
		e.Instruction.Word, e.Instruction.Kind, e.Address, e.Err)
}

func (e *OpcodeError) Unwrap() error {
	return e.Err
}
