// Package processor implements the CHIP-8 fetch, decode and execute engine.
//
// The processor owns the registers, program counter, index register, timers,
// the memory and the call stack. The display surface and the key state are
// passed in for each cycle.
package processor

import (
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrochip8/internal/stack"
	"github.com/retroenv/retrogolib/log"
)

const (
	// Registers is the number of general purpose registers V0-VF.
	Registers = 16

	// FlagRegister is the register that receives carry, borrow and collision flags.
	FlagRegister = Registers - 1
)

// Display is the surface that sprites are drawn to.
type Display interface {
	// Draw XORs the sprite onto the surface and returns whether a set pixel was erased.
	Draw(sprite []byte, x, y uint8) bool
	// Clear turns off all pixels.
	Clear()
}

// KeyState provides the state of the 16 key keypad.
type KeyState interface {
	// IsKeyDown returns whether the key is currently held down.
	IsKeyDown(key uint8) bool
	// FirstKeyDown returns a key that is held down, if any.
	FirstKeyDown() (uint8, bool)
}

// Option configures a processor.
type Option func(*Processor)

// WithQuirks sets the quirk behavior of the processor.
func WithQuirks(quirks Quirks) Option {
	return func(p *Processor) {
		p.quirks = quirks
	}
}

// WithRandom sets the source of random bytes used by the CXNN instruction.
func WithRandom(random func() byte) Option {
	return func(p *Processor) {
		p.random = random
	}
}

// WithLogger sets a logger that every executed instruction is traced to
// on debug level.
func WithLogger(logger *log.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// Processor is the CHIP-8 decode and execute engine.
type Processor struct {
	pc uint16           // program counter
	i  uint16           // index register
	v  [Registers]uint8 // general purpose registers
	dt uint8            // delay timer
	st uint8            // sound timer

	memory *memory.Memory
	stack  *stack.Stack

	quirks Quirks
	random func() byte
	logger *log.Logger
}

// New returns a processor that executes the program in the given memory.
func New(mem *memory.Memory, options ...Option) *Processor {
	p := &Processor{
		pc:     memory.ProgramStart,
		memory: mem,
		stack:  stack.New(),
		quirks: DefaultQuirks(),
		random: randomByte,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// LoadROM loads the ROM into the memory of the processor.
func (p *Processor) LoadROM(rom []byte) error {
	if err := p.memory.LoadROM(rom); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	return nil
}

// Reset sets all registers, timers, the stack and the memory back to
// their initial state. A ROM has to be loaded again afterwards.
func (p *Processor) Reset() {
	p.pc = memory.ProgramStart
	p.i = 0
	p.v = [Registers]uint8{}
	p.dt = 0
	p.st = 0
	p.stack.Reset()
	p.memory.Reset()
}

// Cycle fetches, decodes and executes a single instruction.
func (p *Processor) Cycle(display Display, keys KeyState) error {
	if !p.memory.ROMLoaded() {
		return ErrMissingROM
	}
	if !memory.InRange(p.pc, opcode.Size) {
		return fmt.Errorf("%w: program counter $%04X", ErrInvalidRAMAddress, p.pc)
	}

	address := p.pc
	word := opcode.FromBytes(p.memory.Read(address), p.memory.Read(address+1))
	p.pc += opcode.Size

	ins := opcode.Decode(word)
	if p.logger != nil {
		p.logger.Debug("Executing instruction",
			log.Hex("address", address),
			log.Hex("opcode", word),
			log.String("kind", ins.Kind.String()))
	}

	if err := p.execute(ins, display, keys); err != nil {
		return &OpcodeError{
			Address:     address,
			Instruction: ins,
			Err:         err,
		}
	}
	return nil
}

// TickTimers decrements the delay and sound timers if they are not zero.
// It is meant to be called once per frame.
func (p *Processor) TickTimers() {
	if p.dt > 0 {
		p.dt--
	}
	if p.st > 0 {
		p.st--
	}
}

// CheckBeep returns whether the sound timer is active.
func (p *Processor) CheckBeep() bool {
	return p.st > 0
}

// PC returns the program counter.
func (p *Processor) PC() uint16 {
	return p.pc
}

// I returns the index register.
func (p *Processor) I() uint16 {
	return p.i
}

// V returns the value of the general purpose register.
func (p *Processor) V(register int) uint8 {
	return p.v[register&0x0F]
}

// DelayTimer returns the value of the delay timer.
func (p *Processor) DelayTimer() uint8 {
	return p.dt
}

// SoundTimer returns the value of the sound timer.
func (p *Processor) SoundTimer() uint8 {
	return p.st
}

// StackDepth returns the number of return addresses on the stack.
func (p *Processor) StackDepth() int {
	return p.stack.Depth()
}

// Memory returns the memory of the processor.
func (p *Processor) Memory() *memory.Memory {
	return p.memory
}

func randomByte() byte {
	return byte(rand.UintN(256))
}
