package processor

import (
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type testMachine struct {
	proc    *Processor
	display *display.Display
	keys    *keypad.Keypad
}

func newTestMachine(t *testing.T, rom []byte, options ...Option) *testMachine {
	t.Helper()

	proc := New(memory.New(), options...)
	assert.NoError(t, proc.LoadROM(rom))

	return &testMachine{
		proc:    proc,
		display: display.New(),
		keys:    keypad.New(),
	}
}

func (m *testMachine) cycle(t *testing.T, count int) {
	t.Helper()
	for range count {
		assert.NoError(t, m.proc.Cycle(m.display, m.keys))
	}
}

func (m *testMachine) cycleErr() error {
	return m.proc.Cycle(m.display, m.keys)
}

func TestCycleMissingROM(t *testing.T) {
	proc := New(memory.New())

	err := proc.Cycle(display.New(), keypad.New())
	assert.True(t, errors.Is(err, ErrMissingROM))
	assert.Equal(t, uint16(memory.ProgramStart), proc.PC())
}

func TestCycleProgramCounterOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		rom  []byte
	}{
		// jump to the last byte, the second opcode byte is out of range
		{"last byte", []byte{0x1F, 0xFF}},
		// V0 + NNN runs past the end of memory
		{"past end", []byte{0x60, 0x10, 0xBF, 0xF0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, tt.rom)
			for m.proc.PC() < memory.Size-1 {
				assert.NoError(t, m.cycleErr())
			}
			assert.True(t, errors.Is(m.cycleErr(), ErrInvalidRAMAddress))
		})
	}
}

func TestCycleClearScreen(t *testing.T) {
	m := newTestMachine(t, []byte{0x00, 0xE0})
	m.display.Draw([]byte{0xFF}, 0, 0)

	m.cycle(t, 1)

	for _, set := range m.display.Pixels() {
		assert.False(t, set)
	}
	assert.Equal(t, uint16(0x202), m.proc.PC())
	assert.Equal(t, uint16(0), m.proc.I())
	for i := range Registers {
		assert.Equal(t, uint8(0), m.proc.V(i))
	}
}

func TestCycleJump(t *testing.T) {
	m := newTestMachine(t, []byte{0x12, 0x34})

	m.cycle(t, 1)

	assert.Equal(t, uint16(0x234), m.proc.PC())
}

func TestCallReturn(t *testing.T) {
	// 0x200: CALL 0x206
	// 0x202: LD V1, 0x01
	// 0x204: JP 0x204
	// 0x206: LD V0, 0x42
	// 0x208: RET
	rom := []byte{
		0x22, 0x06,
		0x61, 0x01,
		0x12, 0x04,
		0x60, 0x42,
		0x00, 0xEE,
	}
	m := newTestMachine(t, rom)

	m.cycle(t, 1)
	assert.Equal(t, uint16(0x206), m.proc.PC())
	assert.Equal(t, 1, m.proc.StackDepth())

	m.cycle(t, 3)
	assert.Equal(t, uint8(0x42), m.proc.V(0))
	assert.Equal(t, uint8(0x01), m.proc.V(1))
	assert.Equal(t, 0, m.proc.StackDepth())
	assert.Equal(t, uint16(0x204), m.proc.PC())
}

func TestStackOverflow(t *testing.T) {
	// 0x200: CALL 0x200, recursing forever
	m := newTestMachine(t, []byte{0x22, 0x00})

	m.cycle(t, 16)
	assert.Equal(t, 16, m.proc.StackDepth())

	err := m.cycleErr()
	assert.True(t, errors.Is(err, ErrStackOverflow))

	var opErr *OpcodeError
	assert.True(t, errors.As(err, &opErr))
	assert.Equal(t, uint16(0x200), opErr.Address)
	assert.Equal(t, uint16(0x2200), opErr.Instruction.Word)
}

func TestStackUnderflow(t *testing.T) {
	m := newTestMachine(t, []byte{0x00, 0xEE})

	assert.True(t, errors.Is(m.cycleErr(), ErrStackUnderflow))
}

func TestInvalidAndUnknownOpcodes(t *testing.T) {
	tests := []struct {
		name     string
		rom      []byte
		expected error
	}{
		{"native call", []byte{0x01, 0x23}, ErrInvalidOpcode},
		{"arithmetic family", []byte{0x80, 0x18}, ErrUnknownOpcode},
		{"keyboard family", []byte{0xE0, 0x00}, ErrUnknownOpcode},
		{"timer family", []byte{0xF0, 0xFF}, ErrUnknownOpcode},
		{"skip equal register form", []byte{0x50, 0x11}, ErrUnknownOpcode},
		{"skip not equal register form", []byte{0x90, 0x1F}, ErrUnknownOpcode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, tt.rom)
			assert.True(t, errors.Is(m.cycleErr(), tt.expected))
		})
	}
}

func TestSkips(t *testing.T) {
	tests := []struct {
		name    string
		opcode  []byte
		skipped bool
	}{
		{"SE Vx, byte equal", []byte{0x30, 0x05}, true},
		{"SE Vx, byte not equal", []byte{0x30, 0x06}, false},
		{"SNE Vx, byte equal", []byte{0x40, 0x05}, false},
		{"SNE Vx, byte not equal", []byte{0x40, 0x06}, true},
		{"SE Vx, Vy equal", []byte{0x50, 0x20}, true},
		{"SE Vx, Vy not equal", []byte{0x50, 0x10}, false},
		{"SNE Vx, Vy equal", []byte{0x90, 0x20}, false},
		{"SNE Vx, Vy not equal", []byte{0x90, 0x10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// V0 = 5, V1 = 6, V2 = 5
			rom := []byte{0x60, 0x05, 0x61, 0x06, 0x62, 0x05}
			rom = append(rom, tt.opcode...)
			m := newTestMachine(t, rom)

			m.cycle(t, 4)

			expected := uint16(0x208)
			if tt.skipped {
				expected += 2
			}
			assert.Equal(t, expected, m.proc.PC())
		})
	}
}

func TestAddImmediateWraps(t *testing.T) {
	// LD VF, 0x07; LD V0, 0xFF; ADD V0, 0x02
	m := newTestMachine(t, []byte{0x6F, 0x07, 0x60, 0xFF, 0x70, 0x02})

	m.cycle(t, 3)

	assert.Equal(t, uint8(0x01), m.proc.V(0))
	assert.Equal(t, uint8(0x07), m.proc.V(FlagRegister))
}

func TestTimers(t *testing.T) {
	// LD V0, 0x02; LD DT, V0; LD ST, V0; LD V1, DT
	m := newTestMachine(t, []byte{0x60, 0x02, 0xF0, 0x15, 0xF0, 0x18, 0xF1, 0x07})

	m.cycle(t, 3)
	assert.Equal(t, uint8(2), m.proc.DelayTimer())
	assert.True(t, m.proc.CheckBeep())

	m.proc.TickTimers()
	m.cycle(t, 1)
	assert.Equal(t, uint8(1), m.proc.V(1))

	m.proc.TickTimers()
	assert.Equal(t, uint8(0), m.proc.DelayTimer())
	assert.False(t, m.proc.CheckBeep())

	m.proc.TickTimers()
	assert.Equal(t, uint8(0), m.proc.DelayTimer())
	assert.Equal(t, uint8(0), m.proc.SoundTimer())
}

func TestReset(t *testing.T) {
	m := newTestMachine(t, []byte{0x60, 0x42, 0x22, 0x00})
	m.cycle(t, 2)

	m.proc.Reset()

	assert.Equal(t, uint16(memory.ProgramStart), m.proc.PC())
	assert.Equal(t, uint8(0), m.proc.V(0))
	assert.Equal(t, 0, m.proc.StackDepth())
	assert.True(t, errors.Is(m.cycleErr(), ErrMissingROM))
}

func TestTraceLogging(t *testing.T) {
	m := newTestMachine(t, []byte{0x60, 0x42}, WithLogger(log.NewTestLogger(t)))

	m.cycle(t, 1)

	assert.Equal(t, uint8(0x42), m.proc.V(0))
}

func TestDrawSprite(t *testing.T) {
	// LD I, glyph 0 via LD V0, 0; LD F, V0; LD V1, 62; LD V2, 0; DRW V1, V2, 5; DRW V1, V2, 5
	rom := []byte{
		0x60, 0x00,
		0xF0, 0x29,
		0x61, 0x3E,
		0x62, 0x00,
		0xD1, 0x25,
		0xD1, 0x25,
	}
	m := newTestMachine(t, rom)

	m.cycle(t, 5)
	assert.Equal(t, uint8(0), m.proc.V(FlagRegister))
	assert.True(t, m.display.RedrawNeeded())
	// glyph 0 top row is 0xF0, only columns 62 and 63 are visible
	assert.True(t, m.display.Pixel(62, 0))
	assert.True(t, m.display.Pixel(63, 0))
	assert.False(t, m.display.Pixel(0, 0))

	m.cycle(t, 1)
	assert.Equal(t, uint8(1), m.proc.V(FlagRegister))
	assert.False(t, m.display.Pixel(62, 0))
}

func TestDrawSpriteOutOfRange(t *testing.T) {
	// LD I, 0xFFE; DRW V0, V0, 3
	m := newTestMachine(t, []byte{0xAF, 0xFE, 0xD0, 0x03})

	m.cycle(t, 1)
	assert.True(t, errors.Is(m.cycleErr(), ErrInvalidRAMAddress))
}

func TestKeySkips(t *testing.T) {
	// LD V0, 0x5; SKP V0; SKNP V0
	rom := []byte{0x60, 0x05, 0xE0, 0x9E, 0xE0, 0xA1}

	m := newTestMachine(t, rom)
	m.keys.Press(0x5)
	m.cycle(t, 2)
	assert.Equal(t, uint16(0x206), m.proc.PC())

	m = newTestMachine(t, rom)
	m.cycle(t, 3)
	assert.Equal(t, uint16(0x208), m.proc.PC())
}

func TestWaitForKey(t *testing.T) {
	// LD V3, K
	m := newTestMachine(t, []byte{0xF3, 0x0A})

	m.cycle(t, 3)
	assert.Equal(t, uint16(0x200), m.proc.PC())

	m.keys.Press(0xC)
	m.cycle(t, 1)
	assert.Equal(t, uint16(0x202), m.proc.PC())
	assert.Equal(t, uint8(0xC), m.proc.V(3))
	assert.False(t, m.keys.IsKeyDown(0xC))
}

func TestRegisterSkipLowNibbleMessage(t *testing.T) {
	m := newTestMachine(t, []byte{0x50, 0x11})

	err := m.cycleErr()
	assert.True(t, errors.Is(err, ErrUnknownOpcode))
	assert.ErrorContains(t, err, "register skips require the lowest nibble to be 0")
}

func TestLoadGlyphMasksDigit(t *testing.T) {
	// LD V0, 0x1A; LD F, V0
	m := newTestMachine(t, []byte{0x60, 0x1A, 0xF0, 0x29})

	m.cycle(t, 2)

	assert.Equal(t, memory.GlyphAddress(0xA), m.proc.I())
}
