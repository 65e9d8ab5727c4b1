package machine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/processor"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestMachine(t *testing.T, rom []byte, cyclesPerFrame int) *Machine {
	t.Helper()

	proc := processor.New(memory.New())
	assert.NoError(t, proc.LoadROM(rom))
	return New(log.NewTestLogger(t), proc, display.New(), keypad.New(), cyclesPerFrame)
}

// loopROM sets both timers to 3, draws glyph 0 once and then spins forever.
var loopROM = []byte{
	0x60, 0x03, // 0x200: LD V0, 3
	0xF0, 0x15, // 0x202: LD DT, V0
	0xF0, 0x18, // 0x204: LD ST, V0
	0xF1, 0x29, // 0x206: LD F, V1
	0xD1, 0x15, // 0x208: DRW V1, V1, 5
	0x12, 0x0A, // 0x20A: JP 0x20A
}

func TestFrame(t *testing.T) {
	m := newTestMachine(t, loopROM, 5)

	var beeps []bool
	m.AddBeepListener(func(on bool) {
		beeps = append(beeps, on)
	})

	redraw, err := m.Frame()
	assert.NoError(t, err)
	assert.True(t, redraw)
	assert.Equal(t, uint64(5), m.Cycles())
	assert.Equal(t, uint64(1), m.Frames())
	// timers were set during the frame and ticked once at its end
	assert.Equal(t, uint8(2), m.Processor().DelayTimer())

	for range 3 {
		redraw, err = m.Frame()
		assert.NoError(t, err)
		assert.False(t, redraw)
	}

	assert.Equal(t, []bool{true, true, false, false}, beeps)
	assert.Equal(t, uint8(0), m.Processor().DelayTimer())
}

func TestFrameError(t *testing.T) {
	m := newTestMachine(t, []byte{0x00, 0xEE}, 10)

	_, err := m.Frame()
	assert.True(t, errors.Is(err, processor.ErrStackUnderflow))
	assert.Equal(t, uint64(0), m.Frames())
}

func TestDefaultCyclesPerFrame(t *testing.T) {
	m := newTestMachine(t, loopROM, 0)

	_, err := m.Frame()
	assert.NoError(t, err)
	assert.Equal(t, uint64(DefaultCyclesPerFrame), m.Cycles())
}

func TestRunUntilFrontendCloses(t *testing.T) {
	m := newTestMachine(t, loopROM, 10)
	fe := headless.New(3, nil)

	err := m.Run(context.Background(), fe, time.Millisecond)
	assert.True(t, errors.Is(err, ErrFrontendClosed))
	assert.Equal(t, uint64(3), m.Frames())
	assert.Equal(t, 1, fe.Presented())

	pixels, width, height := fe.LastFrame()
	assert.Equal(t, display.Width, width)
	assert.Equal(t, display.Height, height)
	// top row of glyph 0 is 0xF0
	assert.True(t, pixels[0])
	assert.True(t, pixels[3])
	assert.False(t, pixels[4])
}

func TestRunCanceled(t *testing.T) {
	m := newTestMachine(t, loopROM, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Run(ctx, headless.New(0, nil), time.Hour)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(0), m.Frames())
}
