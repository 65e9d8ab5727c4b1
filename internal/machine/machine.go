// Package machine drives the processor in frames: a fixed number of
// instruction cycles followed by a single timer tick.
package machine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/processor"
	"github.com/retroenv/retrogolib/log"
)

const (
	// DefaultCyclesPerFrame is the number of instructions executed per frame.
	DefaultCyclesPerFrame = 10

	// DefaultFrameRate is the number of frames per second that timers tick with.
	DefaultFrameRate = 60
)

// ErrFrontendClosed is returned by Run when the frontend was closed by the user.
var ErrFrontendClosed = errors.New("frontend closed")

// BeepListener receives the beep state once per frame.
type BeepListener func(on bool)

// Machine ties the processor to the display surface and keypad it operates on.
type Machine struct {
	logger  *log.Logger
	proc    *processor.Processor
	display *display.Display
	keys    *keypad.Keypad

	cyclesPerFrame int
	beepListeners  []BeepListener

	frames uint64
	cycles uint64
}

// New returns a machine that executes cyclesPerFrame instructions per frame.
func New(logger *log.Logger, proc *processor.Processor, disp *display.Display,
	keys *keypad.Keypad, cyclesPerFrame int) *Machine {

	if cyclesPerFrame <= 0 {
		cyclesPerFrame = DefaultCyclesPerFrame
	}

	return &Machine{
		logger:         logger,
		proc:           proc,
		display:        disp,
		keys:           keys,
		cyclesPerFrame: cyclesPerFrame,
	}
}

// AddBeepListener registers a listener that is called at the end of every frame.
func (m *Machine) AddBeepListener(listener BeepListener) {
	m.beepListeners = append(m.beepListeners, listener)
}

// Frame executes one frame worth of cycles, ticks the timers once and
// returns whether the display needs to be redrawn.
// Execution stops at the first error.
func (m *Machine) Frame() (bool, error) {
	for range m.cyclesPerFrame {
		if err := m.proc.Cycle(m.display, m.keys); err != nil {
			return false, fmt.Errorf("executing cycle %d: %w", m.cycles, err)
		}
		m.cycles++
	}

	m.proc.TickTimers()
	m.frames++

	beep := m.proc.CheckBeep()
	for _, listener := range m.beepListeners {
		listener(beep)
	}

	return m.display.ConsumeRedraw(), nil
}

// Run executes frames paced by the frame interval until the context is
// canceled, the frontend is closed or an error occurs.
func (m *Machine) Run(ctx context.Context, fe frontend.Frontend, frameInterval time.Duration) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	m.logger.Debug("Starting machine",
		log.Int("cycles_per_frame", m.cyclesPerFrame),
		log.String("frame_interval", frameInterval.String()))

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("running machine: %w", ctx.Err())
		case <-ticker.C:
		}

		if !fe.PollKeys(m.keys) {
			return ErrFrontendClosed
		}

		redraw, err := m.Frame()
		if err != nil {
			return err
		}
		if redraw {
			fe.Present(m.display.Pixels(), display.Width, display.Height)
		}
	}
}

// Processor returns the processor of the machine.
func (m *Machine) Processor() *processor.Processor {
	return m.proc
}

// Display returns the display surface of the machine.
func (m *Machine) Display() *display.Display {
	return m.display
}

// Keys returns the keypad of the machine.
func (m *Machine) Keys() *keypad.Keypad {
	return m.keys
}

// Frames returns the number of executed frames.
func (m *Machine) Frames() uint64 {
	return m.frames
}

// Cycles returns the number of executed instruction cycles.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}
