// Package headless implements a frontend without any window or input device.
// It is used for automated runs and tests.
package headless

import (
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/keypad"
)

var _ frontend.Frontend = (*Frontend)(nil)

// InputFunc is called before each frame to set key states.
type InputFunc func(frame int, keys *keypad.Keypad)

// Frontend keeps the last presented frame in memory and closes itself
// after a configured number of frames.
type Frontend struct {
	maxFrames int
	input     InputFunc

	frames    int
	presented int
	width     int
	height    int
	last      []bool
}

// New returns a headless frontend that closes after maxFrames frames.
// A value of 0 or less runs until the machine is stopped otherwise.
func New(maxFrames int, input InputFunc) *Frontend {
	return &Frontend{
		maxFrames: maxFrames,
		input:     input,
	}
}

// PollKeys applies the scripted input and reports whether more frames
// should be executed.
func (f *Frontend) PollKeys(keys *keypad.Keypad) bool {
	if f.maxFrames > 0 && f.frames >= f.maxFrames {
		return false
	}
	if f.input != nil {
		f.input(f.frames, keys)
	}
	f.frames++
	return true
}

// Present stores a copy of the pixel buffer.
func (f *Frontend) Present(pixels []bool, width, height int) {
	f.last = append(f.last[:0], pixels...)
	f.width = width
	f.height = height
	f.presented++
}

// Frames returns the number of frames that were polled.
func (f *Frontend) Frames() int {
	return f.frames
}

// Presented returns the number of frames that were presented.
func (f *Frontend) Presented() int {
	return f.presented
}

// LastFrame returns the last presented pixel buffer and its dimensions.
func (f *Frontend) LastFrame() ([]bool, int, int) {
	return f.last, f.width, f.height
}
