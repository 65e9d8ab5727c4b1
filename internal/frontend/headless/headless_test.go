package headless

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/assert"
)

func TestFrameLimit(t *testing.T) {
	f := New(2, nil)
	keys := keypad.New()

	assert.True(t, f.PollKeys(keys))
	assert.True(t, f.PollKeys(keys))
	assert.False(t, f.PollKeys(keys))
	assert.Equal(t, 2, f.Frames())
}

func TestScriptedInput(t *testing.T) {
	f := New(0, func(frame int, keys *keypad.Keypad) {
		keys.Set(0x1, frame == 1)
	})
	keys := keypad.New()

	f.PollKeys(keys)
	assert.False(t, keys.IsKeyDown(0x1))
	f.PollKeys(keys)
	assert.True(t, keys.IsKeyDown(0x1))
}

func TestPresent(t *testing.T) {
	f := New(0, nil)
	pixels := []bool{true, false, true, false}

	f.Present(pixels, 2, 2)
	pixels[0] = false

	last, width, height := f.LastFrame()
	assert.Equal(t, []bool{true, false, true, false}, last)
	assert.Equal(t, 2, width)
	assert.Equal(t, 2, height)
	assert.Equal(t, 1, f.Presented())
}
