// Package frontend defines the boundary between the machine driver and the
// presentation layer that shows the display and supplies key input.
package frontend

import "github.com/retroenv/retrochip8/internal/keypad"

// Frontend presents the display surface and collects key input.
type Frontend interface {
	// PollKeys updates the keypad with the current input state and returns
	// false once the frontend was closed.
	PollKeys(keys *keypad.Keypad) bool
	// Present shows a row major pixel buffer of the given dimensions.
	Present(pixels []bool, width, height int)
}
