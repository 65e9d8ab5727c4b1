// Package window implements a desktop window frontend that shows the display
// scaled up and maps a QWERTY keyboard block to the hexadecimal keypad.
package window

import (
	"fmt"
	"image/color"

	"github.com/retroenv/retrochip8/internal/machine"
)

var (
	// Background is the color of pixels that are off.
	Background = color.RGBA{R: 0, G: 75, B: 0, A: 255}
	// Foreground is the color of pixels that are on.
	Foreground = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// Options of the window frontend.
type Options struct {
	Title     string
	Scale     int
	FrameRate int
}

// renderRGBA converts a boolean pixel buffer into RGBA bytes.
func renderRGBA(dst []byte, pixels []bool) {
	for i, set := range pixels {
		c := Background
		if set {
			c = Foreground
		}
		offset := i * 4
		dst[offset] = c.R
		dst[offset+1] = c.G
		dst[offset+2] = c.B
		dst[offset+3] = c.A
	}
}

// runFrame executes one machine frame and refreshes the RGBA buffer when the
// display changed.
func runFrame(m *machine.Machine, rgba []byte) error {
	redraw, err := m.Frame()
	if err != nil {
		return fmt.Errorf("executing frame: %w", err)
	}
	if redraw {
		renderRGBA(rgba, m.Display().Pixels())
	}
	return nil
}
