// Package display implements the monochrome pixel surface that sprites are
// drawn to. Presenting the surface on an actual screen is left to a frontend.
package display

import "strings"

const (
	// Width of the surface in pixels.
	Width = 64
	// Height of the surface in pixels.
	Height = 32

	spriteWidth = 8
)

// Display is a 64x32 grid of boolean pixels.
type Display struct {
	pixels [Width * Height]bool
	redraw bool
}

// New returns a cleared display.
func New() *Display {
	return &Display{}
}

// Draw XORs the sprite onto the surface with its top left corner at x, y and
// returns whether any set pixel was erased.
// Only the anchor wraps around the screen edges, sprite rows and bits that
// reach past the bottom or right edge are clipped.
func (d *Display) Draw(sprite []byte, x, y uint8) bool {
	d.redraw = true

	anchorX := int(x) % Width
	anchorY := int(y) % Height
	collision := false

	for row, data := range sprite {
		posY := anchorY + row
		if posY >= Height {
			break
		}

		for bit := range spriteWidth {
			posX := anchorX + bit
			if posX >= Width {
				break
			}

			if data&(0x80>>bit) == 0 {
				continue
			}

			index := posY*Width + posX
			if d.pixels[index] {
				collision = true
			}
			d.pixels[index] = !d.pixels[index]
		}
	}

	return collision
}

// Clear turns off all pixels.
func (d *Display) Clear() {
	d.pixels = [Width * Height]bool{}
	d.redraw = true
}

// RedrawNeeded returns whether the surface changed since the redraw flag
// was last consumed.
func (d *Display) RedrawNeeded() bool {
	return d.redraw
}

// ConsumeRedraw returns the redraw flag and resets it.
func (d *Display) ConsumeRedraw() bool {
	redraw := d.redraw
	d.redraw = false
	return redraw
}

// Pixel returns whether the pixel at x, y is set. Coordinates outside of
// the surface return false.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return d.pixels[y*Width+x]
}

// Pixels returns a row major copy of the surface.
func (d *Display) Pixels() []bool {
	pixels := make([]bool, len(d.pixels))
	copy(pixels, d.pixels[:])
	return pixels
}

// String renders the surface as text lines using # for set pixels.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)

	for y := range Height {
		for x := range Width {
			if d.pixels[y*Width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
