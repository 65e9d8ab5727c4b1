package display

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
)

// row returns the rendered row y of the display.
func row(d *Display, y int) string {
	return strings.Split(d.String(), "\n")[y]
}

func TestDrawClipsRightEdge(t *testing.T) {
	d := New()

	collision := d.Draw([]byte{0xFF}, 60, 0)
	assert.False(t, collision)

	want := strings.Repeat(".", 60) + "####"
	if diff := cmp.Diff(want, row(d, 0)); diff != "" {
		t.Errorf("row 0 (-want, +got)\n%s", diff)
	}
	assert.False(t, d.Pixel(0, 0))
}

func TestDrawClipsBottomEdge(t *testing.T) {
	d := New()

	d.Draw([]byte{0x80, 0x80, 0x80, 0x80}, 0, 30)

	assert.True(t, d.Pixel(0, 30))
	assert.True(t, d.Pixel(0, 31))
	assert.False(t, d.Pixel(0, 0))
	assert.False(t, d.Pixel(0, 1))
}

func TestDrawWrapsAnchor(t *testing.T) {
	d := New()

	d.Draw([]byte{0xC0}, Width+2, Height+3)

	assert.True(t, d.Pixel(2, 3))
	assert.True(t, d.Pixel(3, 3))
	assert.False(t, d.Pixel(4, 3))
}

func TestDrawXORCollision(t *testing.T) {
	d := New()
	sprite := []byte{0xF0, 0x90, 0xF0}

	assert.False(t, d.Draw(sprite, 10, 5))
	before := d.Pixels()

	assert.True(t, d.Draw(sprite, 10, 5))
	for i, set := range d.Pixels() {
		if set {
			t.Fatalf("pixel %d still set after second draw", i)
		}
	}

	count := 0
	for _, set := range before {
		if set {
			count++
		}
	}
	assert.Equal(t, 10, count)
}

func TestDrawCollisionIsCumulative(t *testing.T) {
	d := New()
	d.Draw([]byte{0x80}, 0, 0)

	// first row collides, second row draws onto empty pixels
	collision := d.Draw([]byte{0x80, 0xFF}, 0, 0)
	assert.True(t, collision)
	assert.False(t, d.Pixel(0, 0))
	assert.True(t, d.Pixel(7, 1))
}

func TestRedrawFlag(t *testing.T) {
	d := New()
	assert.False(t, d.RedrawNeeded())

	d.Draw([]byte{0x00}, 0, 0)
	assert.True(t, d.RedrawNeeded())
	assert.True(t, d.ConsumeRedraw())
	assert.False(t, d.RedrawNeeded())
	assert.False(t, d.ConsumeRedraw())
}

func TestClear(t *testing.T) {
	d := New()
	d.Draw([]byte{0xFF, 0xFF}, 0, 0)
	d.ConsumeRedraw()

	d.Clear()

	assert.True(t, d.RedrawNeeded())
	want := strings.Repeat(strings.Repeat(".", Width)+"\n", Height)
	if diff := cmp.Diff(want, d.String()); diff != "" {
		t.Errorf("display (-want, +got)\n%s", diff)
	}

	// clearing erases without reporting a collision on the next draw
	assert.False(t, d.Draw([]byte{0xFF}, 0, 0))
}
