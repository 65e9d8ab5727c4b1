//go:build headless

package beeper

// Beeper is a silent stand in for builds without audio support.
type Beeper struct {
	on bool
}

// New returns a silent beeper.
func New(sampleRate int) (*Beeper, error) {
	return &Beeper{}, nil
}

// SetOn records the beep state.
func (b *Beeper) SetOn(on bool) {
	b.on = on
}

// Close does nothing.
func (b *Beeper) Close() error {
	return nil
}
