//go:build !headless

package beeper

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

// Beeper plays the beep tone through the system audio device while enabled.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player
	on     atomic.Bool

	mu   sync.Mutex // guards wave, oto reads from its own goroutine
	wave *SquareWave
}

// New opens the audio device and starts a silent player.
func New(sampleRate int) (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	b := &Beeper{
		ctx:  ctx,
		wave: NewSquareWave(sampleRate),
	}
	b.player = ctx.NewPlayer(b)
	b.player.Play()
	return b, nil
}

// SetOn enables or disables the tone.
func (b *Beeper) SetOn(on bool) {
	b.on.Store(on)
}

// Read implements io.Reader for the oto player.
func (b *Beeper) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.wave.Fill(p, b.on.Load())
	// oto requests whole samples, a trailing odd byte is padded with silence
	for i := n; i < len(p); i++ {
		p[i] = 0
	}
	return len(p), nil
}

// Close stops the player.
func (b *Beeper) Close() error {
	if err := b.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
