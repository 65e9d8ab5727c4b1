// Package beeper turns the beep signal of the processor into audible output.
package beeper

import "encoding/binary"

const (
	// Frequency of the beep tone in Hz.
	Frequency = 550

	// DefaultSampleRate is the sample rate used for audio output.
	DefaultSampleRate = 44100

	amplitude = 0x2000
)

// SquareWave generates signed 16 bit samples of a square wave tone.
type SquareWave struct {
	sampleRate int
	position   int
}

// NewSquareWave returns a generator for the beep tone at the given sample rate.
func NewSquareWave(sampleRate int) *SquareWave {
	return &SquareWave{
		sampleRate: sampleRate,
	}
}

// Next returns the next sample. Disabled output returns silence but keeps
// the phase running so that toggling does not click more than necessary.
func (w *SquareWave) Next(on bool) int16 {
	period := w.sampleRate / Frequency
	sample := int16(amplitude)
	if w.position >= period/2 {
		sample = -amplitude
	}

	w.position++
	if w.position >= period {
		w.position = 0
	}

	if !on {
		return 0
	}
	return sample
}

// Fill writes little endian 16 bit mono samples into the buffer and returns
// the number of bytes written.
func (w *SquareWave) Fill(buf []byte, on bool) int {
	n := len(buf) &^ 1
	for i := 0; i < n; i += 2 {
		binary.LittleEndian.PutUint16(buf[i:], uint16(w.Next(on)))
	}
	return n
}
