// Package wavwriter records the beep signal of a run into a WAV file.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/retroenv/retrochip8/internal/beeper"
	"github.com/retroenv/retrogolib/log"
)

const (
	bitDepth  = 16
	channels  = 1
	pcmFormat = 1
)

// WavWriter buffers the beep tone of every frame and writes it as mono
// 16 bit PCM when closed.
type WavWriter struct {
	logger          *log.Logger
	filename        string
	sampleRate      int
	samplesPerFrame int
	wave            *beeper.SquareWave
	buffer          []int
}

// New returns a writer for frames that arrive frameRate times per second.
func New(logger *log.Logger, filename string, sampleRate, frameRate int) *WavWriter {
	return &WavWriter{
		logger:          logger,
		filename:        filename,
		sampleRate:      sampleRate,
		samplesPerFrame: sampleRate / frameRate,
		wave:            beeper.NewSquareWave(sampleRate),
	}
}

// Beep appends one frame of audio, the tone when on is set and silence otherwise.
func (w *WavWriter) Beep(on bool) {
	for range w.samplesPerFrame {
		w.buffer = append(w.buffer, int(w.wave.Next(on)))
	}
}

// Samples returns the number of buffered samples.
func (w *WavWriter) Samples() int {
	return len(w.buffer)
}

// Close encodes the buffered samples to the WAV file.
func (w *WavWriter) Close() (rerr error) {
	f, err := os.Create(w.filename)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", w.filename, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("closing file '%s': %w", w.filename, err)
		}
	}()

	enc := wav.NewEncoder(f, w.sampleRate, bitDepth, channels, pcmFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  w.sampleRate,
		},
		Data:           w.buffer,
		SourceBitDepth: bitDepth,
	}

	w.logger.Debug("Writing audio",
		log.String("file", w.filename),
		log.Int("samples", len(w.buffer)))

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav encoding: %w", err)
	}
	return nil
}
