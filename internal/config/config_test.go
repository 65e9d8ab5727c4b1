package config

import (
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		name      string
		frameRate int
		expected  time.Duration
	}{
		{"60 fps", 60, time.Second / 60},
		{"1 fps", 1, time.Second},
		{"invalid rate", 0, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FrameInterval(tt.frameRate))
		})
	}
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(options.Flags{}))
	assert.NotNil(t, CreateLogger(options.Flags{Debug: true, Quiet: true}))
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)

	PrintBanner(logger, options.Flags{}, "retrochip8", "1.0.0", "abcdef0123", "2024-01-01")
	PrintBanner(logger, options.Flags{Quiet: true}, "retrochip8", "dev", "", "")
}
