// Package config turns parsed options into runtime settings.
package config

import (
	"time"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with the level selected by the flags.
// Debug wins over quiet.
func CreateLogger(flags options.Flags) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case flags.Debug:
		cfg.Level = log.DebugLevel
	case flags.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// FrameInterval returns the duration of a single frame.
func FrameInterval(frameRate int) time.Duration {
	if frameRate < 1 {
		frameRate = 1
	}
	return time.Second / time.Duration(frameRate)
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, flags options.Flags, name, version, commit, date string) {
	if flags.Quiet {
		return
	}
	logger.Info(name, log.String("version", buildinfo.Version(version, commit, date)))
}
