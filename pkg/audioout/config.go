// Package audioout owns the boundary between waymark's mixer and the
// audio device. The device side pulls: a sink periodically invokes the
// renderer for the next buffer, at a cadence fixed by sample rate and
// buffer size.
//
// Two backends are provided: oto (real playback) and mock (CI and tests,
// no hardware).
package audioout

import (
	"fmt"
	"time"
)

// Backend represents the audio backend type.
type Backend string

const (
	// BackendAuto selects the best available backend.
	BackendAuto Backend = "auto"
	// BackendOto plays through the system device via oto.
	BackendOto Backend = "oto"
	// BackendMock drives the renderer from a ticker, for tests.
	BackendMock Backend = "mock"
)

// Config holds output configuration.
type Config struct {
	// Backend specifies which audio backend to use.
	Backend Backend `yaml:"backend" json:"backend"`

	// SampleRate is the output sample rate in Hz.
	SampleRate int `yaml:"sample_rate" json:"sample_rate"`

	// BufferDuration is the size of each pulled buffer. Smaller buffers
	// mean lower cue latency and more render calls.
	BufferDuration time.Duration `yaml:"buffer_duration" json:"buffer_duration"`
}

// DefaultConfig returns a Config with sensible defaults: 44.1 kHz stereo,
// 20 ms buffers.
func DefaultConfig() Config {
	return Config{
		Backend:        BackendAuto,
		SampleRate:     44100,
		BufferDuration: 20 * time.Millisecond,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate)
	}
	if c.BufferDuration <= 0 {
		return fmt.Errorf("buffer_duration must be positive, got %v", c.BufferDuration)
	}
	return nil
}

// BufferFrames returns the number of stereo frames per pulled buffer.
func (c *Config) BufferFrames() int {
	return int(float64(c.SampleRate) * c.BufferDuration.Seconds())
}
