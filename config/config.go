// Package config loads rendering defaults from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	SampleRate int // Hz, for WAV/MP3 output and spectrograms

	// MIDI export
	MidiTicks    int // ticks per quarter note
	MidiVelocity int
	MidiBPM      float64

	// Spectrogram export
	SpectrumWindow     int // hop in samples
	SpectrumResolution int // FFT size
	SpectrumMel        bool
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		SampleRate: envInt("BINSYM_SAMPLE_RATE", 44100),

		MidiTicks:    envInt("BINSYM_MIDI_TICKS", 480),
		MidiVelocity: envInt("BINSYM_MIDI_VELOCITY", 64),
		MidiBPM:      envFloat("BINSYM_MIDI_BPM", 120),

		SpectrumWindow:     envInt("BINSYM_SPECTRUM_WINDOW", 512),
		SpectrumResolution: envInt("BINSYM_SPECTRUM_RESOLUTION", 1024),
		SpectrumMel:        envBool("BINSYM_SPECTRUM_MEL", false),
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
