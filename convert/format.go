package convert

import (
	"errors"
	"fmt"
)

// Format selects the exporter.
type Format int

const (
	WAV Format = iota
	MP3
	MIDI
	Spectrum
)

var formatNames = [...]string{"wav", "mp3", "midi", "spectrum"}
var formatExtensions = [...]string{"wav", "mp3", "mid", "png"}

var ErrUnknownFormat = errors.New("unknown output format")

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(formatNames)
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Extension returns the file extension written by the format, without dot.
func (f Format) Extension() string {
	if !f.valid() {
		return "bin"
	}
	return formatExtensions[f]
}

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return WAV, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatNames lists the accepted format names.
func FormatNames() []string {
	return append([]string(nil), formatNames[:]...)
}
