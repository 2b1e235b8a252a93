package mapper

import (
	"errors"
	"fmt"
	"math"

	"github.com/neurlang/binarysymphony/scale"
)

// Mode selects how note durations are derived.
type Mode int

const (
	Melody Mode = iota
	Rhythm
	Spectrum
)

var modeNames = [...]string{"melody", "rhythm", "spectrum"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

var ErrUnknownMode = errors.New("unknown mode")

// ParseMode converts a mode name into a Mode.
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return Melody, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// ModeNames lists the accepted mode names.
func ModeNames() []string {
	return append([]string(nil), modeNames[:]...)
}

// Note is a single pitch held for Duration seconds.
type Note struct {
	Frequency float64
	Duration  float64
}

const (
	lowestOctave = 3
	octaveSpan   = 6
)

// Mapper maps bytes to notes for a fixed mode and scale.
type Mapper struct {
	Mode  Mode
	Scale scale.Scale
}

// New creates a Mapper. It fails when the scale name is not known.
func New(mode Mode, scaleName string) (*Mapper, error) {
	s, err := scale.Lookup(scaleName)
	if err != nil {
		return nil, err
	}
	return &Mapper{Mode: mode, Scale: s}, nil
}

// Map returns one note per input byte, in input order.
func (m *Mapper) Map(data []byte) []Note {
	notes := make([]Note, 0, len(data))
	for _, b := range data {
		notes = append(notes, m.Note(b))
	}
	return notes
}

// Note maps a single byte.
func (m *Mapper) Note(b byte) Note {
	n := m.Scale.Len()
	pc := m.Scale.PitchClass(int(b) % n)
	octave := lowestOctave + (int(b)/n)%octaveSpan

	return Note{
		Frequency: scale.BaseFrequency(pc) * math.Pow(2, float64(octave-4)),
		Duration:  m.duration(b),
	}
}

func (m *Mapper) duration(b byte) float64 {
	switch m.Mode {
	case Rhythm:
		return 0.25 + float64(b%4)*0.25
	case Spectrum:
		return 0.1
	default:
		return 0.5
	}
}

// TotalDuration returns the summed length of notes in seconds.
func TotalDuration(notes []Note) (total float64) {
	for _, n := range notes {
		total += n.Duration
	}
	return
}
