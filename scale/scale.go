package scale

import (
	"errors"
	"fmt"
)

// Default is the scale used when none is given.
const Default = "chromatic"

// NumPitchClasses is the number of semitones in an octave.
const NumPitchClasses = 12

var noteNames = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// octave 4, A4 = 440 Hz
var baseFrequencies = [NumPitchClasses]float64{
	261.63, 277.18, 293.66, 311.13, 329.63, 349.23,
	369.99, 392.00, 415.30, 440.00, 466.16, 493.88,
}

// Scale is a named set of semitone offsets from C.
type Scale struct {
	Name      string
	Intervals []int
}

// Len returns the number of pitch classes in the scale.
func (s Scale) Len() int {
	return len(s.Intervals)
}

// PitchClass returns the pitch class at index i, wrapping around the scale.
func (s Scale) PitchClass(i int) int {
	return s.Intervals[i%len(s.Intervals)]
}

var scales = []Scale{
	{"chromatic", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	{"major", []int{0, 2, 4, 5, 7, 9, 11}},
	{"minor", []int{0, 2, 3, 5, 7, 8, 10}},
	{"pentatonic", []int{0, 2, 4, 7, 9}},
	{"blues", []int{0, 3, 5, 6, 7, 10}},
	{"dorian", []int{0, 2, 3, 5, 7, 9, 10}},
	{"phrygian", []int{0, 1, 3, 5, 7, 8, 10}},
}

var ErrUnknownScale = errors.New("unknown scale")

// Lookup returns the scale with the given name.
func Lookup(name string) (Scale, error) {
	for _, s := range scales {
		if s.Name == name {
			intervals := make([]int, len(s.Intervals))
			copy(intervals, s.Intervals)
			return Scale{Name: s.Name, Intervals: intervals}, nil
		}
	}
	return Scale{}, fmt.Errorf("%w: %q", ErrUnknownScale, name)
}

// Names lists every known scale name.
func Names() []string {
	out := make([]string, len(scales))
	for i, s := range scales {
		out[i] = s.Name
	}
	return out
}

// BaseFrequency returns the octave 4 frequency of a pitch class, in Hz.
func BaseFrequency(pitchClass int) float64 {
	return baseFrequencies[((pitchClass%NumPitchClasses)+NumPitchClasses)%NumPitchClasses]
}

// NoteName returns the name of a pitch class, like "C#".
func NoteName(pitchClass int) string {
	return noteNames[((pitchClass%NumPitchClasses)+NumPitchClasses)%NumPitchClasses]
}
