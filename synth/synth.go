package synth

import (
	"math"

	"github.com/neurlang/binarysymphony/mapper"
)

const (
	DefaultSampleRate = 44100
	Amplitude         = 0.5
)

// Samples returns the sample count of a single note at rate.
func Samples(n mapper.Note, rate int) int {
	return int(n.Duration * float64(rate))
}

// SampleCount returns the length of the buffer Generate would produce.
func SampleCount(notes []mapper.Note, rate int) (total int) {
	for _, n := range notes {
		total += Samples(n, rate)
	}
	return
}

// Generate renders notes as concatenated sine segments.
func Generate(notes []mapper.Note, rate int) []float64 {
	buf := make([]float64, SampleCount(notes, rate))
	pos := 0
	for _, n := range notes {
		count := Samples(n, rate)
		step := 2 * math.Pi * n.Frequency / float64(rate)
		for i := 0; i < count; i++ {
			buf[pos+i] = Amplitude * math.Sin(step*float64(i))
		}
		pos += count
	}
	return buf
}
