package midifile

import (
	"io"
	"math"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/neurlang/binarysymphony/mapper"
)

// Options controls timing and note attributes of the written file.
type Options struct {
	TicksPerQuarter uint16
	Velocity        uint8
	Channel         uint8
	BPM             float64
}

// DefaultOptions returns 480 ticks per quarter at 120 BPM, velocity 64.
func DefaultOptions() Options {
	return Options{
		TicksPerQuarter: 480,
		Velocity:        64,
		BPM:             120,
	}
}

// Key returns the nearest MIDI note number for freq, clamped to 0..127.
func Key(freq float64) uint8 {
	n := math.Round(69 + 12*math.Log2(freq/440.0))
	if n < 0 || math.IsNaN(n) {
		return 0
	}
	if n > 127 {
		return 127
	}
	return uint8(n)
}

// Ticks converts a duration in seconds to ticks as seconds*TicksPerQuarter.
func (o Options) Ticks(seconds float64) uint32 {
	return uint32(seconds * float64(o.TicksPerQuarter))
}

// Build assembles a single track file. Every note starts right after the
// previous note off, so notes play one after another.
func Build(notes []mapper.Note, opts Options) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(opts.TicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(opts.BPM))
	for _, n := range notes {
		key := Key(n.Frequency)
		tr.Add(0, midi.NoteOn(opts.Channel, key, opts.Velocity))
		tr.Add(opts.Ticks(n.Duration), midi.NoteOffVelocity(opts.Channel, key, opts.Velocity))
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return nil, err
	}
	return s, nil
}

// Write encodes notes as a MIDI file to w.
func Write(w io.Writer, notes []mapper.Note, opts Options) error {
	s, err := Build(notes, opts)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

// Save writes notes to a MIDI file at path.
func Save(path string, notes []mapper.Note, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, notes, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
