package convert

import (
	"errors"
	"fmt"
	"os"

	"github.com/neurlang/binarysymphony/audio"
	"github.com/neurlang/binarysymphony/config"
	"github.com/neurlang/binarysymphony/mapper"
	"github.com/neurlang/binarysymphony/midifile"
	"github.com/neurlang/binarysymphony/spectrum"
	"github.com/neurlang/binarysymphony/synth"
)

var (
	ErrEmptyInput = errors.New("input file is empty")
	ErrPanicked   = errors.New("conversion panicked")
)

// Converter maps input bytes to notes and exports them in one format.
type Converter struct {
	Mapper      *mapper.Mapper
	Format      Format
	SampleRate  int
	MIDI        midifile.Options
	Spectrogram *spectrum.Spectrogram
}

// Summary describes a finished conversion.
type Summary struct {
	Output   string
	Bytes    int
	Notes    int
	Samples  int     // zero for MIDI
	Duration float64 // seconds of music
}

// New creates a Converter with exporter settings taken from cfg.
func New(m *mapper.Mapper, format Format, cfg config.Config) *Converter {
	midi := midifile.DefaultOptions()
	midi.TicksPerQuarter = uint16(clamp(cfg.MidiTicks, 1, 0x7fff))
	midi.Velocity = uint8(clamp(cfg.MidiVelocity, 1, 127))
	midi.BPM = cfg.MidiBPM

	sg := spectrum.NewSpectrogram()
	sg.Window = cfg.SpectrumWindow
	sg.Resolut = cfg.SpectrumResolution
	sg.Mel = cfg.SpectrumMel

	return &Converter{
		Mapper:      m,
		Format:      format,
		SampleRate:  cfg.SampleRate,
		MIDI:        midi,
		Spectrogram: sg,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ValidateFile checks that path exists and is a regular file.
func ValidateFile(path string) (os.FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !st.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	return st, nil
}

// ConvertFile reads inputFile and writes the converted result to outputFile.
func (c *Converter) ConvertFile(inputFile, outputFile string) (Summary, error) {
	return c.run(inputFile, outputFile, nil)
}

// ConvertBytes converts data and writes the result to outputFile.
func (c *Converter) ConvertBytes(data []byte, outputFile string) (Summary, error) {
	return c.convert(data, outputFile, nil)
}

func (c *Converter) run(inputFile, outputFile string, report func(int)) (Summary, error) {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return Summary{}, err
	}
	return c.convert(data, outputFile, report)
}

func (c *Converter) convert(data []byte, outputFile string, report func(int)) (sum Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			sum, err = Summary{}, fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()
	if report == nil {
		report = func(int) {}
	}
	if len(data) == 0 {
		return Summary{}, ErrEmptyInput
	}
	report(25)

	notes := c.Mapper.Map(data)
	report(50)

	samples, err := c.Export(notes, outputFile)
	if err != nil {
		return Summary{}, err
	}
	report(100)

	return Summary{
		Output:   outputFile,
		Bytes:    len(data),
		Notes:    len(notes),
		Samples:  samples,
		Duration: mapper.TotalDuration(notes),
	}, nil
}

// Export writes notes to outputFile in the converter's format and returns
// the number of synthesized samples.
func (c *Converter) Export(notes []mapper.Note, outputFile string) (int, error) {
	switch c.Format {
	case MIDI:
		return 0, midifile.Save(outputFile, notes, c.MIDI)
	case WAV, MP3, Spectrum:
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownFormat, c.Format)
	}

	wave := synth.Generate(notes, c.SampleRate)
	var err error
	switch c.Format {
	case WAV:
		err = audio.SaveWav(outputFile, wave, c.SampleRate)
	case MP3:
		err = audio.SaveMp3(outputFile, wave, c.SampleRate)
	case Spectrum:
		err = c.Spectrogram.Save(outputFile, wave, c.SampleRate)
	}
	return len(wave), err
}
