package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	gowav "github.com/go-audio/wav"
)

var ErrFileNotLoaded = errors.New("audio file not loaded")

// SaveWav saves mono wav file from sample vector
func SaveWav(outputFile string, vec []float64, sr int) error {
	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sr),
		NumChannels: 1,
		Precision:   2,
	}
	if err := wav.Encode(f, newStreamer(vec), format); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// LoadWav loads a wav file as a mono sample vector and its sample rate.
// Channels are averaged.
func LoadWav(inputFile string) ([]float64, int, error) {
	file, err := os.Open(inputFile)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	d := gowav.NewDecoder(file)
	if !d.IsValidFile() {
		return nil, 0, fmt.Errorf("%s: not a valid wav file", inputFile)
	}
	pcm, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}

	channels := int(d.NumChans)
	scale := float64(int64(1) << (d.BitDepth - 1))
	if channels < 1 || len(pcm.Data) < channels {
		return nil, 0, ErrFileNotLoaded
	}

	out := make([]float64, len(pcm.Data)/channels)
	for i := range out {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(pcm.Data[i*channels+c])
		}
		out[i] = sum / float64(channels) / scale
	}

	return out, int(d.SampleRate), nil
}
