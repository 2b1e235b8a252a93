package audio

import (
	"io"

	"github.com/mewkiz/flac"
)

// LoadFlac loads a flac file as a mono sample vector and its sample rate.
// Channels are averaged.
func LoadFlac(inputFile string) ([]float64, int, error) {
	stream, err := flac.ParseFile(inputFile)
	if err != nil {
		return nil, 0, err
	}
	defer stream.Close()

	scale := float64(int64(1) << (stream.Info.BitsPerSample - 1))

	var out []float64
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		channels := len(frame.Subframes)
		for i := 0; i < frame.Subframes[0].NSamples; i++ {
			var sum float64
			for _, sub := range frame.Subframes {
				sum += float64(sub.Samples[i])
			}
			out = append(out, sum/float64(channels)/scale)
		}
	}
	if len(out) == 0 {
		return nil, 0, ErrFileNotLoaded
	}

	return out, int(stream.Info.SampleRate), nil
}
