package audio

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/braheezy/shine-mp3/pkg/mp3"
)

var ErrUnsupportedSampleRate = errors.New("unsupported mp3 sample rate")

// MPEG-1, MPEG-2 and MPEG-2.5 layer III rates
var mp3SampleRates = []int{8000, 11025, 12000, 16000, 22050, 24000, 32000, 44100, 48000}

// Quantize converts samples in [-1, 1] to 16-bit PCM, clamping overshoot.
func Quantize(vec []float64) []int16 {
	out := make([]int16, len(vec))
	for i, v := range vec {
		v = math.Max(-1, math.Min(1, v))
		out[i] = int16(v * math.MaxInt16)
	}
	return out
}

// SaveMp3 saves a mono mp3 file from sample vector
func SaveMp3(outputFile string, vec []float64, sr int) error {
	if !mp3Rate(sr) {
		return fmt.Errorf("%w: %d Hz", ErrUnsupportedSampleRate, sr)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}

	encoder := mp3.NewEncoder(sr, 1)
	if err := encoder.Write(f, Quantize(vec)); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func mp3Rate(sr int) bool {
	for _, r := range mp3SampleRates {
		if r == sr {
			return true
		}
	}
	return false
}
