package spectrum

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// PeakFrequency returns the frequency in Hz of the strongest non-DC bin of a
// Hann-windowed FFT over the whole buffer.
func PeakFrequency(buf []float64, sampleRate int) float64 {
	if len(buf) < 2 {
		return 0
	}
	x := make([]float64, len(buf))
	copy(x, buf)
	window.Apply(x, window.Hann)

	bins := fft.FFTReal(x)
	best, bestMag := 0, 0.0
	for k := 1; k <= len(bins)/2; k++ {
		if mag := cmplx.Abs(bins[k]); mag > bestMag {
			best, bestMag = k, mag
		}
	}
	return float64(best) * float64(sampleRate) / float64(len(bins))
}
