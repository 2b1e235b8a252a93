package spectrum

import (
	"errors"
	"math"

	"github.com/r9y9/gossp/stft"

	"github.com/neurlang/binarysymphony/audio"
)

var ErrEmptySpectrum = errors.New("empty spectrum")

// Spectrogram represents the configuration for rendering spectrogram images.
type Spectrogram struct {
	// hop between frames, in samples
	Window int
	// FFT size, in samples
	Resolut  int
	YReverse bool

	Mel     bool
	NumMels int
	MelFmin float64
	MelFmax float64
}

// NewSpectrogram creates a new Spectrogram instance with default values.
func NewSpectrogram() *Spectrogram {
	return &Spectrogram{
		Window:   512,
		Resolut:  1024,
		YReverse: true,
		NumMels:  128,
		MelFmin:  0,
		MelFmax:  8000,
	}
}

// Compute returns the STFT magnitude of buf, one slice of Resolut/2+1 bins
// per frame.
func (s *Spectrogram) Compute(buf []float64) [][]float64 {
	buf = pad(buf, s.Resolut)

	st := stft.New(s.Window, s.Resolut)
	spectrum := st.STFT(buf)

	bins := s.Resolut/2 + 1
	frames := make([][]float64, len(spectrum))
	for i := range spectrum {
		frames[i] = make([]float64, bins)
		for j := 0; j < bins; j++ {
			v := spectrum[i][j]
			frames[i][j] = math.Sqrt(real(v)*real(v) + imag(v)*imag(v))
		}
	}
	return frames
}

func melToHz(value float64) float64 {
	const melBreakFrequencyHertz = 700.0
	const melHighFrequencyQ = 1127.0
	return melBreakFrequencyHertz * (math.Exp(value/melHighFrequencyQ) - 1.0)
}

func hzToMel(value float64) float64 {
	const melBreakFrequencyHertz = 700.0
	const melHighFrequencyQ = 1127.0
	return melHighFrequencyQ * math.Log(1.0+(value/melBreakFrequencyHertz))
}

// ToMel folds linear frames onto NumMels bands between MelFmin and MelFmax.
// Each band averages the linear bins it covers; bands narrower than a bin
// interpolate between neighbours.
func (s *Spectrogram) ToMel(frames [][]float64, sampleRate int) [][]float64 {
	if len(frames) == 0 {
		return nil
	}
	bins := len(frames[0])
	nyquist := float64(sampleRate) / 2
	fmax := math.Min(s.MelFmax, nyquist)
	melLo, melHi := hzToMel(s.MelFmin), hzToMel(fmax)
	melBin := (melHi - melLo) / float64(s.NumMels)

	toBin := func(hz float64) float64 {
		return hz / nyquist * float64(bins-1)
	}

	out := make([][]float64, len(frames))
	for f, frame := range frames {
		out[f] = make([]float64, s.NumMels)
		for i := 0; i < s.NumMels; i++ {
			lo := toBin(melToHz(melLo + melBin*float64(i)))
			hi := toBin(melToHz(melLo + melBin*float64(i+1)))

			inlo, modlo := math.Modf(lo)
			inhi := math.Floor(hi)

			var total float64
			if int(inhi) <= int(inlo)+1 {
				next := int(inlo) + 1
				if next >= bins {
					next = bins - 1
				}
				total = frame[int(inlo)]*(1-modlo) + frame[next]*modlo
			} else {
				for k := int(inlo); k < int(inhi) && k < bins; k++ {
					total += frame[k]
				}
				total /= inhi - inlo
			}
			out[f][i] = total
		}
	}
	return out
}

// Save renders buf as a spectrogram PNG image.
func (s *Spectrogram) Save(outputFile string, buf []float64, sampleRate int) error {
	frames := s.Compute(buf)
	if s.Mel {
		frames = s.ToMel(frames, sampleRate)
	}
	return dumpimage(outputFile, frames, s.YReverse)
}

// ToSpectrumWav renders the spectrogram of a WAV audio file as a PNG image.
func (s *Spectrogram) ToSpectrumWav(inputFile, outputFile string) error {
	buf, sr, err := audio.LoadWav(inputFile)
	if err != nil {
		return err
	}
	return s.Save(outputFile, buf, sr)
}

// ToSpectrumFlac renders the spectrogram of a FLAC audio file as a PNG image.
func (s *Spectrogram) ToSpectrumFlac(inputFile, outputFile string) error {
	buf, sr, err := audio.LoadFlac(inputFile)
	if err != nil {
		return err
	}
	return s.Save(outputFile, buf, sr)
}

// pad zero-extends buf to at least one full frame.
func pad(buf []float64, frame int) []float64 {
	if len(buf) >= frame {
		return buf
	}
	out := make([]float64, frame)
	copy(out, buf)
	return out
}
