package spectrum

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

func spectralNormalize(frames [][]float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, frame := range frames {
		for j, v := range frame {
			if v < 1e-5 {
				v = 1e-5
			}
			v = math.Log(v)
			frame[j] = v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return
}

// heat maps [0, 1] to a black-red-yellow-white ramp.
func heat(val float64) color.RGBA {
	clamp := func(x float64) uint8 {
		return uint8(255 * math.Max(0, math.Min(1, x)))
	}
	return color.RGBA{
		R: clamp(3 * val),
		G: clamp(3*val - 1),
		B: clamp(3*val - 2),
		A: 255,
	}
}

func dumpimage(name string, frames [][]float64, reverse bool) error {
	if len(frames) == 0 {
		return ErrEmptySpectrum
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}

	width, height := len(frames), len(frames[0])
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	lo, hi := spectralNormalize(frames)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			var val float64
			if hi > lo {
				val = (frames[x][y] - lo) / (hi - lo)
			}
			if reverse {
				img.SetRGBA(x, height-y-1, heat(val))
			} else {
				img.SetRGBA(x, y, heat(val))
			}
		}
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
