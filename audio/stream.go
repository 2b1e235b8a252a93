package audio

import "github.com/faiface/beep"

// sliceStreamer plays a mono buffer once on both channels.
type sliceStreamer struct {
	buf []float64
	pos int
}

func newStreamer(buf []float64) beep.Streamer {
	return &sliceStreamer{buf: buf}
}

func (s *sliceStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n := copyMono(samples, s.buf[s.pos:])
	s.pos += n
	return n, true
}

func (s *sliceStreamer) Err() error {
	return nil
}

func copyMono(dst [][2]float64, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] = [2]float64{src[i], src[i]}
	}
	return n
}
