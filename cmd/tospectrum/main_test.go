package main

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neurlang/binarysymphony/audio"
)

func writeTone(t *testing.T, path string) {
	t.Helper()
	buf := make([]float64, 8820)
	for i := range buf {
		buf[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/44100)
	}
	if err := audio.SaveWav(path, buf, 44100); err != nil {
		t.Fatal(err)
	}
}

func imageHeight(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	return img.Bounds().Dy()
}

func TestRunWav(t *testing.T) {
	in := filepath.Join(t.TempDir(), "tone.wav")
	writeTone(t, in)

	var out bytes.Buffer
	if code := run([]string{in}, &out); code != 0 {
		t.Fatalf("exit code = %d, output: %s", code, out.String())
	}
	if h := imageHeight(t, in+".png"); h != 513 {
		t.Errorf("image height = %d, want 513 linear bins", h)
	}
}

func TestRunMel(t *testing.T) {
	in := filepath.Join(t.TempDir(), "tone.wav")
	writeTone(t, in)

	var out bytes.Buffer
	if code := run([]string{"-mel", in}, &out); code != 0 {
		t.Fatalf("exit code = %d, output: %s", code, out.String())
	}
	if h := imageHeight(t, in+".png"); h != 128 {
		t.Errorf("image height = %d, want 128 mel bands", h)
	}
}

func TestRunFlacSuffix(t *testing.T) {
	// a wav payload behind a .flac name must go through the flac loader and fail
	in := filepath.Join(t.TempDir(), "tone.flac")
	writeTone(t, in)

	var out bytes.Buffer
	if code := run([]string{in}, &out); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "Error generating spectrogram") {
		t.Errorf("missing error message: %s", out.String())
	}
	if _, err := os.Stat(in + ".png"); err == nil {
		t.Error("png written for an unreadable flac")
	}
}

func TestRunUsage(t *testing.T) {
	var out bytes.Buffer
	if code := run(nil, &out); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "Usage") {
		t.Errorf("usage missing: %s", out.String())
	}
}
