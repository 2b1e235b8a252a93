package convert

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/neurlang/binarysymphony/audio"
	"github.com/neurlang/binarysymphony/config"
	"github.com/neurlang/binarysymphony/mapper"
)

func newConverter(t *testing.T, mode mapper.Mode, scaleName string, format Format) *Converter {
	t.Helper()
	m, err := mapper.New(mode, scaleName)
	if err != nil {
		t.Fatal(err)
	}
	return New(m, format, config.Load())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
		ext  string
	}{
		{"wav", WAV, "wav"},
		{"mp3", MP3, "mp3"},
		{"midi", MIDI, "mid"},
		{"spectrum", Spectrum, "png"},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.name)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tt.name, err)
		}
		if f != tt.want || f.String() != tt.name || f.Extension() != tt.ext {
			t.Errorf("ParseFormat(%q) = %v/%s, want %v/%s", tt.name, f, f.Extension(), tt.want, tt.ext)
		}
	}
	if _, err := ParseFormat("ogg"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(ogg) error = %v, want ErrUnknownFormat", err)
	}
}

func TestConvertBytesEmpty(t *testing.T) {
	c := newConverter(t, mapper.Melody, "chromatic", WAV)
	_, err := c.ConvertBytes(nil, filepath.Join(t.TempDir(), "out.wav"))
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("ConvertBytes(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestConvertWav(t *testing.T) {
	c := newConverter(t, mapper.Melody, "chromatic", WAV)
	out := filepath.Join(t.TempDir(), "out.wav")

	sum, err := c.ConvertBytes([]byte("ab"), out)
	if err != nil {
		t.Fatalf("ConvertBytes: %v", err)
	}
	if sum.Bytes != 2 || sum.Notes != 2 || sum.Samples != 44100 || sum.Duration != 1 {
		t.Errorf("summary = %+v", sum)
	}

	info, err := audio.Inspect(out)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.SampleRate != 44100 || info.Channels != 1 {
		t.Errorf("wav info = %+v, want 44100 Hz mono", info)
	}
}

func TestConvertEachFormat(t *testing.T) {
	for _, name := range FormatNames() {
		format, _ := ParseFormat(name)
		c := newConverter(t, mapper.Spectrum, "blues", format)
		out := filepath.Join(t.TempDir(), "out."+format.Extension())

		sum, err := c.ConvertBytes([]byte("test data"), out)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		st, err := os.Stat(out)
		if err != nil || st.Size() == 0 {
			t.Errorf("%s: output missing or empty: %v", name, err)
		}
		if format == MIDI && sum.Samples != 0 {
			t.Errorf("midi summary reports %d samples", sum.Samples)
		}
		if format != MIDI && sum.Samples != 9*4410 {
			t.Errorf("%s samples = %d, want %d", name, sum.Samples, 9*4410)
		}
	}
}

func TestConvertUnknownFormat(t *testing.T) {
	c := newConverter(t, mapper.Melody, "chromatic", Format(42))
	_, err := c.ConvertBytes([]byte{1}, filepath.Join(t.TempDir(), "out.bin"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}

func TestConvertFileMissing(t *testing.T) {
	c := newConverter(t, mapper.Melody, "chromatic", WAV)
	_, err := c.ConvertFile(filepath.Join(t.TempDir(), "missing.bin"), filepath.Join(t.TempDir(), "out.wav"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want not exist", err)
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.bin")
	if err := os.WriteFile(file, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := ValidateFile(file)
	if err != nil {
		t.Fatalf("ValidateFile(file): %v", err)
	}
	if st.Size() != 3 {
		t.Errorf("size = %d, want 3", st.Size())
	}
	if _, err := ValidateFile(dir); err == nil {
		t.Error("ValidateFile accepted a directory")
	}
	if _, err := ValidateFile(filepath.Join(dir, "nope")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ValidateFile(missing) error = %v", err)
	}
}

func TestJob(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bin")
	if err := os.WriteFile(in, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := newConverter(t, mapper.Rhythm, "minor", MIDI)

	job := c.Start(in, filepath.Join(dir, "out.mid"))
	var seen []int
	for p := range job.Progress() {
		seen = append(seen, p)
	}
	sum, err := job.Wait()
	if err != nil {
		t.Fatalf("job error: %v", err)
	}
	if len(seen) != 3 || seen[0] != 25 || seen[1] != 50 || seen[2] != 100 {
		t.Errorf("progress = %v, want [25 50 100]", seen)
	}
	if sum.Notes != 5 {
		t.Errorf("notes = %d, want 5", sum.Notes)
	}
}

func TestJobEmptyInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(in, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	c := newConverter(t, mapper.Melody, "chromatic", WAV)

	job := c.Start(in, filepath.Join(dir, "out.wav"))
	for range job.Progress() {
		t.Error("empty input should report no progress")
	}
	if _, err := job.Wait(); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("job error = %v, want ErrEmptyInput", err)
	}
}

func TestConvertRecoversPanic(t *testing.T) {
	// no mapper: Map dereferences a nil pointer
	c := &Converter{Format: WAV, SampleRate: 44100}
	_, err := c.ConvertBytes([]byte{1, 2}, filepath.Join(t.TempDir(), "out.wav"))
	if !errors.Is(err, ErrPanicked) {
		t.Fatalf("error = %v, want ErrPanicked", err)
	}
}

func TestJobRecoversPanic(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bin")
	if err := os.WriteFile(in, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := &Converter{Format: WAV, SampleRate: 44100}

	job := c.Start(in, filepath.Join(dir, "out.wav"))
	for range job.Progress() {
	}
	if _, err := job.Wait(); !errors.Is(err, ErrPanicked) {
		t.Errorf("job error = %v, want ErrPanicked", err)
	}
}

func TestConvertMp3UnsupportedRate(t *testing.T) {
	t.Setenv("BINSYM_SAMPLE_RATE", "12345")
	c := newConverter(t, mapper.Melody, "chromatic", MP3)
	_, err := c.ConvertBytes([]byte("x"), filepath.Join(t.TempDir(), "out.mp3"))
	if !errors.Is(err, audio.ErrUnsupportedSampleRate) {
		t.Errorf("error = %v, want ErrUnsupportedSampleRate", err)
	}
}
