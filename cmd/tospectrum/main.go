package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/neurlang/binarysymphony/config"
	"github.com/neurlang/binarysymphony/spectrum"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("tospectrum", flag.ContinueOnError)
	fs.SetOutput(stdout)
	useMel := fs.Bool("mel", false, "fold frequency bins onto the mel scale")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	// Check if the filename argument is provided
	if fs.NArg() < 1 {
		fmt.Fprintln(stdout, "Usage: tospectrum [-mel] <audio_file>")
		return 1
	}

	var filename = fs.Arg(0)
	cfg := config.Load()

	var s = spectrum.NewSpectrogram()
	s.Window = cfg.SpectrumWindow
	s.Resolut = cfg.SpectrumResolution
	s.Mel = *useMel || cfg.SpectrumMel

	outputFile := filename + ".png"

	var err error
	if strings.HasSuffix(filename, ".flac") {
		err = s.ToSpectrumFlac(filename, outputFile)
	} else {
		err = s.ToSpectrumWav(filename, outputFile)
	}
	if err != nil {
		fmt.Fprintf(stdout, "Error generating spectrogram: %v\n", err)
		return 1
	}
	return 0
}
