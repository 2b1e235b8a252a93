// Package spectrum renders sample buffers as spectrogram images.
//
// This package computes short-time Fourier transform magnitudes and writes them
// as PNG images with time on the x axis and frequency on the y axis. It
// supports:
//   - Linear frequency bins (NFFT 1024, 50% overlap by default)
//   - Optional mel-scale band folding with a configurable frequency range
//   - Loading WAV/FLAC audio files and saving their spectrogram
//   - Peak frequency estimation of a buffer
package spectrum
