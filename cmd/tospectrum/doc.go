// Command tospectrum converts audio files (WAV/FLAC) to spectrogram images (PNG).
//
// This tool renders the STFT magnitude of an audio file, for example a file
// written by binarysymphony, and saves it as a PNG image. Low frequencies are
// at the bottom of the image.
//
// Usage:
//
//	tospectrum [-mel] <audio_file>
//
// The output PNG file will be named <audio_file>.png
//
// Supported input formats: .wav, .flac
package main
