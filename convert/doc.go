// Package convert runs the byte-to-music pipeline for a single input.
//
// A Converter reads the input bytes, maps them to notes and hands the notes to
// the exporter selected by its Format:
//   - WAV and MP3 render the notes through the sine synthesizer
//   - MIDI writes the notes directly as a Standard MIDI File
//   - Spectrum renders the synthesized audio as a spectrogram PNG
//
// Start runs the same pipeline on a background goroutine and reports progress
// percentages on a channel.
package convert
