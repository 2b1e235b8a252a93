// Package mapper turns a byte stream into a sequence of notes.
//
// Each byte picks a pitch class from the chosen scale and an octave between 3
// and 8. The mode decides the note length: melody notes are half a second,
// rhythm notes vary with the low two bits of the byte, and spectrum notes are
// short bursts meant for spectrogram rendering.
package mapper
