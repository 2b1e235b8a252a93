// Package midifile writes note sequences as Standard MIDI Files.
package midifile
