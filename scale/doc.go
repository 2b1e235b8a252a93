// Package scale provides the pitch-class frequency table and the named musical
// scales used when mapping bytes to notes.
//
// A scale is a set of semitone offsets from C. The table is constant:
//   - chromatic, all twelve semitones
//   - major, minor, dorian and phrygian modes
//   - pentatonic and blues
package scale
