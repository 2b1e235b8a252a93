// Package synth renders a note sequence into a mono sine-wave sample buffer.
//
// Every note becomes floor(duration*rate) samples. Segments are concatenated
// as-is, so phase jumps at note boundaries are audible as clicks.
package synth
