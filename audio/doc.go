// Package audio writes and reads mono sample buffers as audio files.
//
// It supports:
//   - Saving WAV files through the beep wav encoder
//   - Saving MP3 files from 16-bit PCM through the shine encoder
//   - Loading WAV and FLAC files into a mono sample vector
//   - Inspecting WAV headers
package audio
