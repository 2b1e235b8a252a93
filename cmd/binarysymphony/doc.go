// Command binarysymphony converts binary files to music.
//
// Every byte of the input becomes one note. The notes are written as a WAV or
// MP3 recording, a MIDI file, or a spectrogram PNG image.
//
// Usage:
//
//	binarysymphony -i file.exe -o music.wav
//	binarysymphony -i data.bin -o output.mid --format midi --mode rhythm --scale major
//	binarysymphony --batch --input-dir ./files -o ./output --format mp3
//
// In batch mode every non-hidden file under --input-dir is converted into
// --output, named <stem>_binarysymphony.<ext>. A failing file is reported and
// skipped.
//
// Rendering defaults can be changed with BINSYM_* environment variables, see
// package config.
package main
