// Package batch converts many files one after another.
//
// Failures are per file: an empty or unreadable input is recorded in its
// Result and the batch moves on to the next file.
package batch
