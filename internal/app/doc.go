// Package app runs one transform: read a file, encode or decode it, write
// the result next to it and optionally write a report of the run.
package app
