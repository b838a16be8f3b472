// Package cli parses the command line into an app.Config and maps failures
// to process exit codes.
package cli
