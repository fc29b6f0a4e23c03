// Package lib carries the process-level reporting helpers shared by the
// gladegen commands. Generated source may be streaming to stdout, so every
// human-facing message goes to stderr.
package lib

import (
	"fmt"
	"os"
)

// Exit prints the error and exits the program with code 1
func Exit(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

// Warnf prints a warning line. Warnings never change the exit status.
func Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// Statusf prints a progress note, keeping stdout clean for generated code.
func Statusf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
