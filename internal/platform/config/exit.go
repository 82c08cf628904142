package config

import (
	"fmt"
	"io"
	"os"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// It is the fatal-exit path for the command's entry point.
func Exitf(format string, args ...any) {
	Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// Fprintf writes a "farkle: "-prefixed error line to w.
func Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "farkle: "+format+"\n", args...)
}
