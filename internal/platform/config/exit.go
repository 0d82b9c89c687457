package config

import (
	"fmt"
	"io"
	"os"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// Usagef writes a formatted usage error followed by the flag defaults and
// exits with code 2, the code flag.ExitOnError uses.
func Usagef(w io.Writer, usage func(), format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
	if usage != nil {
		usage()
	}
	os.Exit(2)
}
