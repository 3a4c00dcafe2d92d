package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// A trailing newline in format is not doubled.
func Exitf(format string, args ...any) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintln(stderr, message)
	exit(1)
}
