package config

import "io"

// SetExitHooks swaps the writer and exit function used by Exitf and returns a
// function restoring the originals.
func SetExitHooks(w io.Writer, fn func(int)) func() {
	prevStderr, prevExit := stderr, exit
	stderr, exit = w, fn
	return func() { stderr, exit = prevStderr, prevExit }
}
