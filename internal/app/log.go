package app

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Warnf prints a warning line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// IsBrokenPipe reports whether err is a broken or closed pipe, as when a
// downstream consumer like `head` exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
