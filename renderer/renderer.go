// Package renderer formats store data as markdown documents for terminal
// display. Every renderer is a pure function from data to string; the caller
// decides how to print it.
package renderer

import (
	"fmt"
	"strings"
)

// mdWriter accumulates a markdown document.
type mdWriter struct {
	*strings.Builder
}

func newMDWriter() *mdWriter {
	return &mdWriter{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the document.
func (w *mdWriter) Printf(format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
