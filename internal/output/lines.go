package output

import (
	"fmt"
	"io"
)

// LineWriter writes space-separated tokens, wrapping at a maximum line
// length.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewLineWriter creates a new line writer. A maxLineLength of 0 disables
// wrapping.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, adding a space separator if needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *LineWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *LineWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}
