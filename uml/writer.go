package uml

import (
	"io"
	"strings"
)

type sink struct {
	w           io.Writer
	err         error
	atLineStart bool
	lastSpace   bool
}

// IndentingWriter is the append-only text sink diagrams are written to.
// Writes are buffered in the caller's io.Writer; the first error sticks and
// turns later writes into no-ops.
type IndentingWriter struct {
	s      *sink
	indent string
	level  int
}

func NewIndentingWriter(w io.Writer, indent string) *IndentingWriter {
	return &IndentingWriter{
		s:      &sink{w: w, atLineStart: true},
		indent: indent,
	}
}

// Indented returns a writer sharing the same output, one level deeper.
func (w *IndentingWriter) Indented() *IndentingWriter {
	return &IndentingWriter{s: w.s, indent: w.indent, level: w.level + 1}
}

func (w *IndentingWriter) Append(text string) *IndentingWriter {
	for len(text) > 0 {
		line, rest, hasNewline := strings.Cut(text, "\n")
		if line != "" {
			if w.s.atLineStart {
				w.write(strings.Repeat(w.indent, w.level))
				w.s.atLineStart = false
			}
			w.write(line)
			last := line[len(line)-1]
			w.s.lastSpace = last == ' ' || last == '\t'
		}
		if !hasNewline {
			break
		}
		w.Newline()
		text = rest
	}
	return w
}

// Whitespace writes a single space unless the line is empty or already ends
// in whitespace.
func (w *IndentingWriter) Whitespace() *IndentingWriter {
	if w.s.atLineStart || w.s.lastSpace {
		return w
	}
	return w.Append(" ")
}

func (w *IndentingWriter) Newline() *IndentingWriter {
	w.write("\n")
	w.s.atLineStart = true
	w.s.lastSpace = false
	return w
}

func (w *IndentingWriter) Err() error {
	return w.s.err
}

func (w *IndentingWriter) write(text string) {
	if w.s.err != nil {
		return
	}
	_, w.s.err = io.WriteString(w.s.w, text)
}
