package lexer

import (
	"bufio"
	"io"
	"os"
)

// Source supplies one rune of x source at a time while tracking the line
// and column of the most recently read rune. A failed read is reported as
// io.EOF: at this layer any read failure means end of input, never a retry.
type Source struct {
	r      *bufio.Reader
	closer io.Closer

	line        int
	pos         int
	atLineStart bool
	closed      bool
}

// NewSource opens the named file for scanning.
func NewSource(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s := NewSourceFromReader(f)
	s.closer = f
	return s, nil
}

// NewSourceFromReader wraps an in-memory or already-open reader.
func NewSourceFromReader(r io.Reader) *Source {
	return &Source{
		r:           bufio.NewReader(r),
		atLineStart: true,
	}
}

// Read returns the next rune, or io.EOF once the input is exhausted.
func (s *Source) Read() (rune, error) {
	if s.closed {
		return 0, io.EOF
	}
	r, _, err := s.r.ReadRune()
	if err != nil {
		return 0, io.EOF
	}
	// The line counter advances when the first rune of the next line is
	// read, not when the newline itself is read. The scanner's comment
	// filter depends on this ordering.
	if s.atLineStart {
		s.line++
		s.pos = 0
		s.atLineStart = false
	} else {
		s.pos++
	}
	if r == '\n' {
		s.atLineStart = true
	}
	return r, nil
}

// Line reports the 1-based line of the most recently read rune.
func (s *Source) Line() int {
	return s.line
}

// Position reports the 0-based column of the most recently read rune.
func (s *Source) Position() int {
	return s.pos
}

// Close releases the underlying file. Safe to call more than once.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
