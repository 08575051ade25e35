package lexer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanState tracks where the scanner is inside the literal state machine.
// stateDone is terminal: it is entered on source exhaustion or on any
// illegal lexeme, and only the end-of-stream short-circuit leaves from it.
type scanState uint8

const (
	stateNormal scanState = iota
	stateInChar
	stateInString
	stateDone
)

// action tells the Next pump what a scan step produced.
type action uint8

const (
	actEmit action = iota // a token to hand to the caller
	actSkip               // lexeme discarded (comment, closing delimiter)
	actFail               // diagnostic reported, scanning aborted
)

// Scanner performs lexical analysis on x source. It drives the source one
// rune ahead at all times, classifies lexemes, filters comments, and interns
// every recognized lexeme through the symbol table it was constructed with.
// A Scanner owns its Source and is not safe for concurrent use; the shared
// SymbolTable is.
type Scanner struct {
	source *Source
	table  *SymbolTable
	diag   io.Writer

	ch    rune // the single lookahead rune
	eof   bool // source exhausted; ch is stale
	state scanState

	start, end int // column markers of the lexeme being built
	buf        strings.Builder
}

// NewScanner builds a scanner over src interning into table. The lookahead
// is primed immediately; if the source is already empty the scanner starts
// at end of stream.
func NewScanner(src *Source, table *SymbolTable) *Scanner {
	s := &Scanner{
		source: src,
		table:  table,
		diag:   os.Stderr,
	}
	if !s.read() {
		s.state = stateDone
	}
	return s
}

// SetOutput redirects lexical diagnostics, which default to stderr.
func (s *Scanner) SetOutput(w io.Writer) {
	s.diag = w
}

// Next returns the next token in source order. The second result is false
// at end of stream: either the true end of the input, or the point at which
// an illegal lexeme aborted the scan. The source is released the first time
// end of stream is reported.
//
// Tokens are stamped with the source line in effect after their trailing
// rune's terminating read, so a lexeme ending at a line boundary carries the
// line of the rune that follows it. Downstream consumers depend on this
// stamping.
func (s *Scanner) Next() (Token, bool) {
	for {
		if s.state == stateDone {
			s.source.Close()
			return Token{}, false
		}
		tok, act := s.scan()
		if act == actEmit {
			return tok, true
		}
		// actSkip and actFail both re-enter the dispatch; after a fail
		// the state is terminal and the loop returns end of stream.
	}
}

// scan runs one dispatch step: skip whitespace, mark the lexeme start, and
// classify on the lookahead rune.
func (s *Scanner) scan() (Token, action) {
	for isWhitespace(s.ch) {
		if !s.read() {
			s.state = stateDone
			return Token{}, actSkip
		}
	}

	s.start = s.source.Position()
	s.end = s.start - 1 // zero-width until extended

	switch {
	case isIdentStart(s.ch):
		return s.scanIdentifier()
	case isDigit(s.ch):
		return s.scanNumber()
	}
	return s.scanOperator()
}

// scanIdentifier consumes a run of identifier runes. The table resolves
// reserved words: interning "while" yields the preloaded reserved symbol,
// anything else an identifier symbol.
func (s *Scanner) scanIdentifier() (Token, action) {
	s.buf.Reset()
	for {
		s.end++
		s.buf.WriteRune(s.ch)
		if !s.read() {
			s.state = stateDone
			break
		}
		if !isIdentPart(s.ch) {
			break
		}
	}
	sym := s.table.Intern(s.buf.String(), KindIdentifier)
	return s.emit(sym)
}

// scanNumber consumes an unbroken run of decimal digits. The text is
// interned as-is; numeric interpretation is deferred to a later stage so
// the scanner carries no machine numeric dependencies.
func (s *Scanner) scanNumber() (Token, action) {
	s.buf.Reset()
	for {
		s.end++
		s.buf.WriteRune(s.ch)
		if !s.read() {
			s.state = stateDone
			break
		}
		if !isDigit(s.ch) {
			break
		}
	}
	sym := s.table.Intern(s.buf.String(), KindNumber)
	return s.emit(sym)
}

// scanOperator resolves everything that is not an identifier or digit run.
// It tentatively merges the lookahead with the next rune and keeps the pair
// only if the table knows it; otherwise the second rune remains the
// lookahead for the next lexeme.
func (s *Scanner) scanOperator() (Token, action) {
	first := string(s.ch)
	s.end++
	if !s.read() {
		tok, act := s.makeToken(first)
		s.state = stateDone
		return tok, act
	}

	two := first + string(s.ch)
	if _, ok := s.table.Lookup(two); !ok {
		return s.makeToken(first)
	}

	s.end++
	if !s.read() {
		tok, act := s.makeToken(two)
		s.state = stateDone
		return tok, act
	}
	return s.makeToken(two)
}

// makeToken turns an operator/separator candidate into a token, routing the
// comment marker and the literal delimiters to their special cases.
func (s *Scanner) makeToken(text string) (Token, action) {
	switch {
	case text == "//":
		return s.skipComment()
	case text == "'" && s.state == stateInChar:
		// Closing quote of the literal just emitted; discard it.
		s.state = stateNormal
		return Token{}, actSkip
	case text == "'":
		return s.scanCharLiteral()
	case text == `"` && s.state == stateInString:
		s.state = stateNormal
		return Token{}, actSkip
	case text == `"`:
		return s.scanStringLiteral()
	}

	sym, ok := s.table.Lookup(text)
	if !ok {
		return s.fail(text)
	}
	return s.emit(sym)
}

// skipComment discards runes until the source's line number changes. The
// first rune of the next line becomes the lookahead.
func (s *Scanner) skipComment() (Token, action) {
	oldLine := s.source.Line()
	for s.read() {
		if s.source.Line() != oldLine {
			return Token{}, actSkip
		}
	}
	s.state = stateDone
	return Token{}, actSkip
}

// scanCharLiteral accumulates a quote-delimited lexeme that must be exactly
// one rune wide. The closing quote stays in the lookahead; the
// closing-quote branch of makeToken discards it on the next step.
func (s *Scanner) scanCharLiteral() (Token, action) {
	s.state = stateInChar
	closed := s.delimited('\'')
	if !closed {
		// Synthesize the closer so the length check still decides.
		s.buf.WriteRune('\'')
	}
	text := s.buf.String()
	if utf8.RuneCountInString(text) != 3 {
		return s.fail(text)
	}
	sym := s.table.Intern(text, KindCharLit)
	tok, act := s.emit(sym)
	if !closed {
		s.state = stateDone
	}
	return tok, act
}

// scanStringLiteral accumulates a double-quoted lexeme, quotes included.
// Exhaustion before the closing quote is the unterminated-literal error.
func (s *Scanner) scanStringLiteral() (Token, action) {
	s.state = stateInString
	if !s.delimited('"') {
		return s.fail(s.buf.String())
	}
	sym := s.table.Intern(s.buf.String(), KindStringLit)
	return s.emit(sym)
}

// delimited gathers runes into buf until the closing quote appears in the
// lookahead. A found closing quote is appended to the buffer but stays
// unconsumed in the lookahead. Reports whether the literal closed before
// the source ran out.
func (s *Scanner) delimited(quote rune) bool {
	s.buf.Reset()
	s.buf.WriteRune(quote)
	for {
		if s.eof {
			return false
		}
		if s.ch == quote {
			s.buf.WriteRune(quote)
			return true
		}
		s.buf.WriteRune(s.ch)
		s.end++
		s.read()
	}
}

// emit stamps a token with the current lexeme markers and source line.
func (s *Scanner) emit(sym *Symbol) (Token, action) {
	return Token{
		Left:   s.start,
		Right:  s.end,
		Line:   s.source.Line(),
		Symbol: sym,
	}, actEmit
}

// fail reports an illegal lexeme and aborts the scan. There is no
// resynchronization: the caller sees an early end of stream.
func (s *Scanner) fail(text string) (Token, action) {
	fmt.Fprintf(s.diag, "lexer: illegal character: %s\n", text)
	s.state = stateDone
	return Token{}, actFail
}

func (s *Scanner) read() bool {
	r, err := s.source.Read()
	if err != nil {
		s.ch = 0
		s.eof = true
		return false
	}
	s.ch = r
	return true
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
