package token

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Scanner facilitates construction of tokens from source text.  A Scanner
// holds the entire text of its source, typically a single line read from a
// terminal.
type Scanner struct {
	file string
	src  string

	start     int // start of the current token
	startLine int // line number at start
	startCol  int // column number at start

	pos  int // index of c in src
	next int // index of the rune following pos
	line int // line number at pos
	col  int // column number at pos
	c    rune
}

// NewScanner initializes and returns a new Scanner over src.  The file name
// is only used to annotate token locations and may be empty.
func NewScanner(file string, src string) *Scanner {
	return &Scanner{
		file:      file,
		src:       src,
		line:      1,
		startLine: 1,
		startCol:  1,
	}
}

// EmitToken returns a token containing the text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.next
	s.startLine = s.line
	s.startCol = s.col + 1
	if s.c == '\n' {
		s.startLine++
		s.startCol = 1
	}
}

// Text returns a string containing text scanned since the last call to either
// EmitToken or Ignore.
func (s *Scanner) Text() string {
	return s.src[s.start:s.next]
}

// Rune returns the current unicode rune that is being scanned.  The rune
// returned by Rune is the last rune in a token returned by EmitToken.
func (s *Scanner) Rune() rune {
	return s.c
}

// Peek returns the next rune to be scanned, if there are any.  If an invalid
// utf-8 sequence or the end of the source prevents further runes from being
// scanned Peek returns a false second value.  If Peek returns a false value
// the next call to s.ScanRune will return an error that reflects the cause.
func (s *Scanner) Peek() (rune, bool) {
	if s.next >= len(s.src) {
		return 0, false
	}
	c, n := utf8.DecodeRuneInString(s.src[s.next:])
	if isRuneError(c, n) {
		return utf8.RuneError, false
	}
	return c, true
}

// ScanRune attempts to scan a utf-8 rune from the input for inclusion in the
// current token.  At the end of the source ScanRune returns io.EOF.
func (s *Scanner) ScanRune() error {
	if s.next >= len(s.src) {
		return io.EOF
	}
	c, n := utf8.DecodeRuneInString(s.src[s.next:])
	if isRuneError(c, n) {
		return fmt.Errorf("invalid utf-8 sequence in source text starting with byte %#x", s.src[s.next])
	}
	if s.c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos = s.next
	s.next += n
	s.c = c
	return nil
}

// LocStart returns a Location referencing the beginning of the current token,
// just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	return &Location{
		File: s.file,
		Pos:  s.start,
		Line: s.startLine,
		Col:  s.startCol,
	}
}

// Loc returns a Location referencing the current scanner position, the last
// position of the current token.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}

// LocNext returns a Location referencing the rune following the current
// scanner position, the rune that the next call to ScanRune will scan.
func (s *Scanner) LocNext() *Location {
	loc := &Location{
		File: s.file,
		Pos:  s.next,
		Line: s.line,
		Col:  s.col + 1,
	}
	if s.c == '\n' {
		loc.Line++
		loc.Col = 1
	}
	return loc
}

func isRuneError(c rune, n int) bool {
	return c == utf8.RuneError && n == 1
}
