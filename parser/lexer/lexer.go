package lexer

import (
	"io"
	"strings"
	"unicode"

	"github.com/luthersystems/malread/lisp"
	"github.com/luthersystems/malread/parser/token"
)

// atomTerminators are the runes which end an atom in addition to separators.
const atomTerminators = "()[]{}'\"`;"

type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	// err is the error which halted the lexer, if any.
	err *lisp.ReaderError
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

// Tokenize returns the tokens contained in text.  The returned slice never
// contains an EOF or ERROR token; a lexical error is returned as a
// *lisp.ReaderError instead.
func Tokenize(text string) ([]*token.Token, error) {
	return TokenizeFile("", text)
}

// TokenizeFile is like Tokenize but annotates token locations with the given
// file name.
func TokenizeFile(file string, text string) ([]*token.Token, error) {
	lex := New(token.NewScanner(file, text))
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		switch tok.Type {
		case token.EOF:
			return toks, nil
		case token.ERROR:
			return nil, lex.Err()
		}
		toks = append(toks, tok)
	}
}

// Err returns the error which caused the lexer to emit an ERROR token.  Err
// returns nil if no ERROR token has been emitted.
func (lex *Lexer) Err() error {
	if lex.err == nil {
		return nil
	}
	return lex.err
}

// NextToken scans and returns the next token in the source.  At the end of
// the source NextToken returns an EOF token.  Once NextToken has returned an
// ERROR token all following calls return an ERROR token as well.
func (lex *Lexer) NextToken() *token.Token {
	if lex.err != nil {
		return &token.Token{
			Type:   token.ERROR,
			Text:   lex.err.Msg,
			Source: lex.err.Source,
		}
	}
	err := lex.skipWhitespace()
	if err != nil {
		return lex.scanError(err)
	}
	err = lex.readChar()
	if err == io.EOF {
		return lex.emit(token.EOF, "")
	}
	if err != nil {
		return lex.scanError(err)
	}
	switch lex.ch {
	case '(':
		return lex.charToken(token.PAREN_L)
	case ')':
		return lex.charToken(token.PAREN_R)
	case '[':
		return lex.charToken(token.BRACKET_L)
	case ']':
		return lex.charToken(token.BRACKET_R)
	case '{':
		return lex.charToken(token.BRACE_L)
	case '}':
		return lex.charToken(token.BRACE_R)
	case '\'':
		return lex.charToken(token.QUOTE)
	case '`':
		return lex.charToken(token.QUASIQUOTE)
	case '^':
		return lex.charToken(token.META)
	case '@':
		return lex.charToken(token.DEREF)
	case '~':
		if lex.peekRune() == '@' {
			if err := lex.readChar(); err != nil {
				return lex.scanError(err)
			}
			return lex.charToken(token.SPLICE_UNQUOTE)
		}
		return lex.charToken(token.UNQUOTE)
	case '"':
		return lex.readString()
	case ';':
		return lex.readComment()
	default:
		return lex.readAtom()
	}
}

// readString scans a string literal following its opening quote.  The only
// escape sequence is \" which produces a literal double quote.  A backslash
// followed by anything else is kept as is.
func (lex *Lexer) readString() *token.Token {
	var buf strings.Builder
	for {
		err := lex.readChar()
		if err == io.EOF {
			tok := lex.errorf(lisp.CondUnbalancedString, "unterminated string literal")
			lex.err.Incomplete = true
			return tok
		}
		if err != nil {
			return lex.scanError(err)
		}
		switch lex.ch {
		case '"':
			return lex.emit(token.STRING, buf.String())
		case '\\':
			if lex.peekRune() == '"' {
				if err := lex.readChar(); err != nil {
					return lex.scanError(err)
				}
				buf.WriteRune('"')
				continue
			}
			buf.WriteRune('\\')
		default:
			buf.WriteRune(lex.ch)
		}
	}
}

// readComment scans the remainder of the line.  The terminating newline is
// not part of the comment.
func (lex *Lexer) readComment() *token.Token {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || c == '\n' {
			break
		}
		if err := lex.readChar(); err != nil {
			return lex.scanError(err)
		}
	}
	return lex.scanner.EmitToken(token.COMMENT)
}

func (lex *Lexer) readAtom() *token.Token {
	for isAtom(lex.scanner.Peek()) {
		if err := lex.readChar(); err != nil {
			return lex.scanError(err)
		}
	}
	return lex.scanner.EmitToken(token.ATOM)
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) errorf(cond lisp.Condition, format string, v ...interface{}) *token.Token {
	lex.err = lisp.ReaderErrorf(cond, lex.scanner.LocStart(), format, v...)
	return lex.emit(token.ERROR, lex.err.Msg)
}

func (lex *Lexer) scanError(err error) *token.Token {
	lex.err = lisp.ReaderErrorf(lisp.CondScanError, lex.scanner.LocNext(), "%v", err)
	return lex.emit(token.ERROR, lex.err.Msg)
}

func (lex *Lexer) charToken(typ token.Type) *token.Token {
	tok := lex.scanner.EmitToken(typ)
	return tok
}

func (lex *Lexer) skipWhitespace() error {
	for isSeparator(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() error {
	err := lex.scanner.ScanRune()
	if err != nil {
		return err
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isSeparator(c rune) bool {
	return unicode.IsSpace(c) || c == ','
}

func isAtom(c rune, ok bool) bool {
	return ok && !isSeparator(c) && !strings.ContainsRune(atomTerminators, c)
}
