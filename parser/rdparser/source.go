package rdparser

import (
	"github.com/luthersystems/malread/parser/token"
)

// TokenSource steps through a slice of tokens.  Token holds the token most
// recently accepted and Peek holds the token that will be accepted next.
// Once the tokens are exhausted Peek is an EOF token located just past the
// final token.
type TokenSource struct {
	toks  []*token.Token
	i     int
	eof   *token.Token
	Token *token.Token
	Peek  *token.Token
}

// NewTokenSource initializes and returns a new TokenSource that reads tokens
// from toks.
func NewTokenSource(toks []*token.Token) *TokenSource {
	s := &TokenSource{
		toks: toks,
		eof:  &token.Token{Type: token.EOF},
	}
	if len(toks) > 0 {
		s.eof.Source = toks[len(toks)-1].Source
	}
	s.scan()
	return s
}

func (s *TokenSource) Accept(fn func(*token.Token) bool) bool {
	if fn(s.Peek) {
		s.scan()
		return true
	}
	return false
}

func (s *TokenSource) AcceptType(typ ...token.Type) bool {
	for _, typ := range typ {
		if s.Peek.Type == typ {
			s.scan()
			return true
		}
	}
	return false
}

func (s *TokenSource) Scan() bool {
	if s.IsEOF() {
		s.Token = s.Peek
		return false
	}
	s.scan()
	return true
}

func (s *TokenSource) IsEOF() bool {
	return s.Peek.Type == token.EOF
}

func (s *TokenSource) scan() {
	s.Token = s.Peek
	if s.i < len(s.toks) {
		s.Peek = s.toks[s.i]
		s.i++
		return
	}
	s.Peek = s.eof
}
