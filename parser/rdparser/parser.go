package rdparser

import (
	"io"

	"github.com/luthersystems/malread/lisp"
	"github.com/luthersystems/malread/parser/lexer"
	"github.com/luthersystems/malread/parser/token"
)

// macroSymbols maps reader macro tokens to the symbol heading their expanded
// form.
var macroSymbols = map[token.Type]string{
	token.QUOTE:          "quote",
	token.QUASIQUOTE:     "quasiquote",
	token.UNQUOTE:        "unquote",
	token.SPLICE_UNQUOTE: "splice-unquote",
	token.DEREF:          "deref",
	token.META:           "with-meta",
}

type reader struct {
}

// NewReader returns a lisp.Reader which reads an entire stream before
// parsing it.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (_ *reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	toks, err := lexer.TokenizeFile(name, string(b))
	if err != nil {
		return nil, err
	}
	return Read(toks)
}

// Read parses all top-level forms contained in toks.  Comments are
// discarded.  If toks contains no forms Read returns an empty slice and a
// nil error.
func Read(toks []*token.Token) ([]*lisp.LVal, error) {
	return New(toks).ParseProgram()
}

// Parser is a lisp parser.
type Parser struct {
	src *TokenSource
}

// New initializes and returns a new Parser that reads the tokens in toks.
func New(toks []*token.Token) *Parser {
	return &Parser{
		src: NewTokenSource(toks),
	}
}

func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal

	for {
		p.skipComments()
		if p.src.IsEOF() {
			break
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}

	return exprs, nil
}

// ParseExpression parses exactly one form.  Running out of tokens before a
// form is found is an error.
func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	p.skipComments()
	switch typ := p.PeekType(); typ {
	case token.EOF:
		return nil, p.incomplete(lisp.CondUnexpectedEOF, p.Peek().Source, "expected a form")
	case token.STRING:
		return p.ParseString()
	case token.ATOM:
		return p.ParseSymbol()
	case token.PAREN_L, token.BRACKET_L, token.BRACE_L:
		return p.ParseCollection()
	case token.PAREN_R, token.BRACKET_R, token.BRACE_R:
		p.src.Scan()
		return nil, p.errorf(unbalanced(typ.Opener()), p.Token().Source, "unexpected %s", typ)
	case token.META:
		return p.ParseMeta()
	case token.QUOTE, token.QUASIQUOTE, token.UNQUOTE, token.SPLICE_UNQUOTE, token.DEREF:
		return p.ParseMacro()
	default:
		p.src.Scan()
		return nil, p.errorf(lisp.CondScanError, p.Token().Source, "unexpected %s", p.Token())
	}
}

func (p *Parser) ParseString() (*lisp.LVal, error) {
	if !p.src.AcceptType(token.STRING) {
		return nil, p.errorf(lisp.CondInvalid, p.Peek().Source, "invalid string literal: %v", p.PeekType())
	}
	return p.tokenLVal(lisp.String(p.Token().Text)), nil
}

// ParseSymbol parses an atom.  Atoms are not classified; the text of the
// atom becomes a symbol verbatim.
func (p *Parser) ParseSymbol() (*lisp.LVal, error) {
	if !p.src.AcceptType(token.ATOM) {
		return nil, p.errorf(lisp.CondInvalid, p.Peek().Source, "invalid symbol: %v", p.PeekType())
	}
	return p.tokenLVal(lisp.Symbol(p.Token().Text)), nil
}

// ParseCollection parses a list, vector or map.  The kind of collection is
// determined by the opening delimiter.
func (p *Parser) ParseCollection() (*lisp.LVal, error) {
	if !p.src.AcceptType(token.PAREN_L, token.BRACKET_L, token.BRACE_L) {
		return nil, p.errorf(lisp.CondInvalid, p.Peek().Source, "invalid collection: %v", p.PeekType())
	}
	open := p.Token()
	cond := unbalanced(open.Type)
	var cells []*lisp.LVal
	for {
		p.skipComments()
		if p.src.IsEOF() {
			return nil, p.incomplete(cond, open.Source, "unmatched %s", open.Type)
		}
		if p.src.AcceptType(open.Type.Closer()) {
			break
		}
		if p.PeekType().IsClose() {
			p.src.Scan()
			return nil, p.errorf(cond, p.Token().Source, "unexpected %s in %s opened at %s",
				p.Token().Type, cond.Collection(), open.Source)
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, x)
	}

	var expr *lisp.LVal
	switch open.Type {
	case token.PAREN_L:
		expr = lisp.List(cells...)
	case token.BRACKET_L:
		expr = lisp.Vector(cells...)
	default:
		if len(cells)%2 != 0 {
			return nil, p.errorf(cond, open.Source, "map literal contains an odd number of forms")
		}
		expr = lisp.Map(cells...)
	}
	expr.Source = open.Source
	return expr, nil
}

// ParseMacro parses a unary reader macro and the form following it.  The
// result is a list of the macro's symbol and the form.
func (p *Parser) ParseMacro() (*lisp.LVal, error) {
	if !p.src.AcceptType(token.QUOTE, token.QUASIQUOTE, token.UNQUOTE, token.SPLICE_UNQUOTE, token.DEREF) {
		return nil, p.errorf(lisp.CondInvalid, p.Peek().Source, "invalid reader macro: %v", p.PeekType())
	}
	mark := p.Token()
	x, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return macroList(mark, x), nil
}

// ParseMeta parses the with-meta reader macro.  The macro reads the metadata
// form followed by the target form and produces (with-meta target metadata).
func (p *Parser) ParseMeta() (*lisp.LVal, error) {
	if !p.src.AcceptType(token.META) {
		return nil, p.errorf(lisp.CondInvalid, p.Peek().Source, "invalid reader macro: %v", p.PeekType())
	}
	mark := p.Token()
	meta, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	target, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return macroList(mark, target, meta), nil
}

func (p *Parser) Token() *token.Token {
	return p.src.Token
}

func (p *Parser) Peek() *token.Token {
	return p.src.Peek
}

func (p *Parser) PeekType() token.Type {
	return p.src.Peek.Type
}

func (p *Parser) skipComments() {
	for p.src.AcceptType(token.COMMENT) {
	}
}

func (p *Parser) tokenLVal(v *lisp.LVal) *lisp.LVal {
	v.Source = p.Token().Source
	return v
}

func (p *Parser) errorf(cond lisp.Condition, loc *token.Location, format string, v ...interface{}) *lisp.ReaderError {
	return lisp.ReaderErrorf(cond, loc, format, v...)
}

// incomplete returns an error caused by exhausting the available tokens.
func (p *Parser) incomplete(cond lisp.Condition, loc *token.Location, format string, v ...interface{}) *lisp.ReaderError {
	err := p.errorf(cond, loc, format, v...)
	err.Incomplete = true
	return err
}

func macroList(mark *token.Token, args ...*lisp.LVal) *lisp.LVal {
	sym := lisp.Symbol(macroSymbols[mark.Type])
	sym.Source = mark.Source
	expr := lisp.List(append([]*lisp.LVal{sym}, args...)...)
	expr.Source = mark.Source
	return expr
}

// unbalanced returns the condition reported when a collection opened by typ
// is not balanced.
func unbalanced(typ token.Type) lisp.Condition {
	switch typ {
	case token.BRACKET_L:
		return lisp.CondUnbalancedVector
	case token.BRACE_L:
		return lisp.CondUnbalancedMap
	default:
		return lisp.CondUnbalancedList
	}
}
