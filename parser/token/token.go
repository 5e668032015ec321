package token

import "fmt"

type Token struct {
	Type   Type
	Text   string
	Source *Location
}

func (tok *Token) String() string {
	switch tok.Type {
	case STRING:
		return fmt.Sprintf("%s(%q)", tok.Type, tok.Text)
	case ATOM, COMMENT:
		return fmt.Sprintf("%s(%s)", tok.Type, tok.Text)
	default:
		return tok.Type.String()
	}
}

type Type uint

// Type constants used for the lexer/parser.
const (
	INVALID Type = iota
	ERROR
	EOF

	// Literals
	ATOM
	STRING

	COMMENT

	// Reader macros
	QUOTE
	QUASIQUOTE
	UNQUOTE
	SPLICE_UNQUOTE
	DEREF
	META

	// Delimiters
	PAREN_L
	PAREN_R
	BRACKET_L
	BRACKET_R
	BRACE_L
	BRACE_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:        "invalid",
		ERROR:          "error",
		EOF:            "EOF",
		ATOM:           "atom",
		STRING:         "string",
		COMMENT:        ";",
		QUOTE:          "'",
		QUASIQUOTE:     "`",
		UNQUOTE:        "~",
		SPLICE_UNQUOTE: "~@",
		DEREF:          "@",
		META:           "^",
		PAREN_L:        "(",
		PAREN_R:        ")",
		BRACKET_L:      "[",
		BRACKET_R:      "]",
		BRACE_L:        "{",
		BRACE_R:        "}",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// IsOpen returns true if typ opens a collection.
func (typ Type) IsOpen() bool {
	return typ == PAREN_L || typ == BRACKET_L || typ == BRACE_L
}

// IsClose returns true if typ closes a collection.
func (typ Type) IsClose() bool {
	return typ == PAREN_R || typ == BRACKET_R || typ == BRACE_R
}

// IsMacro returns true if typ is a reader macro marker.
func (typ Type) IsMacro() bool {
	return QUOTE <= typ && typ <= META
}

// Closer returns the delimiter that closes typ, or INVALID if typ does not
// open a collection.
func (typ Type) Closer() Type {
	switch typ {
	case PAREN_L:
		return PAREN_R
	case BRACKET_L:
		return BRACKET_R
	case BRACE_L:
		return BRACE_R
	}
	return INVALID
}

// Opener returns the delimiter that opens a collection closed by typ, or
// INVALID if typ does not close a collection.
func (typ Type) Opener() Type {
	switch typ {
	case PAREN_R:
		return PAREN_L
	case BRACKET_R:
		return BRACKET_L
	case BRACE_R:
		return BRACE_L
	}
	return INVALID
}

type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	if loc == nil {
		return "?"
	}
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", loc.File, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", loc.File, loc.Line, loc.Col)
	}
}
