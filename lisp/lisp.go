package lisp

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/luthersystems/malread/parser/token"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LSymbol
	LString
	LList
	LVector
	LMap
	LNumber
	LKeyword
	LBool
	LNil
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LSymbol:  "symbol",
	LString:  "string",
	LList:    "list",
	LVector:  "vector",
	LMap:     "map",
	LNumber:  "number",
	LKeyword: "keyword",
	LBool:    "boolean",
	LNil:     "nil",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// IsSeq returns true if values of type t hold child values in their Cells.
func (t LValType) IsSeq() bool {
	return t == LList || t == LVector || t == LMap
}

// LVal is a lisp value.  The Type field selects which of the remaining fields
// are meaningful.
//
//	LSymbol, LString, LKeyword  Str
//	LNumber                     Int
//	LBool                       Bool
//	LList, LVector, LMap        Cells
//
// A map keeps its keys and values alternating in Cells, in source order.  An
// LVal is exclusively owned by its parent; cells are never shared between
// two values.
type LVal struct {
	Type   LValType
	Str    string
	Int    int
	Bool   bool
	Cells  []*LVal
	Source *token.Location
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// Keyword returns an LVal representing the keyword s.  The leading colon is
// part of s.
func Keyword(s string) *LVal {
	return &LVal{
		Type: LKeyword,
		Str:  s,
	}
}

// Number returns an LVal representing the integer x.
func Number(x int) *LVal {
	return &LVal{
		Type: LNumber,
		Int:  x,
	}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{
		Type: LBool,
		Bool: b,
	}
}

// Nil returns an LVal representing nil.
func Nil() *LVal {
	return &LVal{Type: LNil}
}

// List returns an LVal representing a list containing cells.
func List(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LList,
		Cells: cells,
	}
}

// Vector returns an LVal representing a vector containing cells.
func Vector(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LVector,
		Cells: cells,
	}
}

// Map returns an LVal representing a map.  The cells alternate between keys
// and values.
func Map(cells ...*LVal) *LVal {
	return &LVal{
		Type:  LMap,
		Cells: cells,
	}
}

// Len returns the number of cells in v.
func (v *LVal) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Cells)
}

// Copy creates a deep copy of the receiver.
func (v *LVal) Copy() *LVal {
	if v == nil {
		return nil
	}
	cp := &LVal{}
	*cp = *v                 // shallow copy of all fields
	cp.Cells = v.copyCells() // deep copy of v.Cells
	return cp
}

func (v *LVal) copyCells() []*LVal {
	if len(v.Cells) == 0 {
		return nil
	}
	cells := make([]*LVal, len(v.Cells))
	for i := range cells {
		cells[i] = v.Cells[i].Copy()
	}
	return cells
}

// Equal returns true if v and other are structurally equal.  Source
// locations are not compared.
func (v *LVal) Equal(other *LVal) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case LSymbol, LString, LKeyword:
		return v.Str == other.Str
	case LNumber:
		return v.Int == other.Int
	case LBool:
		return v.Bool == other.Bool
	case LNil, LInvalid:
		return true
	case LList, LVector, LMap:
		if len(v.Cells) != len(other.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(other.Cells[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func (v *LVal) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Type {
	case LSymbol, LKeyword:
		return v.Str
	case LString:
		return quoteString(v.Str)
	case LNumber:
		return strconv.Itoa(v.Int)
	case LBool:
		return strconv.FormatBool(v.Bool)
	case LNil:
		return "nil"
	case LList:
		return v.cellsString("(", ")")
	case LVector:
		return v.cellsString("[", "]")
	case LMap:
		return v.cellsString("{", "}")
	default:
		return "#<" + v.Type.String() + ">"
	}
}

func (v *LVal) cellsString(open, close string) string {
	var buf bytes.Buffer
	buf.WriteString(open)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(close)
	return buf.String()
}

// quoteString renders s so that the lexer reads it back as s.  Only double
// quotes are escaped because the lexer gives no other escape sequence a
// meaning.
func quoteString(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
