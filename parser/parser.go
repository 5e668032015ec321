// Package parser provides a reader for mal source text.
//
//	form     := <list> | <vector> | <map> | <macro> | <string> | <atom>
//	list     := '(' <form>* ')'
//	vector   := '[' <form>* ']'
//	map      := '{' (<form> <form>)* '}'
//	macro    := ('\'' | '`' | '~' | '~@' | '@') <form> | '^' <form> <form>
//	string   := '"' (/[^"\\]/ | '\' '"' | '\')* '"'
//	comment  := ';' /[^\n]*/
//	atom     := /[^\s,()\[\]{}'"`;]+/
//
// Whitespace and commas separate forms.  Atoms are read as symbols without
// further classification.
package parser

import (
	"github.com/luthersystems/malread/lisp"
	"github.com/luthersystems/malread/parser/lexer"
	"github.com/luthersystems/malread/parser/rdparser"
)

// NewReader returns a new lisp.Reader
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// ReadString parses the forms contained in text, typically one line of
// input read at a prompt.
func ReadString(text string) ([]*lisp.LVal, error) {
	return ReadSource("", text)
}

// ReadSource is like ReadString but annotates the locations of values and
// errors with the given source name.
func ReadSource(name string, text string) ([]*lisp.LVal, error) {
	toks, err := lexer.TokenizeFile(name, text)
	if err != nil {
		return nil, err
	}
	return rdparser.Read(toks)
}
