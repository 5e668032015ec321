package lisp

import (
	"fmt"

	"github.com/luthersystems/malread/parser/token"
)

// Condition classifies a ReaderError.
type Condition uint

// Possible Condition values
const (
	CondInvalid Condition = iota
	CondUnbalancedString
	CondUnbalancedList
	CondUnbalancedVector
	CondUnbalancedMap
	CondUnexpectedEOF
	CondScanError
)

var conditionStrings = []string{
	CondInvalid:          "reader-error",
	CondUnbalancedString: "unbalanced-string",
	CondUnbalancedList:   "unbalanced-list",
	CondUnbalancedVector: "unbalanced-vector",
	CondUnbalancedMap:    "unbalanced-map",
	CondUnexpectedEOF:    "unexpected-end-of-input",
	CondScanError:        "scan-error",
}

func (c Condition) String() string {
	if int(c) >= len(conditionStrings) {
		return conditionStrings[CondInvalid]
	}
	return conditionStrings[c]
}

// Collection returns the name of the collection an unbalanced condition
// refers to, or an empty string for other conditions.
func (c Condition) Collection() string {
	switch c {
	case CondUnbalancedList:
		return "list"
	case CondUnbalancedVector:
		return "vector"
	case CondUnbalancedMap:
		return "map"
	}
	return ""
}

// Sentinel errors for use with errors.Is.  A *ReaderError matches the
// sentinel with the same condition regardless of its location or message.
var (
	ErrUnbalancedString     = &ReaderError{Condition: CondUnbalancedString, Msg: "unbalanced string"}
	ErrUnbalancedList       = &ReaderError{Condition: CondUnbalancedList, Msg: "unbalanced list"}
	ErrUnbalancedVector     = &ReaderError{Condition: CondUnbalancedVector, Msg: "unbalanced vector"}
	ErrUnbalancedMap        = &ReaderError{Condition: CondUnbalancedMap, Msg: "unbalanced map"}
	ErrUnexpectedEndOfInput = &ReaderError{Condition: CondUnexpectedEOF, Msg: "unexpected end of input"}
	ErrScan                 = &ReaderError{Condition: CondScanError, Msg: "scan error"}
)

// ReaderError is returned by the lexer and parser when source text cannot be
// read.  Reader errors never terminate a session; callers report them and
// move on to the next line.
type ReaderError struct {
	Condition Condition
	Source    *token.Location
	Msg       string

	// Incomplete is true when the error was caused by running out of input.
	// Appending more text to the source may resolve an incomplete error.
	Incomplete bool
}

// ReaderErrorf returns a new ReaderError with a formatted message.
func ReaderErrorf(cond Condition, loc *token.Location, format string, v ...interface{}) *ReaderError {
	return &ReaderError{
		Condition: cond,
		Source:    loc,
		Msg:       fmt.Sprintf(format, v...),
	}
}

// Error implements the error interface.
func (e *ReaderError) Error() string {
	if e.Source == nil {
		return fmt.Sprintf("%s: %s", e.Condition, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Source, e.Condition, e.Msg)
}

// Is allows errors.Is to match e against the sentinel errors of this
// package.
func (e *ReaderError) Is(target error) bool {
	t, ok := target.(*ReaderError)
	if !ok {
		return false
	}
	return t.Condition == e.Condition
}
