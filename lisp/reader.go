package lisp

import "io"

// Reader parses the forms contained in a source stream.  The name is used
// to annotate the locations of values and errors.
type Reader interface {
	Read(name string, r io.Reader) ([]*LVal, error)
}
