package parser

import (
	"errors"
	"testing"

	"github.com/luthersystems/malread/lisp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadString(t *testing.T) {
	vals, err := ReadString("(+ 1 2)")
	require.NoError(t, err)
	require.Len(t, vals, 1)
	expect := lisp.List(lisp.Symbol("+"), lisp.Symbol("1"), lisp.Symbol("2"))
	assert.True(t, expect.Equal(vals[0]), "%v", vals[0])

	_, err = ReadString("(+ 1 2")
	assert.True(t, errors.Is(err, lisp.ErrUnbalancedList))
	_, err = ReadString(`"abc`)
	assert.True(t, errors.Is(err, lisp.ErrUnbalancedString))

	vals, err = ReadString("; comment only")
	assert.NoError(t, err)
	assert.Empty(t, vals)
}

// Rendering a form and reading it again produces an equal form.
func TestRoundTrip(t *testing.T) {
	sources := []string{
		"abc",
		"(+ 1 2)",
		"(a (b c) d)",
		"(())",
		"[1 [2 (3 {})]]",
		`{"k" v "k2" [1 2]}`,
		`"plain"`,
		`"with \"quotes\""`,
		`"back\slash"`,
		`"a\\"b"`,
		`(str "a b" c "(d)")`,
		"(def! fib (fn* (n) (if (<= n 1) n (+ (fib (- n 1)) (fib (- n 2))))))",
		"a,b,,c",
		"(λ x→y)",
	}
	for _, src := range sources {
		first, err := ReadString(src)
		require.NoError(t, err, src)
		for _, v := range first {
			second, err := ReadString(v.String())
			require.NoError(t, err, v.String())
			require.Len(t, second, 1, v.String())
			assert.True(t, v.Equal(second[0]), "%s: %v != %v", src, v, second[0])
		}
	}
}

func TestReadSource(t *testing.T) {
	vals, err := ReadSource("prog.mal", "; header\n(a \"b\")")
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, "prog.mal:2:1", vals[0].Source.String())

	_, err = ReadSource("prog.mal", "[a b")
	require.Error(t, err)
	assert.Equal(t, "prog.mal:1:1: unbalanced-vector: unmatched [", err.Error())
}
