package token

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	s := NewScanner("test", "ab\nc")
	c, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 'a', c)

	require.NoError(t, s.ScanRune())
	require.NoError(t, s.ScanRune())
	assert.Equal(t, 'b', s.Rune())
	tok := s.EmitToken(ATOM)
	assert.Equal(t, "ab", tok.Text)
	assert.Equal(t, "test:1:1", tok.Source.String())

	require.NoError(t, s.ScanRune())
	s.Ignore()
	require.NoError(t, s.ScanRune())
	tok = s.EmitToken(ATOM)
	assert.Equal(t, "c", tok.Text)
	assert.Equal(t, &Location{File: "test", Pos: 3, Line: 2, Col: 1}, tok.Source)

	_, ok = s.Peek()
	assert.False(t, ok)
	assert.Equal(t, io.EOF, s.ScanRune())
}

func TestScannerInvalidUTF8(t *testing.T) {
	s := NewScanner("", "\xff")
	_, ok := s.Peek()
	assert.False(t, ok)
	assert.Equal(t, &Location{Pos: 0, Line: 1, Col: 1}, s.LocNext())
	err := s.ScanRune()
	if assert.Error(t, err) {
		assert.NotEqual(t, io.EOF, err)
		assert.Contains(t, err.Error(), "byte 0xff")
	}
}

func TestScannerLocNext(t *testing.T) {
	s := NewScanner("f", "a\nb")
	require.NoError(t, s.ScanRune())
	assert.Equal(t, &Location{File: "f", Pos: 1, Line: 1, Col: 2}, s.LocNext())
	require.NoError(t, s.ScanRune())
	assert.Equal(t, &Location{File: "f", Pos: 2, Line: 2, Col: 1}, s.LocNext())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "~@", SPLICE_UNQUOTE.String())
	assert.Equal(t, "invalid", Type(1000).String())
	assert.Equal(t, PAREN_R, PAREN_L.Closer())
	assert.Equal(t, BRACE_L, BRACE_R.Opener())
	assert.Equal(t, INVALID, ATOM.Closer())
	assert.True(t, DEREF.IsMacro())
	assert.False(t, STRING.IsMacro())
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "f[12]", (&Location{File: "f", Pos: 12}).String())
	assert.Equal(t, "f:3", (&Location{File: "f", Line: 3}).String())
	assert.Equal(t, "f:3:4", (&Location{File: "f", Line: 3, Col: 4}).String())
	var loc *Location
	assert.Equal(t, "?", loc.String())
}
