package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSource returns its lines in order followed by end, or ErrInterrupt
// when end is nil.
type mockSource struct {
	lines   []string
	end     error
	prompts []string
}

var _ LineSource = (*mockSource)(nil)
var _ Prompter = (*mockSource)(nil)

func (s *mockSource) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		if s.end != nil {
			return "", s.end
		}
		return "", ErrInterrupt
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	if line == "^C" {
		return "", ErrInterrupt
	}
	return line, nil
}

func (s *mockSource) SetPrompt(prompt string) {
	s.prompts = append(s.prompts, prompt)
}

func runLines(t *testing.T, cfg *Config, src *mockSource) (string, string, error) {
	var out, errOut bytes.Buffer
	err := Run(context.Background(), src, &out, &errOut, cfg)
	return out.String(), errOut.String(), err
}

func TestRun(t *testing.T) {
	src := &mockSource{lines: []string{
		"(+ 1 2)",
		"'x ^{\"a\" 1} y",
		"",
		"; comment",
		"[1 2] {a b}",
	}}
	out, errOut, err := runLines(t, nil, src)
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)\n(quote x)\n(with-meta y {\"a\" 1})\n[1 2]\n{a b}\n", out)
	assert.Empty(t, errOut)
}

func TestRunContinuesAfterError(t *testing.T) {
	src := &mockSource{lines: []string{
		"(+ 1 2",
		`"abc`,
		")",
		"ok",
	}}
	out, errOut, err := runLines(t, nil, src)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
	assert.Equal(t, ""+
		"<repl>:1:1: unbalanced-list: unmatched (\n"+
		"<repl>:1:1: unbalanced-string: unterminated string literal\n"+
		"<repl>:1:1: unbalanced-list: unexpected )\n", errOut)
}

func TestRunFailure(t *testing.T) {
	ioErr := fmt.Errorf("terminal went away")
	src := &mockSource{lines: []string{"a"}, end: ioErr}
	out, _, err := runLines(t, nil, src)
	assert.Equal(t, "a\n", out)
	var ferr *FailureError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, ioErr, errors.Unwrap(err))
	assert.Equal(t, "error reading input: terminal went away", err.Error())
}

func TestRunFailurePassthrough(t *testing.T) {
	ferr := &FailureError{Err: fmt.Errorf("bad fd")}
	src := &mockSource{end: ferr}
	_, _, err := runLines(t, nil, src)
	assert.Same(t, ferr, err)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &mockSource{lines: []string{"a"}}
	var out bytes.Buffer
	err := Run(ctx, src, &out, &out, nil)
	assert.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Len(t, src.lines, 1)
}

func TestRunMultiline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Multiline = true
	src := &mockSource{lines: []string{
		"(def! x",
		"  [1 2",
		"   3])",
		`"multi`,
		`line"`,
		"(a",
		"^C",
		"b)",
		"'",
		"c",
	}}
	out, errOut, err := runLines(t, cfg, src)
	require.NoError(t, err)
	assert.Equal(t, "(def! x [1 2 3])\n\"multi\nline\"\n(quote c)\n", out)
	assert.Equal(t, "<repl>:1:2: unbalanced-list: unexpected )\n", errOut)
	assert.Equal(t, []string{
		"user> ",
		"      ",
		"user> ",
		"      ",
		"user> ",
		"      ",
		"user> ",
		"      ",
		"user> ",
	}, src.prompts)
}

func TestRunColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = true
	src := &mockSource{lines: []string{")"}}
	_, errOut, err := runLines(t, cfg, src)
	require.NoError(t, err)
	assert.Contains(t, errOut, "unbalanced-list: unexpected )")
}
