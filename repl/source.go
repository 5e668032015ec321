package repl

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// ErrInterrupt is returned by a LineSource when the user ends the session,
// either with an interrupt (Ctrl-C) or at the end of input (Ctrl-D).
var ErrInterrupt = errors.New("interrupt")

// FailureError is returned by a LineSource when input cannot be read.
type FailureError struct {
	Err error
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("error reading input: %v", e.Err)
}

func (e *FailureError) Unwrap() error {
	return e.Err
}

// LineSource produces lines of input one at a time.  ReadLine blocks until a
// line is available.  It returns ErrInterrupt when the session should end
// and a *FailureError when input could not be read.
type LineSource interface {
	ReadLine() (string, error)
}

// Prompter is implemented by a LineSource which displays a prompt.
type Prompter interface {
	SetPrompt(prompt string)
}

// Readline is a LineSource which reads from a terminal with line editing and
// history.
type Readline struct {
	rl *readline.Instance
}

var _ LineSource = (*Readline)(nil)
var _ Prompter = (*Readline)(nil)

// NewReadline initializes a terminal line editor configured by cfg.
func NewReadline(cfg *Config) (*Readline, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		HistoryLimit:    cfg.HistoryLimit,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, &FailureError{Err: err}
	}
	return &Readline{rl: rl}, nil
}

// ReadLine implements LineSource.
func (r *Readline) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return "", ErrInterrupt
	default:
		return "", &FailureError{Err: err}
	}
}

// SetPrompt implements Prompter.
func (r *Readline) SetPrompt(prompt string) {
	r.rl.SetPrompt(prompt)
}

// Close restores the terminal and flushes history.
func (r *Readline) Close() error {
	return r.rl.Close()
}
