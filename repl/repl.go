package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/luthersystems/malread/lisp"
	"github.com/luthersystems/malread/parser"
)

// sourceName annotates the locations of forms read at the prompt.
const sourceName = "<repl>"

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// RunRepl runs a simple repl on the terminal.
func RunRepl(ctx context.Context, cfg *Config) error {
	rl, err := NewReadline(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()
	return Run(ctx, rl, os.Stdout, os.Stderr, cfg)
}

// Run reads lines from src until the session ends.  The forms read from each
// line are printed to out, one per line.  Reader errors are reported to
// errOut and do not end the session.  Run returns nil when src signals
// ErrInterrupt or ctx is done, and a *FailureError when src fails.
func Run(ctx context.Context, src LineSource, out io.Writer, errOut io.Writer, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &session{
		src:    src,
		out:    out,
		errOut: errOut,
		cfg:    cfg,
	}
	return r.run(ctx)
}

type session struct {
	src    LineSource
	out    io.Writer
	errOut io.Writer
	cfg    *Config
	buf    []string // lines of an incomplete form
	prompt string
}

func (r *session) run(ctx context.Context) error {
	r.setPrompt(r.cfg.Prompt)
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := r.src.ReadLine()
		if errors.Is(err, ErrInterrupt) {
			if len(r.buf) != 0 {
				r.reset()
				continue
			}
			return nil
		}
		if err != nil {
			var ferr *FailureError
			if !errors.As(err, &ferr) {
				err = &FailureError{Err: err}
			}
			return err
		}
		if len(r.buf) != 0 {
			line = strings.Join(append(r.buf, line), "\n")
			r.buf = nil
		}
		r.rep(line)
	}
}

// rep reads and prints the forms in line.
func (r *session) rep(line string) {
	forms, err := parser.ReadSource(sourceName, line)
	if err != nil {
		if r.cfg.Multiline && isIncomplete(err) {
			r.buf = append(r.buf, line)
			r.setPrompt(r.cfg.continuationPrompt())
			return
		}
		r.setPrompt(r.cfg.Prompt)
		r.errln(err)
		return
	}
	r.setPrompt(r.cfg.Prompt)
	for _, v := range forms {
		fmt.Fprintln(r.out, v)
	}
}

func (r *session) reset() {
	r.buf = nil
	r.setPrompt(r.cfg.Prompt)
}

func (r *session) setPrompt(prompt string) {
	if prompt == r.prompt {
		return
	}
	r.prompt = prompt
	if p, ok := r.src.(Prompter); ok {
		p.SetPrompt(prompt)
	}
}

func (r *session) errln(err error) {
	msg := err.Error()
	if r.cfg.Color {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(r.errOut, msg)
}

// isIncomplete returns true if err was caused by the source text ending in
// the middle of a form.
func isIncomplete(err error) bool {
	var rerr *lisp.ReaderError
	return errors.As(err, &rerr) && rerr.Incomplete
}
