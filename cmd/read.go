package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/luthersystems/malread/parser"
	"github.com/luthersystems/malread/parser/lexer"
	"github.com/spf13/cobra"
)

var (
	readExpression bool
	readTokens     bool
)

// readCmd represents the read command
var readCmd = &cobra.Command{
	Use:   "read [file ...]",
	Short: "Read mal source and print its forms",
	Long: `Read mal source supplied via the command line or files and print the
forms it contains, one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srcs, err := readSources(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, src := range srcs {
			if readTokens {
				err = printTokens(out, src.name, src.text)
			} else {
				err = printForms(out, src.name, src.text)
			}
			if err != nil {
				return err
			}
		}
		return nil
	},
}

type source struct {
	name string
	text []byte
}

func readSources(args []string) ([]source, error) {
	srcs := make([]source, len(args))
	if readExpression {
		for i := range args {
			srcs[i] = source{name: fmt.Sprintf("<arg%d>", i), text: []byte(args[i])}
		}
		return srcs, nil
	}
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []source{{name: "<stdin>", text: b}}, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		srcs[i] = source{name: path, text: b}
	}
	return srcs, nil
}

func printForms(w io.Writer, name string, text []byte) error {
	forms, err := parser.NewReader().Read(name, bytes.NewReader(text))
	if err != nil {
		return err
	}
	for _, v := range forms {
		fmt.Fprintln(w, v)
	}
	return nil
}

func printTokens(w io.Writer, name string, text []byte) error {
	toks, err := lexer.TokenizeFile(name, string(text))
	if err != nil {
		return err
	}
	for _, tok := range toks {
		fmt.Fprintf(w, "%s\t%s\n", tok.Source, tok)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().BoolVarP(&readExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	readCmd.Flags().BoolVarP(&readTokens, "tokens", "t", false,
		"Print the token stream instead of forms")
}
