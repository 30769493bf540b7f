// Colors the suffix of a target column that differs from a source column
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fractalqb/coldiff"
)

// Exit codes
const (
	exitOK      = 0
	exitUsage   = 1
	exitRuntime = 2
)

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

type rootCmd struct {
	cobra.Command
	color   colorMode
	style   string
	maxLine int

	filter coldiff.Filter
}

func newRootCmd(prog string) *rootCmd {
	cmd := &rootCmd{
		Command: cobra.Command{
			Use:   prog + " [flags] source_col,target_col",
			Short: "Colors the suffix of target column differing from source column",
		},
		color:   colorAuto,
		style:   coldiff.DefaultColor,
		maxLine: coldiff.DefaultMaxLineSize,
	}
	cmd.Args = cmd.parseArgs
	cmd.RunE = cmd.run
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().SortFlags = false
	cmd.Flags().Var(&cmd.color, "color",
		"When to color output: "+strings.Join(colorModes, ", "))
	cmd.Flags().StringVarP(&cmd.style, "style", "s", cmd.style,
		"Highlight color: "+strings.Join(coldiff.ColorNames(), ", "))
	cmd.Flags().IntVar(&cmd.maxLine, "max-line-size", cmd.maxLine,
		"Maximum accepted length of an input line in bytes")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		usage(c.OutOrStdout(), prog, c)
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		usage(c.OutOrStdout(), prog, c)
		return nil
	})
	return cmd
}

func usage(w io.Writer, prog string, cmd *cobra.Command) {
	fmt.Fprintf(w, `Usage: %s [flags] source_col,target_col
Colors the suffix of target column differing from source column.

source_col and target_col are the column numbers of source and target columns
respectively. Each column is separated by one or more whitespace characters.
Columns are numbered from 1.

FLAGS
`, prog)
	fmt.Fprint(w, cmd.Flags().FlagUsages())
}

func (cmd *rootCmd) parseArgs(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageError{fmt.Errorf("need 1 argument, got %d", len(args))}
	}
	src, tgt, err := coldiff.ParseColumns(args[0])
	if err != nil {
		return usageError{err}
	}
	cmd.filter.Source, cmd.filter.Target = src, tgt
	return nil
}

func (cmd *rootCmd) run(c *cobra.Command, _ []string) error {
	out := c.OutOrStdout()
	hl, err := coldiff.ColorHighlighter(cmd.color.profile(out), cmd.style)
	if err != nil {
		return usageError{err}
	}
	if cmd.maxLine <= 0 {
		return usageError{fmt.Errorf("max-line-size must be positive, got %d", cmd.maxLine)}
	}
	cmd.filter.Highlight = hl
	cmd.filter.MaxLineSize = cmd.maxLine
	return cmd.filter.Run(out, c.InOrStdin())
}

// isTerminal reports whether w is a terminal. Only *os.File can be one.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func execute(args []string, stdin io.Reader, stdout io.Writer) int {
	prog := filepath.Base(args[0])
	cmd := newRootCmd(prog)
	cmd.SetArgs(args[1:])
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	err := cmd.Execute()
	var uerr usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &uerr):
		usage(stdout, prog, &cmd.Command)
		return exitUsage
	}
	log.Println(err)
	return exitRuntime
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("coldiff: ")
	os.Exit(execute(os.Args, os.Stdin, os.Stdout))
}
