package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
)

// colorMode is the value of the --color flag.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

var colorModes = []string{string(colorAuto), string(colorAlways), string(colorNever)}

var _ pflag.Value = (*colorMode)(nil)

func (m *colorMode) String() string { return string(*m) }

func (m *colorMode) Set(s string) error {
	switch colorMode(s) {
	case colorAuto, colorAlways, colorNever:
		*m = colorMode(s)
		return nil
	}
	return fmt.Errorf("must be one of %v", colorModes)
}

func (m *colorMode) Type() string { return "when" }

// profile selects the color profile for writing to out. Auto mode colors
// terminals only and honours NO_COLOR and CLICOLOR=0.
func (m *colorMode) profile(out io.Writer) termenv.Profile {
	switch *m {
	case colorAlways:
		return termenv.ANSI
	case colorNever:
		return termenv.Ascii
	}
	if termenv.EnvNoColor() || !isTerminal(out) {
		return termenv.Ascii
	}
	return termenv.ANSI
}
