// Package console is the installer's reporting sink: severity-tagged
// messages with optional terminal coloring.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"golang.org/x/crypto/ssh/terminal"
)

// Level is a closed severity enumeration. Critical carries no exit
// behavior of its own; the caller decides termination.
type Level int

const (
	Info Level = iota
	Success
	Error
	Critical
)

type Console struct {
	Out   io.Writer
	Color bool
}

// New builds a console writing to stderr, with coloring enabled when
// stderr is a terminal and NO_COLOR is unset.
func New() *Console {
	stderr := os.Stderr
	_, colorOn := TTY(int(stderr.Fd()))
	return &Console{Out: stderr, Color: colorOn}
}

// TTY reports whether fd is a terminal and whether colored output
// should be used on it. See https://no-color.org
func TTY(fd int) (istty, colorOn bool) {
	istty = terminal.IsTerminal(fd)
	if istty {
		colorOn = true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		colorOn = false
	}
	return
}

// Report writes one message at the given severity.
func (c *Console) Report(lvl Level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if c.Color {
		msg = style(lvl).Sprint(msg)
	}
	fmt.Fprintln(c.Out, msg)
}

func style(lvl Level) color.Style {
	switch lvl {
	case Success:
		return color.New(color.LightGreen)
	case Error:
		return color.New(color.LightRed)
	case Critical:
		return color.New(color.Red, color.OpBold)
	}
	return color.New(color.Cyan)
}
