// Package report abstracts user-facing feedback behind a narrow interface
// so the setup controller stays testable without capturing process streams.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"

	apperrors "github.com/raveheart1/notekit/internal/errors"
)

// Reporter receives the controller's user-visible outcomes.
type Reporter interface {
	// Success reports a completed installation with the installed commands.
	Success(msg string, commands []string)
	// Noop reports a benign no-op (already initialized, update available).
	Noop(msg string, commands []string)
	// Failure reports a terminal classified failure.
	Failure(err *apperrors.CLIError)
	// StartProgress begins an activity indicator with the given message.
	StartProgress(msg string)
	// StopProgress ends the activity indicator.
	StopProgress()
}

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	noopMark = color.New(color.FgYellow).SprintFunc()
	cmdName  = color.New(color.FgCyan).SprintFunc()
	dim      = color.New(color.Faint).SprintFunc()
)

// Console is the terminal Reporter. Progress spinners are only shown on a
// real TTY; plain output is written otherwise.
type Console struct {
	out     io.Writer
	errOut  io.Writer
	spin    *spinner.Spinner
	animate bool
}

// Option configures a Console reporter.
type Option func(*Console)

// WithOutput redirects normal output. Redirecting away from stdout (as
// command tests do) disables the spinner, which writes to the terminal
// directly.
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.out = w
		if w != io.Writer(os.Stdout) {
			c.animate = false
		}
	}
}

// WithProgress toggles the spinner regardless of TTY detection.
func WithProgress(enabled bool) Option {
	return func(c *Console) { c.animate = c.animate && enabled }
}

// NewConsole returns a Reporter writing to stdout/stderr.
func NewConsole(opts ...Option) *Console {
	c := &Console{
		out:     os.Stdout,
		errOut:  os.Stderr,
		animate: term.IsTerminal(int(os.Stdout.Fd())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) Success(msg string, commands []string) {
	fmt.Fprintf(c.out, "%s %s\n", okMark("✓"), msg)
	c.printCommands(commands)
	fmt.Fprintf(c.out, "\nRun %s in OpenCode to use a command.\n", cmdName("/<name>"))
	fmt.Fprintf(c.out, "%s\n", dim("Check the installation anytime with 'notekit status'."))
}

func (c *Console) Noop(msg string, commands []string) {
	fmt.Fprintf(c.out, "%s %s\n", noopMark("•"), msg)
	c.printCommands(commands)
}

func (c *Console) Failure(err *apperrors.CLIError) {
	apperrors.FprintError(c.errOut, err)
}

func (c *Console) StartProgress(msg string) {
	if !c.animate {
		fmt.Fprintln(c.out, msg)
		return
	}
	c.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	c.spin.Suffix = " " + msg
	c.spin.Start()
}

func (c *Console) StopProgress() {
	if c.spin != nil {
		c.spin.Stop()
		c.spin = nil
	}
}

func (c *Console) printCommands(commands []string) {
	for _, name := range commands {
		fmt.Fprintf(c.out, "  %s\n", cmdName("/"+name))
	}
}
