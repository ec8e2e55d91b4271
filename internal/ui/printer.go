// Package ui prints step progress for the CLI pipelines.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	stepStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
)

// Printer writes styled status lines, falling back to plain text when the
// output is not a terminal.
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter returns a printer for out.
func NewPrinter(out io.Writer) *Printer {
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = isatty.IsTerminal(f.Fd())
	}
	return &Printer{out: out, styled: styled}
}

// Step announces the start of a pipeline phase.
func (p *Printer) Step(msg string) {
	p.println(stepStyle, "==> "+msg)
}

// Success reports a completed phase.
func (p *Printer) Success(msg string) {
	p.println(okStyle, "✓ "+msg)
}

// Fail reports a failed phase.
func (p *Printer) Fail(msg string) {
	p.println(failStyle, "✗ "+msg)
}

func (p *Printer) println(style lipgloss.Style, msg string) {
	if p.styled {
		msg = style.Render(msg)
	}
	fmt.Fprintln(p.out, msg)
}
