package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Console writes styled messages. Info, step and success lines go to out;
// warnings, errors and progress bars go to errOut.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer

	infoStyle    lipgloss.Style
	stepStyle    lipgloss.Style
	successStyle lipgloss.Style
	warnStyle    lipgloss.Style
	errorStyle   lipgloss.Style
}

// NewConsole creates a console. Colors are used only when the writer is a
// terminal that supports them.
func NewConsole(out, errOut io.Writer) *Console {
	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errOut)

	return &Console{
		out:    out,
		errOut: errOut,

		infoStyle:    outRenderer.NewStyle().Foreground(lipgloss.Color(ColorInfo)),
		stepStyle:    outRenderer.NewStyle().Foreground(lipgloss.Color(ColorStep)).Bold(true),
		successStyle: outRenderer.NewStyle().Foreground(lipgloss.Color(ColorSuccess)),
		warnStyle:    errRenderer.NewStyle().Foreground(lipgloss.Color(ColorWarning)),
		errorStyle:   errRenderer.NewStyle().Foreground(lipgloss.Color(ColorError)).Bold(true),
	}
}

// Info prints a plain status line
func (c *Console) Info(msg string) {
	c.println(c.out, c.infoStyle, msg)
}

// Step prints the start of a new pipeline item
func (c *Console) Step(msg string) {
	c.println(c.out, c.stepStyle, IconPackage+IconSeparator+msg)
}

// Success prints a completion line
func (c *Console) Success(msg string) {
	c.println(c.out, c.successStyle, msg)
}

// Warn prints a non-fatal warning
func (c *Console) Warn(msg string) {
	c.println(c.errOut, c.warnStyle, msg)
}

// Error prints a fatal error line
func (c *Console) Error(msg string) {
	c.println(c.errOut, c.errorStyle, IconError+IconSeparator+ErrorPrefix+msg)
}

// StartProgress starts a byte progress bar on errOut. A total of zero or less
// shows a spinner instead of a bar.
func (c *Console) StartProgress(label string, total int64) *Progress {
	return newProgress(c.errOut, label, total)
}

func (c *Console) println(w io.Writer, style lipgloss.Style, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(w, style.Render(msg))
}
