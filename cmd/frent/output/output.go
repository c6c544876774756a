// Package output renders command results for the terminal client.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	// Color styles for terminal output
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// Printer writes either styled text or indented JSON.
type Printer struct {
	w    io.Writer
	json bool
}

// New creates a printer. With asJSON set, Result writes JSON and the
// decorated helpers stay silent.
func New(w io.Writer, asJSON bool) *Printer {
	return &Printer{w: w, json: asJSON}
}

// JSON reports whether the printer is in JSON mode.
func (p *Printer) JSON() bool {
	return p.json
}

// Result writes v as JSON in JSON mode, and calls text otherwise.
func (p *Printer) Result(v any, text func()) error {
	if !p.json {
		text()
		return nil
	}
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Success prints a success message
func (p *Printer) Success(format string, args ...any) {
	p.line(successStyle.Render("✓ "), format, args...)
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...any) {
	p.line(warningStyle.Render("⚠ "), format, args...)
}

// Error prints an error message
func (p *Printer) Error(format string, args ...any) {
	p.line(errorStyle.Render("✗ "), format, args...)
}

// Muted prints a muted message
func (p *Printer) Muted(format string, args ...any) {
	if p.json {
		return
	}
	_, _ = fmt.Fprintln(p.w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Table prints rows under headers. An empty row set prints empty instead.
func (p *Printer) Table(headers []string, rows [][]string, empty string) {
	if p.json {
		return
	}
	if len(rows) == 0 {
		p.Muted("%s", empty)
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, _ = fmt.Fprintln(p.w, t.Render())
}

func (p *Printer) line(prefix, format string, args ...any) {
	if p.json {
		return
	}
	_, _ = fmt.Fprintln(p.w, prefix+fmt.Sprintf(format, args...))
}
