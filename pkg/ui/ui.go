// Package ui prints command results either styled for a terminal or as plain
// text for pipes and NO_COLOR environments.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/dotrs/dotrs/pkg/style"
)

// Printer writes user facing output
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter creates a printer for w. FormatAuto detects terminal support when
// w is an *os.File and falls back to plain text otherwise.
func NewPrinter(format Format, w io.Writer) *Printer {
	if format == FormatAuto {
		format = FormatText
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		}
	}
	return &Printer{out: w, styled: format == FormatTerminal}
}

// Styled reports whether output carries colors
func (p *Printer) Styled() bool {
	return p.styled
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

// Line prints a plain line
func (p *Printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success prints a line prefixed with the success indicator
func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "%s %s\n", p.render(style.SuccessStyle, style.SuccessIndicator), fmt.Sprintf(format, args...))
}

// Warning prints a line prefixed with the warning indicator
func (p *Printer) Warning(format string, args ...interface{}) {
	fmt.Fprintf(p.out, "%s %s\n", p.render(style.WarningStyle, style.WarningIndicator), fmt.Sprintf(format, args...))
}

// Error prints err as "error: <message>"
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.out, "%s %s\n", p.render(style.ErrorStyle, "error:"), err.Error())
}

// Title prints a bold heading
func (p *Printer) Title(text string) {
	fmt.Fprintln(p.out, p.render(style.TitleStyle, text))
}

// Muted prints a dimmed line
func (p *Printer) Muted(text string) {
	fmt.Fprintln(p.out, p.render(style.MutedStyle, text))
}

// Path styles a filesystem path for inline use
func (p *Printer) Path(path string) string {
	return p.render(style.PathStyle, path)
}

// Profile styles a profile name for inline use
func (p *Printer) Profile(name string) string {
	return p.render(style.ProfileStyle, name)
}

// Secret styles an encrypted value snippet
func (p *Printer) Secret(text string) string {
	return p.render(style.SecretStyle, text)
}

// Statuses prints one status line per path
func (p *Printer) Statuses(status style.Status, paths []string) {
	for _, path := range paths {
		fmt.Fprintln(p.out, style.StatusLine(status, path, p.styled))
	}
}

// BulletList prints paths as a bullet list. Terminal output goes through
// pterm; plain output uses a dash per item.
func (p *Printer) BulletList(items []string) error {
	if len(items) == 0 {
		return nil
	}

	if !p.styled {
		var b strings.Builder
		for _, item := range items {
			b.WriteString("- " + item + "\n")
		}
		_, err := io.WriteString(p.out, b.String())
		return err
	}

	listItems := make([]pterm.BulletListItem, 0, len(items))
	for _, item := range items {
		listItems = append(listItems, pterm.BulletListItem{Level: 0, Text: item})
	}
	rendered, err := pterm.DefaultBulletList.WithItems(listItems).Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(p.out, rendered)
	return err
}
