package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// labelWidth aligns report values in one column.
const labelWidth = 22

// reporter writes the human-readable result of a command. Styling is only
// applied when the destination is a terminal.
type reporter struct {
	w      io.Writer
	styled bool

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
	dimStyle   lipgloss.Style
}

func newReporter(w io.Writer, plain bool) *reporter {
	return &reporter{
		w:          w,
		styled:     !plain && isTerminal(w),
		titleStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		labelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		valueStyle: lipgloss.NewStyle().Bold(true),
		dimStyle:   lipgloss.NewStyle().Faint(true),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *reporter) render(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}

	return style.Render(s)
}

// Title writes a section heading.
func (r *reporter) Title(format string, args ...any) {
	fmt.Fprintln(r.w, r.render(r.titleStyle, fmt.Sprintf(format, args...)))
}

// Field writes one aligned "label: value" line.
func (r *reporter) Field(label string, format string, args ...any) {
	padded := fmt.Sprintf("  %-*s", labelWidth, label+":")
	fmt.Fprintf(r.w, "%s %s\n", r.render(r.labelStyle, padded), r.render(r.valueStyle, fmt.Sprintf(format, args...)))
}

// Item writes an indented list entry.
func (r *reporter) Item(format string, args ...any) {
	fmt.Fprintf(r.w, "    %s\n", fmt.Sprintf(format, args...))
}

// Elapsed writes the wall-clock time since start.
func (r *reporter) Elapsed(start time.Time) {
	padded := fmt.Sprintf("  %-*s", labelWidth, "Elapsed:")
	fmt.Fprintf(r.w, "%s %s\n", r.render(r.labelStyle, padded), r.render(r.dimStyle, formatDuration(time.Since(start))))
}

// Blank writes an empty line.
func (r *reporter) Blank() {
	fmt.Fprintln(r.w)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}

// formatCount renders n with thousands separators.
func formatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}

	return b.String()
}
