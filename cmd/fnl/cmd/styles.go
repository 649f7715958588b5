package cmd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/letung3105/fnl/internal/fnl"
)

var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Violet
	colorError   = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
)

// styles renders headings, errors and secondary text. Every field is the
// identity function when color is disabled.
type styles struct {
	heading func(...string) string
	err     func(...string) string
	muted   func(...string) string
}

// newStyles detects color support on w, so styled text must be written to w.
func newStyles(w io.Writer, noColor bool) styles {
	if noColor {
		return styles{plain, plain, plain}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Foreground(colorPrimary).Bold(true).Render,
		err:     r.NewStyle().Foreground(colorError).Render,
		muted:   r.NewStyle().Foreground(colorMuted).Render,
	}
}

func plain(strs ...string) string {
	return strings.Join(strs, " ")
}

// styledWriter applies a style to everything written through it. It lets the
// fnl reporter print colored errors.
type styledWriter struct {
	w     io.Writer
	style func(...string) string
}

func (sw styledWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(sw.w, sw.style(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// newErrorReporter reports errors on the command's stderr, styled by a
// renderer bound to stderr.
func newErrorReporter(cmd *cobra.Command, noColor bool) fnl.Reporter {
	st := newStyles(cmd.ErrOrStderr(), noColor)
	return fnl.NewSimpleReporter(styledWriter{cmd.ErrOrStderr(), st.err})
}
