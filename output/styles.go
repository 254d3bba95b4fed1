// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles colors text for the writer it was created for. Writers that are not
// terminals get plain text.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Date returns a styled date (cyan).
func (s *Styles) Date(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("6")).
		String()
}

// Name returns a styled account or asset name (blue).
func (s *Styles) Name(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("4")).
		String()
}

// Signed returns a value colored green, or red when negative.
func (s *Styles) Signed(text string, negative bool) string {
	color := "2"
	if negative {
		color = "1"
	}
	return s.output.String(text).
		Foreground(s.output.Color(color)).
		String()
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim returns dimmed text for secondary information.
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// Timing returns a timing string, dimmed unless the operation was slow.
func (s *Styles) Timing(text string, isSlowOperation bool) string {
	if isSlowOperation {
		return s.Warning(text)
	}
	return s.Dim(text)
}

// Output returns the underlying termenv Output.
func (s *Styles) Output() *termenv.Output {
	return s.output
}
