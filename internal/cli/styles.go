package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// outputStyles holds styles bound to a specific writer, so output that is
// not a terminal stays plain text.
type outputStyles struct {
	header lipgloss.Style
	id     lipgloss.Style
	dim    lipgloss.Style
	failed lipgloss.Style
}

func newOutputStyles(w io.Writer) outputStyles {
	r := lipgloss.NewRenderer(w)
	return outputStyles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		id:     r.NewStyle().Foreground(lipgloss.Color("214")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("240")),
		failed: r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
