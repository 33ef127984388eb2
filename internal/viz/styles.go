package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/orbitsim/internal/chart"
)

type styles struct {
	title   lipgloss.Style
	frame   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Frame),
		label:   lipgloss.NewStyle().Foreground(t.Text),
		muted:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		warning: lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
	}
}

// legend renders one swatch per series.
func legend(ch *chart.Chart, t Theme) string {
	if ch.Legend == chart.LegendHidden {
		return ""
	}
	parts := make([]string, 0, len(ch.Series))
	for i, s := range ch.Series {
		col := t.Series[i%len(t.Series)]
		swatch := lipgloss.NewStyle().Foreground(col).Render("●")
		parts = append(parts, fmt.Sprintf("%s %s (%d)", swatch, s.Name, s.Len()))
	}
	return strings.Join(parts, "   ")
}

// axes renders the data range shown on each axis.
func axes(ch *chart.Chart, b chart.Bounds, st styles) string {
	x := fmt.Sprintf("%s: %s .. %s", ch.XLabel, formatValue(b.MinX), formatValue(b.MaxX))
	y := fmt.Sprintf("%s: %s .. %s", ch.YLabel, formatValue(b.MinY), formatValue(b.MaxY))
	return st.label.Render(x) + "   " + st.label.Render(y)
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
