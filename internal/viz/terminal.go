package viz

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitsim/internal/chart"
)

const (
	defaultCols = 70
	defaultRows = 20
)

// Terminal prints a chart once: a framed Braille scatter plot, the axis
// ranges and a legend. With Series set it also plots the first series' x, y
// and distance from the origin against the sample index.
type Terminal struct {
	Out    io.Writer
	Cols   int
	Rows   int
	Theme  Theme
	Series bool
	Color  bool
}

func NewTerminal(out io.Writer) *Terminal {
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{
		Out:   out,
		Cols:  defaultCols,
		Rows:  defaultRows,
		Theme: ThemeDefault,
		Color: true,
	}
}

func (t *Terminal) Show(ch *chart.Chart) error {
	_, err := io.WriteString(t.Out, t.Render(ch))
	return err
}

// Render returns what Show writes.
func (t *Terminal) Render(ch *chart.Chart) string {
	st := newStyles(t.Theme)
	var b strings.Builder

	b.WriteString(st.title.Render(ch.Title))
	b.WriteString("\n")

	view, ok := ch.DataBounds()
	if !ok {
		b.WriteString(st.warning.Render("no finite points to plot"))
		b.WriteString("\n")
		return b.String()
	}

	canvas := NewCanvas(t.Cols, t.Rows)
	view = view.Square(float64(canvas.DotsWide()) / float64(canvas.DotsHigh()))
	canvas.Plot(ch, view)

	plot := canvas.String()
	if t.Color {
		plot = canvas.Render(t.Theme.Series)
	}
	b.WriteString(st.frame.Render(strings.TrimRight(plot, "\n")))
	b.WriteString("\n")
	b.WriteString(axes(ch, view, st))
	b.WriteString("\n")
	if l := legend(ch, t.Theme); l != "" {
		b.WriteString(l)
		b.WriteString("\n")
	}

	if t.Series && len(ch.Series) > 0 {
		b.WriteString("\n")
		b.WriteString(SeriesPlots(ch.Series[0], t.Cols+10))
	}

	return b.String()
}

// SeriesPlots draws x, y and r = hypot(x, y) of s against the sample index.
// Samples from the first non-finite point onward are left out.
func SeriesPlots(s chart.Series, width int) string {
	n := len(s.X)
	for i := range s.X {
		if !finite(s.X[i]) || !finite(s.Y[i]) {
			n = i
			break
		}
	}
	if n < 2 {
		return ""
	}

	r := make([]float64, n)
	for i := 0; i < n; i++ {
		r[i] = math.Hypot(s.X[i], s.Y[i])
	}

	plots := []struct {
		caption string
		data    []float64
	}{
		{fmt.Sprintf("%s x vs step", s.Name), s.X[:n]},
		{fmt.Sprintf("%s y vs step", s.Name), s.Y[:n]},
		{fmt.Sprintf("%s distance from origin vs step", s.Name), r},
	}

	var b strings.Builder
	for _, p := range plots {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(width),
			asciigraph.Caption(p.caption),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String()
}
