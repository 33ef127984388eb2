package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/orbitsim/internal/chart"
)

// Viewer shows a chart in an interactive full-screen terminal program. The
// chart is only read.
type Viewer struct {
	Theme Theme
	opts  []tea.ProgramOption
}

func NewViewer(theme Theme, opts ...tea.ProgramOption) *Viewer {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Viewer{Theme: theme, opts: opts}
}

func (v *Viewer) Show(ch *chart.Chart) error {
	_, err := tea.NewProgram(newViewerModel(ch, v.Theme), v.opts...).Run()
	return err
}

type viewerModel struct {
	chart         *chart.Chart
	theme         Theme
	base          chart.Bounds
	hasData       bool
	zoom          float64
	offX, offY    float64
	width, height int
}

func newViewerModel(ch *chart.Chart, theme Theme) viewerModel {
	b, ok := ch.DataBounds()
	return viewerModel{
		chart:   ch,
		theme:   theme,
		base:    b,
		hasData: ok,
		zoom:    1,
		width:   80,
		height:  24,
	}
}

func (m viewerModel) Init() tea.Cmd { return nil }

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m viewerModel) handleKey(msg tea.KeyMsg) (viewerModel, tea.Cmd) {
	const pan = 0.1
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "+", "=":
		m.zoom *= 1.25
	case "-", "_":
		m.zoom /= 1.25
	case "left", "h":
		m.offX -= pan / m.zoom
	case "right", "l":
		m.offX += pan / m.zoom
	case "up", "k":
		m.offY += pan / m.zoom
	case "down", "j":
		m.offY -= pan / m.zoom
	case "0":
		m.zoom, m.offX, m.offY = 1, 0, 0
	case "t":
		m.theme = nextTheme(m.theme.Name)
	}
	return m, nil
}

// view returns the data rectangle currently on screen for a canvas aspect.
func (m viewerModel) view(aspect float64) chart.Bounds {
	b := m.base.Square(aspect)
	w, h := b.Width()/m.zoom, b.Height()/m.zoom
	cx := (b.MinX+b.MaxX)/2 + m.offX*b.Width()
	cy := (b.MinY+b.MaxY)/2 + m.offY*b.Height()
	return chart.Bounds{MinX: cx - w/2, MaxX: cx + w/2, MinY: cy - h/2, MaxY: cy + h/2}
}

func (m viewerModel) View() string {
	st := newStyles(m.theme)
	var b strings.Builder

	b.WriteString(st.title.Render(m.chart.Title))
	b.WriteString("  ")
	b.WriteString(st.muted.Render(fmt.Sprintf("zoom %.2fx  theme %s", m.zoom, m.theme.Name)))
	b.WriteString("\n")

	if !m.hasData {
		b.WriteString(st.warning.Render("no finite points to plot"))
		b.WriteString("\n\n")
		b.WriteString(st.muted.Render("q quit"))
		return b.String()
	}

	cols := m.width - 2
	rows := m.height - 6
	if cols < 10 {
		cols = 10
	}
	if rows < 4 {
		rows = 4
	}

	canvas := NewCanvas(cols, rows)
	view := m.view(float64(canvas.DotsWide()) / float64(canvas.DotsHigh()))
	canvas.Plot(m.chart, view)

	b.WriteString(st.frame.Render(canvas.Render(m.theme.Series)))
	b.WriteString("\n")
	b.WriteString(axes(m.chart, view, st))
	b.WriteString("\n")
	if l := legend(m.chart, m.theme); l != "" {
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString(st.muted.Render("+/- zoom  arrows pan  0 reset  t theme  q quit"))
	return b.String()
}
