package chart

import "math"

// Pixel margins around the plot area, shared by the pixel displays.
const (
	MarginLeft   = 70.0
	MarginRight  = 20.0
	MarginTop    = 40.0
	MarginBottom = 45.0
)

// Rect is a pixel rectangle with the origin at the top left.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Size returns the chart's pixel size, using 600x400 for unset dimensions.
func (c *Chart) Size() (w, h int) {
	w, h = c.Width, c.Height
	if w <= 0 {
		w = 600
	}
	if h <= 0 {
		h = 400
	}
	return w, h
}

// PlotArea is the rectangle the data is drawn into.
func (c *Chart) PlotArea() Rect {
	w, h := c.Size()
	return Rect{
		X: MarginLeft,
		Y: MarginTop,
		W: math.Max(float64(w)-MarginLeft-MarginRight, 1),
		H: math.Max(float64(h)-MarginTop-MarginBottom, 1),
	}
}

// LegendArea places the legend box for rows of height rowH and glyphs of
// width charW. The second result is false when the legend is hidden.
func (c *Chart) LegendArea(rowH, charW float64) (Rect, bool) {
	if c.Legend == LegendHidden || len(c.Series) == 0 {
		return Rect{}, false
	}
	w := 0.0
	for _, s := range c.Series {
		w = math.Max(w, float64(len(s.Name))*charW+28)
	}
	h := rowH*float64(len(c.Series)) + 8

	plot := c.PlotArea()
	r := Rect{Y: plot.Y + 8, W: w, H: h}
	switch c.Legend {
	case LegendInsideNW:
		r.X = plot.X + 8
	case LegendOutsideE:
		r.X = plot.Right() + 4
	default:
		r.X = plot.Right() - w - 8
	}
	return r, true
}

// View returns the data bounds squared to the plot area, so both axes
// share one scale.
func (c *Chart) View() (Bounds, bool) {
	b, ok := c.DataBounds()
	if !ok {
		return b, false
	}
	plot := c.PlotArea()
	return b.Square(plot.W / plot.H), true
}

// Pixel is a point in window coordinates.
type Pixel struct {
	X, Y float64
}

// Runs projects s through view into the plot area, splitting it into runs
// of consecutive finite points. A non-finite point ends the current run.
func (c *Chart) Runs(s Series, view Bounds) [][]Pixel {
	plot := c.PlotArea()
	var runs [][]Pixel
	var cur []Pixel
	for i := range s.X {
		if !isFinite(s.X[i]) || !isFinite(s.Y[i]) {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		px, py := view.Project(s.X[i], s.Y[i], int(plot.W), int(plot.H))
		cur = append(cur, Pixel{X: plot.X + px, Y: plot.Y + py})
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

// Joined reports whether s is drawn as connected lines rather than markers.
func (c *Chart) Joined(s Series) bool {
	return c.Style == Line && s.Marker != MarkerCircle && s.Len() > 1
}
