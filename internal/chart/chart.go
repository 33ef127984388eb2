// Package chart is the hand-off between a finished simulation and whatever
// draws it. A [Chart] is plain data; a [Display] turns it into pixels,
// characters or a file.
package chart

import (
	"math"

	"github.com/san-kum/orbitsim/internal/orbit"
	"gonum.org/v1/gonum/floats"
)

type RenderStyle int

const (
	Scatter RenderStyle = iota
	Line
)

type LegendPosition int

const (
	LegendInsideNE LegendPosition = iota
	LegendInsideNW
	LegendOutsideE
	LegendHidden
)

type Marker int

const (
	MarkerDot Marker = iota
	MarkerCircle
)

// Series is one named set of points. X and Y always have equal length.
type Series struct {
	Name   string
	X      []float64
	Y      []float64
	Marker Marker
	Color  string
}

func (s Series) Len() int { return len(s.X) }

type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
	Style  RenderStyle
	Legend LegendPosition
	Series []Series
}

// Options control how a trajectory is turned into a chart.
type Options struct {
	Title       string
	XLabel      string
	YLabel      string
	Width       int
	Height      int
	Style       RenderStyle
	Legend      LegendPosition
	BodyName    string
	CentralName string
}

func DefaultOptions() Options {
	return Options{
		Title:       "Orbit Chart",
		XLabel:      "X",
		YLabel:      "Y",
		Width:       600,
		Height:      400,
		Style:       Scatter,
		Legend:      LegendInsideNE,
		BodyName:    "Satellite",
		CentralName: "Earth",
	}
}

// FromTrajectory builds the orbit chart: the body's path followed by a
// single point for the central body at the origin. The series own copies of
// the trajectory data.
func FromTrajectory(tr *orbit.Trajectory, opts Options) *Chart {
	def := DefaultOptions()
	if opts.Title == "" {
		opts.Title = def.Title
	}
	if opts.XLabel == "" {
		opts.XLabel = def.XLabel
	}
	if opts.YLabel == "" {
		opts.YLabel = def.YLabel
	}
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.BodyName == "" {
		opts.BodyName = def.BodyName
	}
	if opts.CentralName == "" {
		opts.CentralName = def.CentralName
	}

	return &Chart{
		Title:  opts.Title,
		XLabel: opts.XLabel,
		YLabel: opts.YLabel,
		Width:  opts.Width,
		Height: opts.Height,
		Style:  opts.Style,
		Legend: opts.Legend,
		Series: []Series{
			{Name: opts.BodyName, X: tr.XS(), Y: tr.YS(), Marker: MarkerDot, Color: "#4f9bff"},
			{Name: opts.CentralName, X: []float64{0}, Y: []float64{0}, Marker: MarkerCircle, Color: "#ff8c42"},
		},
	}
}

// Points returns the total number of points across all series.
func (c *Chart) Points() int {
	n := 0
	for _, s := range c.Series {
		n += s.Len()
	}
	return n
}

// Bounds is the data rectangle of a chart.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Pad grows each side by frac of the span; empty spans become one unit wide.
func (b Bounds) Pad(frac float64) Bounds {
	w, h := b.Width(), b.Height()
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return Bounds{
		MinX: b.MinX - w*frac,
		MaxX: b.MaxX + w*frac,
		MinY: b.MinY - h*frac,
		MaxY: b.MaxY + h*frac,
	}
}

// Square widens the shorter axis so that both axes use the same scale
// for an output of aspect width/height.
func (b Bounds) Square(aspect float64) Bounds {
	w, h := b.Width(), b.Height()
	cx, cy := (b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2
	if w/h < aspect {
		w = h * aspect
	} else {
		h = w / aspect
	}
	return Bounds{MinX: cx - w/2, MaxX: cx + w/2, MinY: cy - h/2, MaxY: cy + h/2}
}

// Project maps (x, y) into a w by h pixel grid with y pointing down.
func (b Bounds) Project(x, y float64, w, h int) (px, py float64) {
	px = (x - b.MinX) / b.Width() * float64(w-1)
	py = float64(h-1) - (y-b.MinY)/b.Height()*float64(h-1)
	return px, py
}

// DataBounds returns the bounds of every finite point of the chart, padded
// by 5%. It reports false when no finite point exists.
func (c *Chart) DataBounds() (Bounds, bool) {
	var xs, ys []float64
	for _, s := range c.Series {
		for i := range s.X {
			if isFinite(s.X[i]) && isFinite(s.Y[i]) {
				xs = append(xs, s.X[i])
				ys = append(ys, s.Y[i])
			}
		}
	}
	if len(xs) == 0 {
		return Bounds{}, false
	}
	b := Bounds{
		MinX: floats.Min(xs),
		MaxX: floats.Max(xs),
		MinY: floats.Min(ys),
		MaxY: floats.Max(ys),
	}
	return b.Pad(0.05), true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Display renders a finished chart. Implementations must not modify it.
type Display interface {
	Show(c *Chart) error
}
