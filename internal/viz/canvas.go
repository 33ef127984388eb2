package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/orbitsim/internal/chart"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBase = 0x2800

var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of Braille cells. Each cell remembers the last series
// drawn into it so that rendering can colour it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	owner         [][]int
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		owner:  make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.owner[i] = make([]int, w)
	}
	c.Clear()
	return c
}

// DotsWide and DotsHigh give the canvas size in sub-pixels.
func (c *Canvas) DotsWide() int { return c.Width * 2 }
func (c *Canvas) DotsHigh() int { return c.Height * 4 }

// Set lights the dot at sub-pixel (x, y) for series s. Out of range dots
// are ignored.
func (c *Canvas) Set(x, y, s int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
	c.owner[row][col] = s
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
			c.owner[i][j] = -1
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1, s int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, s)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Plot draws every finite point of ch inside view. Single-point series get
// a small cross so they stay visible next to dense ones.
func (c *Canvas) Plot(ch *chart.Chart, view chart.Bounds) {
	w, h := c.DotsWide(), c.DotsHigh()
	for si, s := range ch.Series {
		prevOK := false
		var px, py int
		for i := range s.X {
			if !finite(s.X[i]) || !finite(s.Y[i]) {
				prevOK = false
				continue
			}
			fx, fy := view.Project(s.X[i], s.Y[i], w, h)
			if math.Abs(fx) > 1e6 || math.Abs(fy) > 1e6 {
				prevOK = false
				continue
			}
			x, y := int(math.Round(fx)), int(math.Round(fy))

			switch {
			case s.Len() == 1 || s.Marker == chart.MarkerCircle:
				c.Set(x, y, si)
				c.Set(x-1, y, si)
				c.Set(x+1, y, si)
				c.Set(x, y-1, si)
				c.Set(x, y+1, si)
			case ch.Style == chart.Line && prevOK:
				c.DrawLine(px, py, x, y, si)
			default:
				c.Set(x, y, si)
			}
			px, py, prevOK = x, y, true
		}
	}
}

// String renders the canvas without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render colours every cell with the palette entry of its series.
func (c *Canvas) Render(palette []lipgloss.Color) string {
	styles := make([]lipgloss.Style, len(palette))
	for i, col := range palette {
		styles[i] = lipgloss.NewStyle().Foreground(col)
	}

	var b strings.Builder
	for r, row := range c.Grid {
		for col, cell := range row {
			s := c.owner[r][col]
			if s < 0 || len(styles) == 0 {
				b.WriteRune(cell)
				continue
			}
			b.WriteString(styles[s%len(styles)].Render(string(cell)))
		}
		if r < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
