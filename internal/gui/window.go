package gui

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/hashicorp/go-hclog"
	"github.com/san-kum/orbitsim/internal/chart"
)

// Theme Colors
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColFrame   = rl.NewColor(68, 68, 102, 255)
	ColText    = rl.NewColor(200, 200, 200, 255)
	ColTextDim = rl.NewColor(120, 120, 140, 255)
	ColWarn    = rl.NewColor(255, 170, 0, 255)
)

var palette = []rl.Color{
	rl.NewColor(79, 155, 255, 255),
	rl.NewColor(255, 140, 66, 255),
	rl.NewColor(0, 255, 136, 255),
}

// Window shows a chart in a desktop window until it is closed. It blocks
// the calling goroutine, which must be the main one.
type Window struct {
	FPS        int32
	Screenshot string
	Logger     hclog.Logger
}

func NewWindow(logger hclog.Logger) *Window {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Window{FPS: 30, Screenshot: "orbit.png", Logger: logger}
}

// projected is a series already mapped into window pixels.
type projected struct {
	name   string
	color  rl.Color
	radius float32
	joined bool
	runs   [][]rl.Vector2
}

func (p projected) draw() {
	for _, run := range p.runs {
		if p.joined && len(run) > 1 {
			for i := 1; i < len(run); i++ {
				rl.DrawLineV(run[i-1], run[i], p.color)
			}
			continue
		}
		for _, pt := range run {
			rl.DrawCircleV(pt, p.radius, p.color)
		}
	}
}

func (w *Window) Show(c *chart.Chart) error {
	width, height := c.Size()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(width), int32(height), c.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("gui: window could not be opened")
	}
	rl.SetTargetFPS(w.FPS)

	series, view, ok := project(c)
	w.Logger.Debug("window opened", "width", width, "height", height, "series", len(series))

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyS) && w.Screenshot != "" {
			rl.TakeScreenshot(w.Screenshot)
			w.Logger.Info("screenshot saved", "path", w.Screenshot)
		}

		rl.BeginDrawing()
		rl.ClearBackground(ColBg)
		drawFrame(c, width)
		if ok {
			for _, s := range series {
				s.draw()
			}
			drawAxes(c, view)
			drawLegend(c, series)
		} else {
			msg := "no finite points"
			rl.DrawText(msg, int32(width)/2-rl.MeasureText(msg, 16)/2, int32(height)/2, 16, ColWarn)
		}
		rl.EndDrawing()
	}
	return nil
}

func project(c *chart.Chart) ([]projected, chart.Bounds, bool) {
	view, ok := c.View()
	if !ok {
		return nil, view, false
	}
	out := make([]projected, 0, len(c.Series))
	for i, s := range c.Series {
		p := projected{
			name:   s.Name,
			color:  seriesColor(s, i),
			radius: 1.2,
			joined: c.Joined(s),
		}
		if s.Marker == chart.MarkerCircle || s.Len() == 1 {
			p.radius = 5
		}
		for _, run := range c.Runs(s, view) {
			pts := make([]rl.Vector2, len(run))
			for j, px := range run {
				pts[j] = rl.NewVector2(float32(px.X), float32(px.Y))
			}
			p.runs = append(p.runs, pts)
		}
		out = append(out, p)
	}
	return out, view, true
}

func drawFrame(c *chart.Chart, width int) {
	plot := c.PlotArea()
	tw := rl.MeasureText(c.Title, 20)
	rl.DrawText(c.Title, int32(width)/2-tw/2, 12, 20, ColText)
	rl.DrawRectangleLines(int32(plot.X), int32(plot.Y), int32(plot.W), int32(plot.H), ColFrame)
}

func drawAxes(c *chart.Chart, view chart.Bounds) {
	plot := c.PlotArea()
	x0, y0 := int32(plot.X), int32(plot.Y)
	x1, y1 := int32(plot.Right()), int32(plot.Bottom())

	minX, maxX := format(view.MinX), format(view.MaxX)
	minY, maxY := format(view.MinY), format(view.MaxY)
	rl.DrawText(minX, x0, y1+4, 10, ColTextDim)
	rl.DrawText(maxX, x1-rl.MeasureText(maxX, 10), y1+4, 10, ColTextDim)
	rl.DrawText(minY, x0-rl.MeasureText(minY, 10)-4, y1-10, 10, ColTextDim)
	rl.DrawText(maxY, x0-rl.MeasureText(maxY, 10)-4, y0, 10, ColTextDim)

	rl.DrawText(c.XLabel, (x0+x1)/2-rl.MeasureText(c.XLabel, 14)/2, y1+22, 14, ColText)
	rl.DrawTextPro(rl.GetFontDefault(), c.YLabel,
		rl.NewVector2(12, float32(y0+y1)/2), rl.NewVector2(0, 0), -90, 14, 1, ColText)
}

func drawLegend(c *chart.Chart, series []projected) {
	const rowH = 16
	box, ok := c.LegendArea(rowH, 7)
	if !ok {
		return
	}
	rl.DrawRectangle(int32(box.X), int32(box.Y), int32(box.W), int32(box.H), rl.Fade(rl.Black, 0.6))
	rl.DrawRectangleLines(int32(box.X), int32(box.Y), int32(box.W), int32(box.H), ColFrame)
	for i, s := range series {
		cy := int32(box.Y) + 4 + int32(i*rowH) + rowH/2
		rl.DrawCircle(int32(box.X)+10, cy, 4, s.color)
		rl.DrawText(s.name, int32(box.X)+20, cy-5, 10, ColText)
	}
}

func seriesColor(s chart.Series, i int) rl.Color {
	if c, ok := parseHex(s.Color); ok {
		return c
	}
	return palette[i%len(palette)]
}

// parseHex reads "#rrggbb".
func parseHex(s string) (rl.Color, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return rl.Color{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rl.Color{}, false
	}
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255), true
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
