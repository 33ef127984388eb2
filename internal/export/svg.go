package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/orbitsim/internal/chart"
)

var palette = []string{"#4f9bff", "#ff8c42", "#00ff88", "#ff4f9b"}

// SVG writes a chart as a standalone SVG document, either to Out or, when
// Out is nil, to the file at Path.
type SVG struct {
	Path       string
	Out        io.Writer
	Background string
}

func NewSVG(path string) *SVG {
	return &SVG{Path: path, Background: "#0a0a0a"}
}

func (s *SVG) Show(c *chart.Chart) error {
	doc := ChartToSVG(c, s.Background)
	if s.Out != nil {
		_, err := io.WriteString(s.Out, doc)
		return err
	}
	if s.Path == "" {
		return fmt.Errorf("export: no output path for svg")
	}
	if err := os.WriteFile(s.Path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", s.Path, err)
	}
	return nil
}

// ChartToSVG renders c at its pixel size: a scatter of every finite point,
// axis titles with the data range, and a legend. Non-finite points are left
// out.
func ChartToSVG(c *chart.Chart, background string) string {
	width, height := c.Size()
	plot := c.PlotArea()
	if background == "" {
		background = "#0a0a0a"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="24" fill="#dddddd" font-size="16" text-anchor="middle">%s</text>
`, float64(width)/2, escape(c.Title)))
	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#444466"/>
`, plot.X, plot.Y, plot.W, plot.H))

	view, ok := c.View()
	if !ok {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#ffaa00" font-size="14" text-anchor="middle">no finite points</text>
`, float64(width)/2, float64(height)/2))
		sb.WriteString("</svg>\n")
		return sb.String()
	}

	for i, s := range c.Series {
		color := seriesColor(s, i)
		joined := c.Joined(s)
		radius := 1.2
		if s.Marker == chart.MarkerCircle || s.Len() == 1 {
			radius = 5
		}
		sb.WriteString(fmt.Sprintf(`<g fill="%s" stroke="%s" data-series="%s">
`, color, color, escape(s.Name)))
		for _, run := range c.Runs(s, view) {
			if joined && len(run) > 1 {
				writePolyline(&sb, run)
				continue
			}
			for _, p := range run {
				sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" stroke="none"/>
`, p.X, p.Y, radius))
			}
		}
		sb.WriteString("</g>\n")
	}

	writeAxes(&sb, c, view, plot, height)
	writeLegend(&sb, c)

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writePolyline(sb *strings.Builder, run []chart.Pixel) {
	sb.WriteString(`<polyline fill="none" stroke-width="1.2" points="`)
	for i, p := range run {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
	}
	sb.WriteString("\"/>\n")
}

func writeAxes(sb *strings.Builder, c *chart.Chart, view chart.Bounds, plot chart.Rect, height int) {
	sb.WriteString(fmt.Sprintf(`<g fill="#aaaaaa" font-size="11">
<text x="%.1f" y="%.1f">%.4g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.4g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.4g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.4g</text>
</g>
`,
		plot.X, plot.Bottom()+14, view.MinX,
		plot.Right(), plot.Bottom()+14, view.MaxX,
		plot.X-4, plot.Bottom(), view.MinY,
		plot.X-4, plot.Y+10, view.MaxY))

	midY := plot.Y + plot.H/2
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" fill="#dddddd" font-size="13" text-anchor="middle">%s</text>
`, plot.X+plot.W/2, height-8, escape(c.XLabel)))
	sb.WriteString(fmt.Sprintf(`<text x="16" y="%.1f" fill="#dddddd" font-size="13" text-anchor="middle" transform="rotate(-90 16 %.1f)">%s</text>
`, midY, midY, escape(c.YLabel)))
}

func writeLegend(sb *strings.Builder, c *chart.Chart) {
	const rowH = 16.0
	box, ok := c.LegendArea(rowH, 7)
	if !ok {
		return
	}

	sb.WriteString(fmt.Sprintf(`<g font-size="12">
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#000000" fill-opacity="0.6" stroke="#444466"/>
`, box.X, box.Y, box.W, box.H))
	for i, s := range c.Series {
		cy := box.Y + 4 + rowH*float64(i) + rowH/2
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>
<text x="%.1f" y="%.1f" fill="#dddddd">%s</text>
`, box.X+10, cy, seriesColor(s, i), box.X+20, cy+4, escape(s.Name)))
	}
	sb.WriteString("</g>\n")
}

func seriesColor(s chart.Series, i int) string {
	if s.Color != "" {
		return s.Color
	}
	return palette[i%len(palette)]
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }
