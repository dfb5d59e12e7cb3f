package heatmap

import (
	"github.com/Sumatoshi-tech/workchart/internal/activity"
)

// Style holds the visual constants of the chart. Values are fixed per run;
// see internal/config for the defaults and the optional config file.
type Style struct {
	BoxSize       int
	BoxSeparation int
	Margin        int
	Background    string
	Palette       []string
}

// DefaultStyle returns the stock chart style.
func DefaultStyle() Style {
	return Style{
		BoxSize:       11,
		BoxSeparation: 2,
		Margin:        6,
		Background:    "white",
		Palette:       DefaultPalette,
	}
}

// Geometry is the pixel size of the chart canvas, derived from the layout
// and style once per run.
type Geometry struct {
	Columns int
	Rows    int
	Width   int
	Height  int
}

// Geometry computes the canvas dimensions for the layout under the style.
func (l Layout) Geometry(style Style) Geometry {
	return Geometry{
		Columns: l.Weeks,
		Rows:    DaysPerWeek,
		Width:   span(l.Weeks, style),
		Height:  span(DaysPerWeek, style),
	}
}

// span is the pixel extent of n boxes plus margins along one axis.
func span(n int, style Style) int {
	return 2*style.Margin + n*style.BoxSize + (n-1)*style.BoxSeparation
}

// Canvas accepts filled rectangles. Persistence is the concrete sink's
// concern; see internal/svg.
type Canvas interface {
	Rect(x, y, w, h int, fill string)
}

// Render draws the chart: one background rectangle covering the canvas,
// then one box per day in the window, filled by the day's intensity bucket.
// Boxes never overlap, so draw order within the window is irrelevant.
func Render(canvas Canvas, layout Layout, counts activity.Counts, style Style) {
	geo := layout.Geometry(style)
	canvas.Rect(0, 0, geo.Width, geo.Height, style.Background)

	step := style.BoxSize + style.BoxSeparation
	for _, dc := range layout.Cells() {
		x := style.Margin + dc.Cell.Col*step
		y := style.Margin + dc.Cell.Row*step
		fill := style.Palette[Classify(counts[dc.Day])]

		canvas.Rect(x, y, style.BoxSize, style.BoxSize, fill)
	}
}
