package lexis

import (
	"image/color"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// Titles are the axis labels and the diagram title.
type Titles struct {
	X     string `json:"x"`
	Y     string `json:"y"`
	Title string `json:"title"`
}

// DefaultTitles are used until [Diagram.SetTitles] is called.
var DefaultTitles = Titles{X: "Year", Y: "Age", Title: "Lexis Diagram"}

// Region is a highlighted band resolved against the diagram bounds.
type Region struct {
	Kind    Kind              `json:"kind"`
	Value   int               `json:"value"`
	Outline []Point           `json:"outline"`
	Color   colorful.HexColor `json:"color"`
	Alpha   float64           `json:"alpha"`
}

// Hex returns the region color as "#rrggbb".
func (r Region) Hex() string { return colorful.Color(r.Color).Hex() }

// Fill returns the region color with its opacity applied.
func (r Region) Fill() color.NRGBA {
	cr, cg, cb := colorful.Color(r.Color).Clamped().RGB255()
	return color.NRGBA{R: cr, G: cg, B: cb, A: uint8(math.Round(r.Alpha * 255))}
}

// Scene is everything a [Renderer] needs to draw a diagram. Scenes are
// deep copies: mutating one never affects the diagram that produced it.
type Scene struct {
	Bounds    Bounds    `json:"bounds"`
	YearTicks []int     `json:"year_ticks"`
	AgeTicks  []int     `json:"age_ticks"`
	Lifelines []Segment `json:"lifelines"`
	Regions   []Region  `json:"regions"`
	Labels    []Label   `json:"labels"`
	Font      Font      `json:"font"`
	Titles    Titles    `json:"titles"`
	Aspect    Aspect    `json:"aspect"`
}

// Renderer draws a scene, on screen or into memory.
type Renderer interface {
	Render(s Scene) error
}

// Exporter writes a scene to path. The format is chosen from the extension.
type Exporter interface {
	Export(s Scene, path string) error
}

// Lines returns the visible part of every lifeline, in order.
func (s Scene) Lines() []Segment {
	out := make([]Segment, 0, len(s.Lifelines))
	for _, seg := range s.Lifelines {
		if c, ok := seg.Clip(s.Bounds); ok {
			out = append(out, c)
		}
	}
	return out
}

func cloneRegions(rs []Region) []Region {
	out := make([]Region, len(rs))
	for i, r := range rs {
		r.Outline = slices.Clone(r.Outline)
		out[i] = r
	}
	return out
}
