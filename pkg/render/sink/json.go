package sink

import (
	"encoding/json"

	"github.com/matzehuels/lexis/pkg/lexis"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
	anchors bool
}

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// WithJSONAnchors includes the unit lifeline anchors in addition to the
// clipped lines a renderer would draw.
func WithJSONAnchors() JSONOption { return func(r *jsonRenderer) { r.anchors = true } }

type jsonOutput struct {
	Bounds      lexis.Bounds    `json:"bounds"`
	Titles      lexis.Titles    `json:"titles"`
	Aspect      string          `json:"aspect"`
	HeightRatio float64         `json:"height_ratio,omitempty"`
	Font        lexis.Font      `json:"font"`
	YearTicks   []int           `json:"year_ticks"`
	AgeTicks    []int           `json:"age_ticks"`
	Lines       []lexis.Segment `json:"lines"`
	Anchors     []lexis.Segment `json:"anchors,omitempty"`
	Regions     []lexis.Region  `json:"regions"`
	Labels      []lexis.Label   `json:"labels"`
}

// RenderJSON exports the primitive description of s: everything a
// drawing backend needs, with lifelines already clipped to the grid.
// It is deterministic, so rendering the same scene twice yields identical
// bytes.
func RenderJSON(s lexis.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Bounds:    s.Bounds,
		Titles:    s.Titles,
		Aspect:    s.Aspect.String(),
		Font:      s.Font,
		YearTicks: nonNil(s.YearTicks),
		AgeTicks:  nonNil(s.AgeTicks),
		Lines:     nonNil(s.Lines()),
		Regions:   nonNil(s.Regions),
		Labels:    nonNil(s.Labels),
	}
	if ratio, ok := s.Aspect.HeightRatio(s.Bounds); ok {
		out.HeightRatio = ratio
	}
	if r.anchors {
		out.Anchors = s.Lifelines
	}

	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}

// nonNil keeps empty lists as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
