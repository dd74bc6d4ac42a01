package lexis

import (
	"strings"

	"github.com/matzehuels/lexis/pkg/errors"
)

// Kind identifies the family of a highlighted band.
type Kind string

// Band kinds.
const (
	KindAge    Kind = "age"
	KindYear   Kind = "year"
	KindCohort Kind = "cohort"
)

// Default opacities when a highlight does not set one.
const (
	DefaultBandAlpha   = 0.5
	DefaultCohortAlpha = 0.2
)

// Band is a highlightable region of the grid: [AgeBand], [YearBand] or
// [CohortBand]. The set of implementations is closed.
type Band interface {
	// Kind returns the band family.
	Kind() Kind
	// Index returns the age, year or birth year the band follows.
	Index() int
	// Outline returns the polygon vertices of the band, counter-clockwise.
	Outline(b Bounds) []Point
	// DefaultAlpha returns the opacity used when none is given.
	DefaultAlpha() float64

	band()
}

// AgeBand is the horizontal strip Value <= y <= Value+1 across all years.
type AgeBand struct{ Value int }

// YearBand is the vertical strip Value <= x <= Value+1 across all ages.
type YearBand struct{ Value int }

// CohortBand is the unit-height diagonal strip followed by the cohort born
// in Value, from its birth year to the right edge of the grid.
//
// The strip is anchored at AgeStart, which matches the cohort's lifeline only
// when AgeStart is 0. For other age origins the band keeps that anchor; this
// is a known limitation and is not corrected here.
type CohortBand struct{ Value int }

func (AgeBand) Kind() Kind            { return KindAge }
func (a AgeBand) Index() int          { return a.Value }
func (AgeBand) DefaultAlpha() float64 { return DefaultBandAlpha }
func (AgeBand) band()                 {}

func (YearBand) Kind() Kind            { return KindYear }
func (y YearBand) Index() int          { return y.Value }
func (YearBand) DefaultAlpha() float64 { return DefaultBandAlpha }
func (YearBand) band()                 {}

func (CohortBand) Kind() Kind            { return KindCohort }
func (c CohortBand) Index() int          { return c.Value }
func (CohortBand) DefaultAlpha() float64 { return DefaultCohortAlpha }
func (CohortBand) band()                 {}

// Outline returns the rectangle x in [YearStart, YearEnd], y in [Value, Value+1].
func (a AgeBand) Outline(b Bounds) []Point {
	return rect(float64(b.YearStart), float64(a.Value), float64(b.YearEnd), float64(a.Value+1))
}

// Outline returns the rectangle x in [Value, Value+1], y in [AgeStart, AgeEnd].
func (y YearBand) Outline(b Bounds) []Point {
	return rect(float64(y.Value), float64(b.AgeStart), float64(y.Value+1), float64(b.AgeEnd))
}

// Outline returns the parallelogram between the edges returned by [CohortBand.Edges].
func (c CohortBand) Outline(b Bounds) []Point {
	lower, upper := c.Edges(b)
	return []Point{upper.From, upper.To, lower.To, lower.From}
}

// Edges returns the two diagonals bounding the band. With span =
// YearEnd - Value, lower runs from (Value, AgeStart) to (YearEnd, span) and
// upper from (Value, AgeStart-1) to (YearEnd, span-1).
func (c CohortBand) Edges(b Bounds) (lower, upper Segment) {
	span := float64(b.CohortSpan(c.Value))
	x0, x1 := float64(c.Value), float64(b.YearEnd)
	y0 := float64(b.AgeStart)
	lower = Segment{From: Point{X: x0, Y: y0}, To: Point{X: x1, Y: span}}
	upper = Segment{From: Point{X: x0, Y: y0 - 1}, To: Point{X: x1, Y: span - 1}}
	return lower, upper
}

func rect(x0, y0, x1, y1 float64) []Point {
	return []Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// ParseBand maps a target name ("age", "year" or "cohort") to its band.
func ParseBand(target string, value int) (Band, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(target))) {
	case KindAge:
		return AgeBand{Value: value}, nil
	case KindYear:
		return YearBand{Value: value}, nil
	case KindCohort:
		return CohortBand{Value: value}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidTarget, "invalid target %q (must be 'age', 'year' or 'cohort')", target)
}

// checkBand validates the band's index against the axis it lives on.
// Only used in strict mode.
func checkBand(b Bounds, band Band) error {
	switch band.Kind() {
	case KindAge:
		return b.CheckAge(band.Index())
	default:
		return b.CheckYear(band.Index())
	}
}
