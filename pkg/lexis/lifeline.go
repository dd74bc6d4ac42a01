package lexis

import (
	"iter"
	"math"
)

// Point is a position in diagram coordinates (x = calendar year, y = age).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a straight line between two points.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Slope returns dy/dx, or +Inf for a vertical segment.
func (s Segment) Slope() float64 {
	dx := s.To.X - s.From.X
	if dx == 0 {
		return math.Inf(1)
	}
	return (s.To.Y - s.From.Y) / dx
}

// LifelineCount returns the number of unit segments [Lifelines] yields.
func LifelineCount(b Bounds) int {
	n := b.YearEnd - firstLifeline(b)
	if n < 0 {
		return 0
	}
	return n
}

// Lifelines yields one unit diagonal per cohort anchor, from
// (x, AgeStart) to (x+1, AgeStart+1) for x in [YearStart-AgeEnd, YearEnd).
// Starting AgeEnd years before the grid makes every cohort that can reach
// the visible area get a lifeline, even if it was born off-screen.
//
// The sequence is finite, deterministic and may be ranged over repeatedly.
func Lifelines(b Bounds) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		y0 := float64(b.AgeStart)
		for x := firstLifeline(b); x < b.YearEnd; x++ {
			seg := Segment{
				From: Point{X: float64(x), Y: y0},
				To:   Point{X: float64(x + 1), Y: y0 + 1},
			}
			if !yield(seg) {
				return
			}
		}
	}
}

func firstLifeline(b Bounds) int { return b.YearStart - b.AgeEnd }

// Clip extends the 45° line through s across the grid and returns the part
// inside b. ok is false when the line misses the grid entirely.
//
// Lifeline segments are anchors: renderers draw the full diagonal through
// each one, so Clip is what they actually put on the canvas.
func (s Segment) Clip(b Bounds) (clipped Segment, ok bool) {
	// Every point on the line satisfies x - y = c.
	c := s.From.X - s.From.Y
	lo := math.Max(float64(b.YearStart), float64(b.AgeStart)+c)
	hi := math.Min(float64(b.YearEnd), float64(b.AgeEnd)+c)
	if lo >= hi {
		return Segment{}, false
	}
	return Segment{
		From: Point{X: lo, Y: lo - c},
		To:   Point{X: hi, Y: hi - c},
	}, true
}
