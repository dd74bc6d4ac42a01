package lexis

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/lexis/pkg/errors"
)

// AspectMode selects how the renderer sizes the canvas.
type AspectMode string

// Aspect modes.
const (
	AspectAuto  AspectMode = "auto"  // renderer decides
	AspectEqual AspectMode = "equal" // one year is as wide as one age is tall
	AspectRatio AspectMode = "ratio" // canvas height / width = Ratio
)

// Aspect is the requested shape of the plotting area.
type Aspect struct {
	Mode  AspectMode `json:"mode"`
	Ratio float64    `json:"ratio,omitempty"`
}

// ParseAspect accepts "auto", "equal", "square" (the ratio 1.0) or a
// positive number. Anything else fails with *errors.InvalidAspectError.
func ParseAspect(spec string) (Aspect, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	switch s {
	case string(AspectAuto):
		return Aspect{Mode: AspectAuto}, nil
	case string(AspectEqual):
		return Aspect{Mode: AspectEqual}, nil
	case "square":
		return Aspect{Mode: AspectRatio, Ratio: 1}, nil
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Aspect{}, &errors.InvalidAspectError{Value: spec}
	}
	a, err := NewAspectRatio(r)
	if err != nil {
		return Aspect{}, &errors.InvalidAspectError{Value: spec}
	}
	return a, nil
}

// NewAspectRatio returns a numeric aspect. r must be positive and finite.
func NewAspectRatio(r float64) (Aspect, error) {
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return Aspect{}, &errors.InvalidAspectError{Value: strconv.FormatFloat(r, 'g', -1, 64)}
	}
	return Aspect{Mode: AspectRatio, Ratio: r}, nil
}

// DataAspect returns the y-unit to x-unit display ratio for b. A numeric
// ratio is multiplied by YearRange/AgeRange so that the canvas itself ends
// up Ratio times as tall as it is wide. ok is false for auto.
func (a Aspect) DataAspect(b Bounds) (aspect float64, ok bool) {
	switch a.Mode {
	case AspectEqual:
		return 1, true
	case AspectRatio:
		if b.AgeRange() == 0 {
			return 0, false
		}
		return a.Ratio * float64(b.YearRange()) / float64(b.AgeRange()), true
	}
	return 0, false
}

// HeightRatio returns canvas height / width for b. ok is false for auto
// and for degenerate bounds.
func (a Aspect) HeightRatio(b Bounds) (ratio float64, ok bool) {
	da, ok := a.DataAspect(b)
	if !ok || b.YearRange() == 0 {
		return 0, false
	}
	return da * float64(b.AgeRange()) / float64(b.YearRange()), true
}

// String returns the specifier form accepted by [ParseAspect].
func (a Aspect) String() string {
	if a.Mode == AspectRatio {
		return strconv.FormatFloat(a.Ratio, 'g', -1, 64)
	}
	if a.Mode == "" {
		return string(AspectAuto)
	}
	return string(a.Mode)
}
