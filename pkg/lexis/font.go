package lexis

import (
	"math"
	"strings"

	"github.com/matzehuels/lexis/pkg/errors"
)

// Weight is the stroke weight of label text.
type Weight string

// Supported weights.
const (
	WeightRegular Weight = "regular"
	WeightBold    Weight = "bold"
	WeightHeavy   Weight = "heavy"
	WeightLight   Weight = "light"
	WeightBook    Weight = "book"
	WeightMedium  Weight = "medium"
)

var validWeights = map[Weight]bool{
	WeightRegular: true,
	WeightBold:    true,
	WeightHeavy:   true,
	WeightLight:   true,
	WeightBook:    true,
	WeightMedium:  true,
}

// Font size limits, in points.
const (
	MinFontSize = 1
	MaxFontSize = 1000

	// ReferenceFontSize is the size at which count paddings are unscaled.
	ReferenceFontSize = 12
)

// Font describes label text.
type Font struct {
	Size   float64 `json:"size"`
	Weight Weight  `json:"weight"`
}

// DefaultFont is the font labels get when none has been set.
var DefaultFont = Font{Size: ReferenceFontSize, Weight: WeightRegular}

// NewFont validates size and weight. Weight names are case-insensitive.
func NewFont(size float64, weight string) (Font, error) {
	w := Weight(strings.ToLower(strings.TrimSpace(weight)))
	if math.IsNaN(size) || size < MinFontSize || size > MaxFontSize {
		return Font{}, &errors.InvalidFontError{Size: size, Weight: weight, Reason: "size must be between 1 and 1000"}
	}
	if !validWeights[w] {
		return Font{}, &errors.InvalidFontError{Size: size, Weight: weight,
			Reason: "weight must be one of regular, bold, heavy, light, book, medium"}
	}
	return Font{Size: size, Weight: w}, nil
}

// scale is the font size relative to [ReferenceFontSize].
func (f Font) scale() float64 { return f.Size / ReferenceFontSize }
