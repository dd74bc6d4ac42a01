package lexis

import (
	"encoding/json"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/matzehuels/lexis/pkg/errors"
)

// LabelKind records which placement rule produced a label.
type LabelKind string

// Label kinds.
const (
	LabelPoint  LabelKind = "point"
	LabelBirths LabelKind = "births"
	LabelDeaths LabelKind = "deaths"
)

// DefaultCellPad centers a generic point in its unit cell.
const DefaultCellPad = 0.5

// Digit budgets used to center counts inside a cell.
const (
	birthDigits = 9
	deathDigits = 4
)

// Padding computes an offset from the label's value.
type Padding func(value any) float64

// Fixed returns a padding that ignores the value.
func Fixed(offset float64) Padding {
	return func(any) float64 { return offset }
}

// Label is a placed data annotation.
type Label struct {
	Kind     LabelKind `json:"kind"`
	Cohort   int       `json:"cohort,omitempty"`
	Year     int       `json:"year"`
	Age      int       `json:"age"`
	Value    any       `json:"value"`
	Text     string    `json:"text"`
	Position Point     `json:"position"`
	PadYear  float64   `json:"pad_year"`
	PadAge   float64   `json:"pad_age"`
	Font     Font      `json:"font"`
}

// MarshalJSON writes non-finite float values as their printed text, since
// JSON has no NaN or infinity.
func (l Label) MarshalJSON() ([]byte, error) {
	type plain Label
	if !finite(l.Value) {
		l.Value = FormatValue(l.Value)
	}
	return json.Marshal(plain(l))
}

func finite(value any) bool {
	switch v := value.(type) {
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
	}
	return true
}

// FormatValue returns the text printed for value.
func FormatValue(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

// DigitCount returns the number of characters value prints as.
func DigitCount(value any) int {
	return utf8.RuneCountInString(FormatValue(value))
}

// PlacePoint places a generic value at (year+padYear, age+padAge) after
// checking both axes. A nil padding means [DefaultCellPad].
func PlacePoint(b Bounds, year, age int, value any, padYear, padAge Padding, f Font) (Label, error) {
	if err := b.CheckYear(year); err != nil {
		return Label{}, err
	}
	if err := b.CheckAge(age); err != nil {
		return Label{}, err
	}
	if padYear == nil {
		padYear = Fixed(DefaultCellPad)
	}
	if padAge == nil {
		padAge = Fixed(DefaultCellPad)
	}
	return point(year, age, value, padYear(value), padAge(value), f), nil
}

// PlacePointUnchecked places a generic value at the cell center without
// range checks, so points slightly outside the grid can still be drawn.
func PlacePointUnchecked(year, age int, value any, f Font) Label {
	return point(year, age, value, DefaultCellPad, DefaultCellPad, f)
}

func point(year, age int, value any, padYear, padAge float64, f Font) Label {
	return Label{
		Kind:     LabelPoint,
		Year:     year,
		Age:      age,
		Value:    value,
		Text:     FormatValue(value),
		Position: Point{X: float64(year) + padYear, Y: float64(age) + padAge},
		PadYear:  padYear,
		PadAge:   padAge,
		Font:     f,
	}
}

// BirthPad approximates horizontal centering of a printed count: each digit
// takes about 1/9 of a cell at the reference font size.
func BirthPad(value any, f Font) float64 {
	return countPad(birthDigits, value, f)
}

// DeathPad is [BirthPad] for the narrower lower triangle of a cell.
func DeathPad(value any, f Font) float64 {
	return countPad(deathDigits, value, f)
}

func countPad(budget int, value any, f Font) float64 {
	n := float64(budget)
	return ((n - float64(DigitCount(value))) / n) / 2 * f.scale()
}

// PlaceBirths places a birth count on the bottom edge of the grid in year.
// Only the year axis is checked.
func PlaceBirths(b Bounds, year int, value any, f Font) (Label, error) {
	if err := b.CheckYear(year); err != nil {
		return Label{}, err
	}
	pad := BirthPad(value, f)
	return Label{
		Kind:     LabelBirths,
		Year:     year,
		Age:      b.AgeStart,
		Value:    value,
		Text:     FormatValue(value),
		Position: Point{X: float64(year) + pad, Y: float64(b.AgeStart)},
		PadYear:  pad,
		Font:     f,
	}, nil
}

// PlaceDeaths places a death count for the cohort born in cohort who died
// in year at age. Only the year axis is checked.
//
// With d = (year - cohort) - age, d == 1 means the death came before the
// birthday in that year and lands in the lower-left triangle; d == 0 means
// after the birthday, upper-right triangle. Any other d cannot be drawn and
// fails with *errors.InconsistentCohortError.
func PlaceDeaths(b Bounds, cohort, year, age int, value any, f Font) (Label, error) {
	if err := b.CheckYear(year); err != nil {
		return Label{}, err
	}
	l := Label{
		Kind:   LabelDeaths,
		Cohort: cohort,
		Year:   year,
		Age:    age,
		Value:  value,
		Text:   FormatValue(value),
		Font:   f,
	}
	switch (year - cohort) - age {
	case 1:
		l.PadYear, l.PadAge = DeathPad(value, f), 0.5
	case 0:
		l.PadYear, l.PadAge = 0.5, 0.3
	default:
		return Label{}, &errors.InconsistentCohortError{Cohort: cohort, Year: year, Age: age}
	}
	l.Position = Point{X: float64(year) + l.PadYear, Y: float64(age) + l.PadAge}
	return l, nil
}

// restamp returns l drawn with f. Count labels recompute their
// font-dependent padding; generic points keep their offsets.
func (l Label) restamp(f Font) Label {
	l.Font = f
	switch l.Kind {
	case LabelBirths:
		l.PadYear = BirthPad(l.Value, f)
	case LabelDeaths:
		if (l.Year-l.Cohort)-l.Age == 1 {
			l.PadYear = DeathPad(l.Value, f)
		}
	default:
		return l
	}
	l.Position.X = float64(l.Year) + l.PadYear
	return l
}
