package lexis

import (
	"github.com/matzehuels/lexis/pkg/errors"
)

// Axis names used in range errors.
const (
	AxisYear = "year"
	AxisAge  = "age"
)

// Bounds is the visible extent of a diagram in calendar years and ages.
// Both intervals are inclusive. Bounds are not validated on construction;
// see [Bounds.Validate].
type Bounds struct {
	YearStart int `json:"year_start" toml:"year_start"`
	YearEnd   int `json:"year_end" toml:"year_end"`
	AgeStart  int `json:"age_start" toml:"age_start"`
	AgeEnd    int `json:"age_end" toml:"age_end"`
}

// NewBounds returns the bounds for the given year and age intervals.
func NewBounds(yearStart, yearEnd, ageStart, ageEnd int) Bounds {
	return Bounds{YearStart: yearStart, YearEnd: yearEnd, AgeStart: ageStart, AgeEnd: ageEnd}
}

// Validate reports whether both intervals are ordered.
func (b Bounds) Validate() error {
	if b.YearStart > b.YearEnd {
		return errors.New(errors.ErrCodeInvalidInput, "year_start %d is after year_end %d", b.YearStart, b.YearEnd)
	}
	if b.AgeStart > b.AgeEnd {
		return errors.New(errors.ErrCodeInvalidInput, "age_start %d is after age_end %d", b.AgeStart, b.AgeEnd)
	}
	return nil
}

// YearRange returns the width of the year axis.
func (b Bounds) YearRange() int { return b.YearEnd - b.YearStart }

// AgeRange returns the height of the age axis.
func (b Bounds) AgeRange() int { return b.AgeEnd - b.AgeStart }

// YearTicks returns every integer year from YearStart to YearEnd inclusive.
func (b Bounds) YearTicks() []int { return ticks(b.YearStart, b.YearEnd) }

// AgeTicks returns every integer age from AgeStart to AgeEnd inclusive.
func (b Bounds) AgeTicks() []int { return ticks(b.AgeStart, b.AgeEnd) }

// CohortSpan returns the number of years between the cohort's birth year
// and the right edge of the grid.
func (b Bounds) CohortSpan(cohort int) int { return b.YearEnd - cohort }

// CheckYear validates year against the year axis.
func (b Bounds) CheckYear(year int) error {
	return checkAxis(AxisYear, b.YearStart, b.YearEnd, year)
}

// CheckAge validates age against the age axis.
func (b Bounds) CheckAge(age int) error {
	return checkAxis(AxisAge, b.AgeStart, b.AgeEnd, age)
}

// CheckInRange succeeds iff start <= value <= end.
// On failure it returns a *errors.RangeError carrying the value and interval.
func CheckInRange(start, end, value int) error {
	return checkAxis("", start, end, value)
}

func checkAxis(axis string, start, end, value int) error {
	if start <= value && value <= end {
		return nil
	}
	return &errors.RangeError{Axis: axis, Value: value, Start: start, End: end}
}

func ticks(start, end int) []int {
	if end < start {
		return nil
	}
	out := make([]int, 0, end-start+1)
	for v := start; v <= end; v++ {
		out = append(out, v)
	}
	return out
}
