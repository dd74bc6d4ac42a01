package errors

import "fmt"

// RangeError reports an axis value outside the diagram's inclusive interval.
type RangeError struct {
	Axis  string // "year" or "age"; empty when the axis is unknown
	Value int
	Start int
	End   int
}

func (e *RangeError) Error() string {
	axis := "grid"
	if e.Axis != "" {
		axis = e.Axis
	}
	return fmt.Sprintf("%s: invalid data: value %d outside %s range %d to %d",
		ErrCodeRange, e.Value, axis, e.Start, e.End)
}

// ErrorCode returns ErrCodeRange.
func (e *RangeError) ErrorCode() Code { return ErrCodeRange }

// InconsistentCohortError reports a death triple that cannot be placed on
// the grid: (year - cohort) - age must be 0 or 1.
type InconsistentCohortError struct {
	Cohort int
	Year   int
	Age    int
}

func (e *InconsistentCohortError) Error() string {
	return fmt.Sprintf("%s: invalid data: cohort %d, year %d, age %d",
		ErrCodeInconsistentCohort, e.Cohort, e.Year, e.Age)
}

// ErrorCode returns ErrCodeInconsistentCohort.
func (e *InconsistentCohortError) ErrorCode() Code { return ErrCodeInconsistentCohort }

// InvalidFontError reports a font size outside [1, 1000] or an unknown weight.
type InvalidFontError struct {
	Size   float64
	Weight string
	Reason string
}

func (e *InvalidFontError) Error() string {
	return fmt.Sprintf("%s: %s (size %g, weight %q)", ErrCodeInvalidFont, e.Reason, e.Size, e.Weight)
}

// ErrorCode returns ErrCodeInvalidFont.
func (e *InvalidFontError) ErrorCode() Code { return ErrCodeInvalidFont }

// InvalidAspectError reports an aspect specifier that is not auto, equal,
// square or a positive number.
type InvalidAspectError struct {
	Value string
}

func (e *InvalidAspectError) Error() string {
	return fmt.Sprintf("%s: invalid aspect %q (must be 'auto', 'equal', 'square' or a positive number)",
		ErrCodeInvalidAspect, e.Value)
}

// ErrorCode returns ErrCodeInvalidAspect.
func (e *InvalidAspectError) ErrorCode() Code { return ErrCodeInvalidAspect }

// DataCastError reports a raw record field that could not be coerced to
// an integer during batch ingestion.
type DataCastError struct {
	Row   int // zero-based record index
	Key   string
	Value any
	Cause error
}

func (e *DataCastError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: row %d: field %q: cannot convert %v (%T) to integer: %v",
			ErrCodeDataCast, e.Row, e.Key, e.Value, e.Value, e.Cause)
	}
	return fmt.Sprintf("%s: row %d: field %q: cannot convert %v (%T) to integer",
		ErrCodeDataCast, e.Row, e.Key, e.Value, e.Value)
}

// Unwrap returns the conversion failure, if any.
func (e *DataCastError) Unwrap() error { return e.Cause }

// ErrorCode returns ErrCodeDataCast.
func (e *DataCastError) ErrorCode() Code { return ErrCodeDataCast }
