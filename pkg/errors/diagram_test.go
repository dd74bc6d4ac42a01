package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func TestTypedErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
	}{
		{"range", &RangeError{Axis: "year", Value: 2010, Start: 1900, End: 2000}, ErrCodeRange},
		{"cohort", &InconsistentCohortError{Cohort: 1990, Year: 1992, Age: 0}, ErrCodeInconsistentCohort},
		{"font", &InvalidFontError{Size: 0, Weight: "regular", Reason: "size out of range"}, ErrCodeInvalidFont},
		{"aspect", &InvalidAspectError{Value: "wide"}, ErrCodeInvalidAspect},
		{"cast", &DataCastError{Row: 3, Key: "year", Value: "abc"}, ErrCodeDataCast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %v, want %v", got, tt.code)
			}
			wrapped := fmt.Errorf("add label: %w", tt.err)
			if !Is(wrapped, tt.code) {
				t.Errorf("Is(wrapped, %v) = false, want true", tt.code)
			}
			if !strings.HasPrefix(tt.err.Error(), string(tt.code)) {
				t.Errorf("Error() = %q, want prefix %q", tt.err.Error(), tt.code)
			}
		})
	}
}

func TestRangeErrorMessage(t *testing.T) {
	err := &RangeError{Axis: "age", Value: -1, Start: 0, End: 100}
	want := "RANGE: invalid data: value -1 outside age range 0 to 100"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = &RangeError{Value: 5, Start: 0, End: 3}
	if !strings.Contains(err.Error(), "grid range") {
		t.Errorf("Error() = %q, want default axis name", err.Error())
	}
}

func TestDataCastErrorUnwrap(t *testing.T) {
	_, cause := strconv.Atoi("x")
	err := &DataCastError{Row: 0, Key: "age", Value: "x", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	var target *DataCastError
	if !errors.As(fmt.Errorf("ingest: %w", err), &target) {
		t.Fatal("errors.As should find *DataCastError")
	}
	if target.Key != "age" {
		t.Errorf("Key = %q, want %q", target.Key, "age")
	}
}

func TestWrapPrefersOutermostCode(t *testing.T) {
	err := Wrap(ErrCodeInvalidManifest, &RangeError{Value: 1}, "highlight #0")
	if got := GetCode(err); got != ErrCodeInvalidManifest {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidManifest)
	}

	var re *RangeError
	if !errors.As(err, &re) {
		t.Error("errors.As should still reach the wrapped *RangeError")
	}
}
