package lexis

import (
	stderrors "errors"
	"testing"

	"github.com/matzehuels/lexis/pkg/errors"
)

func TestParseAspect(t *testing.T) {
	tests := []struct {
		spec    string
		want    Aspect
		wantErr bool
	}{
		{"auto", Aspect{Mode: AspectAuto}, false},
		{"Equal", Aspect{Mode: AspectEqual}, false},
		{"square", Aspect{Mode: AspectRatio, Ratio: 1}, false},
		{"0.5", Aspect{Mode: AspectRatio, Ratio: 0.5}, false},
		{"2", Aspect{Mode: AspectRatio, Ratio: 2}, false},
		{"wide", Aspect{}, true},
		{"0", Aspect{}, true},
		{"-1", Aspect{}, true},
		{"inf", Aspect{}, true},
		{"", Aspect{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseAspect(tt.spec)
			if tt.wantErr {
				var ae *errors.InvalidAspectError
				if !stderrors.As(err, &ae) {
					t.Fatalf("ParseAspect(%q) = %v, want *InvalidAspectError", tt.spec, err)
				}
				if ae.Value != tt.spec {
					t.Errorf("InvalidAspectError.Value = %q, want %q", ae.Value, tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAspect(%q) error: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseAspect(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestAspectDataAspect(t *testing.T) {
	b := NewBounds(1900, 2000, 0, 50) // 100 years by 50 ages

	tests := []struct {
		name       string
		aspect     Aspect
		wantData   float64
		wantHeight float64
		wantOK     bool
	}{
		{"Auto", Aspect{Mode: AspectAuto}, 0, 0, false},
		{"Equal", Aspect{Mode: AspectEqual}, 1, 0.5, true},
		{"Square", Aspect{Mode: AspectRatio, Ratio: 1}, 2, 1, true},
		{"Tall", Aspect{Mode: AspectRatio, Ratio: 3}, 6, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			da, ok := tt.aspect.DataAspect(b)
			if ok != tt.wantOK || !near(da, tt.wantData) {
				t.Errorf("DataAspect() = %v, %v, want %v, %v", da, ok, tt.wantData, tt.wantOK)
			}
			hr, ok := tt.aspect.HeightRatio(b)
			if ok != tt.wantOK || !near(hr, tt.wantHeight) {
				t.Errorf("HeightRatio() = %v, %v, want %v, %v", hr, ok, tt.wantHeight, tt.wantOK)
			}
		})
	}
}

func TestAspectString(t *testing.T) {
	for _, spec := range []string{"auto", "equal", "1.5"} {
		a, err := ParseAspect(spec)
		if err != nil {
			t.Fatalf("ParseAspect(%q) error: %v", spec, err)
		}
		if got := a.String(); got != spec {
			t.Errorf("String() = %q, want %q", got, spec)
		}
	}
	if got := (Aspect{}).String(); got != "auto" {
		t.Errorf("zero Aspect String() = %q, want auto", got)
	}
}
