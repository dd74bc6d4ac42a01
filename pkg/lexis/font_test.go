package lexis

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/matzehuels/lexis/pkg/errors"
)

func TestNewFont(t *testing.T) {
	tests := []struct {
		name    string
		size    float64
		weight  string
		want    Font
		wantErr bool
	}{
		{"Default", 12, "regular", DefaultFont, false},
		{"MixedCase", 14, "Bold", Font{14, WeightBold}, false},
		{"MinSize", 1, "light", Font{1, WeightLight}, false},
		{"MaxSize", 1000, "heavy", Font{1000, WeightHeavy}, false},
		{"ZeroSize", 0, "regular", Font{}, true},
		{"TooLarge", 1000.5, "regular", Font{}, true},
		{"NaN", math.NaN(), "regular", Font{}, true},
		{"UnknownWeight", 12, "italic", Font{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFont(tt.size, tt.weight)
			if tt.wantErr {
				var fe *errors.InvalidFontError
				if !stderrors.As(err, &fe) {
					t.Fatalf("NewFont() = %v, want *InvalidFontError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFont() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NewFont() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
