package lexis

import (
	"slices"
	"testing"
)

func TestLifelines(t *testing.T) {
	b := NewBounds(1900, 1905, 0, 3)

	segs := slices.Collect(Lifelines(b))
	if len(segs) != 8 {
		t.Fatalf("len(Lifelines) = %d, want 8", len(segs))
	}
	if got := LifelineCount(b); got != 8 {
		t.Errorf("LifelineCount() = %d, want 8", got)
	}
	for i, s := range segs {
		if s.Slope() != 1 {
			t.Errorf("segment %d slope = %v, want 1", i, s.Slope())
		}
		if s.To.X-s.From.X != 1 || s.To.Y-s.From.Y != 1 {
			t.Errorf("segment %d = %+v, want unit diagonal", i, s)
		}
	}
	if first := segs[0].From; first != (Point{X: 1897, Y: 0}) {
		t.Errorf("first anchor = %+v, want (1897, 0)", first)
	}
	if last := segs[7].To; last != (Point{X: 1905, Y: 1}) {
		t.Errorf("last end = %+v, want (1905, 1)", last)
	}
}

func TestLifelinesRestartable(t *testing.T) {
	seq := Lifelines(NewBounds(1950, 1960, 0, 20))
	a := slices.Collect(seq)
	b := slices.Collect(seq)
	if !slices.Equal(a, b) {
		t.Error("second iteration differs from first")
	}
}

func TestLifelinesEarlyBreak(t *testing.T) {
	n := 0
	for range Lifelines(NewBounds(1900, 2000, 0, 100)) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterations = %d, want 3", n)
	}
}

func TestLifelineCountEmpty(t *testing.T) {
	// YearEnd < YearStart - AgeEnd
	b := NewBounds(2000, 1900, 0, 10)
	if got := LifelineCount(b); got != 0 {
		t.Errorf("LifelineCount() = %d, want 0", got)
	}
	if got := len(slices.Collect(Lifelines(b))); got != 0 {
		t.Errorf("len(Lifelines) = %d, want 0", got)
	}
}

func TestSegmentClip(t *testing.T) {
	b := NewBounds(1900, 1905, 0, 3)

	tests := []struct {
		name   string
		anchor float64 // x of the anchor at age 0
		want   Segment
		wantOK bool
	}{
		{"BornBeforeGrid", 1898, Segment{Point{1900, 2}, Point{1901, 3}}, true},
		{"BornAtStart", 1900, Segment{Point{1900, 0}, Point{1903, 3}}, true},
		{"CutByRightEdge", 1903, Segment{Point{1903, 0}, Point{1905, 2}}, true},
		{"TouchesCorner", 1897, Segment{}, false},
		{"BornAtEnd", 1905, Segment{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Segment{From: Point{tt.anchor, 0}, To: Point{tt.anchor + 1, 1}}
			got, ok := s.Clip(b)
			if ok != tt.wantOK {
				t.Fatalf("Clip() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Clip() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSegmentSlopeVertical(t *testing.T) {
	s := Segment{From: Point{1, 0}, To: Point{1, 5}}
	if got := s.Slope(); got < 1e300 {
		t.Errorf("Slope() = %v, want +Inf", got)
	}
}
