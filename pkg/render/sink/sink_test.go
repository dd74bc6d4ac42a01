package sink

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/lexis/pkg/errors"
	"github.com/matzehuels/lexis/pkg/lexis"
)

func testScene(t *testing.T) lexis.Scene {
	t.Helper()
	d, err := lexis.New(lexis.NewBounds(1980, 2000, 0, 10))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := d.Highlight(lexis.CohortBand{Value: 1985}, lexis.WithColor(lexis.MustParseColor("steelblue"))); err != nil {
		t.Fatalf("Highlight() error: %v", err)
	}
	if err := d.Highlight(lexis.AgeBand{Value: 3}, lexis.WithColor(lexis.MustParseColor("orange"))); err != nil {
		t.Fatalf("Highlight() error: %v", err)
	}
	if err := d.AddBirths(1985, 1200); err != nil {
		t.Fatalf("AddBirths() error: %v", err)
	}
	if err := d.AddDeaths(1985, 1986, 0, 12); err != nil {
		t.Fatalf("AddDeaths() error: %v", err)
	}
	if err := d.SetFont(10, "bold", true); err != nil {
		t.Fatalf("SetFont() error: %v", err)
	}
	return d.Scene()
}

func TestRenderJSON(t *testing.T) {
	s := testScene(t)

	data, err := RenderJSON(s)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Bounds != s.Bounds {
		t.Errorf("Bounds = %+v, want %+v", out.Bounds, s.Bounds)
	}
	if len(out.Regions) != 2 {
		t.Errorf("Regions count = %d, want 2", len(out.Regions))
	}
	if len(out.Labels) != 2 {
		t.Errorf("Labels count = %d, want 2", len(out.Labels))
	}
	if len(out.Lines) != len(s.Lines()) {
		t.Errorf("Lines count = %d, want %d", len(out.Lines), len(s.Lines()))
	}
	if out.Anchors != nil {
		t.Errorf("Anchors = %d entries, want omitted", len(out.Anchors))
	}
	if out.Aspect != "auto" {
		t.Errorf("Aspect = %q, want auto", out.Aspect)
	}
	if !bytes.Contains(data, []byte(`"color": "#4682b4"`)) {
		t.Errorf("output does not carry the region color as hex")
	}
}

func TestRenderJSONNonFiniteValue(t *testing.T) {
	d, err := lexis.New(lexis.NewBounds(1980, 2000, 0, 10))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := d.AddPoint(1990, 2, math.NaN()); err != nil {
		t.Fatalf("AddPoint() error: %v", err)
	}
	data, err := RenderJSON(d.Scene())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if !bytes.Contains(data, []byte(`"value": "NaN"`)) {
		t.Errorf("output does not carry NaN as text:\n%s", data)
	}
}

func TestRenderJSONOptions(t *testing.T) {
	s := testScene(t)

	data, err := RenderJSON(s, WithJSONCompact(), WithJSONAnchors())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if bytes.Contains(data, []byte("\n")) {
		t.Error("compact output contains newlines")
	}
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if len(out.Anchors) != lexis.LifelineCount(s.Bounds) {
		t.Errorf("Anchors count = %d, want %d", len(out.Anchors), lexis.LifelineCount(s.Bounds))
	}
}

func TestRenderJSONEmptyScene(t *testing.T) {
	d, _ := lexis.New(lexis.NewBounds(1900, 1900, 0, 0))
	data, err := RenderJSON(d.Scene())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	for _, key := range []string{`"regions": []`, `"labels": []`, `"lines": []`} {
		if !bytes.Contains(data, []byte(key)) {
			t.Errorf("output missing %s", key)
		}
	}
}

func TestRenderJSONDeterministic(t *testing.T) {
	s := testScene(t)
	a, _ := RenderJSON(s)
	b, _ := RenderJSON(s)
	if !bytes.Equal(a, b) {
		t.Error("two renders of the same scene differ")
	}
}

func TestRenderPlot(t *testing.T) {
	s := testScene(t)

	tests := []struct {
		format string
		magic  []byte
	}{
		{"png", []byte("\x89PNG")},
		{"svg", []byte("<?xml")},
		{"pdf", []byte("%PDF")},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			data, err := RenderPlot(s, tt.format, WithWidth(4*vg.Inch))
			if err != nil {
				t.Fatalf("RenderPlot() error: %v", err)
			}
			if !bytes.HasPrefix(data, tt.magic) {
				t.Errorf("output starts with %q, want %q", data[:min(len(data), 8)], tt.magic)
			}
		})
	}
}

func TestRenderPlotUnsupportedFormat(t *testing.T) {
	_, err := RenderPlot(testScene(t), "bmp")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("RenderPlot(bmp) code = %q, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestNewPlotViewport(t *testing.T) {
	s := testScene(t)
	p, err := NewPlot(s)
	if err != nil {
		t.Fatalf("NewPlot() error: %v", err)
	}
	if p.X.Min != 1980 || p.X.Max != 2000 {
		t.Errorf("X = [%v, %v], want [1980, 2000]", p.X.Min, p.X.Max)
	}
	if p.Y.Min != 0 || p.Y.Max != 10 {
		t.Errorf("Y = [%v, %v], want [0, 10]", p.Y.Min, p.Y.Max)
	}
	if p.Title.Text != "Lexis Diagram" {
		t.Errorf("Title = %q, want Lexis Diagram", p.Title.Text)
	}
}

func TestCanvasSize(t *testing.T) {
	s := lexis.Scene{Bounds: lexis.NewBounds(1900, 2000, 0, 50)}

	tests := []struct {
		name   string
		aspect lexis.Aspect
		opts   []PlotOption
		wantW  vg.Length
		wantH  vg.Length
	}{
		{"Auto", lexis.Aspect{Mode: lexis.AspectAuto}, nil, 8 * vg.Inch, 6 * vg.Inch},
		{"Equal", lexis.Aspect{Mode: lexis.AspectEqual}, nil, 8 * vg.Inch, 4 * vg.Inch},
		{"Square", lexis.Aspect{Mode: lexis.AspectRatio, Ratio: 1}, nil, 8 * vg.Inch, 8 * vg.Inch},
		{"FixedHeight", lexis.Aspect{Mode: lexis.AspectEqual}, []PlotOption{WithHeight(3 * vg.Inch)}, 8 * vg.Inch, 3 * vg.Inch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Aspect = tt.aspect
			w, h := CanvasSize(s, tt.opts...)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("CanvasSize() = %v x %v, want %v x %v", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestTicks(t *testing.T) {
	small := ticks([]int{1, 2, 3})
	for _, tk := range small {
		if tk.Label == "" {
			t.Errorf("tick %v unlabelled in short axis", tk.Value)
		}
	}

	values := make([]int, 101)
	for i := range values {
		values[i] = 1900 + i
	}
	big := ticks(values)
	labelled := 0
	for _, tk := range big {
		if tk.Label != "" {
			labelled++
		}
	}
	if len(big) != 101 {
		t.Errorf("len(ticks) = %d, want 101", len(big))
	}
	if labelled > maxTickLabels+1 || labelled == 0 {
		t.Errorf("labelled ticks = %d, want at most %d", labelled, maxTickLabels+1)
	}
	var _ plot.Ticker = plot.ConstantTicks(big)
}
