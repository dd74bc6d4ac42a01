package sink

import (
	"bytes"
	"image/color"
	"slices"
	"strconv"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/lexis/pkg/errors"
	"github.com/matzehuels/lexis/pkg/lexis"
)

// Canvas defaults.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 6 * vg.Inch

	// maxTickLabels caps labelled ticks per axis; the rest stay as grid lines.
	maxTickLabels = 20
)

// PlotFormats lists the encodings [RenderPlot] supports.
var PlotFormats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tex", "tif", "tiff"}

var (
	lifelineColor = color.Gray{Y: 0x80}
	labelColor    = color.Black
)

// PlotOption configures rendering via [RenderPlot].
type PlotOption func(*plotRenderer)

type plotRenderer struct {
	width    vg.Length
	height   vg.Length
	lifeline color.Color
}

// WithWidth sets the canvas width (default 8in).
func WithWidth(w vg.Length) PlotOption { return func(r *plotRenderer) { r.width = w } }

// WithHeight fixes the canvas height. Without it the height follows the
// scene aspect, or 6in when the aspect is auto.
func WithHeight(h vg.Length) PlotOption { return func(r *plotRenderer) { r.height = h } }

// WithLifelineColor sets the stroke color of the cohort diagonals.
func WithLifelineColor(c color.Color) PlotOption {
	return func(r *plotRenderer) { r.lifeline = c }
}

// CanvasSize returns the width and height RenderPlot would use for s.
func CanvasSize(s lexis.Scene, opts ...PlotOption) (w, h vg.Length) {
	r := newPlotRenderer(opts)
	return r.size(s)
}

func newPlotRenderer(opts []PlotOption) plotRenderer {
	r := plotRenderer{width: DefaultWidth, lifeline: lifelineColor}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r plotRenderer) size(s lexis.Scene) (vg.Length, vg.Length) {
	if r.height > 0 {
		return r.width, r.height
	}
	if ratio, ok := s.Aspect.HeightRatio(s.Bounds); ok {
		return r.width, vg.Length(ratio) * r.width
	}
	return r.width, DefaultHeight * r.width / DefaultWidth
}

// RenderPlot draws s and encodes it in format, one of [PlotFormats].
func RenderPlot(s lexis.Scene, format string, opts ...PlotOption) ([]byte, error) {
	if !slices.Contains(PlotFormats, format) {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported plot format %q", format)
	}
	r := newPlotRenderer(opts)
	p, err := r.build(s)
	if err != nil {
		return nil, err
	}
	w, h := r.size(s)
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", format)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write %s", format)
	}
	return buf.Bytes(), nil
}

// NewPlot builds a gonum plot of s with default styling. Callers may add
// their own plotters before saving it.
func NewPlot(s lexis.Scene) (*plot.Plot, error) {
	return newPlotRenderer(nil).build(s)
}

func (r plotRenderer) build(s lexis.Scene) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Titles.Title
	p.X.Label.Text = s.Titles.X
	p.Y.Label.Text = s.Titles.Y
	p.X.Tick.Marker = plot.ConstantTicks(ticks(s.YearTicks))
	p.Y.Tick.Marker = plot.ConstantTicks(ticks(s.AgeTicks))

	p.Add(plotter.NewGrid())

	for _, reg := range s.Regions {
		poly, err := plotter.NewPolygon(xys(reg.Outline))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s band %d", reg.Kind, reg.Value)
		}
		poly.Color = reg.Fill()
		poly.LineStyle.Width = 0
		p.Add(poly)
	}

	for _, seg := range s.Lines() {
		line, err := plotter.NewLine(plotter.XYs{{X: seg.From.X, Y: seg.From.Y}, {X: seg.To.X, Y: seg.To.Y}})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "lifeline")
		}
		line.Width = vg.Points(0.5)
		line.Color = r.lifeline
		p.Add(line)
	}

	if len(s.Labels) > 0 {
		labels, err := newLabels(s.Labels)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}

	// Add grows the axes to fit the data; the grid is the viewport.
	p.X.Min, p.X.Max = float64(s.Bounds.YearStart), float64(s.Bounds.YearEnd)
	p.Y.Min, p.Y.Max = float64(s.Bounds.AgeStart), float64(s.Bounds.AgeEnd)
	return p, nil
}

func newLabels(ls []lexis.Label) (*plotter.Labels, error) {
	data := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(ls)),
		Labels: make([]string, len(ls)),
	}
	for i, l := range ls {
		data.XYs[i] = plotter.XY{X: l.Position.X, Y: l.Position.Y}
		data.Labels[i] = l.Text
	}
	labels, err := plotter.NewLabels(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "labels")
	}
	for i, l := range ls {
		st := &labels.TextStyle[i]
		st.Color = labelColor
		st.Font = font.From(plot.DefaultFont, vg.Points(l.Font.Size))
		st.Font.Weight = fontWeight(l.Font.Weight)
		st.XAlign = text.XLeft
		st.YAlign = text.YBottom
	}
	return labels, nil
}

// ticks marks every value and labels at most maxTickLabels of them.
func ticks(values []int) []plot.Tick {
	step := 1
	if n := len(values); n > maxTickLabels {
		step = (n + maxTickLabels - 1) / maxTickLabels
	}
	out := make([]plot.Tick, len(values))
	for i, v := range values {
		out[i].Value = float64(v)
		if i%step == 0 {
			out[i].Label = strconv.Itoa(v)
		}
	}
	return out
}

func xys(pts []lexis.Point) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		out[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return out
}

func fontWeight(w lexis.Weight) xfont.Weight {
	switch w {
	case lexis.WeightLight:
		return xfont.WeightLight
	case lexis.WeightMedium:
		return xfont.WeightMedium
	case lexis.WeightBold:
		return xfont.WeightBold
	case lexis.WeightHeavy:
		return xfont.WeightExtraBold
	default:
		return xfont.WeightNormal
	}
}
