package lexis

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/lexis/pkg/errors"
)

// Diagram accumulates highlights and labels over a fixed grid and hands
// them to a [Renderer] as a [Scene].
//
// A Diagram is not safe for concurrent use; callers sharing one must
// serialize mutations.
type Diagram struct {
	bounds Bounds
	titles Titles
	font   Font
	aspect Aspect

	regions []Region
	labels  []Label

	colors ColorProvider
	strict bool
	logger *log.Logger
}

// Option configures a Diagram.
type Option func(*Diagram)

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(d *Diagram) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithColors sets the provider consulted when a highlight has no color.
func WithColors(p ColorProvider) Option {
	return func(d *Diagram) {
		if p != nil {
			d.colors = p
		}
	}
}

// WithStrict enables validation the default mode skips: bounds ordering at
// construction and band values against their axis.
func WithStrict() Option {
	return func(d *Diagram) { d.strict = true }
}

// WithFont sets the initial label font. [New] rejects fonts [NewFont]
// would reject.
func WithFont(f Font) Option {
	return func(d *Diagram) { d.font = f }
}

// New creates an empty diagram over b. It fails on an invalid [WithFont]
// font and, in strict mode, on unordered bounds.
func New(b Bounds, opts ...Option) (*Diagram, error) {
	d := &Diagram{
		bounds: b,
		titles: DefaultTitles,
		font:   DefaultFont,
		aspect: Aspect{Mode: AspectAuto},
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.colors == nil {
		d.colors = defaultColors()
	}
	f, err := NewFont(d.font.Size, string(d.font.Weight))
	if err != nil {
		return nil, err
	}
	d.font = f
	if d.strict {
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}
	d.logger.Debug("diagram created", "years", []int{b.YearStart, b.YearEnd}, "ages", []int{b.AgeStart, b.AgeEnd})
	return d, nil
}

// Bounds returns the grid the diagram was created with.
func (d *Diagram) Bounds() Bounds { return d.bounds }

// Font returns the font applied to labels added from now on.
func (d *Diagram) Font() Font { return d.font }

// SetTitles sets the axis labels and title.
func (d *Diagram) SetTitles(x, y, title string) {
	d.titles = Titles{X: x, Y: y, Title: title}
}

// SetFont changes the label font. With retroactive set, labels already
// added are re-stamped with the new font and count labels recompute their
// padding; otherwise only labels added afterwards use it.
func (d *Diagram) SetFont(size float64, weight string, retroactive bool) error {
	f, err := NewFont(size, weight)
	if err != nil {
		return err
	}
	d.font = f
	if retroactive {
		for i, l := range d.labels {
			d.labels[i] = l.restamp(f)
		}
	}
	d.logger.Debug("font set", "size", f.Size, "weight", f.Weight, "retroactive", retroactive, "labels", len(d.labels))
	return nil
}

// SetAspect parses and applies an aspect specifier (see [ParseAspect]).
func (d *Diagram) SetAspect(spec string) error {
	a, err := ParseAspect(spec)
	if err != nil {
		return err
	}
	d.aspect = a
	return nil
}

// SetAspectRatio applies a numeric aspect.
func (d *Diagram) SetAspectRatio(r float64) error {
	a, err := NewAspectRatio(r)
	if err != nil {
		return err
	}
	d.aspect = a
	return nil
}

// =============================================================================
// Highlights
// =============================================================================

// HighlightOption configures a single highlight.
type HighlightOption func(*highlightConfig)

type highlightConfig struct {
	color *colorful.Color
	alpha *float64
}

// WithColor sets the fill color. Without it the diagram's color provider
// picks one.
func WithColor(c colorful.Color) HighlightOption {
	return func(h *highlightConfig) { h.color = &c }
}

// WithAlpha sets the opacity, which must lie in [0, 1]. Without it the
// band's default is used.
func WithAlpha(a float64) HighlightOption {
	return func(h *highlightConfig) { h.alpha = &a }
}

// Highlight adds a filled band. Nothing is added when it fails.
func (d *Diagram) Highlight(band Band, opts ...HighlightOption) error {
	if band == nil {
		return errors.New(errors.ErrCodeInvalidTarget, "nil band")
	}
	var cfg highlightConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	alpha := band.DefaultAlpha()
	if cfg.alpha != nil {
		alpha = *cfg.alpha
		if !(alpha >= 0 && alpha <= 1) {
			return errors.New(errors.ErrCodeInvalidInput, "alpha %g outside [0, 1]", alpha)
		}
	}
	if d.strict {
		if err := checkBand(d.bounds, band); err != nil {
			return err
		}
	}
	var c colorful.Color
	if cfg.color != nil {
		c = *cfg.color
	} else {
		c = d.colors.Next()
	}
	r := Region{
		Kind:    band.Kind(),
		Value:   band.Index(),
		Outline: band.Outline(d.bounds),
		Color:   colorful.HexColor(c),
		Alpha:   alpha,
	}
	d.regions = append(d.regions, r)
	d.logger.Debug("highlight added", "kind", r.Kind, "value", r.Value, "color", c.Hex(), "alpha", alpha)
	return nil
}

// =============================================================================
// Labels
// =============================================================================

// PointOption configures a generic point.
type PointOption func(*pointConfig)

type pointConfig struct {
	padYear, padAge Padding
}

// WithPadYear sets the horizontal offset of a point within its cell.
func WithPadYear(p Padding) PointOption {
	return func(c *pointConfig) { c.padYear = p }
}

// WithPadAge sets the vertical offset of a point within its cell.
func WithPadAge(p Padding) PointOption {
	return func(c *pointConfig) { c.padAge = p }
}

// AddPoint places value in the cell (year, age). Both axes are checked.
func (d *Diagram) AddPoint(year, age int, value any, opts ...PointOption) error {
	var cfg pointConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	l, err := PlacePoint(d.bounds, year, age, value, cfg.padYear, cfg.padAge, d.font)
	if err != nil {
		return err
	}
	d.add(l)
	return nil
}

// AddPointUnchecked places value in the cell (year, age) even when the cell
// lies outside the grid.
func (d *Diagram) AddPointUnchecked(year, age int, value any) {
	d.add(PlacePointUnchecked(year, age, value, d.font))
}

// AddBirths places a birth count for year along the bottom of the grid.
func (d *Diagram) AddBirths(year int, value any) error {
	l, err := PlaceBirths(d.bounds, year, value, d.font)
	if err != nil {
		return err
	}
	d.add(l)
	return nil
}

// AddDeaths places a death count for the cohort born in cohort who died in
// year at age.
func (d *Diagram) AddDeaths(cohort, year, age int, value any) error {
	l, err := PlaceDeaths(d.bounds, cohort, year, age, value, d.font)
	if err != nil {
		return err
	}
	d.add(l)
	return nil
}

// AddBatch adds one label per record. Ingestion stops at the first record
// that cannot be coerced or placed; labels from earlier records are kept.
// It returns the number of records added.
func (d *Diagram) AddBatch(records []Record, keys BatchKeys) (int, error) {
	if err := keys.Validate(); err != nil {
		return 0, err
	}
	for i, rec := range records {
		if err := d.addRecord(i, rec, keys); err != nil {
			d.logger.Debug("batch aborted", "row", i, "added", i, "err", err)
			return i, err
		}
	}
	d.logger.Debug("batch added", "mode", keys.mode(), "rows", len(records))
	return len(records), nil
}

func (d *Diagram) addRecord(row int, rec Record, keys BatchKeys) error {
	year, err := field(rec, row, keys.X)
	if err != nil {
		return err
	}
	value := rec[keys.Value]
	if keys.mode() == LabelBirths {
		return d.AddBirths(year, value)
	}
	age, err := field(rec, row, keys.Y)
	if err != nil {
		return err
	}
	if keys.mode() == LabelDeaths {
		cohort, err := field(rec, row, keys.Cohort)
		if err != nil {
			return err
		}
		return d.AddDeaths(cohort, year, age, value)
	}
	return d.AddPoint(year, age, value)
}

func (d *Diagram) add(l Label) {
	d.labels = append(d.labels, l)
	d.logger.Debug("label added", "kind", l.Kind, "x", l.Position.X, "y", l.Position.Y, "text", l.Text)
}

// =============================================================================
// Output
// =============================================================================

// Scene returns a snapshot of the diagram. Calling it repeatedly without
// intervening mutations returns equal scenes.
func (d *Diagram) Scene() Scene {
	return Scene{
		Bounds:    d.bounds,
		YearTicks: d.bounds.YearTicks(),
		AgeTicks:  d.bounds.AgeTicks(),
		Lifelines: slices.Collect(Lifelines(d.bounds)),
		Regions:   cloneRegions(d.regions),
		Labels:    slices.Clone(d.labels),
		Font:      d.font,
		Titles:    d.titles,
		Aspect:    d.aspect,
	}
}

// Render hands the current scene to r.
func (d *Diagram) Render(r Renderer) error {
	return r.Render(d.Scene())
}

// Export hands the current scene to e for writing to path.
func (d *Diagram) Export(e Exporter, path string) error {
	d.logger.Debug("exporting", "path", path)
	return e.Export(d.Scene(), path)
}
