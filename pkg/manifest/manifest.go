package manifest

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/lexis/pkg/errors"
	lexisio "github.com/matzehuels/lexis/pkg/io"
	"github.com/matzehuels/lexis/pkg/lexis"
)

// Manifest is the TOML description of one diagram.
type Manifest struct {
	Grid    lexis.Bounds `toml:"grid"`
	Titles  *Titles      `toml:"titles"`
	Font    *Font        `toml:"font"`
	Aspect  string       `toml:"aspect"`
	Seed    *uint64      `toml:"seed"`
	Palette []string     `toml:"palette"`
	Strict  bool         `toml:"strict"`

	Highlights []Highlight `toml:"highlight"`
	Points     []Point     `toml:"point"`
	Births     []Births    `toml:"births"`
	Deaths     []Deaths    `toml:"deaths"`
	Data       []Data      `toml:"data"`

	// dir resolves relative data paths. Empty means the working directory.
	dir string
}

// Titles overrides the default axis labels and title.
type Titles struct {
	X     string `toml:"x"`
	Y     string `toml:"y"`
	Title string `toml:"title"`
}

// Font sets the label font before any label is added.
type Font struct {
	Size   float64 `toml:"size"`
	Weight string  `toml:"weight"`
}

// Highlight is a filled band.
type Highlight struct {
	Target string   `toml:"target"` // age, year or cohort
	Value  int      `toml:"value"`
	Color  string   `toml:"color"`
	Alpha  *float64 `toml:"alpha"`
}

// Point is a generic labelled value.
type Point struct {
	Year      int      `toml:"year"`
	Age       int      `toml:"age"`
	Value     any      `toml:"value"`
	PadYear   *float64 `toml:"pad_year"`
	PadAge    *float64 `toml:"pad_age"`
	Unchecked bool     `toml:"unchecked"`
}

// Births is a birth count.
type Births struct {
	Year  int `toml:"year"`
	Value any `toml:"value"`
}

// Deaths is a death count.
type Deaths struct {
	Cohort int `toml:"cohort"`
	Year   int `toml:"year"`
	Age    int `toml:"age"`
	Value  any `toml:"value"`
}

// Data pulls labels from a record file.
type Data struct {
	Path string `toml:"path"`
	lexis.BatchKeys
}

// Load reads and validates the manifest at path. Relative data paths are
// resolved against the manifest's directory.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// Decode parses and validates a manifest from r. Unknown keys are
// rejected so that typos do not silently drop settings.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	md, err := toml.NewDecoder(r).Decode(&m)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidManifest, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if !md.IsDefined("grid") {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "missing [grid]")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks everything that can be checked without building the
// diagram. Whether [grid] was present is only known to [Decode].
func (m *Manifest) Validate() error {
	if m.Seed != nil && len(m.Palette) > 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "seed and palette are mutually exclusive")
	}
	for i, h := range m.Highlights {
		if _, err := lexis.ParseBand(h.Target, h.Value); err != nil {
			return fmt.Errorf("highlight %d: %w", i, err)
		}
	}
	for i, d := range m.Data {
		if d.Path == "" {
			return errors.New(errors.ErrCodeInvalidManifest, "data %d: missing path", i)
		}
		if err := d.BatchKeys.Validate(); err != nil {
			return fmt.Errorf("data %d: %w", i, err)
		}
	}
	return nil
}

// Build creates the diagram the manifest describes. Entries are applied in
// a fixed order: font, titles, aspect, highlights, points, births, deaths,
// then data files. The first failing entry aborts the build.
func (m *Manifest) Build(logger *log.Logger) (*lexis.Diagram, error) {
	opts := []lexis.Option{lexis.WithLogger(logger)}
	if m.Strict {
		opts = append(opts, lexis.WithStrict())
	}
	colors, err := m.colors()
	if err != nil {
		return nil, err
	}
	if colors != nil {
		opts = append(opts, lexis.WithColors(colors))
	}

	d, err := lexis.New(m.Grid, opts...)
	if err != nil {
		return nil, err
	}
	if m.Font != nil {
		if err := d.SetFont(m.Font.Size, m.Font.Weight, false); err != nil {
			return nil, err
		}
	}
	if m.Titles != nil {
		d.SetTitles(m.Titles.X, m.Titles.Y, m.Titles.Title)
	}
	if m.Aspect != "" {
		if err := d.SetAspect(m.Aspect); err != nil {
			return nil, err
		}
	}

	for i, h := range m.Highlights {
		if err := addHighlight(d, h); err != nil {
			return nil, fmt.Errorf("highlight %d: %w", i, err)
		}
	}
	for i, p := range m.Points {
		if err := addPoint(d, p); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}
	for i, b := range m.Births {
		if err := d.AddBirths(b.Year, b.Value); err != nil {
			return nil, fmt.Errorf("births %d: %w", i, err)
		}
	}
	for i, dt := range m.Deaths {
		if err := d.AddDeaths(dt.Cohort, dt.Year, dt.Age, dt.Value); err != nil {
			return nil, fmt.Errorf("deaths %d: %w", i, err)
		}
	}
	for i, data := range m.Data {
		recs, err := lexisio.ImportRecords(m.resolve(data.Path))
		if err != nil {
			return nil, fmt.Errorf("data %d: %w", i, err)
		}
		if _, err := d.AddBatch(recs, data.BatchKeys); err != nil {
			return nil, fmt.Errorf("data %d (%s): %w", i, data.Path, err)
		}
	}
	return d, nil
}

// DataPaths returns the resolved paths of all data files, in order.
func (m *Manifest) DataPaths() []string {
	paths := make([]string, len(m.Data))
	for i, d := range m.Data {
		paths[i] = m.resolve(d.Path)
	}
	return paths
}

func (m *Manifest) resolve(path string) string {
	if filepath.IsAbs(path) || m.dir == "" {
		return path
	}
	return filepath.Join(m.dir, path)
}

func (m *Manifest) colors() (lexis.ColorProvider, error) {
	switch {
	case m.Seed != nil:
		return lexis.NewRandomColors(*m.Seed), nil
	case len(m.Palette) > 0:
		return lexis.NewPalette(m.Palette...)
	}
	return nil, nil
}

func addHighlight(d *lexis.Diagram, h Highlight) error {
	band, err := lexis.ParseBand(h.Target, h.Value)
	if err != nil {
		return err
	}
	var opts []lexis.HighlightOption
	if h.Color != "" {
		c, err := lexis.ParseColor(h.Color)
		if err != nil {
			return err
		}
		opts = append(opts, lexis.WithColor(c))
	}
	if h.Alpha != nil {
		opts = append(opts, lexis.WithAlpha(*h.Alpha))
	}
	return d.Highlight(band, opts...)
}

func addPoint(d *lexis.Diagram, p Point) error {
	if p.Unchecked {
		d.AddPointUnchecked(p.Year, p.Age, p.Value)
		return nil
	}
	var opts []lexis.PointOption
	if p.PadYear != nil {
		opts = append(opts, lexis.WithPadYear(lexis.Fixed(*p.PadYear)))
	}
	if p.PadAge != nil {
		opts = append(opts, lexis.WithPadAge(lexis.Fixed(*p.PadAge)))
	}
	return d.AddPoint(p.Year, p.Age, p.Value, opts...)
}
