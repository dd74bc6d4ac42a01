package lexis

import (
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/lexis/pkg/errors"
)

// ParseColor accepts an SVG color name ("steelblue"), a matplotlib
// "tab:" color or a hex code in "#rgb" or "#rrggbb" form.
func ParseColor(s string) (colorful.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor, "empty color")
	}
	if hex, ok := tableau[name]; ok {
		name = hex
	}
	if rgba, ok := colornames.Map[name]; ok {
		c, _ := colorful.MakeColor(rgba)
		return c, nil
	}
	if !strings.HasPrefix(name, "#") {
		name = "#" + name
	}
	c, err := colorful.Hex(name)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	return c, nil
}

// MustParseColor is like [ParseColor] but panics on error.
func MustParseColor(s string) colorful.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorProvider supplies highlight colors when the caller gives none.
type ColorProvider interface {
	Next() colorful.Color
}

// Palette cycles through a fixed list of colors. The zero value cycles
// through [DefaultPalette].
type Palette struct {
	colors []colorful.Color
	next   int
}

// DefaultPalette is used by diagrams created without [WithColors].
var DefaultPalette = []string{"tab:blue", "tab:orange", "tab:green", "tab:red", "tab:purple"}

// tableau holds the matplotlib "tab:" colors, which are not SVG names.
var tableau = map[string]string{
	"tab:blue":   "#1f77b4",
	"tab:orange": "#ff7f0e",
	"tab:green":  "#2ca02c",
	"tab:red":    "#d62728",
	"tab:purple": "#9467bd",
}

// NewPalette parses names into a cycling provider. It fails on the first
// unparsable color or when names is empty.
func NewPalette(names ...string) (*Palette, error) {
	if len(names) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidColor, "palette needs at least one color")
	}
	p := &Palette{colors: make([]colorful.Color, 0, len(names))}
	for _, n := range names {
		c, err := ParseColor(n)
		if err != nil {
			return nil, err
		}
		p.colors = append(p.colors, c)
	}
	return p, nil
}

// Next returns the next palette color, wrapping around at the end.
func (p *Palette) Next() colorful.Color {
	if len(p.colors) == 0 {
		p.colors = parsePalette(DefaultPalette)
	}
	c := p.colors[p.next%len(p.colors)]
	p.next++
	return c
}

// RandomColors draws saturated colors from a seeded source, so the same
// seed always yields the same sequence. The zero value behaves as seed 0.
type RandomColors struct {
	rng *rand.Rand
}

// NewRandomColors returns a provider seeded with seed.
func NewRandomColors(seed uint64) *RandomColors {
	return &RandomColors{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns a color with random hue and fixed saturation and value.
func (r *RandomColors) Next() colorful.Color {
	if r.rng == nil {
		*r = *NewRandomColors(0)
	}
	return colorful.Hsv(r.rng.Float64()*360, 0.65, 0.85)
}

func defaultColors() ColorProvider {
	return &Palette{colors: parsePalette(DefaultPalette)}
}

func parsePalette(names []string) []colorful.Color {
	colors := make([]colorful.Color, len(names))
	for i, n := range names {
		colors[i] = MustParseColor(n)
	}
	return colors
}
