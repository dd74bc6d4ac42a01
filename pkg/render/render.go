package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/lexis/pkg/errors"
	"github.com/matzehuels/lexis/pkg/lexis"
	"github.com/matzehuels/lexis/pkg/render/sink"
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatPDF  Format = "pdf"
	FormatEPS  Format = "eps"
	FormatJPEG Format = "jpg"
	FormatTIFF Format = "tif"
	FormatTeX  Format = "tex"
	FormatJSON Format = "json"
)

// Formats lists every supported format in a stable order.
var Formats = []Format{FormatPNG, FormatSVG, FormatPDF, FormatEPS, FormatJPEG, FormatTIFF, FormatTeX, FormatJSON}

var aliases = map[string]Format{
	"jpeg": FormatJPEG,
	"tiff": FormatTIFF,
}

// ParseFormat normalizes a format name or file extension ("PNG", ".svg",
// "jpeg").
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if f, ok := aliases[name]; ok {
		return f, nil
	}
	if f := Format(name); slices.Contains(Formats, f) {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (supported: %s)", s, formatList())
}

// FormatFromPath infers the format from path's extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "%s has no extension to infer a format from", path)
	}
	return ParseFormat(ext)
}

// Ext returns the canonical file extension, including the dot.
func (f Format) Ext() string { return "." + string(f) }

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Options controls canvas size. Zero values mean the sink defaults.
type Options struct {
	Width  float64 // inches
	Height float64 // inches; zero derives it from the scene aspect
}

func (o Options) plotOptions() []sink.PlotOption {
	var opts []sink.PlotOption
	if o.Width > 0 {
		opts = append(opts, sink.WithWidth(vg.Length(o.Width)*vg.Inch))
	}
	if o.Height > 0 {
		opts = append(opts, sink.WithHeight(vg.Length(o.Height)*vg.Inch))
	}
	return opts
}

// Render encodes s in format f.
func Render(s lexis.Scene, f Format, opts Options) ([]byte, error) {
	if f == FormatJSON {
		return sink.RenderJSON(s)
	}
	if !slices.Contains(Formats, f) {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (supported: %s)", f, formatList())
	}
	return sink.RenderPlot(s, string(f), opts.plotOptions()...)
}

// FileExporter writes scenes to disk, picking the format from the path.
// It implements [lexis.Exporter].
type FileExporter struct {
	Options Options
}

// NewFileExporter returns an exporter with default canvas size.
func NewFileExporter() *FileExporter { return &FileExporter{} }

// Export renders s and writes it to path.
func (e *FileExporter) Export(s lexis.Scene, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Render(s, f, e.Options)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriterRenderer renders scenes to an io.Writer in a fixed format.
// It implements [lexis.Renderer].
type WriterRenderer struct {
	W       io.Writer
	Format  Format
	Options Options
}

// Render encodes s and writes it to r.W.
func (r WriterRenderer) Render(s lexis.Scene) error {
	data, err := Render(s, r.Format, r.Options)
	if err != nil {
		return err
	}
	if _, err := r.W.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", r.Format, err)
	}
	return nil
}
