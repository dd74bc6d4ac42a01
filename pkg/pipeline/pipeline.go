// Package pipeline runs the manifest → scene → artifacts pipeline behind
// the lexis CLI.
//
// # Stages
//
//  1. Build: load a TOML manifest and replay it onto a [lexis.Diagram]
//  2. Render: encode the diagram's scene in each requested format
//  3. Write: store the artifacts under the output directory
//
// Scenes are cached by a hash of the manifest and every data file it
// references; artifacts by the scene hash plus format and canvas size.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ManifestPath: "diagram.toml",
//	    Formats:      []string{"png", "svg"},
//	    OutputDir:    "out",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Paths["png"])
//
// [lexis.Diagram]: github.com/matzehuels/lexis/pkg/lexis.Diagram
package pipeline

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lexis/pkg/cache"
	"github.com/matzehuels/lexis/pkg/errors"
	"github.com/matzehuels/lexis/pkg/lexis"
	"github.com/matzehuels/lexis/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = render.FormatPNG

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Build options
	ManifestPath string `json:"manifest"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Width   float64  `json:"width,omitempty"`  // inches
	Height  float64  `json:"height,omitempty"` // inches; zero follows the diagram aspect

	// Write options. An empty OutputDir skips writing; Name defaults to the
	// manifest's base name.
	OutputDir string `json:"output_dir,omitempty"`
	Name      string `json:"name,omitempty"`

	// Refresh ignores cached entries but still stores fresh ones.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the built scene.
	Scene lexis.Scene

	// SceneHash is the content hash of the scene's JSON encoding.
	SceneHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Paths contains the written files keyed by format. Empty when
	// OutputDir is unset.
	Paths map[string]string

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Labels     int
	Regions    int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SceneHit  bool // Whether the scene came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormats normalizes format names in place ("JPEG" → "jpg") and
// rejects unknown ones.
func ValidateFormats(formats []string) error {
	for i, f := range formats {
		parsed, err := render.ParseFormat(f)
		if err != nil {
			return err
		}
		formats[i] = string(parsed)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Calling it again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.ManifestPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "manifest path is required")
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas size must be positive, got %gx%g", o.Width, o.Height)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{string(DefaultFormat)}
	}
	o.Formats = slices.Clone(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Formats = dedupe(o.Formats)
	if o.Name == "" {
		base := filepath.Base(o.ManifestPath)
		o.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// RenderOptions returns the canvas settings for the render package.
func (o *Options) RenderOptions() render.Options {
	return render.Options{Width: o.Width, Height: o.Height}
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Width:  o.Width,
		Height: o.Height,
	}
}

// OutputPath returns where the artifact for format is written.
func (o *Options) OutputPath(format string) string {
	return filepath.Join(o.OutputDir, o.Name+render.Format(format).Ext())
}

func dedupe(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	out := ss[:0]
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
