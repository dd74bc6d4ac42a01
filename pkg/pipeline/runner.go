package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lexis/pkg/cache"
	"github.com/matzehuels/lexis/pkg/errors"
	lexisio "github.com/matzehuels/lexis/pkg/io"
	"github.com/matzehuels/lexis/pkg/lexis"
	"github.com/matzehuels/lexis/pkg/manifest"
	"github.com/matzehuels/lexis/pkg/observability"
	"github.com/matzehuels/lexis/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → render → write pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
		Paths:     make(map[string]string),
	}

	// Stage 1: Build
	buildStart := time.Now()
	scene, sceneData, sceneHit, err := r.BuildWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Scene = scene
	result.SceneHash = cache.Hash(sceneData)
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Labels = len(scene.Labels)
	result.Stats.Regions = len(scene.Regions)
	result.CacheInfo.SceneHit = sceneHit

	r.Logger.Info("built diagram",
		"labels", result.Stats.Labels,
		"regions", result.Stats.Regions,
		"cached", sceneHit,
		"duration", result.Stats.BuildTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, scene, result.SceneHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	// Stage 3: Write
	if opts.OutputDir == "" {
		return result, nil
	}
	for _, format := range opts.Formats {
		path := opts.OutputPath(format)
		if err := lexisio.WriteArtifact(path, artifacts[format]); err != nil {
			return nil, err
		}
		result.Paths[format] = path
		r.Logger.Debug("wrote artifact", "format", format, "path", path)
	}
	return result, nil
}

// BuildWithCacheInfo loads the manifest and returns its scene, the scene's
// JSON encoding and whether it came from cache. The cache key covers the
// manifest bytes and every data file, so editing either forces a rebuild.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, opts Options) (lexis.Scene, []byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return lexis.Scene{}, nil, false, err
	}

	m, err := manifest.Load(opts.ManifestPath)
	if err != nil {
		return lexis.Scene{}, nil, false, err
	}
	inputHash, err := InputHash(opts.ManifestPath, m.DataPaths())
	if err != nil {
		return lexis.Scene{}, nil, false, err
	}
	cacheKey := r.Keyer.SceneKey(inputHash)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if scene, err := lexisio.ReadScene(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "scene")
				return scene, data, true, nil
			}
			// Undecodable entry: fall through and rebuild
		}
		observability.Cache().OnCacheMiss(ctx, "scene")
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnBuildStart(ctx, opts.ManifestPath)
	d, err := m.Build(opts.Logger)
	if err != nil {
		hooks.OnBuildComplete(ctx, opts.ManifestPath, 0, 0, time.Since(start), err)
		return lexis.Scene{}, nil, false, err
	}
	scene := d.Scene()
	hooks.OnBuildComplete(ctx, opts.ManifestPath, len(scene.Labels), len(scene.Regions), time.Since(start), nil)

	var buf bytes.Buffer
	if err := lexisio.WriteScene(scene, &buf); err != nil {
		return lexis.Scene{}, nil, false, fmt.Errorf("serialize scene: %w", err)
	}
	data := buf.Bytes()
	if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLScene); err != nil {
		r.Logger.Warn("cache write failed", "key", cacheKey, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "scene", len(data))
	}
	return scene, data, false, nil
}

// Build is a convenience wrapper that calls BuildWithCacheInfo and keeps
// only the scene.
func (r *Runner) Build(ctx context.Context, opts Options) (lexis.Scene, error) {
	scene, _, _, err := r.BuildWithCacheInfo(ctx, opts)
	return scene, err
}

// RenderWithCacheInfo encodes scene in every requested format, reusing
// cached artifacts. The bool reports whether every format was a hit.
// Cancellation is checked between formats.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, scene lexis.Scene, sceneHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		cacheKey := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		allCached = false

		data, err := renderFormat(ctx, scene, format, opts)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "key", cacheKey, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return artifacts, allCached, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, scene lexis.Scene, sceneHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, scene, sceneHash, opts)
	return artifacts, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func renderFormat(ctx context.Context, scene lexis.Scene, format string, opts Options) ([]byte, error) {
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, format)
	data, err := render.Render(scene, render.Format(format), opts.RenderOptions())
	hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}

// InputHash hashes a manifest together with the data files it references.
func InputHash(manifestPath string, dataPaths []string) (string, error) {
	parts := make([][]byte, 0, len(dataPaths)+1)
	for _, p := range append([]string{manifestPath}, dataPaths...) {
		data, err := os.ReadFile(p)
		if stderrors.Is(err, os.ErrNotExist) {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "input %s", p)
		}
		if err != nil {
			return "", fmt.Errorf("hash input: %w", err)
		}
		parts = append(parts, data)
	}
	return cache.HashParts(parts...), nil
}
