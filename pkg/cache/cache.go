// Package cache stores rendered artifacts so that re-rendering an unchanged
// diagram skips layout and encoding.
//
// # Backends
//
//   - [FileCache]: one JSON entry per key under a directory, with optional TTL
//   - [NullCache]: never stores anything; used for --no-cache and in tests
//
// # Keys
//
// A [Keyer] derives keys from content hashes. Scene keys hash the inputs a
// diagram is built from; artifact keys combine a scene hash with the output
// format and canvas size. [NewScopedKeyer] prefixes every key, which the CLI
// uses to keep entries from different releases apart.
package cache

import (
	"context"
	"time"
)

// Entry lifetimes. Keys are content hashes, so entries never go stale;
// the TTLs only bound disk use.
const (
	TTLScene    = 7 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// SceneKey returns the key for a scene built from inputs with the given hash.
	SceneKey(inputHash string) string
	// ArtifactKey returns the key for a scene rendered with opts.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SceneKey returns "scene:<hash>".
func (DefaultKeyer) SceneKey(inputHash string) string {
	return hashKey("scene", inputHash)
}

// ArtifactKey returns "artifact:<hash>".
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}
