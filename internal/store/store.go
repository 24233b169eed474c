package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/highwayhash"

	"github.com/dshills/codecloak/internal/cloak"
)

// Key is the single slot every backend stores the current context under.
const Key = "lastCloakContext"

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrNoContext is returned by Load when nothing has been stored yet, the
// stored context was cleared, or it expired.
var ErrNoContext = errors.New("no cloak context available")

// Envelope wraps a cloak context with the metadata the host keeps about it.
type Envelope struct {
	ID          string        `json:"id" yaml:"id"`
	CreatedAt   time.Time     `json:"createdAt" yaml:"createdAt"`
	Fingerprint string        `json:"fingerprint" yaml:"fingerprint"`
	Context     cloak.Context `json:"context" yaml:"context"`
}

// NewEnvelope stamps ctx with a fresh time-ordered id and the fingerprint
// of the cloaked text it belongs to.
func NewEnvelope(ctx cloak.Context, transformed string) (Envelope, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Envelope{}, fmt.Errorf("generating context id: %w", err)
	}
	fp, err := Fingerprint(transformed)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		ID:          id.String(),
		CreatedAt:   time.Now().UTC(),
		Fingerprint: fp,
		Context:     ctx,
	}, nil
}

// Matches reports whether text is exactly the cloaked output e was made for.
func (e Envelope) Matches(text string) bool {
	fp, err := Fingerprint(text)
	return err == nil && fp == e.Fingerprint
}

var fingerprintKey = []byte("codecloak.lastCloakContext.v1.hh")

// Fingerprint returns a 64-bit HighwayHash of text as 16 hex digits.
func Fingerprint(text string) (string, error) {
	h, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return "", fmt.Errorf("creating fingerprint hash: %w", err)
	}
	if _, err := h.Write([]byte(text)); err != nil {
		return "", fmt.Errorf("hashing text: %w", err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// Stats describes the stored context.
type Stats struct {
	Backend     string    `json:"backend" yaml:"backend"`
	Location    string    `json:"location,omitempty" yaml:"location,omitempty"`
	Present     bool      `json:"present" yaml:"present"`
	Expired     bool      `json:"expired" yaml:"expired"`
	ID          string    `json:"id,omitempty" yaml:"id,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	LanguageID  string    `json:"languageId,omitempty" yaml:"languageId,omitempty"`
	Identifiers int       `json:"identifiers" yaml:"identifiers"`
	Strings     int       `json:"strings" yaml:"strings"`
	TotalBytes  int64     `json:"totalBytes" yaml:"totalBytes"`
}

// Store persists exactly one cloak context. Each Save replaces the previous
// one; concurrent savers race and the last write wins.
type Store interface {
	Save(ctx context.Context, env Envelope) error
	// Load returns ErrNoContext when there is no live context.
	Load(ctx context.Context) (Envelope, error)
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (Stats, error)
	Close() error
}

// Open returns the store for backend. location is a directory for the file
// backend and a database path for sqlite; empty selects the default under
// the user cache directory. ttlSeconds of zero keeps a context until it is
// replaced or cleared.
func Open(backend, location string, ttlSeconds int) (Store, error) {
	if ttlSeconds < 0 {
		return nil, fmt.Errorf("invalid ttl %d: must not be negative", ttlSeconds)
	}
	switch strings.ToLower(backend) {
	case "", BackendFile:
		return NewFileStore(location, ttlSeconds)
	case BackendSQLite:
		if location == "" {
			dir, err := DefaultDir()
			if err != nil {
				return nil, err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating store directory: %w", err)
			}
			location = filepath.Join(dir, "codecloak.db")
		}
		return OpenSQLite(location, ttlSeconds)
	case BackendMemory:
		return NewMemoryStore(ttlSeconds), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want file, sqlite or memory)", backend)
	}
}

// expired reports whether an envelope created at created has outlived ttl.
func expired(created time.Time, ttlSeconds int) bool {
	return ttlSeconds > 0 && time.Since(created) > time.Duration(ttlSeconds)*time.Second
}

func fillStats(st *Stats, env Envelope, ttlSeconds int) {
	st.Present = true
	st.Expired = expired(env.CreatedAt, ttlSeconds)
	st.ID = env.ID
	st.CreatedAt = env.CreatedAt
	st.LanguageID = env.Context.LanguageID
	st.Identifiers = len(env.Context.IdentifierMap)
	st.Strings = len(env.Context.StringMap)
}

// DefaultDir returns the per-user directory for stored contexts.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "codecloak"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "codecloak"), nil
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "codecloak", "cache"), nil
		}
		return filepath.Join(home, "AppData", "Local", "codecloak", "cache"), nil
	default:
		return filepath.Join(home, ".cache", "codecloak"), nil
	}
}
