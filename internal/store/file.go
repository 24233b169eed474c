package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the context as a JSON file in a directory.
type FileStore struct {
	dir        string
	ttlSeconds int
}

// NewFileStore creates a FileStore. If dir is empty, uses DefaultDir.
func NewFileStore(dir string, ttlSeconds int) (*FileStore, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &FileStore{dir: dir, ttlSeconds: ttlSeconds}, nil
}

// Save writes env, replacing any previous context. The file is written
// next to its final name and renamed so readers never see half of it.
func (s *FileStore) Save(_ context.Context, env Envelope) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling context: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, Key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating context file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing context file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing context file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path()); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing context file: %w", err)
	}
	return nil
}

// Load reads the stored context. An expired context is removed.
func (s *FileStore) Load(_ context.Context) (Envelope, error) {
	env, err := s.read()
	if err != nil {
		return Envelope{}, err
	}
	if expired(env.CreatedAt, s.ttlSeconds) {
		os.Remove(s.path())
		return Envelope{}, ErrNoContext
	}
	return env, nil
}

// Clear removes the stored context.
func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing context file: %w", err)
	}
	return nil
}

// Stats returns information about the stored context.
func (s *FileStore) Stats(_ context.Context) (Stats, error) {
	st := Stats{Backend: BackendFile, Location: s.path()}
	info, err := os.Stat(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return st, nil
		}
		return st, fmt.Errorf("reading context file: %w", err)
	}
	st.TotalBytes = info.Size()

	env, err := s.read()
	if err != nil {
		return st, err
	}
	fillStats(&st, env, s.ttlSeconds)
	return st, nil
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}

// Dir returns the store directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) read() (Envelope, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Envelope{}, ErrNoContext
		}
		return Envelope{}, fmt.Errorf("reading context file: %w", err)
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("parsing context file %s: %w", s.path(), err)
	}
	return env, nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, Key+".json")
}
