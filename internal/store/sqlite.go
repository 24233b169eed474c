package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dshills/codecloak/internal/cloak"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore keeps the context in one row of a SQLite database, for hosts
// that share a database file between several processes.
type SQLiteStore struct {
	db         *sql.DB
	path       string
	ttlSeconds int
}

// OpenSQLite creates or opens the database at path and applies the schema.
//
// The database runs in WAL mode with a 5-second busy timeout and a single
// open connection, since SQLite allows one writer at a time.
func OpenSQLite(path string, ttlSeconds int) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &SQLiteStore{db: db, path: path, ttlSeconds: ttlSeconds}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// Save upserts env into the single context slot.
func (s *SQLiteStore) Save(ctx context.Context, env Envelope) error {
	payload, err := json.Marshal(env.Context)
	if err != nil {
		return fmt.Errorf("marshaling context: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO cloak_contexts (slot, id, created_at, fingerprint, language_id, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			id = excluded.id,
			created_at = excluded.created_at,
			fingerprint = excluded.fingerprint,
			language_id = excluded.language_id,
			payload = excluded.payload`,
		Key, env.ID, env.CreatedAt.UnixNano(), env.Fingerprint, env.Context.LanguageID, string(payload))
	if err != nil {
		return fmt.Errorf("saving context: %w", err)
	}
	return nil
}

// Load reads the stored context. An expired row is deleted.
func (s *SQLiteStore) Load(ctx context.Context) (Envelope, error) {
	env, _, err := s.read(ctx)
	if err != nil {
		return Envelope{}, err
	}
	if expired(env.CreatedAt, s.ttlSeconds) {
		if err := s.Clear(ctx); err != nil {
			return Envelope{}, err
		}
		return Envelope{}, ErrNoContext
	}
	return env, nil
}

// Clear deletes the stored context.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cloak_contexts WHERE slot = ?`, Key); err != nil {
		return fmt.Errorf("clearing context: %w", err)
	}
	return nil
}

// Stats returns information about the stored context.
func (s *SQLiteStore) Stats(ctx context.Context) (Stats, error) {
	st := Stats{Backend: BackendSQLite, Location: s.path}
	env, size, err := s.read(ctx)
	if errors.Is(err, ErrNoContext) {
		return st, nil
	}
	if err != nil {
		return st, err
	}
	st.TotalBytes = size
	fillStats(&st, env, s.ttlSeconds)
	return st, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) read(ctx context.Context) (Envelope, int64, error) {
	var (
		env     Envelope
		created int64
		payload string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, fingerprint, payload
		FROM cloak_contexts WHERE slot = ?`, Key).
		Scan(&env.ID, &created, &env.Fingerprint, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Envelope{}, 0, ErrNoContext
	}
	if err != nil {
		return Envelope{}, 0, fmt.Errorf("loading context: %w", err)
	}

	var c cloak.Context
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return Envelope{}, 0, fmt.Errorf("parsing stored context: %w", err)
	}
	env.Context = c
	env.CreatedAt = time.Unix(0, created).UTC()
	return env, int64(len(payload)), nil
}
