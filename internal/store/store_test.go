package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/codecloak/internal/cloak"
)

func sampleEnvelope(t *testing.T, original string) Envelope {
	t.Helper()
	res := cloak.TransformWithContext(original, cloak.Options{LanguageID: "javascript"})
	env, err := NewEnvelope(res.Context, res.Transformed)
	require.NoError(t, err)
	return env
}

func backends(t *testing.T, ttl int) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	file, err := Open(BackendFile, filepath.Join(dir, "file"), ttl)
	require.NoError(t, err)
	sqlite, err := Open(BackendSQLite, filepath.Join(dir, "ctx.db"), ttl)
	require.NoError(t, err)
	memory, err := Open(BackendMemory, "", ttl)
	require.NoError(t, err)

	out := map[string]Store{"file": file, "sqlite": sqlite, "memory": memory}
	t.Cleanup(func() {
		for _, s := range out {
			s.Close()
		}
	})
	return out
}

func assertSameEnvelope(t *testing.T, want, got Envelope) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Fingerprint, got.Fingerprint)
	assert.Equal(t, want.Context, got.Context)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "createdAt %v != %v", want.CreatedAt, got.CreatedAt)
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t, 0) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Load(ctx)
			require.ErrorIs(t, err, ErrNoContext)

			env := sampleEnvelope(t, `const userName = "John";`)
			require.NoError(t, s.Save(ctx, env))

			got, err := s.Load(ctx)
			require.NoError(t, err)
			assertSameEnvelope(t, env, got)
		})
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t, 0) {
		t.Run(name, func(t *testing.T) {
			first := sampleEnvelope(t, "const alpha = 1;")
			second := sampleEnvelope(t, "const beta = 2;")
			require.NoError(t, s.Save(ctx, first))
			require.NoError(t, s.Save(ctx, second))

			got, err := s.Load(ctx)
			require.NoError(t, err)
			assertSameEnvelope(t, second, got)
			assert.NotContains(t, got.Context.IdentifierMap, "a")
		})
	}
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t, 0) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Clear(ctx), "clearing an empty store")
			require.NoError(t, s.Save(ctx, sampleEnvelope(t, "let x = y;")))
			require.NoError(t, s.Clear(ctx))

			_, err := s.Load(ctx)
			assert.ErrorIs(t, err, ErrNoContext)
		})
	}
}

func TestStore_TTL(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t, 60) {
		t.Run(name, func(t *testing.T) {
			env := sampleEnvelope(t, "let userName;")
			env.CreatedAt = time.Now().Add(-2 * time.Minute)
			require.NoError(t, s.Save(ctx, env))

			st, err := s.Stats(ctx)
			require.NoError(t, err)
			assert.True(t, st.Present)
			assert.True(t, st.Expired)

			_, err = s.Load(ctx)
			assert.ErrorIs(t, err, ErrNoContext)

			st, err = s.Stats(ctx)
			require.NoError(t, err)
			assert.False(t, st.Present, "expired context is removed on load")
		})
	}
}

func TestStore_Stats(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t, 0) {
		t.Run(name, func(t *testing.T) {
			st, err := s.Stats(ctx)
			require.NoError(t, err)
			assert.Equal(t, name, st.Backend)
			assert.False(t, st.Present)

			env := sampleEnvelope(t, `const userName = "1"; const userEmail = "2";`)
			require.NoError(t, s.Save(ctx, env))

			st, err = s.Stats(ctx)
			require.NoError(t, err)
			assert.True(t, st.Present)
			assert.False(t, st.Expired)
			assert.Equal(t, env.ID, st.ID)
			assert.Equal(t, "javascript", st.LanguageID)
			assert.Equal(t, 2, st.Identifiers)
			assert.Equal(t, 2, st.Strings)
		})
	}
}

func TestStore_MemoryDoesNotAlias(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	env := sampleEnvelope(t, "const userName = 1;")
	require.NoError(t, s.Save(ctx, env))

	env.Context.IdentifierMap["uN"] = "changed"
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "userName", got.Context.IdentifierMap["uN"])
}

func TestSQLite_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ctx.db")

	s1, err := OpenSQLite(path, 0)
	require.NoError(t, err)
	env := sampleEnvelope(t, "const total = 1;")
	require.NoError(t, s1.Save(ctx, env))
	require.NoError(t, s1.Close())

	s2, err := OpenSQLite(path, 0)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Load(ctx)
	require.NoError(t, err)
	assertSameEnvelope(t, env, got)
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, 0)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, Key+".json"), []byte("{not json"), 0o644))

	_, err = s.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoContext)
}

func TestFileStore_DefaultDir(t *testing.T) {
	cache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cache)

	s, err := NewFileStore("", 0)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cache, "codecloak"), s.Dir())
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open("redis", "", 0)
	assert.ErrorContains(t, err, "unknown store backend")

	_, err = Open(BackendMemory, "", -1)
	assert.Error(t, err)
}

func TestNewEnvelope(t *testing.T) {
	env := sampleEnvelope(t, "const userName = 1;")

	id, err := uuid.Parse(env.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.WithinDuration(t, time.Now(), env.CreatedAt, time.Minute)

	assert.True(t, env.Matches("const uN = 1;"))
	assert.False(t, env.Matches("const uN = 2;"))
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint("const uN = 1;")
	require.NoError(t, err)
	b, err := Fingerprint("const uN = 1;")
	require.NoError(t, err)
	c, err := Fingerprint("const uN = 2;")
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
