package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dshills/codecloak/internal/cloak"
	"github.com/dshills/codecloak/internal/config"
	"github.com/dshills/codecloak/internal/keywords"
	"github.com/dshills/codecloak/internal/redact"
	"github.com/dshills/codecloak/internal/source"
	"github.com/dshills/codecloak/internal/store"
	"github.com/dshills/codecloak/internal/strmask"
)

// CloakInput is one cloak request. Zero values fall back to the config.
type CloakInput struct {
	Text       string
	LanguageID string
	// Path names the file Text came from. It feeds language detection and
	// the redaction path policy.
	Path                   string
	StringFormat           string
	PreserveFrameworkHooks *bool
	NoStore                bool
	NoRedact               bool
}

// CloakOutput is the result of Cloak.
type CloakOutput struct {
	Transformed string        `json:"transformed"`
	ContextID   string        `json:"contextId,omitempty"`
	LanguageID  string        `json:"languageId"`
	Stats       cloak.Stats   `json:"stats"`
	Redactions  int           `json:"redactions"`
	Context     cloak.Context `json:"-"`
}

// DecloakOutput is the result of Decloak.
type DecloakOutput struct {
	Restored  string `json:"restored"`
	ContextID string `json:"contextId,omitempty"`
	// Exact is true when the text is the unedited output of the stored cloak.
	Exact bool `json:"exact"`
}

// Service runs cloak and decloak against the configured context store.
type Service struct {
	mu          sync.RWMutex
	cfg         config.Config
	store       store.Store
	saveKeyword func(languageID, name string) error
}

// New creates a Service.
func New(cfg config.Config, st store.Store) *Service {
	if st == nil {
		panic("service.New: store must not be nil")
	}
	return &Service{cfg: cfg.Clone(), store: st}
}

// SetKeywordSaver sets the function that persists keywords added through
// AddKeyword, typically config.PersistKeyword.
func (s *Service) SetKeywordSaver(fn func(languageID, name string) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveKeyword = fn
}

// Config returns a copy of the effective config.
func (s *Service) Config() config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Cloak transforms in.Text, scrubs secrets from the result when the privacy
// policy asks for it, and stores the context for a later Decloak.
func (s *Service) Cloak(ctx context.Context, in CloakInput) (CloakOutput, error) {
	cfg := s.Config()

	if err := redact.Guard(in.Path, cfg.Privacy.RedactPaths); err != nil {
		return CloakOutput{}, err
	}

	lang := keywords.NormalizeLanguage(in.LanguageID)
	if lang == "" {
		lang = source.LanguageFromPath(in.Path)
	}
	opts := cfg.CloakOptions(lang)
	if in.StringFormat != "" {
		f, err := strmask.ParseFormat(in.StringFormat)
		if err != nil {
			return CloakOutput{}, NewValidationError("stringFormat", err.Error())
		}
		opts.StringFormat = f
	}
	if in.PreserveFrameworkHooks != nil {
		opts.Keywords.AbbreviateFrameworkHooks = !*in.PreserveFrameworkHooks
	}

	res := cloak.TransformWithContext(in.Text, opts)
	out := CloakOutput{
		Transformed: res.Transformed,
		LanguageID:  opts.LanguageID,
		Stats:       res.Stats,
		Context:     res.Context,
	}

	if !in.NoRedact && cfg.RedactsSecrets() {
		out.Transformed, out.Redactions = redact.Secrets(out.Transformed)
		if out.Redactions > 0 {
			slog.Warn("Redacted secrets from cloaked output", "count", out.Redactions)
		}
	}

	if !in.NoStore {
		env, err := store.NewEnvelope(res.Context, out.Transformed)
		if err != nil {
			return CloakOutput{}, err
		}
		if err := s.store.Save(ctx, env); err != nil {
			return CloakOutput{}, fmt.Errorf("saving cloak context: %w", err)
		}
		out.ContextID = env.ID
	}

	slog.Debug("Cloaked snippet",
		"language", out.LanguageID,
		"identifiers", res.Stats.Identifiers,
		"reserved", res.Stats.Reserved,
		"abbreviated", res.Stats.Abbreviated,
		"strings", res.Stats.Strings,
		"masked", res.Stats.Masked,
		"context_id", out.ContextID)

	return out, nil
}

// Decloak restores text with override, or with the stored context when
// override is nil. It returns store.ErrNoContext when neither exists.
func (s *Service) Decloak(ctx context.Context, text string, override *cloak.Context) (DecloakOutput, error) {
	if override != nil {
		return DecloakOutput{Restored: cloak.Decloak(text, *override)}, nil
	}

	env, err := s.store.Load(ctx)
	if err != nil {
		return DecloakOutput{}, err
	}
	out := DecloakOutput{
		Restored:  cloak.Decloak(text, env.Context),
		ContextID: env.ID,
		Exact:     env.Matches(text),
	}
	if !out.Exact {
		slog.Debug("Decloaking text that differs from the stored cloak output", "context_id", env.ID)
	}
	return out, nil
}

// Context returns the stored context envelope.
func (s *Service) Context(ctx context.Context) (store.Envelope, error) {
	return s.store.Load(ctx)
}

// ClearContext removes the stored context.
func (s *Service) ClearContext(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// ContextStats describes the stored context.
func (s *Service) ContextStats(ctx context.Context) (store.Stats, error) {
	return s.store.Stats(ctx)
}

// AddKeyword adds name to the reserved list of languageID, effective for
// later cloaks, and persists it when it is new.
func (s *Service) AddKeyword(languageID, name string) (bool, error) {
	lang := keywords.NormalizeLanguage(languageID)
	if lang == "" {
		return false, NewValidationError("languageId", "language is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cfg.Clone()
	if !config.AddKeyword(&next, lang, name) {
		return false, nil
	}
	if s.saveKeyword != nil {
		if err := s.saveKeyword(lang, name); err != nil {
			return false, fmt.Errorf("saving keyword: %w", err)
		}
	}
	s.cfg = next
	slog.Info("Added reserved keyword", "language", keywords.ConfigKey(lang), "name", name)
	return true, nil
}
