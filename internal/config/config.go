package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"

	"github.com/dshills/codecloak/internal/cloak"
	"github.com/dshills/codecloak/internal/keywords"
	"github.com/dshills/codecloak/internal/store"
	"github.com/dshills/codecloak/internal/strmask"
)

// Config represents the codecloak configuration.
type Config struct {
	LanguageID             string              `json:"languageId" yaml:"languageId"`
	StringFormat           string              `json:"stringFormat" yaml:"stringFormat"`
	PreserveFrameworkHooks *bool               `json:"preserveFrameworkHooks,omitempty" yaml:"preserveFrameworkHooks,omitempty"`
	CustomKeywords         map[string][]string `json:"customKeywords,omitempty" yaml:"customKeywords,omitempty"`
	KeywordsAdd            map[string][]string `json:"keywordsAdd,omitempty" yaml:"keywordsAdd,omitempty"`
	KeywordsExclude        map[string][]string `json:"keywordsExclude,omitempty" yaml:"keywordsExclude,omitempty"`
	Store                  StoreConfig         `json:"store" yaml:"store"`
	Privacy                PrivacyConfig       `json:"privacy" yaml:"privacy"`
	Server                 ServerConfig        `json:"server" yaml:"server"`
	LogLevel               string              `json:"logLevel" yaml:"logLevel"`
}

// StoreConfig selects where the last cloak context is kept.
type StoreConfig struct {
	Backend    string `json:"backend" yaml:"backend"`
	Dir        string `json:"dir,omitempty" yaml:"dir,omitempty"`
	TTLSeconds int    `json:"ttlSeconds" yaml:"ttlSeconds"`
}

// PrivacyConfig controls privacy/redaction behavior.
type PrivacyConfig struct {
	RedactSecrets *bool    `json:"redactSecrets,omitempty" yaml:"redactSecrets,omitempty"`
	RedactPaths   []string `json:"redactPaths,omitempty" yaml:"redactPaths,omitempty"`
}

// ServerConfig configures the local HTTP host.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// LogLevels lists the accepted logLevel values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Default returns a Config with all defaults applied. Unset pointer fields
// read as true.
func Default() Config {
	return Config{
		StringFormat: string(strmask.PlaceholderShort),
		Store: StoreConfig{
			Backend: store.BackendFile,
		},
		Privacy: PrivacyConfig{
			RedactPaths: []string{"**/.env", "**/*secrets*"},
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:7420",
		},
		LogLevel: "warn",
	}
}

// HooksPreserved reports whether framework hooks stay verbatim.
func (c Config) HooksPreserved() bool {
	return c.PreserveFrameworkHooks == nil || *c.PreserveFrameworkHooks
}

// RedactsSecrets reports whether cloaked output is scrubbed for secrets.
func (c Config) RedactsSecrets() bool {
	return c.Privacy.RedactSecrets == nil || *c.Privacy.RedactSecrets
}

// KeywordConfig returns the reserved-name configuration of c.
func (c Config) KeywordConfig() keywords.Config {
	return keywords.Config{
		AbbreviateFrameworkHooks: !c.HooksPreserved(),
		Legacy:                   c.CustomKeywords,
		Add:                      c.KeywordsAdd,
		Exclude:                  c.KeywordsExclude,
	}
}

// CloakOptions returns engine options for languageID, falling back to the
// configured default language when languageID is empty.
func (c Config) CloakOptions(languageID string) cloak.Options {
	if languageID == "" {
		languageID = c.LanguageID
	}
	format, err := strmask.ParseFormat(c.StringFormat)
	if err != nil {
		format = strmask.PlaceholderShort
	}
	return cloak.Options{
		LanguageID:   languageID,
		StringFormat: format,
		Keywords:     c.KeywordConfig(),
	}
}

// StoreLocation returns the backend and location to pass to store.Open.
func (c Config) StoreLocation() (backend, location string) {
	backend = c.Store.Backend
	if backend == "" {
		backend = store.BackendFile
	}
	if c.Store.Dir != "" && backend == store.BackendSQLite {
		return backend, filepath.Join(c.Store.Dir, "codecloak.db")
	}
	return backend, c.Store.Dir
}

// AddKeyword appends name to the add list of languageID's config key unless
// it is already listed there or in the legacy list. It reports whether cfg
// changed.
func AddKeyword(cfg *Config, languageID, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	key := keywords.ConfigKey(languageID)
	if slices.Contains(cfg.KeywordsAdd[key], name) || slices.Contains(cfg.CustomKeywords[key], name) {
		return false
	}
	if cfg.KeywordsAdd == nil {
		cfg.KeywordsAdd = make(map[string][]string)
	}
	cfg.KeywordsAdd[key] = append(cfg.KeywordsAdd[key], name)
	return true
}

// ConfigDir returns the platform-appropriate config directory for codecloak.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "codecloak"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "codecloak"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "codecloak"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "codecloak"), nil
	default:
		return filepath.Join(home, ".config", "codecloak"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	loadDotEnv()

	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	if err := mergeFile(&cfg, fileCfg); err != nil {
		return Config{}, err
	}
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadDotEnv loads .env files from the config directory and the working
// directory. Variables already set in the environment win.
func loadDotEnv() {
	var paths []string
	if dir, err := ConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, ".env"))
	}
	paths = append(paths, ".env")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("Could not load .env file, continuing with existing environment",
				"path", path, "error", err)
			continue
		}
		slog.Debug("Loaded environment", "path", path)
	}
}

// mergeFile overlays the non-zero fields of src onto dst.
func mergeFile(dst *Config, src Config) error {
	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("merging config file: %w", err)
	}
	return nil
}

var envKeys = map[string]string{
	"CODECLOAK_LANGUAGE":       "languageId",
	"CODECLOAK_STRING_FORMAT":  "stringFormat",
	"CODECLOAK_PRESERVE_HOOKS": "preserveFrameworkHooks",
	"CODECLOAK_STORE_BACKEND":  "store.backend",
	"CODECLOAK_STORE_DIR":      "store.dir",
	"CODECLOAK_STORE_TTL":      "store.ttlSeconds",
	"CODECLOAK_SERVER_ADDR":    "server.addr",
	"CODECLOAK_LOG_LEVEL":      "logLevel",
}

func mergeEnv(cfg *Config) error {
	for _, env := range slices.Sorted(maps.Keys(envKeys)) {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		if err := SetField(cfg, envKeys[env], v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		v := overrides[key]
		if v == "" {
			continue
		}
		if err := SetField(cfg, key, v); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown
// or the value is invalid for it.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "languageId":
		cfg.LanguageID = value
	case "stringFormat":
		f, err := strmask.ParseFormat(value)
		if err != nil {
			return err
		}
		cfg.StringFormat = string(f)
	case "preserveFrameworkHooks":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("preserveFrameworkHooks must be a boolean: %w", err)
		}
		cfg.PreserveFrameworkHooks = &b
	case "store.backend":
		switch value {
		case store.BackendFile, store.BackendSQLite:
			cfg.Store.Backend = value
		default:
			return fmt.Errorf("store.backend must be %s or %s, got %q", store.BackendFile, store.BackendSQLite, value)
		}
	case "store.dir":
		cfg.Store.Dir = value
	case "store.ttlSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("store.ttlSeconds must be an integer: %w", err)
		}
		if n < 0 {
			return fmt.Errorf("store.ttlSeconds must not be negative, got %d", n)
		}
		cfg.Store.TTLSeconds = n
	case "privacy.redactSecrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("privacy.redactSecrets must be a boolean: %w", err)
		}
		cfg.Privacy.RedactSecrets = &b
	case "server.addr":
		cfg.Server.Addr = value
	case "logLevel":
		if !slices.Contains(LogLevels, value) {
			return fmt.Errorf("logLevel must be one of %s, got %q", strings.Join(LogLevels, ", "), value)
		}
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.CustomKeywords = cloneLists(c.CustomKeywords)
	out.KeywordsAdd = cloneLists(c.KeywordsAdd)
	out.KeywordsExclude = cloneLists(c.KeywordsExclude)
	out.Privacy.RedactPaths = slices.Clone(c.Privacy.RedactPaths)
	if c.PreserveFrameworkHooks != nil {
		b := *c.PreserveFrameworkHooks
		out.PreserveFrameworkHooks = &b
	}
	if c.Privacy.RedactSecrets != nil {
		b := *c.Privacy.RedactSecrets
		out.Privacy.RedactSecrets = &b
	}
	return out
}

func cloneLists(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

// PersistKeyword adds name to the add list in the config file, leaving the
// rest of the file untouched. It reports whether the file changed.
func PersistKeyword(languageID, name string) (bool, error) {
	cfg, err := LoadFile()
	if err != nil {
		return false, err
	}
	if !AddKeyword(&cfg, languageID, name) {
		return false, nil
	}
	if err := Save(cfg); err != nil {
		return false, err
	}
	return true, nil
}
