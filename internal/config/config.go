// Package config provides the Config struct and loader for .mekiki.yaml
// project-level configuration files, plus .env loading for credentials.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values for configuration. These are the single source of truth —
// New() references them and no other code should duplicate them.
const (
	DefaultEngine = "gemini"

	DefaultDataDir     = ".mekiki"
	DefaultLedgerFile  = "evaluations.json"
	DefaultSkillsCache = "skills.json.zst"

	DefaultMinQuality = 50.0
)

// EngineConfig selects and parameterizes the completion engine. Options is
// engine-specific and decoded by each engine via mapstructure.
type EngineConfig struct {
	Type    string         `yaml:"type,omitempty"`
	Model   string         `yaml:"model,omitempty"`
	Options map[string]any `yaml:"options,omitempty"`
}

// PathsConfig holds where crawled skills and the evaluation ledger live.
type PathsConfig struct {
	DataDir     string `yaml:"data_dir,omitempty"`
	Ledger      string `yaml:"ledger,omitempty"`
	SkillsCache string `yaml:"skills_cache,omitempty"`
}

// RecommendConfig holds recommendation defaults.
type RecommendConfig struct {
	MinQuality float64 `yaml:"min_quality,omitempty"`
}

// PublishConfig holds Azure Blob Storage settings for `mekiki publish`.
type PublishConfig struct {
	AccountURL string `yaml:"account_url,omitempty"`
	Container  string `yaml:"container,omitempty"`
}

// Config is the top-level configuration loaded from .mekiki.yaml.
type Config struct {
	Engine    EngineConfig    `yaml:"engine,omitempty"`
	Paths     PathsConfig     `yaml:"paths,omitempty"`
	Recommend RecommendConfig `yaml:"recommend,omitempty"`
	Publish   PublishConfig   `yaml:"publish,omitempty"`
}

// New returns a Config with all hard-coded defaults populated.
func New() *Config {
	return &Config{
		Engine: EngineConfig{
			Type: DefaultEngine,
		},
		Paths: PathsConfig{
			DataDir:     DefaultDataDir,
			Ledger:      DefaultLedgerFile,
			SkillsCache: DefaultSkillsCache,
		},
		Recommend: RecommendConfig{
			MinQuality: DefaultMinQuality,
		},
	}
}

// Load finds .mekiki.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults. A .env file next
// to the config (or in startDir) is loaded into the environment first, so
// GEMINI_API_KEY and GITHUB_TOKEN can live there instead of the shell.
// If no config file is found, returns defaults with a nil error.
func Load(startDir string) (*Config, error) {
	// Missing .env is fine; only a parse failure matters, and godotenv
	// reports both as errors, so probe for existence first.
	if _, statErr := os.Stat(filepath.Join(startDir, ".env")); statErr == nil {
		if err := godotenv.Load(filepath.Join(startDir, ".env")); err != nil {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading .mekiki.yaml: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .mekiki.yaml: %w", err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// DecodeEngineOptions decodes the free-form engine options map into an
// engine-specific struct with mapstructure tags.
func (c *Config) DecodeEngineOptions(out any) error {
	if len(c.Engine.Options) == 0 {
		return nil
	}
	if err := mapstructure.Decode(c.Engine.Options, out); err != nil {
		return fmt.Errorf("decoding engine options: %w", err)
	}
	return nil
}

// LedgerPath returns the resolved path of the evaluation ledger.
func (c *Config) LedgerPath() string {
	return filepath.Join(c.Paths.DataDir, c.Paths.Ledger)
}

// SkillsCachePath returns the resolved path of the crawled-skills cache.
func (c *Config) SkillsCachePath() string {
	return filepath.Join(c.Paths.DataDir, c.Paths.SkillsCache)
}

// findConfigFile walks up from dir looking for .mekiki.yaml (max 10 levels).
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".mekiki.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *Config) {
	if src.Engine.Type != "" {
		dst.Engine.Type = src.Engine.Type
	}
	if src.Engine.Model != "" {
		dst.Engine.Model = src.Engine.Model
	}
	if len(src.Engine.Options) > 0 {
		dst.Engine.Options = src.Engine.Options
	}

	if src.Paths.DataDir != "" {
		dst.Paths.DataDir = src.Paths.DataDir
	}
	if src.Paths.Ledger != "" {
		dst.Paths.Ledger = src.Paths.Ledger
	}
	if src.Paths.SkillsCache != "" {
		dst.Paths.SkillsCache = src.Paths.SkillsCache
	}

	if src.Recommend.MinQuality != 0 {
		dst.Recommend.MinQuality = src.Recommend.MinQuality
	}

	if src.Publish.AccountURL != "" {
		dst.Publish.AccountURL = src.Publish.AccountURL
	}
	if src.Publish.Container != "" {
		dst.Publish.Container = src.Publish.Container
	}
}
