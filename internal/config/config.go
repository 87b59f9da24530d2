// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete cybersafe configuration.
type Config struct {
	Bot BotConfig `toml:"bot" yaml:"bot"`
	UI  UIConfig  `toml:"ui" yaml:"ui"`
	Log LogConfig `toml:"log" yaml:"log"`
}

// BotConfig contains chatbot behaviour settings.
type BotConfig struct {
	// Seed fixes the phishing tip sequence. 0 seeds from the clock.
	Seed uint64 `toml:"seed" yaml:"seed"`
	// ShowBanner prints the ASCII banner before the welcome text
	ShowBanner bool `toml:"show_banner" yaml:"show_banner"`
}

// UIConfig contains terminal presentation settings.
type UIConfig struct {
	// Typing enables the typewriter effect for bot speech
	Typing bool `toml:"typing" yaml:"typing"`
	// TypingDelayMS is the pause between typed characters
	TypingDelayMS int `toml:"typing_delay_ms" yaml:"typing_delay_ms"`
	// Color is "auto", "always" or "never"
	Color string `toml:"color" yaml:"color"`
	// Language selects month names in date labels ("en", "af")
	Language string `toml:"language" yaml:"language"`
}

// LogConfig contains diagnostic logging settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error
	Level string `toml:"level" yaml:"level"`
	// File receives JSON log lines. Empty disables logging.
	File string `toml:"file" yaml:"file"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Bot: BotConfig{
			Seed:       0,
			ShowBanner: true,
		},
		UI: UIConfig{
			Typing:        true,
			TypingDelayMS: 20,
			Color:         "auto",
			Language:      "en",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// TypingDelay returns TypingDelayMS as a duration.
func (c *Config) TypingDelay() time.Duration {
	return time.Duration(c.UI.TypingDelayMS) * time.Millisecond
}

// Culture returns the configured language tag, English if unparseable.
func (c *Config) Culture() language.Tag {
	tag, err := language.Parse(c.UI.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the cybersafe configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".cybersafe"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathYAML returns the path to the YAML config file.
func ConfigPathYAML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config directory.
// Tries TOML first, then YAML, and falls back to defaults.
// A .env file in the working directory and environment overrides are
// applied last.
//
// If a config file exists but cannot be read the defaults are returned
// together with the load error.
func Load() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		cfg := Default()
		if envErr := finish(cfg); envErr != nil {
			return nil, envErr
		}
		return cfg, err
	}
	return LoadDir(dir)
}

// LoadDir is Load with an explicit config directory.
func LoadDir(dir string) (*Config, error) {
	var loadErr error

	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err := LoadFromPath(path)
		if err == nil {
			return cfg, nil
		}
		loadErr = err
		break
	}

	cfg := Default()
	if err := finish(cfg); err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadYAML decodes a YAML file over cfg.
func LoadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read YAML file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode YAML file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Fields missing from the file keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := LoadYAML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load YAML config from %s: %w", path, err)
		}
	default:
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	if err := finish(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// finish applies .env, environment overrides, defaults and validation.
func finish(cfg *Config) error {
	if err := LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// Variables already set are left alone. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.UI.TypingDelayMS < 0 || c.UI.TypingDelayMS > 1000 {
		errs = append(errs, ValidationError{
			Field:   "ui.typing_delay_ms",
			Message: fmt.Sprintf("must be between 0 and 1000, got %d", c.UI.TypingDelayMS),
		})
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[strings.ToLower(c.UI.Color)] {
		errs = append(errs, ValidationError{
			Field:   "ui.color",
			Message: fmt.Sprintf("invalid color mode '%s', must be one of: auto, always, never", c.UI.Color),
		})
	}

	if _, err := language.Parse(c.UI.Language); err != nil {
		errs = append(errs, ValidationError{
			Field:   "ui.language",
			Message: fmt.Sprintf("invalid language tag '%s'", c.UI.Language),
		})
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills empty string fields with their defaults.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.UI.Color == "" {
		c.UI.Color = defaults.UI.Color
	}
	if c.UI.Language == "" {
		c.UI.Language = defaults.UI.Language
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - CYBERSAFE_SEED: overrides bot.seed
//   - CYBERSAFE_BANNER: overrides bot.show_banner
//   - CYBERSAFE_TYPING: overrides ui.typing
//   - CYBERSAFE_TYPING_DELAY_MS: overrides ui.typing_delay_ms
//   - CYBERSAFE_COLOR: overrides ui.color
//   - CYBERSAFE_LANG: overrides ui.language
//   - CYBERSAFE_LOG_LEVEL: overrides log.level
//   - CYBERSAFE_LOG_FILE: overrides log.file
//
// Unparseable numbers are ignored.
func (c *Config) ApplyEnvOverrides() {
	if seed := os.Getenv("CYBERSAFE_SEED"); seed != "" {
		if v, err := strconv.ParseUint(seed, 10, 64); err == nil {
			c.Bot.Seed = v
		}
	}

	if banner := os.Getenv("CYBERSAFE_BANNER"); banner != "" {
		c.Bot.ShowBanner = parseBool(banner)
	}

	if typing := os.Getenv("CYBERSAFE_TYPING"); typing != "" {
		c.UI.Typing = parseBool(typing)
	}

	if delay := os.Getenv("CYBERSAFE_TYPING_DELAY_MS"); delay != "" {
		if v, err := strconv.Atoi(delay); err == nil {
			c.UI.TypingDelayMS = v
		}
	}

	if color := os.Getenv("CYBERSAFE_COLOR"); color != "" {
		c.UI.Color = color
	}

	if lang := os.Getenv("CYBERSAFE_LANG"); lang != "" {
		c.UI.Language = lang
	}

	if level := os.Getenv("CYBERSAFE_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}

	if file := os.Getenv("CYBERSAFE_LOG_FILE"); file != "" {
		c.Log.File = file
	}
}

func parseBool(s string) bool {
	return s == "1" || strings.EqualFold(s, "true")
}

// String returns the config encoded as TOML.
func (c *Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return b.String()
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		if cfg == nil {
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
