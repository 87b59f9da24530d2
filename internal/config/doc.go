// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for cybersafe.
//
// Supports both TOML and YAML configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - BotConfig: Banner and random seed
//   - UIConfig: Typewriter effect, colour mode and date language
//   - LogConfig: Diagnostic log level and file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (CYBERSAFE_*), including those set by ./.env
//   - ~/.cybersafe/config.toml
//   - ~/.cybersafe/config.yaml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	delay := cfg.TypingDelay()
//	culture := cfg.Culture()
package config
