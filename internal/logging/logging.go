// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zap logger used for diagnostics.
//
// The terminal belongs to the conversation, so nothing is logged unless a
// log file is configured.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeranaias/cybersafe-tui/internal/config"
)

// New returns a logger for cfg. Without cfg.File it returns zap.NewNop().
// verbose forces debug level.
func New(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.File}
	zcfg.ErrorOutputPaths = []string{cfg.File}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
