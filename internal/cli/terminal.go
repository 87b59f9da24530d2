// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection and handling for the cybersafe CLI.
//
// This file provides utilities for detecting terminal capabilities:
// - TTY detection for the reader and writer a command was given
// - Terminal width detection for centring the banner
// - Color output control based on TTY, NO_COLOR and the ui.color setting

package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jeranaias/cybersafe-tui/internal/util"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTerminal reports whether v is an *os.File attached to a terminal.
// Readers and writers set by tests are never terminals.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// =============================================================================
// TERMINAL WIDTH DETECTION
// =============================================================================

// MinTerminalWidth is the minimum width we'll use for centring.
const MinTerminalWidth = 40

// TerminalWidth returns the width of w if it is a terminal, and
// util.DefaultWidth otherwise.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return util.DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return util.DefaultWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

// ColorProfile returns the termenv profile for a ui.color mode and output.
//
//   - "never" disables color.
//   - "always" forces 256 colors.
//   - "auto" respects NO_COLOR and FORCE_COLOR, then TTY detection.
//
// See https://no-color.org/ for the NO_COLOR specification.
func ColorProfile(mode string, w io.Writer) termenv.Profile {
	switch strings.ToLower(mode) {
	case "never":
		return termenv.Ascii
	case "always":
		return termenv.ANSI256
	}

	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return termenv.ANSI256
	}
	if !IsTerminal(w) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// ConfigureColor applies the profile for mode to lipgloss.
func ConfigureColor(mode string, w io.Writer) termenv.Profile {
	profile := ColorProfile(mode, w)
	lipgloss.SetColorProfile(profile)
	return profile
}
