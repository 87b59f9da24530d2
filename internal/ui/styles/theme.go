// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components shared by the console and the TUI.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// REPLY LINE STYLES
	// ==========================================================================

	SpeechLabel lipgloss.Style
	Speech      lipgloss.Style
	Plain       lipgloss.Style
	Tip         lipgloss.Style
	Warning     lipgloss.Style
	Header      lipgloss.Style

	// ==========================================================================
	// CHAT VIEW STYLES
	// ==========================================================================

	Title        lipgloss.Style
	Prompt       lipgloss.Style
	Bubble       lipgloss.Style
	BubbleHeader lipgloss.Style
	StatusBar    lipgloss.Style
	Hint         lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	t.SpeechLabel = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	t.Speech = lipgloss.NewStyle().Foreground(Cyan)
	t.Plain = lipgloss.NewStyle().Foreground(TextSecondary)
	t.Tip = lipgloss.NewStyle().Foreground(Emerald)
	t.Warning = lipgloss.NewStyle().Foreground(Amber)
	t.Header = lipgloss.NewStyle().Bold(true).Foreground(Purple)

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 1)

	t.Prompt = lipgloss.NewStyle().Bold(true).Foreground(Amber)

	t.Bubble = lipgloss.NewStyle().
		Foreground(TextOnBubble).
		Padding(0, 1)

	t.BubbleHeader = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.Hint = lipgloss.NewStyle().Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// BubbleWidth returns the maximum width of a chat bubble.
func (t *Theme) BubbleWidth() int {
	switch t.GetLayoutMode() {
	case LayoutNarrow:
		if t.Width < 20 {
			return 20
		}
		return t.Width - 2
	case LayoutMedium:
		return t.Width * 3 / 4
	default:
		return 72
	}
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
