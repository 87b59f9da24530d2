// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	theme := NewTheme()

	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"SpeechLabel", theme.SpeechLabel},
		{"Speech", theme.Speech},
		{"Plain", theme.Plain},
		{"Tip", theme.Tip},
		{"Warning", theme.Warning},
		{"Header", theme.Header},
		{"Title", theme.Title},
		{"Prompt", theme.Prompt},
		{"Bubble", theme.Bubble},
		{"BubbleHeader", theme.BubbleHeader},
		{"StatusBar", theme.StatusBar},
		{"Hint", theme.Hint},
	}

	for _, s := range styles {
		if !strings.Contains(s.style.Render("test"), "test") {
			t.Errorf("%s style should render its content", s.name)
		}
	}
}

// =============================================================================
// LAYOUT TESTS
// =============================================================================

func TestThemeSetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)

	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize(120, 40) gave %dx%d", theme.Width, theme.Height)
	}
}

func TestThemeGetLayoutMode(t *testing.T) {
	tests := []struct {
		width    int
		expected LayoutMode
	}{
		{0, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}

	theme := NewTheme()
	for _, tt := range tests {
		theme.SetSize(tt.width, 24)
		if got := theme.GetLayoutMode(); got != tt.expected {
			t.Errorf("width %d: GetLayoutMode() = %v, want %v", tt.width, got, tt.expected)
		}
	}
}

func TestThemeBubbleWidth(t *testing.T) {
	tests := []struct {
		width    int
		expected int
	}{
		{0, 20},
		{10, 20},
		{40, 38},
		{80, 60},
		{160, 72},
	}

	theme := NewTheme()
	for _, tt := range tests {
		theme.SetSize(tt.width, 24)
		if got := theme.BubbleWidth(); got != tt.expected {
			t.Errorf("width %d: BubbleWidth() = %d, want %d", tt.width, got, tt.expected)
		}
	}
}
