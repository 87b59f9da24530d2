// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styling for the cybersafe CLI commands.
//
// Reply lines use the styles.Theme; these cover the non-chat output of the
// summary, tips and version commands.

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cybersafe-tui/internal/ui/styles"
	"github.com/jeranaias/cybersafe-tui/internal/util"
)

var (
	// TitleStyle is used for command titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Cyan)

	// LabelStyle is used for field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// ValueStyle is used for regular values and text
	ValueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	// DimStyle is used for secondary information and hints
	DimStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	// SeparatorStyle is used for visual separators
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(styles.Overlay)
)

// RenderSeparator renders a horizontal separator line of the given width.
func RenderSeparator(width int) string {
	if width <= 0 {
		width = 15
	}
	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// labelWidth is the column the field values start at.
const labelWidth = 12

// RenderField renders "label value" with an aligned label.
func RenderField(label, value string) string {
	return "  " + LabelStyle.Render(util.PadRight(label, labelWidth)) + ValueStyle.Render(value)
}
