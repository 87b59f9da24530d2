// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the cybersafe application.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultWidth is the layout width used when the terminal size is unknown.
const DefaultWidth = 80

// UNICODE: widths come from go-runewidth, so emoji and CJK count as two
// columns and combining marks as zero.

// TruncateWidth truncates a string to a maximum display width, appending
// "..." when there is room for it.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// BlockWidth returns the width of the widest line in a multi-line string.
func BlockWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// CenterBlock indents every line of a multi-line block by the same amount so
// the block as a whole is centred within width. Blocks wider than width are
// returned unchanged.
func CenterBlock(s string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	pad := (width - BlockWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	indent := strings.Repeat(" ", pad)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

