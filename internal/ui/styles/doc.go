// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for cybersafe.

# Color System (colors.go)

Accent colors carry meaning across both front ends:

  - Cyan - Bot speech and the banner
  - Emerald - Safety tips
  - Amber - Threat warnings and prompts
  - Purple - Farewell text
  - Rose - Errors

Chat bubble backgrounds and sentiment colors are not defined here; they come
from the convert package so the console and the TUI agree on them.

# Theme System (theme.go)

	theme := styles.NewTheme()
	theme.SetSize(width, height)
	bubble := theme.Bubble.Width(theme.BubbleWidth())
*/
package styles
