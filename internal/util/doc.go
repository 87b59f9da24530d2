// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string and conversion helpers shared by the
// console and full-screen front ends.
//
// Display widths are measured with go-runewidth so that emoji and CJK
// characters in tip text line up in bubbles and centred banners.
//
//	banner := util.CenterBlock(asciiArt, util.DefaultWidth)
//	label := util.TruncateWidth(topic, 20)
package util
