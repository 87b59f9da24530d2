// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the cybersafe command tree.
//
// The root command runs the interactive console chat. Input comes from a
// liner line editor when attached to a terminal and from a plain line reader
// otherwise, and replies are rendered with lipgloss through a typing
// strategy.
//
// # Commands
//
//   - cybersafe, cybersafe chat: interactive console session
//   - cybersafe tui: full-screen Bubble Tea chat view
//   - cybersafe tips [topic]: print one topic block, or list topics
//   - cybersafe config: print the effective configuration
//   - cybersafe version: print build information
//
// # Usage
//
//	if err := cli.Execute(context.Background()); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(1)
//	}
package cli
