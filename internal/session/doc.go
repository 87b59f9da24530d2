// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the state of one chat run.
//
// A Session remembers who the user is, whether the run loop should keep
// going, the last interest the user told the bot about and the ordered list
// of topic keywords that have been answered. Nothing here outlives the
// process.
//
// # Key Types
//
//   - Session: per-run chat state
//   - Status: point-in-time snapshot used by the exit summary
//
// # Usage
//
//	s := session.New()
//	if err := s.SetName("Thandi"); err != nil {
//	    // blank name: ask again
//	}
//	s.SetInterest("privacy")
//	s.RecordTopic("password")
//	s.Stop()
package session
