// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bot implements the rule-based cybersecurity-awareness chatbot.
//
// The package is split into three parts that run once per input line,
// synchronously:
//
//   - Controller: owns the run loop (name prompt, read, dispatch, farewell)
//   - Dispatcher: picks an intent for a line in fixed priority order
//   - Library: the canned text the bot can say
//
// Nothing in this package writes to a terminal. Every response is a Reply,
// a list of Lines each tagged with a Tone, and a Renderer supplied by the
// front end decides how a Tone looks.
//
// # Usage
//
//	lib := bot.NewLibrary(nil)
//	d := bot.NewDispatcher(lib)
//	s := session.New()
//	_ = s.SetName("Thandi")
//	reply := d.Dispatch(s, "How do I make a strong password?")
//	// reply.Intent == bot.IntentTopic, reply.Keyword == "password"
package bot
