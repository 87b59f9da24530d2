// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package convert provides the one-way value converters the chat views bind
// to: a relative date label, a bubble background for user/bot messages and a
// text colour per sentiment.
//
// Every converter satisfies Converter. ConvertBack always fails with
// ErrNotSupported; there is no sensible way to turn "Tomorrow" or a colour
// back into the value it came from.
//
// # Usage
//
//	label := convert.ReminderLabel(when, time.Now(), language.English)
//	bg := convert.MessageBackground(msg.IsUser())
//	fg := convert.SentimentColor(model.SentimentWorried)
package convert
