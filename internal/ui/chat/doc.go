// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the full-screen chat view for cybersafe.
//
// The view drives the same session, dispatcher and response library as the
// console front end. It is the consumer of the convert package: bubble
// backgrounds come from the message background converter, empathetic lines
// from the sentiment converter and message headers from the reminder label
// converter.
//
// # Phases
//
//   - PhaseName: the input asks for a name until a non-blank one is given
//   - PhaseChat: every submitted line is dispatched and both sides are
//     appended to the transcript
//   - PhaseDone: exit was requested; Update returns tea.Quit
package chat
