// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types shared by the chatbot core and
// both front ends.
//
// # Key Types
//
//   - Conversation: in-memory transcript of one chat run
//   - Message: single message with role, content, timestamp and sentiment
//   - Role: message role enumeration (user, bot)
//   - Sentiment: closed set of moods detected in user input
//
// # Usage
//
//	conv := model.NewConversation()
//	conv.AddUserMessage("tell me about passwords")
//	conv.AddBotMessage("Important Password Safety Tips:", model.SentimentUnknown)
//
// Transcripts are never written to disk; they live for one run only.
package model
