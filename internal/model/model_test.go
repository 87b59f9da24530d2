// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"fmt"
	"testing"
)

// =============================================================================
// ROLE TESTS
// =============================================================================

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleBot, "Bot"},
		{Role("other"), "other"},
	}

	for _, tc := range tests {
		t.Run(tc.role.String(), func(t *testing.T) {
			if got := tc.role.DisplayName(); got != tc.want {
				t.Errorf("DisplayName() = %q, want %q", got, tc.want)
			}
		})
	}
}

// =============================================================================
// SENTIMENT TESTS
// =============================================================================

func TestSentiment_String(t *testing.T) {
	tests := []struct {
		sentiment Sentiment
		want      string
		known     bool
	}{
		{SentimentPositive, "positive", true},
		{SentimentNegative, "negative", true},
		{SentimentWorried, "worried", true},
		{SentimentCurious, "curious", true},
		{SentimentUnknown, "unknown", false},
		{Sentiment(42), "unknown", false},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.sentiment.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
			if got := tc.sentiment.IsKnown(); got != tc.known {
				t.Errorf("IsKnown() = %v, want %v", got, tc.known)
			}
		})
	}
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversation_AddMessages(t *testing.T) {
	conv := NewConversation()
	if !conv.IsEmpty() {
		t.Fatal("new conversation should be empty")
	}
	if conv.ID == "" {
		t.Error("conversation ID should not be empty")
	}

	user := conv.AddUserMessage("tell me about passwords")
	bot := conv.AddBotMessage("It's completely understandable to feel that way.", SentimentWorried)

	if conv.MessageCount() != 2 {
		t.Fatalf("MessageCount() = %d, want 2", conv.MessageCount())
	}
	if conv.UserMessageCount() != 1 {
		t.Errorf("UserMessageCount() = %d, want 1", conv.UserMessageCount())
	}
	if !user.IsUser() {
		t.Error("user message should report IsUser")
	}
	if bot.IsUser() {
		t.Error("bot message should not report IsUser")
	}
	if bot.Sentiment != SentimentWorried {
		t.Errorf("bot Sentiment = %v, want worried", bot.Sentiment)
	}
	if user.ID == bot.ID {
		t.Error("message IDs should be unique")
	}
	if conv.GetLastMessage() != bot {
		t.Error("GetLastMessage should return the bot message")
	}
}

func TestConversation_PrunesOldMessages(t *testing.T) {
	conv := NewConversation()
	for i := 0; i < MaxMessages+5; i++ {
		conv.AddUserMessage(fmt.Sprintf("msg %d", i))
	}

	if conv.MessageCount() != MaxMessages {
		t.Fatalf("MessageCount() = %d, want %d", conv.MessageCount(), MaxMessages)
	}
	if conv.Messages[0].Content != "msg 5" {
		t.Errorf("oldest message = %q, want %q", conv.Messages[0].Content, "msg 5")
	}
}

func TestConversation_Clear(t *testing.T) {
	conv := NewConversation()
	conv.AddUserMessage("hello")
	conv.Clear()

	if !conv.IsEmpty() {
		t.Error("conversation should be empty after Clear")
	}
	if conv.GetLastMessage() != nil {
		t.Error("GetLastMessage should be nil after Clear")
	}
}
