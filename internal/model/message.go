// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleBot:
		return "Bot"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`
	Content   string    `json:"content"`

	// Sentiment is set on bot messages that answer a detected mood.
	Sentiment Sentiment `json:"sentiment,omitempty"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role Role, content string) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) *Message {
	return NewMessage(RoleUser, content)
}

// NewBotMessage creates a new bot message carrying the given sentiment.
func NewBotMessage(content string, sentiment Sentiment) *Message {
	msg := NewMessage(RoleBot, content)
	msg.Sentiment = sentiment
	return msg
}

// IsUser reports whether the message was typed by the user.
// The chat view binds bubble colours to this flag.
func (m *Message) IsUser() bool {
	return m.Role == RoleUser
}
