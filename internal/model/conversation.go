// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxMessages is the maximum number of messages to keep in a transcript.
// When exceeded, old messages are pruned to prevent unbounded memory growth.
const MaxMessages = 1000

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the transcript of a single chat run.
type Conversation struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Messages []*Message `json:"messages"`
}

// NewConversation creates a new conversation with a generated ID.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  make([]*Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// AddMessage adds a message to the conversation.
func (c *Conversation) AddMessage(msg *Message) {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
	c.pruneOldMessages()
}

// AddUserMessage creates and adds a user message.
func (c *Conversation) AddUserMessage(content string) *Message {
	msg := NewUserMessage(content)
	c.AddMessage(msg)
	return msg
}

// AddBotMessage creates and adds a bot message.
func (c *Conversation) AddBotMessage(content string, sentiment Sentiment) *Message {
	msg := NewBotMessage(content, sentiment)
	c.AddMessage(msg)
	return msg
}

// GetLastMessage returns the most recent message, or nil if empty.
func (c *Conversation) GetLastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// UserMessageCount returns the number of messages typed by the user.
func (c *Conversation) UserMessageCount() int {
	n := 0
	for _, msg := range c.Messages {
		if msg.IsUser() {
			n++
		}
	}
	return n
}

// IsEmpty returns true if the conversation has no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// Clear removes all messages.
func (c *Conversation) Clear() {
	c.Messages = make([]*Message, 0)
	c.UpdatedAt = time.Now()
}

// pruneOldMessages drops the oldest messages once MaxMessages is exceeded.
func (c *Conversation) pruneOldMessages() {
	if len(c.Messages) <= MaxMessages {
		return
	}
	excess := len(c.Messages) - MaxMessages
	c.Messages = append([]*Message(nil), c.Messages[excess:]...)
}
