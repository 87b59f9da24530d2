// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// SENTIMENT TYPE
// =============================================================================

// Sentiment is the mood detected in a user message.
type Sentiment int

const (
	SentimentUnknown Sentiment = iota
	SentimentPositive
	SentimentNegative
	SentimentWorried
	SentimentCurious
)

// String returns the lower-case name of the sentiment.
func (s Sentiment) String() string {
	switch s {
	case SentimentPositive:
		return "positive"
	case SentimentNegative:
		return "negative"
	case SentimentWorried:
		return "worried"
	case SentimentCurious:
		return "curious"
	default:
		return "unknown"
	}
}

// IsKnown reports whether the sentiment is one of the four named moods.
func (s Sentiment) IsKnown() bool {
	return s >= SentimentPositive && s <= SentimentCurious
}
