// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/jeranaias/cybersafe-tui/internal/model"
)

// Bubble backgrounds.
const (
	UserBubble lipgloss.Color = "#DCDCDC" // light gray
	BotBubble  lipgloss.Color = "#1E90FF" // dodger blue
)

// Sentiment text colours.
const (
	PositiveText lipgloss.Color = "#008000"
	NegativeText lipgloss.Color = "#FF0000"
	WorriedText  lipgloss.Color = "#FFA500"
	CuriousText  lipgloss.Color = "#0000FF"
	DefaultText  lipgloss.Color = "#000000"
)

// MessageBackground returns the bubble colour for a user or bot message.
func MessageBackground(isUser bool) lipgloss.Color {
	if isUser {
		return UserBubble
	}
	return BotBubble
}

// SentimentColor returns the text colour for a sentiment. Unknown and
// out-of-range values get DefaultText.
func SentimentColor(s model.Sentiment) lipgloss.Color {
	switch s {
	case model.SentimentPositive:
		return PositiveText
	case model.SentimentNegative:
		return NegativeText
	case model.SentimentWorried:
		return WorriedText
	case model.SentimentCurious:
		return CuriousText
	default:
		return DefaultText
	}
}

// =============================================================================
// CONVERTERS
// =============================================================================

// BackgroundConverter binds MessageBackground. The value must be a bool.
type BackgroundConverter struct {
	oneWay
}

// Convert implements Converter.
func (BackgroundConverter) Convert(value any, _ language.Tag) (any, error) {
	isUser, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: want bool, got %T", ErrInvalidValue, value)
	}
	return MessageBackground(isUser), nil
}

// SentimentConverter binds SentimentColor. Values that are not a
// model.Sentiment get DefaultText rather than an error.
type SentimentConverter struct {
	oneWay
}

// Convert implements Converter.
func (SentimentConverter) Convert(value any, _ language.Tag) (any, error) {
	s, ok := value.(model.Sentiment)
	if !ok {
		return DefaultText, nil
	}
	return SentimentColor(s), nil
}
