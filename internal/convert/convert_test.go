// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jeranaias/cybersafe-tui/internal/model"
)

var fixedNow = time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

// =============================================================================
// REMINDER LABEL
// =============================================================================

func TestReminderLabel(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		culture language.Tag
		want    string
	}{
		{"today morning", time.Date(2025, 3, 15, 0, 5, 0, 0, time.UTC), language.English, "Today"},
		{"today late", time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC), language.English, "Today"},
		{"tomorrow", time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC), language.English, "Tomorrow"},
		{"yesterday", time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), language.English, "Yesterday"},
		{"same year", time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC), language.English, "2 Jan"},
		{"two days ahead", time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC), language.English, "17 Mar"},
		{"other year", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), language.English, "2 Jan 2024"},
		{"next year", time.Date(2026, 12, 25, 9, 0, 0, 0, time.UTC), language.English, "25 Dec 2026"},
		{"afrikaans", time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC), language.Afrikaans, "20 Mrt"},
		{"afrikaans region", time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC), language.MustParse("af-ZA"), "1 Okt 2024"},
		{"unsupported culture", time.Date(2025, 5, 4, 9, 0, 0, 0, time.UTC), language.Japanese, "4 May"},
		{"undetermined culture", time.Date(2025, 5, 4, 9, 0, 0, 0, time.UTC), language.Und, "4 May"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReminderLabel(tt.date, fixedNow, tt.culture))
		})
	}
}

func TestReminderLabel_YearBoundary(t *testing.T) {
	newYear := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "Yesterday", ReminderLabel(time.Date(2024, 12, 31, 22, 0, 0, 0, time.UTC), newYear, language.English))
	assert.Equal(t, "30 Dec 2024", ReminderLabel(time.Date(2024, 12, 30, 22, 0, 0, 0, time.UTC), newYear, language.English))
}

func TestReminderLabel_UsesNowLocation(t *testing.T) {
	sast := time.FixedZone("SAST", 2*60*60)
	now := time.Date(2025, 3, 15, 1, 0, 0, 0, sast)
	// 23:30 UTC on the 14th is 01:30 on the 15th in SAST.
	date := time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "Today", ReminderLabel(date, now, language.English))
}

func TestReminderConverter_Convert(t *testing.T) {
	c := ReminderConverter{Now: func() time.Time { return fixedNow }}
	tomorrow := fixedNow.Add(24 * time.Hour)
	var nilTime *time.Time

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"time value", tomorrow, "Tomorrow"},
		{"time pointer", &tomorrow, "Tomorrow"},
		{"nil pointer", nilTime, NoReminder},
		{"nil", nil, NoReminder},
		{"string", "2025-03-16", NoReminder},
		{"int", 42, NoReminder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.value, language.English)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReminderConverter_DefaultsToClock(t *testing.T) {
	got, err := ReminderConverter{}.Convert(time.Now(), language.English)
	require.NoError(t, err)
	assert.Equal(t, "Today", got)
}

// =============================================================================
// COLOURS
// =============================================================================

func TestMessageBackground(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#DCDCDC"), MessageBackground(true))
	assert.Equal(t, lipgloss.Color("#1E90FF"), MessageBackground(false))
}

func TestBackgroundConverter(t *testing.T) {
	c := BackgroundConverter{}

	got, err := c.Convert(true, language.English)
	require.NoError(t, err)
	assert.Equal(t, UserBubble, got)

	got, err = c.Convert(false, language.English)
	require.NoError(t, err)
	assert.Equal(t, BotBubble, got)

	_, err = c.Convert("true", language.English)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestSentimentColor(t *testing.T) {
	tests := []struct {
		sentiment model.Sentiment
		want      lipgloss.Color
	}{
		{model.SentimentPositive, "#008000"},
		{model.SentimentNegative, "#FF0000"},
		{model.SentimentWorried, "#FFA500"},
		{model.SentimentCurious, "#0000FF"},
		{model.SentimentUnknown, "#000000"},
		{model.Sentiment(99), "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.sentiment.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, SentimentColor(tt.sentiment))
		})
	}
}

func TestSentimentConverter_NonSentiment(t *testing.T) {
	got, err := SentimentConverter{}.Convert("worried", language.English)
	require.NoError(t, err)
	assert.Equal(t, DefaultText, got)

	got, err = SentimentConverter{}.Convert(model.SentimentWorried, language.English)
	require.NoError(t, err)
	assert.Equal(t, WorriedText, got)
}

// =============================================================================
// CONVERT BACK
// =============================================================================

func TestConvertBack_NotSupported(t *testing.T) {
	converters := map[string]Converter{
		"reminder":  ReminderConverter{},
		"bubble":    BackgroundConverter{},
		"sentiment": SentimentConverter{},
	}

	for name, c := range converters {
		t.Run(name, func(t *testing.T) {
			got, err := c.ConvertBack("Today", language.English)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, ErrNotSupported))
		})
	}
}
