// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bot

import (
	"strings"

	"github.com/jeranaias/cybersafe-tui/internal/model"
)

// =============================================================================
// TONE
// =============================================================================

// Tone says how a line should be presented. Renderers map each tone to a
// style; the bot never touches terminal colour itself.
type Tone int

const (
	// ToneSpeech is something the bot says. Console renderers prefix it with
	// "Bot: " and may type it out character by character.
	ToneSpeech Tone = iota
	// TonePlain is uncoloured supporting text such as menu entries.
	TonePlain
	// ToneTip is a bullet of safety advice.
	ToneTip
	// ToneWarning is a bullet that warns about an active threat.
	ToneWarning
	// ToneHeader is banner and farewell text.
	ToneHeader
)

// String returns the tone name.
func (t Tone) String() string {
	switch t {
	case ToneSpeech:
		return "speech"
	case TonePlain:
		return "plain"
	case ToneTip:
		return "tip"
	case ToneWarning:
		return "warning"
	case ToneHeader:
		return "header"
	default:
		return "unknown"
	}
}

// =============================================================================
// INTENT
// =============================================================================

// Intent identifies which rule answered an input line.
type Intent int

const (
	IntentNone Intent = iota
	IntentFallback
	IntentExit
	IntentHelp
	IntentGreeting
	IntentRemember
	IntentRecall
	IntentTopic
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case IntentFallback:
		return "fallback"
	case IntentExit:
		return "exit"
	case IntentHelp:
		return "help"
	case IntentGreeting:
		return "greeting"
	case IntentRemember:
		return "remember"
	case IntentRecall:
		return "recall"
	case IntentTopic:
		return "topic"
	default:
		return "none"
	}
}

// =============================================================================
// REPLY
// =============================================================================

// Line is one line of bot output.
type Line struct {
	Text string
	Tone Tone

	// Sentiment is set on the empathetic line that answers a detected mood.
	Sentiment model.Sentiment
}

// Speech returns a ToneSpeech line.
func Speech(text string) Line {
	return Line{Text: text, Tone: ToneSpeech}
}

// Plain returns a TonePlain line.
func Plain(text string) Line {
	return Line{Text: text, Tone: TonePlain}
}

// Blank returns an empty plain line.
func Blank() Line {
	return Line{Tone: TonePlain}
}

// Reply is everything the bot produces for one input line.
type Reply struct {
	Intent    Intent
	Sentiment model.Sentiment

	// Topic and Keyword are set when Intent is IntentTopic.
	Topic   Topic
	Keyword string

	Lines []Line
}

// IsEmpty reports whether the reply has no output.
func (r Reply) IsEmpty() bool {
	return len(r.Lines) == 0
}

// Text joins the non-blank lines of the reply with newlines.
func (r Reply) Text() string {
	parts := make([]string, 0, len(r.Lines))
	for _, line := range r.Lines {
		if strings.TrimSpace(line.Text) != "" {
			parts = append(parts, line.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// Contains reports whether any line of the reply contains substr.
func (r Reply) Contains(substr string) bool {
	for _, line := range r.Lines {
		if strings.Contains(line.Text, substr) {
			return true
		}
	}
	return false
}
