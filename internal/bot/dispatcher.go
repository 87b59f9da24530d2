// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bot

import (
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/jeranaias/cybersafe-tui/internal/model"
	"github.com/jeranaias/cybersafe-tui/internal/session"
)

// interestPhrase introduces something the user wants remembered.
const interestPhrase = "i'm interested in"

// sentimentRule maps trigger words to a mood and the line that answers it.
type sentimentRule struct {
	words     []string
	sentiment model.Sentiment
	response  string
}

// sentimentRules are checked in order; only the first matching mood answers.
var sentimentRules = []sentimentRule{
	{
		words:     []string{"worried", "scared", "anxious"},
		sentiment: model.SentimentWorried,
		response:  "It's completely understandable to feel that way. Cyber threats are real, but you're taking the right step by learning!",
	},
	{
		words:     []string{"curious", "interested"},
		sentiment: model.SentimentCurious,
		response:  "Curiosity is the first step to being cyber smart!",
	},
	{
		words:     []string{"frustrated", "angry"},
		sentiment: model.SentimentNegative,
		response:  "I'm here to help, don't worry! Let's tackle cybersecurity one step at a time.",
	},
}

// =============================================================================
// DISPATCHER
// =============================================================================

// Dispatcher chooses the answer for one line of input.
type Dispatcher struct {
	lib    *Library
	rules  []KeywordRule
	logger *zap.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRules replaces the keyword table. The order of rules is the match order.
func WithRules(rules []KeywordRule) Option {
	return func(d *Dispatcher) {
		d.rules = append([]KeywordRule(nil), rules...)
	}
}

// WithLogger sets the logger used for per-line debug records.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher creates a dispatcher answering from lib with DefaultRules.
func NewDispatcher(lib *Library, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		lib:    lib,
		rules:  DefaultRules(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Library returns the response library the dispatcher answers from.
func (d *Dispatcher) Library() *Library {
	return d.lib
}

// Dispatch answers one line of input and updates the session.
//
// Checks run in a fixed order: sentiment, exit, help, greeting, interest,
// recall, keyword table, fallback. The sentiment line never ends the
// dispatch; every later check that matches does. Blank input goes straight
// to the fallback.
func (d *Dispatcher) Dispatch(s *session.Session, input string) Reply {
	s.RecordTurn()
	text := Normalize(input)

	reply := d.dispatch(s, text)
	d.logger.Debug("dispatched input",
		zap.String("session_id", s.SessionID()),
		zap.String("intent", reply.Intent.String()),
		zap.String("keyword", reply.Keyword),
		zap.String("sentiment", reply.Sentiment.String()),
		zap.Int("input_len", len(text)))
	return reply
}

func (d *Dispatcher) dispatch(s *session.Session, text string) Reply {
	var reply Reply
	if text == "" {
		return d.fallback(reply)
	}

	if rule, ok := detectSentiment(text); ok {
		reply.Sentiment = rule.sentiment
		reply.Lines = append(reply.Lines, Line{
			Text:      rule.response,
			Tone:      ToneSpeech,
			Sentiment: rule.sentiment,
		})
	}

	switch {
	case containsAny(text, "exit", "quit"):
		s.Stop()
		reply.Intent = IntentExit
		return reply
	case strings.Contains(text, "help"):
		reply.Intent = IntentHelp
		reply.Lines = append(reply.Lines, d.lib.Help()...)
		return reply
	case isGreeting(text):
		reply.Intent = IntentGreeting
		reply.Lines = append(reply.Lines, d.lib.Greeting(s.Name())...)
		return reply
	}

	if strings.Contains(text, interestPhrase) {
		interest := strings.TrimSpace(strings.ReplaceAll(text, interestPhrase, ""))
		if interest != "" {
			s.SetInterest(interest)
			reply.Intent = IntentRemember
			reply.Lines = append(reply.Lines, d.lib.InterestNoted(interest)...)
			return reply
		}
	}

	if strings.Contains(text, "remind me") {
		if interest, ok := s.Interest(); ok {
			reply.Intent = IntentRecall
			reply.Lines = append(reply.Lines, d.lib.InterestRecalled(interest)...)
			return reply
		}
	}

	if rule, ok := MatchRule(d.rules, text); ok {
		s.RecordTopic(rule.Keyword)
		reply.Intent = IntentTopic
		reply.Topic = rule.Topic
		reply.Keyword = rule.Keyword
		reply.Lines = append(reply.Lines, d.lib.Topic(rule.Topic)...)
		return reply
	}

	return d.fallback(reply)
}

func (d *Dispatcher) fallback(reply Reply) Reply {
	reply.Intent = IntentFallback
	reply.Lines = append(reply.Lines, d.lib.Fallback()...)
	return reply
}

// =============================================================================
// MATCHING HELPERS
// =============================================================================

// Normalize lower-cases and trims input. Typographic apostrophes are folded
// to ASCII so "I’m interested in" matches like "I'm interested in".
func Normalize(input string) string {
	text := strings.ToLower(strings.TrimSpace(input))
	return strings.ReplaceAll(text, "’", "'")
}

func detectSentiment(text string) (sentimentRule, bool) {
	for _, rule := range sentimentRules {
		if containsAny(text, rule.words...) {
			return rule, true
		}
	}
	return sentimentRule{}, false
}

func containsAny(text string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}

// isGreeting matches "hello" anywhere and "hi" only as a word, so that
// "phishing" or "this" is not taken for a greeting.
func isGreeting(text string) bool {
	if strings.Contains(text, "hello") {
		return true
	}
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	for _, w := range words {
		if w == "hi" {
			return true
		}
	}
	return false
}
