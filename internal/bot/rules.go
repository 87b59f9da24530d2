// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bot

import "strings"

// Topic is a subject the bot has a tip block for.
type Topic string

const (
	TopicPasswords   Topic = "passwords"
	TopicPhishing    Topic = "phishing"
	TopicPrivacy     Topic = "privacy"
	TopicBrowsing    Topic = "browsing"
	TopicSocialMedia Topic = "social-media"
)

// AllTopics lists the topics in help-menu order.
var AllTopics = []Topic{
	TopicPasswords,
	TopicPhishing,
	TopicPrivacy,
	TopicBrowsing,
	TopicSocialMedia,
}

// KeywordRule maps a trigger substring to a topic.
type KeywordRule struct {
	Keyword string
	Topic   Topic
}

// DefaultRules returns the keyword table in match order. The slice order is
// the tie-break: when several keywords occur in one line the earliest rule
// wins, regardless of where the keywords appear in the line.
func DefaultRules() []KeywordRule {
	return []KeywordRule{
		{Keyword: "password", Topic: TopicPasswords},
		{Keyword: "phish", Topic: TopicPhishing},
		{Keyword: "scam", Topic: TopicPhishing},
		{Keyword: "privacy", Topic: TopicPrivacy},
		{Keyword: "social", Topic: TopicSocialMedia},
		{Keyword: "media", Topic: TopicSocialMedia},
		{Keyword: "brows", Topic: TopicBrowsing},
		{Keyword: "internet", Topic: TopicBrowsing},
	}
}

// MatchRule returns the first rule whose keyword is a substring of text.
// text is expected to be normalized already.
func MatchRule(rules []KeywordRule, text string) (KeywordRule, bool) {
	for _, rule := range rules {
		if strings.Contains(text, rule.Keyword) {
			return rule, true
		}
	}
	return KeywordRule{}, false
}
