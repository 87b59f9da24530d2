// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tips.go - Non-interactive topic lookup.
//
// Command: tips [topic]
// Short:   Print the tips for one topic
//
// Examples:
//   cybersafe tips                   List topics and their trigger words
//   cybersafe tips privacy           Privacy tips
//   cybersafe tips "internet banking" Resolved through the chat keywords
//   cybersafe tips --json            Topic list as JSON

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/cybersafe-tui/internal/bot"
	"github.com/jeranaias/cybersafe-tui/internal/ui/styles"
	"github.com/jeranaias/cybersafe-tui/internal/ui/typing"
)

// TopicInfo describes one topic for the tips listing.
type TopicInfo struct {
	Topic    string   `json:"topic"`
	Keywords []string `json:"keywords"`
}

func (a *app) newTipsCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "tips [topic]",
		Short: "Print the tips for one topic",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics := ListTopics(bot.DefaultRules())
				if jsonOut {
					return NewJSONResponse("tips", topics).Write(cmd.OutOrStdout())
				}
				printTopics(cmd, topics)
				return nil
			}

			topic, ok := ResolveTopic(bot.DefaultRules(), args[0])
			if !ok {
				return fmt.Errorf("unknown topic %q (run 'cybersafe tips' for the list)", args[0])
			}

			lib := bot.NewLibrary(a.rng())
			out := cmd.OutOrStdout()
			renderer := NewConsoleRenderer(out, styles.NewTheme(), typing.Instant{}, a.profile, TerminalWidth(out))
			return renderer.Render(cmd.Context(), lib.Topic(topic))
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "list topics as JSON")
	return cmd
}

// ResolveTopic maps a topic name or any text containing a chat keyword to a
// topic. Names win over keywords.
func ResolveTopic(rules []bot.KeywordRule, arg string) (bot.Topic, bool) {
	text := bot.Normalize(arg)
	for _, topic := range bot.AllTopics {
		if text == string(topic) {
			return topic, true
		}
	}
	rule, ok := bot.MatchRule(rules, text)
	if !ok {
		return "", false
	}
	return rule.Topic, true
}

// ListTopics groups the rule keywords by topic in help-menu order.
func ListTopics(rules []bot.KeywordRule) []TopicInfo {
	topics := make([]TopicInfo, 0, len(bot.AllTopics))
	for _, topic := range bot.AllTopics {
		info := TopicInfo{Topic: string(topic), Keywords: []string{}}
		for _, rule := range rules {
			if rule.Topic == topic {
				info.Keywords = append(info.Keywords, rule.Keyword)
			}
		}
		topics = append(topics, info)
	}
	return topics
}

func printTopics(cmd *cobra.Command, topics []TopicInfo) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("Topics"))
	fmt.Fprintln(out, RenderSeparator(15))
	for _, t := range topics {
		fmt.Fprintln(out, RenderField(t.Topic, strings.Join(t.Keywords, ", ")))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, DimStyle.Render("Run 'cybersafe tips <topic>' to print a topic."))
}
