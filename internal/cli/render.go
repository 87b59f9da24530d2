// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jeranaias/cybersafe-tui/internal/bot"
	"github.com/jeranaias/cybersafe-tui/internal/convert"
	"github.com/jeranaias/cybersafe-tui/internal/ui/styles"
	"github.com/jeranaias/cybersafe-tui/internal/ui/typing"
	"github.com/jeranaias/cybersafe-tui/internal/util"
)

// ConsoleRenderer writes bot replies to a line-oriented terminal.
//
// Speech lines are prefixed with "Bot: " and go through the typing strategy.
// Runs of header lines are centred together so the banner keeps its shape.
type ConsoleRenderer struct {
	out     io.Writer
	theme   *styles.Theme
	typing  typing.Strategy
	profile termenv.Profile
	width   int
}

// NewConsoleRenderer creates a renderer. A nil strategy writes instantly.
func NewConsoleRenderer(out io.Writer, theme *styles.Theme, strategy typing.Strategy, profile termenv.Profile, width int) *ConsoleRenderer {
	if strategy == nil {
		strategy = typing.Instant{}
	}
	if width <= 0 {
		width = util.DefaultWidth
	}
	return &ConsoleRenderer{
		out:     out,
		theme:   theme,
		typing:  strategy,
		profile: profile,
		width:   width,
	}
}

// Render implements bot.Renderer.
func (r *ConsoleRenderer) Render(ctx context.Context, lines []bot.Line) error {
	for i := 0; i < len(lines); i++ {
		if lines[i].Tone == bot.ToneHeader {
			j := i
			for j < len(lines) && lines[j].Tone == bot.ToneHeader {
				j++
			}
			if err := r.renderHeader(lines[i:j]); err != nil {
				return err
			}
			i = j - 1
			continue
		}
		if err := r.renderLine(ctx, lines[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *ConsoleRenderer) renderLine(ctx context.Context, line bot.Line) error {
	var text string
	switch line.Tone {
	case bot.ToneSpeech:
		return r.renderSpeech(ctx, line)
	case bot.ToneTip:
		text = r.theme.Tip.Render(line.Text)
	case bot.ToneWarning:
		text = r.theme.Warning.Render(line.Text)
	default:
		if line.Text != "" {
			text = r.theme.Plain.Render(line.Text)
		}
	}
	_, err := io.WriteString(r.out, text+"\n")
	return err
}

func (r *ConsoleRenderer) renderSpeech(ctx context.Context, line bot.Line) error {
	start, end := ansiSpan(r.profile, r.speechColor(line))

	if _, err := io.WriteString(r.out, r.theme.SpeechLabel.Render("Bot: ")+start); err != nil {
		return err
	}
	typeErr := r.typing.Type(ctx, r.out, line.Text)
	if _, err := io.WriteString(r.out, end+"\n"); err != nil {
		return err
	}
	return typeErr
}

func (r *ConsoleRenderer) renderHeader(lines []bot.Line) error {
	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}
	block := util.CenterBlock(strings.Join(texts, "\n"), r.width)

	var b strings.Builder
	for _, row := range strings.Split(block, "\n") {
		if row != "" {
			b.WriteString(r.theme.Header.Render(row))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// speechColor returns the sentiment colour for empathetic lines and the
// brand colour otherwise.
func (r *ConsoleRenderer) speechColor(line bot.Line) string {
	if line.Sentiment.IsKnown() {
		return string(convert.SentimentColor(line.Sentiment))
	}
	if r.theme.IsDark {
		return styles.Cyan.Dark
	}
	return styles.Cyan.Light
}

// ansiSpan returns the escape sequences that colour text typed between them.
// The typewriter writes rune by rune, so the colour is opened once up front
// rather than through a lipgloss style.
func ansiSpan(profile termenv.Profile, hex string) (start, end string) {
	c := profile.Color(hex)
	if c == nil {
		return "", ""
	}
	seq := c.Sequence(false)
	if seq == "" {
		return "", ""
	}
	return termenv.CSI + seq + "m", termenv.CSI + termenv.ResetSeq + "m"
}
