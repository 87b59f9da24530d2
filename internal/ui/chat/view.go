// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cybersafe-tui/internal/bot"
	"github.com/jeranaias/cybersafe-tui/internal/convert"
	"github.com/jeranaias/cybersafe-tui/internal/model"
	"github.com/jeranaias/cybersafe-tui/internal/util"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// renderChat renders the complete chat view.
// Layout: title (1 line) + messages (viewport) + input (1 line) + notice (1 line) + status (1 line)
func (m Model) renderChat() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		m.viewport.View(),
		m.input.View(),
		m.renderNotice(),
		m.renderStatusBar(),
	)
}

func (m Model) renderTitle() string {
	title := util.TruncateWidth("CyberSafe SA · Cybersecurity Awareness Assistant", max(m.width-2, 1))
	return m.theme.Title.Render(title)
}

func (m Model) renderNotice() string {
	if m.notice == "" {
		return ""
	}
	return m.theme.Warning.Render(m.notice)
}

func (m Model) renderStatusBar() string {
	parts := []string{}
	if name := m.session.Name(); name != "" {
		parts = append(parts, name)
	}
	if topics := m.session.Topics(); len(topics) > 0 {
		parts = append(parts, fmt.Sprintf("%d topics", len(topics)))
	}

	if interest, ok := m.session.Interest(); ok {
		label := m.reminderLabel(m.session.InterestSetAt())
		parts = append(parts, fmt.Sprintf("interest: %s (%s)", interest, label))
	}
	parts = append(parts, HelpLine(m.keyMap.ShortHelp()))

	bar := strings.Join(parts, " │ ")
	return m.theme.StatusBar.Width(max(m.width, 1)).Render(util.TruncateWidth(bar, max(m.width-2, 1)))
}

// =============================================================================
// MESSAGES
// =============================================================================

func (m *Model) updateViewport() {
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

func (m *Model) renderMessages() string {
	var b strings.Builder
	b.WriteString(m.renderLines(m.intro))

	for _, msg := range m.transcript.Messages {
		b.WriteString("\n")
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n")
	}
	return b.String()
}

// renderLines renders welcome text. The banner is skipped when it does not
// fit the window.
func (m *Model) renderLines(lines []bot.Line) string {
	var header []string
	var b strings.Builder

	flushHeader := func() {
		if len(header) == 0 {
			return
		}
		block := strings.Join(header, "\n")
		if util.BlockWidth(block) <= m.width {
			for _, row := range strings.Split(util.CenterBlock(block, m.width), "\n") {
				b.WriteString(m.theme.Header.Render(row))
				b.WriteString("\n")
			}
		}
		header = header[:0]
	}

	for _, line := range lines {
		if line.Tone == bot.ToneHeader {
			header = append(header, line.Text)
			continue
		}
		flushHeader()
		b.WriteString(m.theme.Plain.Render(line.Text))
		b.WriteString("\n")
	}
	flushHeader()
	return b.String()
}

// reminderLabel converts a date to its relative label, falling back to
// convert.NoReminder when the converter rejects the value.
func (m *Model) reminderLabel(value any) string {
	label, err := m.reminders.Convert(value, m.culture)
	text, ok := label.(string)
	if err != nil || !ok {
		return convert.NoReminder
	}
	return text
}

// renderMessage renders one message as a bubble with a header above it.
// User bubbles sit on the right, bot bubbles on the left.
func (m *Model) renderMessage(msg *model.Message) string {
	bgValue, err := m.bubbles.Convert(msg.IsUser(), m.culture)
	bg, ok := bgValue.(lipgloss.Color)
	if err != nil || !ok {
		bg = convert.BotBubble
	}

	header := m.theme.BubbleHeader.Render(fmt.Sprintf("%s · %s %s",
		msg.Role.DisplayName(), m.reminderLabel(msg.Timestamp), msg.Timestamp.Format("15:04")))

	body := msg.Content
	if reply, ok := m.replies[msg.ID]; ok {
		body = m.renderReply(reply, bg)
	}

	width := min(m.theme.BubbleWidth(), lipgloss.Width(body)+2)
	bubble := m.theme.Bubble.Background(bg).Width(width).Render(body)
	block := lipgloss.JoinVertical(lipgloss.Left, header, bubble)

	if msg.IsUser() {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, block)
	}
	return block
}

// renderReply renders reply lines inside a bubble. Lines answering a mood are
// coloured by sentiment; speech is bold.
func (m *Model) renderReply(reply bot.Reply, bg lipgloss.Color) string {
	rows := make([]string, 0, len(reply.Lines))
	for _, line := range reply.Lines {
		if strings.TrimSpace(line.Text) == "" {
			continue
		}
		style := lipgloss.NewStyle().Background(bg).Foreground(m.theme.Bubble.GetForeground())
		if line.Sentiment.IsKnown() {
			fg, _ := m.sentiments.Convert(line.Sentiment, m.culture)
			if c, ok := fg.(lipgloss.Color); ok {
				style = style.Foreground(c)
			}
		}
		if line.Tone == bot.ToneSpeech {
			style = style.Bold(true)
		}
		rows = append(rows, style.Render(line.Text))
	}
	return strings.Join(rows, "\n")
}
