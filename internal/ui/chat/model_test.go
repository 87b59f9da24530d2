// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/cybersafe-tui/internal/bot"
	"github.com/jeranaias/cybersafe-tui/internal/model"
	"github.com/jeranaias/cybersafe-tui/internal/session"
)

// =============================================================================
// HELPERS
// =============================================================================

func newTestModel(t *testing.T) Model {
	t.Helper()
	d := bot.NewDispatcher(bot.NewLibrary(bot.NewSeededRand(1)))
	m := New(Options{Session: session.New(), Dispatcher: d})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return updated.(Model)
}

// send types text and presses Enter.
func send(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()
	if text != "" {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
		m = updated.(Model)
	}
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// =============================================================================
// PHASE TESTS
// =============================================================================

func TestModel_ViewBeforeResize(t *testing.T) {
	m := New(Options{})
	assert.Equal(t, "Loading...", m.View())
	assert.Equal(t, PhaseName, m.Phase())
}

func TestModel_BlankNameIsRejected(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, "   ")
	assert.Nil(t, cmd)
	assert.Equal(t, PhaseName, m.Phase())
	assert.Equal(t, "Please enter a valid name.", m.Notice())
	assert.Contains(t, m.View(), "Please enter a valid name.")
}

func TestModel_NameStartsChat(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, "")
	m, _ = send(t, m, "Thandi")

	assert.Equal(t, PhaseChat, m.Phase())
	assert.Empty(t, m.Notice())
	assert.Equal(t, "Thandi", m.Session().Name())
	assert.Contains(t, m.View(), "Hello, Thandi! Let's learn about cybersecurity.")
	assert.True(t, m.Transcript().IsEmpty(), "the name is not part of the transcript")
}

func TestModel_TopicReply(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, "Thandi")
	m, cmd := send(t, m, "password")

	assert.Nil(t, cmd)
	conv := m.Transcript()
	require.Equal(t, 2, conv.MessageCount())
	assert.Equal(t, model.RoleUser, conv.Messages[0].Role)
	assert.Equal(t, "password", conv.Messages[0].Content)
	assert.Contains(t, conv.Messages[1].Content, "Important Password Safety Tips")

	view := m.View()
	assert.Contains(t, view, "Password Safety Tips")
	assert.Contains(t, view, "You · Today")
	assert.Contains(t, view, "Bot · Today")
}

func TestModel_SentimentIsRecorded(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, "Thandi")
	m, _ = send(t, m, "I'm worried about scams")

	last := m.Transcript().GetLastMessage()
	require.NotNil(t, last)
	assert.Equal(t, model.SentimentWorried, last.Sentiment)
	assert.Contains(t, m.View(), "It's completely understandable to feel that way")
}

func TestModel_StatusBarShowsInterest(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, "Thandi")
	m, _ = send(t, m, "I'm interested in privacy")

	view := m.View()
	assert.Contains(t, view, "interest: privacy (Today)")
	assert.Contains(t, view, "Esc quit")
}

func TestModel_ReminderLabel(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	m := New(Options{
		Session:    session.New(),
		Dispatcher: bot.NewDispatcher(bot.NewLibrary(bot.NewSeededRand(1))),
		Now:        func() time.Time { return now },
	})

	assert.Equal(t, "Yesterday", m.reminderLabel(now.Add(-24*time.Hour)))
	assert.Equal(t, "No reminder set", m.reminderLabel(nil))
	assert.Equal(t, "No reminder set", m.reminderLabel("tomorrow"))
}

func TestModel_ExitQuits(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, "Thandi")
	m, cmd := send(t, m, "exit")

	assert.True(t, isQuit(cmd))
	assert.Equal(t, PhaseDone, m.Phase())
	assert.False(t, m.Session().IsRunning())

	farewell := bot.Reply{Lines: m.Farewell()}
	assert.True(t, farewell.Contains("Thank you, Thandi, for learning about cybersecurity!"))
}

func TestModel_EscQuitsBeforeName(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	assert.True(t, isQuit(cmd))
	assert.Equal(t, PhaseDone, m.Phase())
	assert.Nil(t, m.Farewell())
}

func TestModel_PastedKeyNamesAreText(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, "end")

	assert.Equal(t, "end", m.Session().Name())
}

func TestModel_TextInputBindingNamesAreText(t *testing.T) {
	for _, word := range []string{"home", "end", "right", "left", "delete", "backspace", "up", "down"} {
		t.Run(word, func(t *testing.T) {
			m := newTestModel(t)
			m, _ = send(t, m, "Thandi")

			updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(word)})
			m = updated.(Model)
			assert.Equal(t, word, m.input.Value())
		})
	}
}

func TestInsertRunes(t *testing.T) {
	input := textinput.New()
	input.SetValue("pword")
	input.SetCursor(1)

	input = insertRunes(input, []rune("ass"))
	assert.Equal(t, "password", input.Value())
	assert.Equal(t, 4, input.Position())

	limited := textinput.New()
	limited.CharLimit = 5
	limited.SetValue("abc")
	limited = insertRunes(limited, []rune("defg"))
	assert.Equal(t, "abcde", limited.Value())

	limited = insertRunes(limited, []rune("x"))
	assert.Equal(t, "abcde", limited.Value())
}

func TestHelpLine(t *testing.T) {
	line := HelpLine(DefaultKeyMap().ShortHelp())
	assert.True(t, strings.HasPrefix(line, "Enter send"))
	assert.Contains(t, line, "Esc quit")
}
