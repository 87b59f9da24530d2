// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/jeranaias/cybersafe-tui/internal/bot"
	"github.com/jeranaias/cybersafe-tui/internal/convert"
	"github.com/jeranaias/cybersafe-tui/internal/model"
	"github.com/jeranaias/cybersafe-tui/internal/session"
	"github.com/jeranaias/cybersafe-tui/internal/ui/styles"
)

// =============================================================================
// CHAT PHASE
// =============================================================================

// Phase is where the conversation is.
type Phase int

const (
	PhaseName Phase = iota // Asking for a name
	PhaseChat              // Talking
	PhaseDone              // Exit requested
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Options configures a Model. Zero values get defaults.
type Options struct {
	Session    *session.Session
	Dispatcher *bot.Dispatcher
	Theme      *styles.Theme
	Culture    language.Tag
	ShowBanner bool

	// Now returns the current time for date labels. Defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model for the chat view.
type Model struct {
	phase Phase

	// Styling
	theme  *styles.Theme
	keyMap KeyMap

	// Dimensions
	width  int
	height int

	// Components
	viewport viewport.Model
	input    textinput.Model

	// Conversation
	session    *session.Session
	dispatcher *bot.Dispatcher
	transcript *model.Conversation
	replies    map[string]bot.Reply
	intro      []bot.Line
	notice     string

	// Presentation
	culture    language.Tag
	now        func() time.Time
	bubbles    convert.BackgroundConverter
	sentiments convert.SentimentConverter
	reminders  convert.ReminderConverter
}

// New creates the chat model.
func New(opts Options) Model {
	if opts.Session == nil {
		opts.Session = session.New()
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = bot.NewDispatcher(bot.NewLibrary(nil))
	}
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme()
	}
	if opts.Culture == (language.Tag{}) {
		opts.Culture = language.English
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	lib := opts.Dispatcher.Library()

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = lib.NamePrompt()
	ti.CharLimit = 512
	ti.Focus()

	vp := viewport.New(80, 20)

	return Model{
		phase:      PhaseName,
		theme:      opts.Theme,
		keyMap:     DefaultKeyMap(),
		viewport:   vp,
		input:      ti,
		session:    opts.Session,
		dispatcher: opts.Dispatcher,
		transcript: model.NewConversation(),
		replies:    make(map[string]bot.Reply),
		intro:      lib.Welcome(opts.ShowBanner),
		culture:    opts.Culture,
		now:        opts.Now,
		reminders:  convert.ReminderConverter{Now: opts.Now},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return m.renderChat()
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// title + input line + notice + status bar
	const reservedHeight = 4

	m.viewport.Width = max(m.width, 1)
	m.viewport.Height = max(m.height-reservedHeight, 1)
	m.input.Width = max(m.width-4, 10)
	m.theme.SetSize(m.width, m.height)

	m.updateViewport()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typed or pasted text such as "end" must not match a named key, ours
	// or the text input's, so runes are inserted directly.
	if msg.Type == tea.KeyRunes {
		m.input = insertRunes(m.input, msg.Runes)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.session.Stop()
		m.phase = PhaseDone
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.submit()

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Home):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keyMap.End):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// insertRunes adds runes at the cursor, honouring the input's CharLimit.
func insertRunes(input textinput.Model, runes []rune) textinput.Model {
	value := []rune(input.Value())
	pos := min(input.Position(), len(value))

	if input.CharLimit > 0 {
		room := input.CharLimit - len(value)
		if room <= 0 {
			return input
		}
		if len(runes) > room {
			runes = runes[:room]
		}
	}

	next := make([]rune, 0, len(value)+len(runes))
	next = append(next, value[:pos]...)
	next = append(next, runes...)
	next = append(next, value[pos:]...)

	input.SetValue(string(next))
	input.SetCursor(pos + len(runes))
	return input
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	m.input.Reset()
	lib := m.dispatcher.Library()

	switch m.phase {
	case PhaseName:
		if err := m.session.SetName(value); err != nil {
			m.notice = lib.InvalidName()[0].Text
			return m, nil
		}
		m.notice = ""
		m.intro = append(m.intro, lib.NameAccepted(m.session.Name())...)
		m.input.Placeholder = lib.InputPrompt(m.session.Name())
		m.phase = PhaseChat

	case PhaseChat:
		m.transcript.AddUserMessage(value)
		reply := m.dispatcher.Dispatch(m.session, value)
		if !reply.IsEmpty() {
			msg := m.transcript.AddBotMessage(reply.Text(), reply.Sentiment)
			m.replies[msg.ID] = reply
		}
		if !m.session.IsRunning() {
			m.phase = PhaseDone
			return m, tea.Quit
		}
	}

	m.updateViewport()
	return m, nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Phase returns the current phase.
func (m Model) Phase() Phase {
	return m.phase
}

// Session returns the chat session.
func (m Model) Session() *session.Session {
	return m.session
}

// Transcript returns the messages exchanged so far.
func (m Model) Transcript() *model.Conversation {
	return m.transcript
}

// Farewell returns the closing lines, or nil if no name was ever given.
func (m Model) Farewell() []bot.Line {
	if !m.session.HasName() {
		return nil
	}
	return m.dispatcher.Library().Farewell(m.session.Name())
}

// Notice returns the validation message under the input, if any.
func (m Model) Notice() string {
	return m.notice
}
