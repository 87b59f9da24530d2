// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bot

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/jeranaias/cybersafe-tui/internal/model"
	"github.com/jeranaias/cybersafe-tui/internal/session"
)

// =============================================================================
// COLLABORATORS
// =============================================================================

// LineReader reads one line of user input after showing prompt.
// It returns io.EOF when input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Renderer presents bot output.
type Renderer interface {
	Render(ctx context.Context, lines []Line) error
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller runs one chat session from name prompt to farewell.
type Controller struct {
	session    *session.Session
	dispatcher *Dispatcher
	reader     LineReader
	renderer   Renderer
	transcript *model.Conversation
	logger     *zap.Logger
	showBanner bool
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithBanner toggles the ASCII banner on the welcome screen.
func WithBanner(show bool) ControllerOption {
	return func(c *Controller) {
		c.showBanner = show
	}
}

// WithControllerLogger sets the logger for session lifecycle records.
func WithControllerLogger(logger *zap.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController wires a session to its dispatcher and front end.
func NewController(s *session.Session, d *Dispatcher, reader LineReader, renderer Renderer, opts ...ControllerOption) *Controller {
	c := &Controller{
		session:    s,
		dispatcher: d,
		reader:     reader,
		renderer:   renderer,
		transcript: model.NewConversation(),
		logger:     zap.NewNop(),
		showBanner: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the session the controller drives.
func (c *Controller) Session() *session.Session {
	return c.session
}

// Transcript returns the messages exchanged so far.
func (c *Controller) Transcript() *model.Conversation {
	return c.transcript
}

// Run shows the welcome screen, asks for a name until a non-blank one is
// given, then answers lines until the session stops. The farewell is shown
// after an exit request or end of input.
//
// End of input before a name was given ends Run quietly. Cancelling ctx
// ends Run with ctx.Err().
func (c *Controller) Run(ctx context.Context) error {
	lib := c.dispatcher.Library()
	c.logger.Info("session started", zap.String("session_id", c.session.SessionID()))

	if err := c.render(ctx, lib.Welcome(c.showBanner)); err != nil {
		return err
	}

	named, err := c.askName(ctx)
	if err != nil || !named {
		return err
	}

	if err := c.loop(ctx); err != nil {
		return err
	}

	c.logger.Info("session finished",
		zap.String("session_id", c.session.SessionID()),
		zap.Int("turns", c.session.Turns()),
		zap.Strings("topics", c.session.Topics()))
	return c.render(ctx, lib.Farewell(c.session.Name()))
}

// askName prompts until SetName succeeds. It reports false if input ended.
func (c *Controller) askName(ctx context.Context) (bool, error) {
	lib := c.dispatcher.Library()
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		line, err := c.reader.ReadLine(lib.NamePrompt())
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("read name: %w", err)
		}

		if err := c.session.SetName(line); err != nil {
			if err := c.render(ctx, lib.InvalidName()); err != nil {
				return false, err
			}
			continue
		}
		return true, c.render(ctx, lib.NameAccepted(c.session.Name()))
	}
}

// loop answers lines while the session is running.
func (c *Controller) loop(ctx context.Context) error {
	lib := c.dispatcher.Library()
	for c.session.IsRunning() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := c.reader.ReadLine(lib.InputPrompt(c.session.Name()))
		if errors.Is(err, io.EOF) {
			c.session.Stop()
			break
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		c.transcript.AddUserMessage(line)
		reply := c.dispatcher.Dispatch(c.session, line)
		if !reply.IsEmpty() {
			c.transcript.AddBotMessage(reply.Text(), reply.Sentiment)
		}
		if err := c.render(ctx, reply.Lines); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) render(ctx context.Context, lines []Line) error {
	if len(lines) == 0 {
		return nil
	}
	if err := c.renderer.Render(ctx, lines); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
