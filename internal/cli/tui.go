// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/cybersafe-tui/internal/bot"
	"github.com/jeranaias/cybersafe-tui/internal/config"
	"github.com/jeranaias/cybersafe-tui/internal/session"
	"github.com/jeranaias/cybersafe-tui/internal/ui/chat"
	"github.com/jeranaias/cybersafe-tui/internal/ui/styles"
	"github.com/jeranaias/cybersafe-tui/internal/ui/typing"
)

func (a *app) newTUICommand() *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Full-screen chat view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !IsTerminal(cmd.InOrStdin()) || !IsTerminal(cmd.OutOrStdout()) {
				return &TTYRequiredError{Operation: "open the full-screen chat"}
			}

			cfg := config.Global()
			sess := session.New()
			dispatcher := bot.NewDispatcher(bot.NewLibrary(a.rng()), bot.WithLogger(a.logger))
			m := chat.New(chat.Options{
				Session:    sess,
				Dispatcher: dispatcher,
				Theme:      styles.NewTheme(),
				Culture:    cfg.Culture(),
				ShowBanner: cfg.Bot.ShowBanner,
			})

			a.logger.Info("tui session started", zap.String("session", sess.SessionID()))

			final, err := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			).Run()
			if err != nil {
				return fmt.Errorf("tui: %w", err)
			}

			done, ok := final.(chat.Model)
			if !ok {
				return nil
			}
			out := cmd.OutOrStdout()
			if lines := done.Farewell(); lines != nil {
				renderer := NewConsoleRenderer(out, styles.NewTheme(), typing.Instant{}, a.profile, TerminalWidth(out))
				if err := renderer.Render(cmd.Context(), lines); err != nil {
					return err
				}
				if summary {
					printSummary(out, done.Session(), done.Transcript(), cfg.Culture(), time.Now())
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "print a session summary on exit")
	return cmd
}

// TTYRequiredError is returned when an operation requires a TTY but none is available.
type TTYRequiredError struct {
	Operation string
}

func (e *TTYRequiredError) Error() string {
	if e.Operation != "" {
		return "not a terminal; cannot " + e.Operation
	}
	return "not a terminal"
}
