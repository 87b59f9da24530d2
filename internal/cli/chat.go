// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive console session for the cybersafe CLI.
//
// Command: chat (also the default when no command is given)
// Short:   Talk to the cybersecurity awareness assistant
//
// Examples:
//   cybersafe                        Start a session
//   cybersafe --no-typing            Print replies at once
//   cybersafe --seed 7 --summary     Repeatable tips, summary on exit
//   echo "Thandi\nphishing" | cybersafe
//
// Interactive keys:
//   Any key while the bot types  Finish the current line at once
//   Ctrl+C / Ctrl+D at a prompt  End the session

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/cybersafe-tui/internal/bot"
	"github.com/jeranaias/cybersafe-tui/internal/config"
	"github.com/jeranaias/cybersafe-tui/internal/session"
	"github.com/jeranaias/cybersafe-tui/internal/ui/styles"
	"github.com/jeranaias/cybersafe-tui/internal/ui/typing"
)

// =============================================================================
// LINE INPUT
// =============================================================================

// ChatCLI provides line editing and in-memory history for a terminal.
// History is never written to disk.
type ChatCLI struct {
	line *liner.State
}

// NewChatCLI puts the terminal under liner control. Call Close when done.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &ChatCLI{line: line}
}

// ReadLine implements bot.LineReader. Ctrl+C at the prompt reads as io.EOF.
func (c *ChatCLI) ReadLine(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// Close restores the terminal.
func (c *ChatCLI) Close() error {
	return c.line.Close()
}

// PlainReader reads lines from a pipe or file, writing prompts to out.
type PlainReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPlainReader creates a PlainReader.
func NewPlainReader(in io.Reader, out io.Writer) *PlainReader {
	return &PlainReader{in: bufio.NewReader(in), out: out}
}

// ReadLine implements bot.LineReader. A final line without a newline is
// returned before io.EOF.
func (r *PlainReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", err
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// =============================================================================
// INTERRUPTS
// =============================================================================

// notifyInterrupts forwards SIGINT to out, the channel the typewriter listens
// on. Signals that arrive while nobody is listening are dropped.
func notifyInterrupts(out chan<- struct{}) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-sigs:
				select {
				case out <- struct{}{}:
				default:
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

func (a *app) newChatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the cybersecurity awareness assistant",
		Args:  cobra.NoArgs,
		RunE:  a.runChat,
	}
	a.addChatFlags(cmd)
	return cmd
}

func (a *app) addChatFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&a.opts.noTyping, "no-typing", false, "print replies at once instead of typing them out")
	flags.DurationVar(&a.opts.typingDelay, "typing-delay", 0, "pause between typed characters (default from config, 20ms)")
	flags.BoolVar(&a.opts.summary, "summary", false, "print a session summary on exit")
}

func (a *app) runChat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.Global()
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()

	var (
		reader     bot.LineReader
		interrupts chan struct{}
	)
	interactive := IsTerminal(in) && IsTerminal(out)
	if interactive {
		chatCLI := NewChatCLI()
		defer chatCLI.Close()
		reader = chatCLI

		interrupts = make(chan struct{}, 1)
		defer notifyInterrupts(interrupts)()
	} else {
		reader = NewPlainReader(in, out)
	}

	typed := cfg.UI.Typing && IsTerminal(out)
	strategy := typing.New(typed, cfg.TypingDelay(), interrupts)

	var renderer bot.Renderer = NewConsoleRenderer(out, styles.NewTheme(), strategy, a.profile, TerminalWidth(out))
	if typed && interactive {
		renderer = &keyInterruptRenderer{
			Renderer: renderer,
			keys:     keyWatcher{in: in.(*os.File), out: interrupts},
			logger:   a.logger,
		}
	}

	sess := session.New()
	dispatcher := bot.NewDispatcher(bot.NewLibrary(a.rng()), bot.WithLogger(a.logger))
	controller := bot.NewController(sess, dispatcher, reader, renderer,
		bot.WithBanner(cfg.Bot.ShowBanner),
		bot.WithControllerLogger(a.logger),
	)

	a.logger.Info("chat session started",
		zap.String("session", sess.SessionID()),
		zap.Bool("typing", cfg.UI.Typing),
	)

	if err := controller.Run(ctx); err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	if a.opts.summary && sess.HasName() {
		printSummary(out, sess, controller.Transcript(), cfg.Culture(), time.Now())
	}
	return nil
}
