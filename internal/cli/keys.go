// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// keys.go - Keypress interrupts for the typing effect.
//
// While a reply is being typed the terminal is switched to cbreak mode
// (no line buffering, no echo) and any key finishes the current line. The
// key itself is consumed. Signals and output processing are left alone, so
// Ctrl+C still arrives as SIGINT and newlines still print as usual.

package cli

import (
	"context"
	"errors"
	"os"

	"github.com/muesli/cancelreader"
	"go.uber.org/zap"

	"github.com/jeranaias/cybersafe-tui/internal/bot"
)

// errKeysUnsupported is returned by setCbreak on platforms without termios.
var errKeysUnsupported = errors.New("keypress interrupts not supported on this platform")

// keyWatcher forwards keypresses on a terminal to an interrupt channel.
type keyWatcher struct {
	in  *os.File
	out chan<- struct{}

	// mode switches the terminal into cbreak mode and returns a restore
	// func. Defaults to setCbreak.
	mode func(*os.File) (func(), error)
}

// start begins watching. stop cancels the pending read, waits for the reader
// goroutine and restores the terminal, so the next prompt owns stdin again.
func (w keyWatcher) start() (stop func(), err error) {
	mode := w.mode
	if mode == nil {
		mode = setCbreak
	}
	restore, err := mode(w.in)
	if err != nil {
		return nil, err
	}

	r, err := cancelreader.NewReader(w.in)
	if err != nil {
		restore()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				select {
				case w.out <- struct{}{}:
				default:
				}
			}
			if err != nil {
				return
			}
		}
	}()

	return func() {
		if r.Cancel() {
			<-done
		}
		_ = r.Close()
		restore()
	}, nil
}

// keyInterruptRenderer watches for keypresses while the wrapped renderer
// writes a reply.
type keyInterruptRenderer struct {
	bot.Renderer
	keys   keyWatcher
	logger *zap.Logger
}

// Render implements bot.Renderer. When the terminal cannot be watched the
// reply is rendered without keypress interrupts.
func (r *keyInterruptRenderer) Render(ctx context.Context, lines []bot.Line) error {
	stop, err := r.keys.start()
	if err != nil {
		r.logger.Debug("keypress interrupts disabled", zap.Error(err))
		return r.Renderer.Render(ctx, lines)
	}
	defer stop()
	return r.Renderer.Render(ctx, lines)
}
