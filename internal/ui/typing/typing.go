// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package typing writes bot speech to the terminal, either at once or one
// character at a time.
package typing

import (
	"context"
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"
)

// DefaultDelay is the pause between characters of the typewriter effect.
const DefaultDelay = 20 * time.Millisecond

// Strategy writes text to w.
type Strategy interface {
	Type(ctx context.Context, w io.Writer, text string) error
}

// New returns a Typewriter when enabled, otherwise Instant.
func New(enabled bool, delay time.Duration, interrupt <-chan struct{}) Strategy {
	if !enabled {
		return Instant{}
	}
	return Typewriter{Delay: delay, Interrupt: interrupt}
}

// =============================================================================
// INSTANT
// =============================================================================

// Instant writes the whole text in one call.
type Instant struct{}

// Type implements Strategy.
func (Instant) Type(_ context.Context, w io.Writer, text string) error {
	_, err := io.WriteString(w, text)
	return err
}

// =============================================================================
// TYPEWRITER
// =============================================================================

// Typewriter writes one rune per Delay.
//
// A value received on Interrupt while a line is being typed writes the rest
// of the line immediately. Interrupts that arrived between lines are
// discarded so an old keypress does not skip the next line.
type Typewriter struct {
	Delay     time.Duration
	Interrupt <-chan struct{}
}

// Type implements Strategy. If ctx is cancelled the rest of the text is
// still written and ctx.Err() is returned.
func (t Typewriter) Type(ctx context.Context, w io.Writer, text string) error {
	if text == "" {
		return nil
	}
	t.drain()

	delay := t.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	limiter := rate.NewLimiter(rate.Every(delay), 1)

	lineCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	if t.Interrupt != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			select {
			case <-t.Interrupt:
				cancel()
			case <-lineCtx.Done():
			}
		}()
	}

	err := typeRunes(lineCtx, limiter, w, text)
	cancel()
	wg.Wait()

	if err != nil {
		return err
	}
	return ctx.Err()
}

func typeRunes(ctx context.Context, limiter *rate.Limiter, w io.Writer, text string) error {
	for i := 0; i < len(text); {
		if limiter.Wait(ctx) != nil {
			_, err := io.WriteString(w, text[i:])
			return err
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		if _, err := io.WriteString(w, text[i:i+size]); err != nil {
			return err
		}
		i += size
	}
	return nil
}

// drain discards pending interrupts.
func (t Typewriter) drain() {
	if t.Interrupt == nil {
		return
	}
	for {
		select {
		case _, ok := <-t.Interrupt:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
