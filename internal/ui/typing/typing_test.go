// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package typing

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// hookWriter runs onFirst after the first write.
type hookWriter struct {
	buf     bytes.Buffer
	writes  int
	onFirst func()
	err     error
}

func (w *hookWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.writes++
	n, _ := w.buf.Write(p)
	if w.writes == 1 && w.onFirst != nil {
		w.onFirst()
	}
	return n, nil
}

func TestNew(t *testing.T) {
	assert.Equal(t, Instant{}, New(false, time.Second, nil))

	tw, ok := New(true, 5*time.Millisecond, nil).(Typewriter)
	require.True(t, ok)
	assert.Equal(t, 5*time.Millisecond, tw.Delay)
}

func TestInstant(t *testing.T) {
	w := &hookWriter{}
	require.NoError(t, Instant{}.Type(context.Background(), w, "Bot: hello"))
	assert.Equal(t, "Bot: hello", w.buf.String())
	assert.Equal(t, 1, w.writes)
}

func TestTypewriter_WritesEveryRune(t *testing.T) {
	defer goleak.VerifyNone(t)

	interrupt := make(chan struct{}, 1)
	w := &hookWriter{}
	text := "⚠️ Sawubona"

	require.NoError(t, Typewriter{Delay: time.Millisecond, Interrupt: interrupt}.Type(context.Background(), w, text))
	assert.Equal(t, text, w.buf.String())
	assert.Equal(t, len([]rune(text)), w.writes)
}

func TestTypewriter_EmptyText(t *testing.T) {
	w := &hookWriter{}
	require.NoError(t, Typewriter{}.Type(context.Background(), w, ""))
	assert.Zero(t, w.writes)
}

func TestTypewriter_InterruptFlushesLine(t *testing.T) {
	defer goleak.VerifyNone(t)

	interrupt := make(chan struct{}, 1)
	w := &hookWriter{onFirst: func() { interrupt <- struct{}{} }}

	err := Typewriter{Delay: time.Hour, Interrupt: interrupt}.Type(context.Background(), w, "Stay safe online")
	require.NoError(t, err)
	assert.Equal(t, "Stay safe online", w.buf.String())
	assert.Equal(t, 2, w.writes, "first rune then the flushed remainder")
}

func TestTypewriter_DrainsStaleInterrupts(t *testing.T) {
	defer goleak.VerifyNone(t)

	interrupt := make(chan struct{}, 1)
	interrupt <- struct{}{}
	w := &hookWriter{}

	require.NoError(t, Typewriter{Delay: time.Millisecond, Interrupt: interrupt}.Type(context.Background(), w, "abc"))
	assert.Equal(t, "abc", w.buf.String())
	assert.Equal(t, 3, w.writes)
}

func TestTypewriter_ContextCancelFlushes(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := &hookWriter{onFirst: cancel}

	err := Typewriter{Delay: time.Hour}.Type(ctx, w, "Goodbye")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Goodbye", w.buf.String())
}

func TestTypewriter_WriteError(t *testing.T) {
	defer goleak.VerifyNone(t)

	boom := errors.New("broken pipe")
	interrupt := make(chan struct{})
	err := Typewriter{Delay: time.Millisecond, Interrupt: interrupt}.Type(context.Background(), &hookWriter{err: boom}, "abc")
	assert.ErrorIs(t, err, boom)
}
