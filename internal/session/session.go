// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the state of one chat run.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/cybersafe-tui/internal/util"
)

var (
	// ErrEmptyName is returned when a blank or whitespace-only name is given.
	ErrEmptyName = errors.New("session: name must not be empty")

	// ErrNameAlreadySet is returned when SetName is called a second time.
	ErrNameAlreadySet = errors.New("session: name already set")
)

// =============================================================================
// SESSION
// =============================================================================

// Session tracks the state of a single chat run.
//
// Invariants: the name is never empty once set and is set only once; the
// interest is overwritten, never merged; once Stop is called the session
// stays stopped.
type Session struct {
	mu sync.Mutex

	sessionID string
	startTime time.Time

	name    string
	running bool

	interest      string
	interestSetAt time.Time

	topics []string
	turns  int
}

// New creates a running session with a fresh ID.
func New() *Session {
	return &Session{
		sessionID: generateSessionID(),
		startTime: time.Now(),
		running:   true,
		topics:    make([]string, 0),
	}
}

// =============================================================================
// IDENTITY
// =============================================================================

// SessionID returns the session ID.
func (s *Session) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// StartTime returns when the session started.
func (s *Session) StartTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startTime
}

// Duration returns how long the session has been active.
func (s *Session) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.startTime)
}

// SetName stores the trimmed display name. Blank names are rejected with
// ErrEmptyName so the caller can prompt again.
func (s *Session) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.name != "" {
		return ErrNameAlreadySet
	}
	s.name = name
	return nil
}

// Name returns the display name, or "" before SetName succeeded.
func (s *Session) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// HasName reports whether a name has been set.
func (s *Session) HasName() bool {
	return s.Name() != ""
}

// =============================================================================
// RUN STATE
// =============================================================================

// IsRunning reports whether the run loop should continue.
func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Stop clears the running flag. There is no way to restart.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

// RecordTurn counts one processed input line.
func (s *Session) RecordTurn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns++
}

// Turns returns the number of processed input lines.
func (s *Session) Turns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turns
}

// =============================================================================
// MEMORY
// =============================================================================

// SetInterest remembers what the user said they are interested in.
// The previous value, if any, is replaced.
func (s *Session) SetInterest(interest string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interest = interest
	s.interestSetAt = time.Now()
}

// Interest returns the remembered interest and whether one is set.
func (s *Session) Interest() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interest, s.interest != ""
}

// InterestSetAt returns when the interest was last set. The zero time means
// no interest has been recorded.
func (s *Session) InterestSetAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interestSetAt
}

// RecordTopic appends a matched keyword to the topic history.
func (s *Session) RecordTopic(keyword string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = append(s.topics, keyword)
}

// Topics returns a copy of the topic history in match order.
func (s *Session) Topics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.topics))
	copy(out, s.topics)
	return out
}

// =============================================================================
// SESSION STATUS
// =============================================================================

// Status is a snapshot of the session.
type Status struct {
	SessionID     string
	Name          string
	StartTime     time.Time
	Duration      time.Duration
	Running       bool
	Turns         int
	Interest      string
	InterestSetAt time.Time
	Topics        []string
}

// GetStatus returns the current session status.
func (s *Session) GetStatus() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	topics := make([]string, len(s.topics))
	copy(topics, s.topics)

	return Status{
		SessionID:     s.sessionID,
		Name:          s.name,
		StartTime:     s.startTime,
		Duration:      time.Since(s.startTime),
		Running:       s.running,
		Turns:         s.turns,
		Interest:      s.interest,
		InterestSetAt: s.interestSetAt,
		Topics:        topics,
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateSessionID creates a unique session ID.
func generateSessionID() string {
	return "sess_" + uuid.NewString()
}

// FormatDuration returns a human-readable duration string.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		secs := int(d.Seconds())
		return util.IntToString(secs) + "s"
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	if secs == 0 {
		return util.IntToString(mins) + "m"
	}
	return util.IntToString(mins) + "m " + util.IntToString(secs) + "s"
}
