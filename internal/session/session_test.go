// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the state of one chat run.
package session

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// =============================================================================
// CREATION TESTS
// =============================================================================

func TestNew(t *testing.T) {
	s := New()

	if !strings.HasPrefix(s.SessionID(), "sess_") {
		t.Errorf("SessionID should start with 'sess_', got %q", s.SessionID())
	}
	if s.StartTime().IsZero() {
		t.Error("StartTime should not be zero")
	}
	if !s.IsRunning() {
		t.Error("new session should be running")
	}
	if s.HasName() {
		t.Error("new session should not have a name")
	}
	if _, ok := s.Interest(); ok {
		t.Error("new session should not have an interest")
	}
	if len(s.Topics()) != 0 {
		t.Error("new session should have no topics")
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	if New().SessionID() == New().SessionID() {
		t.Error("session IDs should be unique")
	}
}

// =============================================================================
// NAME TESTS
// =============================================================================

func TestSession_SetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		want    string
	}{
		{"plain", "Thandi", nil, "Thandi"},
		{"trimmed", "  Sipho \t", nil, "Sipho"},
		{"empty", "", ErrEmptyName, ""},
		{"whitespace", "   \t ", ErrEmptyName, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			err := s.SetName(tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("SetName(%q) error = %v, want %v", tc.input, err, tc.wantErr)
			}
			if s.Name() != tc.want {
				t.Errorf("Name() = %q, want %q", s.Name(), tc.want)
			}
		})
	}
}

func TestSession_SetNameOnce(t *testing.T) {
	s := New()
	if err := s.SetName("Thandi"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetName("Sipho"); !errors.Is(err, ErrNameAlreadySet) {
		t.Errorf("second SetName error = %v, want ErrNameAlreadySet", err)
	}
	if s.Name() != "Thandi" {
		t.Errorf("Name() = %q, want Thandi", s.Name())
	}
}

// =============================================================================
// RUN STATE TESTS
// =============================================================================

func TestSession_StopIsPermanent(t *testing.T) {
	s := New()
	s.Stop()
	if s.IsRunning() {
		t.Fatal("session should not be running after Stop")
	}
	s.Stop()
	if s.IsRunning() {
		t.Error("session should stay stopped")
	}
}

func TestSession_Turns(t *testing.T) {
	s := New()
	s.RecordTurn()
	s.RecordTurn()
	if s.Turns() != 2 {
		t.Errorf("Turns() = %d, want 2", s.Turns())
	}
}

// =============================================================================
// MEMORY TESTS
// =============================================================================

func TestSession_InterestLastValueWins(t *testing.T) {
	s := New()
	s.SetInterest("privacy")
	first := s.InterestSetAt()
	if first.IsZero() {
		t.Fatal("InterestSetAt should be set")
	}

	s.SetInterest("gaming")
	got, ok := s.Interest()
	if !ok || got != "gaming" {
		t.Errorf("Interest() = %q, %v; want gaming, true", got, ok)
	}
	if s.InterestSetAt().Before(first) {
		t.Error("InterestSetAt should move forward")
	}
}

func TestSession_TopicsAreOrderedCopies(t *testing.T) {
	s := New()
	s.RecordTopic("password")
	s.RecordTopic("phish")
	s.RecordTopic("password")

	topics := s.Topics()
	want := []string{"password", "phish", "password"}
	if strings.Join(topics, ",") != strings.Join(want, ",") {
		t.Errorf("Topics() = %v, want %v", topics, want)
	}

	topics[0] = "mutated"
	if s.Topics()[0] != "password" {
		t.Error("Topics() should return a copy")
	}
}

func TestSession_GetStatus(t *testing.T) {
	s := New()
	_ = s.SetName("Thandi")
	s.SetInterest("privacy")
	s.RecordTopic("privacy")
	s.RecordTurn()
	s.Stop()

	st := s.GetStatus()
	if st.Name != "Thandi" || st.Interest != "privacy" || st.Turns != 1 || st.Running {
		t.Errorf("unexpected status: %+v", st)
	}
	if len(st.Topics) != 1 || st.Topics[0] != "privacy" {
		t.Errorf("status topics = %v", st.Topics)
	}
}

// =============================================================================
// FORMAT TESTS
// =============================================================================

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{2 * time.Minute, "2m"},
		{2*time.Minute + 5*time.Second, "2m 5s"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatDuration(tc.d); got != tc.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tc.d, got, tc.want)
			}
		})
	}
}
