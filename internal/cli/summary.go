// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/jeranaias/cybersafe-tui/internal/convert"
	"github.com/jeranaias/cybersafe-tui/internal/model"
	"github.com/jeranaias/cybersafe-tui/internal/session"
)

// printSummary prints the session summary shown with --summary.
func printSummary(w io.Writer, s *session.Session, transcript *model.Conversation, culture language.Tag, now time.Time) {
	status := s.GetStatus()

	topics := "none"
	if len(status.Topics) > 0 {
		topics = strings.Join(status.Topics, ", ")
	}

	interest, label := "none", convert.NoReminder
	if status.Interest != "" {
		interest = status.Interest
		label = convert.ReminderLabel(status.InterestSetAt, now, culture)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render("Session Summary"))
	fmt.Fprintln(w, RenderSeparator(15))
	fmt.Fprintln(w, RenderField("Name:", status.Name))
	fmt.Fprintln(w, RenderField("Turns:", strconv.Itoa(status.Turns)+" ("+strconv.Itoa(transcript.MessageCount())+" messages)"))
	fmt.Fprintln(w, RenderField("Topics:", topics))
	fmt.Fprintln(w, RenderField("Interest:", interest))
	fmt.Fprintln(w, RenderField("Reminder:", label))
	fmt.Fprintln(w, RenderField("Duration:", session.FormatDuration(now.Sub(status.StartTime))))
	fmt.Fprintln(w)
}
