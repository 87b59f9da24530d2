// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// NoReminder is the label for values that are not dates.
const NoReminder = "No reminder set"

// monthNames holds abbreviated month names per supported language.
var monthNames = map[language.Tag][12]string{
	language.English:   {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	language.Afrikaans: {"Jan", "Feb", "Mrt", "Apr", "Mei", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Des"},
}

var cultureMatcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.Afrikaans,
})

// ReminderLabel returns "Today", "Tomorrow" or "Yesterday" for dates one day
// around now, "2 Jan" for other dates in the current year and "2 Jan 2006"
// otherwise. Days are compared in now's location.
func ReminderLabel(date, now time.Time, culture language.Tag) string {
	today := startOfDay(now)
	day := startOfDay(date.In(now.Location()))

	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	}

	months := monthsFor(culture)
	label := strconv.Itoa(day.Day()) + " " + months[day.Month()-1]
	if day.Year() != today.Year() {
		label += " " + strconv.Itoa(day.Year())
	}
	return label
}

// ReminderConverter binds ReminderLabel to arbitrary values. Anything that is
// not a time.Time or a non-nil *time.Time becomes NoReminder.
type ReminderConverter struct {
	oneWay

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Convert implements Converter.
func (c ReminderConverter) Convert(value any, culture language.Tag) (any, error) {
	var date time.Time
	switch v := value.(type) {
	case time.Time:
		date = v
	case *time.Time:
		if v == nil {
			return NoReminder, nil
		}
		date = *v
	default:
		return NoReminder, nil
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return ReminderLabel(date, now(), culture), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func monthsFor(culture language.Tag) [12]string {
	_, index, _ := cultureMatcher.Match(culture)
	if index == 1 {
		return monthNames[language.Afrikaans]
	}
	return monthNames[language.English]
}
