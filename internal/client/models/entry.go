// Package models defines the journal entry and overview shapes as the CLI
// receives them from the server.
package models

import (
	"strings"
	"time"
)

const (
	MoodHappy   = "happy"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
)

const (
	TypeThoughts = "thoughts"
	TypeActivity = "activity"
)

// Layouts of Entry.Date and Entry.Time.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ValidMood reports whether m is one of the known moods.
func ValidMood(m string) bool {
	return m == MoodHappy || m == MoodNeutral || m == MoodSad
}

// ValidType reports whether t is one of the known entry types.
func ValidType(t string) bool {
	return t == TypeThoughts || t == TypeActivity
}

// Entry is one journaled record.
type Entry struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Mood      string    `json:"mood"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Matches reports whether the entry content contains query, ignoring case.
// An empty query matches everything.
func (e *Entry) Matches(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Content), strings.ToLower(query))
}
