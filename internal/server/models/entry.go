// Package models defines server-side data models persisted in the database
// and returned over the public surfaces.
package models

import (
	"fmt"
	"time"
)

// Mood is the sentiment tag attached to an entry.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

// Moods lists the moods in display order.
var Moods = []Mood{MoodHappy, MoodNeutral, MoodSad}

func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodSad:
		return true
	}
	return false
}

// ParseMood accepts exactly one of the known mood values.
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown mood %q", s)
	}
	return m, nil
}

// EntryType distinguishes thoughts from activities. It never changes after
// an entry is created.
type EntryType string

const (
	TypeThoughts EntryType = "thoughts"
	TypeActivity EntryType = "activity"
)

func (t EntryType) Valid() bool {
	return t == TypeThoughts || t == TypeActivity
}

func ParseEntryType(s string) (EntryType, error) {
	t := EntryType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown entry type %q", s)
	}
	return t, nil
}

// Date and clock layouts of Entry.Date and Entry.Time.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Entry is one journaled record.
type Entry struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Mood      Mood      `json:"mood"`
	Type      EntryType `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewEntry is the caller-supplied part of an entry. Date and Time are
// stamped from the caller's clock; the store assigns everything else.
type NewEntry struct {
	Content string    `json:"content"`
	Date    string    `json:"date"`
	Time    string    `json:"time"`
	Mood    Mood      `json:"mood"`
	Type    EntryType `json:"type"`
}

// EntryPatch carries a partial update. Nil fields are left untouched.
type EntryPatch struct {
	Content *string `json:"content,omitempty"`
	Mood    *Mood   `json:"mood,omitempty"`
}

// Empty reports whether the patch changes nothing but updatedAt.
func (p EntryPatch) Empty() bool {
	return p.Content == nil && p.Mood == nil
}
