package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMood(t *testing.T) {
	for _, s := range []string{"happy", "neutral", "sad"} {
		m, err := ParseMood(s)
		require.NoError(t, err)
		assert.Equal(t, Mood(s), m)
	}

	for _, s := range []string{"", "Happy", "angry", " sad"} {
		_, err := ParseMood(s)
		assert.Error(t, err, s)
	}
}

func TestParseEntryType(t *testing.T) {
	for _, s := range []string{"thoughts", "activity"} {
		et, err := ParseEntryType(s)
		require.NoError(t, err)
		assert.True(t, et.Valid())
	}

	for _, s := range []string{"", "thought", "activities", "THOUGHTS"} {
		_, err := ParseEntryType(s)
		assert.Error(t, err, s)
	}
}

func TestEntryPatch_Empty(t *testing.T) {
	assert.True(t, EntryPatch{}.Empty())

	m := MoodSad
	assert.False(t, EntryPatch{Mood: &m}.Empty())

	c := "x"
	assert.False(t, EntryPatch{Content: &c}.Empty())
}

func TestEntry_JSONFieldNames(t *testing.T) {
	ts := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	b, err := json.Marshal(Entry{ID: 1, Content: "c", Date: "2026-10-16", Time: "09:00",
		Mood: MoodHappy, Type: TypeThoughts, CreatedAt: ts, UpdatedAt: ts})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, k := range []string{"id", "content", "date", "time", "mood", "type", "createdAt", "updatedAt"} {
		assert.Contains(t, m, k)
	}
}
