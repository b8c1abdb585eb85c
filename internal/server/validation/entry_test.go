package validation

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/moodlog/internal/common"
	"github.com/dmitrijs2005/moodlog/internal/server/models"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestValidateNew(t *testing.T) {
	valid := models.NewEntry{Content: "went running", Date: "2026-10-16", Time: "07:30",
		Mood: models.MoodHappy, Type: models.TypeActivity}

	tests := []struct {
		name   string
		mutate func(e *models.NewEntry)
		reason string
	}{
		{name: "accepted", mutate: func(e *models.NewEntry) {}},
		{name: "empty content", mutate: func(e *models.NewEntry) { e.Content = "" }, reason: ReasonContentRequired},
		{name: "whitespace content", mutate: func(e *models.NewEntry) { e.Content = " \t\n " }, reason: ReasonContentRequired},
		{name: "missing type", mutate: func(e *models.NewEntry) { e.Type = "" }, reason: ReasonInvalidType},
		{name: "unknown type", mutate: func(e *models.NewEntry) { e.Type = "notes" }, reason: ReasonInvalidType},
		{name: "type case matters", mutate: func(e *models.NewEntry) { e.Type = "Activity" }, reason: ReasonInvalidType},
		{name: "missing mood", mutate: func(e *models.NewEntry) { e.Mood = "" }, reason: ReasonInvalidMood},
		{name: "unknown mood", mutate: func(e *models.NewEntry) { e.Mood = "angry" }, reason: ReasonInvalidMood},
		{name: "empty date and time", mutate: func(e *models.NewEntry) { e.Date = ""; e.Time = "" }},
		{name: "garbage date", mutate: func(e *models.NewEntry) { e.Date = "garbage" }, reason: ReasonInvalidDate},
		{name: "unpadded date", mutate: func(e *models.NewEntry) { e.Date = "2026-1-5" }, reason: ReasonInvalidDate},
		{name: "impossible date", mutate: func(e *models.NewEntry) { e.Date = "2026-02-30" }, reason: ReasonInvalidDate},
		{name: "garbage time", mutate: func(e *models.NewEntry) { e.Time = "noon" }, reason: ReasonInvalidTime},
		{name: "time with seconds", mutate: func(e *models.NewEntry) { e.Time = "07:30:00" }, reason: ReasonInvalidTime},
		{name: "hour out of range", mutate: func(e *models.NewEntry) { e.Time = "25:00" }, reason: ReasonInvalidTime},
		{name: "content checked first", mutate: func(e *models.NewEntry) { e.Content = ""; e.Mood = "x"; e.Type = "y" }, reason: ReasonContentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			err := ValidateNew(e)
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, common.ErrValidation))
			assert.EqualError(t, err, tt.reason)
		})
	}
}

func TestValidatePatch(t *testing.T) {
	tests := []struct {
		name   string
		id     int64
		patch  models.EntryPatch
		reason string
	}{
		{name: "mood only", id: 1, patch: models.EntryPatch{Mood: ptr(models.MoodSad)}},
		{name: "content only", id: 1, patch: models.EntryPatch{Content: ptr("new text")}},
		{name: "nothing supplied", id: 1, patch: models.EntryPatch{}},
		{name: "zero id", id: 0, patch: models.EntryPatch{Mood: ptr(models.MoodSad)}, reason: ReasonIDRequired},
		{name: "bad mood", id: 3, patch: models.EntryPatch{Mood: ptr(models.Mood("meh"))}, reason: ReasonInvalidMood},
		{name: "blank content", id: 3, patch: models.EntryPatch{Content: ptr("   ")}, reason: ReasonContentEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePatch(tt.id, tt.patch)
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.EqualError(t, err, tt.reason)
		})
	}
}

func TestValidateIDAndType(t *testing.T) {
	assert.NoError(t, ValidateID(5))
	assert.EqualError(t, ValidateID(0), ReasonIDRequired)
	assert.EqualError(t, ValidateID(-2), ReasonIDRequired)

	assert.NoError(t, ValidateType(models.TypeThoughts))
	assert.EqualError(t, ValidateType("journal"), ReasonInvalidType)
}
