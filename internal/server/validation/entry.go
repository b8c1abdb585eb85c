// Package validation checks entry payloads before they reach the store.
// All functions are pure; a nil error means the payload is accepted.
package validation

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/moodlog/internal/common"
	"github.com/dmitrijs2005/moodlog/internal/server/models"
)

// Rejection reasons returned to callers.
const (
	ReasonContentRequired = "content is required"
	ReasonContentEmpty    = "content cannot be empty"
	ReasonInvalidType     = "invalid entry type"
	ReasonInvalidMood     = "invalid mood"
	ReasonIDRequired      = "entry id is required"
	ReasonInvalidDate     = "date must be YYYY-MM-DD"
	ReasonInvalidTime     = "time must be HH:MM"
)

// validLayout reports whether v is empty or parses with layout exactly.
func validLayout(v, layout string) bool {
	if v == "" {
		return true
	}
	t, err := time.Parse(layout, v)
	return err == nil && t.Format(layout) == v
}

// ValidateNew checks a create payload. Date and Time may be empty; when
// present they must match models.DateLayout and models.ClockLayout.
func ValidateNew(e models.NewEntry) error {
	if strings.TrimSpace(e.Content) == "" {
		return common.NewValidationError(ReasonContentRequired)
	}
	if !e.Type.Valid() {
		return common.NewValidationError(ReasonInvalidType)
	}
	if !e.Mood.Valid() {
		return common.NewValidationError(ReasonInvalidMood)
	}
	if !validLayout(e.Date, models.DateLayout) {
		return common.NewValidationError(ReasonInvalidDate)
	}
	if !validLayout(e.Time, models.ClockLayout) {
		return common.NewValidationError(ReasonInvalidTime)
	}
	return nil
}

// ValidatePatch checks an update payload. Only supplied fields are checked.
func ValidatePatch(id int64, p models.EntryPatch) error {
	if id <= 0 {
		return common.NewValidationError(ReasonIDRequired)
	}
	if p.Mood != nil && !p.Mood.Valid() {
		return common.NewValidationError(ReasonInvalidMood)
	}
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		return common.NewValidationError(ReasonContentEmpty)
	}
	return nil
}

// ValidateID checks an entry reference used by delete-by-id.
func ValidateID(id int64) error {
	if id <= 0 {
		return common.NewValidationError(ReasonIDRequired)
	}
	return nil
}

// ValidateType checks a bare entry type, as used by list and delete-all.
func ValidateType(t models.EntryType) error {
	if !t.Valid() {
		return common.NewValidationError(ReasonInvalidType)
	}
	return nil
}
