package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_Matches(t *testing.T) {
	e := &Entry{Content: "Went for a long Walk"}

	assert.True(t, e.Matches(""))
	assert.True(t, e.Matches("walk"))
	assert.True(t, e.Matches("LONG"))
	assert.False(t, e.Matches("run"))
}

func TestValidMoodAndType(t *testing.T) {
	assert.True(t, ValidMood("happy"))
	assert.False(t, ValidMood("Happy"))
	assert.True(t, ValidType("activity"))
	assert.False(t, ValidType("note"))
}
