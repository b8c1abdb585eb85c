package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestFullMethod(t *testing.T) {
	assert.Equal(t, "/moodlog.v1.JournalService/CreateEntry", FullMethod(MethodCreateEntry))
}

func TestStructConversion(t *testing.T) {
	content := "new text"
	s, err := ToStruct(UpdateRequest{ID: 42, Content: &content})
	require.NoError(t, err)

	assert.Equal(t, float64(42), s.Fields["id"].GetNumberValue())
	assert.NotContains(t, s.Fields, "mood")

	var back UpdateRequest
	require.NoError(t, FromStruct(s, &back))
	assert.Equal(t, int64(42), back.ID)
	require.NotNil(t, back.Content)
	assert.Equal(t, "new text", *back.Content)
	assert.Nil(t, back.Mood)
}

func TestToStruct_RejectsNonObjects(t *testing.T) {
	_, err := ToStruct([]int{1, 2})
	assert.Error(t, err)
}

func TestFromStruct_TypeMismatch(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{"id": "not-a-number"})
	require.NoError(t, err)

	var req IDRequest
	assert.Error(t, FromStruct(s, &req))
}
