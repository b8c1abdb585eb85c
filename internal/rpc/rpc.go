// Package rpc names the JournalService methods and converts between Go
// values and the google.protobuf.Struct documents carried on the wire.
// Documents have the same JSON shape as the HTTP API.
package rpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "moodlog.v1.JournalService"

const (
	MethodPing             = "Ping"
	MethodCreateEntry      = "CreateEntry"
	MethodListEntries      = "ListEntries"
	MethodUpdateEntry      = "UpdateEntry"
	MethodDeleteEntry      = "DeleteEntry"
	MethodDeleteAllEntries = "DeleteAllEntries"
	MethodGetOverview      = "GetOverview"

	MethodGetActivityFeedback  = "GetActivityFeedback"
	MethodGetThoughtsFeedback  = "GetThoughtsFeedback"
	MethodGetDailyAchievements = "GetDailyAchievements"
)

// FullMethod returns the "/service/method" path of a JournalService method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// TypeRequest selects an entry type (ListEntries, DeleteAllEntries).
type TypeRequest struct {
	Type string `json:"type"`
}

// IDRequest references one entry (DeleteEntry).
type IDRequest struct {
	ID int64 `json:"id"`
}

// UpdateRequest carries the id and the optional fields of UpdateEntry.
type UpdateRequest struct {
	ID      int64   `json:"id"`
	Content *string `json:"content,omitempty"`
	Mood    *string `json:"mood,omitempty"`
}

// FeedbackErrorDetails is attached to the status of a failed feedback call.
type FeedbackErrorDetails struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// PingResponse is the body of a Ping reply.
type PingResponse struct {
	Status string `json:"status"`
}

// ToStruct encodes v through its JSON form. v must encode to a JSON object.
func ToStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return structpb.NewStruct(m)
}

// FromStruct decodes s into out through its JSON form.
func FromStruct(s *structpb.Struct, out any) error {
	b, err := json.Marshal(s.AsMap())
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}
