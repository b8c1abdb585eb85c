package client

import (
	"context"

	"github.com/dmitrijs2005/moodlog/internal/analytics"
	"github.com/dmitrijs2005/moodlog/internal/client/models"
)

// EntryUpdate carries the optional fields of an update. Nil fields are
// left untouched on the server.
type EntryUpdate struct {
	Content *string
	Mood    *string
}

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	CreateEntry(ctx context.Context, content, mood, entryType string) (*models.Entry, error)
	ListEntries(ctx context.Context, entryType string) ([]*models.Entry, error)
	UpdateEntry(ctx context.Context, id int64, u EntryUpdate) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id int64) (*models.Entry, error)
	DeleteAllEntries(ctx context.Context, entryType string) error
	GetOverview(ctx context.Context) (*analytics.Overview, error)
	GetActivityFeedback(ctx context.Context) (*models.ActivityFeedback, error)
	GetThoughtsFeedback(ctx context.Context) (*models.ThoughtsFeedback, error)
	GetDailyAchievements(ctx context.Context) (*models.DailyAchievements, error)
}
