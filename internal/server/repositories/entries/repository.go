package entries

import (
	"context"
	"time"

	"github.com/dmitrijs2005/moodlog/internal/server/models"
)

// Repository is the entry store adapter. Every method issues exactly one
// statement.
type Repository interface {
	Create(ctx context.Context, entry *models.NewEntry, now time.Time) (*models.Entry, error)
	ListByType(ctx context.Context, entryType models.EntryType) ([]*models.Entry, error)
	ListByTypesSince(ctx context.Context, types []models.EntryType, since time.Time) ([]*models.Entry, error)
	Update(ctx context.Context, id int64, patch models.EntryPatch, now time.Time) (*models.Entry, error)
	DeleteByID(ctx context.Context, id int64) (*models.Entry, error)
	DeleteAllByType(ctx context.Context, entryType models.EntryType) (int64, error)
}
