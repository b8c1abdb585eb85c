package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/moodlog/internal/analytics"
	"github.com/dmitrijs2005/moodlog/internal/common"
	"github.com/dmitrijs2005/moodlog/internal/logging"
	"github.com/dmitrijs2005/moodlog/internal/server/models"
	"github.com/dmitrijs2005/moodlog/internal/server/repositories/repomanager"
)

// OverviewService loads both entry types and aggregates them for the
// dashboard.
type OverviewService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	location    *time.Location
	weekStart   time.Weekday
	logger      logging.Logger
	now         func() time.Time
}

func NewOverviewService(db *sql.DB, m repomanager.RepositoryManager, location *time.Location, weekStart time.Weekday, logger logging.Logger) *OverviewService {
	return &OverviewService{
		db:          db,
		repomanager: m,
		location:    location,
		weekStart:   weekStart,
		logger:      logger.With("module", "overview"),
		now:         time.Now,
	}
}

func (s *OverviewService) Get(ctx context.Context) Result[analytics.Overview] {
	repo := s.repomanager.Entries(s.db)

	thoughts, err := repo.ListByType(ctx, models.TypeThoughts)
	if err != nil {
		s.logger.Error(ctx, "failed to load thoughts", "error", err)
		return Fail[analytics.Overview](&common.StorageError{Op: "overview", Err: err})
	}
	activities, err := repo.ListByType(ctx, models.TypeActivity)
	if err != nil {
		s.logger.Error(ctx, "failed to load activities", "error", err)
		return Fail[analytics.Overview](&common.StorageError{Op: "overview", Err: err})
	}

	return Ok(analytics.BuildOverview(thoughts, activities, s.now().In(s.location), s.weekStart))
}
