// Package services contains server-side business logic shared by the HTTP
// and gRPC surfaces.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/moodlog/internal/common"
	"github.com/dmitrijs2005/moodlog/internal/logging"
	"github.com/dmitrijs2005/moodlog/internal/server/models"
	"github.com/dmitrijs2005/moodlog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/moodlog/internal/server/validation"
)

// ErrEntryNotFound is reported when an update or delete matches no row.
var ErrEntryNotFound = fmt.Errorf("entry %w", common.ErrNotFound)

// EntryService validates entry writes, stamps missing dates and turns
// repository outcomes into Results.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	location    *time.Location
	logger      logging.Logger
	now         func() time.Time
}

func NewEntryService(db *sql.DB, m repomanager.RepositoryManager, location *time.Location, logger logging.Logger) *EntryService {
	return &EntryService{
		db:          db,
		repomanager: m,
		location:    location,
		logger:      logger.With("module", "entries"),
		now:         time.Now,
	}
}

func (s *EntryService) storageFailure(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, "entry store failure", "op", op, "error", err)
	return &common.StorageError{Op: op, Err: err}
}

func (s *EntryService) mapWriteError(ctx context.Context, op string, id int64, err error) error {
	if errors.Is(err, common.ErrNotFound) {
		s.logger.Debug(ctx, "entry not found", "op", op, "id", id)
		return ErrEntryNotFound
	}
	return s.storageFailure(ctx, op, err)
}

// Create validates e and persists it. Date and Time default to the
// service clock in its location.
func (s *EntryService) Create(ctx context.Context, e models.NewEntry) Result[*models.Entry] {
	if err := validation.ValidateNew(e); err != nil {
		return Fail[*models.Entry](err)
	}

	now := s.now()
	local := now.In(s.location)
	if e.Date == "" {
		e.Date = local.Format(models.DateLayout)
	}
	if e.Time == "" {
		e.Time = local.Format(models.ClockLayout)
	}

	created, err := s.repomanager.Entries(s.db).Create(ctx, &e, now)
	if err != nil {
		return Fail[*models.Entry](s.storageFailure(ctx, "create", err))
	}

	s.logger.Info(ctx, "entry created", "id", created.ID, "type", created.Type)
	return Ok(created)
}

// List returns every entry of the type.
func (s *EntryService) List(ctx context.Context, entryType models.EntryType) Result[[]*models.Entry] {
	if err := validation.ValidateType(entryType); err != nil {
		return Fail[[]*models.Entry](err)
	}

	list, err := s.repomanager.Entries(s.db).ListByType(ctx, entryType)
	if err != nil {
		return Fail[[]*models.Entry](s.storageFailure(ctx, "list", err))
	}
	if list == nil {
		list = []*models.Entry{}
	}
	return Ok(list)
}

// Update applies patch to the entry with the given id.
func (s *EntryService) Update(ctx context.Context, id int64, patch models.EntryPatch) Result[*models.Entry] {
	if err := validation.ValidatePatch(id, patch); err != nil {
		return Fail[*models.Entry](err)
	}

	updated, err := s.repomanager.Entries(s.db).Update(ctx, id, patch, s.now())
	if err != nil {
		return Fail[*models.Entry](s.mapWriteError(ctx, "update", id, err))
	}

	s.logger.Info(ctx, "entry updated", "id", id)
	return Ok(updated)
}

// Delete removes one entry and returns its last state.
func (s *EntryService) Delete(ctx context.Context, id int64) Result[*models.Entry] {
	if err := validation.ValidateID(id); err != nil {
		return Fail[*models.Entry](err)
	}

	deleted, err := s.repomanager.Entries(s.db).DeleteByID(ctx, id)
	if err != nil {
		return Fail[*models.Entry](s.mapWriteError(ctx, "delete", id, err))
	}

	s.logger.Info(ctx, "entry deleted", "id", id)
	return Ok(deleted)
}

// DeleteAll removes every entry of the type. Deleting nothing succeeds.
func (s *EntryService) DeleteAll(ctx context.Context, entryType models.EntryType) Result[bool] {
	if err := validation.ValidateType(entryType); err != nil {
		return Fail[bool](err)
	}

	n, err := s.repomanager.Entries(s.db).DeleteAllByType(ctx, entryType)
	if err != nil {
		return Fail[bool](s.storageFailure(ctx, "delete_all", err))
	}

	s.logger.Info(ctx, "entries deleted", "type", entryType, "count", n)
	return Ok(true)
}
