package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/moodlog/internal/common"
	"github.com/dmitrijs2005/moodlog/internal/dbx"
	"github.com/dmitrijs2005/moodlog/internal/server/llm"
	"github.com/dmitrijs2005/moodlog/internal/server/models"
	"github.com/dmitrijs2005/moodlog/internal/server/repositories/entries"
	"github.com/dmitrijs2005/moodlog/internal/server/repositories/repomanager"
)

// -------- test fakes --------

// fakeEntriesRepo is an in-memory entries.Repository.
type fakeEntriesRepo struct {
	entries.Repository

	rows   []*models.Entry
	nextID int64
	err    error

	gotSince time.Time
	gotTypes []models.EntryType
}

func (f *fakeEntriesRepo) Create(ctx context.Context, e *models.NewEntry, now time.Time) (*models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	row := &models.Entry{
		ID: f.nextID, Content: e.Content, Date: e.Date, Time: e.Time,
		Mood: e.Mood, Type: e.Type, CreatedAt: now.UTC(), UpdatedAt: now.UTC(),
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeEntriesRepo) ListByType(ctx context.Context, t models.EntryType) ([]*models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Entry
	for _, r := range f.rows {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeEntriesRepo) ListByTypesSince(ctx context.Context, types []models.EntryType, since time.Time) ([]*models.Entry, error) {
	f.gotSince = since
	f.gotTypes = types
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Entry
	for i := len(f.rows) - 1; i >= 0; i-- {
		r := f.rows[i]
		if r.CreatedAt.Before(since) {
			continue
		}
		for _, t := range types {
			if r.Type == t {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeEntriesRepo) find(id int64) (int, bool) {
	for i, r := range f.rows {
		if r.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (f *fakeEntriesRepo) Update(ctx context.Context, id int64, p models.EntryPatch, now time.Time) (*models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	i, ok := f.find(id)
	if !ok {
		return nil, common.ErrNotFound
	}
	r := *f.rows[i]
	if p.Content != nil {
		r.Content = *p.Content
	}
	if p.Mood != nil {
		r.Mood = *p.Mood
	}
	r.UpdatedAt = now.UTC()
	f.rows[i] = &r
	return &r, nil
}

func (f *fakeEntriesRepo) DeleteByID(ctx context.Context, id int64) (*models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	i, ok := f.find(id)
	if !ok {
		return nil, common.ErrNotFound
	}
	r := f.rows[i]
	f.rows = append(f.rows[:i], f.rows[i+1:]...)
	return r, nil
}

func (f *fakeEntriesRepo) DeleteAllByType(ctx context.Context, t models.EntryType) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	kept := f.rows[:0]
	var n int64
	for _, r := range f.rows {
		if r.Type == t {
			n++
			continue
		}
		kept = append(kept, r)
	}
	f.rows = kept
	return n, nil
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	repo *fakeEntriesRepo
}

func (m *fakeRepoManager) Entries(db dbx.DBTX) entries.Repository {
	return m.repo
}

// fakeGenerator records the prompt and fills out from a canned value.
type fakeGenerator struct {
	calls  int
	prompt string
	schema llm.Schema
	fill   func(out any)
	err    error
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string, schema llm.Schema, out any) error {
	g.calls++
	g.prompt = prompt
	g.schema = schema
	if g.err != nil {
		return g.err
	}
	if g.fill != nil {
		g.fill(out)
	}
	return nil
}

var errDBDown = errors.New("connection refused")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
