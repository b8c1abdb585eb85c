// Package entries provides the SQL-backed repository for journal entries.
// The queries are portable between PostgreSQL (pgx) and SQLite (modernc).
package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodlog/internal/common"
	"github.com/dmitrijs2005/moodlog/internal/dbx"
	"github.com/dmitrijs2005/moodlog/internal/server/models"
)

const entryColumns = `id, content, "date", "time", mood, "type", created_at, updated_at`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.Entry, error) {
	var e models.Entry
	if err := row.Scan(&e.ID, &e.Content, &e.Date, &e.Time, &e.Mood, &e.Type, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return &e, nil
}

func (r *PostgresRepository) queryEntries(ctx context.Context, query string, args ...any) ([]*models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts the entry, stamping created_at and updated_at with now.
func (r *PostgresRepository) Create(ctx context.Context, entry *models.NewEntry, now time.Time) (*models.Entry, error) {
	query := `
		INSERT INTO entries (content, "date", "time", mood, "type", created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + entryColumns

	now = now.UTC()
	row := r.db.QueryRowContext(ctx, query,
		entry.Content, entry.Date, entry.Time, string(entry.Mood), string(entry.Type), now, now)

	created, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

// ListByType returns all entries of the given type in no particular order.
func (r *PostgresRepository) ListByType(ctx context.Context, entryType models.EntryType) ([]*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE "type" = $1`
	return r.queryEntries(ctx, query, string(entryType))
}

// ListByTypesSince returns entries of any of the given types created at or
// after since, newest first.
func (r *PostgresRepository) ListByTypesSince(ctx context.Context, types []models.EntryType, since time.Time) ([]*models.Entry, error) {
	if len(types) == 0 {
		return []*models.Entry{}, nil
	}

	placeholders := make([]string, len(types))
	args := make([]any, 0, len(types)+1)
	for i, t := range types {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args = append(args, string(t))
	}
	args = append(args, since.UTC())

	query := `SELECT ` + entryColumns + ` FROM entries
		WHERE "type" IN (` + strings.Join(placeholders, ", ") + `) AND created_at >= $` + fmt.Sprint(len(types)+1) + `
		ORDER BY created_at DESC`

	return r.queryEntries(ctx, query, args...)
}

// Update merges the supplied fields and refreshes updated_at. It returns
// common.ErrNotFound when no row has the id.
func (r *PostgresRepository) Update(ctx context.Context, id int64, patch models.EntryPatch, now time.Time) (*models.Entry, error) {
	query := `
		UPDATE entries
		SET content = COALESCE($1, content), mood = COALESCE($2, mood), updated_at = $3
		WHERE id = $4
		RETURNING ` + entryColumns

	var content, mood sql.NullString
	if patch.Content != nil {
		content = sql.NullString{String: *patch.Content, Valid: true}
	}
	if patch.Mood != nil {
		mood = sql.NullString{String: string(*patch.Mood), Valid: true}
	}

	updated, err := scanEntry(r.db.QueryRowContext(ctx, query, content, mood, now.UTC(), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

// DeleteByID removes one entry and returns its last state. It returns
// common.ErrNotFound when no row has the id.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id int64) (*models.Entry, error) {
	query := `DELETE FROM entries WHERE id = $1 RETURNING ` + entryColumns

	deleted, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return deleted, nil
}

// DeleteAllByType removes every entry of the type. Removing nothing is not
// an error.
func (r *PostgresRepository) DeleteAllByType(ctx context.Context, entryType models.EntryType) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE "type" = $1`, string(entryType))
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
