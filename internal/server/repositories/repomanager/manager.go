package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/moodlog/internal/dbx"
	"github.com/dmitrijs2005/moodlog/internal/server/repositories/entries"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Entries(db dbx.DBTX) entries.Repository
}

// New returns the RepositoryManager for the dialect.
func New(dialect dbx.Dialect) RepositoryManager {
	if dialect == dbx.DialectSQLite {
		return NewSQLiteRepositoryManager()
	}
	return NewPostgresRepositoryManager()
}
