// Package testutil opens throwaway stores for tests.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yukikurage/demodb/internal/database"
)

// OpenDB opens an in-memory SQLite store with foreign keys on, migrates
// models into it and closes it when the test ends.
func OpenDB(t testing.TB, models ...any) *gorm.DB {
	t.Helper()

	db, err := database.Open(database.SQLite, ":memory:", database.Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, models...))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
