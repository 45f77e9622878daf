package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Oleksiy-Zhukov/studentsai/internal/db"
)

// NewTestDB opens an in-memory SQLite database with all migrations
// applied. The single-connection pool keeps the in-memory store alive
// for the life of the test.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open("file::memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, database.Close())
	})
	return database
}
