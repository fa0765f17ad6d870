package testutil

import (
	"database/sql"
	"testing"

	"medswap/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies
// migrations. A shared-cache database is used so multiple connections
// share the same DB if needed; pick a distinct name per test.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}
