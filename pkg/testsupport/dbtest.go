package testsupport

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

var dbCounter atomic.Int64

// NewSQLiteMemoryDB opens a private in-memory SQLite database for one test.
// Each call gets its own database so tests cannot observe each other's rows.
func NewSQLiteMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:doclint_test_%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// cache=shared keeps the database alive across pooled connections; pin a
	// single open connection so it survives for the whole test.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

// NewBunMemoryDB wraps an in-memory SQLite handle for run store tests.
func NewBunMemoryDB(t *testing.T) *bun.DB {
	t.Helper()
	return bun.NewDB(NewSQLiteMemoryDB(t), sqlitedialect.New())
}
