package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// UniqueConstrain is SQLITE_CONSTRAINT_PRIMARYKEY
const UniqueConstrain = 1555

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("not found")

var pragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA journal_size_limit = 6144000",
}

// NewSQLiteDB opens the ledger database at dbPath. A single connection is
// kept so every call runs strictly after the previous one.
func NewSQLiteDB(dbPath string) (*sql.DB, error) {
	database, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	database.SetMaxOpenConns(1)
	for _, p := range pragmas {
		if _, err := database.Exec(p); err != nil {
			database.Close()
			return nil, fmt.Errorf("error applying %q: %w", p, err)
		}
	}
	return database, nil
}

// ReturnErrNotFound maps sql.ErrNoRows to ErrNotFound
func ReturnErrNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
