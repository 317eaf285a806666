package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// NewPostgres connects to PostgreSQL. Game rows are locked with FOR UPDATE
// for the length of each update so several server processes can share it.
func NewPostgres(connectionString string) (Store, error) {
	database, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return newSQLStore(database, dialect{
		name:       "postgres",
		numbered:   true,
		lockSuffix: " FOR UPDATE",
	})
}

// Open picks the backend by type name
func Open(dbType, path, dsn string) (Store, error) {
	switch dbType {
	case "", "sqlite", "sqlite3":
		return New(path)
	case "postgres", "postgresql":
		return NewPostgres(dsn)
	default:
		return nil, fmt.Errorf("unknown database type: %s", dbType)
	}
}
