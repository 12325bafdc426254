package library

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS library (
  owner TEXT NOT NULL,
  position INTEGER NOT NULL,
  template_id INTEGER NOT NULL,
  template_name TEXT NOT NULL,
  purchased_at TEXT NOT NULL,
  PRIMARY KEY (owner, template_id)
);`

// Open opens (creating if needed) the cache database at dsn.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open library cache: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init library cache: %w", err)
	}
	return db, nil
}
