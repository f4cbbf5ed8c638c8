package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type DB struct {
	Path string `yaml:"path" envconfig:"SQLITE_PATH" default:"data/lending.db"`
}

func (c *DB) DSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", c.Path)
}

// NewSQLiteDB opens (or creates) the database file and applies the embedded
// goose migrations. A nil migrations FS skips the migration step.
func NewSQLiteDB(ctx context.Context, cfg *DB, migrations fs.FS) (*sql.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create db dir")
		}
	}
	db, err := sql.Open("sqlite3", cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "sql.Open")
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "db.Ping")
	}

	if migrations != nil {
		goose.SetBaseFS(migrations)
		if err := goose.SetDialect("sqlite3"); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "goose.SetDialect")
		}
		if err := goose.Up(db, "."); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "goose.Up")
		}
	}
	return db, nil
}
