package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var MigrationFiles embed.FS

func Postgres() fs.FS { return sub("postgres") }
func SQLite() fs.FS   { return sub("sqlite") }

func sub(dir string) fs.FS {
	f, err := fs.Sub(MigrationFiles, dir)
	if err != nil {
		panic(err)
	}
	return f
}
