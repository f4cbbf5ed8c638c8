package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/Astemirdum/lending-service/lending/migrations"
	"github.com/Astemirdum/lending-service/pkg/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSQLIO_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.NewSQLiteDB(ctx, &sqlite.DB{Path: filepath.Join(t.TempDir(), "lending.db")}, migrations.SQLite())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	io := repository.NewSQLIO(db, repository.DialectSQLite, zap.NewNop())

	_, err = io.Read(ctx, "nope")
	require.ErrorIs(t, err, errs.ErrDocumentNotFound)

	require.NoError(t, io.Write(ctx, "doc", []byte(`{"a":1}`)))
	require.NoError(t, io.Write(ctx, "doc", []byte(`{"a":2}`)))
	data, err := io.Read(ctx, "doc")
	require.NoError(t, err)
	require.JSONEq(t, `{"a":2}`, string(data))

	users := repository.NewUsers(ctx, io, zap.NewNop())
	u, err := users.Save(ctx, model.NewUser("Ann", "ann@example.com", "h", model.RoleAdmin, now))
	require.NoError(t, err)

	reloaded := repository.NewUsers(ctx, io, zap.NewNop())
	got, err := reloaded.FindByID(u.ID)
	require.NoError(t, err)
	require.True(t, got.IsAdmin())
}
