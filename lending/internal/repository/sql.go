package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const documentsTableName = `documents`

var ErrNoSchema = errors.New("documents table is missing, run migrations")

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// SQLIO keeps one row per document in the documents table.
type SQLIO struct {
	db  *sql.DB
	qb  sq.StatementBuilderType
	log *zap.Logger
	now func() time.Time
}

func NewSQLIO(db *sql.DB, dialect Dialect, log *zap.Logger) *SQLIO {
	qb := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if dialect == DialectPostgres {
		qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return &SQLIO{
		db:  db,
		qb:  qb,
		log: log.Named("sqlio"),
		now: time.Now,
	}
}

func (s *SQLIO) Read(ctx context.Context, name string) ([]byte, error) {
	query, args, err := s.qb.Select("body").
		From(documentsTableName).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var body []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrDocumentNotFound
		}
		s.log.Error("Read", zap.String("q", query), zap.String("name", name), zap.Error(err))
		return nil, classify(err)
	}
	return body, nil
}

func (s *SQLIO) Write(ctx context.Context, name string, data []byte) error {
	query, args, err := s.qb.Insert(documentsTableName).
		Columns("name", "body", "updated_at").
		Values(name, string(data), s.now().UTC()).
		Suffix("ON CONFLICT (name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.log.Error("Write", zap.String("q", query), zap.String("name", name), zap.Error(err))
		return classify(err)
	}
	return nil
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
		return errors.Wrap(ErrNoSchema, pgErr.Message)
	}
	return err
}
