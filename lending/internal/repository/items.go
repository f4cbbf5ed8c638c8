package repository

import (
	"context"
	"strings"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	BookPrefix = "BOOK"
	CDPrefix   = "CD"
)

// Items adds availability handling to a store of circulating media.
type Items[T any, PT interface {
	*T
	Entity
	IsAvailable() bool
	SetAvailable(v bool)
}] struct {
	*Store[T, PT]
}

func (r *Items[T, PT]) Available(id string) (bool, error) {
	v, err := r.FindByID(id)
	if err != nil {
		return false, err
	}
	return PT(&v).IsAvailable(), nil
}

func (r *Items[T, PT]) SetAvailable(ctx context.Context, id string, available bool) error {
	_, err := r.Mutate(ctx, id, func(p PT) error {
		p.SetAvailable(available)
		return nil
	})
	return err
}

type Books struct {
	Items[model.Book, *model.Book]
}

func NewBooks(ctx context.Context, io DocumentIO, log *zap.Logger, opts ...StoreOption) *Books {
	return &Books{Items[model.Book, *model.Book]{
		NewStore[model.Book](ctx, io, BooksDocument, BookPrefix, log, opts...),
	}}
}

func (r *Books) FindByISBN(isbn string) (model.Book, error) {
	found := r.Filter(func(b *model.Book) bool { return b.ISBN == isbn })
	if len(found) == 0 {
		return model.Book{}, errs.NotFound(BooksDocument, errors.Wrap(errs.ErrNotFound, isbn))
	}
	return found[0], nil
}

// Search is a case-insensitive substring match on title, author and ISBN.
func (r *Books) Search(query string) []model.Book {
	q := strings.ToLower(strings.TrimSpace(query))
	return r.Filter(func(b *model.Book) bool {
		return contains(q, b.Title, b.Author, b.ISBN)
	})
}

type CDs struct {
	Items[model.CD, *model.CD]
}

func NewCDs(ctx context.Context, io DocumentIO, log *zap.Logger, opts ...StoreOption) *CDs {
	return &CDs{Items[model.CD, *model.CD]{
		NewStore[model.CD](ctx, io, CDsDocument, CDPrefix, log, opts...),
	}}
}

// Search is a case-insensitive substring match on title, artist and genre.
func (r *CDs) Search(query string) []model.CD {
	q := strings.ToLower(strings.TrimSpace(query))
	return r.Filter(func(c *model.CD) bool {
		return contains(q, c.Title, c.Artist, c.Genre)
	})
}

func (r *CDs) FindByArtist(artist string) []model.CD {
	return r.Filter(func(c *model.CD) bool { return strings.EqualFold(c.Artist, artist) })
}

func (r *CDs) FindByGenre(genre string) []model.CD {
	return r.Filter(func(c *model.CD) bool { return strings.EqualFold(c.Genre, genre) })
}

func contains(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
