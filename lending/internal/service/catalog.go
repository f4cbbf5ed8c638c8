package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/Astemirdum/lending-service/pkg/validate"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const minReleaseYear = 1900

type BookParams struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	ISBN   string `json:"isbn" validate:"required"`
}

type CDParams struct {
	Title       string `json:"title" validate:"required"`
	Artist      string `json:"artist" validate:"required"`
	Genre       string `json:"genre"`
	TrackCount  int    `json:"trackCount" validate:"gt=0"`
	Publisher   string `json:"publisher"`
	ReleaseYear int    `json:"releaseYear" validate:"gte=1900"`
}

// Catalog manages the circulating books and CDs.
type Catalog struct {
	// mu holds the ISBN check and the save together.
	mu         sync.Mutex
	books      *repository.Books
	cds        *repository.CDs
	bookEngine *LoanEngine
	cdEngine   *LoanEngine
	validator  *validate.CustomValidator
	log        *zap.Logger
	now        func() time.Time
}

// NewCatalog takes the loan engines so deletes serialise with borrows.
func NewCatalog(books *repository.Books, cds *repository.CDs, bookEngine, cdEngine *LoanEngine, log *zap.Logger, opts ...Option) *Catalog {
	o := newOptions(opts)
	return &Catalog{
		books:      books,
		cds:        cds,
		bookEngine: bookEngine,
		cdEngine:   cdEngine,
		validator:  validate.NewCustomValidator(),
		log:        log.Named("catalog"),
		now:        o.now,
	}
}

// AddBook registers a book; ISBNs are unique.
func (c *Catalog) AddBook(ctx context.Context, p BookParams) (model.Book, error) {
	const op = "catalog.AddBook"
	p.Title, p.Author, p.ISBN = strings.TrimSpace(p.Title), strings.TrimSpace(p.Author), strings.TrimSpace(p.ISBN)
	if err := c.validator.Validate(p); err != nil {
		return model.Book{}, errs.Validation(op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.books.FindByISBN(p.ISBN); err == nil {
		return model.Book{}, errs.Policy(op, errors.Wrapf(errs.ErrDuplicate, "isbn %s", p.ISBN))
	}

	book, err := c.books.Save(ctx, model.NewBook(p.Title, p.Author, p.ISBN, c.now()))
	if err != nil {
		return model.Book{}, err
	}
	c.log.Info("book added", zap.String("id", book.ID), zap.String("isbn", book.ISBN))
	return book, nil
}

// AddCD registers a CD released between 1900 and the current year.
func (c *Catalog) AddCD(ctx context.Context, p CDParams) (model.CD, error) {
	const op = "catalog.AddCD"
	p.Title, p.Artist = strings.TrimSpace(p.Title), strings.TrimSpace(p.Artist)
	if err := c.validator.Validate(p); err != nil {
		return model.CD{}, errs.Validation(op, err)
	}
	now := c.now()
	if p.ReleaseYear > now.Year() {
		return model.CD{}, errs.Validation(op, errors.Errorf("release year %d is in the future", p.ReleaseYear))
	}

	cd, err := c.cds.Save(ctx, model.NewCD(model.NewCDParams{
		Title:       p.Title,
		Artist:      p.Artist,
		Genre:       strings.TrimSpace(p.Genre),
		TrackCount:  p.TrackCount,
		Publisher:   strings.TrimSpace(p.Publisher),
		ReleaseYear: p.ReleaseYear,
	}, now))
	if err != nil {
		return model.CD{}, err
	}
	c.log.Info("cd added", zap.String("id", cd.ID), zap.String("artist", cd.Artist))
	return cd, nil
}

func (c *Catalog) Book(id string) (model.Book, error) { return c.books.FindByID(id) }
func (c *Catalog) CD(id string) (model.CD, error)     { return c.cds.FindByID(id) }
func (c *Catalog) Books() []model.Book                { return c.books.FindAll() }
func (c *Catalog) CDs() []model.CD                    { return c.cds.FindAll() }

func (c *Catalog) SearchBooks(query string) []model.Book { return c.books.Search(query) }
func (c *Catalog) SearchCDs(query string) []model.CD     { return c.cds.Search(query) }
func (c *Catalog) CDsByArtist(artist string) []model.CD  { return c.cds.FindByArtist(artist) }
func (c *Catalog) CDsByGenre(genre string) []model.CD    { return c.cds.FindByGenre(genre) }

// Title falls back to the id for items no longer in the catalog.
func (c *Catalog) Title(media model.MediaType, id string) string {
	switch media {
	case model.MediaCD:
		if cd, err := c.cds.FindByID(id); err == nil {
			return cd.Title
		}
	case model.MediaBook:
		if b, err := c.books.FindByID(id); err == nil {
			return b.Title
		}
	}
	return id
}

// DeleteBook removes a book that is not on loan.
func (c *Catalog) DeleteBook(ctx context.Context, id string) error {
	return c.bookEngine.WithItemLock(func() error {
		if c.bookEngine.OnLoan(id) {
			return errs.Policy("catalog.DeleteBook", errs.ErrItemOnLoan)
		}
		return c.books.Delete(ctx, id)
	})
}

// DeleteCD removes a CD that is not on loan.
func (c *Catalog) DeleteCD(ctx context.Context, id string) error {
	return c.cdEngine.WithItemLock(func() error {
		if c.cdEngine.OnLoan(id) {
			return errs.Policy("catalog.DeleteCD", errs.ErrItemOnLoan)
		}
		return c.cds.Delete(ctx, id)
	})
}
