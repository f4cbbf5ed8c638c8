package repository_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBooks_Queries(t *testing.T) {
	ctx := context.Background()
	books := repository.NewBooks(ctx, newBlobIO(t), zap.NewNop())
	for _, b := range []model.Book{
		model.NewBook("The Hobbit", "J.R.R. Tolkien", "111", now),
		model.NewBook("Dune", "Frank Herbert", "222", now),
		model.NewBook("Children of Dune", "Frank Herbert", "333", now),
	} {
		_, err := books.Save(ctx, b)
		require.NoError(t, err)
	}

	require.Len(t, books.Search("dune"), 2)
	require.Len(t, books.Search("TOLKIEN"), 1)
	require.Len(t, books.Search("33"), 1)
	require.Len(t, books.Search("nothing"), 0)

	b, err := books.FindByISBN("222")
	require.NoError(t, err)
	require.Equal(t, "Dune", b.Title)
	_, err = books.FindByISBN("999")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCDs_Queries(t *testing.T) {
	ctx := context.Background()
	cds := repository.NewCDs(ctx, newBlobIO(t), zap.NewNop())
	for _, p := range []model.NewCDParams{
		{Title: "Kind of Blue", Artist: "Miles Davis", Genre: "Jazz", TrackCount: 5, ReleaseYear: 1959},
		{Title: "Bitches Brew", Artist: "Miles Davis", Genre: "Fusion", TrackCount: 6, ReleaseYear: 1970},
		{Title: "OK Computer", Artist: "Radiohead", Genre: "Rock", TrackCount: 12, ReleaseYear: 1997},
	} {
		_, err := cds.Save(ctx, model.NewCD(p, now))
		require.NoError(t, err)
	}

	require.Len(t, cds.FindByArtist("miles davis"), 2)
	require.Len(t, cds.FindByGenre("ROCK"), 1)
	require.Len(t, cds.Search("jazz"), 1)
	require.Len(t, cds.Search("o"), 3)
}

func TestUsers_FindByEmail(t *testing.T) {
	ctx := context.Background()
	users := repository.NewUsers(ctx, newBlobIO(t), zap.NewNop())
	u, err := users.Save(ctx, model.NewUser("Ann", "Ann@Example.com", "h", model.RoleUser, now))
	require.NoError(t, err)
	require.Contains(t, u.ID, "USER_")

	got, err := users.FindByEmail("ann@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = users.FindByEmail("bob@example.com")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestLoansAndFines_SeparateDocuments(t *testing.T) {
	ctx := context.Background()
	io := newBlobIO(t)

	bookLoans := repository.NewLoans(ctx, io, model.MediaBook, zap.NewNop())
	cdLoans := repository.NewLoans(ctx, io, model.MediaCD, zap.NewNop())

	active, err := bookLoans.Save(ctx, model.NewLoan("u1", "b1", model.MediaBook, now.AddDate(0, 0, -30)))
	require.NoError(t, err)
	require.Contains(t, active.ID, "LOAN_")

	returned := model.NewLoan("u1", "b2", model.MediaBook, now)
	returned.MarkReturned(now, decimal.Zero)
	_, err = bookLoans.Save(ctx, returned)
	require.NoError(t, err)

	require.Equal(t, 0, cdLoans.Len())
	require.Len(t, bookLoans.FindByUserID("u1"), 2)
	require.Len(t, bookLoans.FindActive(), 1)
	require.Len(t, bookLoans.FindActiveByItemID("b1"), 1)
	require.Len(t, bookLoans.FindByItemID("b2"), 1)
	require.Len(t, bookLoans.FindOverdue(now), 1)
	require.Len(t, bookLoans.FindOverdueByUserID("u2", now), 0)

	cdFines := repository.NewFines(ctx, io, model.MediaCD, zap.NewNop())
	f, err := cdFines.Save(ctx, model.NewFine("u1", "CDLOAN_1", decimal.NewFromInt(60), now))
	require.NoError(t, err)
	require.Contains(t, f.ID, "CDFINE_")
	require.Len(t, cdFines.FindUnpaidByUserID("u1"), 1)
	require.Len(t, cdFines.FindByLoanID("CDLOAN_1"), 1)
	require.Len(t, cdFines.FindUnpaid(), 1)
	require.Len(t, cdFines.FindByUserID("u2"), 0)

	bookFines := repository.NewFines(ctx, io, model.MediaBook, zap.NewNop())
	require.Equal(t, 0, bookFines.Len())
}
