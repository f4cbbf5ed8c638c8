package service_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrow_AvailableBook(t *testing.T) {
	f := newFixture(t)
	u1 := f.user(t, "u1@example.com")
	b1 := f.book(t, "111")

	loan, err := f.svc.Borrow(f.ctx, model.MediaBook, u1.ID, b1.ID)
	require.NoError(t, err)
	require.Contains(t, loan.ID, "LOAN_")
	require.Equal(t, t0.Add(28*day), loan.DueDate)
	require.False(t, loan.Returned)

	got, err := f.svc.Book(b1.ID)
	require.NoError(t, err)
	require.False(t, got.Available)

	t.Run("second borrower is refused", func(t *testing.T) {
		u2 := f.user(t, "u2@example.com")
		_, err := f.svc.Borrow(f.ctx, model.MediaBook, u2.ID, b1.ID)
		require.ErrorIs(t, err, errs.ErrItemUnavailable)
		require.Equal(t, errs.KindPolicy, errs.KindOf(err))
		require.Len(t, f.svc.UserLoans(u2.ID).Books, 0)
	})
}

func TestBorrow_PreconditionOrder(t *testing.T) {
	f := newFixture(t)
	active := f.user(t, "active@example.com")
	inactive := f.user(t, "inactive@example.com")
	_, err := f.svc.Deactivate(f.ctx, inactive.ID)
	require.NoError(t, err)

	taken := f.book(t, "1")
	free := f.book(t, "2")
	_, err = f.svc.Borrow(f.ctx, model.MediaBook, f.user(t, "holder@example.com").ID, taken.ID)
	require.NoError(t, err)

	tests := []struct {
		name     string
		userID   string
		itemID   string
		wantErr  error
		wantKind errs.Kind
	}{
		{name: "blank user", userID: "", itemID: free.ID, wantErr: errs.ErrBlankID, wantKind: errs.KindValidation},
		{name: "unknown user", userID: "USER_0_x", itemID: free.ID, wantErr: errs.ErrNotFound, wantKind: errs.KindNotFound},
		{name: "inactive user wins over unavailable item", userID: inactive.ID, itemID: taken.ID, wantErr: errs.ErrUserInactive, wantKind: errs.KindPolicy},
		{name: "unknown item", userID: active.ID, itemID: "BOOK_0_x", wantErr: errs.ErrNotFound, wantKind: errs.KindNotFound},
		{name: "cd id against book engine", userID: active.ID, itemID: "CD_0_x", wantErr: errs.ErrNotFound, wantKind: errs.KindNotFound},
		{name: "unavailable item", userID: active.ID, itemID: taken.ID, wantErr: errs.ErrItemUnavailable, wantKind: errs.KindPolicy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Borrow(f.ctx, model.MediaBook, tt.userID, tt.itemID)
			require.ErrorIs(t, err, tt.wantErr)
			require.Equal(t, tt.wantKind, errs.KindOf(err))
		})
	}

	ok, err := f.svc.Catalog().Book(free.ID)
	require.NoError(t, err)
	require.True(t, ok.Available)
}

func TestBorrow_UnpaidFineBlocksAnyMedia(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "u@example.com")
	b := f.book(t, "1")

	// an unpaid CD fine blocks book borrowing too
	_, err := f.svc.Ledger(model.MediaCD).Create(f.ctx, u.ID, "CDLOAN_1", decimal.NewFromInt(5))
	require.NoError(t, err)

	_, err = f.svc.Borrow(f.ctx, model.MediaBook, u.ID, b.ID)
	require.ErrorIs(t, err, errs.ErrUnpaidFines)

	got, _ := f.svc.Book(b.ID)
	require.True(t, got.Available)
}

func TestBorrow_OverdueLoanBlocksSameMedia(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "u@example.com")
	b1, b2 := f.book(t, "1"), f.book(t, "2")
	cd := f.cd(t, "Blue")

	_, err := f.svc.Borrow(f.ctx, model.MediaBook, u.ID, b1.ID)
	require.NoError(t, err)
	f.clock.Advance(29 * day)
	require.True(t, f.svc.Engine(model.MediaBook).HasOverdue(u.ID))
	require.Len(t, f.svc.OverdueLoans(model.MediaBook), 1)

	_, err = f.svc.Borrow(f.ctx, model.MediaBook, u.ID, b2.ID)
	require.ErrorIs(t, err, errs.ErrOverdueLoans)

	// the CD engine only looks at CD loans
	_, err = f.svc.Borrow(f.ctx, model.MediaCD, u.ID, cd.ID)
	require.NoError(t, err)
}

func TestReturn_OverdueCDIssuesFine(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "u@example.com")
	cd := f.cd(t, "Blue")

	loan, err := f.svc.Borrow(f.ctx, model.MediaCD, u.ID, cd.ID)
	require.NoError(t, err)
	require.Contains(t, loan.ID, "CDLOAN_")
	require.Equal(t, t0.Add(7*day), loan.DueDate)

	f.clock.Advance(10 * day) // due date is 3 days in the past

	returned, err := f.svc.Return(f.ctx, model.MediaCD, loan.ID)
	require.NoError(t, err)
	require.True(t, returned.Returned)
	require.NotNil(t, returned.ReturnDate)
	require.Equal(t, 3, returned.OverdueDays(f.clock.Now()))
	require.True(t, returned.FineAmount.Equal(decimal.NewFromInt(60)))

	fines := f.svc.UserFines(u.ID)
	require.Len(t, fines.CDs, 1)
	require.Len(t, fines.Books, 0)
	require.Contains(t, fines.CDs[0].ID, "CDFINE_")
	require.Equal(t, loan.ID, fines.CDs[0].LoanID)
	require.True(t, fines.CDs[0].Amount.Equal(decimal.NewFromInt(60)))
	require.True(t, fines.TotalUnpaid.Equal(decimal.NewFromInt(60)))

	got, err := f.svc.CD(cd.ID)
	require.NoError(t, err)
	require.True(t, got.Available)
}

func TestReturn_BookHoursLateIsOneDay(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "u@example.com")
	b := f.book(t, "1")

	loan, err := f.svc.Borrow(f.ctx, model.MediaBook, u.ID, b.ID)
	require.NoError(t, err)
	f.clock.Advance(28*day + 5*time.Hour)

	returned, err := f.svc.Return(f.ctx, model.MediaBook, loan.ID)
	require.NoError(t, err)
	require.True(t, returned.FineAmount.Equal(decimal.NewFromInt(10)))
}

func TestReturn_OnTimeNoFine(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "u@example.com")
	b := f.book(t, "1")

	loan, err := f.svc.Borrow(f.ctx, model.MediaBook, u.ID, b.ID)
	require.NoError(t, err)
	f.clock.Advance(3 * day)

	returned, err := f.svc.Return(f.ctx, model.MediaBook, loan.ID)
	require.NoError(t, err)
	require.True(t, returned.FineAmount.IsZero())
	require.Empty(t, f.svc.UserFines(u.ID).Books)

	t.Run("second return is refused", func(t *testing.T) {
		_, err := f.svc.Return(f.ctx, model.MediaBook, loan.ID)
		require.ErrorIs(t, err, errs.ErrAlreadyReturned)
		require.Equal(t, errs.KindPolicy, errs.KindOf(err))
		require.Empty(t, f.svc.UserFines(u.ID).Books)
		got, _ := f.svc.Loan(model.MediaBook, loan.ID)
		require.Equal(t, returned.ReturnDate, got.ReturnDate)
	})

	t.Run("unknown loan", func(t *testing.T) {
		_, err := f.svc.Return(f.ctx, model.MediaBook, "LOAN_0_x")
		require.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}

func TestBorrow_CompensatesFailedAvailabilityWrite(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "u@example.com")
	b := f.book(t, "1")

	f.io.breakDoc(repository.BooksDocument)

	_, err := f.svc.Borrow(f.ctx, model.MediaBook, u.ID, b.ID)
	require.Equal(t, errs.KindPersistence, errs.KindOf(err))

	require.Empty(t, f.svc.UserLoans(u.ID).Books)
	got, _ := f.svc.Book(b.ID)
	require.True(t, got.Available)
}

func TestReturn_FineFailureIsReported(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "u@example.com")
	cd := f.cd(t, "Blue")

	loan, err := f.svc.Borrow(f.ctx, model.MediaCD, u.ID, cd.ID)
	require.NoError(t, err)
	f.clock.Advance(9 * day)
	f.io.breakDoc(repository.CDFinesDocument)

	returned, err := f.svc.Return(f.ctx, model.MediaCD, loan.ID)
	require.ErrorIs(t, err, errs.ErrFineNotIssued)
	require.Equal(t, errs.KindPersistence, errs.KindOf(err))
	require.True(t, returned.Returned)

	got, _ := f.svc.CD(cd.ID)
	require.True(t, got.Available)
	require.Empty(t, f.svc.UserFines(u.ID).CDs)
}

func TestAvailabilityTracksActiveLoans(t *testing.T) {
	f := newFixture(t)
	users := []string{
		f.user(t, "a@example.com").ID,
		f.user(t, "b@example.com").ID,
	}
	books := []model.Book{f.book(t, "1"), f.book(t, "2"), f.book(t, "3")}

	var loans []model.Loan
	for i, b := range books {
		l, err := f.svc.Borrow(f.ctx, model.MediaBook, users[i%2], b.ID)
		require.NoError(t, err)
		loans = append(loans, l)
	}
	_, err := f.svc.Return(f.ctx, model.MediaBook, loans[1].ID)
	require.NoError(t, err)
	_, err = f.svc.Borrow(f.ctx, model.MediaBook, users[0], books[1].ID)
	require.NoError(t, err)
	_, err = f.svc.Return(f.ctx, model.MediaBook, loans[2].ID)
	require.NoError(t, err)

	engine := f.svc.Engine(model.MediaBook)
	for _, b := range f.svc.Catalog().Books() {
		assert.Equal(t, !engine.OnLoan(b.ID), b.Available, b.ID)
	}
}

func TestBorrow_ConcurrentCallersOneWinner(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, "1")
	var ids []string
	for i := 0; i < 8; i++ {
		ids = append(ids, f.user(t, string(rune('a'+i))+"@example.com").ID)
	}

	var (
		wg  sync.WaitGroup
		won atomic.Int32
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := f.svc.Borrow(f.ctx, model.MediaBook, id, b.ID); err == nil {
				won.Add(1)
			}
		}(id)
	}
	wg.Wait()

	require.Equal(t, int32(1), won.Load())
	require.Len(t, f.svc.Engine(model.MediaBook).ActiveLoans(), 1)
}
