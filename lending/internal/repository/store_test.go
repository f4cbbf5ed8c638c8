package repository_test

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gocloud.dev/blob/memblob"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func newBlobIO(t *testing.T) *repository.BlobIO {
	t.Helper()
	io := repository.NewBlobIO(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = io.Close() })
	return io
}

// flakyIO fails every write while broken is set.
type flakyIO struct {
	repository.DocumentIO
	mu     sync.Mutex
	broken bool
}

func (f *flakyIO) Write(ctx context.Context, name string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.broken {
		return errors.New("disk full")
	}
	return f.DocumentIO.Write(ctx, name, data)
}

func (f *flakyIO) setBroken(v bool) {
	f.mu.Lock()
	f.broken = v
	f.mu.Unlock()
}

func TestStore_InitialisesAbsentDocument(t *testing.T) {
	ctx := context.Background()
	io := newBlobIO(t)

	books := repository.NewBooks(ctx, io, zap.NewNop())
	require.Equal(t, 0, books.Len())

	data, err := io.Read(ctx, repository.BooksDocument)
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(data))
}

func TestStore_CorruptOrEmptyDocumentLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	for name, body := range map[string]string{
		"empty":   "",
		"blank":   "  \n",
		"corrupt": `{"BOOK_1": {"title": `,
		"array":   `[1,2,3]`,
	} {
		t.Run(name, func(t *testing.T) {
			io := newBlobIO(t)
			require.NoError(t, io.Write(ctx, repository.BooksDocument, []byte(body)))

			books := repository.NewBooks(ctx, io, zap.NewNop())
			require.Equal(t, 0, books.Len())
			require.Empty(t, books.FindAll())
		})
	}
}

func TestStore_SaveAssignsIDAndPersists(t *testing.T) {
	ctx := context.Background()
	io := newBlobIO(t)
	books := repository.NewBooks(ctx, io, zap.NewNop(), repository.WithClock(clock))

	b, err := books.Save(ctx, model.NewBook("Dune", "Herbert", "978-0441013593", now.Add(-time.Hour)))
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^BOOK_\d+_[0-9a-f]{8}$`), b.ID)
	require.Equal(t, now, b.UpdatedAt)
	require.True(t, !b.UpdatedAt.Before(b.CreatedAt))

	reloaded := repository.NewBooks(ctx, io, zap.NewNop())
	got, err := reloaded.FindByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.Title, got.Title)
	assert.Equal(t, b.ID, got.ID)
	assert.True(t, got.Available)
}

func TestStore_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	// a frozen clock forces every id to share its timestamp
	users := repository.NewUsers(ctx, newBlobIO(t), zap.NewNop(), repository.WithClock(clock))

	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		u, err := users.Save(ctx, model.User{Name: "u"})
		require.NoError(t, err)
		_, dup := seen[u.ID]
		require.False(t, dup, u.ID)
		seen[u.ID] = struct{}{}
	}
	require.Equal(t, 200, users.Len())
}

func TestStore_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	books := repository.NewBooks(ctx, newBlobIO(t), zap.NewNop())

	_, err := books.Update(ctx, model.Book{ID: "BOOK_missing"})
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.Equal(t, errs.KindNotFound, errs.KindOf(err))
	require.Equal(t, 0, books.Len())

	b, err := books.Save(ctx, model.NewBook("T", "A", "1", now))
	require.NoError(t, err)

	b.Title = "T2"
	_, err = books.Update(ctx, b)
	require.NoError(t, err)
	got, err := books.FindByID(b.ID)
	require.NoError(t, err)
	require.Equal(t, "T2", got.Title)

	require.NoError(t, books.Delete(ctx, b.ID))
	require.ErrorIs(t, books.Delete(ctx, b.ID), errs.ErrNotFound)
	_, err = books.FindByID(b.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	books := repository.NewBooks(ctx, newBlobIO(t), zap.NewNop())
	b, err := books.Save(ctx, model.NewBook("T", "A", "1", now))
	require.NoError(t, err)

	got, _ := books.FindByID(b.ID)
	got.Available = false

	ok, err := books.Available(b.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestStore_RollbackOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	io := &flakyIO{DocumentIO: newBlobIO(t)}
	books := repository.NewBooks(ctx, io, zap.NewNop())

	b, err := books.Save(ctx, model.NewBook("T", "A", "1", now))
	require.NoError(t, err)

	io.setBroken(true)

	_, err = books.Save(ctx, model.NewBook("T2", "A", "2", now))
	require.Error(t, err)
	require.Equal(t, errs.KindPersistence, errs.KindOf(err))
	require.Equal(t, 1, books.Len())

	err = books.SetAvailable(ctx, b.ID, false)
	require.Equal(t, errs.KindPersistence, errs.KindOf(err))
	ok, err := books.Available(b.ID)
	require.NoError(t, err)
	require.True(t, ok)

	require.Error(t, books.Delete(ctx, b.ID))
	require.Equal(t, 1, books.Len())

	io.setBroken(false)
	require.NoError(t, books.SetAvailable(ctx, b.ID, false))
	ok, _ = books.Available(b.ID)
	require.False(t, ok)
}

func TestStore_MutateErrorLeavesRecord(t *testing.T) {
	ctx := context.Background()
	fines := repository.NewFines(ctx, newBlobIO(t), model.MediaBook, zap.NewNop())
	f, err := fines.Save(ctx, model.Fine{UserID: "u", LoanID: "l"})
	require.NoError(t, err)
	require.Contains(t, f.ID, "FINE_")

	boom := errors.New("boom")
	_, err = fines.Mutate(ctx, f.ID, func(f *model.Fine) error {
		f.Paid = true
		return boom
	})
	require.ErrorIs(t, err, boom)
	got, _ := fines.FindByID(f.ID)
	require.False(t, got.Paid)
}

func TestStore_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	io := newBlobIO(t)
	loans := repository.NewLoans(ctx, io, model.MediaCD, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := loans.Save(ctx, model.NewLoan("u", "i", model.MediaCD, now))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	require.Equal(t, 20, loans.Len())

	reloaded := repository.NewLoans(ctx, io, model.MediaCD, zap.NewNop())
	require.Equal(t, 20, reloaded.Len())
	for _, l := range reloaded.FindAll() {
		require.Contains(t, l.ID, "CDLOAN_")
	}
}
