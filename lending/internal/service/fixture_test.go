package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/model"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/Astemirdum/lending-service/lending/internal/service"
	"github.com/Astemirdum/lending-service/pkg/notify"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type outbox struct {
	mu   sync.Mutex
	msgs []notify.Email
}

func (o *outbox) Send(_ context.Context, msg notify.Email) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.msgs = append(o.msgs, msg)
	return nil
}

func (o *outbox) byKind(kind string) []notify.Email {
	o.mu.Lock()
	defer o.mu.Unlock()
	var res []notify.Email
	for _, m := range o.msgs {
		if m.Kind == kind {
			res = append(res, m)
		}
	}
	return res
}

// brokenIO fails writes of the listed documents.
type brokenIO struct {
	repository.DocumentIO
	mu     sync.Mutex
	broken map[string]bool
}

func (b *brokenIO) Write(ctx context.Context, name string, data []byte) error {
	b.mu.Lock()
	broken := b.broken[name]
	b.mu.Unlock()
	if broken {
		return errors.Errorf("write %s: device unavailable", name)
	}
	return b.DocumentIO.Write(ctx, name, data)
}

func (b *brokenIO) breakDoc(name string) {
	b.mu.Lock()
	b.broken[name] = true
	b.mu.Unlock()
}

type fixture struct {
	ctx   context.Context
	svc   *service.Service
	clock *testClock
	mail  *outbox
	io    *brokenIO
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	f := &fixture{
		ctx:   context.Background(),
		clock: &testClock{now: t0},
		mail:  &outbox{},
		io:    &brokenIO{DocumentIO: repository.NewBlobIO(bucket), broken: map[string]bool{}},
	}
	f.svc = service.NewService(f.ctx, f.io, f.mail,
		service.Settings{BcryptCost: bcrypt.MinCost},
		zap.NewNop(),
		service.WithClock(f.clock.Now),
	)
	return f
}

func (f *fixture) user(t *testing.T, email string) model.User {
	t.Helper()
	u, err := f.svc.Register(f.ctx, service.RegisterParams{
		Name:     "Reader",
		Email:    email,
		Password: "secret1",
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) book(t *testing.T, isbn string) model.Book {
	t.Helper()
	b, err := f.svc.AddBook(f.ctx, service.BookParams{Title: "Book " + isbn, Author: "Author", ISBN: isbn})
	require.NoError(t, err)
	return b
}

func (f *fixture) cd(t *testing.T, title string) model.CD {
	t.Helper()
	cd, err := f.svc.AddCD(f.ctx, service.CDParams{
		Title: title, Artist: "Artist", Genre: "Jazz", TrackCount: 8, ReleaseYear: 1999,
	})
	require.NoError(t, err)
	return cd
}

const day = 24 * time.Hour
