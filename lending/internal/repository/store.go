package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Entity is implemented by the pointer types of every persisted record.
type Entity interface {
	GetID() string
	SetID(id string)
	Touch(now time.Time)
}

// Store is a keyed collection persisted as a single document. Every mutation
// rewrites the whole document and is undone in memory when the write fails.
// Values are copied in and out, callers never share state with the store.
type Store[T any, PT interface {
	*T
	Entity
}] struct {
	mu     sync.RWMutex
	io     DocumentIO
	name   string
	prefix string
	items  map[string]T
	log    *zap.Logger
	now    func() time.Time
}

type StoreOption func(*storeOptions)

type storeOptions struct {
	now func() time.Time
}

func WithClock(now func() time.Time) StoreOption {
	return func(o *storeOptions) {
		o.now = now
	}
}

// NewStore loads the named document. An absent, empty or corrupt document
// yields an empty collection; an absent one is initialised to {}.
func NewStore[T any, PT interface {
	*T
	Entity
}](ctx context.Context, io DocumentIO, name, prefix string, log *zap.Logger, opts ...StoreOption) *Store[T, PT] {
	o := storeOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Store[T, PT]{
		io:     io,
		name:   name,
		prefix: prefix,
		items:  make(map[string]T),
		log:    log.Named("store").With(zap.String("document", name)),
		now:    o.now,
	}
	s.load(ctx)
	return s
}

func (s *Store[T, PT]) load(ctx context.Context) {
	data, err := s.io.Read(ctx, s.name)
	switch {
	case errors.Is(err, errs.ErrDocumentNotFound):
		s.log.Info("document absent, initialising")
		if err := s.io.Write(ctx, s.name, []byte("{}")); err != nil {
			s.log.Warn("initialise document", zap.Error(err))
		}
		return
	case err != nil:
		s.log.Error("read document, starting empty", zap.Error(err))
		return
	case len(strings.TrimSpace(string(data))) == 0:
		s.log.Warn("document empty")
		return
	}

	items := make(map[string]T)
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Error("document corrupt, starting empty", zap.Error(err))
		return
	}
	for id, v := range items {
		// the key is authoritative
		PT(&v).SetID(id)
		items[id] = v
	}
	s.items = items
	s.log.Debug("document loaded", zap.Int("count", len(items)))
}

// Save inserts or replaces v, assigning an id when it has none.
func (s *Store[T, PT]) Save(ctx context.Context, v T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := PT(&v)
	if p.GetID() == "" {
		p.SetID(s.newID())
	}
	p.Touch(s.now())

	return v, s.put(ctx, v)
}

// Update replaces an existing record; errs.ErrNotFound if the id is unknown.
func (s *Store[T, PT]) Update(ctx context.Context, v T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := PT(&v)
	if _, ok := s.items[p.GetID()]; !ok {
		var zero T
		return zero, s.notFound(p.GetID())
	}
	p.Touch(s.now())

	return v, s.put(ctx, v)
}

// Mutate applies fn to a copy of the record under the write lock and stores
// the result. Nothing is written when fn fails.
func (s *Store[T, PT]) Mutate(ctx context.Context, id string, fn func(PT) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items[id]
	if !ok {
		var zero T
		return zero, s.notFound(id)
	}
	p := PT(&v)
	if err := fn(p); err != nil {
		var zero T
		return zero, err
	}
	p.SetID(id)
	p.Touch(s.now())

	return v, s.put(ctx, v)
}

func (s *Store[T, PT]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.items[id]
	if !ok {
		return s.notFound(id)
	}
	delete(s.items, id)
	if err := s.persist(ctx); err != nil {
		s.items[id] = prev
		return err
	}
	return nil
}

func (s *Store[T, PT]) FindByID(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[id]
	if !ok {
		var zero T
		return zero, s.notFound(id)
	}
	return v, nil
}

// FindAll returns every record ordered by id.
func (s *Store[T, PT]) FindAll() []T {
	return s.Filter(func(PT) bool { return true })
}

// Filter is a linear scan, ordered by id.
func (s *Store[T, PT]) Filter(pred func(PT) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	res := make([]T, 0)
	for _, id := range ids {
		v := s.items[id]
		if pred(PT(&v)) {
			res = append(res, v)
		}
	}
	return res
}

func (s *Store[T, PT]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// put must be called with mu held.
func (s *Store[T, PT]) put(ctx context.Context, v T) error {
	id := PT(&v).GetID()
	prev, had := s.items[id]
	s.items[id] = v
	if err := s.persist(ctx); err != nil {
		if had {
			s.items[id] = prev
		} else {
			delete(s.items, id)
		}
		return err
	}
	return nil
}

func (s *Store[T, PT]) persist(ctx context.Context) error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return errs.Persistence("marshal "+s.name, err)
	}
	if err := s.io.Write(ctx, s.name, data); err != nil {
		s.log.Error("persist", zap.Error(err))
		return errs.Persistence("persist "+s.name, err)
	}
	return nil
}

func (s *Store[T, PT]) notFound(id string) error {
	return errs.NotFound(s.name, errors.Wrap(errs.ErrNotFound, id))
}

// newID returns <PREFIX>_<unix millis>_<random>, unique within the store.
func (s *Store[T, PT]) newID() string {
	for {
		rnd := strings.SplitN(uuid.NewString(), "-", 2)[0]
		id := fmt.Sprintf("%s_%d_%s", s.prefix, s.now().UnixMilli(), rnd)
		if _, taken := s.items[id]; !taken {
			return id
		}
	}
}
