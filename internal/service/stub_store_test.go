package service_test

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"packingapp/internal/repository"
)

// ── In-memory Store / Set stub ───────────────────────────────────────────────
//
// Rows are kept per entity type in insertion order. Integer ids are assigned
// on Add the way a serial column would.

type memStore struct {
	mu     sync.Mutex
	tables map[string][]any
	nextID map[string]int

	// failPersist, when set, makes every Persist fail without applying anything.
	failPersist error
	commits     int
}

func newMemStore() *memStore {
	return &memStore{tables: make(map[string][]any), nextID: make(map[string]int)}
}

func tableOf(v any) string { return fmt.Sprintf("%T", v) }

func idOf(v any) any {
	return reflect.ValueOf(v).Elem().FieldByName("ID").Interface()
}

// seed inserts rows directly, bypassing units of work.
func (s *memStore) seed(entities ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entities {
		s.insert(e)
	}
}

func (s *memStore) insert(e any) {
	t := tableOf(e)
	id := reflect.ValueOf(e).Elem().FieldByName("ID")
	if id.Kind() == reflect.Int {
		if id.Int() == 0 {
			s.nextID[t]++
			id.SetInt(int64(s.nextID[t]))
		} else if int(id.Int()) > s.nextID[t] {
			s.nextID[t] = int(id.Int())
		}
	}
	s.tables[t] = append(s.tables[t], e)
}

func (s *memStore) remove(e any) {
	t := tableOf(e)
	rows := s.tables[t]
	for i, r := range rows {
		if idOf(r) == idOf(e) {
			s.tables[t] = append(rows[:i:i], rows[i+1:]...)
			return
		}
	}
}

func (s *memStore) Begin() repository.UnitOfWork { return &memUnit{store: s} }

type memChange struct {
	entity any
	remove bool
}

type memUnit struct {
	store   *memStore
	pending []memChange
}

func (u *memUnit) Add(e any) { u.pending = append(u.pending, memChange{entity: e}) }
func (u *memUnit) Remove(e any) { u.pending = append(u.pending, memChange{entity: e, remove: true}) }

func (u *memUnit) Persist(context.Context) error {
	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPersist != nil {
		return s.failPersist
	}
	for _, c := range u.pending {
		if c.remove {
			s.remove(c.entity)
		} else {
			s.insert(c.entity)
		}
	}
	u.pending = nil
	s.commits++
	return nil
}

type memSet[T any] struct{ store *memStore }

func newMemSet[T any](s *memStore) repository.Set[T] { return memSet[T]{store: s} }

func (m memSet[T]) rows() []*T {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	raw := m.store.tables[tableOf(new(T))]
	out := make([]*T, len(raw))
	for i, r := range raw {
		out[i] = r.(*T)
	}
	return out
}

func (m memSet[T]) Count(context.Context) (int64, error) {
	return int64(len(m.rows())), nil
}

func (m memSet[T]) Page(_ context.Context, offset, limit int) ([]T, error) {
	rows := m.rows()
	var out []T
	for i := offset; i < len(rows) && len(out) < limit; i++ {
		out = append(out, *rows[i])
	}
	return out, nil
}

func (m memSet[T]) All(context.Context) ([]T, error) {
	rows := m.rows()
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	return out, nil
}

func (m memSet[T]) FindByKey(_ context.Context, key any) (*T, error) {
	for _, r := range m.rows() {
		if idOf(r) == key {
			return r, nil
		}
	}
	return nil, nil
}

// failingSet returns err from every call.
type failingSet[T any] struct{ err error }

func (f failingSet[T]) Count(context.Context) (int64, error) { return 0, f.err }
func (f failingSet[T]) Page(context.Context, int, int) ([]T, error) { return nil, f.err }
func (f failingSet[T]) All(context.Context) ([]T, error) { return nil, f.err }
func (f failingSet[T]) FindByKey(context.Context, any) (*T, error) { return nil, f.err }

var _ repository.Store = (*memStore)(nil)

// pageSpy records every Page call made through the wrapped set.
type pageSpy[T any] struct {
	repository.Set[T]
	offsets []int
}

func (p *pageSpy[T]) Page(ctx context.Context, offset, limit int) ([]T, error) {
	p.offsets = append(p.offsets, offset)
	return p.Set.Page(ctx, offset, limit)
}
