package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Set is the read side of one entity collection.
// Services depend on this interface, not on the concrete GORM implementation,
// so they can be tested against in-memory stubs.
type Set[T any] interface {
	Count(ctx context.Context) (int64, error)
	// Page returns at most limit rows after skipping offset, in the set's
	// explicit order.
	Page(ctx context.Context, offset, limit int) ([]T, error)
	All(ctx context.Context) ([]T, error)
	// FindByKey returns nil, nil when no row has the key.
	FindByKey(ctx context.Context, key any) (*T, error)
}

// UnitOfWork collects inserts and deletes and commits them together.
type UnitOfWork interface {
	Add(entity any)
	Remove(entity any)
	// Persist commits every scheduled change in one transaction. Either all
	// of them land or none does.
	Persist(ctx context.Context) error
}

// Store hands out a fresh UnitOfWork per service call.
type Store interface {
	Begin() UnitOfWork
}

// ── GORM Set ─────────────────────────────────────────────────────────────────

type gormSet[T any] struct {
	db       *gorm.DB
	key      string
	order    []clause.OrderByColumn
	preloads []string
}

// Option configures a GORM-backed Set.
type Option func(*setOptions)

type setOptions struct {
	key      string
	order    []clause.OrderByColumn
	preloads []string
}

// WithKey sets the primary key column used by FindByKey and the default order.
func WithKey(column string) Option {
	return func(o *setOptions) { o.key = column }
}

// WithOrder replaces the default primary-key ascending order.
func WithOrder(column string, desc bool) Option {
	return func(o *setOptions) {
		o.order = append(o.order, clause.OrderByColumn{
			Column: clause.Column{Table: clause.CurrentTable, Name: column},
			Desc:   desc,
		})
	}
}

// WithPreload eager-loads an association (GORM dotted path) on Page, All and FindByKey.
func WithPreload(association string) Option {
	return func(o *setOptions) { o.preloads = append(o.preloads, association) }
}

// NewSet builds a Set over the table of T. Every range query is ordered; when
// no WithOrder is given the key column ascending is used.
func NewSet[T any](db *gorm.DB, opts ...Option) Set[T] {
	o := setOptions{key: "id"}
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.order) == 0 {
		o.order = []clause.OrderByColumn{{
			Column: clause.Column{Table: clause.CurrentTable, Name: o.key},
		}}
	}
	return &gormSet[T]{db: db, key: o.key, order: o.order, preloads: o.preloads}
}

func (s *gormSet[T]) query(ctx context.Context) *gorm.DB {
	q := s.db.WithContext(ctx).Model(new(T))
	for _, p := range s.preloads {
		q = q.Preload(p)
	}
	return q
}

func (s *gormSet[T]) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(new(T)).Count(&total).Error
	return total, err
}

func (s *gormSet[T]) Page(ctx context.Context, offset, limit int) ([]T, error) {
	var rows []T
	err := s.query(ctx).
		Clauses(clause.OrderBy{Columns: s.order}).
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (s *gormSet[T]) All(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	err := s.query(ctx).
		Clauses(clause.OrderBy{Columns: s.order}).
		Find(&rows).Error
	return rows, err
}

func (s *gormSet[T]) FindByKey(ctx context.Context, key any) (*T, error) {
	var row T
	err := s.query(ctx).
		Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: s.key}, Value: key}).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ── GORM Store / UnitOfWork ──────────────────────────────────────────────────

type gormStore struct{ db *gorm.DB }

// NewStore returns a Store whose units commit through db.
func NewStore(db *gorm.DB) Store { return &gormStore{db: db} }

func (s *gormStore) Begin() UnitOfWork { return &gormUnitOfWork{db: s.db} }

type change struct {
	entity any
	remove bool
}

// gormUnitOfWork is used by a single goroutine for the span of one call.
type gormUnitOfWork struct {
	db      *gorm.DB
	pending []change
}

func (u *gormUnitOfWork) Add(entity any) {
	u.pending = append(u.pending, change{entity: entity})
}

func (u *gormUnitOfWork) Remove(entity any) {
	u.pending = append(u.pending, change{entity: entity, remove: true})
}

func (u *gormUnitOfWork) Persist(ctx context.Context) error {
	if len(u.pending) == 0 {
		return nil
	}
	pending := u.pending
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range pending {
			if c.remove {
				// Select(clause.Associations) is deliberately not used: removing
				// a row never cascades to its references.
				if err := tx.Delete(c.entity).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Omit(clause.Associations).Create(c.entity).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		u.pending = nil
	}
	return err
}
