package service

import (
	"context"
	"errors"
	"math"
	"time"

	"packingapp/internal/dto"
	"packingapp/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ErrPaginacionInvalida is returned when page number or page size is below 1.
var ErrPaginacionInvalida = errors.New("el número de página y el tamaño de página deben ser mayores a cero")

// formatoFecha renders dates as dd/MM/yyyy.
const formatoFecha = "02/01/2006"

// paginar counts the set, fetches one ordered page and projects every row.
// recurso only names the collection in log lines.
func paginar[T, D any](
	ctx context.Context,
	set repository.Set[T],
	recurso string,
	pageNumber, pageSize int,
	project func(T) D,
) (dto.PaginatedResult[D], error) {
	if pageNumber < 1 || pageSize < 1 {
		return dto.PaginatedResult[D]{}, ErrPaginacionInvalida
	}

	total, err := set.Count(ctx)
	if err != nil {
		log.Error().Err(err).Str("recurso", recurso).Msg("Error al contar registros")
		return dto.PaginatedResult[D]{}, err
	}

	// Pages past the end never reach the store; the offset could overflow.
	if pageNumber-1 > math.MaxInt/pageSize {
		return dto.NewPaginatedResult[D](nil, total, pageNumber, pageSize), nil
	}
	offset := (pageNumber - 1) * pageSize
	if offset > 0 && int64(offset) >= total {
		return dto.NewPaginatedResult[D](nil, total, pageNumber, pageSize), nil
	}

	rows, err := set.Page(ctx, offset, pageSize)
	if err != nil {
		log.Error().Err(err).Str("recurso", recurso).
			Int("page", pageNumber).Int("page_size", pageSize).
			Msg("Error al obtener página")
		return dto.PaginatedResult[D]{}, err
	}

	return dto.NewPaginatedResult(proyectar(rows, project), total, pageNumber, pageSize), nil
}

func proyectar[T, D any](rows []T, project func(T) D) []D {
	out := make([]D, 0, len(rows))
	for _, r := range rows {
		out = append(out, project(r))
	}
	return out
}

// ── Options ──────────────────────────────────────────────────────────────────

type options struct {
	now      func() time.Time
	rdb      *redis.Client
	cacheTTL time.Duration
}

// Option customizes a service at construction.
type Option func(*options)

// WithClock replaces time.Now, the source of every generated date.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithCache enables Redis caching of the catalogue picker lists.
// A nil client leaves caching disabled.
func WithCache(rdb *redis.Client, ttl time.Duration) Option {
	return func(o *options) {
		o.rdb = rdb
		o.cacheTTL = ttl
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, cacheTTL: 5 * time.Minute}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
