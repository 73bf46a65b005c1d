package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"packingapp/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeyFormatos       = "catalogo:formatos"
	cacheKeyPresentaciones = "catalogo:presentaciones"
	cacheKeyGrupos         = "catalogo:grupos"
)

// catalogoCache keeps full lookup lists in Redis. Stored values are entity
// rows, never projections, so generated dates stay fresh.
// Every Redis failure degrades to a miss.
type catalogoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func (c catalogoCache) enabled() bool { return c.rdb != nil }

func (c catalogoCache) invalidate(ctx context.Context, key string) {
	if !c.enabled() {
		return
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("No se pudo invalidar el cache de catálogo")
	}
}

// cachedAll returns the full set, served from Redis when a fresh copy exists.
func cachedAll[T any](ctx context.Context, c catalogoCache, key string, set repository.Set[T]) ([]T, error) {
	if c.enabled() {
		raw, err := c.rdb.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var rows []T
			if jsonErr := json.Unmarshal(raw, &rows); jsonErr == nil {
				return rows, nil
			}
			log.Warn().Str("key", key).Msg("Cache de catálogo corrupto, se descarta")
		case !errors.Is(err, redis.Nil):
			log.Warn().Err(err).Str("key", key).Msg("Lectura de cache de catálogo falló")
		}
	}

	rows, err := set.All(ctx)
	if err != nil {
		log.Error().Err(err).Str("recurso", key).Msg("Error al listar catálogo")
		return nil, err
	}

	if c.enabled() {
		if raw, err := json.Marshal(rows); err == nil {
			if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("No se pudo escribir el cache de catálogo")
			}
		}
	}
	return rows, nil
}
