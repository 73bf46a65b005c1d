package infra

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormLogger routes GORM output through the global zerolog logger.
// Only failures and slow statements are reported; SQL text is logged at
// debug level so bound values stay out of production logs.
type gormLogger struct {
	slow time.Duration
}

func NewGormLogger(slow time.Duration) logger.Interface {
	return gormLogger{slow: slow}
}

func (l gormLogger) LogMode(logger.LogLevel) logger.Interface { return l }

func (l gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	log.Info().Msgf(msg, args...)
}

func (l gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	log.Warn().Msgf(msg, args...)
}

func (l gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	log.Error().Msgf(msg, args...)
}

func (l gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		log.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).
			Str("sql", sql).Msg("gorm query failed")
	case l.slow > 0 && elapsed > l.slow:
		sql, rows := fc()
		log.Warn().Dur("elapsed", elapsed).Int64("rows", rows).
			Str("sql", sql).Msg("gorm slow query")
	case zerolog.GlobalLevel() <= zerolog.DebugLevel:
		sql, rows := fc()
		log.Debug().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("gorm query")
	}
}
