package middleware

import (
	"errors"
	"net/http"
	"time"

	"packingapp/internal/apierror"
	"packingapp/internal/repository"
	"packingapp/internal/service"
	"packingapp/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrorHandler turns the last error a handler attached with c.Error into a
// response. Internal details are logged, never sent to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, body := classify(err)
		if status >= http.StatusInternalServerError {
			log.Error().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("path", c.FullPath()).
				Str("method", c.Request.Method).
				Err(err).
				Msg("unhandled error")
		}
		c.AbortWithStatusJSON(status, body)
	}
}

func classify(err error) (int, any) {
	if verr, ok := validation.As(err); ok {
		return http.StatusUnprocessableEntity, apierror.FromValidation(verr)
	}
	switch {
	case errors.Is(err, service.ErrPaginacionInvalida):
		return http.StatusBadRequest, apierror.New(err.Error())
	case repository.IsDuplicate(err):
		return http.StatusConflict, apierror.New("El registro ya existe")
	case repository.IsForeignKeyViolation(err):
		return http.StatusConflict, apierror.New("El registro está referenciado por otros datos o referencia datos inexistentes")
	default:
		return http.StatusInternalServerError, apierror.New("Error interno del servidor")
	}
}

// Recovery handles panics and converts them into 500 responses.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("panic", r).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
			}
		}()
		c.Next()
	}
}

// Logger logs each request with method, path, status, latency, and request_id.
// 4xx are logged as warnings and 5xx as errors.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := zerolog.InfoLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = zerolog.ErrorLevel
		case status >= http.StatusBadRequest:
			level = zerolog.WarnLevel
		}
		log.WithLevel(level).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
