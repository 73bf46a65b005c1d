package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"packingapp/internal/middleware"
	"packingapp/internal/service"
	"packingapp/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── JWTAuth ──────────────────────────────────────────────────────────────────

const secret = "test-secret"

func signed(t *testing.T, key string, claims middleware.JWTClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return tok
}

func authEngine() *gin.Engine {
	r := gin.New()
	r.GET("/privado", middleware.JWTAuth(secret), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetClaims(c).Subject)
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	valid := middleware.JWTClaims{
		UserName: "ana",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "6f1c2a9e-3b7d-4c55-9a0e-2d4f8b1c7e31",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	noExp := valid
	noExp.ExpiresAt = nil

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"sin header", "", http.StatusUnauthorized},
		{"esquema incorrecto", "Basic abc", http.StatusUnauthorized},
		{"firma incorrecta", "Bearer " + signed(t, "otra", valid), http.StatusUnauthorized},
		{"expirado", "Bearer " + signed(t, secret, expired), http.StatusUnauthorized},
		{"sin expiración", "Bearer " + signed(t, secret, noExp), http.StatusUnauthorized},
		{"válido", "Bearer " + signed(t, secret, valid), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/privado", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := serve(authEngine(), req)
			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusOK {
				assert.Equal(t, valid.Subject, w.Body.String())
			}
		})
	}
}

// ── ErrorHandler ─────────────────────────────────────────────────────────────

func TestErrorHandler_Classification(t *testing.T) {
	verr := &validation.Errors{Prefix: "Error al crear usuario"}
	verr.Add("NombreUsuario", "DuplicateUserName", "El nombre de usuario 'ana' ya está en uso")

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validación", verr, http.StatusUnprocessableEntity},
		{"paginación", service.ErrPaginacionInvalida, http.StatusBadRequest},
		{"duplicado", &pgconn.PgError{Code: "23505"}, http.StatusConflict},
		{"referencia", &pgconn.PgError{Code: "23503"}, http.StatusConflict},
		{"otro", errors.New("dial tcp: connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.ErrorHandler())
			r.GET("/x", func(c *gin.Context) { _ = c.Error(tc.err) })

			w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
			assert.Equal(t, tc.want, w.Code)
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestErrorHandler_ValidationBody(t *testing.T) {
	verr := &validation.Errors{Prefix: "Error al crear usuario"}
	verr.Add("Password", "PasswordTooShort", "La contraseña es demasiado corta")
	verr.Add("Password", "PasswordRequiresDigit", "La contraseña debe tener al menos un dígito")

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/x", func(c *gin.Context) { _ = c.Error(verr) })

	w := serve(r, httptest.NewRequest(http.MethodPost, "/x", nil))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Detail string            `json:"detail"`
		Fields map[string]string `json:"fields"`
		Errors []struct {
			Code string `json:"code"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error al crear usuario: La contraseña es demasiado corta, La contraseña debe tener al menos un dígito", body.Detail)
	assert.Equal(t, "PasswordTooShort", body.Fields["Password"])
	assert.Len(t, body.Errors, 2)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

// ── RequestID / CORS ─────────────────────────────────────────────────────────

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(middleware.RequestIDKey)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodOptions, "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

// ── RateLimiter ──────────────────────────────────────────────────────────────

func TestRateLimiter(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute)
	r := gin.New()
	r.Use(limiter.Middleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	assert.Zero(t, limiter.Purge(), "window still open")
}
