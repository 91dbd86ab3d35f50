package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-contact-api/internal/delivery/http/response"
	"portfolio-contact-api/pkg/apperror"
	"portfolio-contact-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	return r
}

func TestCORSMiddleware(t *testing.T) {
	prod := newEngine(CORSMiddleware(CORSConfig{
		AllowedOrigins: []string{"https://portfolio.example.com"},
		IsProduction:   true,
	}))
	prod.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	dev := newEngine(CORSMiddleware(CORSConfig{IsProduction: false}))
	dev.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := []struct {
		name    string
		engine  *gin.Engine
		origin  string
		allowed bool
	}{
		{"configured origin", prod, "https://portfolio.example.com", true},
		{"unknown origin", prod, "https://evil.example.com", false},
		{"localhost in production", prod, "http://localhost:3000", false},
		{"localhost in development", dev, "http://localhost:3000", true},
		{"no origin", prod, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()
			tc.engine.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "Origin", rec.Header().Get("Vary"))
			if tc.allowed {
				assert.Equal(t, tc.origin, rec.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())
	r.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok", nil)
	})

	t.Run("Should generate a UUID when none is sent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Contains(t, rec.Body.String(), id)
	})

	t.Run("Should echo an upstream request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "edge-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "edge-123", rec.Header().Get(RequestIDHeader))
	})
}

func TestErrorHandler(t *testing.T) {
	var logs bytes.Buffer
	r := newEngine(ErrorHandler(logger.New(&logs, "info")))
	r.GET("/bad", func(c *gin.Context) {
		c.Error(apperror.BadRequest("nope"))
	})
	r.GET("/internal", func(c *gin.Context) {
		c.Error(apperror.Internal("try later", errors.New("db exploded")))
	})
	r.GET("/raw", func(c *gin.Context) {
		c.Error(errors.New("secret detail"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bad", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"nope"`)
	assert.Empty(t, logs.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/internal", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"try later"`)
	assert.NotContains(t, rec.Body.String(), "db exploded")
	assert.Contains(t, logs.String(), "db exploded")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/raw", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")
	assert.Contains(t, logs.String(), "secret detail")
}

func TestSecurityHeaders(t *testing.T) {
	r := newEngine(SecurityHeadersMiddleware())
	r.POST("/api/contact", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'none'")
}
