package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-service/internal/config"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRateLimit(t *testing.T) {
	mr, rdb := newRedis(t)

	r := gin.New()
	r.GET("/limited", RateLimit(rdb, "test", 2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	call := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call())
	assert.Equal(t, http.StatusOK, call())
	assert.Equal(t, http.StatusTooManyRequests, call())

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, call())
}

func TestRateLimit_PassesThroughWithoutRedis(t *testing.T) {
	r := gin.New()
	r.GET("/limited", RateLimit(nil, "test", 1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_RedisDown(t *testing.T) {
	mr, rdb := newRedis(t)
	mr.Close()

	r := gin.New()
	r.GET("/limited", RateLimit(rdb, "test", 1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRoutesAreRateLimited(t *testing.T) {
	_, rdb := newRedis(t)
	s := newTestServer(t, rdb, config.RateLimitConfig{Requests: 3, Window: time.Minute})

	body := map[string]any{"email": "ghost@example.com", "password": "whatever"}
	for i := 0; i < 3; i++ {
		w := s.do(t, http.MethodPost, "/api/auth/login", body, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := s.do(t, http.MethodPost, "/api/auth/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())

	// catalog routes are not limited
	w = s.do(t, http.MethodGet, "/api/categories", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_SetsUserID(t *testing.T) {
	s := newTestServer(t, nil, config.RateLimitConfig{})
	token, err := s.tokens.Issue(42)
	require.NoError(t, err)

	var got uint64
	r := gin.New()
	r.GET("/me", RequireAuth(s.tokens), func(c *gin.Context) {
		got = currentUserID(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint64(42), got)
}
