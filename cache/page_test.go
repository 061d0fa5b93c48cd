package cache

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The handler serves whatever body the test sets, so a change in body stands
// in for a write to the store behind the page.
func newCachedRouter(store Store, ttl time.Duration, body *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", PageMiddleware(store, ttl, "index"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"body": *body})
	})
	return router
}

func get(t *testing.T, router *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestPageMiddleware_ServesStaleUntilExpiry(t *testing.T) {
	clock := &fakeClock{current: time.Unix(1700000000, 0)}
	store := NewMemory(clock.now)
	body := "v1"
	router := newCachedRouter(store, 20*time.Second, &body)

	first := get(t, router, "/")
	assert.Contains(t, first.Body.String(), "v1")

	// A "write" inside the TTL window is not visible
	body = "v2"
	clock.advance(10 * time.Second)
	stale := get(t, router, "/")
	assert.Contains(t, stale.Body.String(), "v1", "the cache serves the stale page inside the TTL")

	// After expiry the page is recomputed
	clock.advance(11 * time.Second)
	fresh := get(t, router, "/")
	assert.Contains(t, fresh.Body.String(), "v2")
}

func TestPageMiddleware_KeyedByPage(t *testing.T) {
	clock := &fakeClock{current: time.Unix(1700000000, 0)}
	store := NewMemory(clock.now)
	body := "page-one"
	router := newCachedRouter(store, 20*time.Second, &body)

	get(t, router, "/")

	body = "page-two"
	second := get(t, router, "/?page=2")
	assert.Contains(t, second.Body.String(), "page-two", "each page number caches separately")

	cachedFirst := get(t, router, "/")
	assert.Contains(t, cachedFirst.Body.String(), "page-one")
}

func TestPageMiddleware_PreservesContentType(t *testing.T) {
	clock := &fakeClock{current: time.Unix(1700000000, 0)}
	store := NewMemory(clock.now)
	body := "v1"
	router := newCachedRouter(store, 20*time.Second, &body)

	get(t, router, "/")
	cached := get(t, router, "/")
	assert.Contains(t, cached.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, http.StatusOK, cached.Code)
}
