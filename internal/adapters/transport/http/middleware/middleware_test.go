package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mindxandria/library-backend/internal/app/auth/token"
)

func newAuthRouter(codec *token.Codec) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", RequireAuth(codec), func(c *gin.Context) {
		c.String(http.StatusOK, Subject(c))
	})
	return r
}

func TestRequireAuth_ValidToken(t *testing.T) {
	codec := token.NewCodec("test-secret", time.Minute)
	signed, err := codec.Issue("reader@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	newAuthRouter(codec).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "reader@example.com", w.Body.String())
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	codec := token.NewCodec("test-secret", time.Minute)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/private", nil)
	newAuthRouter(codec).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_WrongScheme(t *testing.T) {
	codec := token.NewCodec("test-secret", time.Minute)
	signed, err := codec.Issue("reader@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Basic "+signed)
	newAuthRouter(codec).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	expiredCodec := token.NewCodec("test-secret", -time.Minute)
	signed, err := expiredCodec.Issue("reader@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	newAuthRouter(token.NewCodec("test-secret", time.Minute)).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ForeignSignature(t *testing.T) {
	other := token.NewCodec("other-secret", time.Minute)
	signed, err := other.Issue("reader@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	newAuthRouter(token.NewCodec("test-secret", time.Minute)).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitPerIP_Basic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitPerIP(1, 1, 100, time.Hour))
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

	req := func(addr string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		return w
	}

	if w := req("1.2.3.4:12345"); w.Code != 200 {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if w := req("1.2.3.4:12345"); w.Code != 429 {
		t.Fatalf("want 429, got %d", w.Code)
	}
}

func TestRateLimitPerIP_ConcurrentSameHost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitPerIP(1000, 1000, 100, time.Hour))
	r.GET("/", func(c *gin.Context) { c.Status(200) })

	var wg sync.WaitGroup
	codes := make([]int, 16)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = "1.2.3.4:12345"
			r.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		if code != 200 {
			t.Fatalf("want 200 within burst, got %d", code)
		}
	}
}

func TestRateLimitPerIP_DifferentHosts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitPerIP(1, 1, 100, time.Hour))
	r.GET("/", func(c *gin.Context) { c.Status(200) })

	for _, addr := range []string{"10.0.0.1:1111", "10.0.0.2:2222"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		if w.Code != 200 {
			t.Fatalf("first request from %s must pass, got %d", addr, w.Code)
		}
	}
}
