package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/authcrypt/middleware"
	"github.com/kbukum/authcrypt/token"
)

const passphrase = "test-passphrase"

func newRouter(t *testing.T, cfg middleware.TokenAuthConfig) (*gin.Engine, *token.Codec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := token.New()
	if err != nil {
		t.Fatalf("token.New failed: %v", err)
	}
	if cfg.Codec == nil {
		cfg.Codec = codec
	}
	if cfg.Passphrase == "" {
		cfg.Passphrase = passphrase
	}

	r := gin.New()
	r.Use(middleware.TokenAuth(cfg))
	r.GET("/protected", func(c *gin.Context) {
		principal, ok := middleware.Principal(c)
		if !ok {
			c.String(http.StatusInternalServerError, "no principal")
			return
		}
		c.String(http.StatusOK, string(principal))
	})
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r, codec
}

func encodeKey(t *testing.T, codec *token.Codec, value string, opts ...token.EncodeOption) string {
	t.Helper()
	key, err := codec.Encode([]byte(value), passphrase, opts...)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return key
}

func TestTokenAuth_HeaderKey(t *testing.T) {
	r, codec := newRouter(t, middleware.TokenAuthConfig{})
	key := encodeKey(t, codec, "user-42")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", http.NoBody)
	req.Header.Set("X-Api-Key", key)
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != "user-42" {
		t.Errorf("expected principal 'user-42', got %q", rr.Body.String())
	}
}

func TestTokenAuth_CookieKey(t *testing.T) {
	r, codec := newRouter(t, middleware.TokenAuthConfig{})
	key := encodeKey(t, codec, "cookie-user")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", http.NoBody)
	req.AddCookie(&http.Cookie{Name: "api_key", Value: key})
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != "cookie-user" {
		t.Errorf("expected principal 'cookie-user', got %q", rr.Body.String())
	}
}

func TestTokenAuth_QueryKey(t *testing.T) {
	r, codec := newRouter(t, middleware.TokenAuthConfig{})
	key := encodeKey(t, codec, "query-user")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected?api_key="+key, http.NoBody)
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestTokenAuth_MissingKey(t *testing.T) {
	r, _ := newRouter(t, middleware.TokenAuthConfig{})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/protected", http.NoBody))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestTokenAuth_GenericRejection(t *testing.T) {
	r, codec := newRouter(t, middleware.TokenAuthConfig{})

	expired := encodeKey(t, codec, "user",
		token.WithExpiresAt(time.Now().UTC().Add(-time.Minute)))

	// Tampered, expired, and garbage keys all produce the exact same
	// response body: the client cannot tell the failure kinds apart.
	keys := map[string]string{
		"garbage": "not-a-token",
		"expired": expired,
	}

	var bodies []string
	for name, key := range keys {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", http.NoBody)
		req.Header.Set("X-Api-Key", key)
		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rr.Code)
		}
		var parsed map[string]any
		if err := json.Unmarshal(rr.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("%s: response is not valid JSON: %v", name, err)
		}
		bodies = append(bodies, rr.Body.String())
	}

	if bodies[0] != bodies[1] {
		t.Error("expected identical rejection bodies for different failure kinds")
	}
}

func TestTokenAuth_SkipPaths(t *testing.T) {
	r, _ := newRouter(t, middleware.TokenAuthConfig{SkipPaths: []string{"/health"}})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/health", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for skipped path, got %d", rr.Code)
	}
}

func TestTokenAuth_CustomNames(t *testing.T) {
	r, codec := newRouter(t, middleware.TokenAuthConfig{
		HeaderName: "X-Session",
		CookieName: "session",
		QueryParam: "session",
	})
	key := encodeKey(t, codec, "custom")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", http.NoBody)
	req.Header.Set("X-Session", key)
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	// The default header name is no longer honored.
	rr = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/protected", http.NoBody)
	req.Header.Set("X-Api-Key", key)
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for default header, got %d", rr.Code)
	}
}

func TestTokenAuth_Misconfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TokenAuth(middleware.TokenAuthConfig{}))
	r.GET("/protected", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", http.NoBody)
	req.Header.Set("X-Api-Key", "anything")
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for missing codec, got %d", rr.Code)
	}
}
