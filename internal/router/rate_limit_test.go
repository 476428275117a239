package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimitMiddlewarePassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		rule RateLimitRule
	}{
		{"nil client", RateLimitRule{WindowSeconds: 60, MaxRequests: 5}},
		{"zero window", RateLimitRule{MaxRequests: 5}},
		{"zero max", RateLimitRule{WindowSeconds: 60}},
	}
	for _, tc := range cases {
		r := gin.New()
		r.Use(RateLimitMiddleware(nil, tc.rule, KeyByIP))
		r.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: middleware must pass through, got status %d", tc.name, w.Code)
		}
	}
}

func TestKeyByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = "203.0.113.7:51234"

	if got := KeyByIP(c); got != "203.0.113.7" {
		t.Fatalf("key want 203.0.113.7 got %s", got)
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		raw  interface{}
		want int64
		ok   bool
	}{
		{int64(7), 7, true},
		{int(7), 7, true},
		{float64(7), 7, true},
		{uint32(7), 7, true},
		{"7", 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := toInt64(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("toInt64(%v) want (%d,%v) got (%d,%v)", tc.raw, tc.want, tc.ok, got, ok)
		}
	}
}
