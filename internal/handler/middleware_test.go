package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityHeaders_SetsAllHeaders(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(okHandler()).ServeHTTP(rec, req)

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"X-XSS-Protection":       "0",
	}
	for name, want := range headers {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("%s: want %q, got %q", name, want, got)
		}
	}
	if csp := rec.Header().Get("Content-Security-Policy"); !strings.Contains(csp, "frame-ancestors 'none'") {
		t.Errorf("CSP missing frame-ancestors: %s", csp)
	}
	if hsts := rec.Header().Get("Strict-Transport-Security"); !strings.Contains(hsts, "max-age=") {
		t.Errorf("HSTS missing max-age: %s", hsts)
	}
}

func newTestLimiter(t *testing.T, max int, now *time.Time) *RateLimiter {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	rl := NewRateLimiter(ctx, max, 1)
	rl.now = func() time.Time { return *now }
	return rl
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := newTestLimiter(t, 2, &now).Middleware(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("POST", "/contact", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/contact", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Errorf("expected envelope body, got %s", rec.Body.String())
	}
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := newTestLimiter(t, 1, &now).Middleware(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/lead", nil))

	now = now.Add(61 * time.Second)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/lead", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 after window, got %d", rec.Code)
	}
}

func TestRateLimiter_SeparatesClients(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := newTestLimiter(t, 1, &now).Middleware(okHandler())

	for _, ip := range []string{"203.0.113.1", "203.0.113.2"} {
		req := httptest.NewRequest("POST", "/quote", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", ip, rec.Code)
		}
	}
}

func TestRateLimiter_SweepDropsIdleClients(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newTestLimiter(t, 5, &now)
	rl.Middleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/contact", nil))

	now = now.Add(2 * time.Minute)
	rl.sweep()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if len(rl.clients) != 0 {
		t.Errorf("expected idle clients to be swept, %d remain", len(rl.clients))
	}
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name    string
		xff     string
		remote  string
		proxies int
		want    string
	}{
		{"no proxy header", "", "192.0.2.1:5555", 1, "192.0.2.1"},
		{"single proxy", "198.51.100.9", "10.0.0.1:80", 1, "198.51.100.9"},
		{"spoofed prefix ignored", "6.6.6.6, 198.51.100.9", "10.0.0.1:80", 1, "198.51.100.9"},
		{"proxies disabled", "198.51.100.9", "192.0.2.1:5555", 0, "192.0.2.1"},
		{"remote without port", "", "192.0.2.1", 1, "192.0.2.1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remote
			if tc.xff != "" {
				req.Header.Set("X-Forwarded-For", tc.xff)
			}
			if got := clientIP(req, tc.proxies); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClientInfo_ReadsAttribution(t *testing.T) {
	req := httptest.NewRequest("POST", "/quote?utm_source=google_ads", nil)
	req.Header.Set("Referer", "https://www.googleadservices.com/")
	req.Header.Set("User-Agent", "test-agent")
	info := clientInfo(req, 1)
	if info.UTMSource != "google_ads" || info.UserAgent != "test-agent" || info.Referer == "" {
		t.Errorf("unexpected client info: %+v", info)
	}
}

func TestRecoverer_WritesEnvelopeWithoutDetailInProduction(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("secret internals")
	})
	rec := httptest.NewRecorder()
	Recoverer(true)(panicking).ServeHTTP(rec, httptest.NewRequest("GET", "/api-admin/leads", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"message":"Internal server error"`) {
		t.Errorf("expected envelope, got %s", body)
	}
	if strings.Contains(body, "secret internals") {
		t.Errorf("panic value leaked in production: %s", body)
	}
}

func TestRecoverer_ReraisesAbortHandler(t *testing.T) {
	aborting := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})
	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("expected http.ErrAbortHandler to propagate, got %v", rec)
		}
	}()
	Recoverer(false)(aborting).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
}
