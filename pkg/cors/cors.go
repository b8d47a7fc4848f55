// Package cors computes cross-origin response headers from an origin policy.
package cors

import (
	"net/http"
	"path"
	"strconv"
	"strings"
)

var (
	defaultMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	defaultHeaders = []string{"Content-Type", "Authorization"}
)

// Policy decides which origins may call a group of routes.
type Policy struct {
	// Origins holds exact origins ("https://example.com"), "*" for any
	// origin, or glob patterns such as "https://*.example.com".
	Origins []string
	// SingleOrigin echoes Origins[0] on every response regardless of the
	// request's Origin header.
	SingleOrigin bool

	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
	MaxAge           int
}

// NewAllowList returns a policy that reflects the request origin when it
// matches one of origins.
func NewAllowList(origins []string) *Policy {
	return &Policy{
		Origins:          origins,
		AllowMethods:     defaultMethods,
		AllowHeaders:     defaultHeaders,
		AllowCredentials: true,
		MaxAge:           600,
	}
}

// NewSingleOrigin returns a policy that always allows exactly origin.
func NewSingleOrigin(origin string) *Policy {
	p := NewAllowList([]string{origin})
	p.SingleOrigin = true
	return p
}

// AllowOrigin returns the value for Access-Control-Allow-Origin, or false
// when origin is not permitted.
func (p *Policy) AllowOrigin(origin string) (string, bool) {
	if p.SingleOrigin {
		if len(p.Origins) == 0 || p.Origins[0] == "" {
			return "", false
		}
		return p.Origins[0], true
	}
	origin = strings.TrimRight(origin, "/")
	if origin == "" {
		return "", false
	}
	for _, pattern := range p.Origins {
		if matchOrigin(pattern, origin) {
			// A bare "*" is answered literally, and Apply never pairs it
			// with credentials.
			if pattern == "*" {
				return "*", true
			}
			return origin, true
		}
	}
	return "", false
}

func matchOrigin(pattern, origin string) bool {
	if pattern == "*" {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return strings.EqualFold(pattern, origin)
	}
	ok, err := path.Match(strings.ToLower(pattern), strings.ToLower(origin))
	return err == nil && ok
}

// Apply writes the CORS headers for a request from origin into h.
// It reports whether the origin was allowed.
func (p *Policy) Apply(h http.Header, origin string) bool {
	h.Add("Vary", "Origin")
	allowed, ok := p.AllowOrigin(origin)
	if !ok {
		return false
	}
	h.Set("Access-Control-Allow-Origin", allowed)
	h.Set("Access-Control-Allow-Methods", strings.Join(p.AllowMethods, ", "))
	h.Set("Access-Control-Allow-Headers", strings.Join(p.AllowHeaders, ", "))
	if p.AllowCredentials && allowed != "*" {
		h.Set("Access-Control-Allow-Credentials", "true")
	}
	if p.MaxAge > 0 {
		h.Set("Access-Control-Max-Age", strconv.Itoa(p.MaxAge))
	}
	return true
}

// Selector picks the policy that governs a request.
type Selector func(r *http.Request) *Policy

// ByPath serves paths listed in overrides with their policy and everything
// else with def.
func ByPath(def *Policy, overrides map[string]*Policy) Selector {
	return func(r *http.Request) *Policy {
		if p, ok := overrides[strings.TrimRight(r.URL.Path, "/")]; ok {
			return p
		}
		return def
	}
}

// Middleware applies the selected policy and answers preflight requests
// with 204 without calling next.
func Middleware(sel Selector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sel(r).Apply(w.Header(), r.Header.Get("Origin"))

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
