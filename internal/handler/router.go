package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/leadsite/backend/internal/monitoring"
	"github.com/leadsite/backend/pkg/auth"
	"github.com/leadsite/backend/pkg/cors"
)

// Routes bundles everything the router needs.
type Routes struct {
	Health   *Handler
	Legacy   *IntakeHandler
	Current  *IntakeHandler
	Auth     *AuthHandler
	Admin    *AdminHandler
	Verifier auth.TokenVerifier
	Metrics  *monitoring.Metrics

	// LegacyCORS applies to /contact, /lead and /quote; CORS to everything else.
	LegacyCORS *cors.Policy
	CORS       *cors.Policy

	// RateLimit, when set, guards the form endpoints.
	RateLimit func(http.Handler) http.Handler

	// Production hides panic details from 500 responses.
	Production bool
}

// NewRouter builds the HTTP routing tree.
func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(rt.Metrics.Middleware)
	r.Use(RequestLogger)
	r.Use(Recoverer(rt.Production))
	r.Use(SecurityHeaders)
	r.Use(LimitBody)
	r.Use(cors.Middleware(cors.ByPath(rt.CORS, map[string]*cors.Policy{
		"/contact": rt.LegacyCORS,
		"/lead":    rt.LegacyCORS,
		"/quote":   rt.LegacyCORS,
	})))

	r.Get("/api/health", rt.Health.Health)
	r.Method(http.MethodGet, "/metrics", rt.Metrics.Handler())

	forms := func(r chi.Router) {
		if rt.RateLimit != nil {
			r.Use(rt.RateLimit)
		}
	}

	r.Group(func(r chi.Router) {
		forms(r)
		r.Post("/contact", rt.Legacy.Contact)
		r.Post("/lead", rt.Legacy.Lead)
		r.Post("/quote", rt.Legacy.Quote)
	})

	r.Group(func(r chi.Router) {
		forms(r)
		r.Post("/api/contact", rt.Current.Contact)
		r.Post("/api/lead", rt.Current.Lead)
		r.Post("/api/quote", rt.Current.Quote)
	})

	r.Route("/api-admin", func(r chi.Router) {
		r.Post("/login", rt.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin(rt.Verifier))
			r.Post("/logout", rt.Auth.Logout)
			r.Get("/contacts", rt.Admin.Contacts)
			r.Get("/leads", rt.Admin.Leads)
			r.Get("/quotes", rt.Admin.Quotes)
			r.Patch("/status", rt.Admin.UpdateStatus)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	return r
}
