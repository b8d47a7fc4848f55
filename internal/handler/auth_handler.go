package handler

import (
	"errors"
	"net/http"

	"github.com/leadsite/backend/internal/monitoring"
	"github.com/leadsite/backend/internal/service"
	"github.com/leadsite/backend/pkg/auth"
)

// AuthHandler serves admin login and logout.
type AuthHandler struct {
	responder
	auth           service.AuthService
	metrics        *monitoring.Metrics
	trustedProxies int
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authService service.AuthService, production bool, trustedProxies int, metrics *monitoring.Metrics) *AuthHandler {
	return &AuthHandler{
		responder:      responder{production: production},
		auth:           authService,
		metrics:        metrics,
		trustedProxies: trustedProxies,
	}
}

// Login handles POST /api-admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in service.LoginInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	res, err := h.auth.Login(r.Context(), in, clientInfo(r, h.trustedProxies))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrAccountInactive):
			h.metrics.LoginRecorded(monitoring.OutcomeRejected)
		default:
			h.metrics.LoginRecorded(monitoring.OutcomeFailed)
		}
		h.writeServiceError(w, r, err)
		return
	}
	h.metrics.LoginRecorded(monitoring.OutcomeAccepted)
	writeSuccess(w, http.StatusOK, "Login successful", res)
}

// Logout handles POST /api-admin/logout. It must run behind auth.RequireAdmin.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, err := auth.TokenFromRequest(r)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if err := h.auth.Logout(r.Context(), token); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Logged out", nil)
}
