package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/leadsite/backend/internal/monitoring"
	"github.com/leadsite/backend/internal/service"
	"github.com/leadsite/backend/internal/validate"
)

// IntakeHandler serves the public form endpoints of one route family.
type IntakeHandler struct {
	responder
	contacts       service.ContactService
	leads          service.LeadService
	quotes         service.QuoteService
	metrics        *monitoring.Metrics
	trustedProxies int
}

// IntakeConfig holds the non-service settings of an IntakeHandler.
type IntakeConfig struct {
	Production     bool
	TrustedProxies int
	Metrics        *monitoring.Metrics
}

// NewIntakeHandler creates an IntakeHandler.
func NewIntakeHandler(contacts service.ContactService, leads service.LeadService, quotes service.QuoteService, cfg IntakeConfig) *IntakeHandler {
	return &IntakeHandler{
		responder:      responder{production: cfg.Production},
		contacts:       contacts,
		leads:          leads,
		quotes:         quotes,
		metrics:        cfg.Metrics,
		trustedProxies: cfg.TrustedProxies,
	}
}

type submissionResponse struct {
	ID          int64     `json:"id"`
	Priority    string    `json:"priority,omitempty"`
	Source      string    `json:"source,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// fail records the outcome and writes the error response.
func (h *IntakeHandler) fail(w http.ResponseWriter, r *http.Request, form string, err error) {
	var verrs *validate.Errors
	outcome := monitoring.OutcomeFailed
	if errors.As(err, &verrs) || errors.Is(err, errInvalidJSON) {
		outcome = monitoring.OutcomeRejected
	}
	h.metrics.SubmissionRecorded(form, outcome)
	h.writeServiceError(w, r, err)
}

// Contact handles POST /contact and /api/contact.
func (h *IntakeHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var in service.ContactInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, "contact", err)
		return
	}
	c, err := h.contacts.Submit(r.Context(), in, clientInfo(r, h.trustedProxies))
	if err != nil {
		h.fail(w, r, "contact", err)
		return
	}
	h.metrics.SubmissionRecorded("contact", monitoring.OutcomeAccepted)
	writeSuccess(w, http.StatusCreated, "Thank you for contacting us. We will get back to you soon.",
		submissionResponse{ID: c.ID, SubmittedAt: c.CreatedAt})
}

// Lead handles POST /lead and /api/lead.
func (h *IntakeHandler) Lead(w http.ResponseWriter, r *http.Request) {
	var in service.LeadInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, "lead", err)
		return
	}
	l, err := h.leads.Submit(r.Context(), in, clientInfo(r, h.trustedProxies))
	if err != nil {
		h.fail(w, r, "lead", err)
		return
	}
	h.metrics.SubmissionRecorded("lead", monitoring.OutcomeAccepted)
	writeSuccess(w, http.StatusCreated, "Thank you for your interest. Our team will contact you shortly.",
		submissionResponse{ID: l.ID, Priority: string(l.Priority), SubmittedAt: l.CreatedAt})
}

// Quote handles POST /quote and /api/quote.
func (h *IntakeHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var in service.QuoteInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.fail(w, r, "quote", err)
		return
	}
	q, err := h.quotes.Submit(r.Context(), in, clientInfo(r, h.trustedProxies))
	if err != nil {
		h.fail(w, r, "quote", err)
		return
	}
	h.metrics.SubmissionRecorded("quote", monitoring.OutcomeAccepted)
	writeSuccess(w, http.StatusCreated, "Quote request received. We will send you a proposal soon.",
		submissionResponse{ID: q.ID, Priority: string(q.Priority), Source: string(q.Source), SubmittedAt: q.CreatedAt})
}
