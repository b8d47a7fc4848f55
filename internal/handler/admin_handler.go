package handler

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/leadsite/backend/internal/model"
	"github.com/leadsite/backend/internal/service"
	"github.com/leadsite/backend/internal/validate"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
	// maxListOffset keeps offset+limit far from int overflow.
	maxListOffset = math.MaxInt32
)

// AdminHandler serves the token-protected admin listings and status updates.
type AdminHandler struct {
	responder
	admin service.AdminService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(admin service.AdminService, production bool) *AdminHandler {
	return &AdminHandler{responder: responder{production: production}, admin: admin}
}

// listOptions names the filters a listing accepts.
type listOptions struct {
	priorities []model.Priority
	source     bool
}

// parseListFilter reads status, priority, source and the paging parameters.
// page, when present, takes precedence over offset.
func parseListFilter(q url.Values, opts listOptions) (model.ListFilter, error) {
	var errs validate.Errors
	f := model.ListFilter{Limit: defaultListLimit}

	if s := q.Get("status"); s != "" {
		st, err := model.ParseStatus(s)
		errs.Check(err == nil, "Invalid status filter")
		f.Status = st
	}
	if p := q.Get("priority"); p != "" && opts.priorities != nil {
		pr, err := model.ParsePriority(p, opts.priorities)
		errs.Check(err == nil, "Invalid priority filter")
		f.Priority = pr
	}
	if s := q.Get("source"); s != "" && opts.source {
		src, err := model.ParseSource(s)
		errs.Check(err == nil, "Invalid source filter")
		f.Source = src
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs.Add("limit must be a positive integer")
		} else {
			f.Limit = min(n, maxListLimit)
		}
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil || n < 0:
			errs.Add("offset must be a non-negative integer")
		case n > maxListOffset:
			errs.Add("offset is too large")
		default:
			f.Offset = n
		}
	}
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil || n < 1:
			errs.Add("page must be a positive integer")
		case n-1 > maxListOffset/f.Limit:
			errs.Add("page is too large")
		default:
			f.Offset = (n - 1) * f.Limit
		}
	}
	return f, errs.Err()
}

// Contacts handles GET /api-admin/contacts.
func (h *AdminHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilter(r.URL.Query(), listOptions{})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	list, err := h.admin.ListContacts(r.Context(), f)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", list)
}

// Leads handles GET /api-admin/leads.
func (h *AdminHandler) Leads(w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilter(r.URL.Query(), listOptions{priorities: model.LeadPriorities})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	list, err := h.admin.ListLeads(r.Context(), f)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", list)
}

// Quotes handles GET /api-admin/quotes.
func (h *AdminHandler) Quotes(w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilter(r.URL.Query(), listOptions{priorities: model.QuotePriorities, source: true})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	list, err := h.admin.ListQuotes(r.Context(), f)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", list)
}

// UpdateStatus handles PATCH /api-admin/status.
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var in service.StatusUpdateInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	rec, err := h.admin.UpdateStatus(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Status updated", rec)
}
