package model

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a submitted record.
// Admins may set any status from any other.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every valid status in lifecycle order.
var Statuses = []Status{StatusNew, StatusInProgress, StatusCompleted, StatusCancelled}

// ParseStatus returns the Status named by s or an error when s is not one of Statuses.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	for _, v := range Statuses {
		if st == v {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid status %q", s)
}

// Priority ranks a lead or quote request for follow-up.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// LeadPriorities are the priorities a lead can be classified with.
var LeadPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// QuotePriorities are the priorities a quote request can be classified with.
var QuotePriorities = []Priority{PriorityHigh, PriorityCritical}

// ParsePriority returns the priority named by s if it is one of allowed.
func ParsePriority(s string, allowed []Priority) (Priority, error) {
	p := Priority(strings.TrimSpace(s))
	for _, v := range allowed {
		if p == v {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority %q", s)
}

// Source records how a quote request reached the site.
type Source string

const (
	SourceGoogleAds Source = "google_ads"
	SourceDirect    Source = "direct"
	SourceWebsite   Source = "website"
)

// Sources lists every valid source.
var Sources = []Source{SourceGoogleAds, SourceDirect, SourceWebsite}

// ParseSource returns the Source named by s or an error.
func ParseSource(s string) (Source, error) {
	src := Source(strings.TrimSpace(s))
	for _, v := range Sources {
		if src == v {
			return src, nil
		}
	}
	return "", fmt.Errorf("invalid source %q", s)
}

// Table identifies one of the submission tables whose status admins can change.
// It is a closed set: the zero value is not a valid table.
type Table int

const (
	TableContacts Table = iota + 1
	TableLeads
	TableQuoteRequests
)

// String returns the SQL table name.
func (t Table) String() string {
	switch t {
	case TableContacts:
		return "contacts"
	case TableLeads:
		return "leads"
	case TableQuoteRequests:
		return "quote_requests"
	default:
		return fmt.Sprintf("Table(%d)", int(t))
	}
}

// Valid reports whether t is one of the defined tables.
func (t Table) Valid() bool {
	return t >= TableContacts && t <= TableQuoteRequests
}

// MarshalText encodes the table by name.
func (t Table) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid table %d", int(t))
	}
	return []byte(t.String()), nil
}

// ParseTable maps a client-supplied table name onto the closed Table set.
func ParseTable(s string) (Table, error) {
	switch strings.TrimSpace(s) {
	case "contacts":
		return TableContacts, nil
	case "leads":
		return TableLeads, nil
	case "quote_requests":
		return TableQuoteRequests, nil
	default:
		return 0, fmt.Errorf("invalid table %q", s)
	}
}

// SubmissionRecord is the row summary returned after a status change.
type SubmissionRecord struct {
	ID        int64     `json:"id"`
	Table     Table     `json:"table"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientInfo identifies where a request came from.
type ClientInfo struct {
	IPAddress string
	UserAgent string
	Referer   string
	// UTMSource is the utm_source query parameter of the submitting request.
	UTMSource string
}

// ListFilter carries filter and pagination parameters for admin listings.
// Empty filter fields match every row.
type ListFilter struct {
	Status   Status
	Priority Priority
	Source   Source
	Limit    int
	Offset   int
}

// Pagination describes the window returned by a listing.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Page    int  `json:"page"`
	HasMore bool `json:"hasMore"`
}

// NewPagination computes the pagination block for a window over total rows.
func NewPagination(total, limit, offset int) Pagination {
	page := 1
	if limit > 0 {
		page = offset/limit + 1
	}
	return Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		Page:    page,
		HasMore: offset+limit < total,
	}
}

// StatusCounts is the per-status part of every statistics view.
type StatusCounts struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}
