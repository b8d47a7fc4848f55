package service

import (
	"context"
	"fmt"

	"github.com/leadsite/backend/internal/model"
	"github.com/leadsite/backend/internal/repository"
	"github.com/leadsite/backend/internal/validate"
)

// ContactList is one page of contacts with the aggregate counters.
type ContactList struct {
	Contacts   []*model.Contact         `json:"contacts"`
	Pagination model.Pagination         `json:"pagination"`
	Statistics *model.ContactStatistics `json:"statistics"`
}

// LeadList is one page of leads with the aggregate counters.
type LeadList struct {
	Leads      []*model.Lead         `json:"leads"`
	Pagination model.Pagination      `json:"pagination"`
	Statistics *model.LeadStatistics `json:"statistics"`
}

// QuoteList is one page of quote requests with the aggregate counters.
type QuoteList struct {
	Quotes     []*model.QuoteRequest  `json:"quotes"`
	Pagination model.Pagination       `json:"pagination"`
	Statistics *model.QuoteStatistics `json:"statistics"`
}

// AdminService backs the authenticated admin API.
type AdminService interface {
	ListContacts(ctx context.Context, f model.ListFilter) (*ContactList, error)
	ListLeads(ctx context.Context, f model.ListFilter) (*LeadList, error)
	ListQuotes(ctx context.Context, f model.ListFilter) (*QuoteList, error)
	// UpdateStatus sets the status of one submission. Table and status are
	// checked before the store is touched; a *validate.Errors reports bad
	// input and repository.ErrNotFound an unknown id.
	UpdateStatus(ctx context.Context, in StatusUpdateInput) (*model.SubmissionRecord, error)
}

// StatusUpdateInput is the body of a status change request.
type StatusUpdateInput struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Table  string `json:"table"`
}

type adminServiceImpl struct {
	contacts repository.ContactRepository
	leads    repository.LeadRepository
	quotes   repository.QuoteRepository
	statuses repository.StatusRepository
}

// NewAdminService creates an AdminService.
func NewAdminService(
	contacts repository.ContactRepository,
	leads repository.LeadRepository,
	quotes repository.QuoteRepository,
	statuses repository.StatusRepository,
) AdminService {
	return &adminServiceImpl{contacts: contacts, leads: leads, quotes: quotes, statuses: statuses}
}

func (s *adminServiceImpl) ListContacts(ctx context.Context, f model.ListFilter) (*ContactList, error) {
	rows, err := s.contacts.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	total, err := s.contacts.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count contacts: %w", err)
	}
	stats, err := s.contacts.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("contact statistics: %w", err)
	}
	if rows == nil {
		rows = []*model.Contact{}
	}
	return &ContactList{Contacts: rows, Pagination: model.NewPagination(total, f.Limit, f.Offset), Statistics: stats}, nil
}

func (s *adminServiceImpl) ListLeads(ctx context.Context, f model.ListFilter) (*LeadList, error) {
	rows, err := s.leads.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	total, err := s.leads.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}
	stats, err := s.leads.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("lead statistics: %w", err)
	}
	if rows == nil {
		rows = []*model.Lead{}
	}
	return &LeadList{Leads: rows, Pagination: model.NewPagination(total, f.Limit, f.Offset), Statistics: stats}, nil
}

func (s *adminServiceImpl) ListQuotes(ctx context.Context, f model.ListFilter) (*QuoteList, error) {
	rows, err := s.quotes.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list quote requests: %w", err)
	}
	total, err := s.quotes.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count quote requests: %w", err)
	}
	stats, err := s.quotes.Statistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("quote statistics: %w", err)
	}
	if rows == nil {
		rows = []*model.QuoteRequest{}
	}
	return &QuoteList{Quotes: rows, Pagination: model.NewPagination(total, f.Limit, f.Offset), Statistics: stats}, nil
}

func (s *adminServiceImpl) UpdateStatus(ctx context.Context, in StatusUpdateInput) (*model.SubmissionRecord, error) {
	var errs validate.Errors
	table, err := model.ParseTable(in.Table)
	errs.Check(err == nil, "Table must be one of contacts, leads, quote_requests")
	status, err := model.ParseStatus(in.Status)
	errs.Check(err == nil, "Status must be one of new, in_progress, completed, cancelled")
	errs.Check(in.ID > 0, "A valid id is required")
	if err := errs.Err(); err != nil {
		return nil, err
	}

	rec, err := s.statuses.UpdateStatus(ctx, table, in.ID, status)
	if err != nil {
		return nil, fmt.Errorf("update %s status: %w", table, err)
	}
	return rec, nil
}
