package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/leadsite/backend/internal/model"
	"github.com/leadsite/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// memContactRepository is an in-memory ContactRepository.
// ---------------------------------------------------------------------------

type memContactRepository struct {
	mu      sync.Mutex
	rows    []*model.Contact
	nextID  int64
	saveErr error
}

func (m *memContactRepository) Create(_ context.Context, c *model.Contact) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	c.CreatedAt = time.Now().UTC().Add(time.Duration(m.nextID) * time.Millisecond)
	c.UpdatedAt = c.CreatedAt
	cp := *c
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memContactRepository) filtered(f model.ListFilter) []*model.Contact {
	var out []*model.Contact
	for _, c := range m.rows {
		if f.Status == "" || c.Status == f.Status {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (m *memContactRepository) List(_ context.Context, f model.ListFilter) ([]*model.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.filtered(f)
	if f.Offset >= len(all) {
		return nil, nil
	}
	end := f.Offset + f.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[f.Offset:end], nil
}

func (m *memContactRepository) Count(_ context.Context, f model.ListFilter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.filtered(f)), nil
}

func (m *memContactRepository) Statistics(_ context.Context) (*model.ContactStatistics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &model.ContactStatistics{}
	for _, c := range m.rows {
		s.Total++
		s.Last7Days++
		switch c.Status {
		case model.StatusNew:
			s.New++
		case model.StatusInProgress:
			s.InProgress++
		case model.StatusCompleted:
			s.Completed++
		case model.StatusCancelled:
			s.Cancelled++
		}
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// func-field mocks
// ---------------------------------------------------------------------------

type mockLeadRepository struct {
	createFunc func(ctx context.Context, l *model.Lead) error
	listFunc   func(ctx context.Context, f model.ListFilter) ([]*model.Lead, error)
	countFunc  func(ctx context.Context, f model.ListFilter) (int, error)
	statsFunc  func(ctx context.Context) (*model.LeadStatistics, error)
}

func (m *mockLeadRepository) Create(ctx context.Context, l *model.Lead) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, l)
	}
	return nil
}
func (m *mockLeadRepository) List(ctx context.Context, f model.ListFilter) ([]*model.Lead, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, f)
	}
	return nil, nil
}
func (m *mockLeadRepository) Count(ctx context.Context, f model.ListFilter) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, f)
	}
	return 0, nil
}
func (m *mockLeadRepository) Statistics(ctx context.Context) (*model.LeadStatistics, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &model.LeadStatistics{}, nil
}

type mockQuoteRepository struct {
	createFunc func(ctx context.Context, q *model.QuoteRequest) error
	listFunc   func(ctx context.Context, f model.ListFilter) ([]*model.QuoteRequest, error)
	countFunc  func(ctx context.Context, f model.ListFilter) (int, error)
}

func (m *mockQuoteRepository) Create(ctx context.Context, q *model.QuoteRequest) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, q)
	}
	return nil
}
func (m *mockQuoteRepository) List(ctx context.Context, f model.ListFilter) ([]*model.QuoteRequest, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, f)
	}
	return nil, nil
}
func (m *mockQuoteRepository) Count(ctx context.Context, f model.ListFilter) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, f)
	}
	return 0, nil
}
func (m *mockQuoteRepository) Statistics(context.Context) (*model.QuoteStatistics, error) {
	return &model.QuoteStatistics{}, nil
}

type mockStatusRepository struct {
	calls      int
	updateFunc func(ctx context.Context, t model.Table, id int64, s model.Status) (*model.SubmissionRecord, error)
}

func (m *mockStatusRepository) UpdateStatus(ctx context.Context, t model.Table, id int64, s model.Status) (*model.SubmissionRecord, error) {
	m.calls++
	if m.updateFunc != nil {
		return m.updateFunc(ctx, t, id, s)
	}
	return &model.SubmissionRecord{ID: id, Table: t, Status: s}, nil
}

type mockAdminUserRepository struct {
	findByUsernameFunc func(ctx context.Context, username string) (*model.AdminUser, error)
	touchFunc          func(ctx context.Context, id int64, at time.Time) error
}

func (m *mockAdminUserRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, repository.ErrNotFound
}
func (m *mockAdminUserRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	if m.touchFunc != nil {
		return m.touchFunc(ctx, id, at)
	}
	return nil
}
func (m *mockAdminUserRepository) Create(context.Context, *model.AdminUser) error {
	return errors.New("not implemented")
}
func (m *mockAdminUserRepository) UpdatePassword(context.Context, string, string) error {
	return errors.New("not implemented")
}

type mockSessionRepository struct {
	createFunc        func(ctx context.Context, s *model.AdminSession) error
	deleteByTokenFunc func(ctx context.Context, token string) (int64, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, s *model.AdminSession) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	return nil
}
func (m *mockSessionRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	if m.deleteByTokenFunc != nil {
		return m.deleteByTokenFunc(ctx, token)
	}
	return 0, nil
}
