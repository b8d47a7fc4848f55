package repository

import (
	"context"
	"time"

	"github.com/leadsite/backend/internal/model"
)

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, c *model.Contact) error
	List(ctx context.Context, f model.ListFilter) ([]*model.Contact, error)
	Count(ctx context.Context, f model.ListFilter) (int, error)
	Statistics(ctx context.Context) (*model.ContactStatistics, error)
}

// LeadRepository persists lead submissions.
type LeadRepository interface {
	Create(ctx context.Context, l *model.Lead) error
	List(ctx context.Context, f model.ListFilter) ([]*model.Lead, error)
	Count(ctx context.Context, f model.ListFilter) (int, error)
	Statistics(ctx context.Context) (*model.LeadStatistics, error)
}

// QuoteRepository persists quote requests.
type QuoteRepository interface {
	Create(ctx context.Context, q *model.QuoteRequest) error
	List(ctx context.Context, f model.ListFilter) ([]*model.QuoteRequest, error)
	Count(ctx context.Context, f model.ListFilter) (int, error)
	Statistics(ctx context.Context) (*model.QuoteStatistics, error)
}

// StatusRepository changes the status of a row in one of the submission tables.
type StatusRepository interface {
	UpdateStatus(ctx context.Context, table model.Table, id int64, status model.Status) (*model.SubmissionRecord, error)
}

// AdminUserRepository reads and maintains admin accounts.
type AdminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
	Create(ctx context.Context, u *model.AdminUser) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

// SessionRepository records issued admin tokens for audit.
type SessionRepository interface {
	Create(ctx context.Context, s *model.AdminSession) error
	DeleteByToken(ctx context.Context, token string) (int64, error)
}
