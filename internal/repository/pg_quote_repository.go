package repository

import (
	"context"

	"github.com/leadsite/backend/internal/model"
)

// PgQuoteRepository is the PostgreSQL implementation of QuoteRepository.
type PgQuoteRepository struct {
	db Querier
}

// NewPgQuoteRepository creates a PgQuoteRepository backed by db.
func NewPgQuoteRepository(db Querier) *PgQuoteRepository {
	return &PgQuoteRepository{db: db}
}

var _ QuoteRepository = (*PgQuoteRepository)(nil)

const quoteColumns = `id, name, email, phone, COALESCE(company, ''), service_type, project_description,
	budget_range, COALESCE(timeline, ''), COALESCE(website_url, ''), COALESCE(preferred_contact_method, ''),
	status, priority, source, COALESCE(ip_address, ''), COALESCE(user_agent, ''), created_at, updated_at`

const quoteFilter = `WHERE ($1 = '' OR status = $1) AND ($2 = '' OR priority = $2) AND ($3 = '' OR source = $3)`

// Create inserts q and fills its ID and timestamps.
func (r *PgQuoteRepository) Create(ctx context.Context, q *model.QuoteRequest) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO quote_requests (name, email, phone, company, service_type, project_description,
		     budget_range, timeline, website_url, preferred_contact_method, status, priority, source,
		     ip_address, user_agent)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''),
		     $11, $12, $13, NULLIF($14, ''), NULLIF($15, ''))
		 RETURNING id, created_at, updated_at`,
		q.Name, q.Email, q.Phone, q.Company, q.ServiceType, q.ProjectDescription,
		q.BudgetRange, q.Timeline, q.WebsiteURL, q.PreferredContactMethod,
		string(q.Status), string(q.Priority), string(q.Source), q.IPAddress, q.UserAgent,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

// List returns quote requests matching f, newest first.
func (r *PgQuoteRepository) List(ctx context.Context, f model.ListFilter) ([]*model.QuoteRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+quoteColumns+` FROM quote_requests `+quoteFilter+`
		 ORDER BY created_at DESC, id DESC
		 LIMIT $4 OFFSET $5`,
		string(f.Status), string(f.Priority), string(f.Source), f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.QuoteRequest
	for rows.Next() {
		var q model.QuoteRequest
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Phone, &q.Company, &q.ServiceType,
			&q.ProjectDescription, &q.BudgetRange, &q.Timeline, &q.WebsiteURL, &q.PreferredContactMethod,
			&q.Status, &q.Priority, &q.Source, &q.IPAddress, &q.UserAgent, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &q)
	}
	return out, rows.Err()
}

// Count returns the number of quote requests matching f, ignoring pagination.
func (r *PgQuoteRepository) Count(ctx context.Context, f model.ListFilter) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM quote_requests `+quoteFilter,
		string(f.Status), string(f.Priority), string(f.Source)).Scan(&n)
	return n, err
}

// Statistics reads the quote_statistics view.
func (r *PgQuoteRepository) Statistics(ctx context.Context) (*model.QuoteStatistics, error) {
	var s model.QuoteStatistics
	err := r.db.QueryRow(ctx,
		`SELECT total, new_count, in_progress_count, completed_count, cancelled_count,
		        critical_priority, high_priority, from_google_ads, last_7_days
		 FROM quote_statistics`,
	).Scan(&s.Total, &s.New, &s.InProgress, &s.Completed, &s.Cancelled,
		&s.CriticalPriority, &s.HighPriority, &s.FromGoogleAds, &s.Last7Days)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
