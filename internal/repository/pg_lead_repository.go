package repository

import (
	"context"

	"github.com/leadsite/backend/internal/model"
)

// PgLeadRepository is the PostgreSQL implementation of LeadRepository.
type PgLeadRepository struct {
	db Querier
}

// NewPgLeadRepository creates a PgLeadRepository backed by db.
func NewPgLeadRepository(db Querier) *PgLeadRepository {
	return &PgLeadRepository{db: db}
}

var _ LeadRepository = (*PgLeadRepository)(nil)

const leadColumns = `id, name, email, phone, requirement, COALESCE(budget, ''), COALESCE(company, ''),
	status, priority, COALESCE(ip_address, ''), COALESCE(user_agent, ''), created_at, updated_at`

const leadFilter = `WHERE ($1 = '' OR status = $1) AND ($2 = '' OR priority = $2)`

// Create inserts l and fills its ID and timestamps.
func (r *PgLeadRepository) Create(ctx context.Context, l *model.Lead) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO leads (name, email, phone, requirement, budget, company, status, priority, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, NULLIF($9, ''), NULLIF($10, ''))
		 RETURNING id, created_at, updated_at`,
		l.Name, l.Email, l.Phone, l.Requirement, l.Budget, l.Company,
		string(l.Status), string(l.Priority), l.IPAddress, l.UserAgent,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// List returns leads matching f, newest first.
func (r *PgLeadRepository) List(ctx context.Context, f model.ListFilter) ([]*model.Lead, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+leadColumns+` FROM leads `+leadFilter+`
		 ORDER BY created_at DESC, id DESC
		 LIMIT $3 OFFSET $4`,
		string(f.Status), string(f.Priority), f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Lead
	for rows.Next() {
		var l model.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Requirement, &l.Budget, &l.Company,
			&l.Status, &l.Priority, &l.IPAddress, &l.UserAgent, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// Count returns the number of leads matching f, ignoring pagination.
func (r *PgLeadRepository) Count(ctx context.Context, f model.ListFilter) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM leads `+leadFilter,
		string(f.Status), string(f.Priority)).Scan(&n)
	return n, err
}

// Statistics reads the lead_statistics view.
func (r *PgLeadRepository) Statistics(ctx context.Context) (*model.LeadStatistics, error) {
	var s model.LeadStatistics
	err := r.db.QueryRow(ctx,
		`SELECT total, new_count, in_progress_count, completed_count, cancelled_count,
		        high_priority, medium_priority, low_priority, last_7_days
		 FROM lead_statistics`,
	).Scan(&s.Total, &s.New, &s.InProgress, &s.Completed, &s.Cancelled,
		&s.HighPriority, &s.MediumPriority, &s.LowPriority, &s.Last7Days)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
