package repository

import (
	"context"

	"github.com/leadsite/backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	db Querier
}

// NewPgContactRepository creates a PgContactRepository backed by db.
func NewPgContactRepository(db Querier) *PgContactRepository {
	return &PgContactRepository{db: db}
}

var _ ContactRepository = (*PgContactRepository)(nil)

const contactColumns = `id, name, email, phone, COALESCE(message, ''), status,
	COALESCE(ip_address, ''), COALESCE(user_agent, ''), created_at, updated_at`

// Create inserts c and fills its ID and timestamps from RETURNING.
func (r *PgContactRepository) Create(ctx context.Context, c *model.Contact) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO contacts (name, email, phone, message, status, ip_address, user_agent)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''))
		 RETURNING id, created_at, updated_at`,
		c.Name, c.Email, c.Phone, c.Message, string(c.Status), c.IPAddress, c.UserAgent,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// List returns contacts matching f, newest first.
func (r *PgContactRepository) List(ctx context.Context, f model.ListFilter) ([]*model.Contact, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+contactColumns+`
		 FROM contacts
		 WHERE ($1 = '' OR status = $1)
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		string(f.Status), f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.Status,
			&c.IPAddress, &c.UserAgent, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Count returns the number of contacts matching f, ignoring pagination.
func (r *PgContactRepository) Count(ctx context.Context, f model.ListFilter) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM contacts WHERE ($1 = '' OR status = $1)`,
		string(f.Status)).Scan(&n)
	return n, err
}

// Statistics reads the contact_statistics view.
func (r *PgContactRepository) Statistics(ctx context.Context) (*model.ContactStatistics, error) {
	var s model.ContactStatistics
	err := r.db.QueryRow(ctx,
		`SELECT total, new_count, in_progress_count, completed_count, cancelled_count, last_7_days
		 FROM contact_statistics`,
	).Scan(&s.Total, &s.New, &s.InProgress, &s.Completed, &s.Cancelled, &s.Last7Days)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
