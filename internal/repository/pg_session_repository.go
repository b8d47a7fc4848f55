package repository

import (
	"context"

	"github.com/leadsite/backend/internal/model"
)

type pgSessionRepository struct {
	db Querier
}

// NewPgSessionRepository returns a PostgreSQL-backed SessionRepository.
func NewPgSessionRepository(db Querier) SessionRepository {
	return &pgSessionRepository{db: db}
}

func (r *pgSessionRepository) Create(ctx context.Context, s *model.AdminSession) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO admin_sessions (user_id, session_token, expires_at, ip_address, user_agent)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
		 RETURNING id, created_at`,
		s.UserID, s.SessionToken, s.ExpiresAt, s.IPAddress, s.UserAgent,
	).Scan(&s.ID, &s.CreatedAt)
}

func (r *pgSessionRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM admin_sessions WHERE session_token = $1`, token)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
