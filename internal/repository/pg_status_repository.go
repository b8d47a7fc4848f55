package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/leadsite/backend/internal/model"
)

// PgStatusRepository updates submission statuses.
type PgStatusRepository struct {
	db Querier
}

// NewPgStatusRepository creates a PgStatusRepository backed by db.
func NewPgStatusRepository(db Querier) *PgStatusRepository {
	return &PgStatusRepository{db: db}
}

var _ StatusRepository = (*PgStatusRepository)(nil)

// One constant statement per table. The table name never comes from input.
const (
	updateContactStatusSQL = `UPDATE contacts SET status = $1, updated_at = NOW() WHERE id = $2
		RETURNING id, name, email, status, created_at, updated_at`
	updateLeadStatusSQL = `UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2
		RETURNING id, name, email, status, created_at, updated_at`
	updateQuoteStatusSQL = `UPDATE quote_requests SET status = $1, updated_at = NOW() WHERE id = $2
		RETURNING id, name, email, status, created_at, updated_at`
)

func statusStatement(t model.Table) (string, error) {
	switch t {
	case model.TableContacts:
		return updateContactStatusSQL, nil
	case model.TableLeads:
		return updateLeadStatusSQL, nil
	case model.TableQuoteRequests:
		return updateQuoteStatusSQL, nil
	default:
		return "", fmt.Errorf("no status statement for %v", t)
	}
}

// UpdateStatus sets the status of row id in table. It returns ErrNotFound
// when no such row exists.
func (r *PgStatusRepository) UpdateStatus(ctx context.Context, table model.Table, id int64, status model.Status) (*model.SubmissionRecord, error) {
	stmt, err := statusStatement(table)
	if err != nil {
		return nil, err
	}
	rec := &model.SubmissionRecord{Table: table}
	err = r.db.QueryRow(ctx, stmt, string(status), id).
		Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}
