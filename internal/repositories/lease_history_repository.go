package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
)

// LeaseHistoryRepository is read-only. History rows are written inside the
// lease transactions in LeaseRepository.
type LeaseHistoryRepository interface {
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.LeaseHistory, error)
	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.LeaseHistory, error)
}

type leaseHistoryRepo struct {
	db DB
}

func NewLeaseHistoryRepository(db DB) LeaseHistoryRepository {
	return &leaseHistoryRepo{db: db}
}

func (r *leaseHistoryRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.LeaseHistory, error) {
	return r.list(ctx, baseSelectLeaseHistory()+" WHERE property_id=$1 ORDER BY start_date DESC", propertyID)
}

func (r *leaseHistoryRepo) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.LeaseHistory, error) {
	return r.list(ctx, baseSelectLeaseHistory()+" WHERE tenant_id=$1 ORDER BY start_date DESC", tenantID)
}

func (r *leaseHistoryRepo) list(ctx context.Context, q string, args ...any) ([]*models.LeaseHistory, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.LeaseHistory
	for rows.Next() {
		h, err := scanLeaseHistory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func baseSelectLeaseHistory() string {
	return `
        SELECT id, lease_id, property_id, tenant_id, start_date, end_date, reason, created_at
        FROM lease_history
    `
}

func scanLeaseHistory(row pgx.Row) (*models.LeaseHistory, error) {
	var h models.LeaseHistory
	err := row.Scan(
		&h.ID,
		&h.LeaseID,
		&h.PropertyID,
		&h.TenantID,
		&h.StartDate,
		&h.EndDate,
		&h.Reason,
		&h.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}
