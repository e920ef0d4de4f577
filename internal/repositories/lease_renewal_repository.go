package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
)

type LeaseRenewalRepository interface {
	Create(ctx context.Context, req *models.LeaseRenewalRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.LeaseRenewalRequest, error)
	ListAll(ctx context.Context) ([]*models.LeaseRenewalRequest, error)
	ListByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]*models.LeaseRenewalRequest, error)
	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.LeaseRenewalRequest, error)
	// Respond settles a pending request. Approval also pushes the lease end
	// date (and rent, when requested) in the same transaction.
	Respond(ctx context.Context, id uuid.UUID, status models.RenewalStatusType, message *string, at time.Time) error
}

type leaseRenewalRepo struct {
	db DB
}

func NewLeaseRenewalRepository(db DB) LeaseRenewalRepository {
	return &leaseRenewalRepo{db: db}
}

func (r *leaseRenewalRepo) Create(ctx context.Context, req *models.LeaseRenewalRequest) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO lease_renewal_requests (
            id, lease_id, tenant_id, landlord_id,
            requested_end_date, requested_rent, request_message,
            status, response_message, responded_at, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, NOW(), NOW())
    `,
		req.ID, req.LeaseID, req.TenantID, req.LandlordID,
		req.RequestedEndDate, req.RequestedRent, req.RequestMessage,
		req.Status, req.ResponseMessage, req.RespondedAt,
	)
	return err
}

func (r *leaseRenewalRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.LeaseRenewalRequest, error) {
	row := r.db.QueryRow(ctx, baseSelectRenewal()+" WHERE id=$1", id)
	return scanRenewal(row)
}

func (r *leaseRenewalRepo) ListAll(ctx context.Context) ([]*models.LeaseRenewalRequest, error) {
	return r.list(ctx, baseSelectRenewal()+" ORDER BY created_at DESC")
}

func (r *leaseRenewalRepo) ListByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]*models.LeaseRenewalRequest, error) {
	return r.list(ctx, baseSelectRenewal()+" WHERE landlord_id=$1 ORDER BY created_at DESC", landlordID)
}

func (r *leaseRenewalRepo) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.LeaseRenewalRequest, error) {
	return r.list(ctx, baseSelectRenewal()+" WHERE tenant_id=$1 ORDER BY created_at DESC", tenantID)
}

func (r *leaseRenewalRepo) Respond(ctx context.Context, id uuid.UUID, status models.RenewalStatusType, message *string, at time.Time) error {
	return r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		req, err := scanRenewal(tx.QueryRow(ctx, baseSelectRenewal()+" WHERE id=$1 FOR UPDATE", id))
		if err != nil {
			return err
		}
		if req == nil || req.Status != models.RenewalStatusPending {
			return pgx.ErrNoRows
		}

		_, err = tx.Exec(ctx, `
            UPDATE lease_renewal_requests SET
                status=$1, response_message=$2, responded_at=$3, updated_at=NOW()
            WHERE id=$4
        `, status, message, at, id)
		if err != nil {
			return err
		}

		if status != models.RenewalStatusApproved {
			return nil
		}
		if req.RequestedRent != nil {
			_, err = tx.Exec(ctx, `
                UPDATE leases SET end_date=$1, monthly_rent=$2, updated_at=NOW(), row_version=row_version+1
                WHERE id=$3
            `, req.RequestedEndDate, *req.RequestedRent, req.LeaseID)
			return err
		}
		_, err = tx.Exec(ctx, `
            UPDATE leases SET end_date=$1, updated_at=NOW(), row_version=row_version+1
            WHERE id=$2
        `, req.RequestedEndDate, req.LeaseID)
		return err
	})
}

func (r *leaseRenewalRepo) list(ctx context.Context, q string, args ...any) ([]*models.LeaseRenewalRequest, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.LeaseRenewalRequest
	for rows.Next() {
		req, err := scanRenewal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func baseSelectRenewal() string {
	return `
        SELECT
            id, lease_id, tenant_id, landlord_id,
            requested_end_date, requested_rent, request_message,
            status, response_message, responded_at, created_at, updated_at
        FROM lease_renewal_requests
    `
}

func scanRenewal(row pgx.Row) (*models.LeaseRenewalRequest, error) {
	var req models.LeaseRenewalRequest
	err := row.Scan(
		&req.ID,
		&req.LeaseID,
		&req.TenantID,
		&req.LandlordID,
		&req.RequestedEndDate,
		&req.RequestedRent,
		&req.RequestMessage,
		&req.Status,
		&req.ResponseMessage,
		&req.RespondedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}
