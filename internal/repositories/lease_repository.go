package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type LeaseRepository interface {
	// CreateActive inserts the lease, flips the property to occupied and
	// appends a lease_history row, all in one transaction.
	CreateActive(ctx context.Context, l *models.Lease) error
	// Terminate deletes the lease, resets the property to available and
	// closes out the lease_history row, all in one transaction.
	Terminate(ctx context.Context, leaseID uuid.UUID, reason string, endedAt time.Time) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error)
	GetActiveByPropertyID(ctx context.Context, propertyID uuid.UUID) (*models.Lease, error)
	ListAll(ctx context.Context) ([]*models.Lease, error)
	ListByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]*models.Lease, error)
	ListActiveByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.Lease, error)

	UpdateIfVersion(ctx context.Context, l *models.Lease, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Lease) error) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type leaseRepo struct {
	*BaseVersionedRepo[*models.Lease]
	db DB
}

func NewLeaseRepository(db DB) LeaseRepository {
	r := &leaseRepo{db: db}
	selectStmt := baseSelectLease() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanLease)
	return r
}

func (r *leaseRepo) CreateActive(ctx context.Context, l *models.Lease) error {
	return r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
            INSERT INTO leases (
                id, property_id, tenant_id, landlord_id,
                start_date, end_date, monthly_rent, deposit, currency,
                status, terms, created_at, updated_at, row_version
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11, NOW(), NOW(), 1)
        `,
			l.ID, l.PropertyID, l.TenantID, l.LandlordID,
			l.StartDate, l.EndDate, l.MonthlyRent, l.Deposit, l.Currency,
			l.Status, l.Terms,
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE properties SET status=$1, updated_at=NOW() WHERE id=$2`,
			models.PropertyStatusOccupied, l.PropertyID,
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO lease_history (id, lease_id, property_id, tenant_id, start_date, created_at)
            VALUES ($1,$2,$3,$4,$5, NOW())
        `,
			uuid.New(), l.ID, l.PropertyID, l.TenantID, l.StartDate,
		)
		return err
	})
}

func (r *leaseRepo) Terminate(ctx context.Context, leaseID uuid.UUID, reason string, endedAt time.Time) error {
	return r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		l, err := scanLease(tx.QueryRow(ctx, baseSelectLease()+" WHERE id=$1 FOR UPDATE", leaseID))
		if err != nil {
			return err
		}
		if l == nil {
			return pgx.ErrNoRows
		}

		if _, err := tx.Exec(ctx, `DELETE FROM leases WHERE id=$1`, leaseID); err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE properties SET status=$1, updated_at=NOW() WHERE id=$2`,
			models.PropertyStatusAvailable, l.PropertyID,
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
            UPDATE lease_history SET end_date=$1, reason=$2 WHERE lease_id=$3 AND end_date IS NULL
        `, endedAt, reason, leaseID)
		return err
	})
}

func (r *leaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Lease, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *leaseRepo) GetActiveByPropertyID(ctx context.Context, propertyID uuid.UUID) (*models.Lease, error) {
	row := r.db.QueryRow(ctx, baseSelectLease()+" WHERE property_id=$1 AND status='active'", propertyID)
	return scanLease(row)
}

func (r *leaseRepo) ListAll(ctx context.Context) ([]*models.Lease, error) {
	return r.list(ctx, baseSelectLease()+" ORDER BY created_at")
}

func (r *leaseRepo) ListByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]*models.Lease, error) {
	return r.list(ctx, baseSelectLease()+" WHERE landlord_id=$1 ORDER BY created_at", landlordID)
}

func (r *leaseRepo) ListActiveByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.Lease, error) {
	return r.list(ctx, baseSelectLease()+" WHERE tenant_id=$1 AND status='active' ORDER BY created_at", tenantID)
}

func (r *leaseRepo) UpdateIfVersion(ctx context.Context, l *models.Lease, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
        UPDATE leases SET
            start_date=$1, end_date=$2, monthly_rent=$3, deposit=$4,
            currency=$5, status=$6, terms=$7,
            updated_at=NOW(), row_version=row_version+1
        WHERE id=$8 AND row_version=$9
    `,
		l.StartDate, l.EndDate, l.MonthlyRent, l.Deposit,
		l.Currency, l.Status, l.Terms,
		l.ID, expected,
	)
}

func (r *leaseRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Lease) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *leaseRepo) list(ctx context.Context, q string, args ...any) ([]*models.Lease, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Lease
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func baseSelectLease() string {
	return `
        SELECT
            id, property_id, tenant_id, landlord_id,
            start_date, end_date, monthly_rent, deposit, currency,
            status, terms, created_at, updated_at, row_version
        FROM leases
    `
}

func scanLease(row pgx.Row) (*models.Lease, error) {
	var l models.Lease
	err := row.Scan(
		&l.ID,
		&l.PropertyID,
		&l.TenantID,
		&l.LandlordID,
		&l.StartDate,
		&l.EndDate,
		&l.MonthlyRent,
		&l.Deposit,
		&l.Currency,
		&l.Status,
		&l.Terms,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.RowVersion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}
