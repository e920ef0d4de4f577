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

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	// SettleWithRemainder records the received amount and new status on the
	// original row and, when remainder is non-nil, inserts the follow-up
	// pending payment in the same transaction.
	SettleWithRemainder(ctx context.Context, p *models.Payment, remainder *models.Payment) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	ListAll(ctx context.Context) ([]*models.Payment, error)
	ListByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]*models.Payment, error)
	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.Payment, error)
	ListByLeaseID(ctx context.Context, leaseID uuid.UUID) ([]*models.Payment, error)

	UpdateIfVersion(ctx context.Context, p *models.Payment, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Payment) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type paymentRepo struct {
	*BaseVersionedRepo[*models.Payment]
	db DB
}

func NewPaymentRepository(db DB) PaymentRepository {
	r := &paymentRepo{db: db}
	selectStmt := baseSelectPayment() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanPayment)
	return r
}

func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) error {
	_, err := r.db.Exec(ctx, insertPaymentSQL,
		p.ID, p.LeaseID, p.TenantID, p.LandlordID,
		p.Amount, p.Currency, p.DueDate, p.PaymentDate, p.Status,
		p.PaymentMethodID, p.Reference, p.Notes,
	)
	return err
}

const insertPaymentSQL = `
    INSERT INTO payments (
        id, lease_id, tenant_id, landlord_id,
        amount, currency, due_date, payment_date, status,
        payment_method_id, payment_reference, notes,
        created_at, updated_at, row_version
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, NOW(), NOW(), 1)
`

func (r *paymentRepo) SettleWithRemainder(ctx context.Context, p *models.Payment, remainder *models.Payment) error {
	return r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
            UPDATE payments SET
                amount=$1, status=$2, payment_date=$3, payment_method_id=$4,
                payment_reference=$5, notes=$6,
                updated_at=NOW(), row_version=row_version+1
            WHERE id=$7 AND status NOT IN ('paid', 'partial')
        `,
			p.Amount, p.Status, p.PaymentDate, p.PaymentMethodID,
			p.Reference, p.Notes, p.ID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		if remainder == nil {
			return nil
		}
		_, err = tx.Exec(ctx, insertPaymentSQL,
			remainder.ID, remainder.LeaseID, remainder.TenantID, remainder.LandlordID,
			remainder.Amount, remainder.Currency, remainder.DueDate, remainder.PaymentDate,
			remainder.Status, remainder.PaymentMethodID, remainder.Reference, remainder.Notes,
		)
		return err
	})
}

func (r *paymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *paymentRepo) ListAll(ctx context.Context) ([]*models.Payment, error) {
	return r.list(ctx, baseSelectPayment()+" ORDER BY due_date DESC")
}

func (r *paymentRepo) ListByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]*models.Payment, error) {
	return r.list(ctx, baseSelectPayment()+" WHERE landlord_id=$1 ORDER BY due_date DESC", landlordID)
}

func (r *paymentRepo) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.Payment, error) {
	return r.list(ctx, baseSelectPayment()+" WHERE tenant_id=$1 ORDER BY due_date DESC", tenantID)
}

func (r *paymentRepo) ListByLeaseID(ctx context.Context, leaseID uuid.UUID) ([]*models.Payment, error) {
	return r.list(ctx, baseSelectPayment()+" WHERE lease_id=$1 ORDER BY due_date DESC", leaseID)
}

func (r *paymentRepo) UpdateIfVersion(ctx context.Context, p *models.Payment, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
        UPDATE payments SET
            amount=$1, currency=$2, due_date=$3, payment_date=$4, status=$5,
            payment_method_id=$6, payment_reference=$7, notes=$8,
            updated_at=NOW(), row_version=row_version+1
        WHERE id=$9 AND row_version=$10
    `,
		p.Amount, p.Currency, p.DueDate, p.PaymentDate, p.Status,
		p.PaymentMethodID, p.Reference, p.Notes,
		p.ID, expected,
	)
}

func (r *paymentRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Payment) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *paymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentRepo) list(ctx context.Context, q string, args ...any) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func baseSelectPayment() string {
	return `
        SELECT
            id, lease_id, tenant_id, landlord_id,
            amount, currency, due_date, payment_date, status,
            payment_method_id, payment_reference, notes,
            created_at, updated_at, row_version
        FROM payments
    `
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var (
		p           models.Payment
		paymentDate *time.Time
	)
	err := row.Scan(
		&p.ID,
		&p.LeaseID,
		&p.TenantID,
		&p.LandlordID,
		&p.Amount,
		&p.Currency,
		&p.DueDate,
		&paymentDate,
		&p.Status,
		&p.PaymentMethodID,
		&p.Reference,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.RowVersion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p.PaymentDate = paymentDate
	return &p, nil
}
