package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
)

type PaymentUploadRepository interface {
	Create(ctx context.Context, u *models.PaymentUpload) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PaymentUpload, error)
	ListAll(ctx context.Context) ([]*models.PaymentUpload, error)
	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.PaymentUpload, error)
	ListUnverified(ctx context.Context) ([]*models.PaymentUpload, error)
	// MarkVerified stamps the upload once. A second verification attempt
	// finds no unverified row and reports pgx.ErrNoRows.
	MarkVerified(ctx context.Context, id, verifiedBy uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentUploadRepo struct {
	db DB
}

func NewPaymentUploadRepository(db DB) PaymentUploadRepository {
	return &paymentUploadRepo{db: db}
}

func (r *paymentUploadRepo) Create(ctx context.Context, u *models.PaymentUpload) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO payment_uploads (
            id, tenant_id, payment_id, payment_month, upload_type, upload_url,
            reference_number, notes, verified, verified_at, verified_by,
            created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11, NOW(), NOW())
    `,
		u.ID, u.TenantID, u.PaymentID, u.PaymentMonth, u.UploadType, u.UploadURL,
		u.Reference, u.Notes, u.Verified, u.VerifiedAt, u.VerifiedBy,
	)
	return err
}

func (r *paymentUploadRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.PaymentUpload, error) {
	row := r.db.QueryRow(ctx, baseSelectPaymentUpload()+" WHERE id=$1", id)
	return scanPaymentUpload(row)
}

func (r *paymentUploadRepo) ListAll(ctx context.Context) ([]*models.PaymentUpload, error) {
	return r.list(ctx, baseSelectPaymentUpload()+" ORDER BY created_at DESC")
}

func (r *paymentUploadRepo) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.PaymentUpload, error) {
	return r.list(ctx, baseSelectPaymentUpload()+" WHERE tenant_id=$1 ORDER BY created_at DESC", tenantID)
}

func (r *paymentUploadRepo) ListUnverified(ctx context.Context) ([]*models.PaymentUpload, error) {
	return r.list(ctx, baseSelectPaymentUpload()+" WHERE NOT verified ORDER BY created_at")
}

func (r *paymentUploadRepo) MarkVerified(ctx context.Context, id, verifiedBy uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE payment_uploads SET
            verified=TRUE, verified_at=$1, verified_by=$2, updated_at=NOW()
        WHERE id=$3 AND NOT verified
    `, at, verifiedBy, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentUploadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payment_uploads WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentUploadRepo) list(ctx context.Context, q string, args ...any) ([]*models.PaymentUpload, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PaymentUpload
	for rows.Next() {
		u, err := scanPaymentUpload(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func baseSelectPaymentUpload() string {
	return `
        SELECT
            id, tenant_id, payment_id, payment_month, upload_type, upload_url,
            reference_number, notes, verified, verified_at, verified_by,
            created_at, updated_at
        FROM payment_uploads
    `
}

func scanPaymentUpload(row pgx.Row) (*models.PaymentUpload, error) {
	var u models.PaymentUpload
	err := row.Scan(
		&u.ID,
		&u.TenantID,
		&u.PaymentID,
		&u.PaymentMonth,
		&u.UploadType,
		&u.UploadURL,
		&u.Reference,
		&u.Notes,
		&u.Verified,
		&u.VerifiedAt,
		&u.VerifiedBy,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
