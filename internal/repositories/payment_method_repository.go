package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
)

type PaymentMethodRepository interface {
	Create(ctx context.Context, m *models.PaymentMethod) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PaymentMethod, error)
	ListAll(ctx context.Context) ([]*models.PaymentMethod, error)
	ListActive(ctx context.Context) ([]*models.PaymentMethod, error)
	Update(ctx context.Context, m *models.PaymentMethod) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentMethodRepo struct {
	db DB
}

func NewPaymentMethodRepository(db DB) PaymentMethodRepository {
	return &paymentMethodRepo{db: db}
}

func (r *paymentMethodRepo) Create(ctx context.Context, m *models.PaymentMethod) error {
	details, err := json.Marshal(m.Details)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO payment_methods (id, name, type, details, is_active, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5, NOW(), NOW())
    `, m.ID, m.Name, m.Type, details, m.IsActive)
	return err
}

func (r *paymentMethodRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.PaymentMethod, error) {
	row := r.db.QueryRow(ctx, baseSelectPaymentMethod()+" WHERE id=$1", id)
	return scanPaymentMethod(row)
}

func (r *paymentMethodRepo) ListAll(ctx context.Context) ([]*models.PaymentMethod, error) {
	return r.list(ctx, baseSelectPaymentMethod()+" ORDER BY name")
}

func (r *paymentMethodRepo) ListActive(ctx context.Context) ([]*models.PaymentMethod, error) {
	return r.list(ctx, baseSelectPaymentMethod()+" WHERE is_active ORDER BY name")
}

func (r *paymentMethodRepo) Update(ctx context.Context, m *models.PaymentMethod) error {
	details, err := json.Marshal(m.Details)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `
        UPDATE payment_methods SET
            name=$1, type=$2, details=$3, is_active=$4, updated_at=NOW()
        WHERE id=$5
    `, m.Name, m.Type, details, m.IsActive, m.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentMethodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payment_methods WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *paymentMethodRepo) list(ctx context.Context, q string, args ...any) ([]*models.PaymentMethod, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PaymentMethod
	for rows.Next() {
		m, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func baseSelectPaymentMethod() string {
	return `
        SELECT id, name, type, details, is_active, created_at, updated_at
        FROM payment_methods
    `
}

func scanPaymentMethod(row pgx.Row) (*models.PaymentMethod, error) {
	var (
		m       models.PaymentMethod
		details pgtype.JSONB
	)
	err := row.Scan(&m.ID, &m.Name, &m.Type, &details, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if details.Status == pgtype.Present {
		if err := json.Unmarshal(details.Bytes, &m.Details); err != nil {
			return nil, err
		}
	}
	return &m, nil
}
