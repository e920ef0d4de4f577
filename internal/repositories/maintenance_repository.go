package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type MaintenanceRepository interface {
	Create(ctx context.Context, m *models.MaintenanceRequest) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error)
	ListAll(ctx context.Context) ([]*models.MaintenanceRequest, error)
	ListByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]*models.MaintenanceRequest, error)
	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.MaintenanceRequest, error)

	UpdateIfVersion(ctx context.Context, m *models.MaintenanceRequest, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.MaintenanceRequest) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type maintenanceRepo struct {
	*BaseVersionedRepo[*models.MaintenanceRequest]
	db DB
}

func NewMaintenanceRepository(db DB) MaintenanceRepository {
	r := &maintenanceRepo{db: db}
	selectStmt := baseSelectMaintenance() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanMaintenance)
	return r
}

func (r *maintenanceRepo) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO maintenance_requests (
            id, tenant_id, landlord_id, property_id,
            title, description, priority, status,
            assigned_to, image_url, completed_at,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11, NOW(), NOW(), 1)
    `,
		m.ID, m.TenantID, m.LandlordID, m.PropertyID,
		m.Title, m.Description, m.Priority, m.Status,
		m.AssignedTo, m.ImageURL, m.CompletedAt,
	)
	return err
}

func (r *maintenanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *maintenanceRepo) ListAll(ctx context.Context) ([]*models.MaintenanceRequest, error) {
	return r.list(ctx, baseSelectMaintenance()+" ORDER BY created_at DESC")
}

func (r *maintenanceRepo) ListByLandlordID(ctx context.Context, landlordID uuid.UUID) ([]*models.MaintenanceRequest, error) {
	return r.list(ctx, baseSelectMaintenance()+" WHERE landlord_id=$1 ORDER BY created_at DESC", landlordID)
}

func (r *maintenanceRepo) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.MaintenanceRequest, error) {
	return r.list(ctx, baseSelectMaintenance()+" WHERE tenant_id=$1 ORDER BY created_at DESC", tenantID)
}

func (r *maintenanceRepo) UpdateIfVersion(ctx context.Context, m *models.MaintenanceRequest, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
        UPDATE maintenance_requests SET
            title=$1, description=$2, priority=$3, status=$4,
            assigned_to=$5, image_url=$6, completed_at=$7,
            updated_at=NOW(), row_version=row_version+1
        WHERE id=$8 AND row_version=$9
    `,
		m.Title, m.Description, m.Priority, m.Status,
		m.AssignedTo, m.ImageURL, m.CompletedAt,
		m.ID, expected,
	)
}

func (r *maintenanceRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.MaintenanceRequest) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *maintenanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM maintenance_requests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *maintenanceRepo) list(ctx context.Context, q string, args ...any) ([]*models.MaintenanceRequest, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.MaintenanceRequest
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func baseSelectMaintenance() string {
	return `
        SELECT
            id, tenant_id, landlord_id, property_id,
            title, description, priority, status,
            assigned_to, image_url, completed_at,
            created_at, updated_at, row_version
        FROM maintenance_requests
    `
}

func scanMaintenance(row pgx.Row) (*models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	err := row.Scan(
		&m.ID,
		&m.TenantID,
		&m.LandlordID,
		&m.PropertyID,
		&m.Title,
		&m.Description,
		&m.Priority,
		&m.Status,
		&m.AssignedTo,
		&m.ImageURL,
		&m.CompletedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.RowVersion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
