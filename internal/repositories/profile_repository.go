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

type ProfileRepository interface {
	Create(ctx context.Context, p *models.Profile) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	ListAll(ctx context.Context) ([]*models.Profile, error)
	ListByRole(ctx context.Context, role models.RoleType) ([]*models.Profile, error)
	ListTenantsOfLandlord(ctx context.Context, landlordID uuid.UUID) ([]*models.Profile, error)

	UpdateIfVersion(ctx context.Context, p *models.Profile, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Profile) error) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type profileRepo struct {
	*BaseVersionedRepo[*models.Profile]
	db DB
}

func NewProfileRepository(db DB) ProfileRepository {
	r := &profileRepo{db: db}
	selectStmt := baseSelectProfile() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanProfile)
	return r
}

func (r *profileRepo) Create(ctx context.Context, p *models.Profile) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO profiles (
            id, name, email, phone, role, avatar_url,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5,$6, NOW(), NOW(), 1)
    `,
		p.ID,
		p.Name,
		p.Email,
		p.Phone,
		p.Role,
		p.AvatarURL,
	)
	return err
}

func (r *profileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *profileRepo) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	row := r.db.QueryRow(ctx, baseSelectProfile()+" WHERE email=$1", email)
	return scanProfile(row)
}

func (r *profileRepo) ListAll(ctx context.Context) ([]*models.Profile, error) {
	return r.list(ctx, baseSelectProfile()+" ORDER BY created_at")
}

func (r *profileRepo) ListByRole(ctx context.Context, role models.RoleType) ([]*models.Profile, error) {
	return r.list(ctx, baseSelectProfile()+" WHERE role=$1 ORDER BY created_at", role)
}

// ListTenantsOfLandlord returns tenant profiles linked to the landlord
// through any of their leases.
func (r *profileRepo) ListTenantsOfLandlord(ctx context.Context, landlordID uuid.UUID) ([]*models.Profile, error) {
	q := `
        SELECT DISTINCT p.id, p.name, p.email, p.phone, p.role, p.avatar_url,
               p.created_at, p.updated_at, p.row_version
        FROM profiles p
        JOIN leases l ON l.tenant_id = p.id
        WHERE l.landlord_id=$1
        ORDER BY p.name
    `
	return r.list(ctx, q, landlordID)
}

func (r *profileRepo) UpdateIfVersion(ctx context.Context, p *models.Profile, expected int64) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
        UPDATE profiles SET
            name=$1, email=$2, phone=$3, role=$4, avatar_url=$5,
            updated_at=NOW(), row_version=row_version+1
        WHERE id=$6 AND row_version=$7
    `,
		p.Name, p.Email, p.Phone, p.Role, p.AvatarURL,
		p.ID, expected,
	)
}

func (r *profileRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Profile) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *profileRepo) list(ctx context.Context, q string, args ...any) ([]*models.Profile, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func baseSelectProfile() string {
	return `
        SELECT
            id, name, email, phone, role, avatar_url,
            created_at, updated_at, row_version
        FROM profiles
    `
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.Phone,
		&p.Role,
		&p.AvatarURL,
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
	return &p, nil
}
