package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type NoticeRepository interface {
	Create(ctx context.Context, n *models.Notice) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Notice, error)
	ListAll(ctx context.Context) ([]*models.Notice, error)
	ListBySenderID(ctx context.Context, senderID uuid.UUID) ([]*models.Notice, error)
	// ListVisibleToTenant applies the tenant read scope in SQL: broadcast
	// notices, notices addressed to the tenant, and notices addressed to a
	// property the tenant occupies under an active lease.
	ListVisibleToTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.Notice, error)

	// MarkRead appends the reader's own entry in read_status. Entries are
	// never reset; marking twice is a no-op.
	MarkRead(ctx context.Context, noticeID, readerID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type noticeRepo struct {
	db DB
}

func NewNoticeRepository(db DB) NoticeRepository {
	return &noticeRepo{db: db}
}

func (r *noticeRepo) Create(ctx context.Context, n *models.Notice) error {
	readStatus, err := json.Marshal(n.ReadStatus)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO notices (
            id, sender_id, title, content, recipient_type, recipient_id,
            property_id, is_urgent, read_status, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW())
    `,
		n.ID, n.SenderID, n.Title, n.Content, n.RecipientType, n.RecipientID,
		n.PropertyID, n.IsUrgent, readStatus,
	)
	return err
}

func (r *noticeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Notice, error) {
	row := r.db.QueryRow(ctx, baseSelectNotice()+" WHERE id=$1", id)
	return scanNotice(row)
}

func (r *noticeRepo) ListAll(ctx context.Context) ([]*models.Notice, error) {
	return r.list(ctx, baseSelectNotice()+" ORDER BY created_at DESC")
}

func (r *noticeRepo) ListBySenderID(ctx context.Context, senderID uuid.UUID) ([]*models.Notice, error) {
	return r.list(ctx, baseSelectNotice()+" WHERE sender_id=$1 ORDER BY created_at DESC", senderID)
}

func (r *noticeRepo) ListVisibleToTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.Notice, error) {
	q := baseSelectNotice() + `
        WHERE recipient_type='all'
           OR (recipient_type='individual' AND recipient_id=$1)
           OR (recipient_type='property' AND property_id IN (
                SELECT property_id FROM leases WHERE tenant_id=$1 AND status='active'
           ))
        ORDER BY created_at DESC
    `
	return r.list(ctx, q, tenantID)
}

func (r *noticeRepo) MarkRead(ctx context.Context, noticeID, readerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE notices SET
            read_status = jsonb_set(COALESCE(read_status, '{}'::jsonb), ARRAY[$1::text], 'true'::jsonb),
            updated_at = NOW()
        WHERE id=$2
    `, readerID.String(), noticeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *noticeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notices WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *noticeRepo) list(ctx context.Context, q string, args ...any) ([]*models.Notice, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Notice
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func baseSelectNotice() string {
	return `
        SELECT
            id, sender_id, title, content, recipient_type, recipient_id,
            property_id, is_urgent, read_status, created_at, updated_at
        FROM notices
    `
}

func scanNotice(row pgx.Row) (*models.Notice, error) {
	var (
		n          models.Notice
		readStatus pgtype.JSONB
	)
	err := row.Scan(
		&n.ID,
		&n.SenderID,
		&n.Title,
		&n.Content,
		&n.RecipientType,
		&n.RecipientID,
		&n.PropertyID,
		&n.IsUrgent,
		&readStatus,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if readStatus.Status == pgtype.Present {
		if err := json.Unmarshal(readStatus.Bytes, &n.ReadStatus); err != nil {
			return nil, err
		}
	}
	return &n, nil
}
