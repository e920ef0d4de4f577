package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/aryam-rgb/mall-rent-nexus/internal/access"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/repositories"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

// Mailer delivers urgent notices out of band. Implementations must be safe
// for concurrent use.
type Mailer interface {
	SendUrgentNotice(ctx context.Context, to []string, title, content string) error
}

// NoticeView adds the acknowledgment count for sender-side display.
type NoticeView struct {
	*models.Notice
	ReadCount int `json:"read_count"`
}

type NoticeService interface {
	Create(ctx context.Context, actor *models.Profile, n *models.Notice) (*NoticeView, error)
	Get(ctx context.Context, actor *models.Profile, id uuid.UUID) (*NoticeView, error)
	// List scopes visibility server-side: tenants see only notices addressed
	// to them, landlords their own, superadmins everything.
	List(ctx context.Context, actor *models.Profile) ([]*NoticeView, error)
	// MarkRead records the actor's own acknowledgment. Entries are
	// append-only; a reader cannot clear or touch anyone else's entry.
	MarkRead(ctx context.Context, actor *models.Profile, id uuid.UUID) error
	Delete(ctx context.Context, actor *models.Profile, id uuid.UUID) error
}

type noticeService struct {
	notices  repositories.NoticeRepository
	profiles repositories.ProfileRepository
	leases   repositories.LeaseRepository
	mailer   Mailer
}

func NewNoticeService(
	notices repositories.NoticeRepository,
	profiles repositories.ProfileRepository,
	leases repositories.LeaseRepository,
	mailer Mailer,
) NoticeService {
	return &noticeService{notices: notices, profiles: profiles, leases: leases, mailer: mailer}
}

func (s *noticeService) Create(ctx context.Context, actor *models.Profile, n *models.Notice) (*NoticeView, error) {
	if !access.Allows(actor.Role, access.EntityNotice, access.VerbCreate) {
		return nil, utils.Forbidden("Your role may not send notices")
	}

	switch n.RecipientType {
	case models.RecipientAll:
	case models.RecipientIndividual:
		if n.RecipientID == nil {
			return nil, utils.Validation("An individual notice needs a recipient", nil)
		}
	case models.RecipientProperty:
		if n.PropertyID == nil {
			return nil, utils.Validation("A property notice needs a property", nil)
		}
	default:
		return nil, utils.Validation("Unknown recipient type", nil)
	}

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.SenderID = actor.ID
	n.ReadStatus = map[string]bool{}

	if err := s.notices.Create(ctx, n); err != nil {
		return nil, err
	}

	if n.IsUrgent && s.mailer != nil {
		// Email failures must not fail the notice itself.
		if err := s.emailRecipients(ctx, actor, n); err != nil {
			utils.Logger.WithError(err).WithField("notice_id", n.ID).Warn("urgent notice email failed")
		}
	}
	return view(n), nil
}

func (s *noticeService) Get(ctx context.Context, actor *models.Profile, id uuid.UUID) (*NoticeView, error) {
	n, err := s.notices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, utils.NotFound("Notice not found")
	}
	if err := s.authorizeRead(ctx, actor, n); err != nil {
		return nil, err
	}
	return view(n), nil
}

func (s *noticeService) List(ctx context.Context, actor *models.Profile) ([]*NoticeView, error) {
	var (
		notices []*models.Notice
		err     error
	)
	switch actor.Role {
	case models.RoleSuperAdmin:
		notices, err = s.notices.ListAll(ctx)
	case models.RoleLandlord:
		notices, err = s.notices.ListBySenderID(ctx, actor.ID)
	case models.RoleTenant:
		notices, err = s.notices.ListVisibleToTenant(ctx, actor.ID)
	default:
		return nil, utils.Forbidden("Unknown role")
	}
	if err != nil {
		return nil, err
	}

	views := make([]*NoticeView, 0, len(notices))
	for _, n := range notices {
		views = append(views, view(n))
	}
	return views, nil
}

func (s *noticeService) MarkRead(ctx context.Context, actor *models.Profile, id uuid.UUID) error {
	n, err := s.notices.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return utils.NotFound("Notice not found")
	}
	if err := s.authorizeRead(ctx, actor, n); err != nil {
		return err
	}
	return s.notices.MarkRead(ctx, id, actor.ID)
}

func (s *noticeService) Delete(ctx context.Context, actor *models.Profile, id uuid.UUID) error {
	if !access.Allows(actor.Role, access.EntityNotice, access.VerbDelete) {
		return utils.Forbidden("Your role may not delete notices")
	}

	n, err := s.notices.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return utils.NotFound("Notice not found")
	}
	if actor.Role == models.RoleLandlord && n.SenderID != actor.ID {
		return utils.Forbidden("You may only delete your own notices")
	}
	return s.notices.Delete(ctx, id)
}

func (s *noticeService) authorizeRead(ctx context.Context, actor *models.Profile, n *models.Notice) error {
	switch actor.Role {
	case models.RoleSuperAdmin:
		return nil
	case models.RoleLandlord:
		if n.SenderID == actor.ID || n.RecipientType == models.RecipientAll {
			return nil
		}
	case models.RoleTenant:
		leases, err := s.leases.ListActiveByTenantID(ctx, actor.ID)
		if err != nil {
			return err
		}
		propertyIDs := make([]uuid.UUID, 0, len(leases))
		for _, l := range leases {
			propertyIDs = append(propertyIDs, l.PropertyID)
		}
		if n.IsAddressedTo(actor.ID, propertyIDs) {
			return nil
		}
	}
	return utils.Forbidden("You may not view this notice")
}

func (s *noticeService) emailRecipients(ctx context.Context, actor *models.Profile, n *models.Notice) error {
	var (
		recipients []*models.Profile
		err        error
	)
	switch n.RecipientType {
	case models.RecipientAll:
		if actor.Role == models.RoleLandlord {
			recipients, err = s.profiles.ListTenantsOfLandlord(ctx, actor.ID)
		} else {
			recipients, err = s.profiles.ListByRole(ctx, models.RoleTenant)
		}
	case models.RecipientIndividual:
		var p *models.Profile
		p, err = s.profiles.GetByID(ctx, *n.RecipientID)
		if p != nil {
			recipients = append(recipients, p)
		}
	case models.RecipientProperty:
		var l *models.Lease
		l, err = s.leases.GetActiveByPropertyID(ctx, *n.PropertyID)
		if err == nil && l != nil {
			var p *models.Profile
			p, err = s.profiles.GetByID(ctx, l.TenantID)
			if p != nil {
				recipients = append(recipients, p)
			}
		}
	}
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		return nil
	}

	emails := make([]string, 0, len(recipients))
	for _, p := range recipients {
		emails = append(emails, p.Email)
	}
	return s.mailer.SendUrgentNotice(ctx, emails, n.Title, n.Content)
}

func view(n *models.Notice) *NoticeView {
	return &NoticeView{Notice: n, ReadCount: n.ReadCount()}
}
