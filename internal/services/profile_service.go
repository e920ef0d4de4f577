package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/aryam-rgb/mall-rent-nexus/internal/access"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/repositories"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

type ProfileService interface {
	Create(ctx context.Context, actor *models.Profile, p *models.Profile) error
	Get(ctx context.Context, actor *models.Profile, id uuid.UUID) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	// List is the user directory: superadmins see everyone, landlords the
	// tenants on their leases, tenants only themselves.
	List(ctx context.Context, actor *models.Profile) ([]*models.Profile, error)
	UpdateOwn(ctx context.Context, actor *models.Profile, mutate func(*models.Profile) error) (*models.Profile, error)
	// ChangeRole reassigns a profile's single role. Superadmin only; the
	// change takes effect on the target's next request.
	ChangeRole(ctx context.Context, actor *models.Profile, id uuid.UUID, role models.RoleType) (*models.Profile, error)
}

type profileService struct {
	profiles repositories.ProfileRepository
}

func NewProfileService(profiles repositories.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Create(ctx context.Context, actor *models.Profile, p *models.Profile) error {
	if !access.CanManageUsers(actor.Role) {
		return utils.Forbidden("Only a superadmin may create users")
	}
	if _, err := models.ParseRole(string(p.Role)); err != nil {
		return utils.Validation("Unknown role", utils.ErrInvalidRole)
	}

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return s.profiles.Create(ctx, p)
}

func (s *profileService) Get(ctx context.Context, actor *models.Profile, id uuid.UUID) (*models.Profile, error) {
	if actor.ID != id && !access.CanManageUsers(actor.Role) {
		return nil, utils.Forbidden("You may only view your own profile")
	}

	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NotFound("Profile not found")
	}
	return p, nil
}

func (s *profileService) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return s.profiles.GetByEmail(ctx, email)
}

func (s *profileService) List(ctx context.Context, actor *models.Profile) ([]*models.Profile, error) {
	switch actor.Role {
	case models.RoleSuperAdmin:
		return s.profiles.ListAll(ctx)
	case models.RoleLandlord:
		return s.profiles.ListTenantsOfLandlord(ctx, actor.ID)
	case models.RoleTenant:
		return []*models.Profile{actor}, nil
	}
	return nil, utils.Forbidden("Unknown role")
}

func (s *profileService) UpdateOwn(ctx context.Context, actor *models.Profile, mutate func(*models.Profile) error) (*models.Profile, error) {
	guarded := func(p *models.Profile) error {
		role := p.Role
		if err := mutate(p); err != nil {
			return err
		}
		// Role changes go through ChangeRole, never through self-service.
		p.Role = role
		return nil
	}
	if err := s.profiles.UpdateWithRetry(ctx, actor.ID, guarded); err != nil {
		return nil, err
	}
	return s.profiles.GetByID(ctx, actor.ID)
}

func (s *profileService) ChangeRole(ctx context.Context, actor *models.Profile, id uuid.UUID, role models.RoleType) (*models.Profile, error) {
	if !access.CanManageUsers(actor.Role) {
		return nil, utils.Forbidden("Only a superadmin may change roles")
	}
	if _, err := models.ParseRole(string(role)); err != nil {
		return nil, utils.Validation("Unknown role", utils.ErrInvalidRole)
	}

	err := s.profiles.UpdateWithRetry(ctx, id, func(p *models.Profile) error {
		p.Role = role
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Logger.WithField("profile_id", id).WithField("role", role).Info("role changed")
	return s.profiles.GetByID(ctx, id)
}
