package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/aryam-rgb/mall-rent-nexus/internal/access"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/repositories"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

type PropertyService interface {
	Create(ctx context.Context, actor *models.Profile, p *models.Property) error
	Get(ctx context.Context, actor *models.Profile, id uuid.UUID) (*models.Property, error)
	// List applies the actor's read scope on the server: superadmins see all
	// units, landlords their own, tenants only units they hold an active
	// lease on.
	List(ctx context.Context, actor *models.Profile) ([]*models.Property, error)
	Update(ctx context.Context, actor *models.Profile, id uuid.UUID, mutate func(*models.Property) error) (*models.Property, error)
	Delete(ctx context.Context, actor *models.Profile, id uuid.UUID) error
}

type propertyService struct {
	properties repositories.PropertyRepository
}

func NewPropertyService(properties repositories.PropertyRepository) PropertyService {
	return &propertyService{properties: properties}
}

func (s *propertyService) Create(ctx context.Context, actor *models.Profile, p *models.Property) error {
	if !access.Allows(actor.Role, access.EntityProperty, access.VerbCreate) {
		return utils.Forbidden("Your role may not create properties")
	}

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if actor.Role == models.RoleLandlord {
		p.LandlordID = actor.ID
	}
	if p.Status == "" {
		p.Status = models.PropertyStatusAvailable
	}
	return s.properties.Create(ctx, p)
}

func (s *propertyService) Get(ctx context.Context, actor *models.Profile, id uuid.UUID) (*models.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NotFound("Property not found")
	}
	if err := s.authorizeRead(ctx, actor, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *propertyService) List(ctx context.Context, actor *models.Profile) ([]*models.Property, error) {
	switch actor.Role {
	case models.RoleSuperAdmin:
		return s.properties.ListAll(ctx)
	case models.RoleLandlord:
		return s.properties.ListByLandlordID(ctx, actor.ID)
	case models.RoleTenant:
		return s.properties.ListByTenantActiveLease(ctx, actor.ID)
	}
	return nil, utils.Forbidden("Unknown role")
}

func (s *propertyService) Update(ctx context.Context, actor *models.Profile, id uuid.UUID, mutate func(*models.Property) error) (*models.Property, error) {
	if !access.Allows(actor.Role, access.EntityProperty, access.VerbUpdate) {
		return nil, utils.Forbidden("Your role may not update properties")
	}

	existing, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.NotFound("Property not found")
	}
	if actor.Role == models.RoleLandlord && existing.LandlordID != actor.ID {
		return nil, utils.Forbidden("You may only update your own properties")
	}

	if err := s.properties.UpdateWithRetry(ctx, id, mutate); err != nil {
		return nil, err
	}
	return s.properties.GetByID(ctx, id)
}

func (s *propertyService) Delete(ctx context.Context, actor *models.Profile, id uuid.UUID) error {
	if !access.Allows(actor.Role, access.EntityProperty, access.VerbDelete) {
		return utils.Forbidden("Your role may not delete properties")
	}

	existing, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return utils.NotFound("Property not found")
	}
	if actor.Role == models.RoleLandlord && existing.LandlordID != actor.ID {
		return utils.Forbidden("You may only delete your own properties")
	}
	if existing.Status == models.PropertyStatusOccupied {
		return utils.Validation("An occupied property cannot be deleted", utils.ErrPropertyOccupied)
	}

	return s.properties.Delete(ctx, id)
}

func (s *propertyService) authorizeRead(ctx context.Context, actor *models.Profile, p *models.Property) error {
	switch actor.Role {
	case models.RoleSuperAdmin:
		return nil
	case models.RoleLandlord:
		if p.LandlordID == actor.ID {
			return nil
		}
	case models.RoleTenant:
		mine, err := s.properties.ListByTenantActiveLease(ctx, actor.ID)
		if err != nil {
			return err
		}
		for _, m := range mine {
			if m.ID == p.ID {
				return nil
			}
		}
	}
	return utils.Forbidden("You may not view this property")
}
