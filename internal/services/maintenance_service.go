package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aryam-rgb/mall-rent-nexus/internal/access"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/repositories"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

type MaintenanceService interface {
	// Create opens a request in pending. Tenants may only raise requests
	// against a property they hold an active lease on.
	Create(ctx context.Context, actor *models.Profile, m *models.MaintenanceRequest) error
	Get(ctx context.Context, actor *models.Profile, id uuid.UUID) (*models.MaintenanceRequest, error)
	List(ctx context.Context, actor *models.Profile) ([]*models.MaintenanceRequest, error)
	// Transition moves a request forward through pending, in-progress,
	// completed. completed_at is stamped on completion and only then.
	Transition(ctx context.Context, actor *models.Profile, id uuid.UUID, to models.MaintenanceStatusType, assignedTo *string) (*models.MaintenanceRequest, error)
}

type maintenanceService struct {
	requests repositories.MaintenanceRepository
	leases   repositories.LeaseRepository
	now      func() time.Time
}

func NewMaintenanceService(requests repositories.MaintenanceRepository, leases repositories.LeaseRepository) MaintenanceService {
	return &maintenanceService{requests: requests, leases: leases, now: time.Now}
}

func (s *maintenanceService) Create(ctx context.Context, actor *models.Profile, m *models.MaintenanceRequest) error {
	if !access.Allows(actor.Role, access.EntityMaintenance, access.VerbCreate) {
		return utils.Forbidden("Your role may not open maintenance requests")
	}

	if actor.Role == models.RoleTenant {
		leases, err := s.leases.ListActiveByTenantID(ctx, actor.ID)
		if err != nil {
			return err
		}
		var lease *models.Lease
		for _, l := range leases {
			if l.PropertyID == m.PropertyID {
				lease = l
				break
			}
		}
		if lease == nil {
			return utils.Forbidden("You may only raise requests against a property you lease")
		}
		m.TenantID = actor.ID
		m.LandlordID = lease.LandlordID
	}

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Priority == "" {
		m.Priority = models.MaintenancePriorityMedium
	}
	m.Status = models.MaintenanceStatusPending
	m.CompletedAt = nil
	return s.requests.Create(ctx, m)
}

func (s *maintenanceService) Get(ctx context.Context, actor *models.Profile, id uuid.UUID) (*models.MaintenanceRequest, error) {
	m, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, utils.NotFound("Maintenance request not found")
	}
	if err := authorizeMaintenanceRead(actor, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *maintenanceService) List(ctx context.Context, actor *models.Profile) ([]*models.MaintenanceRequest, error) {
	switch actor.Role {
	case models.RoleSuperAdmin:
		return s.requests.ListAll(ctx)
	case models.RoleLandlord:
		return s.requests.ListByLandlordID(ctx, actor.ID)
	case models.RoleTenant:
		return s.requests.ListByTenantID(ctx, actor.ID)
	}
	return nil, utils.Forbidden("Unknown role")
}

func (s *maintenanceService) Transition(ctx context.Context, actor *models.Profile, id uuid.UUID, to models.MaintenanceStatusType, assignedTo *string) (*models.MaintenanceRequest, error) {
	if !access.CanTransitionMaintenance(actor.Role) {
		return nil, utils.Forbidden("Only a landlord or superadmin may change request status")
	}

	existing, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.NotFound("Maintenance request not found")
	}
	if actor.Role == models.RoleLandlord && existing.LandlordID != actor.ID {
		return nil, utils.Forbidden("You may only update requests on your own properties")
	}

	err = s.requests.UpdateWithRetry(ctx, id, func(m *models.MaintenanceRequest) error {
		if !models.CanTransitionMaintenance(m.Status, to) {
			return utils.NewAppError(http.StatusUnprocessableEntity, utils.ErrCodeInvalidTransition,
				"Requests only move forward through pending, in-progress, completed", utils.ErrInvalidTransition)
		}
		m.Status = to
		if assignedTo != nil {
			m.AssignedTo = assignedTo
		}
		if to == models.MaintenanceStatusCompleted {
			now := s.now()
			m.CompletedAt = &now
		} else {
			m.CompletedAt = nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.requests.GetByID(ctx, id)
}

func authorizeMaintenanceRead(actor *models.Profile, m *models.MaintenanceRequest) error {
	switch actor.Role {
	case models.RoleSuperAdmin:
		return nil
	case models.RoleLandlord:
		if m.LandlordID == actor.ID {
			return nil
		}
	case models.RoleTenant:
		if m.TenantID == actor.ID {
			return nil
		}
	}
	return utils.Forbidden("You may not view this maintenance request")
}
