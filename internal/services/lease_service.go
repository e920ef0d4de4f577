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

// LeaseView is a lease with its read-time standing attached. Expiry warnings
// and the effective status are recomputed on every read.
type LeaseView struct {
	*models.Lease
	Standing models.LeaseStanding `json:"standing"`
}

type LeaseService interface {
	// Create activates a lease. The property must exist and carry no other
	// active lease; the lease insert and the property status flip happen in
	// one transaction.
	Create(ctx context.Context, actor *models.Profile, l *models.Lease) (*LeaseView, error)
	Get(ctx context.Context, actor *models.Profile, id uuid.UUID) (*LeaseView, error)
	List(ctx context.Context, actor *models.Profile) ([]*LeaseView, error)
	// Terminate removes the lease and frees the property in one transaction.
	Terminate(ctx context.Context, actor *models.Profile, id uuid.UUID, reason string) error

	History(ctx context.Context, actor *models.Profile, propertyID uuid.UUID) ([]*models.LeaseHistory, error)

	RequestRenewal(ctx context.Context, actor *models.Profile, req *models.LeaseRenewalRequest) error
	RespondToRenewal(ctx context.Context, actor *models.Profile, id uuid.UUID, approve bool, message *string) error
	ListRenewals(ctx context.Context, actor *models.Profile) ([]*models.LeaseRenewalRequest, error)
}

type leaseService struct {
	leases     repositories.LeaseRepository
	properties repositories.PropertyRepository
	history    repositories.LeaseHistoryRepository
	renewals   repositories.LeaseRenewalRepository
	now        func() time.Time
}

func NewLeaseService(
	leases repositories.LeaseRepository,
	properties repositories.PropertyRepository,
	history repositories.LeaseHistoryRepository,
	renewals repositories.LeaseRenewalRepository,
) LeaseService {
	return &leaseService{
		leases:     leases,
		properties: properties,
		history:    history,
		renewals:   renewals,
		now:        time.Now,
	}
}

func (s *leaseService) Create(ctx context.Context, actor *models.Profile, l *models.Lease) (*LeaseView, error) {
	if !access.Allows(actor.Role, access.EntityLease, access.VerbCreate) {
		return nil, utils.Forbidden("Your role may not create leases")
	}
	if !l.EndDate.After(l.StartDate) {
		return nil, utils.Validation("Lease end date must be after the start date", nil)
	}

	property, err := s.properties.GetByID(ctx, l.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, utils.NotFound("Property not found")
	}
	if actor.Role == models.RoleLandlord && property.LandlordID != actor.ID {
		return nil, utils.Forbidden("You may only lease out your own properties")
	}

	existing, err := s.leases.GetActiveByPropertyID(ctx, l.PropertyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, occupiedError()
	}

	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	l.LandlordID = property.LandlordID
	l.Status = models.LeaseStatusActive

	if err := s.leases.CreateActive(ctx, l); err != nil {
		// The partial unique index closes the check-then-insert race.
		if repositories.IsUniqueViolation(err) {
			return nil, occupiedError()
		}
		return nil, err
	}

	utils.Logger.WithField("lease_id", l.ID).WithField("property_id", l.PropertyID).Info("lease activated")
	return s.view(l), nil
}

func occupiedError() error {
	return utils.NewAppError(http.StatusConflict, utils.ErrCodePropertyOccupied,
		"Property already has an active lease", utils.ErrPropertyOccupied)
}

func (s *leaseService) Get(ctx context.Context, actor *models.Profile, id uuid.UUID) (*LeaseView, error) {
	l, err := s.leases.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, utils.NotFound("Lease not found")
	}
	if err := authorizeLeaseRead(actor, l); err != nil {
		return nil, err
	}
	return s.view(l), nil
}

func (s *leaseService) List(ctx context.Context, actor *models.Profile) ([]*LeaseView, error) {
	var (
		leases []*models.Lease
		err    error
	)
	switch actor.Role {
	case models.RoleSuperAdmin:
		leases, err = s.leases.ListAll(ctx)
	case models.RoleLandlord:
		leases, err = s.leases.ListByLandlordID(ctx, actor.ID)
	case models.RoleTenant:
		leases, err = s.leases.ListActiveByTenantID(ctx, actor.ID)
	default:
		return nil, utils.Forbidden("Unknown role")
	}
	if err != nil {
		return nil, err
	}

	views := make([]*LeaseView, 0, len(leases))
	for _, l := range leases {
		views = append(views, s.view(l))
	}
	return views, nil
}

func (s *leaseService) Terminate(ctx context.Context, actor *models.Profile, id uuid.UUID, reason string) error {
	if !access.Allows(actor.Role, access.EntityLease, access.VerbDelete) {
		return utils.Forbidden("Your role may not terminate leases")
	}

	l, err := s.leases.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return utils.NotFound("Lease not found")
	}
	if actor.Role == models.RoleLandlord && l.LandlordID != actor.ID {
		return utils.Forbidden("You may only terminate your own leases")
	}

	if err := s.leases.Terminate(ctx, id, reason, s.now()); err != nil {
		return err
	}
	utils.Logger.WithField("lease_id", id).WithField("reason", reason).Info("lease terminated")
	return nil
}

func (s *leaseService) History(ctx context.Context, actor *models.Profile, propertyID uuid.UUID) ([]*models.LeaseHistory, error) {
	switch actor.Role {
	case models.RoleSuperAdmin:
		return s.history.ListByPropertyID(ctx, propertyID)
	case models.RoleLandlord:
		property, err := s.properties.GetByID(ctx, propertyID)
		if err != nil {
			return nil, err
		}
		if property == nil {
			return nil, utils.NotFound("Property not found")
		}
		if property.LandlordID != actor.ID {
			return nil, utils.Forbidden("You may only view history for your own properties")
		}
		return s.history.ListByPropertyID(ctx, propertyID)
	case models.RoleTenant:
		return s.history.ListByTenantID(ctx, actor.ID)
	}
	return nil, utils.Forbidden("Unknown role")
}

func (s *leaseService) RequestRenewal(ctx context.Context, actor *models.Profile, req *models.LeaseRenewalRequest) error {
	if actor.Role != models.RoleTenant {
		return utils.Forbidden("Only tenants may request a renewal")
	}

	l, err := s.leases.GetByID(ctx, req.LeaseID)
	if err != nil {
		return err
	}
	if l == nil {
		return utils.NotFound("Lease not found")
	}
	if l.TenantID != actor.ID {
		return utils.Forbidden("You may only renew your own lease")
	}
	if l.Status != models.LeaseStatusActive {
		return utils.Validation("Only an active lease can be renewed", utils.ErrLeaseNotActive)
	}
	if !req.RequestedEndDate.After(l.EndDate) {
		return utils.Validation("Requested end date must extend the lease", nil)
	}

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	req.TenantID = actor.ID
	req.LandlordID = l.LandlordID
	req.Status = models.RenewalStatusPending
	return s.renewals.Create(ctx, req)
}

func (s *leaseService) RespondToRenewal(ctx context.Context, actor *models.Profile, id uuid.UUID, approve bool, message *string) error {
	if actor.Role == models.RoleTenant {
		return utils.Forbidden("Tenants may not respond to renewal requests")
	}

	req, err := s.renewals.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req == nil {
		return utils.NotFound("Renewal request not found")
	}
	if actor.Role == models.RoleLandlord && req.LandlordID != actor.ID {
		return utils.Forbidden("You may only respond to requests on your own leases")
	}
	if req.Status != models.RenewalStatusPending {
		return utils.Validation("Renewal request already settled", nil)
	}

	status := models.RenewalStatusRejected
	if approve {
		status = models.RenewalStatusApproved
	}
	return s.renewals.Respond(ctx, id, status, message, s.now())
}

func (s *leaseService) ListRenewals(ctx context.Context, actor *models.Profile) ([]*models.LeaseRenewalRequest, error) {
	switch actor.Role {
	case models.RoleSuperAdmin:
		return s.renewals.ListAll(ctx)
	case models.RoleLandlord:
		return s.renewals.ListByLandlordID(ctx, actor.ID)
	case models.RoleTenant:
		return s.renewals.ListByTenantID(ctx, actor.ID)
	}
	return nil, utils.Forbidden("Unknown role")
}

func (s *leaseService) view(l *models.Lease) *LeaseView {
	return &LeaseView{Lease: l, Standing: l.Standing(s.now())}
}

func authorizeLeaseRead(actor *models.Profile, l *models.Lease) error {
	switch actor.Role {
	case models.RoleSuperAdmin:
		return nil
	case models.RoleLandlord:
		if l.LandlordID == actor.ID {
			return nil
		}
	case models.RoleTenant:
		if l.TenantID == actor.ID {
			return nil
		}
	}
	return utils.Forbidden("You may not view this lease")
}
