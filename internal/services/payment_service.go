package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aryam-rgb/mall-rent-nexus/internal/access"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/money"
	"github.com/aryam-rgb/mall-rent-nexus/internal/repositories"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

// PaymentView is a payment with overdue derived at read time and the amount
// pre-formatted for display.
type PaymentView struct {
	*models.Payment
	EffectiveStatus models.PaymentStatusType `json:"effective_status"`
	FormattedAmount string                   `json:"formatted_amount"`
}

type PaymentService interface {
	// Record creates a payment row. Tenant submissions always land as
	// pending; only Confirm can move a payment to paid.
	Record(ctx context.Context, actor *models.Profile, p *models.Payment) (*PaymentView, error)
	// Confirm settles a payment with the amount actually received. An exact
	// amount marks it paid; a short amount marks it partial and opens a
	// follow-up pending payment for the remainder in the same transaction.
	Confirm(ctx context.Context, actor *models.Profile, id uuid.UUID, amountReceived float64, methodID *uuid.UUID, reference *string) (*PaymentView, error)
	Get(ctx context.Context, actor *models.Profile, id uuid.UUID) (*PaymentView, error)
	List(ctx context.Context, actor *models.Profile) ([]*PaymentView, error)

	SubmitProof(ctx context.Context, actor *models.Profile, u *models.PaymentUpload) error
	// VerifyProof marks the upload verified and settles its linked payment,
	// if any. Verification is the only path by which a tenant-initiated
	// payment reaches paid.
	VerifyProof(ctx context.Context, actor *models.Profile, uploadID uuid.UUID) error
	ListProofs(ctx context.Context, actor *models.Profile) ([]*models.PaymentUpload, error)

	ListMethods(ctx context.Context, actor *models.Profile) ([]*models.PaymentMethod, error)
	SaveMethod(ctx context.Context, actor *models.Profile, m *models.PaymentMethod) error
}

type paymentService struct {
	payments repositories.PaymentRepository
	uploads  repositories.PaymentUploadRepository
	methods  repositories.PaymentMethodRepository
	leases   repositories.LeaseRepository
	now      func() time.Time
}

func NewPaymentService(
	payments repositories.PaymentRepository,
	uploads repositories.PaymentUploadRepository,
	methods repositories.PaymentMethodRepository,
	leases repositories.LeaseRepository,
) PaymentService {
	return &paymentService{
		payments: payments,
		uploads:  uploads,
		methods:  methods,
		leases:   leases,
		now:      time.Now,
	}
}

func (s *paymentService) Record(ctx context.Context, actor *models.Profile, p *models.Payment) (*PaymentView, error) {
	if !access.Allows(actor.Role, access.EntityPayment, access.VerbCreate) {
		return nil, utils.Forbidden("Your role may not record payments")
	}
	if p.Amount <= 0 {
		return nil, invalidAmountError("Payment amount must be positive")
	}

	l, err := s.leases.GetByID(ctx, p.LeaseID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, utils.NotFound("Lease not found")
	}

	switch actor.Role {
	case models.RoleTenant:
		if l.TenantID != actor.ID {
			return nil, utils.Forbidden("You may only record payments on your own lease")
		}
	case models.RoleLandlord:
		if l.LandlordID != actor.ID {
			return nil, utils.Forbidden("You may only record payments on your own leases")
		}
	}

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.TenantID = l.TenantID
	p.LandlordID = l.LandlordID
	p.Status = models.PaymentStatusPending
	p.PaymentDate = nil

	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.view(p), nil
}

func (s *paymentService) Confirm(ctx context.Context, actor *models.Profile, id uuid.UUID, amountReceived float64, methodID *uuid.UUID, reference *string) (*PaymentView, error) {
	if !access.CanConfirmPayment(actor.Role) {
		return nil, utils.Forbidden("Only a landlord or superadmin may confirm payments")
	}

	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NotFound("Payment not found")
	}
	if actor.Role == models.RoleLandlord && p.LandlordID != actor.ID {
		return nil, utils.Forbidden("You may only confirm payments on your own leases")
	}
	// A partial row is settled too: its amount is the money actually
	// received, and the open remainder lives on its own pending row.
	if p.Status == models.PaymentStatusPaid || p.Status == models.PaymentStatusPartial {
		return nil, utils.NewAppError(http.StatusConflict, utils.ErrCodeConflict,
			"Payment is already settled", utils.ErrPaymentSettled)
	}

	totalDue := p.Amount
	if amountReceived <= 0 {
		return nil, invalidAmountError("Received amount must be positive")
	}
	if amountReceived > totalDue {
		return nil, invalidAmountError("Received amount exceeds the amount due")
	}

	now := s.now()
	p.Amount = amountReceived
	p.PaymentDate = &now
	p.PaymentMethodID = methodID
	p.Reference = reference

	var remainder *models.Payment
	if amountReceived == totalDue {
		p.Status = models.PaymentStatusPaid
	} else {
		p.Status = models.PaymentStatusPartial
		remainder = &models.Payment{
			ID:         uuid.New(),
			LeaseID:    p.LeaseID,
			TenantID:   p.TenantID,
			LandlordID: p.LandlordID,
			Amount:     models.Remainder(totalDue, amountReceived),
			Currency:   p.Currency,
			DueDate:    p.DueDate,
			Status:     models.PaymentStatusPending,
		}
	}

	if err := s.payments.SettleWithRemainder(ctx, p, remainder); err != nil {
		return nil, err
	}
	utils.Logger.WithField("payment_id", p.ID).WithField("status", p.Status).Info("payment confirmed")
	return s.view(p), nil
}

func invalidAmountError(message string) error {
	return utils.NewAppError(http.StatusUnprocessableEntity, utils.ErrCodeInvalidAmount,
		message, utils.ErrInvalidAmount)
}

func (s *paymentService) Get(ctx context.Context, actor *models.Profile, id uuid.UUID) (*PaymentView, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NotFound("Payment not found")
	}

	switch actor.Role {
	case models.RoleSuperAdmin:
	case models.RoleLandlord:
		if p.LandlordID != actor.ID {
			return nil, utils.Forbidden("You may not view this payment")
		}
	case models.RoleTenant:
		if p.TenantID != actor.ID {
			return nil, utils.Forbidden("You may not view this payment")
		}
	default:
		return nil, utils.Forbidden("Unknown role")
	}
	return s.view(p), nil
}

func (s *paymentService) List(ctx context.Context, actor *models.Profile) ([]*PaymentView, error) {
	var (
		payments []*models.Payment
		err      error
	)
	switch actor.Role {
	case models.RoleSuperAdmin:
		payments, err = s.payments.ListAll(ctx)
	case models.RoleLandlord:
		payments, err = s.payments.ListByLandlordID(ctx, actor.ID)
	case models.RoleTenant:
		payments, err = s.payments.ListByTenantID(ctx, actor.ID)
	default:
		return nil, utils.Forbidden("Unknown role")
	}
	if err != nil {
		return nil, err
	}

	views := make([]*PaymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, s.view(p))
	}
	return views, nil
}

func (s *paymentService) SubmitProof(ctx context.Context, actor *models.Profile, u *models.PaymentUpload) error {
	if actor.Role != models.RoleTenant {
		return utils.Forbidden("Only tenants submit proof of payment")
	}

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.TenantID = actor.ID
	u.Verified = false
	u.VerifiedAt = nil
	u.VerifiedBy = nil
	return s.uploads.Create(ctx, u)
}

func (s *paymentService) VerifyProof(ctx context.Context, actor *models.Profile, uploadID uuid.UUID) error {
	if !access.CanConfirmPayment(actor.Role) {
		return utils.Forbidden("Only a landlord or superadmin may verify uploads")
	}

	u, err := s.uploads.GetByID(ctx, uploadID)
	if err != nil {
		return err
	}
	if u == nil {
		return utils.NotFound("Upload not found")
	}

	now := s.now()
	if err := s.uploads.MarkVerified(ctx, uploadID, actor.ID, now); err != nil {
		return err
	}
	if u.PaymentID == nil {
		return nil
	}

	p, err := s.payments.GetByID(ctx, *u.PaymentID)
	if err != nil {
		return err
	}
	// Skip payments already settled through direct confirmation.
	if p == nil || p.Status == models.PaymentStatusPaid || p.Status == models.PaymentStatusPartial {
		return nil
	}

	p.Status = models.PaymentStatusPaid
	p.PaymentDate = &now
	if err := s.payments.SettleWithRemainder(ctx, p, nil); err != nil {
		return err
	}
	utils.Logger.WithField("payment_id", p.ID).WithField("upload_id", uploadID).Info("payment settled via verified upload")
	return nil
}

func (s *paymentService) ListProofs(ctx context.Context, actor *models.Profile) ([]*models.PaymentUpload, error) {
	if actor.Role == models.RoleTenant {
		return s.uploads.ListByTenantID(ctx, actor.ID)
	}
	return s.uploads.ListAll(ctx)
}

func (s *paymentService) ListMethods(ctx context.Context, actor *models.Profile) ([]*models.PaymentMethod, error) {
	if actor.Role == models.RoleSuperAdmin {
		return s.methods.ListAll(ctx)
	}
	return s.methods.ListActive(ctx)
}

func (s *paymentService) SaveMethod(ctx context.Context, actor *models.Profile, m *models.PaymentMethod) error {
	if actor.Role != models.RoleSuperAdmin {
		return utils.Forbidden("Only a superadmin may manage payment methods")
	}

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
		return s.methods.Create(ctx, m)
	}
	return s.methods.Update(ctx, m)
}

func (s *paymentService) view(p *models.Payment) *PaymentView {
	return &PaymentView{
		Payment:         p,
		EffectiveStatus: p.EffectiveStatus(s.now()),
		FormattedAmount: money.Format(p.Amount, p.Currency),
	}
}
