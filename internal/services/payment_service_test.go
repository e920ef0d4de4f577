package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

func newPaymentFixture() (*paymentService, *fakePaymentRepo, *fakeLeaseRepo) {
	properties := newFakePropertyRepo()
	leases := newFakeLeaseRepo(properties)
	payments := newFakePaymentRepo()
	svc := &paymentService{
		payments: payments,
		uploads:  newFakeUploadRepo(),
		methods:  newFakeMethodRepo(),
		leases:   leases,
		now:      func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) },
	}
	return svc, payments, leases
}

func seedLease(leases *fakeLeaseRepo, landlordID, tenantID uuid.UUID) *models.Lease {
	l := &models.Lease{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		TenantID:   tenantID,
		LandlordID: landlordID,
		Status:     models.LeaseStatusActive,
	}
	leases.leases[l.ID] = l
	return l
}

func TestPaymentRecordByTenantStaysPending(t *testing.T) {
	svc, _, leases := newPaymentFixture()
	_, landlord, tenant := testActors()
	l := seedLease(leases, landlord.ID, tenant.ID)

	view, err := svc.Record(context.Background(), tenant, &models.Payment{
		LeaseID:  l.ID,
		Amount:   500,
		Currency: models.CurrencyUSD,
		DueDate:  time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:   models.PaymentStatusPaid, // client-sent status is ignored
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPending, view.Payment.Status)
	assert.Nil(t, view.Payment.PaymentDate)
	assert.Equal(t, "$500.00", view.FormattedAmount)
}

func TestPaymentRecordRejectsForeignLease(t *testing.T) {
	svc, _, leases := newPaymentFixture()
	_, landlord, tenant := testActors()
	seedLease(leases, landlord.ID, uuid.New())
	l := seedLease(leases, landlord.ID, uuid.New())

	_, err := svc.Record(context.Background(), tenant, &models.Payment{
		LeaseID: l.ID,
		Amount:  500,
		DueDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestPaymentRecordRejectsNonPositiveAmount(t *testing.T) {
	svc, _, leases := newPaymentFixture()
	_, landlord, tenant := testActors()
	l := seedLease(leases, landlord.ID, tenant.ID)

	_, err := svc.Record(context.Background(), tenant, &models.Payment{LeaseID: l.ID, Amount: 0})
	assert.ErrorIs(t, err, utils.ErrInvalidAmount)

	_, err = svc.Record(context.Background(), tenant, &models.Payment{LeaseID: l.ID, Amount: -10})
	assert.ErrorIs(t, err, utils.ErrInvalidAmount)
}

func TestPaymentConfirmExactAmountMarksPaid(t *testing.T) {
	svc, payments, leases := newPaymentFixture()
	_, landlord, tenant := testActors()
	l := seedLease(leases, landlord.ID, tenant.ID)

	view, err := svc.Record(context.Background(), tenant, &models.Payment{
		LeaseID: l.ID, Amount: 800, Currency: models.CurrencyUSD,
		DueDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	confirmed, err := svc.Confirm(context.Background(), landlord, view.Payment.ID, 800, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPaid, confirmed.Payment.Status)
	require.NotNil(t, confirmed.Payment.PaymentDate)
	assert.Len(t, payments.payments, 1)
}

func TestPaymentConfirmPartialOpensRemainder(t *testing.T) {
	svc, payments, leases := newPaymentFixture()
	_, landlord, tenant := testActors()
	l := seedLease(leases, landlord.ID, tenant.ID)

	view, err := svc.Record(context.Background(), tenant, &models.Payment{
		LeaseID: l.ID, Amount: 800, Currency: models.CurrencyUSD,
		DueDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	confirmed, err := svc.Confirm(context.Background(), landlord, view.Payment.ID, 300, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPartial, confirmed.Payment.Status)
	assert.Equal(t, 300.0, confirmed.Payment.Amount)

	require.Len(t, payments.payments, 2)
	var remainder *models.Payment
	for _, p := range payments.payments {
		if p.ID != view.Payment.ID {
			remainder = p
		}
	}
	require.NotNil(t, remainder)
	assert.Equal(t, 500.0, remainder.Amount)
	assert.Equal(t, models.PaymentStatusPending, remainder.Status)
	assert.Equal(t, l.ID, remainder.LeaseID)
	assert.Equal(t, view.Payment.DueDate, remainder.DueDate)
}

func TestPaymentConfirmRejectsOverpaymentAndZero(t *testing.T) {
	svc, _, leases := newPaymentFixture()
	_, landlord, tenant := testActors()
	l := seedLease(leases, landlord.ID, tenant.ID)

	view, err := svc.Record(context.Background(), tenant, &models.Payment{
		LeaseID: l.ID, Amount: 800,
		DueDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), landlord, view.Payment.ID, 900, nil, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidAmount)

	_, err = svc.Confirm(context.Background(), landlord, view.Payment.ID, 0, nil, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidAmount)
}

func TestPaymentConfirmForbiddenForTenant(t *testing.T) {
	svc, _, leases := newPaymentFixture()
	_, landlord, tenant := testActors()
	l := seedLease(leases, landlord.ID, tenant.ID)

	view, err := svc.Record(context.Background(), tenant, &models.Payment{
		LeaseID: l.ID, Amount: 800,
		DueDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), tenant, view.Payment.ID, 800, nil, nil)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestPaymentConfirmIsIdempotentGuarded(t *testing.T) {
	svc, _, leases := newPaymentFixture()
	_, landlord, tenant := testActors()
	l := seedLease(leases, landlord.ID, tenant.ID)

	view, err := svc.Record(context.Background(), tenant, &models.Payment{
		LeaseID: l.ID, Amount: 800,
		DueDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), landlord, view.Payment.ID, 800, nil, nil)
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), landlord, view.Payment.ID, 800, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrPaymentSettled)
}

func TestPaymentConfirmPartialIsTerminal(t *testing.T) {
	svc, payments, leases := newPaymentFixture()
	_, landlord, tenant := testActors()
	l := seedLease(leases, landlord.ID, tenant.ID)

	view, err := svc.Record(context.Background(), tenant, &models.Payment{
		LeaseID: l.ID, Amount: 800, Currency: models.CurrencyUSD,
		DueDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), landlord, view.Payment.ID, 300, nil, nil)
	require.NoError(t, err)

	// The partial row already records the money received; a second confirm
	// must not rewrite it or open another remainder.
	_, err = svc.Confirm(context.Background(), landlord, view.Payment.ID, 100, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrPaymentSettled)

	assert.Equal(t, 300.0, payments.payments[view.Payment.ID].Amount)
	assert.Equal(t, models.PaymentStatusPartial, payments.payments[view.Payment.ID].Status)
	assert.Len(t, payments.payments, 2)
}

func TestPaymentViewDerivesOverdue(t *testing.T) {
	svc, payments, leases := newPaymentFixture()
	superadmin, landlord, tenant := testActors()
	l := seedLease(leases, landlord.ID, tenant.ID)

	overdue := &models.Payment{
		ID: uuid.New(), LeaseID: l.ID, TenantID: tenant.ID, LandlordID: landlord.ID,
		Amount: 100, Currency: models.CurrencyUGX, Status: models.PaymentStatusPending,
		DueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	payments.payments[overdue.ID] = overdue

	view, err := svc.Get(context.Background(), superadmin, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusOverdue, view.EffectiveStatus)
	// The stored row is untouched.
	assert.Equal(t, models.PaymentStatusPending, payments.payments[overdue.ID].Status)
}

func TestPaymentListScopesByRole(t *testing.T) {
	svc, payments, leases := newPaymentFixture()
	superadmin, landlord, tenant := testActors()
	l := seedLease(leases, landlord.ID, tenant.ID)

	mine := &models.Payment{ID: uuid.New(), LeaseID: l.ID, TenantID: tenant.ID, LandlordID: landlord.ID, Amount: 10, DueDate: time.Now()}
	other := &models.Payment{ID: uuid.New(), LeaseID: uuid.New(), TenantID: uuid.New(), LandlordID: uuid.New(), Amount: 10, DueDate: time.Now()}
	payments.payments[mine.ID] = mine
	payments.payments[other.ID] = other

	all, err := svc.List(context.Background(), superadmin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	forLandlord, err := svc.List(context.Background(), landlord)
	require.NoError(t, err)
	require.Len(t, forLandlord, 1)
	assert.Equal(t, mine.ID, forLandlord[0].Payment.ID)

	forTenant, err := svc.List(context.Background(), tenant)
	require.NoError(t, err)
	require.Len(t, forTenant, 1)
	assert.Equal(t, mine.ID, forTenant[0].Payment.ID)
}

func TestProofUploadAndSingleVerification(t *testing.T) {
	svc, _, _ := newPaymentFixture()
	_, landlord, tenant := testActors()

	u := &models.PaymentUpload{PaymentMonth: "2026-03", UploadType: "receipt", UploadURL: "https://bucket/receipt.png"}
	require.NoError(t, svc.SubmitProof(context.Background(), tenant, u))
	assert.False(t, u.Verified)
	assert.Equal(t, tenant.ID, u.TenantID)

	require.NoError(t, svc.VerifyProof(context.Background(), landlord, u.ID))

	err := svc.VerifyProof(context.Background(), landlord, u.ID)
	require.Error(t, err)

	err = svc.SubmitProof(context.Background(), landlord, &models.PaymentUpload{})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestProofVerificationSettlesLinkedPayment(t *testing.T) {
	svc, payments, leases := newPaymentFixture()
	_, landlord, tenant := testActors()
	l := seedLease(leases, landlord.ID, tenant.ID)

	view, err := svc.Record(context.Background(), tenant, &models.Payment{
		LeaseID: l.ID, Amount: 800, Currency: models.CurrencyUSD,
		DueDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	u := &models.PaymentUpload{
		PaymentID:    &view.Payment.ID,
		PaymentMonth: "2026-03",
		UploadType:   "bank_slip",
		UploadURL:    "https://bucket/slip.png",
	}
	require.NoError(t, svc.SubmitProof(context.Background(), tenant, u))
	require.NoError(t, svc.VerifyProof(context.Background(), landlord, u.ID))

	settled := payments.payments[view.Payment.ID]
	assert.Equal(t, models.PaymentStatusPaid, settled.Status)
	require.NotNil(t, settled.PaymentDate)
}

func TestProofVerificationSkipsAlreadySettledPayment(t *testing.T) {
	svc, payments, leases := newPaymentFixture()
	_, landlord, tenant := testActors()
	l := seedLease(leases, landlord.ID, tenant.ID)

	view, err := svc.Record(context.Background(), tenant, &models.Payment{
		LeaseID: l.ID, Amount: 800, Currency: models.CurrencyUSD,
		DueDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), landlord, view.Payment.ID, 300, nil, nil)
	require.NoError(t, err)

	u := &models.PaymentUpload{
		PaymentID:    &view.Payment.ID,
		PaymentMonth: "2026-03",
		UploadType:   "receipt",
		UploadURL:    "https://bucket/receipt.png",
	}
	require.NoError(t, svc.SubmitProof(context.Background(), tenant, u))
	require.NoError(t, svc.VerifyProof(context.Background(), landlord, u.ID))

	// The partial settle stands; verification does not override it.
	assert.Equal(t, models.PaymentStatusPartial, payments.payments[view.Payment.ID].Status)
	assert.Equal(t, 300.0, payments.payments[view.Payment.ID].Amount)
}

func TestPaymentMethodManagementSuperadminOnly(t *testing.T) {
	svc, _, _ := newPaymentFixture()
	superadmin, landlord, _ := testActors()

	err := svc.SaveMethod(context.Background(), landlord, &models.PaymentMethod{Name: "Cash"})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	active := &models.PaymentMethod{Name: "Mobile Money", Type: "momo", IsActive: true}
	inactive := &models.PaymentMethod{Name: "Old Bank", Type: "bank", IsActive: false}
	require.NoError(t, svc.SaveMethod(context.Background(), superadmin, active))
	require.NoError(t, svc.SaveMethod(context.Background(), superadmin, inactive))

	visible, err := svc.ListMethods(context.Background(), landlord)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Mobile Money", visible[0].Name)

	all, err := svc.ListMethods(context.Background(), superadmin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPaymentConfirmNotFound(t *testing.T) {
	svc, _, _ := newPaymentFixture()
	superadmin, _, _ := testActors()

	_, err := svc.Confirm(context.Background(), superadmin, uuid.New(), 100, nil, nil)
	require.Error(t, err)

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.ErrCodeNotFound, appErr.Code)
}
