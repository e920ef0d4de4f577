package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
)

// In-memory repository fakes. Mutating methods operate on the maps directly;
// optimistic locking is a no-op since there is no concurrency in tests.

var okTag = pgconn.CommandTag("UPDATE 1")

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*models.Profile
	tenants  []*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]*models.Profile{}}
}

func (f *fakeProfileRepo) Create(_ context.Context, p *models.Profile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	return f.profiles[id], nil
}

func (f *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*models.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) ListAll(_ context.Context) ([]*models.Profile, error) {
	out := make([]*models.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfileRepo) ListByRole(_ context.Context, role models.RoleType) ([]*models.Profile, error) {
	var out []*models.Profile
	for _, p := range f.profiles {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) ListTenantsOfLandlord(_ context.Context, _ uuid.UUID) ([]*models.Profile, error) {
	return f.tenants, nil
}

func (f *fakeProfileRepo) UpdateIfVersion(_ context.Context, p *models.Profile, _ int64) (pgconn.CommandTag, error) {
	f.profiles[p.ID] = p
	return okTag, nil
}

func (f *fakeProfileRepo) UpdateWithRetry(_ context.Context, id uuid.UUID, mutate func(*models.Profile) error) error {
	p, ok := f.profiles[id]
	if !ok {
		return pgx.ErrNoRows
	}
	return mutate(p)
}

type fakePropertyRepo struct {
	properties map[uuid.UUID]*models.Property
	tenantOf   map[uuid.UUID][]*models.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{
		properties: map[uuid.UUID]*models.Property{},
		tenantOf:   map[uuid.UUID][]*models.Property{},
	}
}

func (f *fakePropertyRepo) Create(_ context.Context, p *models.Property) error {
	f.properties[p.ID] = p
	return nil
}

func (f *fakePropertyRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Property, error) {
	return f.properties[id], nil
}

func (f *fakePropertyRepo) ListAll(_ context.Context) ([]*models.Property, error) {
	out := make([]*models.Property, 0, len(f.properties))
	for _, p := range f.properties {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePropertyRepo) ListByLandlordID(_ context.Context, landlordID uuid.UUID) ([]*models.Property, error) {
	var out []*models.Property
	for _, p := range f.properties {
		if p.LandlordID == landlordID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePropertyRepo) ListByTenantActiveLease(_ context.Context, tenantID uuid.UUID) ([]*models.Property, error) {
	return f.tenantOf[tenantID], nil
}

func (f *fakePropertyRepo) Update(_ context.Context, p *models.Property) error {
	f.properties[p.ID] = p
	return nil
}

func (f *fakePropertyRepo) UpdateIfVersion(_ context.Context, p *models.Property, _ int64) (pgconn.CommandTag, error) {
	f.properties[p.ID] = p
	return okTag, nil
}

func (f *fakePropertyRepo) UpdateWithRetry(_ context.Context, id uuid.UUID, mutate func(*models.Property) error) error {
	p, ok := f.properties[id]
	if !ok {
		return pgx.ErrNoRows
	}
	return mutate(p)
}

func (f *fakePropertyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.properties[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.properties, id)
	return nil
}

type fakeLeaseRepo struct {
	leases     map[uuid.UUID]*models.Lease
	properties *fakePropertyRepo
	terminated []uuid.UUID
}

func newFakeLeaseRepo(properties *fakePropertyRepo) *fakeLeaseRepo {
	return &fakeLeaseRepo{leases: map[uuid.UUID]*models.Lease{}, properties: properties}
}

func (f *fakeLeaseRepo) CreateActive(_ context.Context, l *models.Lease) error {
	f.leases[l.ID] = l
	if f.properties != nil {
		if p, ok := f.properties.properties[l.PropertyID]; ok {
			p.Status = models.PropertyStatusOccupied
		}
	}
	return nil
}

func (f *fakeLeaseRepo) Terminate(_ context.Context, leaseID uuid.UUID, _ string, _ time.Time) error {
	l, ok := f.leases[leaseID]
	if !ok {
		return pgx.ErrNoRows
	}
	delete(f.leases, leaseID)
	f.terminated = append(f.terminated, leaseID)
	if f.properties != nil {
		if p, ok := f.properties.properties[l.PropertyID]; ok {
			p.Status = models.PropertyStatusAvailable
		}
	}
	return nil
}

func (f *fakeLeaseRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Lease, error) {
	return f.leases[id], nil
}

func (f *fakeLeaseRepo) GetActiveByPropertyID(_ context.Context, propertyID uuid.UUID) (*models.Lease, error) {
	for _, l := range f.leases {
		if l.PropertyID == propertyID && l.Status == models.LeaseStatusActive {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaseRepo) ListAll(_ context.Context) ([]*models.Lease, error) {
	out := make([]*models.Lease, 0, len(f.leases))
	for _, l := range f.leases {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLeaseRepo) ListByLandlordID(_ context.Context, landlordID uuid.UUID) ([]*models.Lease, error) {
	var out []*models.Lease
	for _, l := range f.leases {
		if l.LandlordID == landlordID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaseRepo) ListActiveByTenantID(_ context.Context, tenantID uuid.UUID) ([]*models.Lease, error) {
	var out []*models.Lease
	for _, l := range f.leases {
		if l.TenantID == tenantID && l.Status == models.LeaseStatusActive {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaseRepo) UpdateIfVersion(_ context.Context, l *models.Lease, _ int64) (pgconn.CommandTag, error) {
	f.leases[l.ID] = l
	return okTag, nil
}

func (f *fakeLeaseRepo) UpdateWithRetry(_ context.Context, id uuid.UUID, mutate func(*models.Lease) error) error {
	l, ok := f.leases[id]
	if !ok {
		return pgx.ErrNoRows
	}
	return mutate(l)
}

type fakeHistoryRepo struct {
	entries []*models.LeaseHistory
}

func (f *fakeHistoryRepo) ListByPropertyID(_ context.Context, propertyID uuid.UUID) ([]*models.LeaseHistory, error) {
	var out []*models.LeaseHistory
	for _, h := range f.entries {
		if h.PropertyID == propertyID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) ListByTenantID(_ context.Context, tenantID uuid.UUID) ([]*models.LeaseHistory, error) {
	var out []*models.LeaseHistory
	for _, h := range f.entries {
		if h.TenantID == tenantID {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeRenewalRepo struct {
	requests map[uuid.UUID]*models.LeaseRenewalRequest
	leases   *fakeLeaseRepo
}

func newFakeRenewalRepo(leases *fakeLeaseRepo) *fakeRenewalRepo {
	return &fakeRenewalRepo{requests: map[uuid.UUID]*models.LeaseRenewalRequest{}, leases: leases}
}

func (f *fakeRenewalRepo) Create(_ context.Context, req *models.LeaseRenewalRequest) error {
	f.requests[req.ID] = req
	return nil
}

func (f *fakeRenewalRepo) GetByID(_ context.Context, id uuid.UUID) (*models.LeaseRenewalRequest, error) {
	return f.requests[id], nil
}

func (f *fakeRenewalRepo) ListAll(_ context.Context) ([]*models.LeaseRenewalRequest, error) {
	out := make([]*models.LeaseRenewalRequest, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRenewalRepo) ListByLandlordID(_ context.Context, landlordID uuid.UUID) ([]*models.LeaseRenewalRequest, error) {
	var out []*models.LeaseRenewalRequest
	for _, r := range f.requests {
		if r.LandlordID == landlordID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRenewalRepo) ListByTenantID(_ context.Context, tenantID uuid.UUID) ([]*models.LeaseRenewalRequest, error) {
	var out []*models.LeaseRenewalRequest
	for _, r := range f.requests {
		if r.TenantID == tenantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRenewalRepo) Respond(_ context.Context, id uuid.UUID, status models.RenewalStatusType, message *string, at time.Time) error {
	req, ok := f.requests[id]
	if !ok || req.Status != models.RenewalStatusPending {
		return pgx.ErrNoRows
	}
	req.Status = status
	req.ResponseMessage = message
	req.RespondedAt = &at
	if status == models.RenewalStatusApproved && f.leases != nil {
		if l, ok := f.leases.leases[req.LeaseID]; ok {
			l.EndDate = req.RequestedEndDate
			if req.RequestedRent != nil {
				l.MonthlyRent = *req.RequestedRent
			}
		}
	}
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[uuid.UUID]*models.Payment{}}
}

func (f *fakePaymentRepo) Create(_ context.Context, p *models.Payment) error {
	f.payments[p.ID] = p
	return nil
}

func (f *fakePaymentRepo) SettleWithRemainder(_ context.Context, p *models.Payment, remainder *models.Payment) error {
	existing, ok := f.payments[p.ID]
	if !ok || existing.Status == models.PaymentStatusPaid || existing.Status == models.PaymentStatusPartial {
		return pgx.ErrNoRows
	}
	f.payments[p.ID] = p
	if remainder != nil {
		f.payments[remainder.ID] = remainder
	}
	return nil
}

// GetByID hands back a copy, like a real row scan would; callers mutate
// their copy and persist through SettleWithRemainder or UpdateWithRetry.
func (f *fakePaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepo) ListAll(_ context.Context) ([]*models.Payment, error) {
	out := make([]*models.Payment, 0, len(f.payments))
	for _, p := range f.payments {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByLandlordID(_ context.Context, landlordID uuid.UUID) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range f.payments {
		if p.LandlordID == landlordID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByTenantID(_ context.Context, tenantID uuid.UUID) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range f.payments {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByLeaseID(_ context.Context, leaseID uuid.UUID) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range f.payments {
		if p.LeaseID == leaseID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) UpdateIfVersion(_ context.Context, p *models.Payment, _ int64) (pgconn.CommandTag, error) {
	f.payments[p.ID] = p
	return okTag, nil
}

func (f *fakePaymentRepo) UpdateWithRetry(_ context.Context, id uuid.UUID, mutate func(*models.Payment) error) error {
	p, ok := f.payments[id]
	if !ok {
		return pgx.ErrNoRows
	}
	return mutate(p)
}

func (f *fakePaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.payments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.payments, id)
	return nil
}

type fakeUploadRepo struct {
	uploads map[uuid.UUID]*models.PaymentUpload
}

func newFakeUploadRepo() *fakeUploadRepo {
	return &fakeUploadRepo{uploads: map[uuid.UUID]*models.PaymentUpload{}}
}

func (f *fakeUploadRepo) Create(_ context.Context, u *models.PaymentUpload) error {
	f.uploads[u.ID] = u
	return nil
}

func (f *fakeUploadRepo) GetByID(_ context.Context, id uuid.UUID) (*models.PaymentUpload, error) {
	return f.uploads[id], nil
}

func (f *fakeUploadRepo) ListAll(_ context.Context) ([]*models.PaymentUpload, error) {
	out := make([]*models.PaymentUpload, 0, len(f.uploads))
	for _, u := range f.uploads {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUploadRepo) ListByTenantID(_ context.Context, tenantID uuid.UUID) ([]*models.PaymentUpload, error) {
	var out []*models.PaymentUpload
	for _, u := range f.uploads {
		if u.TenantID == tenantID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUploadRepo) ListUnverified(_ context.Context) ([]*models.PaymentUpload, error) {
	var out []*models.PaymentUpload
	for _, u := range f.uploads {
		if !u.Verified {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUploadRepo) MarkVerified(_ context.Context, id, verifiedBy uuid.UUID, at time.Time) error {
	u, ok := f.uploads[id]
	if !ok || u.Verified {
		return pgx.ErrNoRows
	}
	u.Verified = true
	u.VerifiedAt = &at
	u.VerifiedBy = &verifiedBy
	return nil
}

func (f *fakeUploadRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.uploads[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.uploads, id)
	return nil
}

type fakeMethodRepo struct {
	methods map[uuid.UUID]*models.PaymentMethod
}

func newFakeMethodRepo() *fakeMethodRepo {
	return &fakeMethodRepo{methods: map[uuid.UUID]*models.PaymentMethod{}}
}

func (f *fakeMethodRepo) Create(_ context.Context, m *models.PaymentMethod) error {
	f.methods[m.ID] = m
	return nil
}

func (f *fakeMethodRepo) GetByID(_ context.Context, id uuid.UUID) (*models.PaymentMethod, error) {
	return f.methods[id], nil
}

func (f *fakeMethodRepo) ListAll(_ context.Context) ([]*models.PaymentMethod, error) {
	out := make([]*models.PaymentMethod, 0, len(f.methods))
	for _, m := range f.methods {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMethodRepo) ListActive(_ context.Context) ([]*models.PaymentMethod, error) {
	var out []*models.PaymentMethod
	for _, m := range f.methods {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMethodRepo) Update(_ context.Context, m *models.PaymentMethod) error {
	if _, ok := f.methods[m.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.methods[m.ID] = m
	return nil
}

func (f *fakeMethodRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.methods[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.methods, id)
	return nil
}

type fakeMaintenanceRepo struct {
	requests map[uuid.UUID]*models.MaintenanceRequest
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{requests: map[uuid.UUID]*models.MaintenanceRequest{}}
}

func (f *fakeMaintenanceRepo) Create(_ context.Context, m *models.MaintenanceRequest) error {
	f.requests[m.ID] = m
	return nil
}

func (f *fakeMaintenanceRepo) GetByID(_ context.Context, id uuid.UUID) (*models.MaintenanceRequest, error) {
	return f.requests[id], nil
}

func (f *fakeMaintenanceRepo) ListAll(_ context.Context) ([]*models.MaintenanceRequest, error) {
	out := make([]*models.MaintenanceRequest, 0, len(f.requests))
	for _, m := range f.requests {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMaintenanceRepo) ListByLandlordID(_ context.Context, landlordID uuid.UUID) ([]*models.MaintenanceRequest, error) {
	var out []*models.MaintenanceRequest
	for _, m := range f.requests {
		if m.LandlordID == landlordID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMaintenanceRepo) ListByTenantID(_ context.Context, tenantID uuid.UUID) ([]*models.MaintenanceRequest, error) {
	var out []*models.MaintenanceRequest
	for _, m := range f.requests {
		if m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMaintenanceRepo) UpdateIfVersion(_ context.Context, m *models.MaintenanceRequest, _ int64) (pgconn.CommandTag, error) {
	f.requests[m.ID] = m
	return okTag, nil
}

func (f *fakeMaintenanceRepo) UpdateWithRetry(_ context.Context, id uuid.UUID, mutate func(*models.MaintenanceRequest) error) error {
	m, ok := f.requests[id]
	if !ok {
		return pgx.ErrNoRows
	}
	return mutate(m)
}

func (f *fakeMaintenanceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.requests[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.requests, id)
	return nil
}

type fakeNoticeRepo struct {
	notices map[uuid.UUID]*models.Notice
	leases  *fakeLeaseRepo
}

func newFakeNoticeRepo(leases *fakeLeaseRepo) *fakeNoticeRepo {
	return &fakeNoticeRepo{notices: map[uuid.UUID]*models.Notice{}, leases: leases}
}

func (f *fakeNoticeRepo) Create(_ context.Context, n *models.Notice) error {
	f.notices[n.ID] = n
	return nil
}

func (f *fakeNoticeRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Notice, error) {
	return f.notices[id], nil
}

func (f *fakeNoticeRepo) ListAll(_ context.Context) ([]*models.Notice, error) {
	out := make([]*models.Notice, 0, len(f.notices))
	for _, n := range f.notices {
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNoticeRepo) ListBySenderID(_ context.Context, senderID uuid.UUID) ([]*models.Notice, error) {
	var out []*models.Notice
	for _, n := range f.notices {
		if n.SenderID == senderID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoticeRepo) ListVisibleToTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.Notice, error) {
	var propertyIDs []uuid.UUID
	if f.leases != nil {
		leases, _ := f.leases.ListActiveByTenantID(ctx, tenantID)
		for _, l := range leases {
			propertyIDs = append(propertyIDs, l.PropertyID)
		}
	}
	var out []*models.Notice
	for _, n := range f.notices {
		if n.IsAddressedTo(tenantID, propertyIDs) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoticeRepo) MarkRead(_ context.Context, noticeID, readerID uuid.UUID) error {
	n, ok := f.notices[noticeID]
	if !ok {
		return pgx.ErrNoRows
	}
	if n.ReadStatus == nil {
		n.ReadStatus = map[string]bool{}
	}
	n.ReadStatus[readerID.String()] = true
	return nil
}

func (f *fakeNoticeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.notices[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.notices, id)
	return nil
}

type fakeCurrencyRepo struct {
	settings *models.CurrencySettings
	getErr   error
}

func (f *fakeCurrencyRepo) Get(_ context.Context) (*models.CurrencySettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.settings, nil
}

func (f *fakeCurrencyRepo) Seed(_ context.Context, s *models.CurrencySettings) error {
	if f.settings == nil {
		f.settings = s
	}
	return nil
}

func (f *fakeCurrencyRepo) UpdateRate(_ context.Context, rate float64, updatedBy uuid.UUID) error {
	if f.settings == nil {
		return pgx.ErrNoRows
	}
	f.settings.ExchangeRateUSDToUGX = rate
	f.settings.UpdatedBy = &updatedBy
	f.settings.LastUpdated = time.Now()
	return nil
}

type fakeMailer struct {
	sent [][]string
	err  error
}

func (f *fakeMailer) SendUrgentNotice(_ context.Context, to []string, _, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

// Test principals shared across the service tests.
func testActors() (superadmin, landlord, tenant *models.Profile) {
	superadmin = &models.Profile{ID: uuid.New(), Name: "Root", Email: "root@mall.test", Role: models.RoleSuperAdmin}
	landlord = &models.Profile{ID: uuid.New(), Name: "Asha", Email: "asha@mall.test", Role: models.RoleLandlord}
	tenant = &models.Profile{ID: uuid.New(), Name: "Brian", Email: "brian@mall.test", Role: models.RoleTenant}
	return
}
