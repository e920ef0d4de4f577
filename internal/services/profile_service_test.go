package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

func newProfileFixture() (ProfileService, *fakeProfileRepo) {
	repo := newFakeProfileRepo()
	return NewProfileService(repo), repo
}

func TestProfileCreateSuperadminOnly(t *testing.T) {
	svc, repo := newProfileFixture()
	superadmin, landlord, _ := testActors()

	err := svc.Create(context.Background(), landlord, &models.Profile{Name: "X", Email: "x@mall.test", Role: models.RoleTenant})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	p := &models.Profile{Name: "New Tenant", Email: "new@mall.test", Role: models.RoleTenant}
	require.NoError(t, svc.Create(context.Background(), superadmin, p))
	assert.Contains(t, repo.profiles, p.ID)
}

func TestProfileCreateRejectsUnknownRole(t *testing.T) {
	svc, _ := newProfileFixture()
	superadmin, _, _ := testActors()

	err := svc.Create(context.Background(), superadmin, &models.Profile{Name: "X", Email: "x@mall.test", Role: "manager"})
	assert.ErrorIs(t, err, utils.ErrInvalidRole)
}

func TestProfileGetScopedToSelf(t *testing.T) {
	svc, repo := newProfileFixture()
	superadmin, landlord, tenant := testActors()
	repo.profiles[landlord.ID] = landlord
	repo.profiles[tenant.ID] = tenant

	got, err := svc.Get(context.Background(), tenant, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, got.ID)

	_, err = svc.Get(context.Background(), tenant, landlord.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	got, err = svc.Get(context.Background(), superadmin, landlord.ID)
	require.NoError(t, err)
	assert.Equal(t, landlord.ID, got.ID)
}

func TestProfileListScopesByRole(t *testing.T) {
	svc, repo := newProfileFixture()
	superadmin, landlord, tenant := testActors()
	repo.profiles[superadmin.ID] = superadmin
	repo.profiles[landlord.ID] = landlord
	repo.profiles[tenant.ID] = tenant
	repo.tenants = []*models.Profile{tenant}

	all, err := svc.List(context.Background(), superadmin)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.List(context.Background(), landlord)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, tenant.ID, mine[0].ID)

	self, err := svc.List(context.Background(), tenant)
	require.NoError(t, err)
	require.Len(t, self, 1)
	assert.Equal(t, tenant.ID, self[0].ID)
}

func TestProfileUpdateOwnCannotEscalateRole(t *testing.T) {
	svc, repo := newProfileFixture()
	_, _, tenant := testActors()
	repo.profiles[tenant.ID] = tenant

	updated, err := svc.UpdateOwn(context.Background(), tenant, func(p *models.Profile) error {
		p.Name = "Brian O."
		p.Role = models.RoleSuperAdmin
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "Brian O.", updated.Name)
	assert.Equal(t, models.RoleTenant, updated.Role)
}

func TestProfileChangeRole(t *testing.T) {
	svc, repo := newProfileFixture()
	superadmin, landlord, tenant := testActors()
	repo.profiles[tenant.ID] = tenant

	_, err := svc.ChangeRole(context.Background(), landlord, tenant.ID, models.RoleLandlord)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.ChangeRole(context.Background(), superadmin, tenant.ID, "owner")
	assert.ErrorIs(t, err, utils.ErrInvalidRole)

	updated, err := svc.ChangeRole(context.Background(), superadmin, tenant.ID, models.RoleLandlord)
	require.NoError(t, err)
	assert.Equal(t, models.RoleLandlord, updated.Role)
}
