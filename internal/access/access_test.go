package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
)

func TestSuperAdminHasFullCRUDEverywhere(t *testing.T) {
	for _, e := range []Entity{EntityProperty, EntityLease, EntityPayment, EntityMaintenance, EntityNotice} {
		for _, v := range []Verb{VerbRead, VerbCreate, VerbUpdate, VerbDelete} {
			assert.True(t, Allows(models.RoleSuperAdmin, e, v), "superadmin %s %s", v, e)
		}
	}
}

func TestTenantIsReadOnlyOnPropertiesAndLeases(t *testing.T) {
	for _, e := range []Entity{EntityProperty, EntityLease} {
		assert.True(t, Allows(models.RoleTenant, e, VerbRead))
		assert.False(t, Allows(models.RoleTenant, e, VerbCreate))
		assert.False(t, Allows(models.RoleTenant, e, VerbUpdate))
		assert.False(t, Allows(models.RoleTenant, e, VerbDelete))
	}
}

func TestTenantMaySubmitButNotDeletePayments(t *testing.T) {
	assert.True(t, Allows(models.RoleTenant, EntityPayment, VerbCreate))
	assert.True(t, Allows(models.RoleTenant, EntityPayment, VerbRead))
	assert.False(t, Allows(models.RoleTenant, EntityPayment, VerbUpdate))
	assert.False(t, Allows(models.RoleTenant, EntityPayment, VerbDelete))
}

func TestTenantMayRaiseButNotTransitionMaintenance(t *testing.T) {
	assert.True(t, Allows(models.RoleTenant, EntityMaintenance, VerbCreate))
	assert.False(t, Allows(models.RoleTenant, EntityMaintenance, VerbUpdate))
	assert.False(t, CanTransitionMaintenance(models.RoleTenant))
	assert.True(t, CanTransitionMaintenance(models.RoleLandlord))
	assert.True(t, CanTransitionMaintenance(models.RoleSuperAdmin))
}

func TestLandlordCannotCreateMaintenanceButMayTransition(t *testing.T) {
	assert.False(t, Allows(models.RoleLandlord, EntityMaintenance, VerbCreate))
	assert.True(t, Allows(models.RoleLandlord, EntityMaintenance, VerbUpdate))
}

func TestOnlyLandlordAndSuperAdminConfirmPayments(t *testing.T) {
	assert.False(t, CanConfirmPayment(models.RoleTenant))
	assert.True(t, CanConfirmPayment(models.RoleLandlord))
	assert.True(t, CanConfirmPayment(models.RoleSuperAdmin))
}

func TestSuperAdminOnlyHelpers(t *testing.T) {
	assert.True(t, CanManageUsers(models.RoleSuperAdmin))
	assert.False(t, CanManageUsers(models.RoleLandlord))
	assert.False(t, CanManageUsers(models.RoleTenant))

	assert.True(t, CanUpdateRate(models.RoleSuperAdmin))
	assert.False(t, CanUpdateRate(models.RoleLandlord))
	assert.False(t, CanUpdateRate(models.RoleTenant))
}

func TestUnknownRoleOrEntityFailsClosed(t *testing.T) {
	assert.False(t, Allows(models.RoleType("manager"), EntityLease, VerbRead))
	assert.False(t, Allows(models.RoleLandlord, Entity("ledger"), VerbRead))
}
