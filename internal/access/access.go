// Package access is the single place the role/entity permission matrix
// lives. Services consult it before every write and use the scoped
// repository queries for reads, so the rules hold server-side no matter
// what the client sends.
package access

import (
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
)

type Entity string

const (
	EntityProperty    Entity = "property"
	EntityLease       Entity = "lease"
	EntityPayment     Entity = "payment"
	EntityMaintenance Entity = "maintenance_request"
	EntityNotice      Entity = "notice"
)

type Verb string

const (
	VerbRead   Verb = "read"
	VerbCreate Verb = "create"
	VerbUpdate Verb = "update"
	VerbDelete Verb = "delete"
)

type verbSet map[Verb]struct{}

func verbs(vs ...Verb) verbSet {
	s := make(verbSet, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

var full = verbs(VerbRead, VerbCreate, VerbUpdate, VerbDelete)

// matrix encodes which verbs a role may perform on an entity at all.
// Row scoping (own rows only, own-property rows, ...) is applied on top by
// the repository queries; a verb absent here fails closed.
var matrix = map[Entity]map[models.RoleType]verbSet{
	EntityProperty: {
		models.RoleSuperAdmin: full,
		models.RoleLandlord:   full,
		models.RoleTenant:     verbs(VerbRead),
	},
	EntityLease: {
		models.RoleSuperAdmin: full,
		models.RoleLandlord:   full,
		models.RoleTenant:     verbs(VerbRead),
	},
	EntityPayment: {
		models.RoleSuperAdmin: full,
		models.RoleLandlord:   full,
		models.RoleTenant:     verbs(VerbRead, VerbCreate),
	},
	EntityMaintenance: {
		models.RoleSuperAdmin: full,
		models.RoleLandlord:   verbs(VerbRead, VerbUpdate),
		models.RoleTenant:     verbs(VerbRead, VerbCreate),
	},
	EntityNotice: {
		models.RoleSuperAdmin: full,
		models.RoleLandlord:   full,
		// Tenants update only their own read_status entry; the notice
		// service narrows VerbUpdate down to exactly that.
		models.RoleTenant: verbs(VerbRead, VerbUpdate),
	},
}

// Allows reports whether the role may perform the verb on the entity type.
func Allows(role models.RoleType, entity Entity, verb Verb) bool {
	roleVerbs, ok := matrix[entity]
	if !ok {
		return false
	}
	vs, ok := roleVerbs[role]
	if !ok {
		return false
	}
	_, ok = vs[verb]
	return ok
}

// CanConfirmPayment reports whether the role may move a payment to paid.
// Tenant submissions stay pending/partial until a landlord or superadmin
// confirms.
func CanConfirmPayment(role models.RoleType) bool {
	return role == models.RoleLandlord || role == models.RoleSuperAdmin
}

// CanTransitionMaintenance reports whether the role may change a
// maintenance request's status at all.
func CanTransitionMaintenance(role models.RoleType) bool {
	return role == models.RoleLandlord || role == models.RoleSuperAdmin
}

// CanManageUsers reports whether the role may list all profiles and change
// roles.
func CanManageUsers(role models.RoleType) bool {
	return role == models.RoleSuperAdmin
}

// CanUpdateRate reports whether the role may change the exchange rate.
func CanUpdateRate(role models.RoleType) bool {
	return role == models.RoleSuperAdmin
}
