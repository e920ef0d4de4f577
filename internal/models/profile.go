package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RoleType string

const (
	RoleSuperAdmin RoleType = "superadmin"
	RoleLandlord   RoleType = "landlord"
	RoleTenant     RoleType = "tenant"
)

// ParseRole converts a stored role string to the enum.
func ParseRole(s string) (RoleType, error) {
	switch RoleType(s) {
	case RoleSuperAdmin, RoleLandlord, RoleTenant:
		return RoleType(s), nil
	default:
		return "", fmt.Errorf("invalid role: %q", s)
	}
}

// Profile is the resolved identity of an authenticated principal.
// Exactly one role per profile; the role is mutable only by a superadmin.
type Profile struct {
	Versioned

	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      RoleType  `json:"role"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) GetID() string { return p.ID.String() }
