package models

import (
	"time"

	"github.com/google/uuid"
)

type PropertyStatusType string

const (
	PropertyStatusAvailable   PropertyStatusType = "available"
	PropertyStatusOccupied    PropertyStatusType = "occupied"
	PropertyStatusMaintenance PropertyStatusType = "maintenance"
)

// Property is a rentable unit owned by exactly one landlord. Its status is
// set to occupied exactly when an active lease is created against it and
// reverts to available when that lease ends or is deleted.
type Property struct {
	Versioned

	ID          uuid.UUID          `json:"id"`
	LandlordID  uuid.UUID          `json:"landlord_id"`
	Name        string             `json:"name"`
	Location    string             `json:"location"`
	UnitNumber  string             `json:"unit_number"`
	SizeSqft    float64            `json:"size_sqft"`
	Description *string            `json:"description,omitempty"`
	ImageURL    *string            `json:"image_url,omitempty"`
	RentAmount  float64            `json:"rent_amount"`
	Currency    CurrencyType       `json:"currency"`
	Status      PropertyStatusType `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func (p *Property) GetID() string { return p.ID.String() }
