package models

import (
	"time"

	"github.com/google/uuid"
)

type MaintenanceStatusType string

const (
	MaintenanceStatusPending    MaintenanceStatusType = "pending"
	MaintenanceStatusInProgress MaintenanceStatusType = "in-progress"
	MaintenanceStatusCompleted  MaintenanceStatusType = "completed"
)

type MaintenancePriorityType string

const (
	MaintenancePriorityLow    MaintenancePriorityType = "low"
	MaintenancePriorityMedium MaintenancePriorityType = "medium"
	MaintenancePriorityHigh   MaintenancePriorityType = "high"
)

// maintenanceRank orders the forward-only status progression.
var maintenanceRank = map[MaintenanceStatusType]int{
	MaintenanceStatusPending:    0,
	MaintenanceStatusInProgress: 1,
	MaintenanceStatusCompleted:  2,
}

// CanTransitionMaintenance reports whether moving from one status to the
// next is allowed. Backward moves and unknown statuses are rejected; there
// is no reopen transition.
func CanTransitionMaintenance(from, to MaintenanceStatusType) bool {
	fr, ok := maintenanceRank[from]
	if !ok {
		return false
	}
	tr, ok := maintenanceRank[to]
	if !ok {
		return false
	}
	return tr > fr
}

// MaintenanceRequest is a tenant-raised issue against a property. Priority
// is a free classification independent of the status axis.
type MaintenanceRequest struct {
	Versioned

	ID          uuid.UUID               `json:"id"`
	TenantID    uuid.UUID               `json:"tenant_id"`
	LandlordID  uuid.UUID               `json:"landlord_id"`
	PropertyID  uuid.UUID               `json:"property_id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Priority    MaintenancePriorityType `json:"priority"`
	Status      MaintenanceStatusType   `json:"status"`
	AssignedTo  *string                 `json:"assigned_to,omitempty"`
	ImageURL    *string                 `json:"image_url,omitempty"`
	CompletedAt *time.Time              `json:"completed_at,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

func (m *MaintenanceRequest) GetID() string { return m.ID.String() }
