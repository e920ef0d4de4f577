package models

import (
	"time"

	"github.com/google/uuid"
)

type RecipientTypeType string

const (
	RecipientAll        RecipientTypeType = "all"
	RecipientIndividual RecipientTypeType = "individual"
	RecipientProperty   RecipientTypeType = "property"
)

// Notice is a broadcast or targeted message with per-reader acknowledgment.
// ReadStatus is keyed by reader profile id; entries are append-only and
// never reset.
type Notice struct {
	ID            uuid.UUID         `json:"id"`
	SenderID      uuid.UUID         `json:"sender_id"`
	Title         string            `json:"title"`
	Content       string            `json:"content"`
	RecipientType RecipientTypeType `json:"recipient_type"`
	RecipientID   *uuid.UUID        `json:"recipient_id,omitempty"`
	PropertyID    *uuid.UUID        `json:"property_id,omitempty"`
	IsUrgent      bool              `json:"is_urgent"`
	ReadStatus    map[string]bool   `json:"read_status,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (n *Notice) GetID() string { return n.ID.String() }

// IsAddressedTo reports whether a tenant may read this notice: broadcast,
// addressed to them individually, or addressed to a property they occupy.
func (n *Notice) IsAddressedTo(profileID uuid.UUID, propertyIDs []uuid.UUID) bool {
	switch n.RecipientType {
	case RecipientAll:
		return true
	case RecipientIndividual:
		return n.RecipientID != nil && *n.RecipientID == profileID
	case RecipientProperty:
		if n.PropertyID == nil {
			return false
		}
		for _, id := range propertyIDs {
			if id == *n.PropertyID {
				return true
			}
		}
	}
	return false
}

// ReadCount counts readers that acknowledged the notice.
func (n *Notice) ReadCount() int {
	count := 0
	for _, read := range n.ReadStatus {
		if read {
			count++
		}
	}
	return count
}
