package dtos

type CreateNoticeRequest struct {
	Title         string  `json:"title" validate:"required,min=1,max=200"`
	Content       string  `json:"content" validate:"required,min=1,max=5000"`
	RecipientType string  `json:"recipient_type" validate:"required,oneof=all individual property"`
	RecipientID   *string `json:"recipient_id,omitempty" validate:"omitempty,uuid4"`
	PropertyID    *string `json:"property_id,omitempty" validate:"omitempty,uuid4"`
	IsUrgent      bool    `json:"is_urgent"`
}
