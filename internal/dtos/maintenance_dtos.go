package dtos

type CreateMaintenanceRequest struct {
	PropertyID  string  `json:"property_id" validate:"required,uuid4"`
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"required,min=1,max=2000"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type TransitionMaintenanceRequest struct {
	Status     string  `json:"status" validate:"required,oneof=pending in-progress completed"`
	AssignedTo *string `json:"assigned_to,omitempty" validate:"omitempty,max=200"`
}
