package dtos

type CreatePropertyRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Location    string   `json:"location" validate:"required,min=1,max=300"`
	UnitNumber  *string  `json:"unit_number,omitempty" validate:"omitempty,max=50"`
	SizeSqft    *float64 `json:"size_sqft,omitempty" validate:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	RentAmount  float64  `json:"rent_amount" validate:"required,gt=0"`
	Currency    string   `json:"currency" validate:"required,oneof=USD UGX"`
}

type UpdatePropertyRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,min=1,max=300"`
	UnitNumber  *string  `json:"unit_number,omitempty" validate:"omitempty,max=50"`
	SizeSqft    *float64 `json:"size_sqft,omitempty" validate:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	RentAmount  *float64 `json:"rent_amount,omitempty" validate:"omitempty,gt=0"`
	Currency    *string  `json:"currency,omitempty" validate:"omitempty,oneof=USD UGX"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=available occupied maintenance"`
}
