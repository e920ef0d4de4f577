package dtos

type CreateProfileRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=200"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Role      string  `json:"role" validate:"required,oneof=superadmin landlord tenant"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=superadmin landlord tenant"`
}
