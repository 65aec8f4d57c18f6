package auth

import "courtbook/internal/domain"

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserPublic struct {
	ID               string `json:"id"`
	Email            string `json:"email,omitempty"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	FirstName        string `json:"firstName,omitempty"`
	LastName         string `json:"lastName,omitempty"`
	FullName         string `json:"fullName,omitempty"`
	ProfileCompleted bool   `json:"profileCompleted"`
}

// ToUserPublic shapes the camelCase user payload the mobile client expects.
func ToUserPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:               u.ID.String(),
		Email:            u.Email,
		PhoneNumber:      u.PhoneNumber,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		FullName:         u.FullName,
		ProfileCompleted: u.ProfileCompleted,
	}
}
