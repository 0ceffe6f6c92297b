package dto

import (
	"github.com/markoco14/ennytime-sub000/internal/constants"
	"github.com/markoco14/ennytime-sub000/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID          uint64  `json:"id"`
	DisplayName string  `json:"display_name"`
	Username    *string `json:"username"`
	Email       string  `json:"email"`
	Birthday    *string `json:"birthday"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Username:    user.Username,
		Email:       user.Email,
	}
	if user.Birthday != nil {
		birthday := user.Birthday.Format(constants.DateFormat)
		dto.Birthday = &birthday
	}
	return dto
}

// PublicUserDTO is the partner-facing shape: no email, no birthday.
type PublicUserDTO struct {
	ID          uint64  `json:"id"`
	DisplayName string  `json:"display_name"`
	Username    *string `json:"username"`
}

// ToPublicUserDTO converts a User model to PublicUserDTO
func ToPublicUserDTO(user models.User) PublicUserDTO {
	return PublicUserDTO{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Username:    user.Username,
	}
}
