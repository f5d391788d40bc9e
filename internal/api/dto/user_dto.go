package dto

import "time"

type RegisterDTO struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6,max=64"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=30"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

type UserDTO struct {
	UserID      uint64     `json:"user_id"`
	Email       string     `json:"email"`
	DisplayName *string    `json:"display_name,omitempty"`
	Roles       []string   `json:"roles,omitempty"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
