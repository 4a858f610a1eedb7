package model

import (
	"github.com/Astemirdum/lending-service/pkg/auth"
	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = auth.RoleUser
	RoleLibrarian Role = auth.RoleLibrarian
)

type User struct {
	ID           uuid.UUID `json:"userId" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Phone        string    `json:"phone" db:"phone"`
	Address      string    `json:"address" db:"address"`
	Role         Role      `json:"role" db:"role"`
}

func (u User) Profile() auth.Profile {
	return auth.Profile{
		UserID:   u.ID.String(),
		Username: u.Name,
		Role:     string(u.Role),
	}
}

type UserCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"omitempty,numeric,min=7,max=15"`
	Address  string `json:"address"`
	Role     Role   `json:"-"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}
