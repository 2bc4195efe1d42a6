package usecase

import (
	"context"

	"cakeshop/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a customer.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=50"`
	Address  string `json:"address" validate:"max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=20,phone"`
}

// LoginInput defines the data required for a customer to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput defines the editable profile fields.
type UpdateProfileInput struct {
	Name    string `json:"name" validate:"required,max=50"`
	Address string `json:"address" validate:"max=200"`
	Phone   string `json:"phone" validate:"omitempty,max=20,phone"`
}

// --- Output DTOs ---

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	ExpiresIn   int64            `json:"expires_in"`
	Customer    *entity.Customer `json:"customer"`
}

// AccountUsecase defines customer registration, login and profile management.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.Customer, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Customer, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.Customer, error)
}
