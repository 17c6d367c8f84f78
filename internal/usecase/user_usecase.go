// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// The role-specific profile is built by the delivery layer and carries the
// role; identity and profile are persisted together in one transaction.
type RegisterInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
	Profile     entity.Profile
}

// LoginInput defines the data required for an account to log in.
// Exactly one of Email/PhoneNumber is expected to be set.
type LoginInput struct {
	Email       string
	PhoneNumber string
	Password    string
	// Role is the wire-level role string; "Activities" is accepted as an
	// alias for "Activity".
	Role string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// ProfileOutput returns the merged identity + role-profile view of an account.
type ProfileOutput struct {
	User    *entity.User
	Profile entity.Profile
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new identity and its role profile atomically.
	// The account starts pending; a SuperAdmin must approve it before login.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login authenticates credentials for a role and mints an access token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// GetProfile returns the merged identity + role-profile view for an account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
}
