package usecase

import (
	"context"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SuperAdminSignupInput defines the data required to create the SuperAdmin account.
type SuperAdminSignupInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
}

// ReviewRegistrationInput defines the decision on a pending registration.
type ReviewRegistrationInput struct {
	UserID   uuid.UUID
	Approved bool
}

// ListUsersInput narrows the administrative user listing.
type ListUsersInput struct {
	// Role is the wire-level role filter. "Partner" expands to
	// Restaurant|Shop|Activity; empty lists every role except SuperAdmin.
	Role string
	// Pending filters on the approval flag when non-nil.
	Pending *bool
	// Index/Limit page the listing; Limit <= 0 disables paging.
	Index int
	Limit int
}

// UpdateUserInput carries a mixed field patch for an account. Identity fields
// (name, email, phone_number, password) are split off and applied to the user
// row; everything else goes through the role profile's column allowlist.
type UpdateUserInput struct {
	UserID uuid.UUID
	Fields map[string]any
}

// --- Output DTOs ---

// SuperAdminSignupOutput returns the created SuperAdmin and an access token,
// since the SuperAdmin needs no approval and is logged in immediately.
type SuperAdminSignupOutput struct {
	AccessToken string
	User        *entity.User
}

// UserView is one row of the administrative listing: the identity merged with
// its role profile's public fields.
type UserView struct {
	User          *entity.User
	ProfileFields map[string]any
}

// SuperAdminUsecase defines the administrative business operations.
type SuperAdminUsecase interface {
	// Signup creates the single SuperAdmin account. A second signup conflicts.
	Signup(ctx context.Context, input SuperAdminSignupInput) (*SuperAdminSignupOutput, error)

	// ReviewRegistration approves or rejects a pending registration.
	// Approval clears the pending flag; rejection removes the identity and its
	// role profile together so the credentials free up again.
	ReviewRegistration(ctx context.Context, input ReviewRegistrationInput) error

	// ListUsers returns accounts matching the filter, merged with their
	// role-profile public fields.
	ListUsers(ctx context.Context, input ListUsersInput) ([]*UserView, error)

	// UpdateUser applies a mixed identity/profile patch. Changing the password
	// requires the current password in the patch.
	UpdateUser(ctx context.Context, input UpdateUserInput) (*entity.User, error)

	// DeleteUser permanently removes an account and its role profile.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
