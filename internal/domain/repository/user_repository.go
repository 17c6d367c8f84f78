// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tripdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserFilter narrows user listings.
type UserFilter struct {
	// Roles restricts the listing; empty means every role except SuperAdmin.
	Roles []entity.Role
	// Pending filters on the approval flag when non-nil.
	Pending *bool
	// Offset/Limit page the listing; Limit <= 0 means no paging.
	Offset int
	Limit  int
}

// UserRepository defines the standard operations for identity persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindForLogin retrieves a non-deleted user by email or phone plus role.
	// Exactly one of email/phone is expected to be set.
	FindForLogin(ctx context.Context, email, phone string, role entity.Role) (*entity.User, error)

	// FindByEmailOrPhone retrieves any user holding either credential, for duplicate checks.
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*entity.User, error)

	// List retrieves users matching the filter, never exposing password hashes upward.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// CountByRole counts users holding a role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete permanently removes a user row. Profile cleanup is the caller's
	// responsibility and must happen in the same transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
