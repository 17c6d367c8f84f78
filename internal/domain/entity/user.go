// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record shared by every actor role. It is the single
// source of truth for authentication; role-specific business data lives in
// the linked Profile.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Name         string    // Display name of the account holder.
	Email        string    // Unique login email.
	PhoneNumber  string    // Unique login phone number.
	PasswordHash string    // bcrypt hash of the account password.
	Role         Role      // The single role this identity holds.
	Pending      bool      // True until a SuperAdmin approves the registration; blocks login.
	Deleted      bool      // Soft-delete flag; deleted accounts cannot authenticate.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sanitized returns a copy of the user safe for API responses.
func (u *User) Sanitized() *User {
	clone := *u
	clone.PasswordHash = ""

	return &clone
}
