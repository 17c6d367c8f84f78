package entity

import "github.com/google/uuid"

// BusinessKind enumerates the concrete entity kinds a review or reservation
// can reference. References are resolved through an explicit lookup table
// keyed by kind, never by reflecting on a type string.
type BusinessKind string

const (
	// BusinessRestaurant targets a restaurant profile.
	BusinessRestaurant BusinessKind = "Restaurant"
	// BusinessShop targets a shop profile.
	BusinessShop BusinessKind = "Shop"
	// BusinessTask targets a single activity task.
	BusinessTask BusinessKind = "Task"
)

// IsValid checks the kind against the known set.
func (k BusinessKind) IsValid() bool {
	switch k {
	case BusinessRestaurant, BusinessShop, BusinessTask:
		return true
	default:
		return false
	}
}

// Reservable reports whether the kind accepts reservations.
func (k BusinessKind) Reservable() bool {
	return k == BusinessRestaurant || k == BusinessTask
}

// BusinessRef is a tagged reference to a reviewable or reservable entity.
type BusinessRef struct {
	Kind BusinessKind `json:"business_type"`
	ID   uuid.UUID    `json:"business_id"`
}
