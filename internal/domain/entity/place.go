package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is SuperAdmin-owned reference data scoping bookings, destinations
// and partner profiles.
type Location struct {
	ID        uuid.UUID
	Name      string
	MapURL    string // Google Maps URL.
	IframeURL string // Google Maps embed link.
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Destination is a curated place of interest under a location.
type Destination struct {
	ID                uuid.UUID
	LocationID        uuid.UUID
	PlaceName         string
	MapLink           string
	IframeURL         string
	NearByAttractions string
	BestTimeToVisit   string
	ShortSummary      string
	ImageURLs         []string
	TopDestination    bool
	Deleted           bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ThingToCarry is a packing-list item attached to a location.
type ThingToCarry struct {
	ID         uuid.UUID
	LocationID uuid.UUID
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// LocationName is filled by list queries for display.
	LocationName string
}
