package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table.
type LocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null;unique"`
	MapURL    string    `gorm:"type:text"`
	IframeURL string    `gorm:"type:text"`
	IsDeleted bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// DestinationModel mirrors the 'destinations' table.
type DestinationModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LocationID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PlaceName         string    `gorm:"type:varchar(200);not null"`
	MapLink           string    `gorm:"type:text"`
	IframeURL         string    `gorm:"type:text"`
	NearByAttractions string    `gorm:"type:text"`
	BestTimeToVisit   string    `gorm:"type:varchar(200)"`
	ShortSummary      string    `gorm:"type:text"`
	ImageURLs         []string  `gorm:"type:jsonb;serializer:json"`
	TopDestination    bool      `gorm:"not null;default:false"`
	IsDeleted         bool      `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (DestinationModel) TableName() string {
	return "destinations"
}

// ThingToCarryModel mirrors the 'things_to_carry' table.
type ThingToCarryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(200);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Location *LocationModel `gorm:"foreignKey:LocationID"`
}

// TableName explicitly sets the table name for GORM.
func (ThingToCarryModel) TableName() string {
	return "things_to_carry"
}
