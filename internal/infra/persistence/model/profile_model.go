package model

import (
	"time"

	"github.com/google/uuid"

	"tripdesk/internal/domain/entity"
)

// AgentProfileModel mirrors the 'agent_profiles' table. UserID references users.id (UUID).
type AgentProfileModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName string    `gorm:"type:varchar(100);not null"`
	Logo        string    `gorm:"type:text"`
	Address     string    `gorm:"type:text"`
	Pincode     string    `gorm:"type:varchar(10)"`
	City        string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AgentProfileModel) TableName() string {
	return "agent_profiles"
}

// RestaurantProfileModel mirrors the 'restaurant_profiles' table.
// Array and schedule columns are stored as JSONB through GORM's JSON serializer.
type RestaurantProfileModel struct {
	UserID            uuid.UUID            `gorm:"type:uuid;primaryKey"`
	LocationID        uuid.UUID            `gorm:"type:uuid;index"`
	BusinessName      string               `gorm:"type:varchar(100);not null"`
	OwnerName         string               `gorm:"type:varchar(100)"`
	ImageURLs         []string             `gorm:"type:jsonb;serializer:json"`
	LogoURL           string               `gorm:"type:text"`
	Address           string               `gorm:"type:text"`
	SingleLineAddress string               `gorm:"type:text"`
	City              string               `gorm:"type:varchar(100)"`
	Pincode           string               `gorm:"type:varchar(10)"`
	CustomerRating    float64              `gorm:"not null;default:0"`
	Category          []string             `gorm:"type:jsonb;serializer:json"`
	Discount          float64              `gorm:"not null;default:0"`
	BusinessHours     entity.BusinessHours `gorm:"type:jsonb;serializer:json"`
	Description       string               `gorm:"type:text"`
	MapURL            string               `gorm:"type:text"`
	CanReserve        bool                 `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantProfileModel) TableName() string {
	return "restaurant_profiles"
}

// ShopProfileModel mirrors the 'shop_profiles' table.
type ShopProfileModel struct {
	UserID            uuid.UUID            `gorm:"type:uuid;primaryKey"`
	LocationID        uuid.UUID            `gorm:"type:uuid;index"`
	BusinessName      string               `gorm:"type:varchar(100);not null"`
	OwnerName         string               `gorm:"type:varchar(100)"`
	ImageURLs         []string             `gorm:"type:jsonb;serializer:json"`
	LogoURL           string               `gorm:"type:text"`
	Address           string               `gorm:"type:text"`
	SingleLineAddress string               `gorm:"type:text"`
	City              string               `gorm:"type:varchar(100)"`
	Pincode           string               `gorm:"type:varchar(10)"`
	ShopType          string               `gorm:"type:varchar(50)"`
	CustomerRating    float64              `gorm:"not null;default:0"`
	Discount          float64              `gorm:"not null;default:0"`
	BusinessHours     entity.BusinessHours `gorm:"type:jsonb;serializer:json"`
	Description       string               `gorm:"type:text"`
	MapURL            string               `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopProfileModel) TableName() string {
	return "shop_profiles"
}

// ActivityProfileModel mirrors the 'activity_profiles' table.
// CustomerRating rolls up from the reviews of the activity's tasks.
type ActivityProfileModel struct {
	UserID            uuid.UUID            `gorm:"type:uuid;primaryKey"`
	LocationID        uuid.UUID            `gorm:"type:uuid;index"`
	BusinessName      string               `gorm:"type:varchar(100);not null"`
	OwnerName         string               `gorm:"type:varchar(100)"`
	Address           string               `gorm:"type:text"`
	SingleLineAddress string               `gorm:"type:text"`
	City              string               `gorm:"type:varchar(100)"`
	Pincode           string               `gorm:"type:varchar(10)"`
	ImageURLs         []string             `gorm:"type:jsonb;serializer:json"`
	LogoURL           string               `gorm:"type:text"`
	BusinessHours     entity.BusinessHours `gorm:"type:jsonb;serializer:json"`
	Title             string               `gorm:"type:varchar(200)"`
	Description       string               `gorm:"type:text"`
	CustomerRating    float64              `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Tasks []TaskModel `gorm:"foreignKey:ActivityID;references:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityProfileModel) TableName() string {
	return "activity_profiles"
}
