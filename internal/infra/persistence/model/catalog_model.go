package model

import (
	"time"

	"github.com/google/uuid"

	"tripdesk/internal/domain/entity"
)

// DishModel mirrors the 'dishes' table. RestaurantID references the owning
// restaurant profile's user_id.
type DishModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Description     string    `gorm:"type:text"`
	Price           float64   `gorm:"not null"`
	DiscountedPrice float64   `gorm:"not null;default:0"`
	ImageURL        string    `gorm:"type:text"`
	Category        string    `gorm:"type:varchar(20);index"`
	Filter          []string  `gorm:"type:jsonb;serializer:json"`
	IsDeleted       bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DishModel) TableName() string {
	return "dishes"
}

// ProductModel mirrors the 'products' table. ShopID references the owning
// shop profile's user_id.
type ProductModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ShopID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Description     string    `gorm:"type:text"`
	Price           float64   `gorm:"not null"`
	DiscountedPrice float64   `gorm:"not null;default:0"`
	ImageURLs       []string  `gorm:"type:jsonb;serializer:json"`
	Category        string    `gorm:"type:varchar(50);index"`
	Filter          []string  `gorm:"type:jsonb;serializer:json"`
	IsDeleted       bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// TaskModel mirrors the 'tasks' table. ActivityID references the parent
// activity profile's user_id; tasks are the reviewable and reservable unit
// for the Activity role.
type TaskModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	ActivityID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name               string          `gorm:"type:varchar(100);not null"`
	Description        string          `gorm:"type:text"`
	WhatsIncluded      []string        `gorm:"type:jsonb;serializer:json"`
	AdditionalInfo     entity.TaskInfo `gorm:"type:jsonb;serializer:json"`
	Price              float64         `gorm:"not null"`
	Slots              []string        `gorm:"type:jsonb;serializer:json"`
	DiscountPercentage float64         `gorm:"not null;default:0"`
	ImageURLs          []string        `gorm:"type:jsonb;serializer:json"`
	Filter             []string        `gorm:"type:jsonb;serializer:json"`
	CustomerRating     float64         `gorm:"not null;default:0"`
	CanReserve         bool            `gorm:"not null;default:true"`
	IsDeleted          bool            `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
