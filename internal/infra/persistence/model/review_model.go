package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. The (business_type, business_id)
// pair is a tagged reference resolved through the business registry, never by
// dynamic reference paths.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BookingID    uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessType string    `gorm:"type:varchar(20);not null;index:idx_reviews_business"`
	BusinessID   uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_business"`
	Title        string    `gorm:"type:varchar(200)"`
	Rating       int       `gorm:"not null"`
	Description  string    `gorm:"type:text"`
	IsDeleted    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Booking *BookingModel `gorm:"foreignKey:BookingID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
