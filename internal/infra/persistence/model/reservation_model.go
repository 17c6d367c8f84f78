package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationModel mirrors the 'reservations' table. IsDeleted mirrors
// whether Status is terminal (Cancelled or Completed) and is written in the
// same statement as every status change.
type ReservationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BookingID    uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessType string    `gorm:"type:varchar(20);not null;index:idx_reservations_business"`
	BusinessID   uuid.UUID `gorm:"type:uuid;not null;index:idx_reservations_business"`
	Date         string    `gorm:"type:varchar(50);not null"`
	BookedTime   string    `gorm:"type:varchar(10);not null"`
	TotalMembers int       `gorm:"not null;default:1"`
	AdvanceAmt   float64   `gorm:"not null;default:0"`
	Status       string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	IsDeleted    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Booking *BookingModel `gorm:"foreignKey:BookingID"`
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
