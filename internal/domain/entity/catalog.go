package entity

import (
	"time"

	"github.com/google/uuid"
)

// Dish is a restaurant menu item.
type Dish struct {
	ID              uuid.UUID
	UserID          uuid.UUID // Identity of the owning restaurant partner.
	RestaurantID    uuid.UUID
	Name            string
	Description     string
	Price           float64
	DiscountedPrice float64
	ImageURL        string
	Category        string // "veg" or "non-veg".
	Filter          []string
	Deleted         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Product is a shop catalog item.
type Product struct {
	ID              uuid.UUID
	UserID          uuid.UUID // Identity of the owning shop partner.
	ShopID          uuid.UUID
	Name            string
	Description     string
	Price           float64
	DiscountedPrice float64
	ImageURLs       []string
	Category        string
	Filter          []string
	Deleted         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TaskDifficulty grades how demanding a task is.
type TaskDifficulty string

const (
	TaskEasy      TaskDifficulty = "Easy"
	TaskModerate  TaskDifficulty = "Moderate"
	TaskDifficult TaskDifficulty = "Difficult"
)

// IsValid checks the difficulty against the known set.
func (d TaskDifficulty) IsValid() bool {
	switch d {
	case TaskEasy, TaskModerate, TaskDifficult:
		return true
	default:
		return false
	}
}

// TaskInfo carries the free-form logistics attached to a task.
type TaskInfo struct {
	Duration       string         `json:"duration"`
	AgeRequirement string         `json:"agerequirement"`
	DressCode      string         `json:"dresscode"`
	Accessibility  string         `json:"accessibility"`
	Difficulty     TaskDifficulty `json:"difficulty"`
}

// Task is an individual bookable offering under an activity organizer.
// It is the unit reviews and reservations reference for the Activity role.
type Task struct {
	ID                 uuid.UUID
	UserID             uuid.UUID // Identity of the owning activity partner.
	ActivityID         uuid.UUID // Parent activity profile the task belongs to.
	Name               string
	Description        string
	WhatsIncluded      []string
	AdditionalInfo     TaskInfo
	Price              float64
	Slots              []string
	DiscountPercentage float64
	ImageURLs          []string
	Filter             []string
	CustomerRating     float64
	CanReserve         bool
	Deleted            bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
