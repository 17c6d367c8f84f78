package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the role-specific half of an account. Exactly one profile exists
// per identity, and a profile cannot outlive its identity.
type Profile interface {
	// ProfileRole identifies which role this profile belongs to.
	ProfileRole() Role
	// OwnerID returns the identity the profile is linked to.
	OwnerID() uuid.UUID
	// PublicFields returns the role attributes merged into user-facing views.
	PublicFields() map[string]any
}

// BusinessHours describes a partner's weekly opening schedule.
type BusinessHours struct {
	Days        []string `json:"days"`
	OpeningTime string   `json:"openingTime"`
	ClosingTime string   `json:"closingTime"`
}

// AgentProfile holds the business attributes of a travel agent.
type AgentProfile struct {
	UserID      uuid.UUID
	CompanyName string
	Logo        string
	Address     string
	Pincode     string
	City        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *AgentProfile) ProfileRole() Role  { return RoleAgent }
func (p *AgentProfile) OwnerID() uuid.UUID { return p.UserID }

func (p *AgentProfile) PublicFields() map[string]any {
	return map[string]any{
		"company_name": p.CompanyName,
		"logo":         p.Logo,
		"address":      p.Address,
		"pincode":      p.Pincode,
		"city":         p.City,
	}
}

// RestaurantProfile holds the business attributes of a restaurant partner.
type RestaurantProfile struct {
	UserID            uuid.UUID
	LocationID        uuid.UUID
	BusinessName      string
	OwnerName         string
	ImageURLs         []string
	LogoURL           string
	Address           string
	SingleLineAddress string
	City              string
	Pincode           string
	CustomerRating    float64
	Category          []string
	Discount          float64
	BusinessHours     BusinessHours
	Description       string
	MapURL            string
	CanReserve        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (p *RestaurantProfile) ProfileRole() Role  { return RoleRestaurant }
func (p *RestaurantProfile) OwnerID() uuid.UUID { return p.UserID }

func (p *RestaurantProfile) PublicFields() map[string]any {
	return map[string]any{
		"location_id":         p.LocationID,
		"business_name":       p.BusinessName,
		"owner_name":          p.OwnerName,
		"image_url":           p.ImageURLs,
		"logo_url":            p.LogoURL,
		"address":             p.Address,
		"single_line_address": p.SingleLineAddress,
		"city":                p.City,
		"pincode":             p.Pincode,
		"customer_rating":     p.CustomerRating,
		"category":            p.Category,
		"discount":            p.Discount,
		"businessHours":       p.BusinessHours,
		"description":         p.Description,
		"map_url":             p.MapURL,
		"canReserve":          p.CanReserve,
	}
}

// ShopProfile holds the business attributes of a shop partner.
type ShopProfile struct {
	UserID            uuid.UUID
	LocationID        uuid.UUID
	BusinessName      string
	OwnerName         string
	ImageURLs         []string
	LogoURL           string
	Address           string
	SingleLineAddress string
	City              string
	Pincode           string
	ShopType          string
	CustomerRating    float64
	Discount          float64
	BusinessHours     BusinessHours
	Description       string
	MapURL            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (p *ShopProfile) ProfileRole() Role  { return RoleShop }
func (p *ShopProfile) OwnerID() uuid.UUID { return p.UserID }

func (p *ShopProfile) PublicFields() map[string]any {
	return map[string]any{
		"location_id":         p.LocationID,
		"business_name":       p.BusinessName,
		"owner_name":          p.OwnerName,
		"image_url":           p.ImageURLs,
		"logo_url":            p.LogoURL,
		"address":             p.Address,
		"single_line_address": p.SingleLineAddress,
		"city":                p.City,
		"pincode":             p.Pincode,
		"shopType":            p.ShopType,
		"customer_rating":     p.CustomerRating,
		"discount":            p.Discount,
		"businessHours":       p.BusinessHours,
		"description":         p.Description,
		"map_url":             p.MapURL,
	}
}

// ActivityProfile holds the business attributes of an activity organizer.
// Its aggregate rating rolls up from the reviews of its tasks.
type ActivityProfile struct {
	UserID            uuid.UUID
	LocationID        uuid.UUID
	BusinessName      string
	OwnerName         string
	Address           string
	SingleLineAddress string
	City              string
	Pincode           string
	ImageURLs         []string
	LogoURL           string
	BusinessHours     BusinessHours
	Title             string
	Description       string
	CustomerRating    float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (p *ActivityProfile) ProfileRole() Role  { return RoleActivity }
func (p *ActivityProfile) OwnerID() uuid.UUID { return p.UserID }

func (p *ActivityProfile) PublicFields() map[string]any {
	return map[string]any{
		"location_id":         p.LocationID,
		"business_name":       p.BusinessName,
		"owner_name":          p.OwnerName,
		"address":             p.Address,
		"single_line_address": p.SingleLineAddress,
		"city":                p.City,
		"pincode":             p.Pincode,
		"image_url":           p.ImageURLs,
		"logo_url":            p.LogoURL,
		"businessHours":       p.BusinessHours,
		"title":               p.Title,
		"description":         p.Description,
		"customer_rating":     p.CustomerRating,
	}
}

// SuperAdminProfile is a bare link row; the SuperAdmin carries no business data.
type SuperAdminProfile struct {
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *SuperAdminProfile) ProfileRole() Role  { return RoleSuperAdmin }
func (p *SuperAdminProfile) OwnerID() uuid.UUID { return p.UserID }

func (p *SuperAdminProfile) PublicFields() map[string]any { return map[string]any{} }
