package models

import "time"

type Rental struct {
	ID              int64      `json:"id"`
	OwnerID         *int64     `json:"owner_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Locality        string     `json:"locality"`
	City            string     `json:"city"`
	State           string     `json:"state"`
	MonthlyRent     float64    `json:"monthly_rent"`
	SecurityDeposit *float64   `json:"security_deposit"`
	PropertyType    string     `json:"property_type"`
	AreaSqft        float64    `json:"area_sqft"`
	Bedrooms        *int       `json:"bedrooms"`
	Bathrooms       *int       `json:"bathrooms"`
	RentType        string     `json:"rent_type"`
	TenantType      string     `json:"tenant_type"`
	AvailableFrom   *time.Time `json:"available_from"`
	Amenities       []string   `json:"amenities"`
	Images          []string   `json:"images"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	Status          string     `json:"status"`
	FullName        *string    `json:"full_name"`
	Email           *string    `json:"email"`
	Phone           *string    `json:"phone"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type RentalCreate struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description" binding:"required"`
	Locality        string     `json:"locality" binding:"required"`
	City            string     `json:"city" binding:"required"`
	State           string     `json:"state" binding:"required"`
	MonthlyRent     float64    `json:"monthly_rent" binding:"required,gt=0"`
	SecurityDeposit *float64   `json:"security_deposit"`
	PropertyType    string     `json:"property_type" binding:"required"`
	AreaSqft        float64    `json:"area_sqft" binding:"required,gt=0"`
	Bedrooms        *int       `json:"bedrooms"`
	Bathrooms       *int       `json:"bathrooms"`
	RentType        string     `json:"rent_type"`
	TenantType      string     `json:"tenant_type"`
	AvailableFrom   *time.Time `json:"available_from"`
	Amenities       []string   `json:"amenities"`
	Images          []string   `json:"images"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	FullName        string     `json:"full_name" binding:"required"`
	Email           string     `json:"email" binding:"required,email"`
	Phone           string     `json:"phone" binding:"required"`
}

type RentalFilter struct {
	City         string   `form:"city"`
	State        string   `form:"state"`
	PropertyType string   `form:"property_type"`
	RentType     string   `form:"rent_type"`
	TenantType   string   `form:"tenant_type"`
	MinRent      *float64 `form:"min_rent"`
	MaxRent      *float64 `form:"max_rent"`
	Bedrooms     *int     `form:"bedrooms"`
}
