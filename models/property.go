package models

import "time"

type Property struct {
	ID              int64     `json:"id"`
	SellerID        *int64    `json:"seller_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Locality        string    `json:"locality"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	Price           float64   `json:"price"`
	PropertyType    string    `json:"property_type"`
	ListingType     string    `json:"listing_type"`
	AreaSqft        float64   `json:"area_sqft"`
	Bedrooms        *int      `json:"bedrooms"`
	Bathrooms       *int      `json:"bathrooms"`
	Floors          *int      `json:"floors"`
	Parking         *bool     `json:"parking"`
	PlotNumber      *string   `json:"plot_number"`
	Facing          *string   `json:"facing"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	IsFarmland      bool      `json:"is_farmland"`
	GoogleEarthLink *string   `json:"google_earth_link"`
	Amenities       []string  `json:"amenities"`
	Images          []string  `json:"images"`
	Status          string    `json:"status"`
	Views           int64     `json:"views"`
	FullName        *string   `json:"full_name"`
	Email           *string   `json:"email"`
	Phone           *string   `json:"phone"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PropertyCreate is the seller submission. Contact fields are optional for
// logged-in sellers and default to the account details.
type PropertyCreate struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Locality        string   `json:"locality"`
	City            string   `json:"city" binding:"required"`
	State           string   `json:"state"`
	Price           float64  `json:"price" binding:"required,gt=0"`
	PropertyType    string   `json:"property_type" binding:"required"`
	ListingType     string   `json:"listing_type"`
	AreaSqft        *float64 `json:"area_sqft"`
	Bedrooms        *int     `json:"bedrooms"`
	Bathrooms       *int     `json:"bathrooms"`
	Floors          *int     `json:"floors"`
	Parking         *bool    `json:"parking"`
	PlotNumber      *string  `json:"plot_number"`
	Facing          *string  `json:"facing"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	IsFarmland      bool     `json:"is_farmland"`
	GoogleEarthLink *string  `json:"google_earth_link"`
	Amenities       []string `json:"amenities"`
	Images          []string `json:"images"`
	FullName        *string  `json:"full_name"`
	Email           *string  `json:"email" binding:"omitempty,email"`
	Phone           *string  `json:"phone"`
}

type PropertyUpdate struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	Locality        *string   `json:"locality"`
	City            *string   `json:"city"`
	State           *string   `json:"state"`
	Price           *float64  `json:"price"`
	PropertyType    *string   `json:"property_type"`
	ListingType     *string   `json:"listing_type"`
	AreaSqft        *float64  `json:"area_sqft"`
	Bedrooms        *int      `json:"bedrooms"`
	Bathrooms       *int      `json:"bathrooms"`
	Floors          *int      `json:"floors"`
	Parking         *bool     `json:"parking"`
	PlotNumber      *string   `json:"plot_number"`
	Facing          *string   `json:"facing"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	IsFarmland      *bool     `json:"is_farmland"`
	GoogleEarthLink *string   `json:"google_earth_link"`
	Amenities       *[]string `json:"amenities"`
	Images          *[]string `json:"images"`
}

// PropertyFilter mirrors the public listing query string.
type PropertyFilter struct {
	City         string   `form:"city"`
	State        string   `form:"state"`
	Locality     string   `form:"locality"`
	PropertyType string   `form:"property_type"`
	ListingType  string   `form:"listing_type"`
	MinPrice     *float64 `form:"min_price"`
	MaxPrice     *float64 `form:"max_price"`
	MinAreaSqft  *float64 `form:"min_area_sqft"`
	MaxAreaSqft  *float64 `form:"max_area_sqft"`
	Bedrooms     *int     `form:"bedrooms"`
	Bathrooms    *int     `form:"bathrooms"`
	Parking      *bool    `form:"parking"`
	Facing       string   `form:"facing"`
}
