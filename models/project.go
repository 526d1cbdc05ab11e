package models

import "time"

type Project struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Status         string     `json:"status"`
	TotalUnits     *int       `json:"total_units"`
	AvailableUnits *int       `json:"available_units"`
	PriceRangeMin  *float64   `json:"price_range_min"`
	PriceRangeMax  *float64   `json:"price_range_max"`
	Amenities      []string   `json:"amenities"`
	Highlights     []string   `json:"highlights"`
	Images         []string   `json:"images"`
	Gallery        []string   `json:"gallery"`
	Videos         []string   `json:"videos"`
	BrochureURL    *string    `json:"brochure_url"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	CompletionDate *time.Time `json:"completion_date"`
	PossessionDate *time.Time `json:"possession_date"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ProjectCreate struct {
	Name           string     `json:"name" binding:"required"`
	Description    string     `json:"description" binding:"required"`
	Location       string     `json:"location" binding:"required"`
	City           string     `json:"city" binding:"required"`
	State          string     `json:"state" binding:"required"`
	Status         string     `json:"status" binding:"required,oneof=completed ongoing upcoming"`
	TotalUnits     *int       `json:"total_units"`
	AvailableUnits *int       `json:"available_units"`
	PriceRangeMin  *float64   `json:"price_range_min"`
	PriceRangeMax  *float64   `json:"price_range_max"`
	Amenities      []string   `json:"amenities"`
	Highlights     []string   `json:"highlights"`
	Images         []string   `json:"images"`
	Gallery        []string   `json:"gallery"`
	Videos         []string   `json:"videos"`
	BrochureURL    *string    `json:"brochure_url"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	CompletionDate *time.Time `json:"completion_date"`
	PossessionDate *time.Time `json:"possession_date"`
}

type ProjectUpdate struct {
	Name           *string    `json:"name"`
	Description    *string    `json:"description"`
	Location       *string    `json:"location"`
	City           *string    `json:"city"`
	State          *string    `json:"state"`
	Status         *string    `json:"status" binding:"omitempty,oneof=completed ongoing upcoming"`
	TotalUnits     *int       `json:"total_units"`
	AvailableUnits *int       `json:"available_units"`
	PriceRangeMin  *float64   `json:"price_range_min"`
	PriceRangeMax  *float64   `json:"price_range_max"`
	Amenities      *[]string  `json:"amenities"`
	Highlights     *[]string  `json:"highlights"`
	Images         *[]string  `json:"images"`
	Gallery        *[]string  `json:"gallery"`
	Videos         *[]string  `json:"videos"`
	BrochureURL    *string    `json:"brochure_url"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	CompletionDate *time.Time `json:"completion_date"`
	PossessionDate *time.Time `json:"possession_date"`
}
