package models

import "time"

type Requirement struct {
	ID                     int64     `json:"id"`
	UserID                 *int64    `json:"user_id"`
	PropertyType           string    `json:"property_type"`
	MinBudget              float64   `json:"min_budget"`
	MaxBudget              float64   `json:"max_budget"`
	PreferredLocation      string    `json:"preferred_location"`
	City                   string    `json:"city"`
	State                  *string   `json:"state"`
	MinAreaSqft            *float64  `json:"min_area_sqft"`
	MaxAreaSqft            *float64  `json:"max_area_sqft"`
	Bedrooms               *int      `json:"bedrooms"`
	Bathrooms              *int      `json:"bathrooms"`
	AdditionalRequirements *string   `json:"additional_requirements"`
	FullName               string    `json:"full_name"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone"`
	IsFulfilled            bool      `json:"is_fulfilled"`
	MatchedProperties      []int64   `json:"matched_properties"`
	CreatedAt              time.Time `json:"created_at"`
}

type RequirementCreate struct {
	PropertyType           string   `json:"property_type" binding:"required"`
	MinBudget              float64  `json:"min_budget" binding:"gte=0"`
	MaxBudget              float64  `json:"max_budget" binding:"required,gtefield=MinBudget"`
	PreferredLocation      string   `json:"preferred_location" binding:"required"`
	City                   string   `json:"city" binding:"required"`
	State                  *string  `json:"state"`
	MinAreaSqft            *float64 `json:"min_area_sqft"`
	MaxAreaSqft            *float64 `json:"max_area_sqft"`
	Bedrooms               *int     `json:"bedrooms"`
	Bathrooms              *int     `json:"bathrooms"`
	AdditionalRequirements *string  `json:"additional_requirements"`
	FullName               string   `json:"full_name" binding:"required"`
	Email                  string   `json:"email" binding:"required,email"`
	Phone                  string   `json:"phone" binding:"required"`
}
