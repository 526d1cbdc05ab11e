package models

import "time"

// RecommendationForm is the buyer's wish list; every field is optional.
type RecommendationForm struct {
	PropertyType *string  `json:"property_type"`
	Locality     *string  `json:"locality"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	MinPrice     *float64 `json:"min_price"`
	MaxPrice     *float64 `json:"max_price"`
	MinAreaSqft  *float64 `json:"min_area_sqft"`
	MaxAreaSqft  *float64 `json:"max_area_sqft"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	Parking      *bool    `json:"parking"`
	Facing       *string  `json:"facing"`
	Description  *string  `json:"description"`
}

type Recommendation struct {
	ID                int64              `json:"id"`
	BuyerID           int64              `json:"buyer_id"`
	FormData          RecommendationForm `json:"form_data"`
	MatchedProperties []int64            `json:"matched_properties"`
	AISummary         *string            `json:"ai_summary"`
	CreatedAt         time.Time          `json:"created_at"`
}
