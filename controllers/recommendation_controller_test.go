package controllers

import (
	"testing"

	"deeprealties/backend/models"
	"github.com/stretchr/testify/assert"
)

func listing(id int64, mutate func(p *models.Property)) models.Property {
	p := models.Property{
		ID:           id,
		Title:        "Listing",
		PropertyType: "house",
		City:         "Hyderabad",
		State:        "Telangana",
		Locality:     "Gachibowli",
		Price:        7500000,
		AreaSqft:     1800,
		Bedrooms:     ptr(3),
		Bathrooms:    ptr(2),
		Parking:      ptr(true),
		Facing:       ptr("North-East"),
		IsActive:     true,
	}
	if mutate != nil {
		mutate(&p)
	}
	return p
}

func TestMatchPropertiesEmptyFormMatchesActive(t *testing.T) {
	props := []models.Property{
		listing(1, nil),
		listing(2, func(p *models.Property) { p.IsActive = false }),
		listing(3, nil),
	}
	assert.Equal(t, []int64{1, 3}, matchProperties(models.RecommendationForm{}, props))
}

func TestMatchPropertiesCriteria(t *testing.T) {
	props := []models.Property{
		listing(1, nil),
		listing(2, func(p *models.Property) { p.City = "Pune" }),
		listing(3, func(p *models.Property) { p.Price = 12000000 }),
		listing(4, func(p *models.Property) { p.Bedrooms = nil }),
		listing(5, func(p *models.Property) { p.Facing = nil }),
		listing(6, func(p *models.Property) { p.PropertyType = "plot" }),
	}
	form := models.RecommendationForm{
		PropertyType: ptr("house"),
		City:         ptr("hyderabad"),
		Locality:     ptr("gachi"),
		MaxPrice:     ptr(10000000.0),
		Bedrooms:     ptr(3),
		Facing:       ptr("north"),
	}
	assert.Equal(t, []int64{1}, matchProperties(form, props))
}

func TestMatchPropertiesZeroBoundsIgnored(t *testing.T) {
	props := []models.Property{listing(1, nil)}
	form := models.RecommendationForm{MinPrice: ptr(0.0), MaxPrice: ptr(0.0), MinAreaSqft: ptr(0.0)}
	assert.Equal(t, []int64{1}, matchProperties(form, props))
}

func TestMatchPropertiesParkingAndArea(t *testing.T) {
	props := []models.Property{
		listing(1, nil),
		listing(2, func(p *models.Property) { p.Parking = ptr(false) }),
		listing(3, func(p *models.Property) { p.AreaSqft = 900 }),
	}
	form := models.RecommendationForm{Parking: ptr(true), MinAreaSqft: ptr(1000.0)}
	assert.Equal(t, []int64{1}, matchProperties(form, props))
}

func TestSummaryPrompt(t *testing.T) {
	form := models.RecommendationForm{City: ptr("Hyderabad"), MinPrice: ptr(5000000.0), MaxPrice: ptr(10000000.0)}
	out := summaryPrompt(form, []models.Property{listing(1, func(p *models.Property) { p.Title = "Lake View Villa" })})

	assert.Contains(t, out, "- location: Hyderabad")
	assert.Contains(t, out, "- budget: ₹50L - ₹1.0Cr")
	assert.Contains(t, out, "1. Lake View Villa, Hyderabad, ₹75.00 L, 1800 sqft")
}
