package controllers

import (
	"net/http"

	"deeprealties/backend/database"
	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
)

const maxPropertyImages = 3

const propertyColumns = `id, seller_id, title, description, locality, city, state, price::float8, property_type,
	listing_type, area_sqft::float8, bedrooms, bathrooms, floors, parking, plot_number, facing, latitude,
	longitude, is_farmland, google_earth_link, amenities, images, status, views, full_name, email, phone,
	is_active, created_at, updated_at`

func scanProperty(row scanner) (models.Property, error) {
	var p models.Property
	err := row.Scan(&p.ID, &p.SellerID, &p.Title, &p.Description, &p.Locality, &p.City, &p.State, &p.Price,
		&p.PropertyType, &p.ListingType, &p.AreaSqft, &p.Bedrooms, &p.Bathrooms, &p.Floors, &p.Parking,
		&p.PlotNumber, &p.Facing, &p.Latitude, &p.Longitude, &p.IsFarmland, &p.GoogleEarthLink, &p.Amenities,
		&p.Images, &p.Status, &p.Views, &p.FullName, &p.Email, &p.Phone, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func queryProperties(c *gin.Context, sql string, args ...any) ([]models.Property, bool) {
	ctx, cancel := dbCtx(c)
	defer cancel()
	rows, err := database.Pool.Query(ctx, sql, args...)
	if err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	defer rows.Close()
	out := []models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			dbFail(c, err, "")
			return nil, false
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	return out, true
}

// propertyFilter appends the public listing filters. Text fields match as
// case-insensitive substrings; bedrooms/bathrooms of 0 mean "any".
func propertyFilter(b *sqlBuilder, f models.PropertyFilter) {
	if f.City != "" {
		b.where("city ILIKE ?", contains(f.City))
	}
	if f.State != "" {
		b.where("state ILIKE ?", contains(f.State))
	}
	if f.Locality != "" {
		b.where("locality ILIKE ?", contains(f.Locality))
	}
	if f.PropertyType != "" {
		b.where("property_type = ?", f.PropertyType)
	}
	if f.ListingType != "" {
		b.where("listing_type = ?", f.ListingType)
	}
	if f.MinPrice != nil {
		b.where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		b.where("price <= ?", *f.MaxPrice)
	}
	if f.MinAreaSqft != nil {
		b.where("area_sqft >= ?", *f.MinAreaSqft)
	}
	if f.MaxAreaSqft != nil {
		b.where("area_sqft <= ?", *f.MaxAreaSqft)
	}
	if f.Bedrooms != nil && *f.Bedrooms != 0 {
		b.where("bedrooms = ?", *f.Bedrooms)
	}
	if f.Bathrooms != nil && *f.Bathrooms != 0 {
		b.where("bathrooms = ?", *f.Bathrooms)
	}
	if f.Parking != nil {
		b.where("parking = ?", *f.Parking)
	}
	if f.Facing != "" {
		b.where("facing ILIKE ?", contains(f.Facing))
	}
}

func ListProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		var f models.PropertyFilter
		if err := c.ShouldBindQuery(&f); err != nil {
			bindError(c, err)
			return
		}
		if f.PropertyType != "" && !models.OneOf(f.PropertyType, models.PropertyTypes) {
			fail(c, http.StatusUnprocessableEntity, "Invalid property_type")
			return
		}
		skip, limit, ok := page(c, 100, 100)
		if !ok {
			return
		}
		b := &sqlBuilder{}
		b.where("is_active = ?", true)
		b.where("status = ?", models.StatusApproved)
		propertyFilter(b, f)
		sql := `SELECT ` + propertyColumns + ` FROM properties` + b.whereSQL() + ` ORDER BY created_at DESC` + b.page(skip, limit)
		out, ok := queryProperties(c, sql, b.args...)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// validateListing checks the fields shared by create and update.
func validateListing(c *gin.Context, propertyType, listingType *string, images *[]string) bool {
	if propertyType != nil && !models.OneOf(*propertyType, models.PropertyTypes) {
		fail(c, http.StatusUnprocessableEntity, "Invalid property_type")
		return false
	}
	if listingType != nil && *listingType != "" && *listingType != models.ListingSale && *listingType != models.ListingRent {
		fail(c, http.StatusUnprocessableEntity, "Invalid listing_type")
		return false
	}
	if images != nil && len(*images) > maxPropertyImages {
		fail(c, http.StatusBadRequest, "Maximum 3 images allowed")
		return false
	}
	return true
}

func CreateProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PropertyCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		if !validateListing(c, &req.PropertyType, &req.ListingType, &req.Images) {
			return
		}
		u, ok := currentUser(c)
		if !ok {
			return
		}
		if req.ListingType == "" {
			req.ListingType = models.ListingSale
		}
		if req.FullName == nil {
			req.FullName = &u.FullName
		}
		if req.Email == nil {
			req.Email = &u.Email
		}
		if req.Phone == nil {
			req.Phone = u.Phone
		}
		area := 0.0
		if req.AreaSqft != nil {
			area = *req.AreaSqft
		}
		if req.Amenities == nil {
			req.Amenities = []string{}
		}
		if req.Images == nil {
			req.Images = []string{}
		}

		ctx, cancel := dbCtx(c)
		defer cancel()
		p, err := scanProperty(database.Pool.QueryRow(ctx, `INSERT INTO properties(seller_id, title, description,
			locality, city, state, price, property_type, listing_type, area_sqft, bedrooms, bathrooms, floors, parking,
			plot_number, facing, latitude, longitude, is_farmland, google_earth_link, amenities, images, status,
			full_name, email, phone)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26)
			RETURNING `+propertyColumns,
			u.ID, req.Title, req.Description, req.Locality, req.City, req.State, req.Price, req.PropertyType,
			req.ListingType, area, req.Bedrooms, req.Bathrooms, req.Floors, req.Parking, req.PlotNumber, req.Facing,
			req.Latitude, req.Longitude, req.IsFarmland, req.GoogleEarthLink, req.Amenities, req.Images,
			models.StatusPending, req.FullName, req.Email, req.Phone))
		if err != nil {
			dbFail(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// GetProperty returns an active listing and counts the view.
func GetProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "property")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		p, err := scanProperty(database.Pool.QueryRow(ctx, `UPDATE properties SET views = views + 1
			WHERE id=$1 AND is_active RETURNING `+propertyColumns, id))
		if err != nil {
			dbFail(c, err, "Property not found")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// ownedProperty loads a property and checks the caller is its seller or an admin.
func ownedProperty(c *gin.Context, denied string) (models.Property, bool) {
	var p models.Property
	id, ok := parseID(c, "id", "property")
	if !ok {
		return p, false
	}
	u, ok := currentUser(c)
	if !ok {
		return p, false
	}
	ctx, cancel := dbCtx(c)
	defer cancel()
	p, err := scanProperty(database.Pool.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id=$1 AND is_active`, id))
	if err != nil {
		dbFail(c, err, "Property not found")
		return p, false
	}
	if !isAdmin(u) && (p.SellerID == nil || *p.SellerID != u.ID) {
		fail(c, http.StatusForbidden, denied)
		return p, false
	}
	return p, true
}

func propertyUpdates(b *sqlBuilder, req models.PropertyUpdate) {
	if req.Title != nil {
		b.set("title", *req.Title)
	}
	if req.Description != nil {
		b.set("description", *req.Description)
	}
	if req.Locality != nil {
		b.set("locality", *req.Locality)
	}
	if req.City != nil {
		b.set("city", *req.City)
	}
	if req.State != nil {
		b.set("state", *req.State)
	}
	if req.Price != nil {
		b.set("price", *req.Price)
	}
	if req.PropertyType != nil {
		b.set("property_type", *req.PropertyType)
	}
	if req.ListingType != nil {
		b.set("listing_type", *req.ListingType)
	}
	if req.AreaSqft != nil {
		b.set("area_sqft", *req.AreaSqft)
	}
	if req.Bedrooms != nil {
		b.set("bedrooms", *req.Bedrooms)
	}
	if req.Bathrooms != nil {
		b.set("bathrooms", *req.Bathrooms)
	}
	if req.Floors != nil {
		b.set("floors", *req.Floors)
	}
	if req.Parking != nil {
		b.set("parking", *req.Parking)
	}
	if req.PlotNumber != nil {
		b.set("plot_number", *req.PlotNumber)
	}
	if req.Facing != nil {
		b.set("facing", *req.Facing)
	}
	if req.Latitude != nil {
		b.set("latitude", *req.Latitude)
	}
	if req.Longitude != nil {
		b.set("longitude", *req.Longitude)
	}
	if req.IsFarmland != nil {
		b.set("is_farmland", *req.IsFarmland)
	}
	if req.GoogleEarthLink != nil {
		b.set("google_earth_link", *req.GoogleEarthLink)
	}
	if req.Amenities != nil {
		b.set("amenities", *req.Amenities)
	}
	if req.Images != nil {
		b.set("images", *req.Images)
	}
}

func UpdateProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PropertyUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		if !validateListing(c, req.PropertyType, req.ListingType, req.Images) {
			return
		}
		p, ok := ownedProperty(c, "Not authorized to update this property")
		if !ok {
			return
		}
		b := &sqlBuilder{}
		propertyUpdates(b, req)
		b.sets = append(b.sets, "updated_at = now()")
		sql := `UPDATE properties SET ` + b.setSQL() + ` WHERE id=` + b.arg(p.ID) + ` RETURNING ` + propertyColumns

		ctx, cancel := dbCtx(c)
		defer cancel()
		updated, err := scanProperty(database.Pool.QueryRow(ctx, sql, b.args...))
		if err != nil {
			dbFail(c, err, "Property not found")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteProperty soft-deletes so enquiries keep their reference.
func DeleteProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := ownedProperty(c, "Not authorized to delete this property")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		if _, err := database.Pool.Exec(ctx, `UPDATE properties SET is_active=FALSE, updated_at=now() WHERE id=$1`, p.ID); err != nil {
			dbFail(c, err, "")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// MyProperties lists the caller's own listings in every status.
func MyProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		out, ok := queryProperties(c, `SELECT `+propertyColumns+` FROM properties
			WHERE seller_id=$1 AND is_active ORDER BY created_at DESC`, userID(c))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func PendingProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		out, ok := queryProperties(c, `SELECT `+propertyColumns+` FROM properties
			WHERE status=$1 AND is_active ORDER BY created_at DESC`, models.StatusPending)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// SetPropertyStatus is the admin moderation action behind approve/reject.
func SetPropertyStatus(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "property")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		p, err := scanProperty(database.Pool.QueryRow(ctx, `UPDATE properties SET status=$1, updated_at=now()
			WHERE id=$2 RETURNING `+propertyColumns, status, id))
		if err != nil {
			dbFail(c, err, "Property not found")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// AdminProjects lists approved listings published by admin accounts.
func AdminProjects() gin.HandlerFunc {
	return func(c *gin.Context) {
		out, ok := queryProperties(c, `SELECT `+propertyColumns+` FROM properties
			WHERE is_active AND status=$1 AND seller_id IN (SELECT id FROM users WHERE role=$2)
			ORDER BY created_at DESC`, models.StatusApproved, models.RoleAdmin)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
