package controllers

import (
	"net/http"

	"deeprealties/backend/database"
	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
)

const rentalColumns = `id, owner_id, title, description, locality, city, state, monthly_rent::float8,
	security_deposit::float8, property_type, area_sqft::float8, bedrooms, bathrooms, rent_type, tenant_type,
	available_from, amenities, images, latitude, longitude, status, full_name, email, phone, is_active,
	created_at, updated_at`

func scanRental(row scanner) (models.Rental, error) {
	var r models.Rental
	err := row.Scan(&r.ID, &r.OwnerID, &r.Title, &r.Description, &r.Locality, &r.City, &r.State, &r.MonthlyRent,
		&r.SecurityDeposit, &r.PropertyType, &r.AreaSqft, &r.Bedrooms, &r.Bathrooms, &r.RentType, &r.TenantType,
		&r.AvailableFrom, &r.Amenities, &r.Images, &r.Latitude, &r.Longitude, &r.Status, &r.FullName, &r.Email,
		&r.Phone, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func queryRentals(c *gin.Context, sql string, args ...any) ([]models.Rental, bool) {
	ctx, cancel := dbCtx(c)
	defer cancel()
	rows, err := database.Pool.Query(ctx, sql, args...)
	if err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	defer rows.Close()
	out := []models.Rental{}
	for rows.Next() {
		r, err := scanRental(rows)
		if err != nil {
			dbFail(c, err, "")
			return nil, false
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	return out, true
}

// validateRental fills the furnishing and tenant defaults and rejects
// values outside the known sets.
func validateRental(req *models.RentalCreate) string {
	if req.RentType == "" {
		req.RentType = "unfurnished"
	}
	if req.TenantType == "" {
		req.TenantType = "any"
	}
	switch {
	case !models.OneOf(req.PropertyType, models.PropertyTypes):
		return "Invalid property_type"
	case !models.OneOf(req.RentType, models.RentTypes):
		return "Invalid rent_type"
	case !models.OneOf(req.TenantType, models.TenantTypes):
		return "Invalid tenant_type"
	}
	return ""
}

// CreateRental accepts anonymous submissions; every listing waits for review.
func CreateRental() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RentalCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		if msg := validateRental(&req); msg != "" {
			fail(c, http.StatusUnprocessableEntity, msg)
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		r, err := scanRental(database.Pool.QueryRow(ctx, `INSERT INTO rentals(owner_id, title, description, locality,
			city, state, monthly_rent, security_deposit, property_type, area_sqft, bedrooms, bathrooms, rent_type,
			tenant_type, available_from, amenities, images, latitude, longitude, status, full_name, email, phone)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
			RETURNING `+rentalColumns,
			optionalUserID(c), req.Title, req.Description, req.Locality, req.City, req.State, req.MonthlyRent,
			req.SecurityDeposit, req.PropertyType, req.AreaSqft, req.Bedrooms, req.Bathrooms, req.RentType,
			req.TenantType, req.AvailableFrom, orEmpty(req.Amenities), orEmpty(req.Images), req.Latitude,
			req.Longitude, models.StatusPending, req.FullName, req.Email, req.Phone))
		if err != nil {
			dbFail(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, r)
	}
}

func rentalFilter(b *sqlBuilder, f models.RentalFilter) {
	if f.City != "" {
		b.where("city ILIKE ?", contains(f.City))
	}
	if f.State != "" {
		b.where("state ILIKE ?", contains(f.State))
	}
	if f.PropertyType != "" {
		b.where("property_type = ?", f.PropertyType)
	}
	if f.RentType != "" {
		b.where("rent_type = ?", f.RentType)
	}
	if f.TenantType != "" {
		b.where("tenant_type = ?", f.TenantType)
	}
	if f.MinRent != nil {
		b.where("monthly_rent >= ?", *f.MinRent)
	}
	if f.MaxRent != nil {
		b.where("monthly_rent <= ?", *f.MaxRent)
	}
	if f.Bedrooms != nil && *f.Bedrooms != 0 {
		b.where("bedrooms = ?", *f.Bedrooms)
	}
}

func ListRentals() gin.HandlerFunc {
	return func(c *gin.Context) {
		var f models.RentalFilter
		if err := c.ShouldBindQuery(&f); err != nil {
			bindError(c, err)
			return
		}
		skip, limit, ok := page(c, 50, 100)
		if !ok {
			return
		}
		b := &sqlBuilder{}
		b.where("is_active = ?", true)
		b.where("status = ?", models.StatusApproved)
		rentalFilter(b, f)
		sql := `SELECT ` + rentalColumns + ` FROM rentals` + b.whereSQL() + ` ORDER BY created_at DESC` + b.page(skip, limit)
		out, ok := queryRentals(c, sql, b.args...)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func MyRentals() gin.HandlerFunc {
	return func(c *gin.Context) {
		out, ok := queryRentals(c, `SELECT `+rentalColumns+` FROM rentals
			WHERE owner_id=$1 AND is_active ORDER BY created_at DESC LIMIT 100`, userID(c))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func PendingRentals() gin.HandlerFunc {
	return func(c *gin.Context) {
		out, ok := queryRentals(c, `SELECT `+rentalColumns+` FROM rentals
			WHERE status=$1 AND is_active ORDER BY created_at DESC LIMIT 100`, models.StatusPending)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetRental() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "rental")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		r, err := scanRental(database.Pool.QueryRow(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE id=$1 AND is_active`, id))
		if err != nil {
			dbFail(c, err, "Rental property not found")
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

func SetRentalStatus(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "rental")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		r, err := scanRental(database.Pool.QueryRow(ctx, `UPDATE rentals SET status=$1, updated_at=now()
			WHERE id=$2 RETURNING `+rentalColumns, status, id))
		if err != nil {
			dbFail(c, err, "Rental not found")
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

// DeleteRental lets the owner or an admin withdraw a listing.
func DeleteRental() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "rental")
		if !ok {
			return
		}
		u, ok := currentUser(c)
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		var owner *int64
		if err := database.Pool.QueryRow(ctx, `SELECT owner_id FROM rentals WHERE id=$1`, id).Scan(&owner); err != nil {
			dbFail(c, err, "Rental not found")
			return
		}
		if !isAdmin(u) && (owner == nil || *owner != u.ID) {
			fail(c, http.StatusForbidden, "Not authorized to delete this rental")
			return
		}
		if _, err := database.Pool.Exec(ctx, `UPDATE rentals SET is_active=FALSE, updated_at=now() WHERE id=$1`, id); err != nil {
			dbFail(c, err, "")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
