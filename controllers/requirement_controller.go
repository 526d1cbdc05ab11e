package controllers

import (
	"net/http"

	"deeprealties/backend/database"
	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
)

const requirementMatchLimit = 10

const requirementColumns = `id, user_id, property_type, min_budget::float8, max_budget::float8, preferred_location,
	city, state, min_area_sqft::float8, max_area_sqft::float8, bedrooms, bathrooms, additional_requirements,
	full_name, email, phone, is_fulfilled, matched_properties, created_at`

func scanRequirement(row scanner) (models.Requirement, error) {
	var r models.Requirement
	err := row.Scan(&r.ID, &r.UserID, &r.PropertyType, &r.MinBudget, &r.MaxBudget, &r.PreferredLocation, &r.City,
		&r.State, &r.MinAreaSqft, &r.MaxAreaSqft, &r.Bedrooms, &r.Bathrooms, &r.AdditionalRequirements,
		&r.FullName, &r.Email, &r.Phone, &r.IsFulfilled, &r.MatchedProperties, &r.CreatedAt)
	return r, err
}

func queryRequirements(c *gin.Context, sql string, args ...any) ([]models.Requirement, bool) {
	ctx, cancel := dbCtx(c)
	defer cancel()
	rows, err := database.Pool.Query(ctx, sql, args...)
	if err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	defer rows.Close()
	out := []models.Requirement{}
	for rows.Next() {
		r, err := scanRequirement(rows)
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

// requirementMatch selects active listings of the requested type in the
// requested city whose price falls inside the budget.
func requirementMatch(req models.RequirementCreate) *sqlBuilder {
	b := &sqlBuilder{}
	b.where("is_active = ?", true)
	if req.PropertyType != "" {
		b.where("property_type = ?", req.PropertyType)
	}
	if req.City != "" {
		b.where("city ILIKE ?", contains(req.City))
	}
	b.where("price BETWEEN ? AND ?", req.MinBudget, req.MaxBudget)
	return b
}

// SubmitRequirement records a buy-side lead and attaches up to ten matching
// listings. No login is needed; a logged-in caller is linked to the lead.
func SubmitRequirement() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RequirementCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		if !models.OneOf(req.PropertyType, models.PropertyTypes) {
			fail(c, http.StatusUnprocessableEntity, "Invalid property_type")
			return
		}

		ctx, cancel := dbCtx(c)
		defer cancel()
		m := requirementMatch(req)
		sql := `SELECT id FROM properties` + m.whereSQL() + ` ORDER BY created_at DESC LIMIT ` + m.arg(requirementMatchLimit)
		rows, err := database.Pool.Query(ctx, sql, m.args...)
		if err != nil {
			dbFail(c, err, "")
			return
		}
		matched := []int64{}
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				dbFail(c, err, "")
				return
			}
			matched = append(matched, id)
		}
		rows.Close()

		r, err := scanRequirement(database.Pool.QueryRow(ctx, `INSERT INTO property_requirements(user_id, property_type,
			min_budget, max_budget, preferred_location, city, state, min_area_sqft, max_area_sqft, bedrooms, bathrooms,
			additional_requirements, full_name, email, phone, matched_properties)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16) RETURNING `+requirementColumns,
			optionalUserID(c), req.PropertyType, req.MinBudget, req.MaxBudget, req.PreferredLocation, req.City, req.State,
			req.MinAreaSqft, req.MaxAreaSqft, req.Bedrooms, req.Bathrooms, req.AdditionalRequirements, req.FullName,
			req.Email, req.Phone, matched))
		if err != nil {
			dbFail(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, r)
	}
}

func ListRequirements() gin.HandlerFunc {
	return func(c *gin.Context) {
		fulfilled, ok := optionalBool(c, "is_fulfilled")
		if !ok {
			return
		}
		skip, limit, ok := page(c, 50, 100)
		if !ok {
			return
		}
		b := &sqlBuilder{}
		if fulfilled != nil {
			b.where("is_fulfilled = ?", *fulfilled)
		}
		if city := c.Query("city"); city != "" {
			b.where("city ILIKE ?", contains(city))
		}
		if pt := c.Query("property_type"); pt != "" {
			b.where("property_type = ?", pt)
		}
		sql := `SELECT ` + requirementColumns + ` FROM property_requirements` + b.whereSQL() +
			` ORDER BY created_at DESC` + b.page(skip, limit)
		out, ok := queryRequirements(c, sql, b.args...)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetRequirement() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "requirement")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		r, err := scanRequirement(database.Pool.QueryRow(ctx, `SELECT `+requirementColumns+` FROM property_requirements WHERE id=$1`, id))
		if err != nil {
			dbFail(c, err, "Requirement not found")
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

func FulfillRequirement() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "requirement")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		r, err := scanRequirement(database.Pool.QueryRow(ctx, `UPDATE property_requirements SET is_fulfilled=TRUE
			WHERE id=$1 RETURNING `+requirementColumns, id))
		if err != nil {
			dbFail(c, err, "Requirement not found")
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

func DeleteRequirement() gin.HandlerFunc {
	return deleteRow("property_requirements", "requirement")
}

// deleteRow hard-deletes by id and answers 204 whether or not the row existed.
func deleteRow(table, what string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", what)
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		if _, err := database.Pool.Exec(ctx, `DELETE FROM `+table+` WHERE id=$1`, id); err != nil {
			dbFail(c, err, "")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// softDelete clears is_active and answers 204.
func softDelete(table, what string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", what)
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		if _, err := database.Pool.Exec(ctx, `UPDATE `+table+` SET is_active=FALSE WHERE id=$1`, id); err != nil {
			dbFail(c, err, "")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
