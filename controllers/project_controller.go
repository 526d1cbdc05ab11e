package controllers

import (
	"net/http"

	"deeprealties/backend/database"
	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
)

const projectColumns = `id, name, description, location, city, state, status, total_units, available_units,
	price_range_min::float8, price_range_max::float8, amenities, highlights, images, gallery, videos, brochure_url,
	latitude, longitude, completion_date, possession_date, is_active, created_at, updated_at`

func scanProject(row scanner) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Location, &p.City, &p.State, &p.Status, &p.TotalUnits,
		&p.AvailableUnits, &p.PriceRangeMin, &p.PriceRangeMax, &p.Amenities, &p.Highlights, &p.Images, &p.Gallery,
		&p.Videos, &p.BrochureURL, &p.Latitude, &p.Longitude, &p.CompletionDate, &p.PossessionDate, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func queryProjects(c *gin.Context, sql string, args ...any) ([]models.Project, bool) {
	ctx, cancel := dbCtx(c)
	defer cancel()
	rows, err := database.Pool.Query(ctx, sql, args...)
	if err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	defer rows.Close()
	out := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
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

func ListProjects() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := page(c, 50, 100)
		if !ok {
			return
		}
		b := &sqlBuilder{}
		b.where("is_active = ?", true)
		if s := c.Query("status"); s != "" {
			if !models.OneOf(s, models.ProjectStatuses) {
				fail(c, http.StatusUnprocessableEntity, "Invalid status")
				return
			}
			b.where("status = ?", s)
		}
		if city := c.Query("city"); city != "" {
			b.where("city ILIKE ?", contains(city))
		}
		sql := `SELECT ` + projectColumns + ` FROM projects` + b.whereSQL() + ` ORDER BY created_at DESC` + b.page(skip, limit)
		out, ok := queryProjects(c, sql, b.args...)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ProjectsByStatus backs the completed/ongoing/upcoming shortcuts.
func ProjectsByStatus(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, ok := queryProjects(c, `SELECT `+projectColumns+` FROM projects
			WHERE is_active AND status=$1 ORDER BY created_at DESC LIMIT 100`, status)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetProject() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "project")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		p, err := scanProject(database.Pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id=$1 AND is_active`, id))
		if err != nil {
			dbFail(c, err, "Project not found")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func CreateProject() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ProjectCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		p, err := scanProject(database.Pool.QueryRow(ctx, `INSERT INTO projects(name, description, location, city,
			state, status, total_units, available_units, price_range_min, price_range_max, amenities, highlights,
			images, gallery, videos, brochure_url, latitude, longitude, completion_date, possession_date)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20) RETURNING `+projectColumns,
			req.Name, req.Description, req.Location, req.City, req.State, req.Status, req.TotalUnits,
			req.AvailableUnits, req.PriceRangeMin, req.PriceRangeMax, orEmpty(req.Amenities), orEmpty(req.Highlights),
			orEmpty(req.Images), orEmpty(req.Gallery), orEmpty(req.Videos), req.BrochureURL, req.Latitude,
			req.Longitude, req.CompletionDate, req.PossessionDate))
		if err != nil {
			dbFail(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func projectUpdates(b *sqlBuilder, req models.ProjectUpdate) {
	cols := []struct {
		name string
		set  bool
		v    any
	}{
		{"name", req.Name != nil, req.Name},
		{"description", req.Description != nil, req.Description},
		{"location", req.Location != nil, req.Location},
		{"city", req.City != nil, req.City},
		{"state", req.State != nil, req.State},
		{"status", req.Status != nil, req.Status},
		{"total_units", req.TotalUnits != nil, req.TotalUnits},
		{"available_units", req.AvailableUnits != nil, req.AvailableUnits},
		{"price_range_min", req.PriceRangeMin != nil, req.PriceRangeMin},
		{"price_range_max", req.PriceRangeMax != nil, req.PriceRangeMax},
		{"amenities", req.Amenities != nil, req.Amenities},
		{"highlights", req.Highlights != nil, req.Highlights},
		{"images", req.Images != nil, req.Images},
		{"gallery", req.Gallery != nil, req.Gallery},
		{"videos", req.Videos != nil, req.Videos},
		{"brochure_url", req.BrochureURL != nil, req.BrochureURL},
		{"latitude", req.Latitude != nil, req.Latitude},
		{"longitude", req.Longitude != nil, req.Longitude},
		{"completion_date", req.CompletionDate != nil, req.CompletionDate},
		{"possession_date", req.PossessionDate != nil, req.PossessionDate},
	}
	for _, col := range cols {
		if col.set {
			b.set(col.name, col.v)
		}
	}
}

func UpdateProject() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "project")
		if !ok {
			return
		}
		var req models.ProjectUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		b := &sqlBuilder{}
		projectUpdates(b, req)
		b.sets = append(b.sets, "updated_at = now()")
		sql := `UPDATE projects SET ` + b.setSQL() + ` WHERE id=` + b.arg(id) + ` RETURNING ` + projectColumns

		ctx, cancel := dbCtx(c)
		defer cancel()
		p, err := scanProject(database.Pool.QueryRow(ctx, sql, b.args...))
		if err != nil {
			dbFail(c, err, "Project not found")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func DeleteProject() gin.HandlerFunc {
	return softDelete("projects", "project")
}
