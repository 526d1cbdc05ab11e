package controllers

import (
	"net/http"

	"deeprealties/backend/database"
	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
)

const dashboardRecent = 5

func AdminDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := dbCtx(c)
		var d models.AdminDashboard
		err := database.Pool.QueryRow(ctx, `SELECT
			(SELECT count(*) FROM users),
			(SELECT count(*) FROM users WHERE role=$1),
			(SELECT count(*) FROM users WHERE role=$2),
			(SELECT count(*) FROM properties WHERE is_active),
			(SELECT count(*) FROM enquiries),
			(SELECT count(*) FROM enquiries WHERE NOT is_read)`, models.RoleBuyer, models.RoleSeller).
			Scan(&d.Stats.TotalUsers, &d.Stats.Buyers, &d.Stats.Sellers, &d.Stats.TotalProperties,
				&d.Stats.TotalEnquiries, &d.Stats.UnreadEnquiries)
		if err != nil {
			cancel()
			dbFail(c, err, "")
			return
		}

		rows, err := database.Pool.Query(ctx, `SELECT city, count(*) FROM properties WHERE is_active
			GROUP BY city ORDER BY count(*) DESC, city LIMIT $1`, dashboardRecent)
		if err != nil {
			cancel()
			dbFail(c, err, "")
			return
		}
		d.TopCities = []models.CityCount{}
		for rows.Next() {
			var cc models.CityCount
			if err := rows.Scan(&cc.City, &cc.Count); err != nil {
				rows.Close()
				cancel()
				dbFail(c, err, "")
				return
			}
			d.TopCities = append(d.TopCities, cc)
		}
		rows.Close()
		cancel()

		var ok bool
		if d.RecentProperties, ok = queryProperties(c, `SELECT `+propertyColumns+` FROM properties
			WHERE is_active ORDER BY created_at DESC LIMIT $1`, dashboardRecent); !ok {
			return
		}
		if d.RecentEnquiries, ok = queryEnquiries(c, `SELECT `+enquiryColumns+enquiryFrom+`
			ORDER BY e.created_at DESC LIMIT $1`, dashboardRecent); !ok {
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func queryUsers(c *gin.Context, sql string, args ...any) ([]models.User, bool) {
	ctx, cancel := dbCtx(c)
	defer cancel()
	rows, err := database.Pool.Query(ctx, sql, args...)
	if err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	defer rows.Close()
	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			dbFail(c, err, "")
			return nil, false
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	return out, true
}

func AdminUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		out, ok := queryUsers(c, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// AdminProperties includes soft-deleted and unmoderated listings.
func AdminProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		out, ok := queryProperties(c, `SELECT `+propertyColumns+` FROM properties ORDER BY created_at DESC`)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func AdminEnquiries() gin.HandlerFunc {
	return func(c *gin.Context) {
		out, ok := queryEnquiries(c, `SELECT `+enquiryColumns+enquiryFrom+` ORDER BY e.created_at DESC`)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func ToggleUserActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "user")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		var active bool
		err := database.Pool.QueryRow(ctx, `UPDATE users SET is_active = NOT is_active WHERE id=$1 RETURNING is_active`, id).Scan(&active)
		if err != nil {
			dbFail(c, err, "User not found")
			return
		}
		c.JSON(http.StatusOK, models.Message{Message: toggleMessage(active)})
	}
}

func toggleMessage(active bool) string {
	if active {
		return "User activated"
	}
	return "User deactivated"
}
