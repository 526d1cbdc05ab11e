package controllers

import (
	"net/http"

	"deeprealties/backend/database"
	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
)

const apiVersion = "2.0.0"

var services = []string{"Buy Property", "Sell Property", "Rent Property", "Invest With Us", "Our Projects", "Events"}

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":  "DeepRealties API is running",
			"version":  apiVersion,
			"services": services,
		})
	}
}

// Health pings the pool so load balancers notice a lost database.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := dbCtx(c)
		defer cancel()
		if database.Pool == nil || database.Pool.Ping(ctx) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}

// Marketing figures shown on the home page alongside the live counts.
const (
	yearsExperience = 5
	propertiesSold  = 250
)

func Statistics() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := dbCtx(c)
		defer cancel()
		s := models.SiteStatistics{YearsExperience: yearsExperience, PropertiesSold: propertiesSold}
		err := database.Pool.QueryRow(ctx, `SELECT
			(SELECT count(*) FROM properties WHERE is_active),
			(SELECT count(*) FROM properties WHERE is_active AND status=$1),
			(SELECT count(*) FROM users WHERE is_active),
			(SELECT count(*) FROM investor_registrations),
			(SELECT count(*) FROM projects WHERE is_active),
			(SELECT count(*) FROM rentals WHERE is_active AND status=$1),
			(SELECT count(DISTINCT city) FROM properties WHERE is_active)`, models.StatusApproved).
			Scan(&s.TotalProperties, &s.ApprovedProperties, &s.TotalUsers, &s.TotalInvestors, &s.TotalProjects,
				&s.TotalRentals, &s.CitiesCovered)
		if err != nil {
			dbFail(c, err, "")
			return
		}
		s.HappyCustomers = s.TotalUsers
		c.JSON(http.StatusOK, s)
	}
}
