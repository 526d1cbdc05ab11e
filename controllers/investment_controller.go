package controllers

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"deeprealties/backend/database"
	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

const opportunityColumns = `id, title, description, location, city, state, investment_type, min_investment::float8,
	expected_roi::float8, investment_period, highlights, risk_level, images, documents, investors_count, is_active,
	created_at, updated_at`

func scanOpportunity(row scanner) (models.InvestmentOpportunity, error) {
	var o models.InvestmentOpportunity
	err := row.Scan(&o.ID, &o.Title, &o.Description, &o.Location, &o.City, &o.State, &o.InvestmentType,
		&o.MinInvestment, &o.ExpectedROI, &o.InvestmentPeriod, &o.Highlights, &o.RiskLevel, &o.Images, &o.Documents,
		&o.InvestorsCount, &o.IsActive, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const registrationColumns = `id, opportunity_id, user_id, full_name, email, phone, investment_budget::float8,
	preferred_investment_type, message, is_contacted, created_at`

func scanRegistration(row scanner) (models.InvestorRegistration, error) {
	var r models.InvestorRegistration
	err := row.Scan(&r.ID, &r.OpportunityID, &r.UserID, &r.FullName, &r.Email, &r.Phone, &r.InvestmentBudget,
		&r.PreferredInvestmentType, &r.Message, &r.IsContacted, &r.CreatedAt)
	return r, err
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func CreateOpportunity() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.InvestmentOpportunityCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		o, err := scanOpportunity(database.Pool.QueryRow(ctx, `INSERT INTO investments(title, description, location,
			city, state, investment_type, min_investment, expected_roi, investment_period, highlights, risk_level,
			images, documents) VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) RETURNING `+opportunityColumns,
			req.Title, req.Description, req.Location, req.City, req.State, req.InvestmentType, req.MinInvestment,
			req.ExpectedROI, req.InvestmentPeriod, orEmpty(req.Highlights), req.RiskLevel, orEmpty(req.Images),
			orEmpty(req.Documents)))
		if err != nil {
			dbFail(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

func optionalFloat(c *gin.Context, key string) (*float64, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, "Invalid "+key)
		return nil, false
	}
	return &f, true
}

func ListOpportunities() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := page(c, 50, 100)
		if !ok {
			return
		}
		minInv, ok := optionalFloat(c, "min_investment")
		if !ok {
			return
		}
		maxInv, ok := optionalFloat(c, "max_investment")
		if !ok {
			return
		}
		b := &sqlBuilder{}
		b.where("is_active = ?", true)
		if t := c.Query("investment_type"); t != "" {
			b.where("investment_type ILIKE ?", contains(t))
		}
		if city := c.Query("city"); city != "" {
			b.where("city ILIKE ?", contains(city))
		}
		if minInv != nil {
			b.where("min_investment >= ?", *minInv)
		}
		if maxInv != nil {
			b.where("min_investment <= ?", *maxInv)
		}
		sql := `SELECT ` + opportunityColumns + ` FROM investments` + b.whereSQL() + ` ORDER BY created_at DESC` + b.page(skip, limit)

		ctx, cancel := dbCtx(c)
		defer cancel()
		rows, err := database.Pool.Query(ctx, sql, b.args...)
		if err != nil {
			dbFail(c, err, "")
			return
		}
		out, err := collectRows(rows, scanOpportunity)
		if err != nil {
			dbFail(c, err, "")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetOpportunity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "opportunity")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		o, err := scanOpportunity(database.Pool.QueryRow(ctx, `SELECT `+opportunityColumns+` FROM investments
			WHERE id=$1 AND is_active`, id))
		if err != nil {
			dbFail(c, err, "Investment opportunity not found")
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func DeleteOpportunity() gin.HandlerFunc {
	return softDelete("investments", "opportunity")
}

// RegisterInvestor stores the lead and bumps the opportunity's investor count
// in one transaction. An email can register only once.
func RegisterInvestor() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.InvestorRegistrationCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()

		var reg models.InvestorRegistration
		err := pgx.BeginFunc(ctx, database.Pool, func(tx pgx.Tx) error {
			var err error
			reg, err = scanRegistration(tx.QueryRow(ctx, `INSERT INTO investor_registrations(opportunity_id, user_id,
				full_name, email, phone, investment_budget, preferred_investment_type, message)
				VALUES($1,$2,$3,$4,$5,$6,$7,$8) RETURNING `+registrationColumns,
				req.OpportunityID, optionalUserID(c), req.FullName, req.Email, req.Phone, req.InvestmentBudget,
				req.PreferredInvestmentType, req.Message))
			if err != nil {
				return err
			}
			return bumpInvestors(ctx, tx, req.OpportunityID)
		})
		if isUniqueViolation(err) {
			fail(c, http.StatusBadRequest, "This email is already registered as an investor")
			return
		}
		if err != nil {
			dbFail(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, reg)
	}
}

func bumpInvestors(ctx context.Context, tx pgx.Tx, opportunityID *int64) error {
	if opportunityID == nil {
		return nil
	}
	_, err := tx.Exec(ctx, `UPDATE investments SET investors_count = investors_count + 1 WHERE id=$1`, *opportunityID)
	return err
}

func ListRegistrations() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := page(c, 50, 100)
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		rows, err := database.Pool.Query(ctx, `SELECT `+registrationColumns+` FROM investor_registrations
			ORDER BY created_at DESC OFFSET $1 LIMIT $2`, skip, limit)
		if err != nil {
			dbFail(c, err, "")
			return
		}
		out, err := collectRows(rows, scanRegistration)
		if err != nil {
			dbFail(c, err, "")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func MarkInvestorContacted() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "registration")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		r, err := scanRegistration(database.Pool.QueryRow(ctx, `UPDATE investor_registrations SET is_contacted=TRUE
			WHERE id=$1 RETURNING `+registrationColumns, id))
		if err != nil {
			dbFail(c, err, "Registration not found")
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

func InvestmentStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := dbCtx(c)
		defer cancel()
		var s models.InvestmentStatistics
		var avg *float64
		err := database.Pool.QueryRow(ctx, `SELECT
			(SELECT count(*) FROM investments WHERE is_active),
			(SELECT count(*) FROM investor_registrations),
			(SELECT avg(expected_roi)::float8 FROM investments WHERE is_active AND expected_roi IS NOT NULL)`).
			Scan(&s.TotalOpportunities, &s.TotalInvestors, &avg)
		if err != nil {
			dbFail(c, err, "")
			return
		}
		if avg != nil {
			s.AverageROI = math.Round(*avg*100) / 100
		}
		c.JSON(http.StatusOK, s)
	}
}
