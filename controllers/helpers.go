package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"deeprealties/backend/database"
	"deeprealties/backend/logger"
	"deeprealties/backend/middlewares"
	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const dbTimeout = 5 * time.Second

func dbCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), dbTimeout)
}

func fail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func asPgError(err error, target **pgconn.PgError) bool {
	return err != nil && errors.As(err, target)
}

// dbFail answers 404 for missing rows and 500 for anything else.
func dbFail(c *gin.Context, err error, notFound string) {
	if isNoRows(err) && notFound != "" {
		fail(c, http.StatusNotFound, notFound)
		return
	}
	_ = c.Error(err)
	logger.L.Error("db", zap.String("path", c.FullPath()), zap.Error(err))
	fail(c, http.StatusInternalServerError, "db error")
}

func parseID(c *gin.Context, param, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "Invalid "+what+" ID")
		return 0, false
	}
	return id, true
}

func bindError(c *gin.Context, err error) {
	fail(c, http.StatusUnprocessableEntity, "Invalid request: "+err.Error())
}

// page reads skip/limit with the bounds skip>=0, 1<=limit<=maxLimit.
func page(c *gin.Context, defLimit, maxLimit int) (skip, limit int, ok bool) {
	skip, err1 := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, err2 := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defLimit)))
	if err1 != nil || err2 != nil || skip < 0 || limit < 1 || limit > maxLimit {
		fail(c, http.StatusUnprocessableEntity, "Invalid pagination")
		return 0, 0, false
	}
	return skip, limit, true
}

func optionalBool(c *gin.Context, key string) (*bool, bool) {
	v, present := c.GetQuery(key)
	if !present || v == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, "Invalid "+key)
		return nil, false
	}
	return &b, true
}

func userID(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CtxUserID)
}

func optionalUserID(c *gin.Context) *int64 {
	if uid := userID(c); uid != 0 {
		return &uid
	}
	return nil
}

const userColumns = `id, full_name, email, phone, role, is_active, password_hash, created_at`

func scanUser(row scanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Role, &u.IsActive, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

func loadUser(ctx context.Context, id int64) (models.User, error) {
	return scanUser(database.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
}

// currentUser loads the caller; a token for a deleted account answers 404.
func currentUser(c *gin.Context) (models.User, bool) {
	ctx, cancel := dbCtx(c)
	defer cancel()
	u, err := loadUser(ctx, userID(c))
	if err != nil {
		dbFail(c, err, "User not found")
		return u, false
	}
	return u, true
}

// UserRole backs middlewares.RequireRole with the users table.
func UserRole(ctx context.Context, id int64) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	var role string
	var active bool
	err := database.Pool.QueryRow(ctx, `SELECT role, is_active FROM users WHERE id=$1`, id).Scan(&role, &active)
	return role, active, err
}

func isAdmin(u models.User) bool {
	return u.Role == models.RoleAdmin
}
