package controllers

import (
	"net/http"
	"strings"

	"deeprealties/backend/config"
	"deeprealties/backend/database"
	"deeprealties/backend/logger"
	"deeprealties/backend/models"
	"deeprealties/backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// registrationRole maps the requested role onto one a visitor may pick.
// Admin accounts are provisioned out of band.
func registrationRole(requested string) string {
	switch requested {
	case models.RoleSeller, models.RoleInvestor:
		return requested
	default:
		return models.RoleBuyer
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return asPgError(err, &pgErr) && pgErr.Code == "23505"
}

func Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))
		pw, err := utils.HashPassword(req.Password)
		if err != nil {
			logger.L.Error("hash password", zap.Error(err))
			fail(c, http.StatusInternalServerError, "Could not register user")
			return
		}

		ctx, cancel := dbCtx(c)
		defer cancel()
		u, err := scanUser(database.Pool.QueryRow(ctx, `INSERT INTO users(email, full_name, phone, password_hash, role)
			VALUES($1,$2,$3,$4,$5) RETURNING `+userColumns,
			email, req.FullName, req.Phone, pw, registrationRole(req.Role)))
		if isUniqueViolation(err) {
			fail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		if err != nil {
			dbFail(c, err, "")
			return
		}
		logger.L.Info("user registered", zap.Int64("user_id", u.ID), zap.String("role", u.Role))
		c.JSON(http.StatusCreated, u)
	}
}

// Login accepts the OAuth2 password form: username carries the email.
func Login(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.LoginForm
		if err := c.ShouldBind(&form); err != nil {
			bindError(c, err)
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		u, err := scanUser(database.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`,
			strings.ToLower(strings.TrimSpace(form.Username))))
		if err != nil || !utils.VerifyPassword(form.Password, u.PasswordHash) {
			if err != nil && !isNoRows(err) {
				dbFail(c, err, "")
				return
			}
			c.Header("WWW-Authenticate", "Bearer")
			fail(c, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		if !u.IsActive {
			fail(c, http.StatusForbidden, "User account is inactive")
			return
		}
		token, err := utils.GenerateJWT(cfg.JWTSecret, u.ID, u.Email, u.Role, cfg.TokenTTL)
		if err != nil {
			logger.L.Error("sign token", zap.Error(err))
			fail(c, http.StatusInternalServerError, "Could not issue token")
			return
		}
		c.JSON(http.StatusOK, models.Token{AccessToken: token, TokenType: "bearer"})
	}
}

// Me answers both /auth/me and /users/me.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := currentUser(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
