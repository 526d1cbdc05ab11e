package controllers

import (
	"net/http"

	"deeprealties/backend/database"
	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
)

const contactColumns = `id, full_name, email, phone, subject, message, is_read, is_responded, created_at`

func scanContact(row scanner) (models.ContactSubmission, error) {
	var s models.ContactSubmission
	err := row.Scan(&s.ID, &s.FullName, &s.Email, &s.Phone, &s.Subject, &s.Message, &s.IsRead, &s.IsResponded, &s.CreatedAt)
	return s, err
}

func queryContacts(c *gin.Context, sql string, args ...any) ([]models.ContactSubmission, bool) {
	ctx, cancel := dbCtx(c)
	defer cancel()
	rows, err := database.Pool.Query(ctx, sql, args...)
	if err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	defer rows.Close()
	out := []models.ContactSubmission{}
	for rows.Next() {
		s, err := scanContact(rows)
		if err != nil {
			dbFail(c, err, "")
			return nil, false
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	return out, true
}

func SubmitContact() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ContactCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		s, err := scanContact(database.Pool.QueryRow(ctx, `INSERT INTO contact_submissions(full_name, email, phone,
			subject, message) VALUES($1,$2,$3,$4,$5) RETURNING `+contactColumns,
			req.FullName, req.Email, req.Phone, req.Subject, req.Message))
		if err != nil {
			dbFail(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, s)
	}
}

func ListContacts() gin.HandlerFunc {
	return func(c *gin.Context) {
		read, ok := optionalBool(c, "is_read")
		if !ok {
			return
		}
		skip, limit, ok := page(c, 50, 100)
		if !ok {
			return
		}
		b := &sqlBuilder{}
		if read != nil {
			b.where("is_read = ?", *read)
		}
		sql := `SELECT ` + contactColumns + ` FROM contact_submissions` + b.whereSQL() + ` ORDER BY created_at DESC` + b.page(skip, limit)
		out, ok := queryContacts(c, sql, b.args...)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetContact() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "submission")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		s, err := scanContact(database.Pool.QueryRow(ctx, `SELECT `+contactColumns+` FROM contact_submissions WHERE id=$1`, id))
		if err != nil {
			dbFail(c, err, "Submission not found")
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// FlagContact sets one of the triage flags (is_read, is_responded).
func FlagContact(column string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "submission")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		s, err := scanContact(database.Pool.QueryRow(ctx, `UPDATE contact_submissions SET `+column+`=TRUE
			WHERE id=$1 RETURNING `+contactColumns, id))
		if err != nil {
			dbFail(c, err, "Submission not found")
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func DeleteContact() gin.HandlerFunc {
	return deleteRow("contact_submissions", "submission")
}
