package controllers

import (
	"net/http"

	"deeprealties/backend/database"
	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
)

const enquiryColumns = `e.id, e.property_id, e.buyer_id, e.seller_id, e.message, e.is_read, e.created_at,
	COALESCE(p.title, '')`

const enquiryFrom = ` FROM enquiries e LEFT JOIN properties p ON p.id = e.property_id`

func scanEnquiry(row scanner) (models.Enquiry, error) {
	var e models.Enquiry
	err := row.Scan(&e.ID, &e.PropertyID, &e.BuyerID, &e.SellerID, &e.Message, &e.IsRead, &e.CreatedAt, &e.PropertyTitle)
	return e, err
}

func queryEnquiries(c *gin.Context, sql string, args ...any) ([]models.Enquiry, bool) {
	ctx, cancel := dbCtx(c)
	defer cancel()
	rows, err := database.Pool.Query(ctx, sql, args...)
	if err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	defer rows.Close()
	out := []models.Enquiry{}
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			dbFail(c, err, "")
			return nil, false
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		dbFail(c, err, "")
		return nil, false
	}
	return out, true
}

func CreateEnquiry() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.EnquiryCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		if req.PropertyID <= 0 {
			fail(c, http.StatusBadRequest, "Invalid property ID")
			return
		}
		uid := userID(c)
		ctx, cancel := dbCtx(c)
		defer cancel()

		var sellerID *int64
		var title string
		err := database.Pool.QueryRow(ctx, `SELECT seller_id, title FROM properties WHERE id=$1 AND is_active`,
			req.PropertyID).Scan(&sellerID, &title)
		if err != nil {
			dbFail(c, err, "Property not found")
			return
		}
		if sellerID != nil && *sellerID == uid {
			fail(c, http.StatusBadRequest, "Cannot enquire about your own property")
			return
		}

		e := models.Enquiry{PropertyID: req.PropertyID, BuyerID: uid, SellerID: sellerID, Message: req.Message, PropertyTitle: title}
		err = database.Pool.QueryRow(ctx, `INSERT INTO enquiries(property_id, buyer_id, seller_id, message)
			VALUES($1,$2,$3,$4) RETURNING id, is_read, created_at`,
			req.PropertyID, uid, sellerID, req.Message).Scan(&e.ID, &e.IsRead, &e.CreatedAt)
		if err != nil {
			dbFail(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, e)
	}
}

// MyEnquiries lists enquiries the caller sent.
func MyEnquiries() gin.HandlerFunc {
	return func(c *gin.Context) {
		out, ok := queryEnquiries(c, `SELECT `+enquiryColumns+enquiryFrom+`
			WHERE e.buyer_id=$1 ORDER BY e.created_at DESC`, userID(c))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ReceivedEnquiries lists enquiries about the caller's listings, with the
// listing title attached for the seller dashboard.
func ReceivedEnquiries() gin.HandlerFunc {
	return func(c *gin.Context) {
		out, ok := queryEnquiries(c, `SELECT `+enquiryColumns+enquiryFrom+`
			WHERE e.seller_id=$1 ORDER BY e.created_at DESC`, userID(c))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func MarkEnquiryRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "enquiry")
		if !ok {
			return
		}
		u, ok := currentUser(c)
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		e, err := scanEnquiry(database.Pool.QueryRow(ctx, `SELECT `+enquiryColumns+enquiryFrom+` WHERE e.id=$1`, id))
		if err != nil {
			dbFail(c, err, "Enquiry not found")
			return
		}
		if !isAdmin(u) && (e.SellerID == nil || *e.SellerID != u.ID) {
			fail(c, http.StatusForbidden, "Not authorized")
			return
		}
		if _, err := database.Pool.Exec(ctx, `UPDATE enquiries SET is_read=TRUE WHERE id=$1`, id); err != nil {
			dbFail(c, err, "")
			return
		}
		e.IsRead = true
		c.JSON(http.StatusOK, e)
	}
}
