package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"deeprealties/backend/logger"
	"deeprealties/backend/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// dataset loads one admin table as spreadsheet rows.
type dataset struct {
	headers []string
	load    func(c *gin.Context) ([][]any, bool)
}

func optString(p *string) any {
	if p == nil {
		return ""
	}
	return *p
}

func optNumber[T int | int64 | float64](p *T) any {
	if p == nil {
		return ""
	}
	return *p
}

func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

var datasets = map[string]dataset{
	"properties": {
		headers: []string{"ID", "Title", "Type", "Listing", "City", "State", "Locality", "Price", "Price (display)",
			"Area (sqft)", "Bedrooms", "Status", "Views", "Seller ID", "Active", "Created"},
		load: func(c *gin.Context) ([][]any, bool) {
			props, ok := queryProperties(c, `SELECT `+propertyColumns+` FROM properties ORDER BY created_at DESC`)
			if !ok {
				return nil, false
			}
			rows := make([][]any, 0, len(props))
			for _, p := range props {
				rows = append(rows, []any{p.ID, p.Title, p.PropertyType, p.ListingType, p.City, p.State, p.Locality,
					p.Price, utils.FormatPrice(p.Price), p.AreaSqft, optNumber(p.Bedrooms), p.Status, p.Views,
					optNumber(p.SellerID), p.IsActive, stamp(p.CreatedAt)})
			}
			return rows, true
		},
	},
	"users": {
		headers: []string{"ID", "Full name", "Email", "Phone", "Role", "Active", "Created"},
		load: func(c *gin.Context) ([][]any, bool) {
			users, ok := queryUsers(c, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
			if !ok {
				return nil, false
			}
			rows := make([][]any, 0, len(users))
			for _, u := range users {
				rows = append(rows, []any{u.ID, u.FullName, u.Email, optString(u.Phone), u.Role, u.IsActive, stamp(u.CreatedAt)})
			}
			return rows, true
		},
	},
	"enquiries": {
		headers: []string{"ID", "Property ID", "Property", "Buyer ID", "Seller ID", "Message", "Read", "Created"},
		load: func(c *gin.Context) ([][]any, bool) {
			enqs, ok := queryEnquiries(c, `SELECT `+enquiryColumns+enquiryFrom+` ORDER BY e.created_at DESC`)
			if !ok {
				return nil, false
			}
			rows := make([][]any, 0, len(enqs))
			for _, e := range enqs {
				rows = append(rows, []any{e.ID, e.PropertyID, e.PropertyTitle, e.BuyerID, optNumber(e.SellerID),
					e.Message, e.IsRead, stamp(e.CreatedAt)})
			}
			return rows, true
		},
	},
	"requirements": {
		headers: []string{"ID", "Type", "City", "Location", "Budget", "Name", "Email", "Phone", "Matches",
			"Fulfilled", "Created"},
		load: func(c *gin.Context) ([][]any, bool) {
			reqs, ok := queryRequirements(c, `SELECT `+requirementColumns+` FROM property_requirements ORDER BY created_at DESC`)
			if !ok {
				return nil, false
			}
			rows := make([][]any, 0, len(reqs))
			for _, r := range reqs {
				rows = append(rows, []any{r.ID, r.PropertyType, r.City, r.PreferredLocation,
					utils.FormatPriceRange(&r.MinBudget, &r.MaxBudget), r.FullName, r.Email, r.Phone,
					len(r.MatchedProperties), r.IsFulfilled, stamp(r.CreatedAt)})
			}
			return rows, true
		},
	},
	"contacts": {
		headers: []string{"ID", "Name", "Email", "Phone", "Subject", "Message", "Read", "Responded", "Created"},
		load: func(c *gin.Context) ([][]any, bool) {
			subs, ok := queryContacts(c, `SELECT `+contactColumns+` FROM contact_submissions ORDER BY created_at DESC`)
			if !ok {
				return nil, false
			}
			rows := make([][]any, 0, len(subs))
			for _, s := range subs {
				rows = append(rows, []any{s.ID, s.FullName, s.Email, optString(s.Phone), s.Subject, s.Message,
					s.IsRead, s.IsResponded, stamp(s.CreatedAt)})
			}
			return rows, true
		},
	},
}

// ExportDataset streams an admin table as an xlsx attachment.
func ExportDataset() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("dataset")
		ds, found := datasets[name]
		if !found {
			fail(c, http.StatusNotFound, "Unknown dataset")
			return
		}
		rows, ok := ds.load(c)
		if !ok {
			return
		}
		sheet := strings.ToUpper(name[:1]) + name[1:]
		data, err := utils.BuildWorkbook(sheet, ds.headers, rows)
		if err != nil {
			logger.L.Error("build workbook", zap.String("dataset", name), zap.Error(err))
			fail(c, http.StatusInternalServerError, "Could not build export")
			return
		}
		file := fmt.Sprintf("deeprealties-%s-%s.xlsx", name, time.Now().UTC().Format("20060102"))
		c.Header("Content-Disposition", `attachment; filename="`+file+`"`)
		c.Data(http.StatusOK, xlsxContentType, data)
	}
}

