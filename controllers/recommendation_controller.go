package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"deeprealties/backend/config"
	"deeprealties/backend/database"
	"deeprealties/backend/logger"
	"deeprealties/backend/models"
	"deeprealties/backend/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	summaryTimeout    = 20 * time.Second
	summaryMaxListing = 5
)

const recommendationColumns = `id, buyer_id, form_data, matched_properties, ai_summary, created_at`

func scanRecommendation(row scanner) (models.Recommendation, error) {
	var r models.Recommendation
	var form []byte
	err := row.Scan(&r.ID, &r.BuyerID, &form, &r.MatchedProperties, &r.AISummary, &r.CreatedAt)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(form, &r.FormData); err != nil {
		return r, fmt.Errorf("decode form_data: %w", err)
	}
	return r, nil
}

func sameFold(want *string, got string) bool {
	return want == nil || *want == "" || strings.EqualFold(*want, got)
}

func substrFold(want *string, got string) bool {
	return want == nil || *want == "" || strings.Contains(strings.ToLower(got), strings.ToLower(*want))
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func sameOptional[T comparable](want, got *T) bool {
	if want == nil {
		return true
	}
	return got != nil && *got == *want
}

// matchProperties returns the ids of listings satisfying every criterion the
// buyer filled in. City and state compare case-insensitively; locality and
// facing match as substrings. Zero bounds are treated as unset.
func matchProperties(form models.RecommendationForm, props []models.Property) []int64 {
	out := []int64{}
	for _, p := range props {
		if !p.IsActive {
			continue
		}
		if form.PropertyType != nil && *form.PropertyType != "" && p.PropertyType != *form.PropertyType {
			continue
		}
		if !sameFold(form.City, p.City) || !sameFold(form.State, p.State) || !substrFold(form.Locality, p.Locality) {
			continue
		}
		if v := deref(form.MinPrice); v != 0 && p.Price < v {
			continue
		}
		if v := deref(form.MaxPrice); v != 0 && p.Price > v {
			continue
		}
		if v := deref(form.MinAreaSqft); v != 0 && p.AreaSqft < v {
			continue
		}
		if v := deref(form.MaxAreaSqft); v != 0 && p.AreaSqft > v {
			continue
		}
		if !sameOptional(form.Bedrooms, p.Bedrooms) || !sameOptional(form.Bathrooms, p.Bathrooms) ||
			!sameOptional(form.Parking, p.Parking) {
			continue
		}
		if !substrFold(form.Facing, deref(p.Facing)) {
			continue
		}
		out = append(out, p.ID)
	}
	return out
}

func summaryPrompt(form models.RecommendationForm, matched []models.Property) string {
	var b strings.Builder
	b.WriteString("You are a real estate advisor in India. In three short sentences, tell the buyer how well ")
	b.WriteString("these listings fit their request and what to look at first.\n\nRequest:\n")
	if form.PropertyType != nil {
		fmt.Fprintf(&b, "- type: %s\n", *form.PropertyType)
	}
	if loc := strings.TrimSpace(strings.Join([]string{deref(form.Locality), deref(form.City), deref(form.State)}, " ")); loc != "" {
		fmt.Fprintf(&b, "- location: %s\n", loc)
	}
	fmt.Fprintf(&b, "- budget: %s\n", utils.FormatPriceRange(form.MinPrice, form.MaxPrice))
	if form.Description != nil && *form.Description != "" {
		fmt.Fprintf(&b, "- notes: %s\n", utils.Truncate(*form.Description, 300))
	}
	b.WriteString("\nListings:\n")
	for i, p := range matched {
		if i == summaryMaxListing {
			break
		}
		fmt.Fprintf(&b, "%d. %s, %s, %s, %.0f sqft\n", i+1, p.Title, p.City, utils.FormatPrice(p.Price), p.AreaSqft)
	}
	return b.String()
}

// summarize asks the model for a short note on the matches. Failures are
// logged and leave the recommendation without a summary.
func summarize(ctx context.Context, cfg config.Config, form models.RecommendationForm, matched []models.Property) *string {
	ai := utils.AIConfig{APIKey: cfg.GeminiAPIKey, GenModel: cfg.GeminiModel}
	if !ai.Enabled() || len(matched) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()
	text, err := utils.Summarize(ctx, ai, summaryPrompt(form, matched))
	if err != nil {
		logger.L.Warn("recommendation summary", zap.Error(err))
		return nil
	}
	if text == "" {
		return nil
	}
	return &text
}

func CreateRecommendation(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.RecommendationForm
		if err := c.ShouldBindJSON(&form); err != nil {
			bindError(c, err)
			return
		}
		if form.PropertyType != nil && *form.PropertyType != "" && !models.OneOf(*form.PropertyType, models.PropertyTypes) {
			fail(c, http.StatusUnprocessableEntity, "Invalid property_type")
			return
		}
		u, ok := currentUser(c)
		if !ok {
			return
		}
		candidates, ok := queryProperties(c, `SELECT `+propertyColumns+` FROM properties
			WHERE is_active AND status=$1 ORDER BY created_at DESC`, models.StatusApproved)
		if !ok {
			return
		}
		ids := matchProperties(form, candidates)
		byID := make(map[int64]models.Property, len(candidates))
		for _, p := range candidates {
			byID[p.ID] = p
		}
		matched := make([]models.Property, 0, len(ids))
		for _, id := range ids {
			matched = append(matched, byID[id])
		}

		summary := summarize(c.Request.Context(), cfg, form, matched)
		raw, err := json.Marshal(form)
		if err != nil {
			fail(c, http.StatusInternalServerError, "Could not save recommendation")
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		r, err := scanRecommendation(database.Pool.QueryRow(ctx, `INSERT INTO recommendations(buyer_id, form_data,
			matched_properties, ai_summary) VALUES($1,$2::jsonb,$3,$4) RETURNING `+recommendationColumns,
			u.ID, string(raw), ids, summary))
		if err != nil {
			dbFail(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, r)
	}
}

func MyRecommendations() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit, ok := page(c, 100, 100)
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		rows, err := database.Pool.Query(ctx, `SELECT `+recommendationColumns+` FROM recommendations
			WHERE buyer_id=$1 ORDER BY created_at DESC OFFSET $2 LIMIT $3`, userID(c), skip, limit)
		if err != nil {
			dbFail(c, err, "")
			return
		}
		out, err := collectRows(rows, scanRecommendation)
		if err != nil {
			dbFail(c, err, "")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func RecommendationProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id", "recommendation")
		if !ok {
			return
		}
		ctx, cancel := dbCtx(c)
		defer cancel()
		r, err := scanRecommendation(database.Pool.QueryRow(ctx, `SELECT `+recommendationColumns+` FROM recommendations WHERE id=$1`, id))
		if err != nil {
			dbFail(c, err, "Recommendation not found")
			return
		}
		if r.BuyerID != userID(c) {
			fail(c, http.StatusForbidden, "Not authorized to view this recommendation")
			return
		}
		if len(r.MatchedProperties) == 0 {
			c.JSON(http.StatusOK, []models.Property{})
			return
		}
		out, ok := queryProperties(c, `SELECT `+propertyColumns+` FROM properties
			WHERE id = ANY($1) AND is_active ORDER BY created_at DESC`, r.MatchedProperties)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
