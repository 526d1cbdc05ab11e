package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"deeprealties/backend/database"
	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t *testing.T
	h http.Handler
}

func (a apiClient) do(method, path, token string, body any, out any) int {
	a.t.Helper()
	var rdr *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		rdr = bytes.NewReader(raw)
	} else {
		rdr = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.h.ServeHTTP(w, req)
	if out != nil && w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

// with binds the client to a subtest so require stops the right goroutine.
func (a apiClient) with(t *testing.T) apiClient {
	a.t = t
	return a
}

func (a apiClient) login(email, password string) (string, int) {
	a.t.Helper()
	form := url.Values{"username": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.h.ServeHTTP(w, req)
	var tok models.Token
	if w.Code == http.StatusOK {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &tok))
	}
	return tok.AccessToken, w.Code
}

const integrationPassword = "Secret!123"

// integrationAPI connects to DATABASE_URL and serves the full route table.
// The returned run id suffixes every name so runs do not collide.
func integrationAPI(t *testing.T) (apiClient, int64) {
	t.Helper()
	if os.Getenv("RUN_DB_INTEGRATION") != "true" {
		t.Skip("set RUN_DB_INTEGRATION=true to run this integration test")
	}
	_ = godotenv.Load("../.env")
	dbURL := os.Getenv("DATABASE_URL")
	require.NotEmpty(t, dbURL, "DATABASE_URL is required")

	ctx := context.Background()
	require.NoError(t, database.Connect(ctx, dbURL))
	t.Cleanup(database.Close)
	require.NoError(t, database.EnsureSchema(ctx))

	r := gin.New()
	Register(r, testConfig())
	return apiClient{t: t, h: r}, time.Now().UnixNano()
}

func (a apiClient) register(run int64, name, role string) models.User {
	a.t.Helper()
	var u models.User
	code := a.do(http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Email: fmt.Sprintf("%s_%d@example.com", name, run), FullName: name, Password: integrationPassword, Role: role,
	}, &u)
	require.Equal(a.t, http.StatusCreated, code)
	return u
}

// promote makes u an admin directly in the database and logs in.
func (a apiClient) promote(u models.User) string {
	a.t.Helper()
	_, err := database.Pool.Exec(context.Background(), `UPDATE users SET role='admin' WHERE id=$1`, u.ID)
	require.NoError(a.t, err)
	tok, code := a.login(u.Email, integrationPassword)
	require.Equal(a.t, http.StatusOK, code)
	return tok
}

// TestMarketplaceIntegration walks a listing from submission to enquiry
// against a real Postgres.
func TestMarketplaceIntegration(t *testing.T) {
	api, run := integrationAPI(t)
	city := fmt.Sprintf("Itest%d", run)
	password := integrationPassword

	seller := api.register(run, "seller", models.RoleSeller)
	buyer := api.register(run, "buyer", models.RoleBuyer)
	admin := api.register(run, "admin", models.RoleAdmin)
	assert.Equal(t, models.RoleBuyer, admin.Role)
	api.promote(admin)

	var dup map[string]string
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Email: seller.Email, FullName: "again", Password: password,
	}, &dup))
	assert.Equal(t, "Email already registered", dup["detail"])

	_, code := api.login(seller.Email, "wrong-password")
	assert.Equal(t, http.StatusUnauthorized, code)
	sellerTok, code := api.login(seller.Email, password)
	require.Equal(t, http.StatusOK, code)
	buyerTok, _ := api.login(buyer.Email, password)
	adminTok, _ := api.login(admin.Email, password)

	var prop models.Property
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/properties", sellerTok, models.PropertyCreate{
		Title: "Integration Villa", City: city, Price: 8500000, PropertyType: "villa",
	}, &prop))
	assert.Equal(t, models.StatusPending, prop.Status)

	var listed []models.Property
	api.do(http.MethodGet, "/api/properties?city="+city, "", nil, &listed)
	assert.Empty(t, listed)

	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPut, fmt.Sprintf("/api/properties/%d/approve", prop.ID), buyerTok, nil, nil))
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, fmt.Sprintf("/api/properties/%d/approve", prop.ID), adminTok, nil, nil))

	api.do(http.MethodGet, "/api/properties?city="+strings.ToLower(city), "", nil, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, prop.ID, listed[0].ID)

	var viewed models.Property
	api.do(http.MethodGet, fmt.Sprintf("/api/properties/%d", prop.ID), "", nil, &viewed)
	assert.Equal(t, int64(1), viewed.Views)

	var own map[string]string
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/enquiries", sellerTok,
		models.EnquiryCreate{PropertyID: prop.ID, Message: "mine"}, &own))
	assert.Equal(t, "Cannot enquire about your own property", own["detail"])
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/enquiries", buyerTok,
		models.EnquiryCreate{PropertyID: prop.ID, Message: "Is it available?"}, nil))

	var received []models.Enquiry
	api.do(http.MethodGet, "/api/enquiries/seller/enquiries", sellerTok, nil, &received)
	require.NotEmpty(t, received)
	assert.Equal(t, "Integration Villa", received[0].PropertyTitle)

	var msg map[string]string
	api.do(http.MethodPut, fmt.Sprintf("/api/admin/users/%d/toggle-active", buyer.ID), adminTok, nil, &msg)
	assert.Equal(t, "User deactivated", msg["message"])
	_, code = api.login(buyer.Email, password)
	assert.Equal(t, http.StatusForbidden, code)

	assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, fmt.Sprintf("/api/properties/%d", prop.ID), sellerTok, nil, nil))
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, fmt.Sprintf("/api/properties/%d", prop.ID), "", nil, nil))

	// A soft-deleted listing is gone for its owner too.
	title := "Revived"
	var gone map[string]string
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPut, fmt.Sprintf("/api/properties/%d", prop.ID), sellerTok,
		models.PropertyUpdate{Title: &title}, &gone))
	assert.Equal(t, "Property not found", gone["detail"])
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, fmt.Sprintf("/api/properties/%d", prop.ID), sellerTok, nil, nil))
}

// TestLeadCaptureIntegration covers the anonymous lead forms: contact,
// requirements with listing matching, investor and event registration, and
// rental submission through approval.
func TestLeadCaptureIntegration(t *testing.T) {
	api, run := integrationAPI(t)
	city := fmt.Sprintf("Lead%d", run)
	email := func(name string) string { return fmt.Sprintf("%s_%d@example.com", name, run) }

	seller := api.register(run, "leadseller", models.RoleSeller)
	sellerTok, code := api.login(seller.Email, integrationPassword)
	require.Equal(t, http.StatusOK, code)
	adminTok := api.promote(api.register(run, "leadadmin", models.RoleBuyer))

	t.Run("contact", func(t *testing.T) {
		api := api.with(t)
		var sub models.ContactSubmission
		require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/contact", "", models.ContactCreate{
			FullName: "Asha", Email: email("asha"), Subject: "Site visit", Message: "Saturday?",
		}, &sub))
		assert.NotZero(t, sub.ID)
		assert.False(t, sub.IsRead)
		assert.Equal(t, http.StatusUnprocessableEntity, api.do(http.MethodPost, "/api/contact", "", models.ContactCreate{
			FullName: "Asha", Email: email("asha"), Message: "no subject",
		}, nil))
		assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/contact", "", nil, nil))
	})

	t.Run("requirement matches at most ten listings", func(t *testing.T) {
		api := api.with(t)
		for i := 0; i < 11; i++ {
			require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/properties", sellerTok, models.PropertyCreate{
				Title: fmt.Sprintf("Plot %d", i), City: city, Price: float64(3000000 + i*1000), PropertyType: "plot",
			}, nil))
		}
		require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/properties", sellerTok, models.PropertyCreate{
			Title: "Too dear", City: city, Price: 90000000, PropertyType: "plot",
		}, nil))

		var req models.Requirement
		require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/requirements", "", models.RequirementCreate{
			PropertyType: "plot", MinBudget: 2000000, MaxBudget: 5000000,
			PreferredLocation: "Outskirts", City: strings.ToLower(city),
			FullName: "Ravi", Email: email("ravi"), Phone: "9000000000",
		}, &req))
		assert.Len(t, req.MatchedProperties, 10)
		assert.False(t, req.IsFulfilled)

		var fetched models.Requirement
		require.Equal(t, http.StatusOK, api.do(http.MethodGet, fmt.Sprintf("/api/requirements/%d", req.ID), adminTok, nil, &fetched))
		assert.ElementsMatch(t, req.MatchedProperties, fetched.MatchedProperties)
	})

	t.Run("investor registration", func(t *testing.T) {
		api := api.with(t)
		var opp models.InvestmentOpportunity
		require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/investments/opportunities", adminTok, models.InvestmentOpportunityCreate{
			Title: "Farmland fund", Description: "Managed farmland", Location: "Outskirts",
			City: city, State: "Telangana", InvestmentType: "farmland", MinInvestment: 500000,
		}, &opp))
		assert.Zero(t, opp.InvestorsCount)

		reg := models.InvestorRegistrationCreate{
			OpportunityID: &opp.ID, FullName: "Meera", Email: email("meera"), Phone: "9111111111",
		}
		require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/investments/register", "", reg, nil))

		var dup map[string]string
		assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/investments/register", "", reg, &dup))
		assert.Equal(t, "This email is already registered as an investor", dup["detail"])

		var after models.InvestmentOpportunity
		require.Equal(t, http.StatusOK, api.do(http.MethodGet, fmt.Sprintf("/api/investments/opportunities/%d", opp.ID), "", nil, &after))
		assert.Equal(t, 1, after.InvestorsCount)
	})

	t.Run("event registration", func(t *testing.T) {
		api := api.with(t)
		one := 1
		var ev models.Event
		require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/events", adminTok, models.EventCreate{
			Title: "Site tour", Description: "Guided tour", Location: "Clubhouse", City: city,
			EventDate: time.Now().Add(72 * time.Hour), MaxAttendees: &one,
		}, &ev))
		path := fmt.Sprintf("/api/events/%d/register", ev.ID)

		first := models.EventRegistrationCreate{FullName: "Kiran", Email: email("kiran"), Phone: "9222222222"}
		var reg models.EventRegistration
		require.Equal(t, http.StatusOK, api.do(http.MethodPost, path, "", first, &reg))
		assert.Equal(t, ev.ID, reg.EventID)

		var body map[string]string
		assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, path, "", first, &body))
		assert.Equal(t, "Already registered for this event", body["detail"])

		second := models.EventRegistrationCreate{FullName: "Lata", Email: email("lata"), Phone: "9333333333"}
		assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, path, "", second, &body))
		assert.Equal(t, "Event is full", body["detail"])

		var counted models.Event
		require.Equal(t, http.StatusOK, api.do(http.MethodGet, fmt.Sprintf("/api/events/%d", ev.ID), "", nil, &counted))
		assert.Equal(t, 1, counted.RegisteredCount)

		var past models.Event
		require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/events", adminTok, models.EventCreate{
			Title: "Launch", Description: "Done", Location: "Hall", City: city,
			EventDate: time.Now().Add(-72 * time.Hour), IsPast: true,
		}, &past))
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodPost, fmt.Sprintf("/api/events/%d/register", past.ID), "", second, &body))
		assert.Equal(t, "Event not found or already past", body["detail"])
	})

	t.Run("rental approval", func(t *testing.T) {
		api := api.with(t)
		var rental models.Rental
		require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/rentals", "", models.RentalCreate{
			Title: "2BHK", Description: "Near metro", Locality: "Madhapur", City: city, State: "Telangana",
			MonthlyRent: 25000, PropertyType: "apartment", AreaSqft: 1100,
			FullName: "Owner", Email: email("owner"), Phone: "9444444444",
		}, &rental))
		assert.Equal(t, models.StatusPending, rental.Status)
		assert.Equal(t, "unfurnished", rental.RentType)

		var listed []models.Rental
		api.do(http.MethodGet, "/api/rentals?city="+city, "", nil, &listed)
		assert.Empty(t, listed)

		require.Equal(t, http.StatusOK, api.do(http.MethodPut, fmt.Sprintf("/api/rentals/%d/approve", rental.ID), adminTok, nil, nil))
		api.do(http.MethodGet, "/api/rentals?city="+city, "", nil, &listed)
		require.Len(t, listed, 1)
		assert.Equal(t, rental.ID, listed[0].ID)
	})
}
