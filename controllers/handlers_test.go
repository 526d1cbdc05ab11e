package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

// These requests are all rejected before any database access.
func serve(method, route, path, body string, h gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, route, h)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Detail
}

func TestInvalidPathIDs(t *testing.T) {
	cases := []struct {
		route, path string
		h           gin.HandlerFunc
		want        string
	}{
		{"/properties/:id", "/properties/abc", GetProperty(), "Invalid property ID"},
		{"/rentals/:id", "/rentals/0", GetRental(), "Invalid rental ID"},
		{"/events/:id", "/events/-4", GetEvent(), "Invalid event ID"},
		{"/projects/:id", "/projects/x1", GetProject(), "Invalid project ID"},
		{"/contact/:id", "/contact/nope", GetContact(), "Invalid submission ID"},
		{"/requirements/:id", "/requirements/1.5", GetRequirement(), "Invalid requirement ID"},
		{"/investments/opportunities/:id", "/investments/opportunities/z", GetOpportunity(), "Invalid opportunity ID"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := serve(http.MethodGet, tc.route, tc.path, "", tc.h)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.want, detail(t, w))
		})
	}
}

func TestListPropertiesPagination(t *testing.T) {
	for _, q := range []string{"skip=-1", "limit=0", "limit=101", "limit=ten"} {
		w := serve(http.MethodGet, "/properties", "/properties?"+q, "", ListProperties())
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, q)
	}
	w := serve(http.MethodGet, "/properties", "/properties?property_type=castle", "", ListProperties())
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid property_type", detail(t, w))
}

func TestCreatePropertyImageLimit(t *testing.T) {
	body := `{"title":"Plot","city":"Vizag","price":250000,"property_type":"plot","images":["1","2","3","4"]}`
	w := serve(http.MethodPost, "/properties", "/properties", body, CreateProperty())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Maximum 3 images allowed", detail(t, w))
}

func TestCreatePropertyValidation(t *testing.T) {
	w := serve(http.MethodPost, "/properties", "/properties", `{"title":"No price","city":"Vizag","property_type":"plot"}`, CreateProperty())
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = serve(http.MethodPost, "/properties", "/properties", `{"title":"T","city":"C","price":1,"property_type":"plot","listing_type":"lease"}`, CreateProperty())
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid listing_type", detail(t, w))
}

func TestRegisterValidation(t *testing.T) {
	w := serve(http.MethodPost, "/register", "/register", `{"email":"not-an-email","full_name":"A","password":"secret1"}`, Register())
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = serve(http.MethodPost, "/register", "/register", `{"email":"a@b.co","full_name":"A","password":"123"}`, Register())
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRegistrationRole(t *testing.T) {
	assert.Equal(t, models.RoleSeller, registrationRole("seller"))
	assert.Equal(t, models.RoleInvestor, registrationRole("investor"))
	assert.Equal(t, models.RoleBuyer, registrationRole("admin"))
	assert.Equal(t, models.RoleBuyer, registrationRole(""))
}

func TestToggleMessage(t *testing.T) {
	assert.Equal(t, "User activated", toggleMessage(true))
	assert.Equal(t, "User deactivated", toggleMessage(false))
}

func TestValidateRentalDefaults(t *testing.T) {
	req := models.RentalCreate{PropertyType: "flat"}
	assert.Empty(t, validateRental(&req))
	assert.Equal(t, "unfurnished", req.RentType)
	assert.Equal(t, "any", req.TenantType)

	req = models.RentalCreate{PropertyType: "flat", TenantType: "students"}
	assert.Equal(t, "Invalid tenant_type", validateRental(&req))
}

func TestExportUnknownDataset(t *testing.T) {
	w := serve(http.MethodGet, "/export/:dataset", "/export/passwords", "", ExportDataset())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Unknown dataset", detail(t, w))
}

func TestExportDatasetsHaveHeaders(t *testing.T) {
	for _, name := range []string{"properties", "users", "enquiries", "requirements", "contacts"} {
		ds, ok := datasets[name]
		require.True(t, ok, name)
		assert.NotEmpty(t, ds.headers, name)
	}
}

func TestListEventsRejectsBadFlag(t *testing.T) {
	w := serve(http.MethodGet, "/events", "/events?is_past=maybe", "", ListEvents())
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid is_past", detail(t, w))
}
