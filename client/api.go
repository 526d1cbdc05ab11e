package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"deeprealties/backend/models"
)

// Page bounds a list request. Zero values use the server defaults.
type Page struct {
	Skip  int
	Limit int
}

func (p Page) apply(q url.Values) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

func setString(q url.Values, k, v string) {
	if v != "" {
		q.Set(k, v)
	}
}

func setFloat(q url.Values, k string, v *float64) {
	if v != nil {
		q.Set(k, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

func setInt(q url.Values, k string, v *int) {
	if v != nil {
		q.Set(k, strconv.Itoa(*v))
	}
}

func propertyQuery(f models.PropertyFilter, p Page) url.Values {
	q := url.Values{}
	setString(q, "city", f.City)
	setString(q, "state", f.State)
	setString(q, "locality", f.Locality)
	setString(q, "property_type", f.PropertyType)
	setString(q, "listing_type", f.ListingType)
	setFloat(q, "min_price", f.MinPrice)
	setFloat(q, "max_price", f.MaxPrice)
	setFloat(q, "min_area_sqft", f.MinAreaSqft)
	setFloat(q, "max_area_sqft", f.MaxAreaSqft)
	setInt(q, "bedrooms", f.Bedrooms)
	setInt(q, "bathrooms", f.Bathrooms)
	if f.Parking != nil {
		q.Set("parking", strconv.FormatBool(*f.Parking))
	}
	setString(q, "facing", f.Facing)
	return p.apply(q)
}

func rentalQuery(f models.RentalFilter, p Page) url.Values {
	q := url.Values{}
	setString(q, "city", f.City)
	setString(q, "state", f.State)
	setString(q, "property_type", f.PropertyType)
	setString(q, "rent_type", f.RentType)
	setString(q, "tenant_type", f.TenantType)
	setFloat(q, "min_rent", f.MinRent)
	setFloat(q, "max_rent", f.MaxRent)
	setInt(q, "bedrooms", f.Bedrooms)
	return p.apply(q)
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}

// Auth

func (c *Client) Login(ctx context.Context, email, password string) (models.Token, error) {
	var t models.Token
	err := c.postForm(ctx, "/api/auth/login", url.Values{"username": {email}, "password": {password}}, &t)
	return t, err
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &u)
	return u, err
}

func (c *Client) Me(ctx context.Context) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodGet, "/api/users/me", nil, nil, &u)
	return u, err
}

// Properties

func (c *Client) Properties(ctx context.Context, f models.PropertyFilter, p Page) ([]models.Property, error) {
	var out []models.Property
	err := c.do(ctx, http.MethodGet, "/api/properties", propertyQuery(f, p), nil, &out)
	return out, err
}

func (c *Client) Property(ctx context.Context, id int64) (models.Property, error) {
	var out models.Property
	err := c.do(ctx, http.MethodGet, idPath("/api/properties/%d", id), nil, nil, &out)
	return out, err
}

func (c *Client) CreateProperty(ctx context.Context, req models.PropertyCreate) (models.Property, error) {
	var out models.Property
	err := c.do(ctx, http.MethodPost, "/api/properties", nil, req, &out)
	return out, err
}

func (c *Client) UpdateProperty(ctx context.Context, id int64, req models.PropertyUpdate) (models.Property, error) {
	var out models.Property
	err := c.do(ctx, http.MethodPut, idPath("/api/properties/%d", id), nil, req, &out)
	return out, err
}

func (c *Client) DeleteProperty(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/properties/%d", id), nil, nil, nil)
}

func (c *Client) MyProperties(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	err := c.do(ctx, http.MethodGet, "/api/properties/my-properties", nil, nil, &out)
	return out, err
}

func (c *Client) SellerProperties(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	err := c.do(ctx, http.MethodGet, "/api/properties/seller/my-properties", nil, nil, &out)
	return out, err
}

func (c *Client) PendingProperties(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	err := c.do(ctx, http.MethodGet, "/api/properties/pending", nil, nil, &out)
	return out, err
}

func (c *Client) ApproveProperty(ctx context.Context, id int64) (models.Property, error) {
	var out models.Property
	err := c.do(ctx, http.MethodPut, idPath("/api/properties/%d/approve", id), nil, nil, &out)
	return out, err
}

func (c *Client) RejectProperty(ctx context.Context, id int64) (models.Property, error) {
	var out models.Property
	err := c.do(ctx, http.MethodPut, idPath("/api/properties/%d/reject", id), nil, nil, &out)
	return out, err
}

func (c *Client) AdminProjects(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	err := c.do(ctx, http.MethodGet, "/api/properties/admin-projects", nil, nil, &out)
	return out, err
}

// Enquiries

func (c *Client) CreateEnquiry(ctx context.Context, req models.EnquiryCreate) (models.Enquiry, error) {
	var out models.Enquiry
	err := c.do(ctx, http.MethodPost, "/api/enquiries", nil, req, &out)
	return out, err
}

func (c *Client) MyEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	var out []models.Enquiry
	err := c.do(ctx, http.MethodGet, "/api/enquiries/my-enquiries", nil, nil, &out)
	return out, err
}

func (c *Client) ReceivedEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	var out []models.Enquiry
	err := c.do(ctx, http.MethodGet, "/api/enquiries/received-enquiries", nil, nil, &out)
	return out, err
}

func (c *Client) SellerEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	var out []models.Enquiry
	err := c.do(ctx, http.MethodGet, "/api/enquiries/seller/enquiries", nil, nil, &out)
	return out, err
}

func (c *Client) MarkEnquiryRead(ctx context.Context, id int64) (models.Enquiry, error) {
	var out models.Enquiry
	err := c.do(ctx, http.MethodPut, idPath("/api/enquiries/%d/read", id), nil, nil, &out)
	return out, err
}

// Admin

func (c *Client) AdminDashboard(ctx context.Context) (models.AdminDashboard, error) {
	var out models.AdminDashboard
	err := c.do(ctx, http.MethodGet, "/api/admin/dashboard", nil, nil, &out)
	return out, err
}

func (c *Client) AdminUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, nil, &out)
	return out, err
}

func (c *Client) AdminProperties(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	err := c.do(ctx, http.MethodGet, "/api/admin/properties", nil, nil, &out)
	return out, err
}

func (c *Client) AdminEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	var out []models.Enquiry
	err := c.do(ctx, http.MethodGet, "/api/admin/enquiries", nil, nil, &out)
	return out, err
}

func (c *Client) ToggleUserActive(ctx context.Context, id int64) (string, error) {
	var out models.Message
	err := c.do(ctx, http.MethodPut, idPath("/api/admin/users/%d/toggle-active", id), nil, nil, &out)
	return out.Message, err
}

// Export downloads an admin dataset as xlsx bytes.
func (c *Client) Export(ctx context.Context, dataset string) ([]byte, error) {
	var raw []byte
	err := c.do(ctx, http.MethodGet, "/api/admin/export/"+url.PathEscape(dataset), nil, nil, &raw)
	return raw, err
}

// Leads and catalogue

func (c *Client) SubmitRequirement(ctx context.Context, req models.RequirementCreate) (models.Requirement, error) {
	var out models.Requirement
	err := c.do(ctx, http.MethodPost, "/api/requirements", nil, req, &out)
	return out, err
}

func (c *Client) Requirements(ctx context.Context, p Page) ([]models.Requirement, error) {
	var out []models.Requirement
	err := c.do(ctx, http.MethodGet, "/api/requirements", p.apply(nil), nil, &out)
	return out, err
}

func (c *Client) Opportunities(ctx context.Context, p Page) ([]models.InvestmentOpportunity, error) {
	var out []models.InvestmentOpportunity
	err := c.do(ctx, http.MethodGet, "/api/investments/opportunities", p.apply(nil), nil, &out)
	return out, err
}

func (c *Client) RegisterInvestor(ctx context.Context, req models.InvestorRegistrationCreate) (models.InvestorRegistration, error) {
	var out models.InvestorRegistration
	err := c.do(ctx, http.MethodPost, "/api/investments/register", nil, req, &out)
	return out, err
}

func (c *Client) InvestmentStatistics(ctx context.Context) (models.InvestmentStatistics, error) {
	var out models.InvestmentStatistics
	err := c.do(ctx, http.MethodGet, "/api/investments/statistics", nil, nil, &out)
	return out, err
}

func (c *Client) Rentals(ctx context.Context, f models.RentalFilter, p Page) ([]models.Rental, error) {
	var out []models.Rental
	err := c.do(ctx, http.MethodGet, "/api/rentals", rentalQuery(f, p), nil, &out)
	return out, err
}

func (c *Client) CreateRental(ctx context.Context, req models.RentalCreate) (models.Rental, error) {
	var out models.Rental
	err := c.do(ctx, http.MethodPost, "/api/rentals", nil, req, &out)
	return out, err
}

// Projects lists projects; an empty status lists all of them.
func (c *Client) Projects(ctx context.Context, status string) ([]models.Project, error) {
	path := "/api/projects"
	if status != "" {
		path += "/" + url.PathEscape(status)
	}
	var out []models.Project
	err := c.do(ctx, http.MethodGet, path, nil, nil, &out)
	return out, err
}

func (c *Client) UpcomingEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	err := c.do(ctx, http.MethodGet, "/api/events/upcoming", nil, nil, &out)
	return out, err
}

func (c *Client) PastEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	err := c.do(ctx, http.MethodGet, "/api/events/past", nil, nil, &out)
	return out, err
}

func (c *Client) RegisterForEvent(ctx context.Context, eventID int64, req models.EventRegistrationCreate) (models.EventRegistration, error) {
	var out models.EventRegistration
	err := c.do(ctx, http.MethodPost, idPath("/api/events/%d/register", eventID), nil, req, &out)
	return out, err
}

func (c *Client) SubmitContact(ctx context.Context, req models.ContactCreate) (models.ContactSubmission, error) {
	var out models.ContactSubmission
	err := c.do(ctx, http.MethodPost, "/api/contact", nil, req, &out)
	return out, err
}

func (c *Client) CreateRecommendation(ctx context.Context, form models.RecommendationForm) (models.Recommendation, error) {
	var out models.Recommendation
	err := c.do(ctx, http.MethodPost, "/api/recommendations", nil, form, &out)
	return out, err
}

func (c *Client) RecommendationProperties(ctx context.Context, id int64) ([]models.Property, error) {
	var out []models.Property
	err := c.do(ctx, http.MethodGet, idPath("/api/recommendations/%d/properties", id), nil, nil, &out)
	return out, err
}

func (c *Client) Statistics(ctx context.Context) (models.SiteStatistics, error) {
	var out models.SiteStatistics
	err := c.do(ctx, http.MethodGet, "/api/statistics", nil, nil, &out)
	return out, err
}
