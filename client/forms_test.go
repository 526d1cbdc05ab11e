package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deeprealties/backend/models"
)

func contactAPI(t *testing.T, got *models.ContactCreate) *fakeAPI {
	return newFakeAPI(t, map[string]http.HandlerFunc{
		"POST /api/contact": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
			writeJSON(w, http.StatusCreated, models.ContactSubmission{
				ID: 9, FullName: got.FullName, Email: got.Email,
				Subject: got.Subject, Message: got.Message, CreatedAt: time.Now(),
			})
		},
	})
}

func TestContactFormPostsOnce(t *testing.T) {
	var got models.ContactCreate
	api := contactAPI(t, &got)
	n := &toasts{}
	form := ContactForm(New(api.URL), n)

	sub, ok := form.Submit(context.Background(), models.ContactCreate{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Subject:  "Site visit",
		Message:  "Saturday morning?",
	})
	require.True(t, ok)
	assert.Equal(t, int64(9), sub.ID)
	assert.Equal(t, 1, api.count("POST /api/contact"))
	assert.Equal(t, "Site visit", got.Subject)
	assert.Len(t, n.successes, 1)
	assert.Empty(t, n.errors)
}

func TestContactFormMissingFieldSendsNothing(t *testing.T) {
	var got models.ContactCreate
	api := contactAPI(t, &got)
	n := &toasts{}
	form := ContactForm(New(api.URL), n)

	_, ok := form.Submit(context.Background(), models.ContactCreate{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Message:  "no subject",
	})
	assert.False(t, ok)
	assert.Equal(t, 0, api.count("POST /api/contact"))
	assert.Equal(t, []string{"subject is required"}, n.errors)
}

func TestFormSurfacesServerDetail(t *testing.T) {
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"POST /api/events/{id}/register": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "4", r.PathValue("id"))
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Event is full"})
		},
	})
	n := &toasts{}
	form := EventRegistrationForm(New(api.URL), n, 4)

	_, ok := form.Submit(context.Background(), models.EventRegistrationCreate{
		FullName: "Ravi", Email: "ravi@example.com", Phone: "9000000000",
	})
	assert.False(t, ok)
	assert.Equal(t, 1, api.count("POST /api/events/4/register"))
	assert.Equal(t, []string{"Event is full"}, n.errors)
}

func TestValidate(t *testing.T) {
	assert.Equal(t, "email must be a valid email", Validate(models.EventRegistrationCreate{
		FullName: "Ravi", Email: "not-an-email", Phone: "1",
	}))
	assert.Equal(t, "max_budget must not be less than MinBudget", Validate(models.RequirementCreate{
		PropertyType: "flat", MinBudget: 50, MaxBudget: 10,
		PreferredLocation: "Gachibowli", City: "Hyderabad",
		FullName: "A", Email: "a@example.com", Phone: "1",
	}))
	bad := "nope"
	assert.Equal(t, "email must be a valid email", Validate(models.PropertyCreate{
		Title: "Villa", City: "Pune", Price: 1, PropertyType: "villa", Email: &bad,
	}))
	assert.Empty(t, Validate(models.PropertyCreate{
		Title: "Villa", City: "Pune", Price: 1, PropertyType: "villa",
	}))
}
