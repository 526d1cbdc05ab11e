package client

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"deeprealties/backend/models"
)

// validate reads the same `binding` tags the API enforces, so a form the
// client accepts is one the server will not reject for shape.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate returns a readable message for the first failing field, or "".
func Validate(req any) string {
	err := validate.Struct(req)
	if err == nil {
		return ""
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return err.Error()
	}
	fe := fields[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "gt", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be less than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// Form is a lead-capture form: validate locally, POST once, toast the result.
type Form[Req, Resp any] struct {
	send    func(context.Context, Req) (Resp, error)
	notify  Notifier
	success string
	failure string
}

func newForm[Req, Resp any](n Notifier, send func(context.Context, Req) (Resp, error), success, failure string) *Form[Req, Resp] {
	if n == nil {
		n = nopNotifier{}
	}
	return &Form[Req, Resp]{send: send, notify: n, success: success, failure: failure}
}

// Submit reports false without sending anything when req is invalid.
func (f *Form[Req, Resp]) Submit(ctx context.Context, req Req) (Resp, bool) {
	var zero Resp
	if msg := Validate(req); msg != "" {
		f.notify.Error(msg)
		return zero, false
	}
	resp, err := f.send(ctx, req)
	if err != nil {
		f.notify.Error(Message(err, f.failure))
		return zero, false
	}
	f.notify.Success(f.success)
	return resp, true
}

func ContactForm(c *Client, n Notifier) *Form[models.ContactCreate, models.ContactSubmission] {
	return newForm(n, c.SubmitContact,
		"Message sent successfully! We'll get back to you soon.", "Failed to send message")
}

func RequirementForm(c *Client, n Notifier) *Form[models.RequirementCreate, models.Requirement] {
	return newForm(n, c.SubmitRequirement,
		"Requirement submitted! Our team will contact you shortly.", "Failed to submit requirement")
}

func InvestorForm(c *Client, n Notifier) *Form[models.InvestorRegistrationCreate, models.InvestorRegistration] {
	return newForm(n, c.RegisterInvestor,
		"Registration successful! Our investment team will contact you.", "Registration failed")
}

func EventRegistrationForm(c *Client, n Notifier, eventID int64) *Form[models.EventRegistrationCreate, models.EventRegistration] {
	send := func(ctx context.Context, req models.EventRegistrationCreate) (models.EventRegistration, error) {
		return c.RegisterForEvent(ctx, eventID, req)
	}
	return newForm(n, send, "Successfully registered for the event!", "Registration failed")
}

func RentalForm(c *Client, n Notifier) *Form[models.RentalCreate, models.Rental] {
	return newForm(n, c.CreateRental,
		"Rental listing submitted for approval!", "Failed to submit rental listing")
}

func PropertyForm(c *Client, n Notifier) *Form[models.PropertyCreate, models.Property] {
	return newForm(n, c.CreateProperty,
		"Property submitted for approval!", "Failed to submit property")
}
