package client

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"string detail", newAPIError(400, []byte(`{"detail":"Event is full"}`)), "Event is full"},
		{"field list", newAPIError(422, []byte(`{"detail":[{"msg":"field required"},{"msg":"bad email"}]}`)), "field required; bad email"},
		{"no body", newAPIError(500, nil), "Something went wrong"},
		{"html body", newAPIError(502, []byte("<html>bad gateway</html>")), "Something went wrong"},
		{"transport", errors.New("connection refused"), "Something went wrong"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Message(tc.err, "Something went wrong"))
		})
	}
}

func TestIsStatus(t *testing.T) {
	err := newAPIError(http.StatusForbidden, []byte(`{"detail":"Not authorized"}`))
	assert.True(t, IsStatus(err, http.StatusForbidden))
	assert.False(t, IsStatus(err, http.StatusNotFound))
	assert.Equal(t, "api: 403 Not authorized", err.Error())
}
