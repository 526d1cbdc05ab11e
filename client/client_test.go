package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"deeprealties/backend/models"
)

// fakeAPI serves a small slice of the API. Tokens are "token-<role>".
type fakeAPI struct {
	*httptest.Server

	mu    sync.Mutex
	calls map[string]int
}

func newFakeAPI(t *testing.T, extra map[string]http.HandlerFunc) *fakeAPI {
	t.Helper()
	f := &fakeAPI{calls: map[string]int{}}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("password") != "secret1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect email or password"})
			return
		}
		role, _, _ := strings.Cut(r.PostForm.Get("username"), "@")
		writeJSON(w, http.StatusOK, models.Token{AccessToken: "token-" + role, TokenType: "bearer"})
	})
	mux.HandleFunc("GET /api/users/me", func(w http.ResponseWriter, r *http.Request) {
		role, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer token-")
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
			return
		}
		writeJSON(w, http.StatusOK, models.User{ID: 1, Email: role + "@example.com", FullName: "Test " + role, Role: role, IsActive: true})
	})
	for pattern, h := range extra {
		mux.HandleFunc(pattern, h)
	}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls[r.Method+" "+r.URL.Path]++
		f.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type toasts struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (t *toasts) Success(msg string) {
	t.mu.Lock()
	t.successes = append(t.successes, msg)
	t.mu.Unlock()
}

func (t *toasts) Error(msg string) {
	t.mu.Lock()
	t.errors = append(t.errors, msg)
	t.mu.Unlock()
}
