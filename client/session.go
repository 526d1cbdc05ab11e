package client

import (
	"context"
	"sync"

	"deeprealties/backend/models"
)

// Notifier surfaces outcomes to the user, like a toast.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// Session holds the signed-in user and keeps the client token and the
// persisted preferences in step.
type Session struct {
	api    *Client
	prefs  *Preferences
	notify Notifier

	mu   sync.RWMutex
	user *models.User
}

func NewSession(api *Client, prefs *Preferences, notify Notifier) *Session {
	if notify == nil {
		notify = nopNotifier{}
	}
	if prefs == nil {
		prefs = &Preferences{}
	}
	return &Session{api: api, prefs: prefs, notify: notify}
}

// Restore exchanges a persisted token for the profile. A token the server
// rejects is discarded without telling the user.
func (s *Session) Restore(ctx context.Context) {
	token := s.prefs.Token()
	if token == "" {
		return
	}
	s.api.SetToken(token)
	u, err := s.api.Me(ctx)
	if err != nil {
		s.api.SetToken("")
		_ = s.prefs.ClearToken()
		return
	}
	s.setUser(&u)
}

func (s *Session) Login(ctx context.Context, email, password string) bool {
	tok, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.notify.Error(Message(err, "Login failed"))
		return false
	}
	s.api.SetToken(tok.AccessToken)
	u, err := s.api.Me(ctx)
	if err != nil {
		s.api.SetToken("")
		s.notify.Error(Message(err, "Login failed"))
		return false
	}
	if err := s.prefs.SetToken(tok.AccessToken); err != nil {
		s.notify.Error("Could not save session")
	}
	s.setUser(&u)
	s.notify.Success("Login successful!")
	return true
}

// Register creates the account; the caller logs in separately.
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) bool {
	if _, err := s.api.Register(ctx, req); err != nil {
		s.notify.Error(Message(err, "Registration failed"))
		return false
	}
	s.notify.Success("Registration successful! Please login.")
	return true
}

func (s *Session) Logout() {
	s.api.SetToken("")
	_ = s.prefs.ClearToken()
	s.setUser(nil)
	s.notify.Success("Logged out successfully")
}

func (s *Session) setUser(u *models.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

func (s *Session) IsAuthenticated() bool { return s.User() != nil }

func (s *Session) IsAdmin() bool { return s.role() == models.RoleAdmin }

// IsSeller is true for sellers and admins.
func (s *Session) IsSeller() bool { return models.IsSellerRole(s.role()) }
