package client

import (
	"slices"

	"deeprealties/backend/models"
)

const (
	PathLogin           = "/login"
	PathHome            = "/"
	PathDashboard       = "/dashboard"
	PathSellerDashboard = "/seller/dashboard"
	PathAdminDashboard  = "/admin/dashboard"
)

// Decision is the outcome of a guard check. Redirect is empty when Allowed.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Guard maps protected paths to the roles allowed on them. A nil role list
// admits any signed-in user.
type Guard struct {
	routes map[string][]string
}

func NewGuard() *Guard {
	return &Guard{routes: map[string][]string{
		PathDashboard:       nil,
		PathSellerDashboard: {models.RoleSeller, models.RoleAdmin},
		PathAdminDashboard:  {models.RoleAdmin},
	}}
}

// Protect adds or replaces a protected path.
func (g *Guard) Protect(path string, roles ...string) {
	g.routes[path] = roles
}

func (g *Guard) Check(path string, s *Session) Decision {
	roles, protected := g.routes[path]
	if !protected {
		return Decision{Allowed: true}
	}
	u := s.User()
	if u == nil {
		return Decision{Redirect: PathLogin}
	}
	if len(roles) > 0 && !slices.Contains(roles, u.Role) {
		return Decision{Redirect: PathHome}
	}
	return Decision{Allowed: true}
}
