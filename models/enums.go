package models

const (
	RoleBuyer    = "buyer"
	RoleSeller   = "seller"
	RoleInvestor = "investor"
	RoleAdmin    = "admin"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	ProjectCompleted = "completed"
	ProjectOngoing   = "ongoing"
	ProjectUpcoming  = "upcoming"
)

const (
	ListingSale = "sale"
	ListingRent = "rent"
)

var PropertyTypes = []string{"land", "plot", "flat", "house", "villa", "apartment", "commercial", "farmland"}

var RentTypes = []string{"furnished", "unfurnished", "semi_furnished"}

var TenantTypes = []string{"family", "bachelor", "any"}

var ProjectStatuses = []string{ProjectCompleted, ProjectOngoing, ProjectUpcoming}

func OneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// IsSellerRole reports whether the role may manage listings from the seller dashboard.
func IsSellerRole(role string) bool {
	return role == RoleSeller || role == RoleAdmin
}
