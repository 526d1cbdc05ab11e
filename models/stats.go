package models

type DashboardStats struct {
	TotalUsers      int64 `json:"total_users"`
	Buyers          int64 `json:"buyers"`
	Sellers         int64 `json:"sellers"`
	TotalProperties int64 `json:"total_properties"`
	TotalEnquiries  int64 `json:"total_enquiries"`
	UnreadEnquiries int64 `json:"unread_enquiries"`
}

type CityCount struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

// AdminDashboard is the admin landing summary.
type AdminDashboard struct {
	Stats            DashboardStats `json:"stats"`
	TopCities        []CityCount    `json:"top_cities"`
	RecentProperties []Property     `json:"recent_properties"`
	RecentEnquiries  []Enquiry      `json:"recent_enquiries"`
}

type SiteStatistics struct {
	TotalProperties    int64 `json:"total_properties"`
	ApprovedProperties int64 `json:"approved_properties"`
	TotalUsers         int64 `json:"total_users"`
	TotalInvestors     int64 `json:"total_investors"`
	TotalProjects      int64 `json:"total_projects"`
	TotalRentals       int64 `json:"total_rentals"`
	CitiesCovered      int64 `json:"cities_covered"`
	YearsExperience    int   `json:"years_experience"`
	PropertiesSold     int   `json:"properties_sold"`
	HappyCustomers     int64 `json:"happy_customers"`
}

type InvestmentStatistics struct {
	TotalOpportunities int64   `json:"total_opportunities"`
	TotalInvestors     int64   `json:"total_investors"`
	AverageROI         float64 `json:"average_roi"`
}

type Message struct {
	Message string `json:"message"`
}
