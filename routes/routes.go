package routes

import (
	"deeprealties/backend/config"
	"deeprealties/backend/controllers"
	"deeprealties/backend/middlewares"
	"deeprealties/backend/models"
	"github.com/gin-gonic/gin"
)

// adminOnly re-checks the stored role; detail is the 403 message for the route.
func adminOnly(detail string) gin.HandlerFunc {
	return middlewares.RequireRole(controllers.UserRole, detail, models.RoleAdmin)
}

func Register(r *gin.Engine, cfg config.Config) {
	r.GET("/", controllers.Root())
	r.GET("/health", controllers.Health())

	authed := middlewares.Auth(cfg.JWTSecret)
	optional := middlewares.OptionalAuth(cfg.JWTSecret)

	api := r.Group("/api")
	api.GET("/statistics", controllers.Statistics())
	{
		auth := api.Group("/auth")
		auth.POST("/register", controllers.Register())
		auth.POST("/login", controllers.Login(cfg))
		auth.GET("/me", authed, controllers.Me())

		api.GET("/users/me", authed, controllers.Me())
	}
	{
		props := api.Group("/properties")
		props.GET("", controllers.ListProperties())
		props.POST("", authed, controllers.CreateProperty())
		props.GET("/my-properties", authed, controllers.MyProperties())
		props.GET("/seller/my-properties", authed, controllers.MyProperties())
		props.GET("/admin-projects", controllers.AdminProjects())
		props.GET("/pending", authed, adminOnly("Only admins can view pending properties"), controllers.PendingProperties())
		props.GET("/:id", controllers.GetProperty())
		props.PUT("/:id", authed, controllers.UpdateProperty())
		props.DELETE("/:id", authed, controllers.DeleteProperty())
		props.PUT("/:id/approve", authed, adminOnly("Only admins can approve properties"), controllers.SetPropertyStatus(models.StatusApproved))
		props.PUT("/:id/reject", authed, adminOnly("Only admins can reject properties"), controllers.SetPropertyStatus(models.StatusRejected))
	}
	{
		enq := api.Group("/enquiries", authed)
		enq.POST("", controllers.CreateEnquiry())
		enq.GET("/my-enquiries", controllers.MyEnquiries())
		enq.GET("/received-enquiries", controllers.ReceivedEnquiries())
		enq.GET("/seller/enquiries", controllers.ReceivedEnquiries())
		enq.PUT("/:id/read", controllers.MarkEnquiryRead())
	}
	{
		admin := api.Group("/admin", authed, adminOnly("Admin access required"))
		admin.GET("/dashboard", controllers.AdminDashboard())
		admin.GET("/users", controllers.AdminUsers())
		admin.PUT("/users/:id/toggle-active", controllers.ToggleUserActive())
		admin.GET("/properties", controllers.AdminProperties())
		admin.GET("/enquiries", controllers.AdminEnquiries())
		admin.GET("/export/:dataset", controllers.ExportDataset())
	}
	{
		reqs := api.Group("/requirements")
		reqs.POST("", optional, controllers.SubmitRequirement())
		reqs.GET("", authed, adminOnly("Only admins can view property requirements"), controllers.ListRequirements())
		reqs.GET("/:id", authed, adminOnly("Only admins can view property requirements"), controllers.GetRequirement())
		reqs.PUT("/:id/fulfilled", authed, adminOnly("Only admins can update requirements"), controllers.FulfillRequirement())
		reqs.DELETE("/:id", authed, adminOnly("Only admins can delete requirements"), controllers.DeleteRequirement())
	}
	{
		inv := api.Group("/investments")
		inv.GET("/opportunities", controllers.ListOpportunities())
		inv.POST("/opportunities", authed, adminOnly("Only admins can create investment opportunities"), controllers.CreateOpportunity())
		inv.GET("/opportunities/:id", controllers.GetOpportunity())
		inv.DELETE("/opportunities/:id", authed, adminOnly("Only admins can delete investment opportunities"), controllers.DeleteOpportunity())
		inv.POST("/register", optional, controllers.RegisterInvestor())
		inv.GET("/registrations", authed, adminOnly("Only admins can view investor registrations"), controllers.ListRegistrations())
		inv.PUT("/registrations/:id/contacted", authed, adminOnly("Only admins can update investor registrations"), controllers.MarkInvestorContacted())
		inv.GET("/statistics", controllers.InvestmentStats())
	}
	{
		rent := api.Group("/rentals")
		rent.POST("", optional, controllers.CreateRental())
		rent.GET("", controllers.ListRentals())
		rent.GET("/my-listings", authed, controllers.MyRentals())
		rent.GET("/pending", authed, adminOnly("Only admins can view pending rentals"), controllers.PendingRentals())
		rent.GET("/:id", controllers.GetRental())
		rent.PUT("/:id/approve", authed, adminOnly("Only admins can approve rentals"), controllers.SetRentalStatus(models.StatusApproved))
		rent.PUT("/:id/reject", authed, adminOnly("Only admins can reject rentals"), controllers.SetRentalStatus(models.StatusRejected))
		rent.DELETE("/:id", authed, controllers.DeleteRental())
	}
	{
		proj := api.Group("/projects")
		proj.GET("", controllers.ListProjects())
		proj.POST("", authed, adminOnly("Only admins can create projects"), controllers.CreateProject())
		for _, status := range models.ProjectStatuses {
			proj.GET("/"+status, controllers.ProjectsByStatus(status))
		}
		proj.GET("/:id", controllers.GetProject())
		proj.PUT("/:id", authed, adminOnly("Only admins can update projects"), controllers.UpdateProject())
		proj.DELETE("/:id", authed, adminOnly("Only admins can delete projects"), controllers.DeleteProject())
	}
	{
		ev := api.Group("/events")
		ev.GET("", controllers.ListEvents())
		ev.POST("", authed, adminOnly("Only admins can create events"), controllers.CreateEvent())
		ev.GET("/upcoming", controllers.UpcomingEvents())
		ev.GET("/past", controllers.PastEvents())
		ev.GET("/:id", controllers.GetEvent())
		ev.POST("/:id/register", controllers.RegisterForEvent())
		ev.PUT("/:id", authed, adminOnly("Only admins can update events"), controllers.UpdateEvent())
		ev.DELETE("/:id", authed, adminOnly("Only admins can delete events"), controllers.DeleteEvent())
	}
	{
		contact := api.Group("/contact")
		contact.POST("", controllers.SubmitContact())
		contact.GET("", authed, adminOnly("Only admins can view contact submissions"), controllers.ListContacts())
		contact.GET("/:id", authed, adminOnly("Only admins can view contact submissions"), controllers.GetContact())
		contact.PUT("/:id/read", authed, adminOnly("Only admins can update contact submissions"), controllers.FlagContact("is_read"))
		contact.PUT("/:id/responded", authed, adminOnly("Only admins can update contact submissions"), controllers.FlagContact("is_responded"))
		contact.DELETE("/:id", authed, adminOnly("Only admins can delete contact submissions"), controllers.DeleteContact())
	}
	{
		rec := api.Group("/recommendations", authed)
		rec.POST("", controllers.CreateRecommendation(cfg))
		rec.GET("", controllers.MyRecommendations())
		rec.GET("/:id/properties", controllers.RecommendationProperties())
	}
}
