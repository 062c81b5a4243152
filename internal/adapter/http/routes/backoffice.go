package routes

import (
	"fundacoes_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing          = "/ping"
	PathDistance      = "/distance"
	PathTravelPricing = "/travel-pricing"
	PathSettings      = "/settings"
	PathClients       = "/clients"
	PathTeams         = "/teams"
	PathBudgets       = "/budgets"
	PathJobs          = "/jobs"
	PathCash          = "/cash-transactions"
	PathField         = "/field"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addDistanceRoutes(rg *gin.RouterGroup, h *handlers.DistanceHandler) {
	distance := rg.Group(PathDistance)
	{
		distance.POST("/calculate", h.Calculate)
		distance.POST("/geocode", h.Geocode)
	}
}

func addTravelPricingRoutes(rg *gin.RouterGroup, h *handlers.TravelPricingHandler) {
	rules := rg.Group(PathTravelPricing)
	{
		rules.GET("", h.List)
		rules.POST("", h.Create)
		rules.PUT("/:id", h.Update)
		rules.DELETE("/:id", h.Delete)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	rg.GET(PathSettings, h.Get)
	rg.PUT(PathSettings, h.Update)
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", h.Create)
		clients.GET("", h.List)
		clients.GET("/:id", h.Get)
	}
}

func addTeamRoutes(rg *gin.RouterGroup, h *handlers.TeamHandler) {
	teams := rg.Group(PathTeams)
	{
		teams.POST("", h.Create)
		teams.GET("", h.List)
	}
}

func addBudgetRoutes(rg *gin.RouterGroup, h *handlers.BudgetHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", h.Create)
		budgets.GET("", h.List)
		budgets.GET("/:id", h.Get)
		budgets.PATCH("/:id/approve", h.Approve)
		budgets.PATCH("/:id/reject", h.Reject)
		budgets.DELETE("/:id", h.Delete)
		budgets.POST("/:id/travel", h.RecalculateTravel)
		budgets.POST("/:id/convert", h.Convert)
	}
}

func addJobRoutes(rg *gin.RouterGroup, jobs *handlers.JobHandler, payments *handlers.PaymentHandler) {
	group := rg.Group(PathJobs)
	{
		group.GET("", jobs.List)
		group.GET("/:id", jobs.Get)
		group.POST("/:id/payments", payments.ChargeJob)
		group.GET("/:id/payments", payments.ListByJob)
	}
	rg.GET(PathCash, payments.List)
}

// addFieldRoutes registers the crew portal. Only login is public.
func addFieldRoutes(rg *gin.RouterGroup, h *handlers.FieldHandler, auth gin.HandlerFunc) {
	field := rg.Group(PathField)
	field.POST("/login", h.Login)

	authed := field.Group("", auth)
	{
		authed.GET("/jobs", h.ListJobs)
		authed.POST("/jobs/:id/start", h.StartJob)
		authed.POST("/jobs/:id/complete", h.CompleteJob)
		authed.POST("/jobs/:id/cancel", h.CancelJob)
	}
}
