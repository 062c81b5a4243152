package routes

import (
	"time"

	_ "fundacoes_backoffice/docs"
	"fundacoes_backoffice/internal/adapter/http/handlers"
	"fundacoes_backoffice/internal/adapter/http/middleware"
	"fundacoes_backoffice/internal/infrastructure/observability"
	"fundacoes_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// UseCases are the application services exposed over HTTP.
type UseCases struct {
	Distance      usecase.IDistanceUseCase
	TravelPricing usecase.ITravelPricingUseCase
	Settings      usecase.ISettingsUseCase
	Clients       usecase.IClientUseCase
	Teams         usecase.ITeamUseCase
	Budgets       usecase.IBudgetUseCase
	Jobs          usecase.IJobUseCase
	CashRegister  usecase.ICashRegisterUseCase
	FieldAuth     usecase.IFieldAuthUseCase
}

// NewRouter builds the gin engine with every /v1 route plus /metrics and the
// swagger UI. location is the company timezone used for planned dates.
func NewRouter(uc UseCases, location *time.Location, metrics *observability.Metrics, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, metrics, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDistanceRoutes(v1, handlers.NewDistanceHandler(uc.Distance, metrics, logger))
	addTravelPricingRoutes(v1, handlers.NewTravelPricingHandler(uc.TravelPricing))
	addSettingsRoutes(v1, handlers.NewSettingsHandler(uc.Settings))
	addClientRoutes(v1, handlers.NewClientHandler(uc.Clients))
	addTeamRoutes(v1, handlers.NewTeamHandler(uc.Teams))
	addBudgetRoutes(v1, handlers.NewBudgetHandler(uc.Budgets, location, metrics, logger))
	addJobRoutes(v1, handlers.NewJobHandler(uc.Jobs), handlers.NewPaymentHandler(uc.CashRegister, logger))
	addFieldRoutes(v1, handlers.NewFieldHandler(uc.FieldAuth, uc.Jobs), middleware.FieldAuth(uc.FieldAuth, logger))

	return router
}

func setMiddlewares(router *gin.Engine, metrics *observability.Metrics, logger *zap.Logger) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Tracing())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics(metrics))
}
