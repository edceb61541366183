package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"startup-hub-api/internal/client"
	"startup-hub-api/internal/handler"
	"startup-hub-api/internal/metrics"
	"startup-hub-api/internal/middleware"
	"startup-hub-api/internal/repository"
	"startup-hub-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB          *gorm.DB
	Redis       *redis.Client
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	AdminSecret string
	BasePath    string
	ListingTTL  time.Duration
	Geocoder    client.GeocodeClient
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS())
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "startup-hub-api"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": "startup-hub-api"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": "startup-hub-api"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": "startup-hub-api"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize repositories
	contestRepo := repository.NewContestRepository(cfg.DB)
	openCallRepo := repository.NewOpenCallRepository(cfg.DB)
	subsidyRepo := repository.NewSubsidyRepository(cfg.DB)
	eventRepo := repository.NewEventRepository(cfg.DB)
	facilityRepo := repository.NewFacilityRepository(cfg.DB)
	knowledgeRepo := repository.NewKnowledgeRepository(cfg.DB)
	assetProvisionRepo := repository.NewAssetProvisionRepository(cfg.DB)
	technologyRepo := repository.NewTechnologyRepository(cfg.DB)
	boardRepo := repository.NewStartupBoardRepository(cfg.DB)
	boardLikeRepo := repository.NewBoardLikeRepository(cfg.DB)
	locationRepo := repository.NewLocationRepository(cfg.DB)
	workspaceRepo := repository.NewWorkspaceRepository(cfg.DB)
	workspaceLikeRepo := repository.NewWorkspaceLikeRepository(cfg.DB)

	// Initialize services
	cache := service.NewListingCache(cfg.Redis, cfg.ListingTTL, cfg.Metrics, cfg.Logger)
	contestService := service.NewContestService(contestRepo, cache, cfg.Metrics)
	openCallService := service.NewOpenCallService(openCallRepo, cache, cfg.Metrics)
	subsidyService := service.NewSubsidyService(subsidyRepo, cache, cfg.Metrics)
	eventService := service.NewEventService(eventRepo, cache, cfg.Metrics)
	facilityService := service.NewFacilityService(facilityRepo, cache, cfg.Metrics)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo, cache, cfg.Metrics)
	assetProvisionService := service.NewAssetProvisionService(assetProvisionRepo, cache, cfg.Metrics)
	technologyService := service.NewTechnologyService(technologyRepo, cache, cfg.Metrics)
	boardService := service.NewStartupBoardService(boardRepo, boardLikeRepo, cache, cfg.Metrics)
	locationService := service.NewLocationService(locationRepo, cache, cfg.Metrics)
	workspaceService := service.NewWorkspaceService(workspaceRepo, workspaceLikeRepo, cache, cfg.Metrics)

	// Initialize handlers
	contestHandler := handler.NewContestHandler(contestService)
	openCallHandler := handler.NewOpenCallHandler(openCallService)
	subsidyHandler := handler.NewSubsidyHandler(subsidyService)
	eventHandler := handler.NewEventHandler(eventService)
	facilityHandler := handler.NewFacilityHandler(facilityService)
	knowledgeHandler := handler.NewKnowledgeHandler(knowledgeService)
	assetProvisionHandler := handler.NewAssetProvisionHandler(assetProvisionService)
	technologyHandler := handler.NewTechnologyHandler(technologyService)
	boardHandler := handler.NewStartupBoardHandler(boardService)
	locationHandler := handler.NewLocationHandler(locationService)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService)
	geocodeHandler := handler.NewGeocodeHandler(cfg.Geocoder)

	api := r.Group(cfg.BasePath)

	adminOnly := middleware.AdminGuard(cfg.AdminSecret)
	adminAware := middleware.OptionalAdmin(cfg.AdminSecret)

	// ============================================================
	// Contest routes
	// ============================================================
	contests := api.Group("/contests")
	{
		contests.GET("", adminAware, contestHandler.GetContests)
		contests.GET("/:id", contestHandler.GetContest)
		contests.POST("", adminOnly, contestHandler.CreateContest)
		contests.PUT("/:id", adminOnly, contestHandler.ReplaceContest)
		contests.PATCH("/:id", adminOnly, contestHandler.PatchContest)
		contests.DELETE("/:id", adminOnly, contestHandler.DeleteContest)
	}

	// ============================================================
	// Open-call routes
	// ============================================================
	openCalls := api.Group("/open-calls")
	{
		openCalls.GET("", adminAware, openCallHandler.GetOpenCalls)
		openCalls.GET("/:id", openCallHandler.GetOpenCall)
		openCalls.POST("", adminOnly, openCallHandler.CreateOpenCall)
		openCalls.PUT("/:id", adminOnly, openCallHandler.ReplaceOpenCall)
		openCalls.PATCH("/:id", adminOnly, openCallHandler.PatchOpenCall)
		openCalls.DELETE("/:id", adminOnly, openCallHandler.DeleteOpenCall)
	}

	// ============================================================
	// Subsidy routes
	// ============================================================
	subsidies := api.Group("/subsidies")
	{
		subsidies.GET("", adminAware, subsidyHandler.GetSubsidies)
		subsidies.GET("/:id", subsidyHandler.GetSubsidy)
		subsidies.POST("", adminOnly, subsidyHandler.CreateSubsidy)
		subsidies.PUT("/:id", adminOnly, subsidyHandler.ReplaceSubsidy)
		subsidies.PATCH("/:id", adminOnly, subsidyHandler.PatchSubsidy)
		subsidies.DELETE("/:id", adminOnly, subsidyHandler.DeleteSubsidy)
	}

	// ============================================================
	// Event routes
	// ============================================================
	events := api.Group("/events")
	{
		events.GET("", adminAware, eventHandler.GetEvents)
		events.GET("/:id", eventHandler.GetEvent)
		events.POST("", adminOnly, eventHandler.CreateEvent)
		events.PUT("/:id", adminOnly, eventHandler.ReplaceEvent)
		events.PATCH("/:id", adminOnly, eventHandler.PatchEvent)
		events.DELETE("/:id", adminOnly, eventHandler.DeleteEvent)
	}

	// ============================================================
	// Facility routes
	// ============================================================
	facilities := api.Group("/facilities")
	{
		facilities.GET("", adminAware, facilityHandler.GetFacilities)
		facilities.GET("/:id", facilityHandler.GetFacility)
		facilities.POST("", adminOnly, facilityHandler.CreateFacility)
		facilities.PUT("/:id", adminOnly, facilityHandler.ReplaceFacility)
		facilities.PATCH("/:id", adminOnly, facilityHandler.PatchFacility)
		facilities.DELETE("/:id", adminOnly, facilityHandler.DeleteFacility)
	}

	// ============================================================
	// Knowledge routes
	// ============================================================
	knowledge := api.Group("/knowledge")
	{
		knowledge.GET("", adminAware, knowledgeHandler.GetKnowledge)
		knowledge.GET("/:id", knowledgeHandler.GetKnowledgeByID)
		knowledge.POST("", adminOnly, knowledgeHandler.CreateKnowledge)
		knowledge.PUT("/:id", adminOnly, knowledgeHandler.ReplaceKnowledge)
		knowledge.PATCH("/:id", adminOnly, knowledgeHandler.PatchKnowledge)
		knowledge.DELETE("/:id", adminOnly, knowledgeHandler.DeleteKnowledge)
	}

	// ============================================================
	// Asset provision routes
	// ============================================================
	assetProvisions := api.Group("/asset-provisions")
	{
		assetProvisions.GET("", adminAware, assetProvisionHandler.GetAssetProvisions)
		assetProvisions.GET("/:id", assetProvisionHandler.GetAssetProvision)
		assetProvisions.POST("", adminOnly, assetProvisionHandler.CreateAssetProvision)
		assetProvisions.PUT("/:id", adminOnly, assetProvisionHandler.ReplaceAssetProvision)
		assetProvisions.PATCH("/:id", adminOnly, assetProvisionHandler.PatchAssetProvision)
		assetProvisions.DELETE("/:id", adminOnly, assetProvisionHandler.DeleteAssetProvision)
	}

	// ============================================================
	// Technology routes
	// ============================================================
	technologies := api.Group("/technologies")
	{
		technologies.GET("", adminAware, technologyHandler.GetTechnologies)
		technologies.GET("/:id", technologyHandler.GetTechnology)
		technologies.POST("", adminOnly, technologyHandler.CreateTechnology)
		technologies.PUT("/:id", adminOnly, technologyHandler.ReplaceTechnology)
		technologies.PATCH("/:id", adminOnly, technologyHandler.PatchTechnology)
		technologies.DELETE("/:id", adminOnly, technologyHandler.DeleteTechnology)
	}

	// ============================================================
	// Startup board routes (public like toggle included)
	// ============================================================
	boards := api.Group("/startup-boards")
	{
		boards.GET("", adminAware, boardHandler.GetStartupBoards)
		boards.GET("/:id", boardHandler.GetStartupBoard)
		boards.POST("", adminOnly, boardHandler.CreateStartupBoard)
		boards.PUT("/:id", adminOnly, boardHandler.ReplaceStartupBoard)
		boards.PATCH("/:id", adminOnly, boardHandler.PatchStartupBoard)
		boards.DELETE("/:id", adminOnly, boardHandler.DeleteStartupBoard)
		boards.GET("/:id/like", boardHandler.GetLikeStatus)
		boards.POST("/:id/like", boardHandler.ToggleLike)
	}

	// ============================================================
	// Location routes
	// ============================================================
	locations := api.Group("/locations")
	{
		locations.GET("", locationHandler.GetLocations)
		locations.GET("/:id", locationHandler.GetLocation)
		locations.POST("", adminOnly, locationHandler.CreateLocation)
		locations.PUT("/:id", adminOnly, locationHandler.ReplaceLocation)
		locations.PATCH("/:id", adminOnly, locationHandler.PatchLocation)
		locations.DELETE("/:id", adminOnly, locationHandler.DeleteLocation)
	}

	// ============================================================
	// Workspace routes (ranking before :id so gin matches it first)
	// ============================================================
	workspaces := api.Group("/workspaces")
	{
		workspaces.GET("", adminAware, workspaceHandler.GetWorkspaces)
		workspaces.GET("/ranking", workspaceHandler.GetRanking)
		workspaces.GET("/:id", workspaceHandler.GetWorkspace)
		workspaces.POST("", adminOnly, workspaceHandler.CreateWorkspace)
		workspaces.PUT("/:id", adminOnly, workspaceHandler.ReplaceWorkspace)
		workspaces.PATCH("/:id", adminOnly, workspaceHandler.PatchWorkspace)
		workspaces.DELETE("/:id", adminOnly, workspaceHandler.DeleteWorkspace)
		workspaces.GET("/:id/like", workspaceHandler.GetLikeStatus)
		workspaces.POST("/:id/like", workspaceHandler.ToggleLike)
	}

	// ============================================================
	// Geocode proxy
	// ============================================================
	api.GET("/geocode", geocodeHandler.Geocode)

	return r
}
