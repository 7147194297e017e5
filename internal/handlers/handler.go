package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"citysim/internal/logger"
	"citysim/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	limiter  *rate.Limiter
	metrics  http.Handler
}

// Option customizes a Handler.
type Option func(*Handler)

// WithRateLimit throttles the mutating game endpoints to perSecond requests
// with the given burst. A zero rate disables throttling.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(h *Handler) {
		if perSecond <= 0 {
			h.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		h.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithMetrics exposes m on GET /metrics.
func WithMetrics(m http.Handler) Option {
	return func(h *Handler) { h.metrics = m }
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{services: services, log: log.Component("http")}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics))
	}

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Live stats stream on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.mayorAuth)
	{
		api.GET("/catalog", h.getCatalog)
		h.registerCityRoutes(api)
		h.registerLogRoutes(api)
		h.registerSaveRoutes(api)
		h.registerHighscoreRoutes(api)
	}
}

func (h *Handler) registerCityRoutes(api *gin.RouterGroup) {
	city := api.Group("/city")
	{
		city.GET("/state", h.getState)
		city.GET("/stats", h.getStats)
		// Body example: {"type":"HOSPITAL"}
		city.POST("/buildings", h.rateLimit, h.build)
		// Body example: {"rate":0.15}
		city.PUT("/tax", h.rateLimit, h.setTaxRate)
		city.PUT("/vat", h.rateLimit, h.setVatRate)
		city.POST("/tick", h.rateLimit, h.tick)
		city.POST("/new", h.rateLimit, h.newCity)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	api.GET("/logs", h.getLogs)
}

func (h *Handler) registerSaveRoutes(api *gin.RouterGroup) {
	saves := api.Group("/saves")
	{
		saves.GET("", h.listSaves)
		saves.POST("/:slot", h.rateLimit, h.saveCity)
		saves.POST("/:slot/load", h.rateLimit, h.loadCity)
	}
}

func (h *Handler) registerHighscoreRoutes(api *gin.RouterGroup) {
	hs := api.Group("/highscores")
	{
		hs.GET("", h.topScores)
		hs.POST("", h.rateLimit, h.submitScore)
	}
}
