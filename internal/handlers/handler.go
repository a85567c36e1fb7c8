package handlers

import (
	"net/http"

	"hydroponics/internal/logger"
	"hydroponics/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const statusOK = "ok"

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	useJSONFieldNames()
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery(), h.requestLogger)

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": errMethodNotAllowed})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerUserRoutes(router)
	h.registerResourceRoutes(router)

	return router
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	user := r.Group("/user")
	{
		user.POST("/create/", h.createUser)
		user.POST("/token/", h.obtainToken)
	}

	me := r.Group("/user/me", h.userIdMiddleware)
	{
		me.GET("/", h.getMe)
		me.PATCH("/", h.patchMe)
		me.PUT("/", h.putMe)
		// authentication runs before the method check
		me.POST("/", h.methodNotAllowed)
	}
}

func (h *Handler) registerResourceRoutes(r *gin.Engine) {
	api := r.Group("/", h.userIdMiddleware)
	h.registerSystemRoutes(api)
	h.registerMeasurementRoutes(api)
}

func (h *Handler) registerSystemRoutes(api *gin.RouterGroup) {
	systems := api.Group("/systems")
	{
		systems.GET("/", h.listSystems)
		systems.POST("/", h.createSystem)
		systems.GET("/:id/", h.getSystem)
		systems.PATCH("/:id/", h.patchSystem)
		systems.PUT("/:id/", h.putSystem)
		systems.DELETE("/:id/", h.deleteSystem)
		// live detail stream over WebSocket
		systems.GET("/:id/ws", h.wsSystem)
	}
}

func (h *Handler) registerMeasurementRoutes(api *gin.RouterGroup) {
	measurements := api.Group("/measurements")
	{
		measurements.GET("/", h.listMeasurements)
		measurements.POST("/", h.createMeasurement)
		measurements.GET("/:id/", h.getMeasurement)
		measurements.PATCH("/:id/", h.patchMeasurement)
		measurements.PUT("/:id/", h.putMeasurement)
		measurements.DELETE("/:id/", h.deleteMeasurement)
	}
}

// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

func (h *Handler) methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": errMethodNotAllowed})
}
