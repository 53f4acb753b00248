package handlers

import (
	"github.com/lukhatek/Fsociety/internal/logger"
	"github.com/lukhatek/Fsociety/internal/service"

	"github.com/gin-gonic/gin"

	_ "github.com/lukhatek/Fsociety/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		api.GET("/", h.welcome)
		h.registerAuthRoutes(api)
		h.registerContentRoutes(api)

		// Live post list over WebSocket (HTTP upgrade), same port
		api.GET("/ws/posts", h.postsFeed)
	}

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	api.POST("/register", h.register)
	api.POST("/login", h.login)
	api.GET("/me", h.authMiddleware, h.me)
}

// Reads are public; writes go through authMiddleware.
func (h *Handler) registerContentRoutes(api *gin.RouterGroup) {
	posts := api.Group("/posts")
	{
		posts.GET("", h.listPosts)
		posts.POST("", h.authMiddleware, h.createPost)
		posts.GET("/:id", h.getPost)
		posts.GET("/:id/comments", h.listComments)
	}
	api.POST("/comments", h.authMiddleware, h.createComment)
}
