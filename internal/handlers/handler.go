package handlers

import (
	"goblog/internal/logger"
	"goblog/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestID, h.currentUser)
	router.SetHTMLTemplate(pageTemplates())

	// Health endpoint
	router.GET("/health", h.health)

	// Public pages
	router.GET("/", h.listPosts)
	router.GET("/about", h.about)
	router.GET("/contact", h.contact)
	router.GET("/dashboard", h.dashboard)

	h.registerAuthRoutes(router)
	h.registerPostRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/register", h.showRegister)
	r.POST("/register", h.register)
	r.GET("/login", h.showLogin)
	r.POST("/login", h.login)
	r.GET("/logout", h.logout)
}

func (h *Handler) registerPostRoutes(r *gin.Engine) {
	// Post page doubles as the comment form target.
	r.GET("/post/:id", h.showPost)
	r.POST("/post/:id", h.submitComment)

	admin := r.Group("/", h.adminOnly)
	{
		admin.GET("/new-post", h.newPostForm)
		admin.POST("/new-post", h.createPost)
		admin.GET("/edit-post/:id", h.editPostForm)
		admin.POST("/edit-post/:id", h.updatePost)
		admin.GET("/delete/:id", h.deletePost)
	}
}
