package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/handlers"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler       *handlers.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	UserHandler       *handlers.UserHandler
	ContactHandler    *handlers.ContactHandler
	SupplierHandler   *handlers.SupplierHandler
	TaskHandler       *handlers.TaskHandler
	BulkSearchHandler *handlers.BulkSearchHandler
	ExclusionHandler  *handlers.ExclusionHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("bunkerdesk-backend"))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
		api.POST("/refresh", cfg.AuthHandler.Refresh)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/logout", cfg.AuthHandler.Logout)
	// User
	protected.GET("/user", cfg.UserHandler.GetMe)
	protected.GET("/workspaces", cfg.UserHandler.ListWorkspaces)
	// Contacts
	protected.GET("/contacts", cfg.ContactHandler.List)
	protected.POST("/contacts", cfg.ContactHandler.Create)
	protected.POST("/contacts/view", cfg.ContactHandler.View)
	protected.PUT("/contacts/:id", cfg.ContactHandler.Update)
	protected.DELETE("/contacts/:id", cfg.ContactHandler.Delete)
	protected.POST("/contacts/:id/calls", cfg.ContactHandler.LogCall)
	protected.POST("/contacts/:id/emails", cfg.ContactHandler.LogEmail)
	protected.POST("/contacts/:id/deals", cfg.ContactHandler.AddDeal)
	protected.POST("/contacts/:id/persons", cfg.ContactHandler.AddPerson)
	protected.POST("/contacts/:id/vessels", cfg.ContactHandler.AddVessel)
	// Suppliers
	protected.GET("/suppliers", cfg.SupplierHandler.List)
	protected.POST("/suppliers", cfg.SupplierHandler.Create)
	protected.POST("/suppliers/view", cfg.SupplierHandler.View)
	protected.PUT("/suppliers/:id", cfg.SupplierHandler.Update)
	protected.DELETE("/suppliers/:id", cfg.SupplierHandler.Delete)
	protected.POST("/suppliers/:id/orders", cfg.SupplierHandler.AddOrder)
	protected.POST("/suppliers/:id/contacts", cfg.SupplierHandler.AddContact)
	protected.POST("/suppliers/:id/ports", cfg.SupplierHandler.AddPort)
	// Tasks
	protected.GET("/tasks", cfg.TaskHandler.List)
	protected.POST("/tasks", cfg.TaskHandler.Create)
	protected.POST("/tasks/view", cfg.TaskHandler.View)
	protected.PUT("/tasks/:id", cfg.TaskHandler.Update)
	protected.POST("/tasks/:id/complete", cfg.TaskHandler.Complete)
	protected.DELETE("/tasks/:id", cfg.TaskHandler.Delete)
	// Bulk search
	protected.POST("/bulk-search", cfg.BulkSearchHandler.Match)
	// Exclusion vocabulary
	protected.GET("/exclusions", cfg.ExclusionHandler.Get)
	protected.PUT("/exclusions", cfg.ExclusionHandler.Put)

	return router
}
