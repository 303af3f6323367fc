package app

import (
	"github.com/gin-gonic/gin"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/server"
)

func wireRouter(handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:       handlers.Auth,
		AuthMiddleware:    middleware.Auth,
		UserHandler:       handlers.User,
		ContactHandler:    handlers.Contact,
		SupplierHandler:   handlers.Supplier,
		TaskHandler:       handlers.Task,
		BulkSearchHandler: handlers.BulkSearch,
		ExclusionHandler:  handlers.Exclusion,
	})
}
