package app

import (
	"github.com/bunkerdesk/bunkerdesk-backend/internal/handlers"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Contact    *handlers.ContactHandler
	Supplier   *handlers.SupplierHandler
	Task       *handlers.TaskHandler
	BulkSearch *handlers.BulkSearchHandler
	Exclusion  *handlers.ExclusionHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:       handlers.NewAuthHandler(services.Auth),
		User:       handlers.NewUserHandler(log, services.User),
		Contact:    handlers.NewContactHandler(log, services.Contact),
		Supplier:   handlers.NewSupplierHandler(log, services.Supplier),
		Task:       handlers.NewTaskHandler(log, services.Task),
		BulkSearch: handlers.NewBulkSearchHandler(log, services.BulkMatch),
		Exclusion:  handlers.NewExclusionHandler(log, services.Exclusion),
	}
}
