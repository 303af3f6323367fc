package app

import (
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	User      services.UserService
	Contact   services.ContactService
	Supplier  services.SupplierService
	Task      services.TaskService
	BulkMatch services.BulkMatchService
	Exclusion services.ExclusionService
	ViewCache services.ViewCache
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")
	viewCache := services.NewViewCache(log)
	return Services{
		Auth: services.NewAuthService(
			db, log, r.User, r.UserToken, r.Workspace,
			cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		User: services.NewUserService(db, log, r.User, r.Workspace),
		Contact: services.NewContactService(
			db, log, r.Contact, r.ContactPerson, r.Call, r.Email,
			r.FuelDeal, r.Vessel, r.Task, viewCache),
		Supplier: services.NewSupplierService(
			db, log, r.Supplier, r.SupplierOrder, r.SupplierContact,
			r.SupplierPort, viewCache),
		Task: services.NewTaskService(db, log, r.Task, viewCache),
		BulkMatch: services.NewBulkMatchService(
			db, log, r.Contact, r.Supplier, r.SupplierContact,
			r.ExclusionVocabulary),
		Exclusion: services.NewExclusionService(db, log, r.ExclusionVocabulary),
		ViewCache: viewCache,
	}
}
