package app

import (
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/repos"
)

type Repos struct {
	User                repos.UserRepo
	UserToken           repos.UserTokenRepo
	Workspace           repos.WorkspaceRepo
	Contact             repos.ContactRepo
	ContactPerson       repos.ContactPersonRepo
	Call                repos.CallRepo
	Email               repos.EmailRepo
	Vessel              repos.VesselRepo
	FuelDeal            repos.FuelDealRepo
	Task                repos.TaskRepo
	Supplier            repos.SupplierRepo
	SupplierOrder       repos.SupplierOrderRepo
	SupplierContact     repos.SupplierContactRepo
	SupplierPort        repos.SupplierPortRepo
	ExclusionVocabulary repos.ExclusionVocabularyRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:                repos.NewUserRepo(db, log),
		UserToken:           repos.NewUserTokenRepo(db, log),
		Workspace:           repos.NewWorkspaceRepo(db, log),
		Contact:             repos.NewContactRepo(db, log),
		ContactPerson:       repos.NewContactPersonRepo(db, log),
		Call:                repos.NewCallRepo(db, log),
		Email:               repos.NewEmailRepo(db, log),
		Vessel:              repos.NewVesselRepo(db, log),
		FuelDeal:            repos.NewFuelDealRepo(db, log),
		Task:                repos.NewTaskRepo(db, log),
		Supplier:            repos.NewSupplierRepo(db, log),
		SupplierOrder:       repos.NewSupplierOrderRepo(db, log),
		SupplierContact:     repos.NewSupplierContactRepo(db, log),
		SupplierPort:        repos.NewSupplierPortRepo(db, log),
		ExclusionVocabulary: repos.NewExclusionVocabularyRepo(db, log),
	}
}
