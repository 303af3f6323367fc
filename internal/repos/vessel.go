package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type VesselRepo interface {
	Create(ctx context.Context, tx *gorm.DB, vessels []*types.Vessel) ([]*types.Vessel, error)
	Delete(ctx context.Context, tx *gorm.DB, vesselIDs []uuid.UUID) error
	ListByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Vessel, error)
}

type vesselRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVesselRepo(db *gorm.DB, baseLog *logger.Logger) VesselRepo {
	repoLog := baseLog.With("repo", "VesselRepo")
	return &vesselRepo{db: db, log: repoLog}
}

func (vr *vesselRepo) Create(ctx context.Context, tx *gorm.DB, vessels []*types.Vessel) ([]*types.Vessel, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if len(vessels) == 0 {
		return []*types.Vessel{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&vessels).Error; err != nil {
		return nil, err
	}
	return vessels, nil
}

func (vr *vesselRepo) Delete(ctx context.Context, tx *gorm.DB, vesselIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if len(vesselIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", vesselIDs).
		Delete(&types.Vessel{}).Error
}

func (vr *vesselRepo) ListByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Vessel, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var results []*types.Vessel
	if len(contactIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("contact_id IN ?", contactIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
