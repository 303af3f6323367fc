package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type WorkspaceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, workspaces []*types.Workspace) ([]*types.Workspace, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, workspaceIDs []uuid.UUID) ([]*types.Workspace, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*types.Workspace, error)
}

type workspaceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWorkspaceRepo(db *gorm.DB, baseLog *logger.Logger) WorkspaceRepo {
	repoLog := baseLog.With("repo", "WorkspaceRepo")
	return &workspaceRepo{db: db, log: repoLog}
}

func (wr *workspaceRepo) Create(ctx context.Context, tx *gorm.DB, workspaces []*types.Workspace) ([]*types.Workspace, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}
	if len(workspaces) == 0 {
		return []*types.Workspace{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (wr *workspaceRepo) GetByIDs(ctx context.Context, tx *gorm.DB, workspaceIDs []uuid.UUID) ([]*types.Workspace, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}
	var results []*types.Workspace
	if len(workspaceIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", workspaceIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (wr *workspaceRepo) ListByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*types.Workspace, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}
	var results []*types.Workspace
	if err := transaction.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
