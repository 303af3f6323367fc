package repos

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type ExclusionVocabularyRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ExclusionVocabulary, error)
	// Put replaces the whole term list and bumps the version.
	Put(ctx context.Context, tx *gorm.DB, userID uuid.UUID, terms []string) (*types.ExclusionVocabulary, error)
}

type exclusionVocabularyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExclusionVocabularyRepo(db *gorm.DB, baseLog *logger.Logger) ExclusionVocabularyRepo {
	repoLog := baseLog.With("repo", "ExclusionVocabularyRepo")
	return &exclusionVocabularyRepo{db: db, log: repoLog}
}

func (er *exclusionVocabularyRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ExclusionVocabulary, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var result types.ExclusionVocabulary
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.ExclusionVocabulary{UserID: userID, Terms: datatypes.JSON([]byte("[]"))}, nil
		}
		return nil, err
	}
	return &result, nil
}

func (er *exclusionVocabularyRepo) Put(ctx context.Context, tx *gorm.DB, userID uuid.UUID, terms []string) (*types.ExclusionVocabulary, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	raw, err := json.Marshal(terms)
	if err != nil {
		return nil, err
	}
	var result types.ExclusionVocabulary
	err = transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		result = types.ExclusionVocabulary{
			ID:      uuid.New(),
			UserID:  userID,
			Terms:   datatypes.JSON(raw),
			Version: 1,
		}
		if err := transaction.WithContext(ctx).Create(&result).Error; err != nil {
			return nil, err
		}
		return &result, nil
	}
	if err != nil {
		return nil, err
	}
	result.Terms = datatypes.JSON(raw)
	result.Version++
	if err := transaction.WithContext(ctx).Save(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
