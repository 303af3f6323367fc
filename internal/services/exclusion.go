package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/repos"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

// DecodeVocabularyTerms unpacks the stored JSON term list; a broken or empty
// record decodes to no terms.
func DecodeVocabularyTerms(vocab *types.ExclusionVocabulary) []string {
	if vocab == nil || len(vocab.Terms) == 0 {
		return nil
	}
	var terms []string
	if err := json.Unmarshal(vocab.Terms, &terms); err != nil {
		return nil
	}
	return terms
}

type ExclusionService interface {
	GetTerms(ctx context.Context, userID uuid.UUID) ([]string, int64, error)
	// PutTerms replaces the whole vocabulary; terms are lower-cased,
	// de-duplicated and sorted before the write.
	PutTerms(ctx context.Context, userID uuid.UUID, terms []string) ([]string, int64, error)
}

type exclusionService struct {
	db            *gorm.DB
	log           *logger.Logger
	exclusionRepo repos.ExclusionVocabularyRepo
}

func NewExclusionService(db *gorm.DB, log *logger.Logger, exclusionRepo repos.ExclusionVocabularyRepo) ExclusionService {
	serviceLog := log.With("service", "ExclusionService")
	return &exclusionService{db: db, log: serviceLog, exclusionRepo: exclusionRepo}
}

func (es *exclusionService) GetTerms(ctx context.Context, userID uuid.UUID) ([]string, int64, error) {
	vocab, err := es.exclusionRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("load exclusion vocabulary: %w", err)
	}
	return DecodeVocabularyTerms(vocab), vocab.Version, nil
}

func (es *exclusionService) PutTerms(ctx context.Context, userID uuid.UUID, terms []string) ([]string, int64, error) {
	seen := map[string]bool{}
	normalized := make([]string, 0, len(terms))
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		normalized = append(normalized, t)
	}
	sort.Strings(normalized)

	vocab, err := es.exclusionRepo.Put(ctx, nil, userID, normalized)
	if err != nil {
		return nil, 0, fmt.Errorf("store exclusion vocabulary: %w", err)
	}
	return normalized, vocab.Version, nil
}
