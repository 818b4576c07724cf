package services

import (
	"context"
	"encoding/json"

	"shoplist/internal/models"
	"shoplist/internal/repositories"
)

type SharedListService struct {
	SharedListRepo *repositories.SharedListRepository
}

// CreateSnapshot rejects empty input; beyond presence there is no
// schema validation, the records are stored as received.
func (s *SharedListService) CreateSnapshot(ctx context.Context, records []json.RawMessage) (string, error) {
	if len(records) == 0 {
		return "", models.ErrEmptySharedList
	}
	return s.SharedListRepo.CreateSnapshot(ctx, records)
}

func (s *SharedListService) GetSnapshot(ctx context.Context, id string) ([]json.RawMessage, error) {
	return s.SharedListRepo.GetSnapshot(ctx, id)
}
