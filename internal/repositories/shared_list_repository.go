package repositories

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"shoplist/internal/models"
)

// SharedListRepository holds shared-list snapshots for the lifetime of
// the process. Snapshots are intentionally not persisted: a restart
// drops every shared list. Records are kept as the raw JSON received,
// so a snapshot reads back exactly as it was shared.
type SharedListRepository struct {
	mu    sync.RWMutex
	lists map[string][]json.RawMessage
}

func NewSharedListRepository() *SharedListRepository {
	return &SharedListRepository{
		lists: make(map[string][]json.RawMessage),
	}
}

// CreateSnapshot freezes the given records under a fresh id. The caller
// never supplies the id; the store guarantees uniqueness.
func (r *SharedListRepository) CreateSnapshot(ctx context.Context, records []json.RawMessage) (string, error) {
	id := uuid.NewString()

	r.mu.Lock()
	r.lists[id] = records
	r.mu.Unlock()

	return id, nil
}

func (r *SharedListRepository) GetSnapshot(ctx context.Context, id string) ([]json.RawMessage, error) {
	r.mu.RLock()
	records, ok := r.lists[id]
	r.mu.RUnlock()

	if !ok {
		return nil, models.ErrSharedListNotFound
	}
	return records, nil
}
