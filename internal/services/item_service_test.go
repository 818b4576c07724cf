package services

import (
	"context"
	"errors"
	"testing"

	"shoplist/internal/models"
)

// stubItemStore records calls so tests can assert the store was (or
// was not) reached.
type stubItemStore struct {
	items       []models.Item
	created     []models.Item
	updates     [][]models.ItemPriceUpdate
	createErr   error
	listErr     error
	updateErr   error
	nextID      int
	createCalls int
}

func (s *stubItemStore) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.items, s.listErr
}

func (s *stubItemStore) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	s.createCalls++
	if s.createErr != nil {
		return models.Item{}, s.createErr
	}
	s.nextID++
	item.ID = s.nextID
	s.created = append(s.created, item)
	return item, nil
}

func (s *stubItemStore) UpdatePrices(ctx context.Context, updates []models.ItemPriceUpdate) error {
	s.updates = append(s.updates, updates)
	return s.updateErr
}

func TestCreateItemValidation(t *testing.T) {
	tests := []struct {
		name    string
		item    models.Item
		wantErr error
	}{
		{
			name:    "missing name",
			item:    models.Item{Category: "Fruits"},
			wantErr: models.ErrItemNameRequired,
		},
		{
			name:    "blank name",
			item:    models.Item{Name: "   ", Category: "Fruits"},
			wantErr: models.ErrItemNameRequired,
		},
		{
			name:    "missing category",
			item:    models.Item{Name: "Apples"},
			wantErr: models.ErrItemCategoryRequired,
		},
		{
			name:    "blank category",
			item:    models.Item{Name: "Apples", Category: "  "},
			wantErr: models.ErrItemCategoryRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubItemStore{}
			service := &ItemService{ItemRepo: store}

			_, err := service.CreateItem(context.Background(), tt.item)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if store.createCalls != 0 {
				t.Fatalf("store must not be touched on validation failure, got %d calls", store.createCalls)
			}
		})
	}
}

func TestCreateItemQuantityDefault(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{"omitted", 0, 1},
		{"negative", -3, 1},
		{"explicit", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubItemStore{}
			service := &ItemService{ItemRepo: store}

			created, err := service.CreateItem(context.Background(), models.Item{
				Name:     "Apples",
				Category: "Fruits",
				Quantity: tt.quantity,
			})
			if err != nil {
				t.Fatalf("CreateItem: %v", err)
			}
			if created.Quantity != tt.want {
				t.Fatalf("expected quantity %d, got %d", tt.want, created.Quantity)
			}
			if created.ID == 0 {
				t.Fatalf("expected the store-assigned id to be returned")
			}
		})
	}
}

func TestCreateItemTrimsFields(t *testing.T) {
	store := &stubItemStore{}
	service := &ItemService{ItemRepo: store}

	created, err := service.CreateItem(context.Background(), models.Item{
		Name:     "  Apples ",
		Category: " Fruits  ",
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if created.Name != "Apples" || created.Category != "Fruits" {
		t.Fatalf("expected trimmed fields, got %q/%q", created.Name, created.Category)
	}
}

func TestListItemsPassesThrough(t *testing.T) {
	store := &stubItemStore{items: []models.Item{
		{ID: 1, Name: "Apples", Category: "Fruits", Quantity: 2},
	}}
	service := &ItemService{ItemRepo: store}

	items, err := service.ListItems(context.Background())
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Apples" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestUpdatePricesPassesThrough(t *testing.T) {
	store := &stubItemStore{}
	service := &ItemService{ItemRepo: store}

	updates := []models.ItemPriceUpdate{{ID: 3, Price: 2.49}}
	if err := service.UpdatePrices(context.Background(), updates); err != nil {
		t.Fatalf("UpdatePrices: %v", err)
	}
	if len(store.updates) != 1 || len(store.updates[0]) != 1 || store.updates[0][0].ID != 3 {
		t.Fatalf("expected the updates forwarded to the store, got %+v", store.updates)
	}
}
