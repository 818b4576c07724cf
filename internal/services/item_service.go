package services

import (
	"context"
	"strings"

	"shoplist/internal/models"
)

// ItemStore is the slice of the item repository the service needs.
type ItemStore interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	UpdatePrices(ctx context.Context, updates []models.ItemPriceUpdate) error
}

type ItemService struct {
	ItemRepo ItemStore
}

func (s *ItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.ItemRepo.ListItems(ctx)
}

// CreateItem validates the presence of name and category before the
// store is touched, and defaults the quantity to 1 when the client
// omitted it or sent a non-positive value.
func (s *ItemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.TrimSpace(item.Category)

	if item.Name == "" {
		return models.Item{}, models.ErrItemNameRequired
	}
	if item.Category == "" {
		return models.Item{}, models.ErrItemCategoryRequired
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	return s.ItemRepo.CreateItem(ctx, item)
}

func (s *ItemService) UpdatePrices(ctx context.Context, updates []models.ItemPriceUpdate) error {
	return s.ItemRepo.UpdatePrices(ctx, updates)
}
