package repositories

import (
	"context"
	"database/sql"

	"shoplist/internal/models"
)

type ItemRepository struct {
	DB *sql.DB
}

// sampleCatalog is inserted once into an empty items table so a fresh
// deployment has something to build a list from. Prices stay at the
// column default until a buyer reports them.
var sampleCatalog = []models.Item{
	{Name: "Apples", Category: "Fruits", Quantity: 2},
	{Name: "Bananas", Category: "Fruits", Quantity: 6},
	{Name: "Carrots", Category: "Vegetables", Quantity: 4},
	{Name: "Broccoli", Category: "Vegetables", Quantity: 1},
	{Name: "Chicken Breast", Category: "Meat", Quantity: 2},
	{Name: "Salmon Fillet", Category: "Meat", Quantity: 1},
	{Name: "Milk", Category: "Dairy", Quantity: 3},
	{Name: "Cheese", Category: "Dairy", Quantity: 1},
	{Name: "Bread", Category: "Bakery", Quantity: 2},
	{Name: "Croissants", Category: "Bakery", Quantity: 5},
}

func (r *ItemRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS items (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			quantity INT NOT NULL DEFAULT 1,
			price DOUBLE NOT NULL DEFAULT 0
		)
	`
	_, err := r.DB.ExecContext(ctx, query)
	return err
}

// SeedIfEmpty populates an empty items table with the sample catalog.
// The row-count check is not guarded against two processes seeding at
// once; the application assumes a single-process deployment.
func (r *ItemRepository) SeedIfEmpty(ctx context.Context) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	query := `INSERT INTO items (name, category, quantity) VALUES (?, ?, ?)`
	for _, item := range sampleCatalog {
		if _, err := r.DB.ExecContext(ctx, query, item.Name, item.Category, item.Quantity); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (r *ItemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}

	query := `SELECT id, name, category, quantity, price FROM items`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.Item
		err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `INSERT INTO items (name, category, quantity) VALUES (?, ?, ?)`
	result, err := r.DB.ExecContext(ctx, query, item.Name, item.Category, item.Quantity)
	if err != nil {
		return models.Item{}, err
	}

	itemID, err := result.LastInsertId()
	if err != nil {
		return models.Item{}, err
	}

	item.ID = int(itemID)
	item.Price = 0
	return item, nil
}

// UpdatePrices applies each price to the matching row. Ids without a
// matching row are no-ops, and the batch is not atomic: a failure
// partway through leaves earlier updates applied.
func (r *ItemRepository) UpdatePrices(ctx context.Context, updates []models.ItemPriceUpdate) error {
	query := `UPDATE items SET price = ? WHERE id = ?`
	for _, update := range updates {
		if _, err := r.DB.ExecContext(ctx, query, update.Price, update.ID); err != nil {
			return err
		}
	}
	return nil
}
