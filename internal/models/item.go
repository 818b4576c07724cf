package models

// Item represents a catalog row: a purchasable product with a name,
// category, default quantity and last known price.
type Item struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ItemPriceUpdate is one element of a batch price update. Updates for
// ids that do not match any row are silently ignored.
type ItemPriceUpdate struct {
	ID    int     `json:"id"`
	Price float64 `json:"price"`
}
