package models

// SharedListItem is the selection record a builder posts when sharing a
// list: a point-in-time copy of an item plus the chosen quantity. The
// shared-list store itself keeps the raw JSON it received, so this type
// documents the wire shape rather than constraining storage.
type SharedListItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}
