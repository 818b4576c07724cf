package models

import (
	"errors"
)

var (
	ErrItemNameRequired     = errors.New("models: item name is required")
	ErrItemCategoryRequired = errors.New("models: item category is required")
	ErrEmptySharedList      = errors.New("models: no items provided to share")
	ErrSharedListNotFound   = errors.New("models: shared list not found")
)
