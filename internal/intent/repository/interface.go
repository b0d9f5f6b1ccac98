package repository

import (
	"context"

	"intent-chatbot/internal/intent"
)

// Repository is the composed interface for the intent data store.
type Repository interface {
	CatalogRepository
}

// CatalogRepository loads the intent catalog.
type CatalogRepository interface {
	// LoadCatalog returns a fully validated catalog or an error; never a partial catalog.
	LoadCatalog(ctx context.Context) (intent.Catalog, error)
}
