package service

import "context"

// CatalogServiceInterface defines the contract for catalog rendering operations
type CatalogServiceInterface interface {
	RenderCatalogHTML(ctx context.Context, storeID string) (string, error)
	GeneratePDF(ctx context.Context, storeID string) ([]byte, error)
}
