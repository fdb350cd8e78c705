package service

import "context"

// StorageServiceInterface defines the contract for image upload operations
type StorageServiceInterface interface {
	Upload(ctx context.Context, data []byte, filename, folder string) (string, error)
}
