package service

import "net/http"

// AuthServiceInterface defines the contract for request authentication
type AuthServiceInterface interface {
	Authenticate(r *http.Request) (string, error)
}
