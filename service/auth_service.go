package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrUnauthorized is returned when a request carries no valid identity.
var ErrUnauthorized = errors.New("not authorized")

// AuthService resolves a request's bearer token to a user identity by
// asking the external auth provider. The storefront never verifies
// credentials itself. Implements AuthServiceInterface.
type AuthService struct {
	verifyURL string
	client    *http.Client
}

// NewAuthService creates a new AuthService.
// verifyURL is the provider endpoint that exchanges a session token for
// the user it belongs to.
func NewAuthService(verifyURL string) *AuthService {
	return &AuthService{
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Ensure AuthService implements AuthServiceInterface
var _ AuthServiceInterface = (*AuthService)(nil)

// Authenticate extracts the bearer token from the request and resolves it
// to a user id. A missing or rejected token is ErrUnauthorized.
func (s *AuthService) Authenticate(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrUnauthorized
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", ErrUnauthorized
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, s.verifyURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach auth provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("auth provider returned status %d", resp.StatusCode)
	}

	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode auth response: %w", err)
	}
	if body.UserID == "" {
		return "", ErrUnauthorized
	}

	return body.UserID, nil
}
