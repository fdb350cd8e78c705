package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Imraj-Rabbani/GoCart/repository"
	"github.com/Imraj-Rabbani/GoCart/service"
)

// sellerStore resolves the request to an approved seller's store id.
// storeID is "" when the caller is not an approved seller; the handler is
// expected to respond 401 in that case.
func sellerStore(ctx context.Context, r *http.Request, auth service.AuthServiceInterface, stores repository.StoreRepositoryInterface) (userID, storeID string, err error) {
	userID, err = auth.Authenticate(r)
	if err != nil {
		return "", "", err
	}

	storeID, err = stores.ApprovedStoreID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	return userID, storeID, nil
}

// writeJSON sets the content type and encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
