package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"food-ordering-platform/internal/models"
)

// respondJSON writes v as a JSON response with the given status
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain errors to HTTP status codes
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, models.ErrFoodNotFound),
		errors.Is(err, models.ErrCategoryNotFound),
		errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrDuplicateEntry),
		errors.Is(err, models.ErrFoodInUse),
		errors.Is(err, models.ErrCategoryInUse):
		status = http.StatusConflict
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrEmptyOrder),
		isValidationError(err):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		respondJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}

	respondJSON(w, status, errorResponse{Error: err.Error()})
}

// isValidationError reports whether the error came from request
// validation. Repositories and services wrap those as
// "validation failed: ...".
func isValidationError(err error) bool {
	return strings.Contains(err.Error(), "validation failed")
}

// decodeJSON decodes a request body into v
func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(v); err != nil {
		return models.ErrInvalidInput
	}
	return nil
}
