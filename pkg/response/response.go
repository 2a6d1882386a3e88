// Package response writes the backend's wire shapes. Failures are
// {"error": "..."} objects, validation failures are per-field message lists,
// and list endpoints answer either a bare array or a paginated
// {"count", "results"} envelope depending on the view.
package response

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]string{"error": message})
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]string{"message": message})
}

// FieldErrors mirrors DRF serializer failures: {"field": ["msg", ...]}.
func FieldErrors(w http.ResponseWriter, fields map[string][]string) {
	JSON(w, http.StatusBadRequest, fields)
}

// Paginated wraps items in the paginated list envelope.
func Paginated(w http.ResponseWriter, items interface{}, count int) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"count":   count,
		"results": items,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Authentication credentials were not provided."
	}
	JSON(w, http.StatusUnauthorized, map[string]string{"detail": message})
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Not found."
	}
	JSON(w, http.StatusNotFound, map[string]string{"detail": message})
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "You do not have permission to perform this action."
	}
	JSON(w, http.StatusForbidden, map[string]string{"detail": message})
}
