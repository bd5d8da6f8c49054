package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError sends {"error": message} with status. Middleware cannot import
// handlers, so it keeps its own copy of the error body shape.
func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
