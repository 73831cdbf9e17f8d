package utils

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error writes a JSON error body of the form {"error": kind, "message": msg}.
// The kind is machine-readable so clients can branch on it (duplicate
// identifier vs generic failure) without parsing the message text.
func Error(w http.ResponseWriter, status int, kind, message string) {
	JSON(w, status, map[string]string{"error": kind, "message": message})
}
