package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorEnvelope is the body the execution service returns when it rejects
// operation input. It arrives with a 2xx status.
type ErrorEnvelope struct {
	Error string `json:"Error"`
}

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, entries, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteServiceError writes message inside an [ErrorEnvelope] with status 200,
// mirroring how the execution service reports invalid operation input.
func WriteServiceError(w http.ResponseWriter, message string) (int, error) {
	return WriteJSON(w, ErrorEnvelope{Error: message}, http.StatusOK)
}
