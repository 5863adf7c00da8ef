// Package response writes the JSON envelope shared by every API endpoint.
package response

import (
	"encoding/json"
	"net/http"
	"time"
)

// APIResponse is the standard envelope.
type APIResponse struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// APIError carries a machine-readable code next to the message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error code constants.
const (
	ErrorCodeBadRequest        = "BAD_REQUEST"
	ErrorCodeValidationError   = "VALIDATION_ERROR"
	ErrorCodeNotFound          = "NOT_FOUND"
	ErrorCodeUnsupportedMedia  = "UNSUPPORTED_FILE_TYPE"
	ErrorCodeUnreadableContent = "CONTENT_UNREADABLE"
	ErrorCodePayloadTooLarge   = "PAYLOAD_TOO_LARGE"
	ErrorCodeInternalError     = "INTERNAL_SERVER_ERROR"
)

// WriteSuccess writes a 200 envelope around data.
func WriteSuccess(w http.ResponseWriter, requestID string, data any) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
		RequestID: requestID,
	})
}

// WriteError writes an error envelope with the given status and code.
func WriteError(w http.ResponseWriter, requestID string, statusCode int, code, message string, details any) {
	writeJSON(w, statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now(),
		RequestID: requestID,
	})
}

// WriteBadRequest writes a 400 envelope.
func WriteBadRequest(w http.ResponseWriter, requestID, message string) {
	WriteError(w, requestID, http.StatusBadRequest, ErrorCodeBadRequest, message, nil)
}

// WriteNotFound writes a 404 envelope.
func WriteNotFound(w http.ResponseWriter, requestID, message string) {
	WriteError(w, requestID, http.StatusNotFound, ErrorCodeNotFound, message, nil)
}

// WriteInternalServerError writes a 500 envelope.
func WriteInternalServerError(w http.ResponseWriter, requestID, message string) {
	WriteError(w, requestID, http.StatusInternalServerError, ErrorCodeInternalError, message, nil)
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// WriteHealthCheck writes the health payload, 503 when not healthy.
func WriteHealthCheck(w http.ResponseWriter, status, version string, checks map[string]string) {
	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}
	writeJSON(w, statusCode, HealthResponse{
		Status:    status,
		Version:   version,
		Timestamp: time.Now(),
		Checks:    checks,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
