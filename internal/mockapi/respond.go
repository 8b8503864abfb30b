// Package mockapi is an in-memory implementation of the catalog backend's
// REST contract. It exists so the dashboard can be developed and tested
// without the real API: same envelope, same routes, same failure semantics.
package mockapi

import (
	"encoding/json"
	"net/http"
	"time"
)

type envelope struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Timestamp  string      `json:"timestamp"`
	Path       string      `json:"path,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{
		Success:    success,
		StatusCode: status,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       r.URL.Path,
	})
}

func ok(w http.ResponseWriter, r *http.Request, message string, data interface{}) {
	writeEnvelope(w, r, http.StatusOK, true, message, data)
}

// fail reports a business-rule failure. The HTTP status stays in the 2xx/4xx
// range so clients resolve the envelope and read success=false.
func fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeEnvelope(w, r, status, false, message, nil)
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, http.StatusUnauthorized, false, "unauthorized", nil)
}
