package api

import (
	"encoding/json"
	"errors"
)

// Envelope is the uniform wrapper the backend puts around every response.
// A decoded envelope does not imply the operation worked: callers must
// inspect Success before treating a call as complete.
type Envelope struct {
	Success          bool              `json:"success"`
	StatusCode       int               `json:"statusCode"`
	Message          string            `json:"message"`
	Data             json.RawMessage   `json:"data,omitempty"`
	Errors           []string          `json:"errors,omitempty"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
	Timestamp        string            `json:"timestamp,omitempty"`
	Path             string            `json:"path,omitempty"`
}

type ValidationError struct {
	Identifier   string `json:"identifier"`
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    string `json:"errorCode"`
	Severity     int    `json:"severity"`
}

var ErrNoData = errors.New("envelope has no data")

// Decode unmarshals the envelope payload into v.
func (e *Envelope) Decode(v interface{}) error {
	if e == nil || len(e.Data) == 0 || string(e.Data) == "null" {
		return ErrNoData
	}
	return json.Unmarshal(e.Data, v)
}
