package util

import "net/http"

type Envelope map[string]any

// APIError is the JSON body of every failed request.
type APIError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(status int, message string) *APIError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{Message: message, StatusCode: status}
}

func Message(msg string) Envelope {
	return Envelope{"msg": msg}
}
