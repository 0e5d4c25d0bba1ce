package service

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response from the provider. Message and Code
// come from the provider's error body when it decodes; otherwise
// Message holds the raw body.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("provider returned %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("provider returned %d: %s", e.StatusCode, e.Message)
}

// newAPIError decodes the provider's {"error": {"code", "message"}}
// body, falling back to the raw text.
func newAPIError(statusCode int, body []byte) *APIError {
	var parsed struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return &APIError{
			StatusCode: statusCode,
			Code:       parsed.Error.Code,
			Message:    parsed.Error.Message,
		}
	}
	return &APIError{StatusCode: statusCode, Message: string(body)}
}
