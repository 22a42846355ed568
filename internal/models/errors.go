package models

import "fmt"

// APIError is the Scryfall error object, surfaced verbatim to callers
// so user-facing messages can include the API's own explanation.
type APIError struct {
	Object   string   `json:"object"`
	Status   int      `json:"status"`
	Code     string   `json:"code"`
	Details  string   `json:"details"`
	Warnings []string `json:"warnings,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("scryfall API error %d (%s): %s", e.Status, e.Code, e.Details)
	}
	return fmt.Sprintf("scryfall API error %d (%s)", e.Status, e.Code)
}
