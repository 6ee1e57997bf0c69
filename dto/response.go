package dto

import "errors"

// Custom errors
var (
	ErrNoDocument = errors.New("a statement document is required")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// StatementParseResponse is the final response structure
type StatementParseResponse struct {
	Record      *StatementRecord `json:"record,omitempty"`
	RawJSON     string           `json:"raw_json,omitempty"`
	Mode        ParseMode        `json:"mode"`
	Pages       int              `json:"pages"`
	ProcessedAt string           `json:"processed_at"`
}
