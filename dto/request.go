package dto

import (
	"errors"
	"mime/multipart"
)

// ParseMode selects the extraction strategy for an uploaded statement.
type ParseMode string

const (
	// ModeRegex runs the deterministic pattern-driven engine (default).
	ModeRegex ParseMode = "regex"
	// ModeLLM delegates formatting to the configured language model.
	ModeLLM ParseMode = "llm"
)

// StatementParseRequest represents an uploaded CAS document.
type StatementParseRequest struct {
	File     *multipart.FileHeader `form:"file" binding:"required"`
	Password string                `form:"password"`
	Mode     ParseMode             `form:"mode"`
}

// Validate performs basic validation on the request
func (r *StatementParseRequest) Validate() error {
	if r.File == nil {
		return ErrNoDocument
	}
	if r.Mode == "" {
		r.Mode = ModeRegex
	}
	if r.Mode != ModeRegex && r.Mode != ModeLLM {
		return errors.New("mode must be one of: regex, llm")
	}
	return nil
}

// ParseTextRequest carries already-extracted statement text, the engine's
// native input.
type ParseTextRequest struct {
	Text string `json:"text"`
}
