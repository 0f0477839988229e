package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Content specific errors
	CodeRemedyNotFound   ErrorCode = "REMEDY_NOT_FOUND"
	CodeZoneNotFound     ErrorCode = "BODY_ZONE_NOT_FOUND"
	CodeStoryNotFound    ErrorCode = "STORY_NOT_FOUND"
	CodeSessionNotFound  ErrorCode = "QUIZ_SESSION_NOT_FOUND"
	CodeInvalidDosha     ErrorCode = "INVALID_DOSHA"
	CodeQuizComplete     ErrorCode = "QUIZ_COMPLETE"
	CodeChatServiceError ErrorCode = "CHAT_SERVICE_ERROR"
	CodeGuestLinkInvalid ErrorCode = "GUEST_LINK_INVALID"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail to the error and returns it for chaining.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewRemedyNotFoundError(remedyID string) *DomainError {
	return NewError(CodeRemedyNotFound, fmt.Sprintf("Remedy not found with ID: %s", remedyID), nil)
}

func NewZoneNotFoundError(zoneID string) *DomainError {
	return NewError(CodeZoneNotFound, fmt.Sprintf("Body zone not found: %s", zoneID), nil)
}

func NewStoryNotFoundError(storyID string) *DomainError {
	return NewError(CodeStoryNotFound, fmt.Sprintf("Story not found with ID: %s", storyID), nil)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("Quiz session not found: %s", sessionID), nil)
}

func NewInvalidDoshaError(label string) *DomainError {
	return NewError(CodeInvalidDosha, fmt.Sprintf("Invalid dosha: %q", label), nil)
}

func NewQuizCompleteError() *DomainError {
	return NewError(CodeQuizComplete, "Quiz is already complete", nil)
}

func NewGuestLinkInvalidError() *DomainError {
	return NewError(CodeGuestLinkInvalid, "Invalid or expired guest link", nil)
}

func NewChatServiceError(cause error) *DomainError {
	return NewError(CodeChatServiceError, "Failed to get a reply from the assistant", cause)
}

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid field of a request or document.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	if len(v) == 1 {
		return v[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
}

// NewValidationError creates a field-less validation error.
func NewValidationError(message string) ValidationError {
	return ValidationError{Code: CodeValidation, Message: message}
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Code: CodeMissingField, Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Field: field, Code: CodeInvalidFormat, Message: "invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("must be between %d and %d", min, max),
		Value:   value,
	}
}

func NewFieldError(field, message string) ValidationError {
	return ValidationError{Field: field, Code: CodeValidation, Message: message}
}
