package domain

import (
	"fmt"
)

// maxDetailExcerpt bounds the raw-body excerpt attached to upstream
// decode failures.
const maxDetailExcerpt = 500

// AppError is the wire shape of every failure response:
// {"error": ..., "details": ..., "status": ...}.
type AppError struct {
	Message        string `json:"error"`
	Details        any    `json:"details,omitempty"`
	UpstreamStatus int    `json:"status,omitempty"`
	StatusCode     int    `json:"-"`
	Err            error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Message:        e.Message,
		Details:        e.Details,
		UpstreamStatus: e.UpstreamStatus,
		StatusCode:     e.StatusCode,
		Err:            err,
	}
}

// Pre-defined errors
var (
	ErrInternal = &AppError{
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}

	ErrMissingCredential = &AppError{
		Message:    "API key is required",
		StatusCode: 400,
	}

	ErrUpstreamTimeout = &AppError{
		Message:    "Upstream request timed out",
		StatusCode: 500,
	}

	ErrUpstreamUnreachable = &AppError{
		Message:    "Failed to reach face API",
		StatusCode: 500,
	}
)

// NewMissingImage reports an absent multipart image field.
func NewMissingImage(field string) *AppError {
	return &AppError{
		Message:    fmt.Sprintf("Image file %q is required", field),
		StatusCode: 400,
	}
}

// NewImageTooLarge reports an image above MaxImageBytes.
func NewImageTooLarge(field string) *AppError {
	return &AppError{
		Message:    fmt.Sprintf("Image file %q exceeds the 5 MB limit", field),
		StatusCode: 400,
	}
}

// NewUpstreamBadResponse reports an upstream body that did not decode as
// JSON. Only a bounded excerpt of the raw body is exposed.
func NewUpstreamBadResponse(raw string) *AppError {
	return &AppError{
		Message:    "Failed to parse API response as JSON",
		Details:    Excerpt(raw),
		StatusCode: 500,
	}
}

// NewUpstreamError relays a non-2xx upstream reply under the upstream's
// own status code. When the decoded body carries an "error" string it
// becomes the message; details holds the body verbatim.
func NewUpstreamError(status int, body any) *AppError {
	message := "Face API request failed"
	if m, ok := body.(map[string]any); ok {
		if s, ok := m["error"].(string); ok && s != "" {
			message = s
		}
	}
	return &AppError{
		Message:        message,
		Details:        body,
		UpstreamStatus: status,
		StatusCode:     status,
	}
}

// Excerpt truncates raw upstream text to a diagnosable size.
func Excerpt(s string) string {
	if len(s) > maxDetailExcerpt {
		return s[:maxDetailExcerpt]
	}
	return s
}
