package dto

import "fmt"

// Typed service errors. The error-handler middleware maps these to status
// codes and machine-readable codes so clients can render upgrade prompts.

// LimitReachedError carries quota detail for 403 responses.
type LimitReachedError struct {
	Limit        int `json:"limit"`
	CurrentCount int `json:"current_count"`
}

func (e *LimitReachedError) Error() string {
	return "spell generation limit reached"
}

// FeatureLockedError marks paid-only features accessed by free-tier users.
type FeatureLockedError struct {
	Feature string
}

func (e *FeatureLockedError) Error() string {
	return fmt.Sprintf("feature locked: %s requires a paid subscription", e.Feature)
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError covers duplicate email at registration and email updates.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// UpstreamError wraps LLM/image collaborator failures. The cause is logged
// upstream; only the generic message crosses the HTTP boundary.
type UpstreamError struct {
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
