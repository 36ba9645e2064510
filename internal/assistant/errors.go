package assistant

import "fmt"

// ConfigError means the assistant is unusable as configured (typically a
// missing API key). It is fail-fast: callers surface it verbatim with
// remediation instructions and never fall back silently.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// QuotaError means the text-generation service rejected the request for
// quota or rate-limit reasons. Distinct from ServiceError so callers can
// show an actionable message.
type QuotaError struct {
	Cause error
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("quota exceeded or rate limited: %v", e.Cause)
}

func (e *QuotaError) Unwrap() error {
	return e.Cause
}

// ServiceError is a transient network or service failure. The action can
// be retried by the user; no automatic retry happens here.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError means the service answered, but not in the shape
// the caller needs (e.g. unparsable JSON). Recoverable: callers fall back
// to a degraded result instead of crashing.
type MalformedResponseError struct {
	Message string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed response: %s", e.Message)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
