package core

import "fmt"

// AuthError reports a failed OAuth token acquisition.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return fmt.Sprintf("oauth: %v", e.Err) }
func (e *AuthError) Unwrap() error { return e.Err }

// UpstreamError carries the status and body of a non-2xx sourcing API
// response.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream http %d: %s", e.Status, e.Body)
}

// CompositionError reports a data-shape mismatch while chaining
// Task -> Workspace -> RFXDocument.
type CompositionError struct {
	Reason string
}

func (e *CompositionError) Error() string { return e.Reason }

// ValidationError reports a missing required request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConfigError reports a missing required credential.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// OrchestratorError wraps a generative-AI transport or API failure.
type OrchestratorError struct {
	Err error
}

func (e *OrchestratorError) Error() string { return fmt.Sprintf("ai: %v", e.Err) }
func (e *OrchestratorError) Unwrap() error { return e.Err }
