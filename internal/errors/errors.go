//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// ValidationError indicates a task record failed schema validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid task: field %q %s", e.Field, e.Reason)
}

// StoreUnavailableError indicates the backing task file is missing,
// unreadable, or malformed. Reads are all-or-nothing, so a single record
// failing validation surfaces as this condition too.
type StoreUnavailableError struct {
	Path   string
	Reason string
}

func (e StoreUnavailableError) Error() string {
	return fmt.Sprintf("task store unavailable (%s): %s", e.Path, e.Reason)
}

// TaskExistsError indicates an ID collision on append.
type TaskExistsError struct {
	ID string
}

func (e TaskExistsError) Error() string {
	return fmt.Sprintf("task already exists: %s", e.ID)
}

// NetworkError indicates a client-side request could not complete or
// returned a non-success status. StatusCode is zero for transport failures.
type NetworkError struct {
	Op         string
	StatusCode int
	Cause      error
}

func (e NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: server returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e NetworkError) Unwrap() error {
	return e.Cause
}

// CredentialRejectedError indicates login input did not match any accepted
// pattern. The message is deliberately generic.
type CredentialRejectedError struct{}

func (e CredentialRejectedError) Error() string {
	return "invalid credentials"
}

// InvalidPriorityError indicates an invalid priority value.
type InvalidPriorityError struct {
	Value string
}

func (e InvalidPriorityError) Error() string {
	return fmt.Sprintf("invalid priority: %s (valid: low, medium, high)", e.Value)
}

// MissingFieldError indicates a required form field was left empty.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("required field is empty: %s", e.Field)
}

// SubmitInProgressError indicates a form submit was attempted while a
// previous submit was still in flight.
type SubmitInProgressError struct{}

func (e SubmitInProgressError) Error() string {
	return "a submission is already in progress"
}
