//nolint:testpackage // Tests require internal access for thorough testing
package errors

import (
	"testing"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  ValidationError
		want string
	}{
		{
			name: "formats field and reason",
			err:  ValidationError{Field: "status", Reason: "must be one of todo, in-progress, done, canceled"},
			want: `invalid task: field "status" must be one of todo, in-progress, done, canceled`,
		},
		{
			name: "handles empty reason",
			err:  ValidationError{Field: "id", Reason: ""},
			want: `invalid task: field "id" `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStoreUnavailableError(t *testing.T) {
	err := StoreUnavailableError{Path: "/data/tasks.json", Reason: "file does not exist"}
	want := "task store unavailable (/data/tasks.json): file does not exist"
	if got := err.Error(); got != want {
		t.Errorf("StoreUnavailableError.Error() = %q, want %q", got, want)
	}
}

func TestTaskExistsError(t *testing.T) {
	err := TaskExistsError{ID: "TASK-1a2b"}
	want := "task already exists: TASK-1a2b"
	if got := err.Error(); got != want {
		t.Errorf("TaskExistsError.Error() = %q, want %q", got, want)
	}
}

func TestNetworkError(t *testing.T) {
	withStatus := NetworkError{Op: "create task", StatusCode: 500}
	if got, want := withStatus.Error(), "create task: server returned status 500"; got != want {
		t.Errorf("NetworkError.Error() = %q, want %q", got, want)
	}

	transport := NetworkError{Op: "list tasks", Cause: StoreUnavailableError{Path: "x", Reason: "y"}}
	if got, want := transport.Error(), "list tasks: task store unavailable (x): y"; got != want {
		t.Errorf("NetworkError.Error() = %q, want %q", got, want)
	}
}

func TestCredentialRejectedError(t *testing.T) {
	if got, want := (CredentialRejectedError{}).Error(), "invalid credentials"; got != want {
		t.Errorf("CredentialRejectedError.Error() = %q, want %q", got, want)
	}
}

func TestMissingFieldError(t *testing.T) {
	err := MissingFieldError{Field: "platform"}
	want := "required field is empty: platform"
	if got := err.Error(); got != want {
		t.Errorf("MissingFieldError.Error() = %q, want %q", got, want)
	}
}
