//nolint:testpackage // Tests require internal access for thorough testing
package auth

import (
	"testing"

	"github.com/dcm-mcn/console/internal/errors"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantName string
		wantID   string
		rejected bool
	}{
		{name: "admin account", email: "admin@dcm.mcn", password: "admin123", wantName: "Admin", wantID: "1"},
		{name: "admin account wrong password still valid email", email: "admin@dcm.mcn", password: "wrong", wantName: "admin", wantID: "2"},
		{name: "any plausible email", email: "foo@bar.com", password: "x", wantName: "foo", wantID: "2"},
		{name: "not an email", email: "notanemail", password: "x", rejected: true},
		{name: "empty password", email: "foo@bar.com", password: "", rejected: true},
		{name: "empty everything", email: "", password: "", rejected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := Login(tt.email, tt.password)
			if tt.rejected {
				if err == nil {
					t.Fatalf("Login(%q, %q) succeeded, want rejection", tt.email, tt.password)
				}
				if _, ok := err.(errors.CredentialRejectedError); !ok {
					t.Errorf("Login() error = %T, want CredentialRejectedError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login(%q, %q) error = %v", tt.email, tt.password, err)
			}
			if user.Name != tt.wantName {
				t.Errorf("user.Name = %q, want %q", user.Name, tt.wantName)
			}
			if user.ID != tt.wantID {
				t.Errorf("user.ID = %q, want %q", user.ID, tt.wantID)
			}
			if user.Email != tt.email {
				t.Errorf("user.Email = %q, want %q", user.Email, tt.email)
			}
		})
	}
}
