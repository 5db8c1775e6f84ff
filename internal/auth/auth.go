// Package auth implements the console's demo login rules.
package auth

import (
	"strings"

	"github.com/dcm-mcn/console/internal/errors"
)

const (
	defaultEmail    = "admin@dcm.mcn"
	defaultPassword = "admin123"
)

// User is the identity produced by a successful login.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Login checks an email/password pair against the accepted patterns and
// returns the resulting identity. The built-in admin account wins; any
// other syntactically-plausible email with a non-empty password is accepted
// as a demo user named after the email's local part. Everything else is
// rejected with a generic message.
func Login(email, password string) (*User, error) {
	if email == defaultEmail && password == defaultPassword {
		return &User{ID: "1", Email: defaultEmail, Name: "Admin"}, nil
	}

	if strings.Contains(email, "@") && password != "" {
		return &User{ID: "2", Email: email, Name: strings.SplitN(email, "@", 2)[0]}, nil
	}

	return nil, errors.CredentialRejectedError{}
}
