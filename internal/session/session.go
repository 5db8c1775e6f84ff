// Package session persists the logged-in user's identity across runs.
// The session is an explicit object: initialized at startup by reading
// persisted state, mutated only by login and logout, torn down on logout.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/dcm-mcn/console/internal/auth"
)

const sessionFile = "user.json"

// State is the on-disk shape of an active session.
type State struct {
	User     auth.User `json:"user"`
	LoggedIn time.Time `json:"logged_in"`
}

// Session tracks the current user for one process, backed by a state file.
type Session struct {
	basePath string
	current  *auth.User
}

// Open initializes a session from persisted state in basePath. A missing or
// corrupt state file yields a logged-out session; corrupt files are removed.
func Open(basePath string) *Session {
	s := &Session{basePath: basePath}

	data, err := os.ReadFile(s.path())
	if err != nil {
		return s
	}

	var state State
	if unmarshalErr := json.Unmarshal(data, &state); unmarshalErr != nil {
		os.Remove(s.path())
		return s
	}

	s.current = &state.User
	return s
}

// Current returns the logged-in user, or nil when logged out.
func (s *Session) Current() *auth.User {
	return s.current
}

// Login authenticates the pair and, on success, persists the identity.
func (s *Session) Login(email, password string) (*auth.User, error) {
	user, err := auth.Login(email, password)
	if err != nil {
		return nil, err
	}

	if saveErr := s.save(user); saveErr != nil {
		return nil, saveErr
	}

	s.current = user
	return user, nil
}

// Logout clears the in-memory user and deletes the state file.
func (s *Session) Logout() error {
	s.current = nil
	err := os.Remove(s.path())
	if os.IsNotExist(err) {
		return nil // Already logged out, not an error
	}
	return err
}

func (s *Session) path() string {
	return filepath.Join(s.basePath, sessionFile)
}

func (s *Session) save(user *auth.User) error {
	//nolint:gosec // G301: 0755 is appropriate for the user-owned state directory
	if mkdirErr := os.MkdirAll(s.basePath, 0o755); mkdirErr != nil {
		return mkdirErr
	}

	state := State{User: *user, LoggedIn: time.Now().UTC()}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	//nolint:gosec // G306: 0644 is appropriate for a demo identity file
	return os.WriteFile(s.path(), data, 0o644)
}
