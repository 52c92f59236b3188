package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Session holds the client's credentials for the dashboard backend.
// It is constructed explicitly and handed to NewClient; nothing in
// this package reads tokens from globals. Tokens persist in a JSON
// state file so separate command invocations share one login.
type Session struct {
	path    string
	tokens  sessionTokens
	cleared bool
	mu      sync.Mutex
}

type sessionTokens struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	SavedAt      time.Time `json:"saved_at"`
}

// LoadSession opens the session stored in the default state file,
// creating an empty (unauthenticated) session when none exists.
func LoadSession() (*Session, error) {
	path, err := sessionFilePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session file path: %w", err)
	}
	return OpenSession(path)
}

// OpenSession opens the session stored at path. A missing file is not
// an error; it just means nobody is logged in yet.
func OpenSession(path string) (*Session, error) {
	s := &Session{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	if err := json.Unmarshal(data, &s.tokens); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return s, nil
}

// SetTokens stores a fresh token pair and persists it.
func (s *Session) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = sessionTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		SavedAt:      time.Now(),
	}
	s.cleared = false

	data, err := json.MarshalIndent(s.tokens, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// AccessToken returns the stored access token, empty when logged out.
func (s *Session) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens.AccessToken
}

// RefreshToken returns the stored refresh token.
func (s *Session) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens.RefreshToken
}

// Authenticated reports whether the session holds an access token.
func (s *Session) Authenticated() bool {
	return s.AccessToken() != ""
}

// Clear wipes both stored tokens and deletes the state file. It
// reports whether it actually cleared anything: repeated calls after
// the first are no-ops, so session expiry is handled exactly once.
func (s *Session) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cleared || (s.tokens.AccessToken == "" && s.tokens.RefreshToken == "") {
		return false
	}

	s.tokens = sessionTokens{}
	s.cleared = true

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove session file", "path", s.path, "error", err)
	}
	return true
}

func sessionFilePath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "finsight", "session.json"), nil
}
