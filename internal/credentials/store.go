// Package credentials persists the session token and user profile across
// process restarts, playing the role browser local storage plays for the web
// client.
package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"healthshop-client/internal/domain"
)

// Credentials is the durable session state.
type Credentials struct {
	Token string              `json:"token"`
	User  domain.AuthResponse `json:"user"`
}

// Store reads and writes credentials under a fixed directory. Safe for
// concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a Store rooted at dir. The directory is created lazily on
// the first Save.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "credentials.json")}
}

// Save writes creds to disk, replacing any previous session.
func (s *Store) Save(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Load reads the saved credentials. The second return value is false when no
// session is stored or the file cannot be parsed.
func (s *Store) Load() (Credentials, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Credentials{}, false
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, false
	}
	if creds.Token == "" {
		return Credentials{}, false
	}
	return creds, true
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token() string {
	creds, ok := s.Load()
	if !ok {
		return ""
	}
	return creds.Token
}

// Clear removes the stored credentials. Missing state is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
