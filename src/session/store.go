package session

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"tourdesk/src/models"
)

// Store holds the auth token and cached profile for the signed-in operator.
// There are two scopes, matching "remember me" semantics: the in-memory scope
// lives for the process, the persistent scope is a JSON file reloaded on the
// next start. Clear wipes both. Expiry is not tracked here; it is discovered
// reactively when a request comes back 401/403.
type Store struct {
	mu       sync.Mutex
	path     string
	token    string
	profile  *models.User
	remember bool
}

type persisted struct {
	Token    string       `json:"token"`
	LoggedIn bool         `json:"logged_in"`
	Profile  *models.User `json:"profile,omitempty"`
}

func NewStore(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

func (s *Store) load() {
	if s.path == "" {
		return
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var p persisted
	if err := json.Unmarshal(b, &p); err != nil {
		log.Printf("session: ignoring unreadable session file %s: %s\n", s.path, err.Error())
		return
	}
	if !p.LoggedIn || p.Token == "" {
		return
	}
	s.token = p.Token
	s.profile = p.Profile
	s.remember = true
}

func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *Store) Profile() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *Store) Set(token string, profile *models.User, remember bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.profile = profile
	s.remember = remember
	if !remember || s.path == "" {
		return
	}
	b, err := json.Marshal(persisted{Token: token, LoggedIn: true, Profile: profile})
	if err != nil {
		log.Printf("session: marshal: %s\n", err.Error())
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		log.Printf("session: mkdir: %s\n", err.Error())
		return
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		log.Printf("session: write: %s\n", err.Error())
	}
}

// Clear removes the session from both scopes so a stale token cannot come
// back on the next start.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = nil
	s.remember = false
	if s.path == "" {
		return
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		log.Printf("session: remove: %s\n", err.Error())
	}
}
