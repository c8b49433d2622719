package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/schedassist/cli/internal/models"
)

// Store holds the current authentication token and user profile. The
// token is persisted to a file between runs; the profile is memory-only
// and repopulated by the auth check on startup. The pair is either fully
// present or fully absent once authentication settles.
type Store struct {
	mu        sync.RWMutex
	token     string
	user      *models.User
	tokenPath string
	logger    *zap.Logger
}

// NewStore constructs a session store persisting the token at tokenPath.
func NewStore(tokenPath string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{tokenPath: tokenPath, logger: logger}
}

// Load reads a previously persisted token. A missing file just means no
// session; any other read error is logged and treated the same way.
func (s *Store) Load() {
	data, err := os.ReadFile(s.tokenPath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read persisted token", zap.Error(err))
		}
		return
	}
	s.mu.Lock()
	s.token = strings.TrimSpace(string(data))
	s.mu.Unlock()
}

// Token returns the current bearer token, empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current profile, nil when the auth check has not run.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether both token and profile are present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// SetToken installs a freshly issued token and persists it.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0o700); err != nil {
		s.logger.Warn("failed to create token directory", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.tokenPath, []byte(token), 0o600); err != nil {
		s.logger.Warn("failed to persist token", zap.Error(err))
	}
}

// SetUser installs the profile returned by the auth check.
func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

// Clear tears the session down: token and profile are dropped and the
// persisted token file is removed. Called on logout and on any auth
// failure from the gateway.
func (s *Store) Clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := os.Remove(s.tokenPath); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove persisted token", zap.Error(err))
	}
}
