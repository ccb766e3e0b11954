// Package auth holds the client-side session: who is logged in and with what
// token. The durable half lives in the credentials store so a session survives
// process restarts.
package auth

import (
	"context"
	"sync"

	"healthshop-client/internal/api"
	"healthshop-client/internal/credentials"
	"healthshop-client/internal/domain"
)

type authAPI interface {
	Login(ctx context.Context, in api.LoginInput) (*domain.AuthResponse, error)
	Register(ctx context.Context, in api.RegisterInput) (*domain.AuthResponse, error)
}

// Store is the single source of truth for the current session.
type Store struct {
	api   authAPI
	creds *credentials.Store

	mu            sync.RWMutex
	user          *domain.AuthResponse
	token         string
	authenticated bool
}

// New builds a Store. A previously saved token marks the session authenticated
// immediately; the profile payload is loaded on demand via LoadUser.
func New(a authAPI, creds *credentials.Store) *Store {
	s := &Store{api: a, creds: creds}
	if token := creds.Token(); token != "" {
		s.token = token
		s.authenticated = true
	}
	return s
}

// Login exchanges credentials for a session. On failure the error is returned
// unchanged and session state is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	res, err := s.api.Login(ctx, api.LoginInput{Email: email, Password: password})
	if err != nil {
		return err
	}
	return s.establish(*res)
}

// Register creates an account and starts a session with the returned payload,
// identical to a login response.
func (s *Store) Register(ctx context.Context, in api.RegisterInput) error {
	res, err := s.api.Register(ctx, in)
	if err != nil {
		return err
	}
	return s.establish(*res)
}

func (s *Store) establish(res domain.AuthResponse) error {
	if err := s.creds.Save(credentials.Credentials{Token: res.Token, User: res}); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = &res
	s.token = res.Token
	s.authenticated = true
	s.mu.Unlock()
	return nil
}

// Logout clears the durable credentials and resets the in-memory session.
// It is side-effect only and cannot fail.
func (s *Store) Logout() {
	_ = s.creds.Clear()
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.authenticated = false
	s.mu.Unlock()
}

// LoadUser rehydrates the in-memory session from durable storage. Idempotent;
// a no-op when nothing is saved.
func (s *Store) LoadUser() {
	creds, ok := s.creds.Load()
	if !ok {
		return
	}
	s.mu.Lock()
	user := creds.User
	s.user = &user
	s.token = creds.Token
	s.authenticated = true
	s.mu.Unlock()
}

// IsAuthenticated reports whether a session is active. Note the token may have
// been purged by the HTTP layer after a 401; SyncWithStorage picks that up.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// RequireSession returns domain.ErrNoSession when no session is active, for
// callers gating operations that need a logged-in user.
func (s *Store) RequireSession() error {
	if !s.IsAuthenticated() {
		return domain.ErrNoSession
	}
	return nil
}

// SyncWithStorage drops the in-memory session if the durable credentials are
// gone, e.g. after the HTTP layer observed a 401 on any request.
func (s *Store) SyncWithStorage() {
	if s.creds.Token() != "" {
		return
	}
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.authenticated = false
	s.mu.Unlock()
}

// User returns the stored profile payload, or nil before LoadUser/Login.
func (s *Store) User() *domain.AuthResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the session's bearer token, or "".
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
