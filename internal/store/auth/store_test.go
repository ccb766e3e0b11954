package auth

import (
	"context"
	"errors"
	"testing"

	"healthshop-client/internal/api"
	"healthshop-client/internal/credentials"
	"healthshop-client/internal/domain"
)

type stubAPI struct {
	loginRes     *domain.AuthResponse
	loginErr     error
	lastLogin    api.LoginInput
	registerRes  *domain.AuthResponse
	registerErr  error
	lastRegister api.RegisterInput
}

func (s *stubAPI) Login(_ context.Context, in api.LoginInput) (*domain.AuthResponse, error) {
	s.lastLogin = in
	return s.loginRes, s.loginErr
}

func (s *stubAPI) Register(_ context.Context, in api.RegisterInput) (*domain.AuthResponse, error) {
	s.lastRegister = in
	return s.registerRes, s.registerErr
}

func session() *domain.AuthResponse {
	return &domain.AuthResponse{
		Token:     "tok-1",
		Type:      "Bearer",
		UserID:    42,
		Email:     "user@example.com",
		FirstName: "Pat",
		Role:      domain.RoleUser,
	}
}

func TestLoginEstablishesSession(t *testing.T) {
	creds := credentials.NewStore(t.TempDir())
	s := New(&stubAPI{loginRes: session()}, creds)

	if s.IsAuthenticated() {
		t.Fatal("fresh store must not be authenticated")
	}
	if err := s.Login(context.Background(), "user@example.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.IsAuthenticated() {
		t.Fatal("expected authenticated session")
	}
	if got := s.User(); got == nil || got.Email != "user@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if creds.Token() != "tok-1" {
		t.Fatalf("expected token persisted, got %q", creds.Token())
	}
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	creds := credentials.NewStore(t.TempDir())
	s := New(&stubAPI{loginErr: errors.New("Invalid email or password")}, creds)

	if err := s.Login(context.Background(), "user@example.com", "wrong"); err == nil {
		t.Fatal("expected error")
	}
	if s.IsAuthenticated() {
		t.Fatal("failed login must not authenticate")
	}
	if creds.Token() != "" {
		t.Fatal("failed login must not persist a token")
	}
}

func TestRegisterActsAsLogin(t *testing.T) {
	creds := credentials.NewStore(t.TempDir())
	s := New(&stubAPI{registerRes: session()}, creds)

	err := s.Register(context.Background(), api.RegisterInput{Email: "user@example.com", Password: "pw", FirstName: "Pat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.IsAuthenticated() {
		t.Fatal("expected authenticated session after register")
	}
	if s.Token() != "tok-1" {
		t.Fatalf("unexpected token %q", s.Token())
	}
}

func TestLogoutClearsDurableCredentials(t *testing.T) {
	creds := credentials.NewStore(t.TempDir())
	s := New(&stubAPI{loginRes: session()}, creds)
	if err := s.Login(context.Background(), "user@example.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Logout()
	if s.IsAuthenticated() {
		t.Fatal("expected logged out")
	}
	if s.User() != nil {
		t.Fatal("expected user cleared")
	}
	if creds.Token() != "" {
		t.Fatal("expected durable token removed")
	}
}

func TestNewRestoresSavedSession(t *testing.T) {
	dir := t.TempDir()
	creds := credentials.NewStore(dir)
	first := New(&stubAPI{loginRes: session()}, creds)
	if err := first.Login(context.Background(), "user@example.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// a new process sees the persisted token
	second := New(&stubAPI{}, credentials.NewStore(dir))
	if !second.IsAuthenticated() {
		t.Fatal("expected restored session")
	}
	if second.User() != nil {
		t.Fatal("profile is loaded on demand, not at construction")
	}
	second.LoadUser()
	if got := second.User(); got == nil || got.UserID != 42 {
		t.Fatalf("unexpected rehydrated user: %+v", got)
	}
}

func TestSyncWithStorageDropsPurgedSession(t *testing.T) {
	creds := credentials.NewStore(t.TempDir())
	s := New(&stubAPI{loginRes: session()}, creds)
	if err := s.Login(context.Background(), "user@example.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the HTTP layer purges credentials after a 401
	if err := creds.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	s.SyncWithStorage()
	if s.IsAuthenticated() {
		t.Fatal("expected in-memory session dropped after purge")
	}
}

func TestRequireSession(t *testing.T) {
	creds := credentials.NewStore(t.TempDir())
	s := New(&stubAPI{loginRes: session()}, creds)
	if err := s.RequireSession(); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected domain.ErrNoSession, got %v", err)
	}
	if err := s.Login(context.Background(), "user@example.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.RequireSession(); err != nil {
		t.Fatalf("unexpected error with active session: %v", err)
	}
}
