package session

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/souconcursado/core/internal/storage"
)

func newTestManager() *Manager {
	return NewManager(storage.NewMemoryStore(), WithDelay(0))
}

func TestLoginValidation(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"missing email", "", "secret1", ErrEmailRequired},
		{"bad email", "not-an-email", "secret1", ErrEmailInvalid},
		{"no at sign", "user.example.com", "secret1", ErrEmailInvalid},
		{"short password", "user@example.com", "12345", ErrPasswordShort},
	}

	for _, tt := range tests {
		if _, err := m.Login(ctx, tt.email, tt.password); !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: Login err = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestRegisterRequiresName(t *testing.T) {
	m := newTestManager()
	if _, err := m.Register(context.Background(), "  ", "user@example.com", "secret1"); !errors.Is(err, ErrNameRequired) {
		t.Errorf("Register without name: err = %v, want ErrNameRequired", err)
	}
}

func TestLoginFabricatesSignedToken(t *testing.T) {
	m := newTestManager()
	s, err := m.Login(context.Background(), "User@Example.com", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if !s.LoggedIn {
		t.Error("session not marked logged in")
	}
	if s.User.Email != "user@example.com" {
		t.Errorf("email = %q, want lowercased trimmed form", s.User.Email)
	}
	if s.User.Name != "Usuário" {
		t.Errorf("name = %q, want the login default", s.User.Name)
	}

	token, err := jwt.Parse(s.Token, func(*jwt.Token) (interface{}, error) {
		return signingKey, nil
	})
	if err != nil {
		t.Fatalf("parse fabricated token: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["sub"] != "user@example.com" {
		t.Errorf("token sub = %v", claims["sub"])
	}
	if claims["mock"] != true {
		t.Error("fabricated token must be marked as mock")
	}
	if claims["jti"] == "" || claims["jti"] == nil {
		t.Error("token has no jti")
	}
}

func TestResumeAndLogout(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	if _, err := m.Resume(ctx); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Resume before login: err = %v, want ErrNotFound", err)
	}

	logged, err := m.Register(ctx, "Ana", "ana@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	resumed, err := m.Resume(ctx)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if resumed.Token != logged.Token || resumed.User != logged.User {
		t.Errorf("Resume = %+v, want the stored session %+v", resumed, logged)
	}

	if err := m.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := m.Resume(ctx); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Resume after logout: err = %v, want ErrNotFound", err)
	}
}

func TestLoginHonorsContextDuringDelay(t *testing.T) {
	m := NewManager(storage.NewMemoryStore()) // real 1.4s delay
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.Login(ctx, "user@example.com", "secret1"); !errors.Is(err, context.Canceled) {
		t.Errorf("Login on canceled context: err = %v, want context.Canceled", err)
	}
}
