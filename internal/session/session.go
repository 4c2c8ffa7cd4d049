// Package session implements the timed mock login: it validates input
// shape, waits like a network round trip would, fabricates a signed token
// and stores the session blob. Nothing ever verifies credentials — there is
// no account backend behind this.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/souconcursado/core/internal/models"
	"github.com/souconcursado/core/internal/storage"
)

// signingKey signs the fabricated session tokens. It guards nothing; it
// only makes the tokens look like the real ones the app will get once an
// account backend exists.
var signingKey = []byte("souconcursado-local-mock-signing-key")

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	ErrNameRequired  = errors.New("session: name is required")
	ErrEmailRequired = errors.New("session: email is required")
	ErrEmailInvalid  = errors.New("session: email is invalid")
	ErrPasswordShort = errors.New("session: password must be at least 6 characters")
)

// DefaultDelay mimics the latency of the login round trip.
const DefaultDelay = 1400 * time.Millisecond

// Manager owns the stored session record.
type Manager struct {
	store storage.Store
	delay time.Duration
}

// Option configures a Manager.
type Option func(*Manager)

// WithDelay overrides the simulated login latency. Tests pass zero.
func WithDelay(d time.Duration) Option {
	return func(m *Manager) { m.delay = d }
}

func NewManager(store storage.Store, opts ...Option) *Manager {
	m := &Manager{store: store, delay: DefaultDelay}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Login validates the credentials' shape, fabricates a session and persists
// it. The display name defaults to "Usuário" since login has no account to
// read one from.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if err := validate(email, password); err != nil {
		return nil, err
	}
	return m.establish(ctx, "Usuário", email)
}

// Register behaves like Login but requires a name and uses it.
func (m *Manager) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := validate(email, password); err != nil {
		return nil, err
	}
	return m.establish(ctx, name, email)
}

// Resume returns the stored session, or storage.ErrNotFound when nobody is
// logged in.
func (m *Manager) Resume(ctx context.Context) (*models.Session, error) {
	raw, err := m.store.Get(ctx, storage.KeySession)
	if err != nil {
		return nil, err
	}
	var s models.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decode stored session: %w", err)
	}
	return &s, nil
}

// Logout discards the stored session.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Remove(ctx, storage.KeySession)
}

func (m *Manager) establish(ctx context.Context, name, email string) (*models.Session, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	email = strings.ToLower(strings.TrimSpace(email))
	token, err := fabricateToken(email)
	if err != nil {
		return nil, fmt.Errorf("fabricate token: %w", err)
	}

	s := &models.Session{
		Token:    token,
		LoggedIn: true,
		User:     models.User{Name: name, Email: email},
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeySession, string(raw)); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return s, nil
}

func validate(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	if !emailRe.MatchString(email) {
		return ErrEmailInvalid
	}
	if len(password) < 6 {
		return ErrPasswordShort
	}
	return nil
}

func fabricateToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(72 * time.Hour).Unix(),
		"mock": true,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey)
}
