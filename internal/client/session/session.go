// Package session owns the authentication state machine. It is the only
// writer of the token besides the transport's 401 interceptor, and every
// screen gates on it before rendering.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avanags/fitpulse/internal/client/api"
	"github.com/avanags/fitpulse/internal/client/models"
	"github.com/avanags/fitpulse/internal/client/store"
	"github.com/avanags/fitpulse/internal/logging"
)

type State int

const (
	StateUninitialized State = iota
	StateChecking
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// AuthError is a recoverable authentication failure (bad credentials, server
// rejected the registration). It is shown inline; the session stays anonymous.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// authResponse is the body of a successful login or registration.
type authResponse struct {
	Token string             `json:"token"`
	User  models.UserProfile `json:"user"`
}

// Manager holds the session state machine. It implements api.Credentials so
// the transport can read and clear the token, and its HandleUnauthorized is
// the transport's teardown callback, which keeps navigation concerns out of
// the transport itself.
type Manager struct {
	mu    sync.Mutex
	state State
	token string
	user  models.UserProfile

	store store.TokenStore
	api   *api.Client
	log   logging.Logger
}

func NewManager(ts store.TokenStore, log logging.Logger) *Manager {
	return &Manager{state: StateUninitialized, store: ts, log: log}
}

// Bind attaches the transport client. The manager and the client reference
// each other, so the client is constructed second and bound here.
func (m *Manager) Bind(c *api.Client) {
	m.api = c
}

// Token implements api.Credentials.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// ClearToken implements api.Credentials. Clearing an already-empty token is a
// no-op, so concurrent 401s are harmless.
func (m *Manager) ClearToken() {
	m.mu.Lock()
	already := m.token == ""
	m.token = ""
	m.mu.Unlock()

	if !already {
		if err := m.store.Clear(context.Background()); err != nil {
			m.log.Error(context.Background(), "failed to clear stored token", "error", err)
		}
	}
}

// HandleUnauthorized tears the session down after a 401 from any endpoint.
// The transport guarantees it fires at most once per authentication epoch.
func (m *Manager) HandleUnauthorized() {
	m.ClearToken()

	m.mu.Lock()
	m.user = nil
	m.state = StateAnonymous
	m.mu.Unlock()
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Loading is true until the startup session check has settled. Screens that
// require a session block on it before rendering.
func (m *Manager) Loading() bool {
	s := m.State()
	return s == StateUninitialized || s == StateChecking
}

func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// User returns a copy of the current user, or nil when anonymous.
func (m *Manager) User() models.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := make(models.UserProfile, len(m.user))
	for k, v := range m.user {
		u[k] = v
	}
	return u
}

// Restore reconstructs the session from the persisted token. No stored token
// means anonymous; a token whose exp claim is already past is discarded
// without a round trip; anything else is verified against the server rather
// than trusted blindly.
func (m *Manager) Restore(ctx context.Context) {
	token, err := m.store.Load(ctx)
	if err != nil {
		m.log.Error(ctx, "failed to load stored token", "error", err)
		m.setAnonymous()
		return
	}
	if token == "" {
		m.setAnonymous()
		return
	}
	if tokenExpired(token) {
		m.log.Info(ctx, "stored token expired, discarding")
		if err := m.store.Clear(ctx); err != nil {
			m.log.Error(ctx, "failed to clear stored token", "error", err)
		}
		m.setAnonymous()
		return
	}

	m.mu.Lock()
	m.token = token
	m.state = StateChecking
	m.mu.Unlock()

	var user models.UserProfile
	if err := m.api.Get(ctx, "/api/auth/profile", &user); err != nil {
		m.log.Warn(ctx, "session check failed", "error", err)
		m.ClearToken()
		m.setAnonymous()
		return
	}

	m.mu.Lock()
	m.user = user
	m.state = StateAuthenticated
	m.mu.Unlock()
	m.api.ResetAuthGate()
	m.log.Info(ctx, "session restored", "user", user.Email())
}

func (m *Manager) setAnonymous() {
	m.mu.Lock()
	m.user = nil
	m.state = StateAnonymous
	m.mu.Unlock()
}

// tokenExpired reports whether the token is a JWT whose exp claim is in the
// past. The claim is read without signature verification; it only short-cuts
// an otherwise guaranteed round-trip failure. Opaque tokens pass through.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Login authenticates with email and password. On failure the session stays
// anonymous and the error is returned as a value for the caller to present.
// The password is never stored or logged.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := m.api.Post(ctx, "/api/auth/login", body, &resp); err != nil {
		return authFailure("Login failed", err)
	}
	return m.establish(ctx, resp)
}

// Register validates the profile draft client-side, then creates the account.
// A validation failure is returned before any network call is made.
func (m *Manager) Register(ctx context.Context, draft models.RegisterDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	var resp authResponse
	if err := m.api.Post(ctx, "/api/auth/register", draft, &resp); err != nil {
		return authFailure("Registration failed", err)
	}
	return m.establish(ctx, resp)
}

// establish installs a fresh token and user after login or registration.
func (m *Manager) establish(ctx context.Context, resp authResponse) error {
	if resp.Token == "" {
		return &AuthError{Message: "server returned no token"}
	}

	if err := m.store.Save(ctx, resp.Token); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}

	m.mu.Lock()
	m.token = resp.Token
	m.user = resp.User
	m.state = StateAuthenticated
	m.mu.Unlock()

	m.api.ResetAuthGate()
	return nil
}

// authFailure maps server rejections to inline AuthErrors; transport-level
// failures pass through unchanged.
func authFailure(fallback string, err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = fallback
		}
		return &AuthError{Message: msg}
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return &AuthError{Message: fallback}
	}
	return err
}

// Logout always succeeds: it clears the persisted token and the in-memory
// user and drops to anonymous.
func (m *Manager) Logout() {
	m.ClearToken()

	m.mu.Lock()
	m.user = nil
	m.state = StateAnonymous
	m.mu.Unlock()
}

// UpdateUser merges a patch into the in-memory user without a network call.
// Profile screens call it after their own save returns a fresh copy. It does
// not touch authentication state.
func (m *Manager) UpdateUser(patch map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return
	}
	m.user.Merge(patch)
}

// FetchProfile reads the user's own profile for the profile screen.
func (m *Manager) FetchProfile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := m.api.Get(ctx, "/api/profile", &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SaveProfile writes the edited profile back and, on success, feeds the
// server's fresh copy into the in-memory user.
func (m *Manager) SaveProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	var updated models.UserProfile
	if err := m.api.Put(ctx, "/api/profile", profile, &updated); err != nil {
		return nil, err
	}
	m.UpdateUser(updated)
	return updated, nil
}
