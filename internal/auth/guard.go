package auth

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/store"
)

const (
	maxLoginAttempts = 5
	lockoutDuration  = 30 * time.Second
)

var (
	ErrInvalidCredentials = errors.New("Credenciais inválidas")
	ErrSignupDisabled     = errors.New("Cadastro de novos afiliados está desativado")
	ErrEmailTaken         = errors.New("Este email já está cadastrado")
)

// LockedOutError blocks login retries until the cooldown elapses.
type LockedOutError struct {
	RetryAfter time.Duration
}

func (e *LockedOutError) Error() string {
	return fmt.Sprintf("Muitas tentativas de login. Tente novamente em %d segundos.", e.RetryAfterSeconds())
}

func (e *LockedOutError) RetryAfterSeconds() int {
	return int(math.Ceil(e.RetryAfter.Seconds()))
}

type attemptState struct {
	failures     int
	lockoutUntil int64 // unix milliseconds, zero when open
}

// Guard performs credential login with a per-session failed-attempt lockout.
// Attempt counters and logged-in sessions are ephemeral, scoped to this
// process; only the credential collection lives in the store. After
// maxLoginAttempts consecutive failures a session is locked for
// lockoutDuration, during which attempts are rejected without touching the
// counter or the store.
type Guard struct {
	store store.Store
	now   func() time.Time

	mu       sync.Mutex
	attempts map[string]*attemptState
	sessions map[string]model.User
}

func NewGuard(st store.Store) *Guard {
	return &Guard{
		store:    st,
		now:      time.Now,
		attempts: make(map[string]*attemptState),
		sessions: make(map[string]model.User),
	}
}

// Login compares the given secret against the stored digest for the email
// (matched case-insensitively). Inactive users cannot log in. The returned
// user never carries the digest.
func (g *Guard) Login(ctx context.Context, sessionID, email, password string) (*model.User, error) {
	g.mu.Lock()
	state, ok := g.attempts[sessionID]
	if !ok {
		state = &attemptState{}
		g.attempts[sessionID] = state
	}
	nowMillis := g.now().UnixMilli()
	if nowMillis < state.lockoutUntil {
		retry := time.Duration(state.lockoutUntil-nowMillis) * time.Millisecond
		g.mu.Unlock()
		return nil, &LockedOutError{RetryAfter: retry}
	}
	g.mu.Unlock()

	user, err := g.store.GetUserByEmail(ctx, email)
	switch {
	case err == nil && user.IsActive && user.PasswordHash == Digest(password):
		g.mu.Lock()
		state.failures = 0
		state.lockoutUntil = 0
		sanitized := user.Sanitized()
		g.sessions[sessionID] = sanitized
		g.mu.Unlock()
		result := sanitized
		return &result, nil

	case err != nil && !errors.Is(err, store.ErrUserNotFound):
		// Unreadable credential store: fail the attempt without charging
		// the counter, the caller may retry.
		return nil, fmt.Errorf("failed to load credentials: %w", err)

	default:
		return nil, g.recordFailure(sessionID, email, state)
	}
}

func (g *Guard) recordFailure(sessionID, email string, state *attemptState) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	state.failures++
	if state.failures >= maxLoginAttempts {
		state.lockoutUntil = g.now().Add(lockoutDuration).UnixMilli()
		slog.Warn("login lockout triggered",
			"session_id", sessionID,
			"email", strings.ToLower(email),
			"failures", state.failures,
		)
		return &LockedOutError{RetryAfter: lockoutDuration}
	}
	return ErrInvalidCredentials
}

// Logout drops the session's logged-in user. Attempt counters are untouched.
func (g *Guard) Logout(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.sessions, sessionID)
}

// CurrentUser returns the user logged in on this session, or nil.
func (g *Guard) CurrentUser(sessionID string) *model.User {
	g.mu.Lock()
	defer g.mu.Unlock()
	user, ok := g.sessions[sessionID]
	if !ok {
		return nil
	}
	return &user
}

// Signup registers a new active affiliate. It is refused while signup is
// disabled in settings or when the email is already registered (matched
// case-insensitively).
func (g *Guard) Signup(ctx context.Context, email, password string) (*model.User, error) {
	settings, err := g.store.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = model.DefaultSettings()
	}
	if !settings.AllowSignup {
		return nil, ErrSignupDisabled
	}
	return g.CreateAffiliate(ctx, email, password)
}

func generateAffiliateID() (string, error) {
	bytes := make([]byte, 5)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	code := base32.StdEncoding.EncodeToString(bytes)
	code = strings.TrimRight(code, "=")
	return "affiliate-" + strings.ToLower(code[:8]), nil
}
