// Package auth gates the admin mutation surface behind a credential check.
//
// The gate is a UI state machine, not an access-control mechanism: the
// identity is stored in plaintext next to the content it guards, and anyone
// with access to the storage can read or change it. It exists so a single
// operator can toggle the admin surface on and off.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/modernscene/sitekeeper/internal/kvstore"
	"github.com/modernscene/sitekeeper/internal/models"
)

const minPasswordLen = 4

var (
	// ErrEmptyCredentials is returned when either field of a credential
	// update is blank.
	ErrEmptyCredentials = errors.New("username and password must not be empty")
	// ErrPasswordTooShort is returned when the new password is shorter than
	// four characters.
	ErrPasswordTooShort = errors.New("password must be at least 4 characters long")
)

// Gate owns the admin identity and the session flag, persisting both.
type Gate struct {
	kv  kvstore.Store
	log *zap.Logger

	mu            sync.Mutex
	user          models.AdminUser
	authenticated bool
}

// New constructs a Gate over the given storage backend. The gate starts on
// the default identity, logged out; call Hydrate to load persisted state.
func New(kv kvstore.Store, log *zap.Logger) *Gate {
	return &Gate{kv: kv, log: log, user: models.DefaultAdminUser()}
}

// Hydrate loads the persisted identity and session flag. Each key falls back
// to its built-in default independently; hydration never fails the caller.
func (g *Gate) Hydrate(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	value, ok, err := g.kv.Get(ctx, kvstore.KeyAdminUser)
	switch {
	case err != nil:
		g.log.Error("failed to read admin identity, using default", zap.Error(err))
		g.user = models.DefaultAdminUser()
	case ok:
		var user models.AdminUser
		if err := json.Unmarshal([]byte(value), &user); err != nil {
			g.log.Error("malformed admin identity, using default", zap.Error(err))
			g.user = models.DefaultAdminUser()
		} else {
			g.user = user
		}
	default:
		g.user = models.DefaultAdminUser()
	}

	flag, ok, err := g.kv.Get(ctx, kvstore.KeyAuthFlag)
	if err != nil {
		g.log.Error("failed to read session flag, assuming logged out", zap.Error(err))
		g.authenticated = false
		return
	}
	g.authenticated = ok && flag == "true"
}

// Login matches the submitted credentials against the stored identity,
// case-sensitively. On a match the session flag is set and persisted and
// Login reports true. On a mismatch nothing changes and no write occurs.
// Logging in while already authenticated re-confirms the session.
func (g *Gate) Login(ctx context.Context, username, password string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if username != g.user.Username || password != g.user.Password {
		return false, nil
	}
	if err := g.kv.Set(ctx, kvstore.KeyAuthFlag, "true"); err != nil {
		g.log.Error("failed to persist session flag", zap.Error(err))
		return false, err
	}
	g.authenticated = true
	return true, nil
}

// Logout unconditionally clears the session flag and removes its persisted
// marker.
func (g *Gate) Logout(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.authenticated = false
	if err := g.kv.Delete(ctx, kvstore.KeyAuthFlag); err != nil {
		g.log.Error("failed to clear session flag", zap.Error(err))
		return err
	}
	return nil
}

// UpdateCredentials replaces the admin identity wholesale and persists it.
// Both fields must be non-empty and the password at least four characters.
func (g *Gate) UpdateCredentials(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrEmptyCredentials
	}
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	next := g.user
	next.Username = username
	next.Password = password
	return g.persistUser(ctx, next)
}

// UpdateAvatar stores a new avatar data URI on the admin identity.
func (g *Gate) UpdateAvatar(ctx context.Context, dataURI string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	next := g.user
	next.Avatar = dataURI
	return g.persistUser(ctx, next)
}

// persistUser writes the identity and swaps it in on success.
// Callers must hold mu.
func (g *Gate) persistUser(ctx context.Context, next models.AdminUser) error {
	buf, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := g.kv.Set(ctx, kvstore.KeyAdminUser, string(buf)); err != nil {
		g.log.Error("failed to persist admin identity", zap.Error(err))
		return err
	}
	g.user = next
	return nil
}

// Authenticated reports whether a session is currently active.
func (g *Gate) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.authenticated
}

// User returns the current admin identity.
func (g *Gate) User() models.AdminUser {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.user
}
