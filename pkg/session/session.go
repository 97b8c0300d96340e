// Package session holds the process-wide authenticated identity. Exactly one
// AuthUser is live at a time: populated from "who am I" on first use, cleared
// on logout or on any 401. Everything outside the login/logout flows treats
// it as read-only.
package session

import (
	"sync"
	"time"

	"github.com/quill-social/cli/pkg/api"
	"github.com/quill-social/cli/pkg/client"
	"github.com/quill-social/cli/pkg/credentials"
	"github.com/quill-social/cli/pkg/errors"
	"github.com/quill-social/cli/pkg/logger"
)

var (
	mu        sync.Mutex
	current   *api.Blogger
	fetchedAt time.Time
)

// The identity query deliberately does not refetch aggressively: a transient
// failure must not bounce the user to login while a recent answer exists.
const staleTime = 5 * time.Minute

func init() {
	client.OnUnauthorized(Clear)
}

// Current returns the live AuthUser, fetching it from /auth/me when the
// cached identity is absent or stale. Failure of the identity query clears
// the session: the caller is effectively logged out.
func Current() (*api.Blogger, error) {
	mu.Lock()
	if current != nil && time.Since(fetchedAt) < staleTime {
		user := *current
		mu.Unlock()
		return &user, nil
	}
	mu.Unlock()

	creds, err := credentials.Load()
	if err != nil {
		return nil, err
	}
	if !creds.IsValid() {
		return nil, errors.UnauthenticatedError()
	}

	client.SetAuthToken(creds.AccessToken)

	user, err := api.Me()
	if err != nil {
		logger.Warn("Identity query failed, clearing session", "error", err)
		Clear()
		return nil, errors.SessionExpiredError()
	}

	mu.Lock()
	current = user
	fetchedAt = time.Now()
	copied := *current
	mu.Unlock()

	return &copied, nil
}

// Begin installs a fresh identity after a successful login.
func Begin(user *api.Blogger, token string) error {
	client.SetAuthToken(token)

	if err := credentials.Save(&credentials.Credentials{
		AccessToken: token,
		BloggerID:   user.BloggerID,
		Username:    user.Username,
		Email:       user.Email,
		SavedAt:     time.Now(),
	}); err != nil {
		return err
	}

	mu.Lock()
	current = user
	fetchedAt = time.Now()
	mu.Unlock()

	return nil
}

// Clear drops the in-memory identity. The persisted token is left alone
// unless End is called; a later Current() will retry against the server.
func Clear() {
	mu.Lock()
	current = nil
	fetchedAt = time.Time{}
	mu.Unlock()
}

// End terminates the session completely: in-memory identity, persisted
// token, and the client's default auth header.
func End() error {
	Clear()
	client.ClearAuthToken()
	return credentials.Delete()
}

// Require fails fast with an unauthenticated error when no session token is
// stored. Mutations call this before touching the network.
func Require() (*api.Blogger, error) {
	creds, err := credentials.Load()
	if err != nil {
		return nil, err
	}
	if !creds.IsValid() {
		return nil, errors.UnauthenticatedError()
	}
	return Current()
}
