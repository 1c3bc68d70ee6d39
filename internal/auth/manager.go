// Package auth owns the login/logout lifecycle for one role: it is the
// explicitly constructed replacement for ambient auth state, wired together
// by whoever builds the command tree.
package auth

import (
	"context"

	"pgctl/internal/api"
	"pgctl/internal/session"
)

type Manager struct {
	role   session.Role
	store  *session.Store
	client *api.Client
}

func NewManager(role session.Role, store *session.Store, client *api.Client) *Manager {
	return &Manager{role: role, store: store, client: client}
}

// Login calls the login endpoint and, on success, persists the session
// before returning it. Failures propagate untouched; the caller owns the
// user-facing message.
func (m *Manager) Login(ctx context.Context, credentials api.LoginRequest) (*session.Session, error) {
	res, err := m.client.Login(ctx, credentials)
	if err != nil {
		return nil, err
	}

	if err := m.store.Set(m.role, res.Token, res.User); err != nil {
		return nil, err
	}

	return &session.Session{Role: m.role, Token: res.Token, Identity: res.User}, nil
}

// Logout clears the role's session. Logging out while logged out is a no-op.
func (m *Manager) Logout() error {
	return m.store.Clear(m.role)
}

// Current returns the active session for the role, if any.
func (m *Manager) Current() (session.Session, bool, error) {
	return m.store.Get(m.role)
}
