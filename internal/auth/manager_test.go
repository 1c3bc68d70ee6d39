package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"pgctl/internal/api"
	"pgctl/internal/auth"
	"pgctl/internal/session"
)

func setup(t *testing.T, handler http.HandlerFunc, role session.Role) (*auth.Manager, *session.Store, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := session.NewStore(":memory:")
	assert.NoError(t, err)

	client := api.NewClient(api.Options{
		BaseURL: server.URL,
		Store:   store,
		Role:    role,
	})
	return auth.NewManager(role, store, client), store, server
}

func TestAdminLoginPersistsSession(t *testing.T) {
	manager, store, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@x.com", body["email"])
		assert.Equal(t, "secret", body["password"])

		w.Write([]byte(`{"token":"t1","user":{"name":"Admin"}}`))
	}, session.RoleAdmin)

	sess, err := manager.Login(context.Background(), api.LoginRequest{Email: "a@x.com", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, "t1", sess.Token)
	assert.Equal(t, "Admin", sess.Identity.Name)

	stored, ok, err := store.Get(session.RoleAdmin)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t1", stored.Token)
	assert.Equal(t, "Admin", stored.Identity.Name)
}

func TestTenantLoginFailureStoresNothing(t *testing.T) {
	manager, store, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}, session.RoleTenant)

	_, err := manager.Login(context.Background(), api.LoginRequest{Phone: "9999999999", Password: "bad"})
	assert.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())

	_, ok, getErr := store.Get(session.RoleTenant)
	assert.NoError(t, getErr)
	assert.False(t, ok)
}

func TestLogoutClearsSession(t *testing.T) {
	manager, store, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"t1","user":{"name":"Ravi","roomNo":"101"}}`))
	}, session.RoleTenant)

	_, err := manager.Login(context.Background(), api.LoginRequest{Phone: "9999999999", Password: "ok"})
	assert.NoError(t, err)

	assert.NoError(t, manager.Logout())
	// Logging out twice is fine.
	assert.NoError(t, manager.Logout())

	_, ok, err := store.Get(session.RoleTenant)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCurrent(t *testing.T) {
	manager, store, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}, session.RoleAdmin)

	_, ok, err := manager.Current()
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Set(session.RoleAdmin, "t1", session.Identity{Name: "Admin"}))

	sess, ok, err := manager.Current()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Admin", sess.Identity.Name)
}
