package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"pgctl/internal/api"
	"pgctl/internal/session"
)

func setupStore(t *testing.T) *session.Store {
	store, err := session.NewStore(":memory:")
	assert.NoError(t, err)
	return store
}

func newClient(t *testing.T, server *httptest.Server, store *session.Store, role session.Role, clearOn401 bool) *api.Client {
	t.Helper()
	return api.NewClient(api.Options{
		BaseURL:             server.URL,
		Store:               store,
		Role:                role,
		ClearOnUnauthorized: clearOn401,
	})
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"users":[]}`))
	}))
	defer server.Close()

	store := setupStore(t)
	assert.NoError(t, store.Set(session.RoleAdmin, "t1", session.Identity{Name: "Admin"}))

	client := newClient(t, server, store, session.RoleAdmin, false)
	_, err := client.ListUsers(context.Background(), api.ListUsersParams{})
	assert.NoError(t, err)
	assert.Equal(t, "Bearer t1", gotAuth)
}

func TestClientSendsUnauthenticatedWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"token":"t1","user":{"name":"Admin"}}`))
	}))
	defer server.Close()

	store := setupStore(t)
	client := newClient(t, server, store, session.RoleAdmin, false)

	_, err := client.Login(context.Background(), api.LoginRequest{Email: "a@x.com", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, "", gotAuth)
}

func TestTenantClientClearsSessionOnUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer server.Close()

	store := setupStore(t)
	assert.NoError(t, store.Set(session.RoleTenant, "stale", session.Identity{Name: "Ravi", RoomNo: "101"}))

	client := newClient(t, server, store, session.RoleTenant, true)

	// Any tenant endpoint triggers the same policy.
	_, err := client.GetPaymentHistory(context.Background())
	assert.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
	assert.Equal(t, "token expired", err.Error())

	_, ok, getErr := store.Get(session.RoleTenant)
	assert.NoError(t, getErr)
	assert.False(t, ok)
}

func TestAdminClientKeepsSessionOnUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer server.Close()

	store := setupStore(t)
	assert.NoError(t, store.Set(session.RoleAdmin, "stale", session.Identity{Name: "Admin"}))

	client := newClient(t, server, store, session.RoleAdmin, false)

	_, err := client.GetProfile(context.Background())
	assert.True(t, api.IsUnauthorized(err))

	sess, ok, getErr := store.Get(session.RoleAdmin)
	assert.NoError(t, getErr)
	assert.True(t, ok)
	assert.Equal(t, "stale", sess.Token)
}

func TestClientDecodesBackendErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"room already occupied"}`))
	}))
	defer server.Close()

	store := setupStore(t)
	client := newClient(t, server, store, session.RoleAdmin, false)

	_, err := client.CreateUser(context.Background(), api.CreateUserRequest{})
	assert.Error(t, err)
	assert.Equal(t, "room already occupied", err.Error())
	assert.False(t, api.IsUnauthorized(err))
}

func TestClientFailsLoudlyOnMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users": "not-a-list"`))
	}))
	defer server.Close()

	store := setupStore(t)
	client := newClient(t, server, store, session.RoleAdmin, false)

	_, err := client.ListUsers(context.Background(), api.ListUsersParams{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestListPaymentsQueryParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/api/payments", r.URL.Path)
		w.Write([]byte(`{"total":0,"payments":[]}`))
	}))
	defer server.Close()

	store := setupStore(t)
	client := newClient(t, server, store, session.RoleAdmin, false)

	_, err := client.ListPayments(context.Background(), api.ListPaymentsParams{Month: 3, Year: 2025, Mode: "cash"})
	assert.NoError(t, err)
	assert.Contains(t, gotQuery, "month=3")
	assert.Contains(t, gotQuery, "year=2025")
	assert.Contains(t, gotQuery, "mode=cash")
}

func TestGetMonthlyReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/monthly", r.URL.Path)
		assert.Equal(t, "4", r.URL.Query().Get("month"))
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		w.Write([]byte(`{"paid":[{"_id":"p1","amount":5000,"month":4,"year":2025}],"unpaid":[{"_id":"u2","name":"Ravi"}]}`))
	}))
	defer server.Close()

	store := setupStore(t)
	client := newClient(t, server, store, session.RoleAdmin, false)

	report, err := client.GetMonthlyReport(context.Background(), 4, 2025)
	assert.NoError(t, err)
	assert.Len(t, report.Paid, 1)
	assert.Len(t, report.Unpaid, 1)
	assert.Equal(t, float64(5000), report.Paid[0].Amount)
	assert.Equal(t, "Ravi", report.Unpaid[0].Name)
}

func TestUploadQRSendsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/upload-qr", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("qr")
		assert.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "qr.png", header.Filename)

		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	store := setupStore(t)
	assert.NoError(t, store.Set(session.RoleAdmin, "t1", session.Identity{Name: "Admin"}))

	client := newClient(t, server, store, session.RoleAdmin, false)
	err := client.UploadQR(context.Background(), "/tmp/qr.png", bytes.NewReader([]byte("png-bytes")))
	assert.NoError(t, err)
}

func TestDeleteUserPath(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	store := setupStore(t)
	client := newClient(t, server, store, session.RoleAdmin, false)

	assert.NoError(t, client.DeleteUser(context.Background(), "abc123"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/users/abc123", gotPath)
}

func TestFetchFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "", r.Header.Get("Authorization"))
		w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	store := setupStore(t)
	assert.NoError(t, store.Set(session.RoleTenant, "t", session.Identity{Name: "Ravi"}))

	client := newClient(t, server, store, session.RoleTenant, true)

	var buf bytes.Buffer
	assert.NoError(t, client.FetchFile(context.Background(), server.URL+"/qr.png", &buf))
	assert.Equal(t, "png-bytes", buf.String())
}
