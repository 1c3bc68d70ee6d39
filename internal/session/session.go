package session

import "errors"

var ErrNoSession = errors.New("no active session")

// Role selects which credential pair a store operation touches. The two
// roles are fully independent: an admin and a tenant session may coexist.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleTenant Role = "tenant"
)

// Identity is the signed-in account as reported by the login endpoint.
// Admin logins fill name/email/avatar, tenant logins fill name/roomNo/phone;
// the backend owns which fields are present.
type Identity struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
	Phone  string `json:"phone,omitempty"`
	RoomNo string `json:"roomNo,omitempty"`
}

// Session is the (token, identity) pair for one role. The token is opaque;
// its lifetime is entirely server-determined.
type Session struct {
	Role     Role
	Token    string
	Identity Identity
}
