package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"pgctl/internal/api"
	"pgctl/internal/config"
	"pgctl/internal/format"
	"pgctl/internal/session"
)

var (
	errAdminLoginRequired  = errors.New("not logged in as admin, run 'pgctl login' first")
	errTenantLoginRequired = errors.New("not logged in, run 'pgctl user login' first")
)

// Env is the per-invocation wiring: configuration, the session store, and
// constructors for the two role clients. Commands build it lazily inside
// RunE so that --help never needs a config file.
type Env struct {
	Config *config.Config
	Store  *session.Store
}

func newEnv() (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.InitLogger(cfg)

	store, err := session.NewStore(filepath.Join(cfg.StateDir, "sessions.db"))
	if err != nil {
		return nil, err
	}

	return &Env{Config: cfg, Store: store}, nil
}

// adminClient passes 401s through to the caller untouched.
func (e *Env) adminClient() *api.Client {
	return api.NewClient(api.Options{
		BaseURL: e.Config.APIBaseURL,
		Timeout: e.Config.RequestTimeout,
		Store:   e.Store,
		Role:    session.RoleAdmin,
		Log:     config.Log,
	})
}

// tenantClient clears the tenant session on any 401, whatever endpoint
// triggered it.
func (e *Env) tenantClient() *api.Client {
	return api.NewClient(api.Options{
		BaseURL:             e.Config.APIBaseURL,
		Timeout:             e.Config.RequestTimeout,
		Store:               e.Store,
		Role:                session.RoleTenant,
		ClearOnUnauthorized: true,
		Log:                 config.Log,
	})
}

// tenantErr maps a 401 to the re-login instruction. By the time this runs
// the tenant client has already cleared the stored session.
func tenantErr(err error) error {
	if api.IsUnauthorized(err) {
		return fmt.Errorf("session expired, run 'pgctl user login' again")
	}
	return err
}

// requireAdmin permits the command iff an admin session is stored. Token
// validity is discovered lazily, on the first API call.
func (e *Env) requireAdmin() error {
	_, ok, err := e.Store.Token(session.RoleAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return errAdminLoginRequired
	}
	return nil
}

// requireTenant permits the command iff both a tenant token and a tenant
// identity are stored.
func (e *Env) requireTenant() (session.Session, error) {
	sess, ok, err := e.Store.Get(session.RoleTenant)
	if err != nil {
		return session.Session{}, err
	}
	if !ok {
		return session.Session{}, errTenantLoginRequired
	}
	return sess, nil
}

func printUsers(users []api.User) {
	if len(users) == 0 {
		fmt.Println("No users found.")
		return
	}
	fmt.Printf("%-24s  %-20s  %-8s  %-12s\n", "ID", "Name", "Room", "Phone")
	for _, u := range users {
		fmt.Printf("%-24s  %-20s  %-8s  %-12s\n", u.ID, u.Name, u.RoomNo, u.Phone)
	}
}

func printPayments(payments []api.Payment) {
	if len(payments) == 0 {
		fmt.Println("No payments found.")
		return
	}
	fmt.Printf("%-24s  %-10s  %-8s  %-14s  %-12s  %-20s\n",
		"ID", "Amount", "Mode", "Month", "Rent Type", "Date")
	for _, p := range payments {
		fmt.Printf("%-24s  %-10s  %-8s  %-14s  %-12s  %-20s\n",
			p.ID,
			format.Amount(p.Amount),
			p.Mode,
			fmt.Sprintf("%s %d", format.MonthName(p.Month), p.Year),
			p.RentType,
			format.Date(p.PaymentDate))
	}
}
