// Package services contains application services for the popx client.
// This file defines the authentication service: session bootstrap, signup,
// login and logout against the session store.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/popx/internal/client/models"
	"github.com/dmitrijs2005/popx/internal/client/repositories/kv"
	"github.com/dmitrijs2005/popx/internal/client/session"
	"github.com/dmitrijs2005/popx/internal/common"
	"github.com/dmitrijs2005/popx/internal/dbx"
	"github.com/dmitrijs2005/popx/internal/logging"
	"github.com/google/uuid"
)

// InitStatus tracks the one-time read of the persisted session.
type InitStatus int

const (
	StatusUninitialized InitStatus = iota
	StatusPending
	StatusResolved
)

func (s InitStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusResolved:
		return "resolved"
	default:
		return "uninitialized"
	}
}

// AuthState is a snapshot of the authentication state seen by the UI.
// Authenticated is true iff User is set.
type AuthState struct {
	User          *models.User
	Authenticated bool
	Status        InitStatus
}

// Resolved reports whether the persisted session has been read.
func (s AuthState) Resolved() bool {
	return s.Status == StatusResolved
}

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Initialize: read the persisted current user once; must finish before
//     any navigation decision.
//   - Signup: register a new user (unique email) and log them in.
//   - Login: exact email+password match; (nil, nil) means invalid credentials.
//   - Logout: forget the current user; idempotent.
//   - Reset: forget the current user and every registered user.
//   - State: snapshot of user / authenticated / init status.
//   - RegisteredUsers: every registered user in signup order.
//
// Implementations are the only writers of the session store. They are not safe
// for concurrent use.
type AuthService interface {
	Initialize(ctx context.Context) error
	Signup(ctx context.Context, candidate models.User) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Reset(ctx context.Context) error
	State() AuthState
	RegisteredUsers(ctx context.Context) ([]models.User, error)
}

// Option customizes an authService.
type Option func(*authService)

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *authService) { a.now = now }
}

// WithIDGenerator replaces the UUIDv7 user id generator.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(a *authService) { a.newID = newID }
}

// authService is the AuthService backed by the SQLite session database.
type authService struct {
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time
	newID  func() (string, error)
	state  AuthState
}

// NewAuthService constructs an AuthService over the session database.
func NewAuthService(db *sql.DB, logger logging.Logger, opts ...Option) AuthService {
	a := &authService{
		db:     db,
		logger: logger.With("module", "auth_service"),
		now:    time.Now,
		newID:  newUserID,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// newUserID returns a UUIDv7: unique and ordered by creation time.
func newUserID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (a *authService) store(db dbx.DBTX) *session.Store {
	return session.NewStore(kv.NewSQLiteRepository(db), a.logger)
}

func (a *authService) loadUsers(ctx context.Context, st *session.Store) ([]models.User, error) {
	var users []models.User
	found, err := st.Load(ctx, session.KeyRegisteredUsers, &users)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.User{}, nil
	}
	return users, nil
}

func (a *authService) setCurrent(u *models.User) {
	a.state.User = u
	a.state.Authenticated = u != nil
}

func (a *authService) requireResolved() error {
	if a.state.Status != StatusResolved {
		return common.ErrNotInitialized
	}
	return nil
}

// Initialize reads the persisted current user. Only the first call does
// any work. The status ends Resolved even when the read fails, so the UI
// never stays on the loading view; the session is then unauthenticated.
func (a *authService) Initialize(ctx context.Context) error {
	if a.state.Status != StatusUninitialized {
		return nil
	}
	a.state.Status = StatusPending
	defer func() { a.state.Status = StatusResolved }()

	var u models.User
	found, err := a.store(a.db).Load(ctx, session.KeyCurrentUser, &u)
	if err != nil {
		a.logger.Error(ctx, "session restore failed", "error", err)
		return fmt.Errorf("initialize session: %w", err)
	}
	if found {
		a.setCurrent(&u)
		a.logger.Info(ctx, "session restored", "user_id", u.ID)
	}
	return nil
}

// Signup registers candidate and logs it in. Identifier and creation time
// set by the caller are overwritten. The email must not match any
// registered user exactly (case-sensitive); otherwise common.ErrDuplicateEmail
// is returned and nothing is written.
func (a *authService) Signup(ctx context.Context, candidate models.User) (*models.User, error) {
	if err := a.requireResolved(); err != nil {
		return nil, err
	}

	id, err := a.newID()
	if err != nil {
		return nil, fmt.Errorf("generate user id: %w", err)
	}

	created := candidate
	created.ID = id
	created.CreatedAt = a.now().UTC().Truncate(time.Millisecond)

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := a.store(tx)

		users, err := a.loadUsers(ctx, st)
		if err != nil {
			return err
		}
		for _, u := range users {
			if u.Email == candidate.Email {
				return common.ErrDuplicateEmail
			}
		}

		if err := st.Save(ctx, session.KeyRegisteredUsers, append(users, created)); err != nil {
			return err
		}
		return st.Save(ctx, session.KeyCurrentUser, created)
	})
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	a.setCurrent(&created)
	a.logger.Info(ctx, "user signed up", "user_id", created.ID)

	out := created
	return &out, nil
}

// Login looks up a registered user whose email and password both match
// exactly. No match returns (nil, nil). A match becomes the current user.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := a.requireResolved(); err != nil {
		return nil, err
	}

	st := a.store(a.db)
	users, err := a.loadUsers(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	for i := range users {
		if users[i].Email != email || users[i].Password != password {
			continue
		}
		match := users[i]
		if err := st.Save(ctx, session.KeyCurrentUser, match); err != nil {
			return nil, fmt.Errorf("login: %w", err)
		}
		a.setCurrent(&match)
		a.logger.Info(ctx, "user logged in", "user_id", match.ID)

		out := match
		return &out, nil
	}

	a.logger.Debug(ctx, "login rejected")
	return nil, nil
}

// Logout clears the current user in the store, then in memory. When the
// store delete fails the user stays logged in.
// Calling it without a current user is a no-op apart from the store delete.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.requireResolved(); err != nil {
		return err
	}

	if err := a.store(a.db).Remove(ctx, session.KeyCurrentUser); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	if a.state.User != nil {
		a.logger.Info(ctx, "user logged out", "user_id", a.state.User.ID)
	}
	a.setCurrent(nil)
	return nil
}

// Reset wipes the session store: the current user and the registered users.
// It is the equivalent of clearing the browser's session storage.
func (a *authService) Reset(ctx context.Context) error {
	if err := a.requireResolved(); err != nil {
		return err
	}

	if err := a.store(a.db).Clear(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	a.setCurrent(nil)
	a.logger.Info(ctx, "session reset")
	return nil
}

// State returns a snapshot; the User is a copy.
func (a *authService) State() AuthState {
	st := a.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

// RegisteredUsers returns every registered user in signup order.
func (a *authService) RegisteredUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.loadUsers(ctx, a.store(a.db))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
