package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement it and expose one sub-repository per table.
type Store interface {
	Credentials() Credentials
	Simulations() Simulations
	Applications() Applications
	RevokedTokens() RevokedTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Credentials interface {
	// GetCredentialByUsername is the lookup used at login.
	GetCredentialByUsername(ctx context.Context, username string) (domain.Credential, error)

	// CreateCredential inserts a credential; ErrAlreadyExists on a duplicate username.
	CreateCredential(ctx context.Context, c domain.Credential) error

	// UpdateCredential rewrites password_hash and totp_secret and bumps updated_at.
	UpdateCredential(ctx context.Context, c domain.Credential) error
}

type Simulations interface {
	CreateSimulation(ctx context.Context, s domain.Simulation) error
	GetSimulationByID(ctx context.Context, id string) (domain.Simulation, error)

	// ListSimulations returns newest first.
	ListSimulations(ctx context.Context, page domain.Page) ([]domain.Simulation, error)
	CountSimulations(ctx context.Context) (int, error)
}

type Applications interface {
	CreateApplication(ctx context.Context, a domain.JobApplication) error
	GetApplicationByID(ctx context.Context, id string) (domain.JobApplication, error)

	// ListApplications returns newest first.
	ListApplications(ctx context.Context, page domain.Page) ([]domain.JobApplication, error)
	CountApplications(ctx context.Context) (int, error)
}

type RevokedTokens interface {
	// RevokeToken adds a jti to the denylist. Revoking twice is not an error.
	RevokeToken(ctx context.Context, t domain.RevokedToken) error

	IsTokenRevoked(ctx context.Context, jti string) (bool, error)

	// DeleteExpiredRevokedTokens removes entries whose token expired before now.
	DeleteExpiredRevokedTokens(ctx context.Context, now time.Time) (int64, error)
}
