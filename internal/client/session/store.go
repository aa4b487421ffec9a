// Package session persists the console's auth state: the bearer token and the
// last-used identity, durable across restarts in a local sqlite database.
//
// The token being present is what makes the UI "authenticated"; the identity
// is advisory display data only. There is no expiry or refresh handling: a
// stored token is trusted until the backend rejects it.
package session

import (
	"context"
	"database/sql"

	"github.com/chandra/dmacli/internal/dbx"
)

// Persisted key names, kept identical to the original client's storage keys.
const (
	tokenKey    = "dma_token"
	identityKey = "dma_email"
)

// Store mirrors the durable session in memory. All mutation is synchronous:
// a successful Set or Clear means both the database and the mirror changed.
type Store struct {
	db       *sql.DB
	token    string
	identity string
}

// NewStore wraps an already-migrated database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(db dbx.DBTX) Repository {
	return NewSQLiteRepository(db)
}

// Load reads the persisted token and identity into memory. Absent keys leave
// the corresponding fields empty.
func (s *Store) Load(ctx context.Context) error {
	repo := s.repo(s.db)

	token, _, err := repo.Get(ctx, tokenKey)
	if err != nil {
		return err
	}
	identity, _, err := repo.Get(ctx, identityKey)
	if err != nil {
		return err
	}

	s.token = token
	s.identity = identity
	return nil
}

// Set stores token and identity durably, both keys in one transaction, then
// updates the in-memory mirror.
func (s *Store) Set(ctx context.Context, token, identity string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, tokenKey, token); err != nil {
			return err
		}
		return repo.Set(ctx, identityKey, identity)
	})
	if err != nil {
		return err
	}

	s.token = token
	s.identity = identity
	return nil
}

// Clear removes both keys durably and empties the mirror.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Delete(ctx, tokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, identityKey)
	})
	if err != nil {
		return err
	}

	s.token = ""
	s.identity = ""
	return nil
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *Store) Token() string { return s.token }

// Identity returns the last-used identity for display purposes.
func (s *Store) Identity() string { return s.identity }

// Authenticated reports whether a session token is present.
func (s *Store) Authenticated() bool { return s.token != "" }
