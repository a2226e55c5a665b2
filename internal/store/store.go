// Package store persists user credentials.
package store

import (
	"context"
	"errors"

	"github.com/isdelr/crud-auth-be/internal/models"
)

var (
	// ErrDuplicateKey is returned by Insert when the username is taken.
	ErrDuplicateKey = errors.New("store: duplicate key")
	// ErrUnavailable is returned by every operation of a store whose backend
	// could not be reached at start-up.
	ErrUnavailable = errors.New("store: backend unavailable")
)

// CredentialStore is durable lookup/insert/delete of users keyed by username.
type CredentialStore interface {
	// Find returns the user, or nil with a nil error when no such user exists.
	Find(ctx context.Context, username string) (*models.User, error)
	// Insert adds user and returns ErrDuplicateKey if the username exists.
	Insert(ctx context.Context, user models.User) error
	// Delete removes the user. Deleting an absent user is not an error.
	Delete(ctx context.Context, username string) error
	Close(ctx context.Context) error
}

// Unavailable is the store installed when the backend connection failed at
// start-up. The process keeps serving; storage-backed requests fail.
type Unavailable struct {
	Cause error
}

func (u Unavailable) err() error {
	if u.Cause == nil {
		return ErrUnavailable
	}
	return errors.Join(ErrUnavailable, u.Cause)
}

func (u Unavailable) Find(context.Context, string) (*models.User, error) { return nil, u.err() }

func (u Unavailable) Insert(context.Context, models.User) error { return u.err() }

func (u Unavailable) Delete(context.Context, string) error { return u.err() }

func (u Unavailable) Close(context.Context) error { return nil }
