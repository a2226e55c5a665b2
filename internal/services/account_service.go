package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/crud-auth-be/internal/auth"
	"github.com/isdelr/crud-auth-be/internal/models"
	"github.com/isdelr/crud-auth-be/internal/store"
)

// AccountServiceProvider defines the interface for account services.
type AccountServiceProvider interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Identify(token string) (string, error)
	DeleteAccount(ctx context.Context, token, username string) error
}

// AccountService provides registration, login, identity lookup and account
// deletion on top of a credential store and a token service. It keeps no
// state between calls.
type AccountService struct {
	store  store.CredentialStore
	tokens *auth.TokenService
	now    func() time.Time
}

// NewAccountService creates a new AccountService.
func NewAccountService(s store.CredentialStore, tokens *auth.TokenService) *AccountService {
	return &AccountService{store: s, tokens: tokens, now: time.Now}
}

// Register creates a user with a hashed password.
func (s *AccountService) Register(ctx context.Context, username, password string) error {
	existing, err := s.store.Find(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateUser
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		ID:             uuid.New().String(),
		Username:       username,
		HashedPassword: hashed,
		CreatedAt:      s.now().UTC(),
	}
	// A concurrent registration may have won the race since Find.
	if err := s.store.Insert(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

// Login verifies credentials and returns a fresh access token.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.Find(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		auth.CheckAbsentPassword(password)
		return "", ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.HashedPassword, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// Identify returns the username a token was issued for. It does not consult
// the store, so a token outlives the deletion of its account.
func (s *AccountService) Identify(token string) (string, error) {
	if token == "" {
		return "", auth.ErrTokenMissing
	}
	return s.tokens.Verify(token)
}

// DeleteAccount removes username if token was issued for that same user.
func (s *AccountService) DeleteAccount(ctx context.Context, token, username string) error {
	subject, err := s.Identify(token)
	if err != nil {
		return err
	}
	if subject != username {
		return ErrUnauthorized
	}
	return s.store.Delete(ctx, username)
}
