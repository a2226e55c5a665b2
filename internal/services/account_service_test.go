package services

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/isdelr/crud-auth-be/internal/auth"
	"github.com/isdelr/crud-auth-be/internal/database"
	"github.com/isdelr/crud-auth-be/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store   *store.SQLiteStore
	tokens  *auth.TokenService
	service *AccountService
	now     time.Time
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)

	env := &testEnv{now: time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)}
	env.store = store.NewSQLiteStore(db, 5*time.Second)
	env.tokens = auth.NewTokenService("test-secret", auth.WithClock(func() time.Time { return env.now }))
	env.service = NewAccountService(env.store, env.tokens)
	t.Cleanup(func() { env.store.Close(context.Background()) })
	return env
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)

	require.NoError(t, env.service.Register(ctx, "alice", "pw1"))
	assert.ErrorIs(t, env.service.Register(ctx, "alice", "pw1"), ErrDuplicateUser)
	assert.ErrorIs(t, env.service.Register(ctx, "alice", "other"), ErrDuplicateUser)

	user, err := env.store.Find(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "pw1", user.HashedPassword)
	assert.True(t, auth.CheckPassword(user.HashedPassword, "pw1"))
}

func TestRegister_Concurrent(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)

	const n = 4
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = env.service.Register(ctx, "dave", "pw")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrDuplicateUser)
	}
	assert.Equal(t, 1, succeeded)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	require.NoError(t, env.service.Register(ctx, "alice", "pw1"))

	token, err := env.service.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	subject, err := env.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	_, wrongPassword := env.service.Login(ctx, "alice", "nope")
	_, unknownUser := env.service.Login(ctx, "mallory", "pw1")
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestIdentify(t *testing.T) {
	env := setupTestEnv(t)

	token, err := env.tokens.Issue("alice")
	require.NoError(t, err)

	username, err := env.service.Identify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	_, err = env.service.Identify("")
	assert.ErrorIs(t, err, auth.ErrTokenMissing)

	_, err = env.service.Identify("garbage")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	env.now = env.now.Add(31 * time.Minute)
	_, err = env.service.Identify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	require.NoError(t, env.service.Register(ctx, "alice", "pw1"))
	require.NoError(t, env.service.Register(ctx, "bob", "pw2"))

	bobToken, err := env.service.Login(ctx, "bob", "pw2")
	require.NoError(t, err)

	assert.ErrorIs(t, env.service.DeleteAccount(ctx, bobToken, "alice"), ErrUnauthorized)
	alice, err := env.store.Find(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, alice, "target of a rejected deletion must remain")

	assert.ErrorIs(t, env.service.DeleteAccount(ctx, "garbage", "bob"), auth.ErrInvalidToken)
	assert.ErrorIs(t, env.service.DeleteAccount(ctx, "", "bob"), auth.ErrTokenMissing)

	require.NoError(t, env.service.DeleteAccount(ctx, bobToken, "bob"))
	bob, err := env.store.Find(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, bob)

	// The token stays valid after deletion; deleting again is harmless.
	assert.NoError(t, env.service.DeleteAccount(ctx, bobToken, "bob"))

	_, err = env.service.Login(ctx, "bob", "pw2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewTokenService("test-secret")
	svc := NewAccountService(store.Unavailable{}, tokens)

	assert.ErrorIs(t, svc.Register(ctx, "alice", "pw1"), store.ErrUnavailable)
	_, err := svc.Login(ctx, "alice", "pw1")
	assert.ErrorIs(t, err, store.ErrUnavailable)

	token, err := tokens.Issue("alice")
	require.NoError(t, err)
	assert.ErrorIs(t, svc.DeleteAccount(ctx, token, "alice"), store.ErrUnavailable)

	// Identify never touches the store.
	username, err := svc.Identify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestRegisterLogin_LongPassword(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)
	long := strings.Repeat("x", 100)

	require.NoError(t, env.service.Register(ctx, "long", long))
	token, err := env.service.Login(ctx, "long", long)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
