package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServices(t *testing.T) (*CredentialService, *TokenService, *memTokenStore) {
	t.Helper()

	credStore := &memCredentialStore{}
	tokenStore := &memTokenStore{}
	credSvc := NewCredentialService(credStore)
	require.NoError(t, credSvc.Upsert(context.Background(), "admin", "secret123"))

	return credSvc, NewTokenService(credSvc, tokenStore), tokenStore
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	_, svc, _ := newAuthServices(t)
	ctx := context.Background()

	token, err := svc.Issue(ctx, "admin", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ok, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTokenService_ReissueInvalidatesPrior(t *testing.T) {
	_, svc, _ := newAuthServices(t)
	ctx := context.Background()

	first, err := svc.Issue(ctx, "admin", "secret123")
	require.NoError(t, err)
	second, err := svc.Issue(ctx, "admin", "secret123")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	ok, err := svc.Validate(ctx, first)
	require.NoError(t, err)
	assert.False(t, ok, "the superseded token must be rejected immediately")

	ok, err = svc.Validate(ctx, second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTokenService_FailedLoginLeavesStoreUntouched(t *testing.T) {
	_, svc, store := newAuthServices(t)
	ctx := context.Background()

	good, err := svc.Issue(ctx, "admin", "secret123")
	require.NoError(t, err)

	bad, err := svc.Issue(ctx, "admin", "wrong")
	require.NoError(t, err, "a wrong password is not a fault")
	assert.Empty(t, bad)
	assert.Equal(t, 1, store.replaces, "no token may be written on a failed login")

	ok, err := svc.Validate(ctx, good)
	require.NoError(t, err)
	assert.True(t, ok, "the active token must survive a failed login attempt")
}

func TestTokenService_ValidateAgainstEmptyStore(t *testing.T) {
	credSvc := NewCredentialService(&memCredentialStore{})
	svc := NewTokenService(credSvc, &memTokenStore{})
	ctx := context.Background()

	for _, candidate := range []string{"", "random-garbage"} {
		ok, err := svc.Validate(ctx, candidate)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestTokenService_TokenIsOpaqueURLSafe(t *testing.T) {
	_, svc, store := newAuthServices(t)
	ctx := context.Background()

	token, err := svc.Issue(ctx, "admin", "secret123")
	require.NoError(t, err)

	// 32 bytes of entropy, raw URL-safe base64.
	assert.Len(t, token, 43)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")

	require.Len(t, store.tokens, 1)
	assert.NotEqual(t, token, store.tokens[0].TokenHash, "the plaintext token must never be stored")
}

func TestTokenService_StorageFaultPropagates(t *testing.T) {
	credStore := &memCredentialStore{}
	credSvc := NewCredentialService(credStore)
	require.NoError(t, credSvc.Upsert(context.Background(), "admin", "secret123"))

	fault := errors.New("database gone")
	svc := NewTokenService(credSvc, &memTokenStore{err: fault})

	_, err := svc.Issue(context.Background(), "admin", "secret123")
	assert.ErrorIs(t, err, fault)

	_, err = svc.Validate(context.Background(), "anything")
	assert.ErrorIs(t, err, fault)
}
