package application

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/dockhand/dockhand/internal/domain/port/driven"
)

// tokenBytes is the entropy of an issued session token before encoding.
const tokenBytes = 32

// TokenService issues and validates the administrator session token. The
// model is a single operator session: issuing a new token atomically
// replaces whatever token was valid before, so at most one token is ever
// accepted and there is no expiry or revocation bookkeeping.
type TokenService struct {
	credentials *CredentialService
	tokens      driven.TokenStore
}

// NewTokenService creates a TokenService that verifies logins through the
// given CredentialService and persists token hashes in the given store.
func NewTokenService(credentials *CredentialService, tokens driven.TokenStore) *TokenService {
	return &TokenService{credentials: credentials, tokens: tokens}
}

// Issue verifies the supplied credentials and, on success, mints a fresh
// opaque token, storing only its salted hash. Replacing the stored row is
// the single moment every previously issued token becomes invalid. A failed
// login returns ("", nil) -- unauthorized, not a fault -- and leaves the
// token store untouched.
func (s *TokenService) Issue(ctx context.Context, username, password string) (string, error) {
	ok, err := s.credentials.Verify(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	salt, err := newSalt()
	if err != nil {
		return "", err
	}

	if err := s.tokens.Replace(ctx, hashToken(token, salt), salt); err != nil {
		return "", err
	}

	return token, nil
}

// Validate reports whether the presented token matches the stored session.
// The store holds zero or one row; extra rows are only ever a bug, but each
// is still checked with its own salt and a constant-time compare. An empty
// store rejects everything.
func (s *TokenService) Validate(ctx context.Context, token string) (bool, error) {
	stored, err := s.tokens.ListAll(ctx)
	if err != nil {
		return false, err
	}

	for _, t := range stored {
		candidate := hashToken(token, t.Salt)
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(t.TokenHash)) == 1 {
			return true, nil
		}
	}

	return false, nil
}
