package application

import (
	"context"
	"crypto/subtle"

	"github.com/dockhand/dockhand/internal/domain/port/driven"
)

// CredentialService manages the single administrator identity: first-time
// setup, out-of-band replacement, and password verification. The record is
// only ever replaced whole; partial updates and deletion do not exist.
type CredentialService struct {
	store driven.CredentialStore
}

// NewCredentialService creates a CredentialService backed by the given store.
func NewCredentialService(store driven.CredentialStore) *CredentialService {
	return &CredentialService{store: store}
}

// CreateIfAbsent stores the administrator credential when none exists yet.
// Returns false without writing when a credential is already present; the
// caller treats that as a conflict, not a fault. Atomicity of the
// absent-check against concurrent setup calls is delegated to the store's
// singleton key.
func (s *CredentialService) CreateIfAbsent(ctx context.Context, username, password string) (bool, error) {
	salt, err := newSalt()
	if err != nil {
		return false, err
	}

	return s.store.CreateIfAbsent(ctx, username, hashPassword(password, salt), salt)
}

// Upsert unconditionally replaces the administrator credential with a fresh
// salt and hash. Used by the setpassword CLI for out-of-band resets.
func (s *CredentialService) Upsert(ctx context.Context, username, password string) error {
	salt, err := newSalt()
	if err != nil {
		return err
	}

	return s.store.Upsert(ctx, username, hashPassword(password, salt), salt)
}

// Verify checks a candidate username and password against the stored
// credential. Wrong credentials are an ordinary false, never an error; an
// error means the store itself failed. Both the recomputed hash and the
// username are compared in constant time so response timing reveals nothing
// about which part was wrong or where a mismatch occurred.
func (s *CredentialService) Verify(ctx context.Context, username, password string) (bool, error) {
	cred, err := s.store.Get(ctx)
	if err != nil {
		return false, err
	}
	if cred == nil {
		return false, nil
	}

	candidate := hashPassword(password, cred.Salt)
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cred.Username)) == 1
	hashOK := subtle.ConstantTimeCompare([]byte(candidate), []byte(cred.PasswordHash)) == 1

	return userOK && hashOK, nil
}
