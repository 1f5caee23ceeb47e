package application

import (
	"context"
	"time"

	"github.com/dockhand/dockhand/internal/domain/model"
)

// --- In-memory store fakes shared by the auth service tests ---

// memCredentialStore mimics the singleton semantics of the SQLite adapter.
type memCredentialStore struct {
	cred *model.Credential
	err  error
}

func (m *memCredentialStore) CreateIfAbsent(_ context.Context, username, passwordHash, salt string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.cred != nil {
		return false, nil
	}
	m.cred = &model.Credential{Username: username, PasswordHash: passwordHash, Salt: salt, UpdatedAt: time.Now()}
	return true, nil
}

func (m *memCredentialStore) Upsert(_ context.Context, username, passwordHash, salt string) error {
	if m.err != nil {
		return m.err
	}
	m.cred = &model.Credential{Username: username, PasswordHash: passwordHash, Salt: salt, UpdatedAt: time.Now()}
	return nil
}

func (m *memCredentialStore) Get(_ context.Context) (*model.Credential, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cred, nil
}

// memTokenStore mimics the clear-then-insert semantics of the SQLite adapter.
type memTokenStore struct {
	tokens   []model.Token
	replaces int
	err      error
}

func (m *memTokenStore) Replace(_ context.Context, tokenHash, salt string) error {
	if m.err != nil {
		return m.err
	}
	m.replaces++
	m.tokens = []model.Token{{ID: int64(m.replaces), TokenHash: tokenHash, Salt: salt, CreatedAt: time.Now()}}
	return nil
}

func (m *memTokenStore) ListAll(_ context.Context) ([]model.Token, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tokens, nil
}
