package driven

import (
	"context"

	"github.com/dockhand/dockhand/internal/domain/model"
)

// CredentialStore defines the driven port for the administrator credential
// singleton. Implementations must guarantee that at most one record exists
// and that every write replaces the record atomically.
type CredentialStore interface {
	// CreateIfAbsent inserts the credential only when none exists yet.
	// Returns true when the insert won, false when a credential was already
	// present (in which case nothing is written). Concurrent first-time
	// setup is serialized on the singleton key: exactly one caller wins.
	CreateIfAbsent(ctx context.Context, username, passwordHash, salt string) (bool, error)

	// Upsert unconditionally replaces the credential singleton in a single
	// atomic operation.
	Upsert(ctx context.Context, username, passwordHash, salt string) error

	// Get returns the current credential, or (nil, nil) when none has been
	// created yet. The absent case is never an error.
	Get(ctx context.Context) (*model.Credential, error)
}
