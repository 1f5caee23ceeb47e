package driven

import (
	"context"

	"github.com/dockhand/dockhand/internal/domain/model"
)

// TokenStore defines the driven port for session token persistence.
type TokenStore interface {
	// Replace atomically deletes every stored token and inserts exactly one
	// new row, within a single transaction. This is the mechanism enforcing
	// the at-most-one-valid-token invariant; no reader may observe a state
	// mid-replacement.
	Replace(ctx context.Context, tokenHash, salt string) error

	// ListAll returns every stored token. Correct operation yields zero or
	// one row; callers tolerate more only as a sign of a bug, never as
	// valid state.
	ListAll(ctx context.Context) ([]model.Token, error)
}
