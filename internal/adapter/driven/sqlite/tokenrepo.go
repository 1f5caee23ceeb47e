package sqlite

import (
	"context"
	"fmt"

	"github.com/dockhand/dockhand/internal/domain/model"
	"github.com/dockhand/dockhand/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.TokenStore = (*TokenRepo)(nil)

// TokenRepo is the SQLite implementation of the TokenStore port interface.
type TokenRepo struct {
	db *DB
}

// NewTokenRepo creates a new TokenRepo backed by the given DB.
func NewTokenRepo(db *DB) *TokenRepo {
	return &TokenRepo{db: db}
}

// Replace deletes every stored token and inserts exactly one new row inside
// a single transaction on the writer connection. Validation can never
// observe the table mid-replacement, which is what keeps at most one token
// valid at any time.
func (r *TokenRepo) Replace(ctx context.Context, tokenHash, salt string) error {
	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin token replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tokens`); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}

	const insert = `INSERT INTO tokens (token_hash, salt, created_at) VALUES (?, ?, CURRENT_TIMESTAMP)`
	if _, err := tx.ExecContext(ctx, insert, tokenHash, salt); err != nil {
		return fmt.Errorf("insert token: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit token replace: %w", err)
	}

	return nil
}

// ListAll returns all stored tokens ordered by creation. Zero or one row in
// correct operation.
func (r *TokenRepo) ListAll(ctx context.Context) ([]model.Token, error) {
	const query = `SELECT id, token_hash, salt, created_at FROM tokens ORDER BY id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}
	defer rows.Close()

	var tokens []model.Token
	for rows.Next() {
		var token model.Token
		var createdAt string

		if err := rows.Scan(&token.ID, &token.TokenHash, &token.Salt, &createdAt); err != nil {
			return nil, fmt.Errorf("scan token: %w", err)
		}

		token.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}

		tokens = append(tokens, token)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tokens: %w", err)
	}

	return tokens, nil
}
