package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dockhand/dockhand/internal/domain/model"
	"github.com/dockhand/dockhand/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo is the SQLite implementation of the CredentialStore port
// interface. The credentials table is constrained to a single row with
// id = 1; every write targets that row, so the singleton invariant is
// enforced by the schema rather than by caller discipline.
type CredentialRepo struct {
	db *DB
}

// NewCredentialRepo creates a new CredentialRepo backed by the given DB.
func NewCredentialRepo(db *DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// CreateIfAbsent inserts the credential only when the singleton row does
// not exist yet. The ON CONFLICT DO NOTHING on the fixed key makes the
// check-and-insert a single atomic statement: concurrent first-time setup
// calls race on the same row and exactly one insert wins.
func (r *CredentialRepo) CreateIfAbsent(ctx context.Context, username, passwordHash, salt string) (bool, error) {
	const query = `INSERT INTO credentials (id, username, password_hash, salt, updated_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO NOTHING`

	result, err := r.db.Writer.ExecContext(ctx, query, username, passwordHash, salt)
	if err != nil {
		return false, fmt.Errorf("create credential: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("check rows affected: %w", err)
	}

	return rows > 0, nil
}

// Upsert replaces the credential singleton in one atomic statement.
func (r *CredentialRepo) Upsert(ctx context.Context, username, passwordHash, salt string) error {
	const query = `INSERT INTO credentials (id, username, password_hash, salt, updated_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			password_hash = excluded.password_hash,
			salt = excluded.salt,
			updated_at = CURRENT_TIMESTAMP`

	_, err := r.db.Writer.ExecContext(ctx, query, username, passwordHash, salt)
	if err != nil {
		return fmt.Errorf("upsert credential: %w", err)
	}

	return nil
}

// Get returns the current credential, or (nil, nil) when none has been
// created yet.
func (r *CredentialRepo) Get(ctx context.Context) (*model.Credential, error) {
	const query = `SELECT username, password_hash, salt, updated_at FROM credentials WHERE id = 1`

	var cred model.Credential
	var updatedAt string

	err := r.db.Reader.QueryRowContext(ctx, query).Scan(&cred.Username, &cred.PasswordHash, &cred.Salt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get credential: %w", err)
	}

	cred.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &cred, nil
}

// parseTime parses the timestamp formats SQLite emits for TEXT columns
// written with CURRENT_TIMESTAMP or bound from Go time values.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format %q", s)
}
