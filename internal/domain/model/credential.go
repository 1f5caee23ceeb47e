package model

import "time"

// Credential is the single administrator identity. At most one record ever
// exists; every write replaces the whole record and there is no delete.
// PasswordHash is the hex-encoded salted digest of the password; the
// plaintext is never stored.
type Credential struct {
	Username     string
	PasswordHash string
	Salt         string
	UpdatedAt    time.Time
}
