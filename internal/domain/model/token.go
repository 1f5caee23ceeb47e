package model

import "time"

// Token is the stored form of the active session token. Only the salted
// hash is persisted; the opaque value is handed to the client once at
// issuance and never written anywhere. At most one row is valid at a time:
// issuing a new token replaces every stored row.
type Token struct {
	ID        int64
	TokenHash string
	Salt      string
	CreatedAt time.Time
}
