package application

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters, RFC 9106 low-memory recommendation.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	saltBytes = 16
)

// newSalt returns a fresh hex-encoded 16-byte random salt. A new salt is
// generated on every credential write and every token issuance; salts are
// never reused across writes.
func newSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// hashPassword derives the stored password digest with argon2id, keyed by
// the per-write salt. Passwords are low-entropy secrets, so the digest uses
// a memory-hard KDF rather than a bare hash.
func hashPassword(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// hashToken digests an opaque session token with its salt. Tokens are
// already 256-bit random values, so a single SHA-256 pass suffices; the
// salt keeps identical inputs from producing identical rows.
func hashToken(token, salt string) string {
	sum := sha256.Sum256([]byte(salt + ":" + token))
	return hex.EncodeToString(sum[:])
}
