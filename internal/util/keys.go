package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// ShortHash returns the first 16 hex chars of the SHA-256 of s. Used to
// keep composite cache keys (full birth identities) short and store-safe
// while staying deterministic.
func ShortHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:16]
}
