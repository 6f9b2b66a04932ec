package ingest

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the hex SHA-256 of normalized text. Content with the
// same digest is considered a duplicate regardless of source id.
func Digest(normalizedText string) string {
	sum := sha256.Sum256([]byte(normalizedText))
	return hex.EncodeToString(sum[:])
}
