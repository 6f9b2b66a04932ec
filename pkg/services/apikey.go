package services

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// API keys are random tokens with a recognizable prefix. Only the
// PBKDF2-SHA256 hash is stored; the plaintext is shown once at
// registration.
const (
	apiKeyPrefix     = "rda_"
	apiKeyRandomSize = 32

	pbkdf2Iterations = 29000
	pbkdf2SaltSize   = 16
	pbkdf2KeySize    = 32
)

// GenerateAPIKey returns a new cryptographically random API key.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, apiKeyRandomSize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	return apiKeyPrefix + base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashAPIKey derives a salted PBKDF2-SHA256 hash for storage, encoded
// as pbkdf2-sha256$<iterations>$<salt>$<hash>.
func HashAPIKey(plaintext string) (string, error) {
	salt := make([]byte, pbkdf2SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	derived := pbkdf2.Key([]byte(plaintext), salt, pbkdf2Iterations, pbkdf2KeySize, sha256.New)
	return fmt.Sprintf("pbkdf2-sha256$%d$%s$%s",
		pbkdf2Iterations,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(derived)), nil
}

// VerifyAPIKey checks a plaintext key against a stored hash in
// constant time.
func VerifyAPIKey(plaintext, stored string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 4 || parts[0] != "pbkdf2-sha256" {
		return false
	}
	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations < 1 {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false
	}
	derived := pbkdf2.Key([]byte(plaintext), salt, iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(derived, expected) == 1
}
