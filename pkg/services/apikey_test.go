package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAPIKey(t *testing.T) {
	key1, err := GenerateAPIKey()
	require.NoError(t, err)
	key2, err := GenerateAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key1, "rda_"))
	assert.NotEqual(t, key1, key2)
	assert.Greater(t, len(key1), 30)
}

func TestHashAndVerifyAPIKey(t *testing.T) {
	key, err := GenerateAPIKey()
	require.NoError(t, err)

	hash, err := HashAPIKey(key)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "pbkdf2-sha256$"))
	assert.NotContains(t, hash, key)

	assert.True(t, VerifyAPIKey(key, hash))
	assert.False(t, VerifyAPIKey(key+"x", hash))
	assert.False(t, VerifyAPIKey("", hash))
}

func TestHashAPIKeyIsSalted(t *testing.T) {
	h1, err := HashAPIKey("rda_same-key")
	require.NoError(t, err)
	h2, err := HashAPIKey("rda_same-key")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyAPIKey("rda_same-key", h1))
	assert.True(t, VerifyAPIKey("rda_same-key", h2))
}

func TestVerifyAPIKeyRejectsMalformedHash(t *testing.T) {
	assert.False(t, VerifyAPIKey("rda_key", ""))
	assert.False(t, VerifyAPIKey("rda_key", "not-a-hash"))
	assert.False(t, VerifyAPIKey("rda_key", "pbkdf2-sha256$abc$salt$hash"))
	assert.False(t, VerifyAPIKey("rda_key", "sha1$1000$c2FsdA$aGFzaA"))
}
