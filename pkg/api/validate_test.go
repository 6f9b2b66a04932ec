package api

import (
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCommunityName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "golang", "golang", false},
		{"uppercase", "GoLang", "golang", false},
		{"r prefix", "r/golang", "golang", false},
		{"slash r prefix", "/r/GoLang", "golang", false},
		{"whitespace", "  golang  ", "golang", false},
		{"underscore and digits", "ask_reddit_2", "ask_reddit_2", false},
		{"empty", "", "", true},
		{"bare prefix", "r/", "", true},
		{"hyphen", "go-lang", "", true},
		{"space inside", "go lang", "", true},
		{"too long", strings.Repeat("a", 51), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeCommunityName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func stubLookup(t *testing.T, addrs []net.IP, err error) {
	t.Helper()
	orig := lookupIP
	lookupIP = func(string) ([]net.IP, error) { return addrs, err }
	t.Cleanup(func() { lookupIP = orig })
}

func TestValidateWebhookURL(t *testing.T) {
	stubLookup(t, []net.IP{net.ParseIP("162.159.128.233")}, nil)

	assert.NoError(t, validateWebhookURL("https://discord.com/api/webhooks/123456789/abc_DEF-123"))
	assert.NoError(t, validateWebhookURL("https://discordapp.com/api/webhooks/1/token"))

	// Shape violations fail before any DNS lookup.
	assert.Error(t, validateWebhookURL("http://discord.com/api/webhooks/1/token"))
	assert.Error(t, validateWebhookURL("https://example.com/api/webhooks/1/token"))
	assert.Error(t, validateWebhookURL("https://discord.com/api/webhooks/abc/token"))
	assert.Error(t, validateWebhookURL("https://discord.com/api/webhooks/1/token/extra"))
	assert.Error(t, validateWebhookURL("https://discord.com.evil.test/api/webhooks/1/token"))
	assert.Error(t, validateWebhookURL(""))
}

func TestValidateWebhookURLRejectsInternalAddresses(t *testing.T) {
	internal := []string{"127.0.0.1", "10.0.0.5", "192.168.1.1", "172.16.0.1", "169.254.1.1", "0.0.0.0", "::1"}
	for _, addr := range internal {
		stubLookup(t, []net.IP{net.ParseIP(addr)}, nil)
		assert.Error(t, validateWebhookURL("https://discord.com/api/webhooks/1/token"), addr)
	}

	// A mixed answer is just as dangerous as an all-internal one.
	stubLookup(t, []net.IP{net.ParseIP("162.159.128.233"), net.ParseIP("127.0.0.1")}, nil)
	assert.Error(t, validateWebhookURL("https://discord.com/api/webhooks/1/token"))

	stubLookup(t, nil, &net.DNSError{Err: "no such host", IsNotFound: true})
	assert.Error(t, validateWebhookURL("https://discord.com/api/webhooks/1/token"))
}

func TestSanitizePhrases(t *testing.T) {
	cleaned, err := sanitizePhrases([]string{" arbitrage betting ", "<script>promo code</script>"})
	require.NoError(t, err)
	assert.Equal(t, []string{"arbitrage betting", "scriptpromo code/script"}, cleaned)

	_, err = sanitizePhrases(nil)
	assert.Error(t, err)

	_, err = sanitizePhrases([]string{"  "})
	assert.Error(t, err)

	_, err = sanitizePhrases([]string{strings.Repeat("x", 201)})
	assert.Error(t, err)

	tooMany := make([]string, 21)
	for i := range tooMany {
		tooMany[i] = "phrase"
	}
	_, err = sanitizePhrases(tooMany)
	assert.Error(t, err)
}

func TestSanitizeExclusions(t *testing.T) {
	cleaned, err := sanitizeExclusions(nil)
	require.NoError(t, err)
	assert.Empty(t, cleaned)

	cleaned, err = sanitizeExclusions([]string{" free bet "})
	require.NoError(t, err)
	assert.Equal(t, []string{"free bet"}, cleaned)

	_, err = sanitizeExclusions([]string{strings.Repeat("x", 101)})
	assert.Error(t, err)
}
