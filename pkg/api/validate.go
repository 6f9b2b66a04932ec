package api

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"

	"github.com/reddalert/reddalert/pkg/services"
)

const (
	maxPhrases      = 20
	maxPhraseLen    = 200
	maxExclusions   = 20
	maxExclusionLen = 100
)

var (
	communityNamePattern = regexp.MustCompile(`^[a-z0-9_]{1,50}$`)
	webhookURLPattern    = regexp.MustCompile(`^https://discord(?:app)?\.com/api/webhooks/\d+/[\w-]+$`)

	// lookupIP is swappable so tests run without DNS.
	lookupIP = net.LookupIP
)

// normalizeCommunityName canonicalizes user input: optional r/ prefix
// stripped, lowercased, then validated against the allowed charset.
func normalizeCommunityName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	name = strings.TrimPrefix(name, "/")
	if len(name) > 2 && strings.EqualFold(name[:2], "r/") {
		name = name[2:]
	}
	name = strings.ToLower(name)
	if !communityNamePattern.MatchString(name) {
		return "", services.NewValidationError("name",
			"must be 1-50 characters of letters, digits or underscores")
	}
	return name, nil
}

// validateWebhookURL enforces the Discord webhook shape and refuses
// hosts that resolve to non-public addresses.
func validateWebhookURL(raw string) error {
	if !webhookURLPattern.MatchString(raw) {
		return services.NewValidationError("url", "must be a Discord webhook URL")
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme != "https" {
		return services.NewValidationError("url", "must be a valid https URL")
	}

	addrs, err := lookupIP(parsed.Hostname())
	if err != nil {
		return services.NewValidationError("url", "hostname does not resolve")
	}
	for _, addr := range addrs {
		if isForbiddenIP(addr) {
			return services.NewValidationError("url", "hostname resolves to a non-public address")
		}
	}
	return nil
}

// isForbiddenIP reports whether the address points inside the local
// network rather than at the public internet.
func isForbiddenIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}

// sanitizePhrases trims and bounds rule phrases. Angle brackets are
// dropped so phrases embed safely in outgoing messages.
func sanitizePhrases(phrases []string) ([]string, error) {
	if len(phrases) == 0 {
		return nil, services.NewValidationError("phrases", "at least one phrase is required")
	}
	if len(phrases) > maxPhrases {
		return nil, services.NewValidationError("phrases",
			fmt.Sprintf("at most %d phrases are allowed", maxPhrases))
	}

	cleaned := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		p := strings.TrimSpace(stripAngleBrackets(phrase))
		if p == "" {
			return nil, services.NewValidationError("phrases", "phrases must not be empty")
		}
		if len(p) > maxPhraseLen {
			return nil, services.NewValidationError("phrases",
				fmt.Sprintf("phrases must be at most %d characters", maxPhraseLen))
		}
		cleaned = append(cleaned, p)
	}
	return cleaned, nil
}

// sanitizeExclusions trims and bounds rule exclusions. An empty list is
// valid.
func sanitizeExclusions(exclusions []string) ([]string, error) {
	if len(exclusions) > maxExclusions {
		return nil, services.NewValidationError("exclusions",
			fmt.Sprintf("at most %d exclusions are allowed", maxExclusions))
	}

	cleaned := make([]string, 0, len(exclusions))
	for _, exclusion := range exclusions {
		e := strings.TrimSpace(stripAngleBrackets(exclusion))
		if e == "" {
			return nil, services.NewValidationError("exclusions", "exclusions must not be empty")
		}
		if len(e) > maxExclusionLen {
			return nil, services.NewValidationError("exclusions",
				fmt.Sprintf("exclusions must be at most %d characters", maxExclusionLen))
		}
		cleaned = append(cleaned, e)
	}
	return cleaned, nil
}

func stripAngleBrackets(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	return strings.ReplaceAll(s, ">", "")
}
