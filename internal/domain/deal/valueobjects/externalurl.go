package valueobjects

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeExternalURL validates and normalizes the redirect target of a
// deal. Both full URLs and bare domains are accepted; bare domains are
// prefixed with https://.
func NormalizeExternalURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("external URL is required")
	}

	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid external URL %q: %w", raw, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q", parsed.Scheme)
	}

	host := parsed.Hostname()
	if host == "" || !strings.Contains(host, ".") {
		return "", fmt.Errorf("invalid external URL host %q", raw)
	}

	return parsed.String(), nil
}
