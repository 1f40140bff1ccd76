package urlutil

import (
	"fmt"
	neturl "net/url"
	"strings"
)

const (
	// MaxURLLength is the RFC 2616 practical limit for configuration URLs.
	MaxURLLength = 2048

	// MaxBrowserURLLength is the longest pre-filled issue URL the tracker
	// accepts before truncating or rejecting the request.
	MaxBrowserURLLength = 8192
)

// ValidateLaunchable checks a URL before it is handed to the browser. It
// rejects empty input, schemes other than http and https, missing hosts and
// anything over MaxBrowserURLLength.
func ValidateLaunchable(rawURL string) error {
	_, err := parse(rawURL, MaxBrowserURLLength)
	return err
}

// ValidateHTTPSOnly checks a configuration URL of at most MaxURLLength and
// enforces HTTPS. HTTP is accepted only for localhost so a local tracker can
// be used during development.
func ValidateHTTPSOnly(rawURL string) error {
	parsed, err := parse(rawURL, MaxURLLength)
	if err != nil {
		return err
	}

	if parsed.Scheme == "https" {
		return nil
	}
	if parsed.Scheme == "http" && isLocalhost(parsed.Hostname()) {
		return nil
	}

	return fmt.Errorf("url must use https:// (http:// only allowed for localhost)")
}

func parse(rawURL string, maxLen int) (*neturl.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("url cannot be empty")
	}
	if len(rawURL) > maxLen {
		return nil, fmt.Errorf("url exceeds maximum length of %d characters", maxLen)
	}

	parsed, err := neturl.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL format: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		if parsed.Scheme == "" {
			return nil, fmt.Errorf("url must use http:// or https://")
		}
		return nil, fmt.Errorf("url must use http:// or https://, got: %s", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("url missing host/domain")
	}

	return parsed, nil
}

// isLocalhost checks if the hostname is a loopback name or address
func isLocalhost(hostname string) bool {
	switch strings.ToLower(hostname) {
	case "localhost", "127.0.0.1", "::1", "[::1]":
		return true
	}
	return false
}
