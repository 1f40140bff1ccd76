package urlutil

import (
	"fmt"
	"strings"
)

// maxDomainLength is the RFC 1035 limit for a fully qualified domain name.
const maxDomainLength = 253

// ValidateDomain checks that domain is a bare host name such as "github.com":
// no scheme, no port, at least one dot, and RFC 1035 labels. "localhost" is
// accepted for local trackers.
func ValidateDomain(domain string) error {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return fmt.Errorf("domain cannot be empty")
	}
	if strings.Contains(domain, "://") {
		return fmt.Errorf("domain should not include protocol: %s", domain)
	}
	if len(domain) > maxDomainLength {
		return fmt.Errorf("domain exceeds maximum length of %d characters", maxDomainLength)
	}
	if strings.Contains(domain, ":") {
		return fmt.Errorf("domain should not include port: %s", domain)
	}
	if strings.EqualFold(domain, "localhost") {
		return nil
	}
	if !strings.Contains(domain, ".") {
		return fmt.Errorf("domain must have at least one dot: %s", domain)
	}

	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			return fmt.Errorf("domain has empty label: %s", domain)
		}
		if len(label) > 63 {
			return fmt.Errorf("domain label exceeds 63 characters: %s", label)
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return fmt.Errorf("domain label cannot start or end with hyphen: %s", label)
		}
		for _, r := range label {
			if !isDomainRune(r) {
				return fmt.Errorf("domain label contains invalid character %q: %s", r, label)
			}
		}
	}
	return nil
}

func isDomainRune(r rune) bool {
	return r == '-' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9') ||
		r > 127 // internationalized labels are passed through unchanged
}
