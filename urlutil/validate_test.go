package urlutil

import (
	"strings"
	"testing"
)

func TestValidateLaunchableInput(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
		errMsg  string
	}{
		{name: "https tracker", url: "https://github.com"},
		{name: "https with path and query", url: "https://github.com/SapuSeven/BetterUntis/issues/new?title=x"},
		{name: "http localhost", url: "http://localhost:3000"},
		{name: "surrounding whitespace", url: "  https://github.com  "},
		{name: "ipv6 host", url: "http://[2001:db8::1]:8080"},
		{name: "empty", url: "", wantErr: true, errMsg: "url cannot be empty"},
		{name: "whitespace only", url: "   ", wantErr: true, errMsg: "url cannot be empty"},
		{name: "ftp scheme", url: "ftp://example.com", wantErr: true, errMsg: "got: ftp"},
		{name: "file scheme", url: "file:///etc/passwd", wantErr: true, errMsg: "got: file"},
		{name: "javascript scheme", url: "javascript:alert(1)", wantErr: true, errMsg: "got: javascript"},
		{name: "no scheme", url: "github.com", wantErr: true, errMsg: "url must use http:// or https://"},
		{name: "no host", url: "https://", wantErr: true, errMsg: "url missing host/domain"},
		{name: "space in host", url: "http://example .com", wantErr: true, errMsg: "invalid URL format"},
		{name: "at limit", url: "https://github.com/" + strings.Repeat("a", MaxBrowserURLLength-20)},
		{
			name:    "over limit",
			url:     "https://github.com/" + strings.Repeat("a", MaxBrowserURLLength),
			wantErr: true,
			errMsg:  "url exceeds maximum length of 8192",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLaunchable(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateLaunchable(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateLaunchable(%q) error = %v, want error containing %q", tt.url, err, tt.errMsg)
			}
		})
	}
}

func TestValidateLaunchable(t *testing.T) {
	long := "https://github.com/o/r/issues/new?body=" + strings.Repeat("a", MaxURLLength)
	if err := ValidateHTTPSOnly(long); err == nil {
		t.Fatal("ValidateHTTPSOnly() should reject a report-sized URL")
	}
	if err := ValidateLaunchable(long); err != nil {
		t.Errorf("ValidateLaunchable() error = %v", err)
	}

	tooLong := "https://github.com/o/r/issues/new?body=" + strings.Repeat("a", MaxBrowserURLLength)
	if err := ValidateLaunchable(tooLong); err == nil {
		t.Error("ValidateLaunchable() should reject URLs over MaxBrowserURLLength")
	}
	if err := ValidateLaunchable("file:///tmp/report.md"); err == nil {
		t.Error("ValidateLaunchable() should reject file URLs")
	}
}

func TestValidateHTTPSOnly(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https", "https://github.com", false},
		{"http localhost", "http://localhost:3000", false},
		{"http loopback", "http://127.0.0.1:8080", false},
		{"http ipv6 loopback", "http://[::1]:3000", false},
		{"http remote", "http://github.com", true},
		{"http private address", "http://192.168.1.1", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHTTPSOnly(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHTTPSOnly(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		errMsg string
	}{
		{name: "github", domain: "github.com"},
		{name: "enterprise host", domain: "git.example-corp.internal"},
		{name: "localhost", domain: "localhost"},
		{name: "trimmed", domain: "  github.com "},
		{name: "empty", domain: " ", errMsg: "domain cannot be empty"},
		{name: "with scheme", domain: "https://github.com", errMsg: "domain should not include protocol"},
		{name: "with port", domain: "github.com:443", errMsg: "domain should not include port"},
		{name: "no dot", domain: "github", errMsg: "domain must have at least one dot"},
		{name: "empty label", domain: "github..com", errMsg: "domain has empty label"},
		{name: "trailing dot", domain: "github.com.", errMsg: "domain has empty label"},
		{name: "leading hyphen", domain: "-github.com", errMsg: "cannot start or end with hyphen"},
		{name: "underscore", domain: "git_hub.com", errMsg: "invalid character"},
		{name: "slash", domain: "github.com/SapuSeven", errMsg: "invalid character"},
		{name: "long label", domain: strings.Repeat("a", 64) + ".com", errMsg: "exceeds 63 characters"},
		{name: "long domain", domain: strings.Repeat("a.", 130) + "com", errMsg: "exceeds maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDomain(tt.domain)
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("ValidateDomain(%q) unexpected error: %v", tt.domain, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateDomain(%q) error = %v, want error containing %q", tt.domain, err, tt.errMsg)
			}
		})
	}
}
