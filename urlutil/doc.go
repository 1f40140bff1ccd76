// Package urlutil provides URL validation and query encoding for issue report links.
//
// # Validation
//
// ValidateHTTPSOnly checks configuration URLs such as the tracker base URL.
// It rejects empty input, non-HTTP schemes (file:, javascript:,
// data:), missing hosts and anything over MaxURLLength:
//
//	if err := urlutil.ValidateHTTPSOnly("https://" + host); err != nil {
//		return fmt.Errorf("invalid tracker host: %w", err)
//	}
//
// Generated report URLs carry whole logs, so the launcher validates them with
// ValidateLaunchable, which allows up to MaxBrowserURLLength.
//
// ValidateDomain checks a bare host name ("github.com") before it is used to
// build a URL.
//
// # Query Encoding
//
// EncodeQuery writes parameters in the order given and escapes every byte
// outside the RFC 3986 unreserved set. A value can therefore never add a
// parameter or end the query early, whatever it contains:
//
//	q := urlutil.EncodeQuery(
//		urlutil.Param{Key: "title", Value: "[Crash Report]"},
//		urlutil.Param{Key: "body", Value: log},
//	)
//	// title=%5BCrash%20Report%5D&body=...
package urlutil
