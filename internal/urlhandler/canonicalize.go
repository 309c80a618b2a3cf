package urlhandler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	schemeHTTP  = "http"
	schemeHTTPS = "https"

	// httpsPort is the one port that flips scheme inference to https for
	// schemeless addresses. Every other port means plaintext http.
	httpsPort = 443
)

// Canonicalize turns a raw address into a fully qualified http/https URL.
//
// Addresses with an explicit http/https scheme (matched case-insensitively)
// are normalized: scheme and host are lowercased, the scheme's default port
// is stripped, and an empty path becomes "/". Addresses with any other
// explicit scheme are rejected - a foreign scheme is never coerced to HTTP.
//
// Schemeless addresses get a scheme inferred from their port: exactly 443
// means https, anything else (including no port) means http. The schemeless
// form keeps its port and does not gain a trailing slash, so
// "www.example.com" canonicalizes to "http://www.example.com".
func Canonicalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty address", ErrUnparseableAddress)
	}

	if strings.Contains(trimmed, "://") {
		return canonicalizeExplicit(trimmed)
	}
	return canonicalizeSchemeless(trimmed)
}

// canonicalizeExplicit handles addresses that already carry a scheme.
func canonicalizeExplicit(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnparseableAddress, raw, err)
	}

	switch strings.ToLower(u.Scheme) {
	case schemeHTTP, schemeHTTPS:
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingHost, raw)
	}

	// Strip the scheme's default port. A non-default port stays, even when
	// it is the other scheme's default (http://host:443 keeps :443).
	if u.Scheme == schemeHTTP {
		u.Host = strings.TrimSuffix(u.Host, ":80")
	} else {
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}

	if u.Path == "" {
		u.Path = "/"
	}

	return u.String(), nil
}

// canonicalizeSchemeless handles addresses with no scheme at all. The scheme
// is inferred from the port before parsing, then the composed URL is parsed
// to validate and normalize it.
func canonicalizeSchemeless(raw string) (string, error) {
	portText := trailingPort(raw)
	scheme := schemeForPort(portText)
	composed := scheme + "://" + raw

	u, err := url.Parse(composed)
	if err != nil {
		if portText != "" {
			// The port text is what broke the parser. Degrade to the
			// composed form instead of rejecting: a weird port is not
			// worth losing the measurement over.
			return composed, nil
		}
		return "", fmt.Errorf("%w: %q: %v", ErrUnparseableAddress, raw, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingHost, raw)
	}

	return u.String(), nil
}

// trailingPort extracts the textual port from the authority part of a
// schemeless address. It returns "" when no port is present. The text is
// returned unvalidated; schemeForPort owns the lenient parsing.
func trailingPort(raw string) string {
	authority := raw
	if i := strings.IndexAny(authority, "/?#"); i >= 0 {
		authority = authority[:i]
	}
	if i := strings.LastIndex(authority, "@"); i >= 0 {
		authority = authority[i+1:]
	}

	i := strings.LastIndex(authority, ":")
	if i < 0 || i < strings.LastIndex(authority, "]") {
		return ""
	}
	return authority[i+1:]
}

// schemeForPort applies the port-to-scheme inference rule: exactly 443 means
// https, anything else means http. A port that does not parse as an integer
// gets one retry with its final character stripped, which covers URL parsers
// that leave a stray trailing character attached to the port token. A port
// that still does not parse falls back to http rather than failing.
func schemeForPort(portText string) string {
	if portText == "" {
		return schemeHTTP
	}

	port, err := strconv.Atoi(portText)
	if err != nil {
		port, err = strconv.Atoi(portText[:len(portText)-1])
	}
	if err == nil && port == httpsPort {
		return schemeHTTPS
	}
	return schemeHTTP
}

// IsHTTPURL validates that raw already is a parseable URL with an http or
// https scheme, without performing any scheme inference. It returns the
// input unchanged on success.
func IsHTTPURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrUnparseableAddress, raw, err)
	}

	switch strings.ToLower(u.Scheme) {
	case schemeHTTP, schemeHTTPS:
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingHost, raw)
	}

	return raw, nil
}
