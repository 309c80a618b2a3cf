package httpclient

import "time"

// HTTPClientConfig holds configuration for building HTTP clients.
type HTTPClientConfig struct {
	Timeout               time.Duration // Whole-request timeout (0 = no timeout)
	DialTimeout           time.Duration // Connection dial timeout
	TLSHandshakeTimeout   time.Duration // TLS handshake timeout
	ResponseHeaderTimeout time.Duration // Time to wait for response headers
	InsecureSkipVerify    bool          // Skip TLS verification
	FollowRedirects       bool          // Whether to follow redirects
	MaxRedirects          int           // Maximum number of redirects to follow
	DisableKeepAlives     bool          // Close the connection after each request
	EnableHTTP2           bool          // Enable HTTP/2 support
	UserAgent             string        // User-Agent header for all requests
}

// DefaultHTTPClientConfig returns the default HTTP client configuration.
// The zero whole-request timeout is deliberate: a time bound is an opt-in
// extension point, not a baked-in behavior.
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:               0,
		DialTimeout:           10 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 0,
		InsecureSkipVerify:    false,
		FollowRedirects:       true,
		MaxRedirects:          10,
		DisableKeepAlives:     false,
		EnableHTTP2:           true,
	}
}
