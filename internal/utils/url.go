package utils

import (
	"net/url"
	"strings"
)

// ValidateURL reports whether rawURL is an absolute http(s) URL with a host.
func ValidateURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	return parsed.Host != ""
}

// NormalizeURL strips a trailing slash so equal endpoints compare equal.
func NormalizeURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	return strings.TrimRight(rawURL, "/")
}
