// Package url provides URL manipulation utilities for the shell.
package url

import (
	"net/url"
	"strings"
)

// Scheme is the shell's internal URI scheme.
const Scheme = "tabshell://"

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if hasScheme(input) {
		return input
	}
	if LooksLikeURL(input) {
		return "https://" + input
	}
	return input
}

// LooksLikeURL checks if the input appears to be a URL rather than free text.
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if hasScheme(input) {
		return true
	}
	// Contains a dot and no spaces = likely a URL
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

func hasScheme(input string) bool {
	switch {
	case strings.HasPrefix(input, "http://"),
		strings.HasPrefix(input, "https://"),
		strings.HasPrefix(input, Scheme),
		strings.HasPrefix(input, "file://"),
		strings.HasPrefix(input, "about:"):
		return true
	}
	return false
}

// Resolve makes raw absolute against origin.
// Absolute inputs and inputs that fail to parse are returned unchanged.
func Resolve(origin, raw string) string {
	if raw == "" || origin == "" {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil || ref.IsAbs() {
		return raw
	}
	base, err := url.Parse(origin)
	if err != nil || !base.IsAbs() {
		return raw
	}
	return base.ResolveReference(ref).String()
}

// Origin returns scheme://host of rawURL, or "" when rawURL has no host.
func Origin(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host
}

// PathAfter returns the part of rawURL's path that follows marker.
// When marker is absent the whole path is returned.
func PathAfter(rawURL, marker string) string {
	path := rawURL
	if parsed, err := url.Parse(rawURL); err == nil {
		path = parsed.Path
	}
	if idx := strings.Index(path, marker); idx >= 0 {
		return path[idx+len(marker):]
	}
	return path
}

// ExtractDomain extracts the host from a URL string without a leading "www.".
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
