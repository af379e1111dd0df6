// Package validator centralizes the string-shape checks the engine relies
// on: IP literals, bare domain names, and URL scheme prefixes.
package validator

import (
	"net"
	"regexp"
	"strings"
)

// domainNameRegex matches a bare domain name: dot-separated labels of
// alphanumerics and inner hyphens, with an alphabetic final label of at
// least two characters.
var domainNameRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// IsIP reports whether s is a valid IP address (v4 or v6).
func IsIP(s string) bool {
	return net.ParseIP(s) != nil
}

// IsIPv4 reports whether s is a valid IPv4 address.
func IsIPv4(s string) bool {
	parsed := net.ParseIP(s)
	return parsed != nil && parsed.To4() != nil
}

// IsIPv6 reports whether s is a valid IPv6 address.
func IsIPv6(s string) bool {
	parsed := net.ParseIP(s)
	return parsed != nil && parsed.To4() == nil
}

// IsDomainName reports whether s resembles a bare domain name.
func IsDomainName(s string) bool {
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	return domainNameRegex.MatchString(s)
}

// HasScheme reports whether s starts with an explicit http or https scheme.
func HasScheme(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// HasSchemeOrWWW reports whether s starts with a scheme or a "www." prefix.
// Inputs without either are candidates for the bare-domain check.
func HasSchemeOrWWW(s string) bool {
	return HasScheme(s) || strings.HasPrefix(s, "www.")
}

// IsEmpty reports whether s is empty or only whitespace.
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}
