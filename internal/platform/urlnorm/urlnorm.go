// Package urlnorm derives canonical host identifiers from the address
// strings stored in vault records, so differently-formatted URLs pointing
// at the same host compare equal during grouping.
package urlnorm

import (
	"net/url"
	"strings"

	"vaultdedup/internal/platform/errors"
	"vaultdedup/internal/platform/logx"
	"vaultdedup/internal/platform/validator"
)

// Normalizer extracts canonical domains from raw address strings.
type Normalizer struct {
	logger logx.Logger
}

// New creates a new address normalizer.
func New(logger logx.Logger) *Normalizer {
	return &Normalizer{
		logger: logger.With("component", "urlnorm"),
	}
}

// NormalizeURL ensures an address has a scheme and no trailing slash.
// Addresses starting with "www." also get the https scheme prefixed, so
// the "www." survives into URL parsing and is only stripped from the
// parsed host.
func (n *Normalizer) NormalizeURL(raw string) string {
	if raw == "" {
		return ""
	}
	if !validator.HasScheme(raw) {
		raw = "https://" + raw
	}
	return strings.TrimSuffix(raw, "/")
}

// ExtractDomain resolves a raw address string to a canonical host.
// It returns:
//   - the input unchanged when it is an IP literal or already a bare
//     domain name,
//   - otherwise the lowercased host of the parsed URL with a leading
//     "www." stripped,
//   - "" when no domain could be determined.
//
// A URL parse failure is recoverable: it is logged as a warning and
// reported as an ErrUnparsableAddress so the caller can fall back to
// raw-string grouping.
func (n *Normalizer) ExtractDomain(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	// IP literals bypass URL normalization entirely.
	if validator.IsIP(raw) {
		return raw, nil
	}

	// Already a bare domain name, nothing to do.
	if !validator.HasSchemeOrWWW(raw) && validator.IsDomainName(raw) {
		return raw, nil
	}

	parsed, err := url.Parse(n.NormalizeURL(raw))
	if err != nil {
		n.logger.Warn("could not parse address", "address", raw, "error", err.Error())
		return "", errors.Wrapf(errors.ErrUnparsableAddress, "%q", raw)
	}

	host := strings.ToLower(parsed.Host)
	host = strings.TrimPrefix(host, "www.")
	return host, nil
}
