package analyzer

import (
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var (
	schemePattern     = regexp.MustCompile(`(?i)^https?://`)
	dottedQuadPattern = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+$`)
)

// DomainParts is the decomposition of a URL's host into its registrable
// pieces, e.g. "mail.example.co.uk" -> {Subdomain: "mail", Domain: "example",
// Suffix: "co.uk", RegisteredDomain: "example.co.uk"}.
type DomainParts struct {
	Subdomain        string
	Domain           string
	Suffix           string
	RegisteredDomain string
}

// Hostname strips the scheme and returns the portion of the URL before the
// first slash.
func Hostname(rawURL string) string {
	host := schemePattern.ReplaceAllString(rawURL, "")
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	return host
}

// IsIPLiteral reports whether host looks like a dotted-quad IPv4 address.
// Syntactic only: octet ranges are not validated.
func IsIPLiteral(host string) bool {
	return dottedQuadPattern.MatchString(host)
}

// Decompose splits the URL's host using the public suffix list, so multi-part
// suffixes like "co.uk" are handled correctly. When no eTLD+1 can be derived
// (IP literals, bare labels), Domain falls back to the whole host and
// RegisteredDomain is empty.
func Decompose(rawURL string) DomainParts {
	host := strings.ToLower(Hostname(rawURL))
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}

	if host == "" {
		return DomainParts{}
	}
	if IsIPLiteral(host) {
		return DomainParts{Domain: host}
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return DomainParts{Domain: host}
	}

	suffix, _ := publicsuffix.PublicSuffix(host)
	parts := DomainParts{
		Suffix:           suffix,
		RegisteredDomain: etld1,
		Domain:           strings.TrimSuffix(etld1, "."+suffix),
	}
	if sub := strings.TrimSuffix(host, etld1); sub != "" {
		parts.Subdomain = strings.TrimSuffix(sub, ".")
	}
	return parts
}
