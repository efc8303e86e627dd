package clientip

import (
	"net"
	"net/http"
	"net/textproto"
	"strings"
)

// DefaultHeaders are consulted in order before falling back to RemoteAddr.
var DefaultHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// Config lists the proxy headers the deployment can trust.
type Config struct {
	TrustedHeaders []string `env:"CLIENTIP_TRUSTED_HEADERS" envDefault:"CF-Connecting-IP,X-Forwarded-For,X-Real-IP" envSeparator:","` // TrustedHeaders are read in order; empty means RemoteAddr only.
}

// Resolver extracts the originating client address of a request.
// Forwarded headers are spoofable, so only headers set by a proxy in front of
// the service may be trusted.
type Resolver struct {
	headers []string
}

// NewResolver trusts the given headers in order. Without headers only the
// TCP peer address is used.
func NewResolver(headers ...string) Resolver {
	canonical := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			canonical = append(canonical, textproto.CanonicalMIMEHeaderKey(h))
		}
	}
	return Resolver{headers: canonical}
}

// NewFromConfig builds a Resolver trusting cfg.TrustedHeaders.
func NewFromConfig(cfg Config) Resolver {
	return NewResolver(cfg.TrustedHeaders...)
}

// IP returns the normalised client address, or "" when none is valid.
// X-Forwarded-For contributes its first valid entry.
func (res Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

var defaultResolver = NewResolver(DefaultHeaders...)

// GetIP resolves the client address trusting DefaultHeaders.
func GetIP(r *http.Request) string {
	return defaultResolver.IP(r)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
