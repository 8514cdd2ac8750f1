// Package probe implements the network capability behind the analyzer's
// redirect and certificate rules: plain HTTP fetches with bounded timeouts
// and no retries.
package probe

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// HTTPProber probes URLs and domains over real HTTP. A single failed attempt
// is final; callers turn failures into low-weight reasons.
type HTTPProber struct {
	fetchTimeout time.Duration
	tlsClient    *http.Client
}

// NewHTTPProber builds a prober whose fetch (redirect-following) and
// secure-transport requests are bounded by the given timeouts.
func NewHTTPProber(fetchTimeout, tlsTimeout time.Duration) *HTTPProber {
	return &HTTPProber{
		fetchTimeout: fetchTimeout,
		tlsClient:    &http.Client{Timeout: tlsTimeout},
	}
}

// RedirectCount fetches rawURL following redirects and returns the number of
// intermediate hops.
func (p *HTTPProber) RedirectCount(ctx context.Context, rawURL string) (int, error) {
	// The client is per-call because CheckRedirect closes over the counter.
	redirects := 0
	client := &http.Client{
		Timeout: p.fetchTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			redirects = len(via)
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := client.Do(req)
	if err != nil {
		logrus.WithField("url", rawURL).WithError(err).Debug("fetch failed")
		return 0, err
	}
	defer resp.Body.Close()

	return redirects, nil
}

// SecureReachable reports whether an HTTPS GET against the domain completes
// the TLS handshake and returns a non-5xx status.
func (p *HTTPProber) SecureReachable(ctx context.Context, domain string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://"+domain, nil)
	if err != nil {
		return false
	}

	resp, err := p.tlsClient.Do(req)
	if err != nil {
		logrus.WithField("domain", domain).WithError(err).Debug("secure transport probe failed")
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < 500
}
