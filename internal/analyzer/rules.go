package analyzer

import (
	"context"
	"fmt"
	"strings"
)

// contribution is a single triggered rule: a human-readable reason plus the
// weight it adds to the score.
type contribution struct {
	reason string
	weight float64
}

// keywordRule scans the lowercased message for the configured keyword list
// and emits one capped contribution for the whole message.
func (a *Analyzer) keywordRule(message string) *contribution {
	text := strings.ToLower(message)
	count := 0
	for _, k := range a.cfg.Keywords {
		if strings.Contains(text, k) {
			count++
		}
	}
	if count == 0 {
		return nil
	}
	weight := a.cfg.KeywordWeight * float64(count)
	if weight > a.cfg.KeywordCap {
		weight = a.cfg.KeywordCap
	}
	return &contribution{
		reason: fmt.Sprintf("suspicious keywords (%d)", count),
		weight: weight,
	}
}

// urlRules evaluates the per-URL rule battery in its fixed order and returns
// the triggered contributions. Only the redirect/fetch and certificate rules
// touch the network, via the injected prober.
func (a *Analyzer) urlRules(ctx context.Context, rawURL string) []contribution {
	var out []contribution

	if !strings.HasPrefix(strings.ToLower(rawURL), "https://") {
		out = append(out, contribution{"no HTTPS (insecure link)", a.cfg.NoHTTPSWeight})
	}

	if IsIPLiteral(Hostname(rawURL)) {
		out = append(out, contribution{"URL uses raw IP address", a.cfg.IPHostWeight})
	}

	parts := Decompose(rawURL)
	if len(parts.Domain) > a.cfg.LongDomainThreshold {
		out = append(out, contribution{"long domain name", a.cfg.LongDomainWeight})
	}

	for _, brand := range a.cfg.Brands {
		if strings.Contains(parts.Domain, brand) && parts.Domain != brand {
			out = append(out, contribution{
				fmt.Sprintf("possible typosquat/brand mimicry (%s)", brand),
				a.cfg.BrandMimicryWeight,
			})
			break
		}
	}

	// Fetch either succeeds, revealing the redirect chain, or fails; the two
	// reasons are mutually exclusive per URL.
	if redirects, err := a.prober.RedirectCount(ctx, rawURL); err != nil {
		out = append(out, contribution{"could not fetch URL (network or blocked)", a.cfg.FetchFailureWeight})
	} else if redirects >= a.cfg.RedirectThreshold {
		out = append(out, contribution{
			fmt.Sprintf("%d redirects (suspicious)", redirects),
			a.cfg.RedirectWeight,
		})
	}

	// The certificate probe targets the registered domain, not the raw URL,
	// and runs regardless of the fetch outcome above.
	domain := parts.RegisteredDomain
	if domain == "" {
		domain = parts.Domain
	}
	if !a.prober.SecureReachable(ctx, domain) {
		out = append(out, contribution{"ssl certificate check failed", a.cfg.CertFailureWeight})
	}

	return out
}
