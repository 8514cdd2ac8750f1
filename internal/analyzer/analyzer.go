package analyzer

import (
	"context"
	"math"

	"go.uber.org/zap"

	"phishguard/internal/models"
)

// Prober is the network capability consumed by the URL rules. Implementations
// carry their own bounded timeouts; a failure is reported, never fatal.
type Prober interface {
	// RedirectCount fetches the URL following redirects and returns the
	// number of intermediate hops.
	RedirectCount(ctx context.Context, rawURL string) (int, error)
	// SecureReachable reports whether an HTTPS request to the domain
	// completes successfully.
	SecureReachable(ctx context.Context, domain string) bool
}

// Result is the outcome of analyzing one submission payload.
type Result struct {
	Verdict models.Verdict
	Score   float64
	Reasons []string
	URLs    []string
}

// Analyzer runs the heuristic rule battery over a message and its URLs.
type Analyzer struct {
	cfg    Config
	prober Prober
	logger *zap.Logger
}

func New(cfg Config, prober Prober, logger *zap.Logger) *Analyzer {
	return &Analyzer{cfg: cfg, prober: prober, logger: logger}
}

// Analyze scores the payload. When urls is empty, candidates are extracted
// from the message text. An empty payload yields verdict safe with score 0
// and no reasons; network problems degrade into low-weight reasons and never
// abort the analysis.
func (a *Analyzer) Analyze(ctx context.Context, message string, urls []string) Result {
	if len(urls) == 0 {
		urls = ExtractURLs(message)
	}

	var contributions []contribution
	if c := a.keywordRule(message); c != nil {
		contributions = append(contributions, *c)
	}
	for _, u := range urls {
		contributions = append(contributions, a.urlRules(ctx, u)...)
	}

	score := 0.0
	reasons := make([]string, 0, len(contributions))
	for _, c := range contributions {
		score += c.weight
		reasons = append(reasons, c.reason)
	}
	if score > 1.0 {
		score = 1.0
	}
	score = math.Round(score*100) / 100

	verdict := a.verdictFor(score)
	a.logger.Debug("analysis complete",
		zap.String("verdict", string(verdict)),
		zap.Float64("score", score),
		zap.Int("urls", len(urls)),
	)

	return Result{
		Verdict: verdict,
		Score:   score,
		Reasons: reasons,
		URLs:    urls,
	}
}

// verdictFor maps a final score to its verdict tier. Lower bounds are
// inclusive.
func (a *Analyzer) verdictFor(score float64) models.Verdict {
	switch {
	case score >= a.cfg.MaliciousThreshold:
		return models.VerdictMalicious
	case score >= a.cfg.SuspiciousThreshold:
		return models.VerdictSuspicious
	default:
		return models.VerdictSafe
	}
}
