package analyzer

// Config holds the rule lists, weights and verdict thresholds. It is built
// once and injected at construction so tests can substitute alternate rule
// sets; the analyzer never mutates it.
type Config struct {
	Keywords []string
	Brands   []string

	KeywordWeight float64 // per keyword match
	KeywordCap    float64 // keyword contribution ceiling

	NoHTTPSWeight       float64
	IPHostWeight        float64
	LongDomainWeight    float64
	LongDomainThreshold int // domain label length
	BrandMimicryWeight  float64
	RedirectWeight      float64
	RedirectThreshold   int // hops
	FetchFailureWeight  float64
	CertFailureWeight   float64

	SuspiciousThreshold float64
	MaliciousThreshold  float64
}

// DefaultConfig returns the production rule set.
func DefaultConfig() Config {
	return Config{
		Keywords: []string{
			"urgent", "verify", "verify your", "login", "password", "update",
			"confirm", "bank", "account", "click", "suspend", "limited",
			"secure", "authentication",
		},
		Brands: []string{
			"google", "microsoft", "amazon", "paypal", "apple", "facebook",
			"aws", "netflix",
		},

		KeywordWeight: 0.2,
		KeywordCap:    0.4,

		NoHTTPSWeight:       0.20,
		IPHostWeight:        0.20,
		LongDomainWeight:    0.05,
		LongDomainThreshold: 25,
		BrandMimicryWeight:  0.15,
		RedirectWeight:      0.10,
		RedirectThreshold:   3,
		FetchFailureWeight:  0.05,
		CertFailureWeight:   0.15,

		SuspiciousThreshold: 0.3,
		MaliciousThreshold:  0.6,
	}
}
