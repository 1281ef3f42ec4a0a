// Package revenue produces heuristic "lost revenue" estimates per listing.
// The figures are explicitly motivational estimates built from industry
// benchmark constants, not financial computations.
package revenue

import (
	"math/rand"
	"sort"
)

// Config holds the benchmark constants. These are configuration, not logic:
// none of the defaults come from calibrated measurements.
type Config struct {
	LeadConversionRate    float64            // site click -> lead
	PatientConversionRate float64            // lead -> patient
	RevenuePerPatient     float64            // monthly revenue per converted patient
	MarketMultipliers     map[string]float64 // by state, default 1.0
	BaseClicksByState     map[string]int     // estimated monthly clicks when no real metrics exist
	DefaultBaseClicks     int
}

// DefaultConfig returns the standard benchmark constants.
func DefaultConfig() Config {
	return Config{
		LeadConversionRate:    0.05,
		PatientConversionRate: 0.20,
		RevenuePerPatient:     450,
		MarketMultipliers: map[string]float64{
			"CA": 1.4, "NY": 1.35, "TX": 1.2, "FL": 1.2, "IL": 1.1,
			"WA": 1.15, "MA": 1.15, "CO": 1.05, "AZ": 1.0, "GA": 1.0,
		},
		BaseClicksByState: map[string]int{
			"CA": 320, "NY": 300, "TX": 260, "FL": 250, "IL": 200,
			"WA": 190, "MA": 180, "CO": 160, "AZ": 150, "GA": 150,
		},
		DefaultBaseClicks: 120,
	}
}

// Loss fractions applied per issue, in evaluation order.
const (
	lossNotIndexed     = 0.8
	lossBasicTier      = 0.4
	lossMissingContent = 0.3
	lossNoCallTracking = 0.25

	// contentThreshold is the fraction of potential clicks below which the
	// listing is considered under-performing on content.
	contentThreshold = 0.3

	jitterFraction = 0.2
	maxRecommended = 10
)

// Issue labels used in breakdowns and recommendations.
const (
	IssueNotIndexed     = "Not Indexed"
	IssueBasicTier      = "Basic Tier"
	IssueMissingContent = "Missing Content"
	IssueNoCallTracking = "No Call Tracking"
)

// ListingInput is the per-listing input to the estimator.
type ListingInput struct {
	Slug    string
	Name    string
	State   string
	Tier    string // free, standard, advanced; free/empty is "basic"
	Indexed bool

	// ActualClicks are real 30-day click metrics. HasMetrics distinguishes a
	// genuine zero from "no data", which falls back to the per-state base
	// table with jitter.
	ActualClicks int
	HasMetrics   bool
}

// Breakdown is the estimated loss by category.
type Breakdown struct {
	NotIndexed     float64 `json:"not_indexed"`
	BasicTier      float64 `json:"basic_tier"`
	MissingContent float64 `json:"missing_content"`
	NoCallTracking float64 `json:"no_call_tracking"`
}

// Recommendation is one listing's estimate with its primary issue.
type Recommendation struct {
	Slug             string  `json:"slug"`
	Name             string  `json:"name"`
	PrimaryIssue     string  `json:"primary_issue"`
	PotentialRevenue float64 `json:"potential_revenue"`
	EstimatedLoss    float64 `json:"estimated_loss"`
}

// Report is the aggregate estimator output.
type Report struct {
	TotalLostRevenue float64          `json:"total_lost_revenue"`
	Breakdown        Breakdown        `json:"breakdown"`
	Recommendations  []Recommendation `json:"recommendations"`
	ListingsAnalyzed int              `json:"listings_analyzed"`
}

// Estimator computes lost-revenue estimates. The random source is injectable
// so that click-estimate jitter is deterministic under test; listings with
// real metrics never touch it.
type Estimator struct {
	cfg Config
	rng *rand.Rand
}

// New creates an estimator with the given config and jitter seed.
func New(cfg Config, seed int64) *Estimator {
	return &Estimator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewDefault creates an estimator with default constants.
func NewDefault() *Estimator {
	return New(DefaultConfig(), 1)
}

// Estimate produces the aggregate report for a set of listings, with
// per-listing recommendations ranked by estimated loss (descending) and
// capped at the top 10.
func (e *Estimator) Estimate(listings []ListingInput) *Report {
	report := &Report{ListingsAnalyzed: len(listings)}

	for _, l := range listings {
		rec, bd := e.estimateListing(l)
		report.TotalLostRevenue += rec.EstimatedLoss
		report.Breakdown.NotIndexed += bd.NotIndexed
		report.Breakdown.BasicTier += bd.BasicTier
		report.Breakdown.MissingContent += bd.MissingContent
		report.Breakdown.NoCallTracking += bd.NoCallTracking
		if rec.EstimatedLoss > 0 {
			report.Recommendations = append(report.Recommendations, rec)
		}
	}

	sort.SliceStable(report.Recommendations, func(i, j int) bool {
		return report.Recommendations[i].EstimatedLoss > report.Recommendations[j].EstimatedLoss
	})
	if len(report.Recommendations) > maxRecommended {
		report.Recommendations = report.Recommendations[:maxRecommended]
	}

	return report
}

// estimateListing runs the computation chain for one listing. Only the first
// unexplained issue becomes the primary-issue label; later issues still add
// to the loss buckets.
func (e *Estimator) estimateListing(l ListingInput) (Recommendation, Breakdown) {
	potentialClicks := e.potentialClicks(l)
	potential := float64(potentialClicks) *
		e.cfg.LeadConversionRate *
		e.cfg.PatientConversionRate *
		e.cfg.RevenuePerPatient *
		e.marketMultiplier(l.State)

	rec := Recommendation{
		Slug:             l.Slug,
		Name:             l.Name,
		PotentialRevenue: potential,
	}
	var bd Breakdown

	basicTier := l.Tier == "" || l.Tier == "free"

	if !l.Indexed {
		loss := potential * lossNotIndexed
		bd.NotIndexed = loss
		rec.EstimatedLoss += loss
		rec.PrimaryIssue = IssueNotIndexed
		return rec, bd
	}

	if basicTier {
		loss := potential * lossBasicTier
		bd.BasicTier = loss
		rec.EstimatedLoss += loss
		if rec.PrimaryIssue == "" {
			rec.PrimaryIssue = IssueBasicTier
		}
	}
	if float64(e.actualClicks(l)) < contentThreshold*float64(potentialClicks) {
		loss := potential * lossMissingContent
		bd.MissingContent = loss
		rec.EstimatedLoss += loss
		if rec.PrimaryIssue == "" {
			rec.PrimaryIssue = IssueMissingContent
		}
	}
	if basicTier {
		loss := potential * lossNoCallTracking
		bd.NoCallTracking = loss
		rec.EstimatedLoss += loss
	}

	return rec, bd
}

// potentialClicks returns real clicks when metrics exist, otherwise the
// per-state base estimate with ±20% jitter.
func (e *Estimator) potentialClicks(l ListingInput) int {
	base, ok := e.cfg.BaseClicksByState[l.State]
	if !ok {
		base = e.cfg.DefaultBaseClicks
	}
	if l.HasMetrics && l.ActualClicks > base {
		// A listing already outperforming the benchmark sets its own bar.
		return l.ActualClicks
	}
	if l.HasMetrics {
		return base
	}
	jitter := 1 + jitterFraction*(2*e.rng.Float64()-1)
	return int(float64(base) * jitter)
}

func (e *Estimator) actualClicks(l ListingInput) int {
	if l.HasMetrics {
		return l.ActualClicks
	}
	// Without metrics assume the listing captures none of its potential.
	return 0
}

func (e *Estimator) marketMultiplier(state string) float64 {
	if m, ok := e.cfg.MarketMultipliers[state]; ok {
		return m
	}
	return 1.0
}
