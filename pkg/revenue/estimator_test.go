package revenue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	// Round numbers make the arithmetic in assertions obvious.
	cfg.RevenuePerPatient = 1000
	cfg.MarketMultipliers = map[string]float64{"TX": 2.0}
	cfg.BaseClicksByState = map[string]int{"TX": 100}
	cfg.DefaultBaseClicks = 100
	return cfg
}

func TestEstimate_NotIndexed(t *testing.T) {
	e := New(testConfig(), 1)

	report := e.Estimate([]ListingInput{{
		Slug:         "apex-mens-health-austin",
		Name:         "Apex Men's Health",
		State:        "TX",
		Tier:         "advanced",
		Indexed:      false,
		ActualClicks: 100,
		HasMetrics:   true,
	}})

	// potential = 100 * 0.05 * 0.20 * 1000 * 2.0 = 2000
	require.Len(t, report.Recommendations, 1)
	rec := report.Recommendations[0]
	assert.InDelta(t, 2000.0, rec.PotentialRevenue, 0.001)
	assert.Equal(t, IssueNotIndexed, rec.PrimaryIssue)
	assert.InDelta(t, 0.8*2000.0, report.Breakdown.NotIndexed, 0.001)
	assert.InDelta(t, 0.8*2000.0, report.TotalLostRevenue, 0.001)

	// Not-indexed explains the loss: nothing lands in the other buckets.
	assert.Zero(t, report.Breakdown.BasicTier)
	assert.Zero(t, report.Breakdown.MissingContent)
	assert.Zero(t, report.Breakdown.NoCallTracking)
}

func TestEstimate_BasicTierChain(t *testing.T) {
	e := New(testConfig(), 1)

	report := e.Estimate([]ListingInput{{
		Slug:         "lowtide-clinic-austin",
		Name:         "Lowtide Clinic",
		State:        "TX",
		Tier:         "free",
		Indexed:      true,
		ActualClicks: 10, // below 30% of 100 potential clicks
		HasMetrics:   true,
	}})

	// potential = 2000; losses: basic 0.4 + missing content 0.3 + no call tracking 0.25
	require.Len(t, report.Recommendations, 1)
	rec := report.Recommendations[0]
	assert.Equal(t, IssueBasicTier, rec.PrimaryIssue)
	assert.InDelta(t, 2000*0.4, report.Breakdown.BasicTier, 0.001)
	assert.InDelta(t, 2000*0.3, report.Breakdown.MissingContent, 0.001)
	assert.InDelta(t, 2000*0.25, report.Breakdown.NoCallTracking, 0.001)
	assert.InDelta(t, 2000*0.95, report.TotalLostRevenue, 0.001)
}

func TestEstimate_MissingContentPrimaryWhenPaidTier(t *testing.T) {
	e := New(testConfig(), 1)

	report := e.Estimate([]ListingInput{{
		Slug:         "quiet-clinic-austin",
		Name:         "Quiet Clinic",
		State:        "TX",
		Tier:         "standard",
		Indexed:      true,
		ActualClicks: 5,
		HasMetrics:   true,
	}})

	require.Len(t, report.Recommendations, 1)
	rec := report.Recommendations[0]
	assert.Equal(t, IssueMissingContent, rec.PrimaryIssue)
	assert.Zero(t, report.Breakdown.BasicTier)
	assert.Zero(t, report.Breakdown.NoCallTracking)
	assert.InDelta(t, 2000*0.3, report.TotalLostRevenue, 0.001)
}

func TestEstimate_HealthyListingHasNoLoss(t *testing.T) {
	e := New(testConfig(), 1)

	report := e.Estimate([]ListingInput{{
		Slug:         "thriving-clinic-austin",
		Name:         "Thriving Clinic",
		State:        "TX",
		Tier:         "advanced",
		Indexed:      true,
		ActualClicks: 90,
		HasMetrics:   true,
	}})

	assert.Zero(t, report.TotalLostRevenue)
	assert.Empty(t, report.Recommendations)
	assert.Equal(t, 1, report.ListingsAnalyzed)
}

func TestEstimate_IdempotentWithRealMetrics(t *testing.T) {
	listings := []ListingInput{
		{Slug: "a", Name: "A", State: "TX", Tier: "free", Indexed: true, ActualClicks: 10, HasMetrics: true},
		{Slug: "b", Name: "B", State: "TX", Indexed: false, ActualClicks: 50, HasMetrics: true},
		{Slug: "c", Name: "C", State: "TX", Tier: "standard", Indexed: true, ActualClicks: 80, HasMetrics: true},
	}

	e := New(testConfig(), 7)
	first := e.Estimate(listings)
	second := e.Estimate(listings)

	assert.Equal(t, first.TotalLostRevenue, second.TotalLostRevenue)
	assert.Equal(t, first.Breakdown, second.Breakdown)
}

func TestEstimate_JitterStaysWithinBounds(t *testing.T) {
	e := New(testConfig(), 99)

	for i := 0; i < 50; i++ {
		clicks := e.potentialClicks(ListingInput{State: "TX"})
		assert.GreaterOrEqual(t, clicks, 80)
		assert.LessOrEqual(t, clicks, 120)
	}
}

func TestEstimate_RankingAndCap(t *testing.T) {
	e := New(testConfig(), 1)

	var listings []ListingInput
	for i := 0; i < 15; i++ {
		l := ListingInput{
			Slug:       "clinic",
			Name:       "Clinic",
			State:      "TX",
			Tier:       "free",
			Indexed:    i%2 == 0, // alternate severities
			HasMetrics: true,
		}
		listings = append(listings, l)
	}

	report := e.Estimate(listings)
	assert.Len(t, report.Recommendations, 10)
	for i := 1; i < len(report.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			report.Recommendations[i-1].EstimatedLoss,
			report.Recommendations[i].EstimatedLoss)
	}
}

func TestEstimate_UnknownStateUsesDefaults(t *testing.T) {
	cfg := testConfig()
	e := New(cfg, 1)

	report := e.Estimate([]ListingInput{{
		Slug: "somewhere", Name: "Somewhere", State: "MT",
		Indexed: false, ActualClicks: 100, HasMetrics: true,
	}})

	// Multiplier 1.0, potential = 100 * 0.05 * 0.20 * 1000 = 1000
	require.Len(t, report.Recommendations, 1)
	assert.InDelta(t, 1000.0, report.Recommendations[0].PotentialRevenue, 0.001)
}
