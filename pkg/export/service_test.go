package export

import (
	"bytes"
	"testing"

	"github.com/menshealthfinder/api/pkg/revenue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteOpportunities(t *testing.T) {
	report := &revenue.Report{
		TotalLostRevenue: 12600,
		ListingsAnalyzed: 3,
		Breakdown: revenue.Breakdown{
			NotIndexed: 8000,
			BasicTier:  4600,
		},
		Recommendations: []revenue.Recommendation{
			{
				Slug:             "apex-mens-health-austin",
				Name:             "Apex Men's Health",
				PrimaryIssue:     revenue.IssueNotIndexed,
				PotentialRevenue: 10000,
				EstimatedLoss:    8000,
			},
			{
				Slug:             "lone-star-wellness-dallas",
				Name:             "Lone Star Wellness",
				PrimaryIssue:     revenue.IssueBasicTier,
				PotentialRevenue: 7000,
				EstimatedLoss:    4600,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOpportunities(&buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Opportunities"}, f.GetSheetList())

	total, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "12600", total)

	name, err := f.GetCellValue("Opportunities", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Apex Men's Health", name)

	issue, err := f.GetCellValue("Opportunities", "D3")
	require.NoError(t, err)
	assert.Equal(t, revenue.IssueBasicTier, issue)
}
