// Package export renders the revenue-opportunity report as an Excel workbook
// for sales ops.
package export

import (
	"fmt"
	"io"

	"github.com/menshealthfinder/api/pkg/revenue"
	"github.com/xuri/excelize/v2"
)

// WriteOpportunities writes the report as an .xlsx workbook with a summary
// sheet and the ranked opportunity list.
func WriteOpportunities(w io.Writer, report *revenue.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, report); err != nil {
		return err
	}
	if err := writeOpportunitySheet(f, report); err != nil {
		return err
	}

	// Drop the default sheet excelize creates.
	f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, report *revenue.Report) error {
	const sheet = "Summary"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	rows := [][]any{
		{"Listings analyzed", report.ListingsAnalyzed},
		{"Total estimated lost revenue / month", report.TotalLostRevenue},
		{},
		{"Loss by issue"},
		{revenue.IssueNotIndexed, report.Breakdown.NotIndexed},
		{revenue.IssueBasicTier, report.Breakdown.BasicTier},
		{revenue.IssueMissingContent, report.Breakdown.MissingContent},
		{revenue.IssueNoCallTracking, report.Breakdown.NoCallTracking},
	}
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			f.SetCellValue(sheet, cell, value)
		}
	}
	f.SetColWidth(sheet, "A", "A", 40)
	f.SetColWidth(sheet, "B", "B", 18)
	return nil
}

func writeOpportunitySheet(f *excelize.File, report *revenue.Report) error {
	const sheet = "Opportunities"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	headers := []string{"Rank", "Clinic", "Slug", "Primary Issue", "Potential Revenue", "Estimated Loss"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, rec := range report.Recommendations {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), rec.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), rec.Slug)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), rec.PrimaryIssue)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), rec.PotentialRevenue)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), rec.EstimatedLoss)
	}

	widths := map[string]float64{"A": 6, "B": 32, "C": 32, "D": 20, "E": 18, "F": 18}
	for col, width := range widths {
		f.SetColWidth(sheet, col, col, width)
	}
	return nil
}
