package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"transfer-pathways/internal/domain"
)

// Combined-plan sheet layout. Keep header order EXACT: downstream advisors
// key off these column names.
var combinedHeader = []string{
	"Term",
	"Source",
	"Match",
	"AS Course",
	"AS Credits",
	"BS Course",
	"Status",
}

// SheetName is the single sheet of the combined-plan workbook.
const SheetName = "combined_plan"

// DefaultMaxColWidth caps auto-sized column widths.
const DefaultMaxColWidth = 60

// WriteCombinedXLSX renders the combined plan as a styled workbook:
// bold header row, bold Term column, wrapped cells, frozen header,
// columns auto-sized between 10 and maxColWidth characters.
func WriteCombinedXLSX(path string, rows []domain.CombinedRow, maxColWidth float64) error {
	if maxColWidth <= 0 {
		maxColWidth = DefaultMaxColWidth
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	header := make([]interface{}, len(combinedHeader))
	for i, h := range combinedHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("xlsx header: %w", err)
	}

	widths := make([]int, len(combinedHeader))
	for i, h := range combinedHeader {
		widths[i] = len(h)
	}

	for i, r := range rows {
		cells := combinedCells(r)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			return fmt.Errorf("xlsx row %d: %w", i+2, err)
		}
		for col, v := range cells {
			if n := len(fmt.Sprint(v)); n > widths[col] {
				widths[col] = n
			}
		}
	}

	if err := applyCombinedStyles(f, len(rows)); err != nil {
		return err
	}

	for col, w := range widths {
		name, _ := excelize.ColumnNumberToName(col + 1)
		width := float64(w + 2)
		if width < 10 {
			width = 10
		}
		if width > maxColWidth {
			width = maxColWidth
		}
		if err := f.SetColWidth(SheetName, name, name, width); err != nil {
			return fmt.Errorf("xlsx col width: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx save %s: %w", path, err)
	}
	return nil
}

// combinedCells flattens a row for the sheet. BS-sourced rows leave the
// match/AS columns blank; AS credits always print (zero is a real value).
func combinedCells(r domain.CombinedRow) []interface{} {
	credits := ""
	if r.Source == domain.SourceAS {
		credits = floatToString(r.ASCredits)
	}
	return []interface{}{r.Term, r.Source, r.Match, r.ASCode, credits, r.BSCode, r.Status}
}

func applyCombinedStyles(f *excelize.File, rowCount int) error {
	wrap := excelize.Alignment{WrapText: true, Vertical: "top"}

	bodyStyle, err := f.NewStyle(&excelize.Style{Alignment: &wrap})
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &wrap,
	})
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(combinedHeader))
	lastRow := rowCount + 1

	if rowCount > 0 {
		start, _ := excelize.CoordinatesToCellName(1, 2)
		end, _ := excelize.CoordinatesToCellName(len(combinedHeader), lastRow)
		if err := f.SetCellStyle(SheetName, start, end, bodyStyle); err != nil {
			return fmt.Errorf("xlsx style: %w", err)
		}
		// Term column bold all the way down
		if err := f.SetCellStyle(SheetName, "A2", fmt.Sprintf("A%d", lastRow), boldStyle); err != nil {
			return fmt.Errorf("xlsx style: %w", err)
		}
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", boldStyle); err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}

	// keep the header visible while scrolling
	return f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
