// Package excel encodes the projected listing table as an .xlsx workbook.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet the feed is written to.
const SheetName = "eBay Bulk Upload"

// Column width bounds, in characters. Widths auto-fit to the longest cell
// plus padding, capped so the mandated 41-column header stays navigable.
const (
	widthPadding = 2
	maxColWidth  = 50
)

// Filename returns the suggested download name for a profile's feed.
func Filename(profileName string) string {
	return fmt.Sprintf("ebay_bulk_%s.xlsx", profileName)
}

// Write encodes the table (header row first) into an xlsx blob.
func Write(table [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	widths := make([]int, 0)
	for r, record := range table {
		for c, value := range record {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("cell %d,%d: %w", c+1, r+1, err)
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
			for len(widths) <= c {
				widths = append(widths, 0)
			}
			if l := len(value); l > widths[c] {
				widths[c] = l
			}
		}
	}

	for c, w := range widths {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", c+1, err)
		}
		width := w + widthPadding
		if width > maxColWidth {
			width = maxColWidth
		}
		if err := f.SetColWidth(SheetName, name, name, float64(width)); err != nil {
			return nil, fmt.Errorf("set width %s: %w", name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
