package feed

// validate.go checks the converted table against marketplace business rules.
//
// Validation collects warnings, it never fails a run: a feed with issues is
// still written so the operator can fix the flagged rows in the source sheet
// and regenerate. Fatal conditions (empty dataset, unreachable source) are
// handled upstream and are structurally distinct from these issues.

import (
	"fmt"
	"strings"
)

// maxReportedCategories caps how many unknown category ids are named in the
// combined referential-integrity issue.
const maxReportedCategories = 5

// Issue is one non-fatal validation finding.
// Row is the spreadsheet row number of the offending listing row (the
// header is row 1, the first listing row is 2); 0 for table-level issues.
type Issue struct {
	Row     int    `json:"row,omitempty"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Row > 0 {
		return fmt.Sprintf("row %d: %s", i.Row, i.Message)
	}
	return i.Message
}

// parentRequired are the fields every parent row must carry.
var parentRequired = []struct {
	column string
	value  func(ListingRow) string
}{
	{ColOutSKU, func(r ListingRow) string { return r.SKU }},
	{ColOutCategoryID, func(r ListingRow) string { return r.CategoryID }},
	{ColOutCategoryName, func(r ListingRow) string { return r.CategoryName }},
	{ColOutTitle, func(r ListingRow) string { return r.Title }},
	{ColOutStartPrice, func(r ListingRow) string { return r.StartPrice }},
	{ColOutConditionID, func(r ListingRow) string { return r.ConditionID }},
}

// Validate checks required fields on parent and child rows and category-id
// referential integrity against the lookup table. It returns every finding;
// an empty slice means the table is clean. An empty table yields a single
// generic issue.
func Validate(rows []ListingRow, cats CategoryMap) []Issue {
	if len(rows) == 0 {
		return []Issue{{Message: "no data rows"}}
	}

	var issues []Issue
	var unknownCats []string
	seenCats := make(map[string]bool)

	for i, row := range rows {
		rowNum := i + 2 // header occupies row 1

		switch {
		case row.IsParent():
			for _, req := range parentRequired {
				if strings.TrimSpace(req.value(row)) == "" {
					issues = append(issues, Issue{
						Row:     rowNum,
						Message: fmt.Sprintf("parent row missing %s", req.column),
					})
				}
			}
			if len(cats) > 0 && row.CategoryID != "" && !seenCats[row.CategoryID] {
				seenCats[row.CategoryID] = true
				if _, ok := cats[row.CategoryID]; !ok {
					unknownCats = append(unknownCats, row.CategoryID)
				}
			}

		case row.IsChild():
			if strings.TrimSpace(row.SKU) == "" {
				issues = append(issues, Issue{Row: rowNum, Message: "child row missing SKU"})
			}
			if strings.TrimSpace(row.StartPrice) == "" {
				issues = append(issues, Issue{Row: rowNum, Message: "child row missing price"})
			}
		}
	}

	if len(unknownCats) > 0 {
		if len(unknownCats) > maxReportedCategories {
			unknownCats = unknownCats[:maxReportedCategories]
		}
		issues = append(issues, Issue{
			Message: fmt.Sprintf("category ids not in CAT tab: %s", strings.Join(unknownCats, ", ")),
		})
	}

	return issues
}
