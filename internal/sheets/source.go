package sheets

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rosie-yoon/ebaybulk/internal/feed"
)

// ReadListings reads the Bulk tab and maps each data row onto its header,
// producing the engine's source rows. Header cells are trimmed; data cells
// are kept raw (the engine trims on read). Short rows read as empty for the
// missing columns.
func (c *Client) ReadListings(ctx context.Context, sheetID string) ([]feed.SourceRow, error) {
	records, err := c.ReadTab(ctx, sheetID, TabBulk)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]feed.SourceRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(feed.SourceRow, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadCategories reads the CAT tab: path in column A, category id in column
// B, condition code in column C. Rows with a blank id are skipped and a
// missing condition defaults to "1000-New". A sheet without a CAT tab
// yields an empty map, not an error.
func (c *Client) ReadCategories(ctx context.Context, sheetID string) (feed.CategoryMap, error) {
	records, err := c.ReadTab(ctx, sheetID, TabCategories)
	if errors.Is(err, ErrTabNotFound) {
		slog.Warn("category tab missing, skipping category lookup", "sheet_id", sheetID)
		return feed.CategoryMap{}, nil
	}
	if err != nil {
		return nil, err
	}

	cats := make(feed.CategoryMap)
	for _, record := range records {
		if len(record) < 2 || strings.TrimSpace(record[1]) == "" {
			continue
		}
		entry := feed.CategoryEntry{
			Path:      strings.TrimSpace(record[0]),
			Condition: "1000-New",
		}
		if len(record) >= 3 && strings.TrimSpace(record[2]) != "" {
			entry.Condition = strings.TrimSpace(record[2])
		}
		cats[strings.TrimSpace(record[1])] = entry
	}
	return cats, nil
}
