package feed

import (
	"errors"
	"strings"
)

// ErrEmptyDataset is returned when filtering leaves no rows to convert.
// This is fatal for a run: no listing can be produced from nothing.
var ErrEmptyDataset = errors.New("no rows flagged for generation")

// FilterActive keeps only rows whose flag column reads as true
// (case-insensitive "TRUE"). Returns ErrEmptyDataset if nothing survives.
func FilterActive(rows []SourceRow, flagColumn string) ([]SourceRow, error) {
	var active []SourceRow
	for _, row := range rows {
		if strings.EqualFold(row.Field(flagColumn), "true") {
			active = append(active, row)
		}
	}
	if len(active) == 0 {
		return nil, ErrEmptyDataset
	}
	return active, nil
}

// Group is one product: all variant rows sharing a parent key, in input
// order. The first row supplies the parent-level fields.
type Group struct {
	Key  string
	Rows []SourceRow
}

// GroupByParent partitions rows by trimmed parent key, skipping rows whose
// key is blank. Groups appear in order of first appearance; rows with the
// same key are merged into one group even when they are not contiguous.
func GroupByParent(rows []SourceRow) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, row := range rows {
		key := row.Field(ColParentSKU)
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}

	return groups
}
