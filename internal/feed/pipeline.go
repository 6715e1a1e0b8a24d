package feed

// Build runs the full conversion pipeline over raw source rows: filter on
// the Create flag, group by parent key, transform to listing rows, validate.
//
// The returned issues never abort the run; the only error is
// ErrEmptyDataset when no row is flagged for generation.
func Build(rows []SourceRow, cats CategoryMap, s Settings) ([]ListingRow, []Issue, error) {
	active, err := FilterActive(rows, ColCreate)
	if err != nil {
		return nil, nil, err
	}

	groups := GroupByParent(active)
	listings := Transform(groups, cats, s)
	issues := Validate(listings, cats)

	return listings, issues, nil
}
