package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParent() ListingRow {
	return ListingRow{
		Action:       ActionAdd,
		SKU:          "P1",
		CategoryID:   "1059",
		CategoryName: "Clothing",
		Title:        "Wool Scarf",
		StartPrice:   "12.50",
		ConditionID:  "1000-New",
	}
}

func validChild() ListingRow {
	return ListingRow{Relationship: RelationshipVariation, SKU: "P1-A", StartPrice: "12.50"}
}

func TestValidateClean(t *testing.T) {
	issues := Validate([]ListingRow{validParent(), validChild()}, CategoryMap{"1059": {}})
	assert.Empty(t, issues)
}

func TestValidateEmptyTable(t *testing.T) {
	issues := Validate(nil, nil)
	require.Len(t, issues, 1)
	assert.Equal(t, "no data rows", issues[0].Message)
	assert.Equal(t, 0, issues[0].Row)
}

func TestValidateParentMissingTitle(t *testing.T) {
	p := validParent()
	p.Title = "  "

	issues := Validate([]ListingRow{p, validChild()}, nil)
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Row) // first listing row sits under the header
	assert.Contains(t, issues[0].Message, "Title")

	// Child-only rules must not fire on a parent row.
	for _, is := range issues {
		assert.NotContains(t, is.Message, "child row")
	}
}

func TestValidateChildRules(t *testing.T) {
	c := validChild()
	c.SKU = ""
	c.StartPrice = ""

	issues := Validate([]ListingRow{validParent(), c}, nil)
	require.Len(t, issues, 2)
	assert.Equal(t, 3, issues[0].Row)
	assert.Contains(t, issues[0].Message, "SKU")
	assert.Contains(t, issues[1].Message, "price")
}

func TestValidateUnknownCategories(t *testing.T) {
	cats := CategoryMap{"known": {}}

	var rows []ListingRow
	for _, id := range []string{"x1", "x2", "x3", "x4", "x5", "x6", "x6", "known"} {
		p := validParent()
		p.CategoryID = id
		rows = append(rows, p)
	}

	issues := Validate(rows, cats)
	require.Len(t, issues, 1)

	// One combined issue, capped at the first five distinct offenders.
	msg := issues[0].Message
	assert.Contains(t, msg, "x1")
	assert.Contains(t, msg, "x5")
	assert.NotContains(t, msg, "x6")
	assert.Equal(t, 5, strings.Count(msg, "x"))
}

func TestValidateCategoryCheckSkippedWhenMapEmpty(t *testing.T) {
	p := validParent()
	p.CategoryID = "whatever"
	assert.Empty(t, Validate([]ListingRow{p}, CategoryMap{}))
}
