package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() Settings {
	return Settings{
		ImageDomain:        "https://img.example.com",
		DefaultQuantity:    50,
		DefaultDescription: "Ships from Korea.",
		ReturnProfileName:  "returns-30d",
		PaymentProfileName: "managed-payments",
	}
}

func colorGroupRows() []SourceRow {
	return []SourceRow{
		{
			ColParentSKU: "P1", ColSKU: "P1-RED", ColCreate: "TRUE",
			ColProductName: "Wool Scarf", ColCategoryID: "1059", ColCategoryName: "",
			ColBrand: "Acme", ColItem: "Color", ColOption: "Red", ColPrice: "$12.5", ColIndex: "0",
		},
		{
			ColParentSKU: "P1", ColSKU: "P1-BLUE", ColCreate: "TRUE",
			ColItem: "Color", ColOption: "Blue", ColPrice: "15",
		},
	}
}

func TestTransformParentAndChildren(t *testing.T) {
	cats := CategoryMap{"1059": {Path: "Clothing > Scarves", Condition: "3000-Used"}}

	rows, issues, err := Build(colorGroupRows(), cats, testSettings())
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, rows, 3)

	parent := rows[0]
	assert.True(t, parent.IsParent())
	assert.Equal(t, "P1", parent.SKU)
	assert.Equal(t, "Wool Scarf", parent.Title)
	assert.Equal(t, "Color=Red;Blue", parent.RelationshipDetails)
	assert.Equal(t, "12.50", parent.StartPrice)
	assert.Equal(t, "50", parent.Quantity)
	assert.Equal(t, "https://img.example.com/P1.jpg", parent.PhotoURL)
	// Category name backfilled from the CAT tab, condition taken from it.
	assert.Equal(t, "Clothing > Scarves", parent.CategoryName)
	assert.Equal(t, "3000-Used", parent.ConditionID)
	assert.Equal(t, "FixedPrice", parent.Format)
	assert.Equal(t, "GTC", parent.Duration)
	assert.Equal(t, "Acme", parent.Brand)
	assert.Equal(t, "Ships from Korea.", parent.Description)
	assert.Equal(t, "returns-30d", parent.ReturnProfileName)

	red, blue := rows[1], rows[2]
	assert.True(t, red.IsChild())
	assert.Equal(t, "P1-RED", red.SKU)
	assert.Equal(t, "Color=Red", red.RelationshipDetails)
	assert.Equal(t, "Red=https://img.example.com/P1-RED.jpg", red.PhotoURL)
	assert.Equal(t, "12.50", red.StartPrice)

	assert.Equal(t, "Color=Blue", blue.RelationshipDetails)
	assert.Equal(t, "15.00", blue.StartPrice)
	assert.Equal(t, "", blue.Action)
}

func TestTransformUnknownCategoryDefaultsCondition(t *testing.T) {
	rows, _, err := Build(colorGroupRows(), CategoryMap{}, testSettings())
	require.NoError(t, err)
	assert.Equal(t, "1000-New", rows[0].ConditionID)
	// No CAT entry to backfill from: name stays blank.
	assert.Equal(t, "", rows[0].CategoryName)
}

func TestTransformSingleRowGroup(t *testing.T) {
	src := []SourceRow{{
		ColParentSKU: "SOLO", ColSKU: "SOLO-1", ColCreate: "TRUE",
		ColProductName: "One-off", ColCategoryID: "77", ColPrice: "9",
	}}

	rows, _, err := Build(src, nil, testSettings())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].IsParent())
	assert.True(t, rows[1].IsChild())

	// Blank option and blank variant type never produce a dangling "=".
	assert.Equal(t, "", rows[0].RelationshipDetails)
	assert.Equal(t, "", rows[1].RelationshipDetails)
}

func TestTransformBlankOptionWithItemType(t *testing.T) {
	src := []SourceRow{{
		ColParentSKU: "P9", ColSKU: "P9-1", ColCreate: "TRUE",
		ColItem: "Size", ColPrice: "5",
	}}

	rows, _, err := Build(src, nil, testSettings())
	require.NoError(t, err)
	assert.Equal(t, "", rows[0].RelationshipDetails)
	assert.Equal(t, "", rows[1].RelationshipDetails)
}

func TestTransformQuantityDefault(t *testing.T) {
	src := colorGroupRows()
	s := testSettings()
	s.DefaultQuantity = 0

	rows, _, err := Build(src, nil, s)
	require.NoError(t, err)
	for _, r := range rows {
		assert.Equal(t, "999", r.Quantity)
	}
}

func TestTransformParentIndexImages(t *testing.T) {
	src := colorGroupRows()
	src[0][ColIndex] = "2"

	rows, _, err := Build(src, nil, testSettings())
	require.NoError(t, err)
	assert.Equal(t,
		"https://img.example.com/P1.jpg|https://img.example.com/P1_D1.jpg|https://img.example.com/P1_D2.jpg",
		rows[0].PhotoURL)
}

func TestProjectFixedSchema(t *testing.T) {
	rows, _, err := Build(colorGroupRows(), nil, testSettings())
	require.NoError(t, err)

	table := Project(rows)
	require.Len(t, table, len(rows)+1)

	header := table[0]
	assert.Equal(t, ActionColumn, header[0])
	assert.Equal(t, "C:Brand", header[len(header)-1])

	for _, record := range table {
		assert.Len(t, record, len(Columns()))
	}

	// Parent precedes its children and carries the Add action.
	assert.Equal(t, "Add", table[1][0])
	assert.Equal(t, "Variation", table[2][5])
	assert.Equal(t, "Variation", table[3][5])
}
