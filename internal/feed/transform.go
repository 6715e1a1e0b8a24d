package feed

import (
	"fmt"
	"strconv"
	"strings"
)

// Marketplace defaults baked into every parent row.
const (
	defaultCondition   = "1000-New"
	parentFormat       = "FixedPrice"
	parentDuration     = "GTC"
	parentLocation     = "KR"
	parentShipOption   = "StandardShippingFromOutsideUS"
	parentShipCost     = "0"
	parentDispatchDays = "3"
)

// DefaultQuantity is used when a profile carries no quantity.
const DefaultQuantity = 999

// Transform converts product groups into listing rows: one parent "Add" row
// per group followed by one "Variation" child row per source row, in input
// order. A single-row group still yields one parent and one child.
func Transform(groups []Group, cats CategoryMap, s Settings) []ListingRow {
	var out []ListingRow
	for _, g := range groups {
		if len(g.Rows) == 0 {
			continue
		}
		out = append(out, buildParent(g, cats, s))
		for _, row := range g.Rows {
			out = append(out, buildChild(row, s))
		}
	}
	return out
}

func buildParent(g Group, cats CategoryMap, s Settings) ListingRow {
	first := g.Rows[0]

	categoryID := first.Field(ColCategoryID)
	categoryName := first.Field(ColCategoryName)
	itemType := first.Field(ColItem)
	indexValue := first.Field(ColIndex)
	if indexValue == "" {
		indexValue = "0"
	}

	// The CAT tab backfills the category name and supplies the condition
	// code; an unknown category id falls back to the "new" condition.
	condition := defaultCondition
	if cat, ok := cats[categoryID]; ok {
		if categoryName == "" {
			categoryName = cat.Path
		}
		if cat.Condition != "" {
			condition = cat.Condition
		}
	}

	// Every non-blank option across the group, first row included, joined
	// in encounter order: "Color=Red;Blue".
	var options []string
	for _, row := range g.Rows {
		if opt := row.Field(ColOption); opt != "" {
			options = append(options, opt)
		}
	}
	details := ""
	if itemType != "" && len(options) > 0 {
		details = fmt.Sprintf("%s=%s", itemType, strings.Join(options, ";"))
	}

	return ListingRow{
		Action:              ActionAdd,
		SKU:                 g.Key,
		CategoryID:          categoryID,
		CategoryName:        categoryName,
		Title:               first.Field(ColProductName),
		RelationshipDetails: details,
		StartPrice:          NormalizePrice(first.Field(ColPrice)),
		Quantity:            quantity(s),
		PhotoURL:            s.ParentImageURLs(g.Key, indexValue),
		ConditionID:         condition,
		Description:         s.DefaultDescription,
		Format:              parentFormat,
		Duration:            parentDuration,
		Location:            parentLocation,
		Shipping1Option:     parentShipOption,
		Shipping1Cost:       parentShipCost,
		MaxDispatchTime:     parentDispatchDays,
		ShippingProfileName: s.ShippingProfileName,
		ReturnProfileName:   s.ReturnProfileName,
		PaymentProfileName:  s.PaymentProfileName,
		Brand:               first.Field(ColBrand),
	}
}

func buildChild(row SourceRow, s Settings) ListingRow {
	sku := row.Field(ColSKU)
	itemType := row.Field(ColItem)
	option := row.Field(ColOption)

	// "Color=Red" when both sides exist; never a dangling "=".
	details := option
	if itemType != "" && option != "" {
		details = fmt.Sprintf("%s=%s", itemType, option)
	}

	// Child photo URLs carry the option as a prefix so eBay can match the
	// image to the variation: "Red=https://...".
	photo := s.ImageURL(sku)
	if option != "" && photo != "" {
		photo = fmt.Sprintf("%s=%s", option, photo)
	}

	return ListingRow{
		SKU:                 sku,
		Relationship:        RelationshipVariation,
		RelationshipDetails: details,
		StartPrice:          NormalizePrice(row.Field(ColPrice)),
		Quantity:            quantity(s),
		PhotoURL:            photo,
	}
}

func quantity(s Settings) string {
	q := s.DefaultQuantity
	if q <= 0 {
		q = DefaultQuantity
	}
	return strconv.Itoa(q)
}
