// Package feed converts flat product-variant tables into the eBay bulk
// upload (File Exchange) listing format.
//
// The input is one row per SKU, grouped by a parent key (PSKU). The output
// is one "Add" parent row per group followed by one "Variation" child row
// per input row, projected onto the fixed 40-column schema eBay mandates.
// The package is pure: it performs no I/O and owns no state across calls.
package feed

import "strings"

// Source column names, fixed by the upstream sheet.
// "Categoery" is misspelled in the source template; the engine must match
// the header as-is.
const (
	ColParentSKU    = "PSKU"
	ColSKU          = "SKU"
	ColCreate       = "Create"
	ColProductName  = "Product Name"
	ColCategoryID   = "Categoery ID"
	ColCategoryName = "Categoery"
	ColBrand        = "BRAND"
	ColItem         = "ITEM"
	ColOption       = "OPTION"
	ColPrice        = "PRICE"
	ColIndex        = "INDEX"
)

// SourceRow is a single variant row from the source sheet, keyed by header
// name. Values are kept as raw strings; accessors trim on read.
type SourceRow map[string]string

// Field returns the named column trimmed of surrounding whitespace.
// Missing columns read as empty string.
func (r SourceRow) Field(name string) string {
	return strings.TrimSpace(r[name])
}

// CategoryEntry is one row of the category lookup table.
type CategoryEntry struct {
	Path      string // human-readable category path
	Condition string // marketplace condition code, e.g. "1000-New"
}

// CategoryMap indexes category entries by category id.
// Built once per run and read-only thereafter.
type CategoryMap map[string]CategoryEntry

// Settings carries the per-profile knobs the transformer needs. It is a
// read-only snapshot of the user profile; the engine never mutates it.
type Settings struct {
	ImageDomain         string
	ImageURLPattern     string // contains a {sku} placeholder; default "/{sku}.jpg"
	DefaultQuantity     int
	DefaultDescription  string
	ShippingProfileName string
	ReturnProfileName   string
	PaymentProfileName  string
}
