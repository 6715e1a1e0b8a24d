package feed

// listing.go defines the typed output record and its projection onto the
// fixed eBay File Exchange column schema.
//
// Parent and child rows share one closed struct; the Relationship field is
// the variant tag (empty for parents, "Variation" for children). Fields that
// are constant per variant (Format, Location, shipping service, ...) are set
// by the transformer, never by the projector. Projection onto named columns
// happens only at the output boundary so fields cannot be silently dropped
// or reordered in between.

// ActionColumn is the mandated header of the action column, version pin
// included.
const ActionColumn = "*Action(SiteID=US|Country=KR|Currency=USD|Version=1193)"

// Values for the row-variant tag fields.
const (
	ActionAdd             = "Add"
	RelationshipVariation = "Variation"
)

// Output column names referenced outside the projector (validation).
const (
	ColOutSKU          = "Custom label (SKU)"
	ColOutCategoryID   = "Category ID"
	ColOutCategoryName = "Category name"
	ColOutTitle        = "Title"
	ColOutStartPrice   = "Start price"
	ColOutConditionID  = "Condition ID"
)

// ListingRow is one output row, parent or child. Unset fields project as
// empty cells, never as absent columns.
type ListingRow struct {
	Action              string
	SKU                 string
	CategoryID          string
	CategoryName        string
	Title               string
	Relationship        string
	RelationshipDetails string
	StartPrice          string
	Quantity            string
	PhotoURL            string
	ConditionID         string
	Description         string
	Format              string
	Duration            string
	Location            string
	Shipping1Option     string
	Shipping1Cost       string
	MaxDispatchTime     string
	ShippingProfileName string
	ReturnProfileName   string
	PaymentProfileName  string
	Brand               string
}

// IsParent reports whether the row is a parent ("Add") listing row.
func (r ListingRow) IsParent() bool { return r.Action == ActionAdd }

// IsChild reports whether the row is a variation child row.
func (r ListingRow) IsChild() bool { return r.Relationship == RelationshipVariation }

// columns is the mandated output schema, in order, ending at C:Brand.
var columns = []string{
	ActionColumn,
	ColOutSKU,
	ColOutCategoryID,
	ColOutCategoryName,
	ColOutTitle,
	"Relationship",
	"Relationship details",
	"Schedule Time",
	"P:UPC",
	"P:EPID",
	ColOutStartPrice,
	"Quantity",
	"Item photo URL",
	"VideoID",
	ColOutConditionID,
	"Description",
	"Format",
	"Duration",
	"Buy It Now price",
	"Best Offer Enabled",
	"Best Offer Auto Accept Price",
	"Minimum Best Offer Price",
	"Immediate pay required",
	"Location",
	"Shipping service 1 option",
	"Shipping service 1 cost",
	"Shipping service 1 priority",
	"Shipping service 2 option",
	"Shipping service 2 cost",
	"Shipping service 2 priority",
	"Max dispatch time",
	"Returns accepted option",
	"Returns within option",
	"Refund option",
	"Return shipping cost paid by",
	"Shipping profile name",
	"Return profile name",
	"Payment profile name",
	"ProductCompliancePolicyID",
	"Regional ProductCompliancePolicies",
	"C:Brand",
}

// Columns returns the output column names in schema order.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// Record projects the row onto the schema: one cell per column, in order.
func (r ListingRow) Record() []string {
	return []string{
		r.Action,
		r.SKU,
		r.CategoryID,
		r.CategoryName,
		r.Title,
		r.Relationship,
		r.RelationshipDetails,
		"", // Schedule Time
		"", // P:UPC
		"", // P:EPID
		r.StartPrice,
		r.Quantity,
		r.PhotoURL,
		"", // VideoID
		r.ConditionID,
		r.Description,
		r.Format,
		r.Duration,
		"", // Buy It Now price
		"", // Best Offer Enabled
		"", // Best Offer Auto Accept Price
		"", // Minimum Best Offer Price
		"", // Immediate pay required
		r.Location,
		r.Shipping1Option,
		r.Shipping1Cost,
		"", // Shipping service 1 priority
		"", // Shipping service 2 option
		"", // Shipping service 2 cost
		"", // Shipping service 2 priority
		r.MaxDispatchTime,
		"", // Returns accepted option
		"", // Returns within option
		"", // Refund option
		"", // Return shipping cost paid by
		r.ShippingProfileName,
		r.ReturnProfileName,
		r.PaymentProfileName,
		"", // ProductCompliancePolicyID
		"", // Regional ProductCompliancePolicies
		r.Brand,
	}
}

// Project builds the output table: the schema header followed by one
// projected record per listing row.
func Project(rows []ListingRow) [][]string {
	table := make([][]string, 0, len(rows)+1)
	table = append(table, Columns())
	for _, r := range rows {
		table = append(table, r.Record())
	}
	return table
}
