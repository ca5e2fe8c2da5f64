package models

// Extension is one normalized marketplace extension record.
// Struct field order is the canonical column order for all outputs.
type Extension struct {
	// Title is the extension's display name.
	Title string `csv:"title" json:"title"`

	// Vendor is the owning organization. The API serves it under
	// either "vendor_name" or "vendor" depending on the item.
	Vendor string `csv:"vendor" json:"vendor"`

	// Price is the display string: "Free" or a dollar amount with
	// two decimals.
	Price string `csv:"price" json:"price"`

	// Rating is the average review score; nil when the source omits it.
	Rating *float64 `csv:"rating" json:"rating"`

	// ReviewsCount is the number of reviews; nil when the source omits it.
	ReviewsCount *int `csv:"reviews_count" json:"reviews_count"`

	// Description is the normalized plain-text description, possibly
	// empty when no source field was usable.
	Description string `csv:"description" json:"description"`
}

// FieldNames returns the canonical column names in output order.
func FieldNames() []string {
	return []string{"title", "vendor", "price", "rating", "reviews_count", "description"}
}
