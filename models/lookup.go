package models

// Lookup value categories. Lookup values are UI conveniences only; deleting
// one never cascades into existing change records.
const (
	CategoryProduct    = "product"
	CategoryChangeType = "change_type"
)

// ValidCategory reports whether the category names a lookup table.
func ValidCategory(category string) bool {
	return category == CategoryProduct || category == CategoryChangeType
}

// TypeLists holds both lookup tables for the selection menus.
type TypeLists struct {
	Products    []string `json:"products"`
	ChangeTypes []string `json:"change_types"`
}

// DefaultProducts is the static fallback list served on the public endpoint.
var DefaultProducts = []string{"Harfanglab", "Elastic", "Docker", "Other"}

// DefaultChangeTypes is the static fallback list served on the public endpoint.
var DefaultChangeTypes = []string{"IOC", "Whitelist", "Rule", "Other"}
