// Package product provides the catalog view of products known to the order
// system. The product validator owns availability; this package only holds
// the static display metadata used to enrich the validator's identifier
// list for presentation.
package product

import (
	"ordersystem/internal/pkg/errs"
)

// GenericIcon is the fallback icon for product identifiers the static
// display table does not recognize.
const GenericIcon = "📦"

// Product is a catalog entry: an identifier enriched with display metadata.
type Product struct {
	ID   string
	Name string
	Icon string
}

// displayTable maps known product identifiers to their display name and
// icon. Identifiers outside this table still exist as far as the validator
// is concerned; they just render with the identifier as name and the
// generic box icon.
var displayTable = map[string]Product{
	"PROD-001": {ID: "PROD-001", Name: "Wireless Mouse", Icon: "🖱️"},
	"PROD-002": {ID: "PROD-002", Name: "Mechanical Keyboard", Icon: "⌨️"},
	"PROD-003": {ID: "PROD-003", Name: "USB-C Hub", Icon: "🔌"},
	"PROD-004": {ID: "PROD-004", Name: "Laptop Stand", Icon: "💻"},
	"PROD-005": {ID: "PROD-005", Name: "Webcam", Icon: "📷"},
}

// Lookup resolves a product identifier to its catalog entry. Unrecognized
// identifiers fall back to (id, id, GenericIcon) rather than failing, so a
// catalog extension on the validator side never breaks the listing.
func Lookup(id string) Product {
	if p, ok := displayTable[id]; ok {
		return p
	}
	return Product{ID: id, Name: id, Icon: GenericIcon}
}

// Enrich maps a list of available product identifiers, as reported by the
// validator, to catalog entries in the same order.
func Enrich(ids []string) []Product {
	products := make([]Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, Lookup(id))
	}
	return products
}

// Validate checks that a catalog entry carries an identifier.
func (p Product) Validate() error {
	if p.ID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	return nil
}
