package ports

import "context"

// ProductValidator is the contract with the external product validation
// backend. The backend is a black box reached over a document-based RPC; it
// answers either a boolean availability question or an enumerable list of
// available product identifiers, and implementations must tolerate both
// call shapes.
//
// A backend that cannot be reached, faults, or times out surfaces as a
// ServiceUnavailableError, never as "product unavailable" — callers must be
// able to tell a rejected product from an unreachable validator.
type ProductValidator interface {
	// Validate reports whether the product is available for ordering.
	// A false result with a nil error means the backend answered and
	// rejected the product.
	Validate(ctx context.Context, productID string) (bool, error)

	// AvailableProducts returns the identifiers of all currently
	// available products.
	AvailableProducts(ctx context.Context) ([]string, error)
}
