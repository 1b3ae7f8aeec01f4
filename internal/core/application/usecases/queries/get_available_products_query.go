package queries

import (
	"errors"

	"ordersystem/internal/pkg/guard"
)

var (
	ErrGetAvailableProductsQueryIsNotConstructed = errors.New(
		"GetAvailableProductsQuery must be created via NewGetAvailableProductsQuery constructor",
	)
)

// GetAvailableProductsQuery retrieves the catalog of currently orderable
// products as reported by the product validator.
type GetAvailableProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableProductsQuery creates a parameterless catalog query.
func NewGetAvailableProductsQuery() GetAvailableProductsQuery {
	return GetAvailableProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableProductsQueryIsNotConstructed if validation fails.
func (q GetAvailableProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableProductsQueryIsNotConstructed)
}

// ProductResponse is a catalog entry with its display attributes.
type ProductResponse struct {
	ID   string
	Name string
	Icon string
}
