package queries

import (
	"context"

	"ordersystem/internal/core/domain/model/product"
	"ordersystem/internal/core/ports"
)

// GetAvailableProductsQueryHandler asks the product validator for the
// current product identifiers and enriches them with display attributes.
type GetAvailableProductsQueryHandler struct {
	validator ports.ProductValidator
}

// NewGetAvailableProductsQueryHandler creates a handler for catalog queries.
func NewGetAvailableProductsQueryHandler(validator ports.ProductValidator) GetAvailableProductsQueryHandler {
	return GetAvailableProductsQueryHandler{validator: validator}
}

// Handle executes the query. An unreachable validator surfaces as a
// ServiceUnavailableError from the validator port.
func (h GetAvailableProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids, err := h.validator.AvailableProducts(ctx)
	if err != nil {
		return nil, err
	}

	enriched := product.Enrich(ids)
	responses := make([]ProductResponse, 0, len(enriched))
	for _, p := range enriched {
		responses = append(responses, ProductResponse{ID: p.ID, Name: p.Name, Icon: p.Icon})
	}

	return responses, nil
}
