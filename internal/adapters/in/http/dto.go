package http

import (
	"ordersystem/internal/core/application/usecases/queries"
)

// createOrderRequest is the POST /orders body. Quantity is a pointer so an
// absent field can be told apart from an explicit zero; absent defaults to
// one.
type createOrderRequest struct {
	ProductID string `json:"product_id"`
	Email     string `json:"email"`
	Quantity  *int   `json:"quantity"`
}

type orderDTO struct {
	OrderID   string  `json:"order_id"`
	Status    string  `json:"status"`
	ProductID string  `json:"product_id"`
	Email     string  `json:"email"`
	Quantity  int     `json:"quantity"`
	Links     linkMap `json:"_links"`
}

type ordersListDTO struct {
	Orders []orderDTO `json:"orders"`
}

type productDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type productsListDTO struct {
	Products []productDTO `json:"products"`
}

type cancelledOrderDTO struct {
	Message string  `json:"message"`
	OrderID string  `json:"order_id"`
	Status  string  `json:"status"`
	Links   linkMap `json:"_links"`
}

type messageDTO struct {
	Message string  `json:"message"`
	Links   linkMap `json:"_links"`
}

type errorDTO struct {
	Detail string `json:"detail"`
}

func newOrderDTO(resp queries.OrderResponse, baseURL string) orderDTO {
	status := resp.Status.String()
	return orderDTO{
		OrderID:   resp.ID.String(),
		Status:    status,
		ProductID: resp.ProductID,
		Email:     resp.Email,
		Quantity:  resp.Quantity,
		Links:     orderLinks(baseURL, resp.ID.String(), status),
	}
}
