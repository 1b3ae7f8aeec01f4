package http

import (
	"fmt"

	"ordersystem/internal/core/domain/model/order"
)

type link struct {
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

type linkMap map[string]link

// orderLinks builds the hypermedia map for an order. Self and the list are
// always present; status and cancel disappear once the order is in its
// terminal state.
func orderLinks(baseURL, orderID, status string) linkMap {
	links := linkMap{
		"self":       {Href: fmt.Sprintf("%s/orders/%s", baseURL, orderID)},
		"all-orders": {Href: baseURL + "/orders"},
	}

	if status != order.Cancelled.String() {
		links["status"] = link{Href: fmt.Sprintf("%s/orders/%s/status", baseURL, orderID)}
		links["cancel"] = link{Href: fmt.Sprintf("%s/orders/%s/cancel", baseURL, orderID)}
	}

	return links
}

func rootLinks(baseURL string) linkMap {
	return linkMap{
		"products":     {Href: baseURL + "/products"},
		"create_order": {Href: baseURL + "/orders", Method: "POST"},
	}
}
