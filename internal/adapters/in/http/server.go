// Package http is the inbound HTTP adapter: an echo server exposing the
// order API with hypermedia links in every order payload.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ordersystem/internal/core/application/usecases/commands"
	"ordersystem/internal/core/application/usecases/queries"
	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler  commands.PlaceOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	getOrderHandler     queries.GetOrderQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getProductsHandler  queries.GetAvailableProductsQueryHandler

	baseURL string
	logger  *slog.Logger
}

// NewServer creates an HTTP server with the required command and query
// handlers. baseURL is the public address used to build hypermedia links.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getProductsHandler queries.GetAvailableProductsQueryHandler,
	baseURL string,
	logger *slog.Logger,
) *Server {
	return &Server{
		placeOrderHandler:   placeOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
		getOrderHandler:     getOrderHandler,
		getAllOrdersHandler: getAllOrdersHandler,
		getProductsHandler:  getProductsHandler,
		baseURL:             baseURL,
		logger:              logger.With("component", "http_server"),
	}
}

// RegisterRoutes wires the API surface onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())

	e.GET("/", s.Root)
	e.GET("/products", s.GetProducts)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetAllOrders)
	e.GET("/orders/:id", s.GetOrderDetails)
	e.GET("/orders/:id/status", s.GetOrderDetails)
	e.GET("/orders/:id/cancel", s.CancelOrderHelper)
	e.DELETE("/orders/:id/cancel", s.CancelOrder)
}

// Root handles GET / - the service banner with entry links.
func (s *Server) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, messageDTO{
		Message: "Order System API",
		Links:   rootLinks(s.baseURL),
	})
}

// GetProducts handles GET /products - the orderable product catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getProductsHandler.Handle(ctx.Request().Context(),
		queries.NewGetAvailableProductsQuery())
	if err != nil {
		s.logger.Error("catalog fetch failed", "error", err)
		return ctx.JSON(http.StatusServiceUnavailable, errorDTO{Detail: "Could not fetch products"})
	}

	body := productsListDTO{Products: make([]productDTO, 0, len(products))}
	for _, p := range products {
		body.Products = append(body.Products, productDTO{ID: p.ID, Name: p.Name, Icon: p.Icon})
	}

	return ctx.JSON(http.StatusOK, body)
}

// CreateOrder handles POST /orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorDTO{Detail: "Invalid request body"})
	}

	if req.ProductID == "" {
		return ctx.JSON(http.StatusBadRequest, errorDTO{Detail: "product_id is required"})
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorDTO{Detail: "email is not a valid address"})
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cmd, err := commands.NewPlaceOrderCommand(req.ProductID, req.Email, quantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorDTO{Detail: err.Error()})
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orderError(ctx, err)
	}

	status := placed.Status().String()
	return ctx.JSON(http.StatusCreated, orderDTO{
		OrderID:   placed.ID().String(),
		Status:    status,
		ProductID: placed.ProductID(),
		Email:     placed.Email(),
		Quantity:  placed.Quantity(),
		Links:     orderLinks(s.baseURL, placed.ID().String(), status),
	})
}

// GetAllOrders handles GET /orders - lists all orders, newest first.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(),
		queries.NewGetAllOrdersQuery())
	if err != nil {
		s.logger.Error("order list failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorDTO{Detail: "Could not fetch order list"})
	}

	body := ordersListDTO{Orders: make([]orderDTO, 0, len(orders))}
	for _, o := range orders {
		body.Orders = append(body.Orders, newOrderDTO(o, s.baseURL))
	}

	return ctx.JSON(http.StatusOK, body)
}

// GetOrderDetails handles GET /orders/:id and GET /orders/:id/status.
func (s *Server) GetOrderDetails(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorDTO{Detail: "Order not found"})
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.orderError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.orderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderDTO(resp, s.baseURL))
}

// CancelOrderHelper handles GET /orders/:id/cancel - the original API kept
// this verb-mismatch helper around for clients poking at the cancel link
// with a browser.
func (s *Server) CancelOrderHelper(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, messageDTO{
		Message: "Use DELETE method to cancel",
		Links:   orderLinks(s.baseURL, ctx.Param("id"), "unknown"),
	})
}

// CancelOrder handles DELETE /orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorDTO{Detail: "Order not found"})
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.orderError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.orderError(ctx, err)
	}

	status := cancelled.Status().String()
	return ctx.JSON(http.StatusOK, cancelledOrderDTO{
		Message: "Order cancelled successfully",
		OrderID: cancelled.ID().String(),
		Status:  status,
		Links:   orderLinks(s.baseURL, cancelled.ID().String(), status),
	})
}

// orderError maps application errors onto the wire contract.
func (s *Server) orderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrProductUnavailable):
		return ctx.JSON(http.StatusBadRequest, errorDTO{Detail: "Product unavailable"})

	case errors.Is(err, errs.ErrServiceUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, errorDTO{Detail: "Validator unavailable"})

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorDTO{Detail: "Order not found"})

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorDTO{Detail: err.Error()})

	default:
		s.logger.Error("unhandled application error", "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorDTO{Detail: "Internal Server Error"})
	}
}
