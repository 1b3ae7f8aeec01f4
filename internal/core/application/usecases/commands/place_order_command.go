package commands

import (
	"errors"
	"strings"

	"ordersystem/internal/pkg/errs"
	"ordersystem/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to place a new purchase order.
// Encapsulates the caller-supplied product, contact address and quantity.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("PROD-001", "a@b.com", 1)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(orders, validator, publisher, logger)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s accepted", placed.ID())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	productID string
	email     string
	quantity  int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the product id and email are present and the quantity is
// positive. The quantity-defaults-to-1 rule is a boundary concern; by the
// time a command exists the quantity is explicit.
func NewPlaceOrderCommand(productID, email string, quantity int) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setProductID(productID),
		orderCommand.setEmail(email),
		orderCommand.setQuantity(quantity),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being ordered.
func (c PlaceOrderCommand) ProductID() string {
	return c.productID
}

// Email returns the contact address for order notifications.
func (c PlaceOrderCommand) Email() string {
	return c.email
}

// Quantity returns the number of units requested.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

func (c *PlaceOrderCommand) setProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return errs.NewValueIsRequiredError("productId")
	}

	c.productID = productID
	return nil
}

func (c *PlaceOrderCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}

	c.quantity = quantity
	return nil
}
