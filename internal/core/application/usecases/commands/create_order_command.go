package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired    = errors.New("customer name is required")
	ErrCustomerPhoneIsRequired   = errors.New("customer phone is required")
	ErrCustomerAddressIsRequired = errors.New("customer address is required")
	ErrAreaIsRequired            = errors.New("area is required")
	ErrTotalAmountIsInvalid      = errors.New("total amount must not be negative")
)

// CreateOrderCommand represents a request to register a new delivery order.
// Encapsulates customer details, the delivery area, and the order amount.
// The order number is optional; when empty, the handler generates one.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "", "Jordan Lee", "+15550002",
//	    "12 Elm Street", "Downtown", 42.50, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	orderNumber     string
	customerName    string
	customerPhone   string
	customerAddress string
	area            string
	totalAmount     float64
	scheduledFor    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates the order ID, customer details, area, and amount. The order
// number and scheduled time may be empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	customerName, customerPhone, customerAddress string,
	area string,
	totalAmount float64,
	scheduledFor string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		orderNumber:  orderNumber,
		scheduledFor: scheduledFor,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setCustomerPhone(customerPhone),
		orderCommand.setCustomerAddress(customerAddress),
		orderCommand.setArea(area),
		orderCommand.setTotalAmount(totalAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the requested order number. Empty means auto-generate.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's phone number.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerAddress returns the delivery address.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// Area returns the delivery area name.
func (c CreateOrderCommand) Area() string {
	return c.area
}

// TotalAmount returns the order's total amount.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// ScheduledFor returns the requested delivery time slot, if any.
func (c CreateOrderCommand) ScheduledFor() string {
	return c.scheduledFor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setCustomerPhone(phone string) error {
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.customerPhone = phone
	return nil
}

func (c *CreateOrderCommand) setCustomerAddress(address string) error {
	if address == "" {
		return ErrCustomerAddressIsRequired
	}

	c.customerAddress = address
	return nil
}

func (c *CreateOrderCommand) setArea(area string) error {
	if area == "" {
		return ErrAreaIsRequired
	}

	c.area = area
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(amount float64) error {
	if amount < 0 {
		return ErrTotalAmountIsInvalid
	}

	c.totalAmount = amount
	return nil
}
