package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through one of the constructor functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderNumberIsRequired is returned when attempting to create an order without a number.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
	// ErrCustomerNameIsRequired is returned when attempting to create an order without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrCustomerPhoneIsRequired is returned when attempting to create an order without a customer phone.
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customerPhone")
	// ErrCustomerAddressIsRequired is returned when attempting to create an order without a customer address.
	ErrCustomerAddressIsRequired = errs.NewValueIsRequiredError("customerAddress")
	// ErrAreaIsRequired is returned when attempting to create an order without a delivery area.
	ErrAreaIsRequired = errs.NewValueIsRequiredError("area")
)

// Order represents a customer delivery order. It is the aggregate root that
// manages the order lifecycle from creation through assignment to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a unique order number
//   - Must have customer details and a delivery area
//   - totalAmount is never negative
//   - Status transitions follow the Pending -> Assigned -> Picked -> Delivered
//     state machine
//   - assignedTo is set if and only if the order has left the Pending state
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the unique human-readable order reference
	orderNumber string

	// customerName/customerPhone/customerAddress identify the recipient
	customerName    string
	customerPhone   string
	customerAddress string

	// area is the delivery zone the order must be served from
	area string

	// totalAmount is the order value
	totalAmount float64

	// scheduledFor is the requested delivery slot (HH:mm, optional)
	scheduledFor string

	// status represents the current state in the order lifecycle
	status Status

	// assignedTo is the assigned partner's ID (nil while pending)
	assignedTo *kernel.UUID

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with no partner assigned.
// All parameters are validated and errors are aggregated.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerName, customerPhone, customerAddress string,
	area string,
	totalAmount float64,
	scheduledFor string,
) (*Order, error) {
	order := &Order{
		status:       Pending,
		scheduledFor: scheduledFor,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomerName(customerName),
		order.setCustomerPhone(customerPhone),
		order.setCustomerAddress(customerAddress),
		order.setArea(area),
		order.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its status and partner assignment.
//
// Business rules applied:
//   - all NewOrder validations
//   - status must be a valid lifecycle state
//   - status and assignedTo must be consistent (assignee iff not Pending)
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerName, customerPhone, customerAddress string,
	area string,
	totalAmount float64,
	scheduledFor string,
	status Status,
	assignedTo *kernel.UUID,
) (*Order, error) {
	order := &Order{
		scheduledFor: scheduledFor,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomerName(customerName),
		order.setCustomerPhone(customerPhone),
		order.setCustomerAddress(customerAddress),
		order.setArea(area),
		order.setTotalAmount(totalAmount),
		order.setStatus(status),
		order.setAssignedTo(status, assignedTo),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Validate ensures the Order instance was properly constructed through a
// constructor. The zero value of Order is invalid.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the unique human-readable order reference.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerName returns the recipient's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the recipient's phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// CustomerAddress returns the recipient's delivery address.
func (o *Order) CustomerAddress() string {
	return o.customerAddress
}

// Area returns the delivery zone of the order.
func (o *Order) Area() string {
	return o.area
}

// TotalAmount returns the order value.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// ScheduledFor returns the requested delivery slot (may be empty).
func (o *Order) ScheduledFor() string {
	return o.scheduledFor
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignedTo returns the assigned partner's ID.
// Returns nil while the order is pending.
func (o *Order) AssignedTo() *kernel.UUID {
	return o.assignedTo
}

// Assign assigns the order to a partner and moves it to Assigned status.
//
// Business rules:
//   - the partner ID must be valid
//   - the order must be in Pending status; any other state returns an
//     InvalidState error (a previously assigned order is never reassigned
//     by the engine)
func (o *Order) Assign(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedTo = &partnerID
	return nil
}

// MarkPicked records that the assigned partner picked the order up.
// Valid only from Assigned status.
func (o *Order) MarkPicked() error {
	newStatus, err := o.status.Pick()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered records that the order reached the customer.
// Valid only from Picked status; Delivered is final.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNumber validates and sets the order's human-readable reference.
func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	o.orderNumber = orderNumber
	return nil
}

// setCustomerName validates and sets the recipient's name.
func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = name
	return nil
}

// setCustomerPhone validates and sets the recipient's phone number.
func (o *Order) setCustomerPhone(phone string) error {
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}
	o.customerPhone = phone
	return nil
}

// setCustomerAddress validates and sets the recipient's delivery address.
func (o *Order) setCustomerAddress(address string) error {
	if address == "" {
		return ErrCustomerAddressIsRequired
	}
	o.customerAddress = address
	return nil
}

// setArea validates and sets the delivery zone.
func (o *Order) setArea(area string) error {
	if area == "" {
		return ErrAreaIsRequired
	}
	o.area = area
	return nil
}

// setTotalAmount validates and sets the order value.
func (o *Order) setTotalAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount is invalid", fmt.Errorf("%f is negative", amount))
	}
	o.totalAmount = amount
	return nil
}

// setStatus validates and sets the lifecycle state.
// Used during restoration from persistent state.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setAssignedTo validates status/assignee consistency and sets the partner
// reference. Used during restoration from persistent state.
func (o *Order) setAssignedTo(status Status, assignedTo *kernel.UUID) error {
	if err := status.ValidateCanHaveAssignee(assignedTo != nil); err != nil {
		return err
	}

	if assignedTo != nil {
		if err := assignedTo.Validate(); err != nil {
			return err
		}
		id := *assignedTo
		o.assignedTo = &id
	}

	return nil
}
