package http

import (
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
)

// Error is the common error payload for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatePartnerRequest is the payload for registering a delivery partner.
type CreatePartnerRequest struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Phone string   `json:"phone"`
	Areas []string `json:"areas"`
}

// UpdatePartnerRequest is the payload for changing a partner's profile.
type UpdatePartnerRequest struct {
	Status     string   `json:"status"`
	Areas      []string `json:"areas"`
	ShiftStart string   `json:"shift_start"`
	ShiftEnd   string   `json:"shift_end"`
}

// Partner is the read model of a delivery partner.
type Partner struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Status      string   `json:"status"`
	CurrentLoad int      `json:"current_load"`
	Areas       []string `json:"areas"`
	ShiftStart  string   `json:"shift_start,omitempty"`
	ShiftEnd    string   `json:"shift_end,omitempty"`
}

// CreateOrderRequest is the payload for registering a delivery order.
// OrderNumber is optional; a number is generated when it is empty.
type CreateOrderRequest struct {
	OrderNumber     string  `json:"order_number"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerAddress string  `json:"customer_address"`
	Area            string  `json:"area"`
	TotalAmount     float64 `json:"total_amount"`
	ScheduledFor    string  `json:"scheduled_for"`
}

// UpdateOrderStatusRequest is the payload for moving an order through its
// lifecycle. Only "picked" and "delivered" are accepted.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Order is the read model of a delivery order.
type Order struct {
	ID              string  `json:"id"`
	OrderNumber     string  `json:"order_number"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerAddress string  `json:"customer_address"`
	Area            string  `json:"area"`
	TotalAmount     float64 `json:"total_amount"`
	ScheduledFor    string  `json:"scheduled_for,omitempty"`
	Status          string  `json:"status"`
	AssignedTo      *string `json:"assigned_to,omitempty"`
}

// AssignOrderRequest is the payload for assigning an order to a specific partner.
type AssignOrderRequest struct {
	OrderID   string `json:"order_id"`
	PartnerID string `json:"partner_id"`
}

// Assignment is the read model of one assignment attempt.
type Assignment struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	PartnerID *string   `json:"partner_id,omitempty"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BulkAssignmentResult summarizes one bulk assignment run.
type BulkAssignmentResult struct {
	Assignments  []Assignment `json:"assignments"`
	SuccessCount int          `json:"success_count"`
}

// AssignmentMetrics aggregates the assignment log.
type AssignmentMetrics struct {
	TotalAssigned  int            `json:"total_assigned"`
	SuccessRate    float64        `json:"success_rate"`
	FailureReasons map[string]int `json:"failure_reasons"`
}

func partnerFromQuery(p queries.GetAllPartnersQueryResponse) Partner {
	return Partner{
		ID:          p.ID.String(),
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		Status:      p.Status,
		CurrentLoad: p.CurrentLoad,
		Areas:       p.Areas,
		ShiftStart:  p.ShiftStart,
		ShiftEnd:    p.ShiftEnd,
	}
}

func orderFromQuery(o queries.GetAllOrdersQueryResponse) Order {
	var assignedTo *string
	if o.AssignedTo != nil {
		id := o.AssignedTo.String()
		assignedTo = &id
	}

	return Order{
		ID:              o.ID.String(),
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		Area:            o.Area,
		TotalAmount:     o.TotalAmount,
		ScheduledFor:    o.ScheduledFor,
		Status:          o.Status,
		AssignedTo:      assignedTo,
	}
}

func assignmentFromQuery(a queries.GetAllAssignmentsQueryResponse) Assignment {
	var partnerID *string
	if a.PartnerID != nil {
		id := a.PartnerID.String()
		partnerID = &id
	}

	return Assignment{
		ID:        a.ID.String(),
		OrderID:   a.OrderID.String(),
		PartnerID: partnerID,
		Status:    a.Status,
		Reason:    a.Reason,
		CreatedAt: a.CreatedAt,
	}
}

func assignmentFromDomain(record *assignment.Assignment) Assignment {
	var partnerID *string
	if id := record.PartnerID(); id != nil {
		s := id.String()
		partnerID = &s
	}

	return Assignment{
		ID:        record.ID().String(),
		OrderID:   record.OrderID().String(),
		PartnerID: partnerID,
		Status:    record.Status().String(),
		Reason:    record.Reason(),
		CreatedAt: record.CreatedAt(),
	}
}

func bulkResultFromCommand(result commands.RunBulkAssignmentResult) BulkAssignmentResult {
	records := make([]Assignment, 0, len(result.Assignments))
	for _, record := range result.Assignments {
		records = append(records, assignmentFromDomain(record))
	}

	return BulkAssignmentResult{
		Assignments:  records,
		SuccessCount: result.SuccessCount,
	}
}
