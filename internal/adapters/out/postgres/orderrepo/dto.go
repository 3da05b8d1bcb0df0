// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status for the pending-queue scan and by assignee for load
// reconciliation queries.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber     string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerName    string     `gorm:"type:varchar(255);not null"`
	CustomerPhone   string     `gorm:"type:varchar(32);not null"`
	CustomerAddress string     `gorm:"type:varchar(512);not null"`
	Area            string     `gorm:"type:varchar(255);not null"`
	TotalAmount     float64    `gorm:"type:numeric(12,2);not null"`
	ScheduledFor    string     `gorm:"type:varchar(32)"`
	Status          string     `gorm:"type:varchar(16);not null;index"`
	AssignedTo      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional partner assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var assignedTo *uuid.UUID
	if id := aggregate.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber(),
		CustomerName:    aggregate.CustomerName(),
		CustomerPhone:   aggregate.CustomerPhone(),
		CustomerAddress: aggregate.CustomerAddress(),
		Area:            aggregate.Area(),
		TotalAmount:     aggregate.TotalAmount(),
		ScheduledFor:    aggregate.ScheduledFor(),
		Status:          aggregate.Status().String(),
		AssignedTo:      assignedTo,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and partner assignment
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		partnerID, idErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if idErr != nil {
			return nil, idErr
		}
		assignedTo = &partnerID
	}

	return order.RestoreOrder(id, dto.OrderNumber, dto.CustomerName, dto.CustomerPhone,
		dto.CustomerAddress, dto.Area, dto.TotalAmount, dto.ScheduledFor, status, assignedTo)
}
