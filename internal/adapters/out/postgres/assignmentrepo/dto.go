// Package assignmentrepo provides data transfer objects and mapping functions
// for the assignment log. The log is append-only, so the repository exposes
// no update or delete operations.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment
// records. Indexed by status and creation time for the metrics queries.
type AssignmentDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	PartnerID *uuid.UUID `gorm:"type:uuid;index"`
	Status    string     `gorm:"type:varchar(16);not null;index"`
	Reason    string     `gorm:"type:varchar(255)"`
	CreatedAt time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for assignment records.
// Overrides GORM's default naming convention to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment record to its database representation.
func fromDomain(record *assignment.Assignment) AssignmentDTO {
	var partnerID *uuid.UUID
	if id := record.PartnerID(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	return AssignmentDTO{
		ID:        record.ID().Bytes(),
		OrderID:   record.OrderID().Bytes(),
		PartnerID: partnerID,
		Status:    record.Status().String(),
		Reason:    record.Reason(),
		CreatedAt: record.CreatedAt(),
	}
}

// toDomain converts a database DTO to an assignment record using
// RestoreAssignment.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := assignment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pid, idErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if idErr != nil {
			return nil, idErr
		}
		partnerID = &pid
	}

	return assignment.RestoreAssignment(id, orderID, partnerID, status, dto.Reason, dto.CreatedAt)
}
