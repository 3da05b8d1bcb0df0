// Package partnerrepo provides data transfer objects and mapping functions for partner persistence.
// This package implements the repository pattern for the partner domain aggregate, handling
// the conversion between domain entities and database representations.
package partnerrepo

import (
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting partner aggregates.
// Areas are stored as a comma-joined text column; coverage checks run in
// memory, never in SQL.
type PartnerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone       string    `gorm:"type:varchar(32);not null"`
	Status      string    `gorm:"type:varchar(16);not null;index"`
	CurrentLoad int       `gorm:"type:int;not null"`
	Areas       string    `gorm:"type:text;not null"`
	ShiftStart  string    `gorm:"type:varchar(8)"`
	ShiftEnd    string    `gorm:"type:varchar(8)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for partner entities.
// Overrides GORM's default naming convention to use "partners".
func (PartnerDTO) TableName() string {
	return "partners"
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(aggregate *partner.Partner) PartnerDTO {
	shiftStart, shiftEnd := aggregate.Shift()

	return PartnerDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Email:       aggregate.Email(),
		Phone:       aggregate.Phone(),
		Status:      aggregate.Status().String(),
		CurrentLoad: aggregate.CurrentLoad(),
		Areas:       strings.Join(aggregate.Areas(), ","),
		ShiftStart:  shiftStart,
		ShiftEnd:    shiftEnd,
	}
}

// toDomain converts a database DTO to a partner domain aggregate.
// Reconstructs the complete aggregate using RestorePartner.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := partner.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var areas []string
	if dto.Areas != "" {
		areas = strings.Split(dto.Areas, ",")
	}

	return partner.RestorePartner(id, dto.Name, dto.Email, dto.Phone,
		status, dto.CurrentLoad, areas, dto.ShiftStart, dto.ShiftEnd)
}
