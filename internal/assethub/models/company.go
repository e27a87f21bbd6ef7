// Package models defines the core domain models for the asset management
// service: Company, Employee, Asset and their partial-update counterparts.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Company defines the domain model for a company entity.
type Company struct {
	// ID is the unique identifier for the company.
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	// Name is the company's name, globally unique.
	Name string `gorm:"uniqueIndex" json:"name"`
	// TaxID is the company's tax identifier in the NN.NNN.NNN/NNNN-NN format,
	// globally unique.
	TaxID string `gorm:"column:tax_id;uniqueIndex" json:"taxId"`
	// CreatedAt records the timestamp when the company was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt records the timestamp when the company was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}

// CompanyUpdate represents the fields that can be updated for a Company.
// Pointer types are used to allow partial updates.
type CompanyUpdate struct {
	// ID is the unique identifier for the company to update.
	ID uuid.UUID `json:"-"`
	// Name is the new name for the company.
	Name *string `json:"name"`
	// TaxID is the new tax identifier.
	TaxID *string `gorm:"column:tax_id" json:"taxId"`
}
