package models

import (
	"time"

	"github.com/google/uuid"
)

// AssetStatus represents the lifecycle status of an asset.
type AssetStatus string

const (
	// StatusAvailable marks an asset that can be associated to an employee.
	StatusAvailable AssetStatus = "Available"
	// StatusInUse marks an asset currently held by an employee.
	StatusInUse AssetStatus = "InUse"
	// StatusUnderMaintenance marks an asset out of circulation.
	StatusUnderMaintenance AssetStatus = "UnderMaintenance"
)

// NotebookType is the asset type subject to the one-notebook-per-employee
// rule. Other types carry no cardinality limit.
const NotebookType = "Notebook"

// ValidStatus reports whether s is one of the known asset statuses.
func ValidStatus(s AssetStatus) bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusUnderMaintenance:
		return true
	}
	return false
}

// Asset defines the domain model for an organizational asset
// (notebook, monitor, phone, ...).
//
// EmployeeID is non-nil exactly when Status is InUse; the association and
// disassociation operations keep that invariant, the generic update path
// does not.
type Asset struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string      `gorm:"uniqueIndex" json:"name"`
	Type       string      `json:"type"`
	Status     AssetStatus `gorm:"index" json:"status"`
	EmployeeID *uuid.UUID  `gorm:"type:uuid;index" json:"employeeId"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// AssetUpdate represents the fields that can be updated for an Asset
// through the generic update path. Association state is changed only via
// the associate/disassociate operations.
type AssetUpdate struct {
	ID     uuid.UUID    `json:"-"`
	Name   *string      `json:"name"`
	Type   *string      `json:"type"`
	Status *AssetStatus `json:"status"`
}
