package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee defines the domain model for an employee entity.
// Every employee references exactly one Company.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	NationalID string    `gorm:"column:national_id;uniqueIndex" json:"nationalId"`
	CompanyID  uuid.UUID `gorm:"type:uuid;index" json:"companyId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// EmployeeUpdate represents the fields that can be updated for an Employee.
type EmployeeUpdate struct {
	ID         uuid.UUID  `json:"-"`
	Name       *string    `json:"name"`
	Email      *string    `json:"email"`
	NationalID *string    `gorm:"column:national_id" json:"nationalId"`
	CompanyID  *uuid.UUID `gorm:"column:company_id" json:"companyId"`
}
