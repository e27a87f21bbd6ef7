package db

import (
	"context"
	"errors"

	e "github.com/fortetech/assethub/internal/assethub/errors"
	"github.com/fortetech/assethub/internal/assethub/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (r *Repository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	result := r.db.WithContext(ctx).Create(employee)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrAlreadyExists
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.WithContext(ctx).First(&employee, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &employee, nil
}

func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&employees)
	return employees, result.Error
}

func (r *Repository) ListEmployeesByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&employees)
	return employees, result.Error
}

func (r *Repository) UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("id = ?", update.ID).
		Updates(update)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) EmployeeExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("email = ?", email).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

func (r *Repository) EmployeeExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("national_id = ?", nationalID).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}
