package controller

import (
	"context"
	"errors"
	"fmt"

	e "github.com/fortetech/assethub/internal/assethub/errors"
	"github.com/fortetech/assethub/internal/assethub/events"
	"github.com/fortetech/assethub/internal/assethub/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeRepository defines the storage interface for Employee objects.
// GetCompany backs the referential integrity check against Company.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	ListEmployeesByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) error
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
	EmployeeExistsByEmail(ctx context.Context, email string) (bool, error)
	EmployeeExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
}

// EmployeeService provides methods to manage employees. Every employee
// must reference an existing company at creation and at any re-assignment.
type EmployeeService struct {
	repo     EmployeeRepository
	producer EventProducer
	logger   *zap.Logger
}

func NewEmployeeService(repo EmployeeRepository, producer EventProducer, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("employee_service"),
	}
}

// CreateEmployee adds a new Employee. The company reference is resolved
// first, then email and national id uniqueness, in that order, each
// short-circuiting.
func (s *EmployeeService) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if err := validateName(employee.Name); err != nil {
		return nil, err
	}
	if err := validateEmail(employee.Email); err != nil {
		return nil, err
	}
	if err := validateNationalID(employee.NationalID); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetCompany(ctx, employee.CompanyID); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: company", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve company: %w", err)
	}

	exists, err := s.repo.EmployeeExistsByEmail(ctx, employee.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: employee with email %q", e.ErrAlreadyExists, employee.Email)
	}

	exists, err = s.repo.EmployeeExistsByNationalID(ctx, employee.NationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check national id existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: employee with national id %q", e.ErrAlreadyExists, employee.NationalID)
	}

	employee.ID = uuid.New()
	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	go func() {
		s.producer.Produce(events.EmployeeCreated, employee.ID, employee)
	}()
	return employee, nil
}

// GetEmployee retrieves an Employee by ID, returning an error if not found.
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	employee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: employee", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// ListEmployees returns all employees, newest first.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// ListEmployeesByCompany returns the employees referencing the company,
// newest first. The company must exist.
func (s *EmployeeService) ListEmployeesByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Employee, error) {
	if _, err := s.repo.GetCompany(ctx, companyID); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: company", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve company: %w", err)
	}

	employees, err := s.repo.ListEmployeesByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by company: %w", err)
	}
	return employees, nil
}

// UpdateEmployee modifies the specified Employee fields. A changed
// company reference must resolve; changed email or national id values are
// re-checked for uniqueness, excluding the employee itself.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) (*models.Employee, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid employee ID", e.ErrInvalidInput)
	}

	current, err := s.repo.GetEmployee(ctx, update.ID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: employee", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if update.CompanyID != nil && *update.CompanyID != current.CompanyID {
		if _, err := s.repo.GetCompany(ctx, *update.CompanyID); err != nil {
			if errors.Is(err, e.ErrNotFound) {
				return nil, fmt.Errorf("%w: company", e.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to resolve company: %w", err)
		}
	}

	if update.Name != nil {
		if err := validateName(*update.Name); err != nil {
			return nil, err
		}
	}

	if update.Email != nil && *update.Email != current.Email {
		if err := validateEmail(*update.Email); err != nil {
			return nil, err
		}
		exists, err := s.repo.EmployeeExistsByEmail(ctx, *update.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email existence: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: employee with email %q", e.ErrAlreadyExists, *update.Email)
		}
	}

	if update.NationalID != nil && *update.NationalID != current.NationalID {
		if err := validateNationalID(*update.NationalID); err != nil {
			return nil, err
		}
		exists, err := s.repo.EmployeeExistsByNationalID(ctx, *update.NationalID)
		if err != nil {
			return nil, fmt.Errorf("failed to check national id existence: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: employee with national id %q", e.ErrAlreadyExists, *update.NationalID)
		}
	}

	if err := s.repo.UpdateEmployee(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: employee", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.repo.GetEmployee(ctx, update.ID)
	if err != nil {
		s.logger.Error("Failed to get employee after update",
			zap.Error(err),
			zap.String("employee_id", update.ID.String()),
		)
		return nil, err
	}
	go func() {
		s.producer.Produce(events.EmployeeUpdated, updated.ID, updated)
	}()
	return updated, nil
}

// DeleteEmployee removes an Employee by ID. Deletion is unconditional:
// assets holding a back-reference are not checked here.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return fmt.Errorf("%w: employee", e.ErrNotFound)
		}
		return fmt.Errorf("failed to get employee for deletion: %w", err)
	}

	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	go func() {
		s.producer.Produce(events.EmployeeDeleted, employee.ID, employee)
	}()

	return nil
}
