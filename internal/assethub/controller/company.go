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

// CompanyRepository defines the storage interface for Company objects.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, company *models.Company) error
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	UpdateCompany(ctx context.Context, update *models.CompanyUpdate) error
	DeleteCompany(ctx context.Context, id uuid.UUID) error
	CompanyExistsByName(ctx context.Context, name string) (bool, error)
	CompanyExistsByTaxID(ctx context.Context, taxID string) (bool, error)
}

// CompanyService provides methods to manage companies via repository
// operations and event production.
type CompanyService struct {
	repo     CompanyRepository
	producer EventProducer
	logger   *zap.Logger
}

// NewCompanyService constructs a CompanyService with a repository,
// an event producer, and a logger.
func NewCompanyService(repo CompanyRepository, producer EventProducer, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("company_service"),
	}
}

// CreateCompany adds a new Company after validating input data and
// ensuring name and tax id uniqueness. The name is checked first and
// short-circuits before the tax id.
func (s *CompanyService) CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	if err := validateName(company.Name); err != nil {
		return nil, err
	}
	if err := validateTaxID(company.TaxID); err != nil {
		return nil, err
	}

	exists, err := s.repo.CompanyExistsByName(ctx, company.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check name existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: company with name %q", e.ErrAlreadyExists, company.Name)
	}

	exists, err = s.repo.CompanyExistsByTaxID(ctx, company.TaxID)
	if err != nil {
		return nil, fmt.Errorf("failed to check tax id existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: company with tax id %q", e.ErrAlreadyExists, company.TaxID)
	}

	company.ID = uuid.New()
	if err := s.repo.CreateCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	go func() {
		s.producer.Produce(events.CompanyCreated, company.ID, company)
	}()
	return company, nil
}

// GetCompany retrieves a Company by ID, returning an error if not found.
func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: company", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

// ListCompanies returns all companies, newest first.
func (s *CompanyService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	companies, err := s.repo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// UpdateCompany modifies the specified Company fields. Changed unique
// fields are re-validated against all other records; updating a company
// to its own current name or tax id never fails.
func (s *CompanyService) UpdateCompany(ctx context.Context, update *models.CompanyUpdate) (*models.Company, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid company ID", e.ErrInvalidInput)
	}

	current, err := s.repo.GetCompany(ctx, update.ID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: company", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	if update.Name != nil && *update.Name != current.Name {
		if err := validateName(*update.Name); err != nil {
			return nil, err
		}
		exists, err := s.repo.CompanyExistsByName(ctx, *update.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check name existence: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: company with name %q", e.ErrAlreadyExists, *update.Name)
		}
	}

	if update.TaxID != nil && *update.TaxID != current.TaxID {
		if err := validateTaxID(*update.TaxID); err != nil {
			return nil, err
		}
		exists, err := s.repo.CompanyExistsByTaxID(ctx, *update.TaxID)
		if err != nil {
			return nil, fmt.Errorf("failed to check tax id existence: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: company with tax id %q", e.ErrAlreadyExists, *update.TaxID)
		}
	}

	if err := s.repo.UpdateCompany(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: company", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	updated, err := s.repo.GetCompany(ctx, update.ID)
	if err != nil {
		s.logger.Error("Failed to get company after update",
			zap.Error(err),
			zap.String("company_id", update.ID.String()),
		)
		return nil, err
	}
	go func() {
		s.producer.Produce(events.CompanyUpdated, updated.ID, updated)
	}()
	return updated, nil
}

// DeleteCompany removes a Company by ID and fires a deletion event.
// Deletion is unconditional: employees referencing the company are not
// checked here.
func (s *CompanyService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	company, err := s.repo.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return fmt.Errorf("%w: company", e.ErrNotFound)
		}
		return fmt.Errorf("failed to get company for deletion: %w", err)
	}

	if err := s.repo.DeleteCompany(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	go func() {
		s.producer.Produce(events.CompanyDeleted, company.ID, company)
	}()

	return nil
}
