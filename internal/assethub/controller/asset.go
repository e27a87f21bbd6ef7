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

// AssetRepository defines the storage interface for Asset objects.
// AssociateAsset and DisassociateAsset are status-guarded writes: they
// report false when the asset was not in the required status at write
// time, which covers both a bad transition and a lost race.
type AssetRepository interface {
	CreateAsset(ctx context.Context, asset *models.Asset) error
	GetAsset(ctx context.Context, id uuid.UUID) (*models.Asset, error)
	ListAssets(ctx context.Context) ([]models.Asset, error)
	ListAssetsByStatus(ctx context.Context, status models.AssetStatus) ([]models.Asset, error)
	ListAssetsByType(ctx context.Context, assetType string) ([]models.Asset, error)
	ListAssetsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.Asset, error)
	ListAvailableAssets(ctx context.Context) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, update *models.AssetUpdate) error
	DeleteAsset(ctx context.Context, id uuid.UUID) error
	AssetExistsByName(ctx context.Context, name string) (bool, error)
	CountInUseNotebooks(ctx context.Context, employeeID uuid.UUID) (int64, error)
	AssociateAsset(ctx context.Context, assetID, employeeID uuid.UUID) (bool, error)
	DisassociateAsset(ctx context.Context, assetID uuid.UUID) (bool, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
}

// AssetService manages the asset lifecycle: creation, the
// associate/disassociate state machine, the one-notebook-per-employee
// rule, and the deletion guard for associated assets.
type AssetService struct {
	repo     AssetRepository
	producer EventProducer
	logger   *zap.Logger
}

func NewAssetService(repo AssetRepository, producer EventProducer, logger *zap.Logger) *AssetService {
	return &AssetService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("asset_service"),
	}
}

func validateAssetType(assetType string) error {
	if len(assetType) < 2 || len(assetType) > 50 {
		return fmt.Errorf("%w: type must be between 2 and 50 characters", e.ErrInvalidInput)
	}
	return nil
}

// CreateAsset adds a new Asset after validating input data and name
// uniqueness. The initial status is caller-supplied and not subject to
// transition validation; the employee link always starts empty.
func (s *AssetService) CreateAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error) {
	if err := validateName(asset.Name); err != nil {
		return nil, err
	}
	if err := validateAssetType(asset.Type); err != nil {
		return nil, err
	}
	if !models.ValidStatus(asset.Status) {
		return nil, fmt.Errorf("%w: status must be Available, InUse or UnderMaintenance", e.ErrInvalidInput)
	}

	exists, err := s.repo.AssetExistsByName(ctx, asset.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check name existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: asset with name %q", e.ErrAlreadyExists, asset.Name)
	}

	asset.ID = uuid.New()
	asset.EmployeeID = nil
	if err := s.repo.CreateAsset(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	go func() {
		s.producer.Produce(events.AssetCreated, asset.ID, asset)
	}()
	return asset, nil
}

// AssociateAsset links an Available asset to an employee and transitions
// it to InUse. For Notebook-type assets the employee must not already
// hold an InUse notebook. The final write is guarded on the asset still
// being Available, so two concurrent associations cannot both win.
func (s *AssetService) AssociateAsset(ctx context.Context, assetID, employeeID uuid.UUID) (*models.Asset, error) {
	asset, err := s.repo.GetAsset(ctx, assetID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: asset", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	employee, err := s.repo.GetEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: employee", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if asset.Status != models.StatusAvailable {
		return nil, fmt.Errorf("%w: status is %s", e.ErrNotAvailable, asset.Status)
	}

	if asset.Type == models.NotebookType {
		count, err := s.repo.CountInUseNotebooks(ctx, employee.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count notebooks: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: employee %s", e.ErrNotebookInUse, employee.Name)
		}
	}

	ok, err := s.repo.AssociateAsset(ctx, assetID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to associate asset: %w", err)
	}
	if !ok {
		// The asset left the Available status between the check and the
		// write; surface it the same way as a straight bad transition.
		return nil, fmt.Errorf("%w: asset is no longer available", e.ErrNotAvailable)
	}

	updated, err := s.repo.GetAsset(ctx, assetID)
	if err != nil {
		s.logger.Error("Failed to get asset after association",
			zap.Error(err),
			zap.String("asset_id", assetID.String()),
		)
		return nil, err
	}
	go func() {
		s.producer.Produce(events.AssetAssociated, updated.ID, updated)
	}()
	return updated, nil
}

// DisassociateAsset releases an InUse asset back to Available and clears
// the employee link. Assets that are Available or UnderMaintenance cannot
// be disassociated.
func (s *AssetService) DisassociateAsset(ctx context.Context, assetID uuid.UUID) (*models.Asset, error) {
	asset, err := s.repo.GetAsset(ctx, assetID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: asset", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	if asset.Status != models.StatusInUse {
		return nil, fmt.Errorf("%w: status is %s", e.ErrNotAvailable, asset.Status)
	}

	ok, err := s.repo.DisassociateAsset(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to disassociate asset: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: asset is no longer in use", e.ErrNotAvailable)
	}

	updated, err := s.repo.GetAsset(ctx, assetID)
	if err != nil {
		s.logger.Error("Failed to get asset after disassociation",
			zap.Error(err),
			zap.String("asset_id", assetID.String()),
		)
		return nil, err
	}
	go func() {
		s.producer.Produce(events.AssetDisassociated, updated.ID, updated)
	}()
	return updated, nil
}

// DeleteAsset removes an Asset by ID. An asset still linked to an
// employee cannot be deleted; the error carries the employee's name for
// the client-facing message.
func (s *AssetService) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	asset, err := s.repo.GetAsset(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return fmt.Errorf("%w: asset", e.ErrNotFound)
		}
		return fmt.Errorf("failed to get asset for deletion: %w", err)
	}

	if asset.EmployeeID != nil {
		employee, err := s.repo.GetEmployee(ctx, *asset.EmployeeID)
		if err != nil && !errors.Is(err, e.ErrNotFound) {
			return fmt.Errorf("failed to get associated employee: %w", err)
		}
		holder := "unknown"
		if employee != nil {
			holder = employee.Name
		}
		return fmt.Errorf("%w: held by %s, disassociate it first", e.ErrAssetAssociated, holder)
	}

	if err := s.repo.DeleteAsset(ctx, id); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	go func() {
		s.producer.Produce(events.AssetDeleted, asset.ID, asset)
	}()

	return nil
}

// UpdateAsset modifies name, type or status through the generic update
// path. A changed name is re-checked for uniqueness excluding the asset
// itself. Status changes here bypass the associate/disassociate
// transition checks on purpose, mirroring the behavior clients already
// depend on.
func (s *AssetService) UpdateAsset(ctx context.Context, update *models.AssetUpdate) (*models.Asset, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid asset ID", e.ErrInvalidInput)
	}

	current, err := s.repo.GetAsset(ctx, update.ID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: asset", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	if update.Name != nil && *update.Name != current.Name {
		if err := validateName(*update.Name); err != nil {
			return nil, err
		}
		exists, err := s.repo.AssetExistsByName(ctx, *update.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check name existence: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: asset with name %q", e.ErrAlreadyExists, *update.Name)
		}
	}

	if update.Type != nil {
		if err := validateAssetType(*update.Type); err != nil {
			return nil, err
		}
	}
	if update.Status != nil && !models.ValidStatus(*update.Status) {
		return nil, fmt.Errorf("%w: status must be Available, InUse or UnderMaintenance", e.ErrInvalidInput)
	}

	if err := s.repo.UpdateAsset(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: asset", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	updated, err := s.repo.GetAsset(ctx, update.ID)
	if err != nil {
		s.logger.Error("Failed to get asset after update",
			zap.Error(err),
			zap.String("asset_id", update.ID.String()),
		)
		return nil, err
	}
	go func() {
		s.producer.Produce(events.AssetUpdated, updated.ID, updated)
	}()
	return updated, nil
}

// GetAsset retrieves an Asset by ID, returning an error if not found.
func (s *AssetService) GetAsset(ctx context.Context, id uuid.UUID) (*models.Asset, error) {
	asset, err := s.repo.GetAsset(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: asset", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset, nil
}

// ListAssets returns all assets, newest first.
func (s *AssetService) ListAssets(ctx context.Context) ([]models.Asset, error) {
	assets, err := s.repo.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// ListAssetsByStatus returns the assets in the given status, newest first.
func (s *AssetService) ListAssetsByStatus(ctx context.Context, status models.AssetStatus) ([]models.Asset, error) {
	assets, err := s.repo.ListAssetsByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets by status: %w", err)
	}
	return assets, nil
}

// ListAssetsByType returns the assets of the given type, newest first.
func (s *AssetService) ListAssetsByType(ctx context.Context, assetType string) ([]models.Asset, error) {
	assets, err := s.repo.ListAssetsByType(ctx, assetType)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets by type: %w", err)
	}
	return assets, nil
}

// ListAssetsByEmployee returns the assets held by the employee, newest
// first. The employee must exist.
func (s *AssetService) ListAssetsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.Asset, error) {
	if _, err := s.repo.GetEmployee(ctx, employeeID); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: employee", e.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}

	assets, err := s.repo.ListAssetsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets by employee: %w", err)
	}
	return assets, nil
}

// ListAvailableAssets returns unassigned assets in the Available status,
// newest first.
func (s *AssetService) ListAvailableAssets(ctx context.Context) ([]models.Asset, error) {
	assets, err := s.repo.ListAvailableAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available assets: %w", err)
	}
	return assets, nil
}
