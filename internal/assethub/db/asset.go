package db

import (
	"context"
	"errors"
	"time"

	e "github.com/fortetech/assethub/internal/assethub/errors"
	"github.com/fortetech/assethub/internal/assethub/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (r *Repository) CreateAsset(ctx context.Context, asset *models.Asset) error {
	result := r.db.WithContext(ctx).Create(asset)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return e.ErrAlreadyExists
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetAsset(ctx context.Context, id uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	result := r.db.WithContext(ctx).First(&asset, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &asset, nil
}

func (r *Repository) ListAssets(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&assets)
	return assets, result.Error
}

func (r *Repository) ListAssetsByStatus(ctx context.Context, status models.AssetStatus) ([]models.Asset, error) {
	var assets []models.Asset
	result := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&assets)
	return assets, result.Error
}

func (r *Repository) ListAssetsByType(ctx context.Context, assetType string) ([]models.Asset, error) {
	var assets []models.Asset
	result := r.db.WithContext(ctx).
		Where("type = ?", assetType).
		Order("created_at DESC").
		Find(&assets)
	return assets, result.Error
}

func (r *Repository) ListAssetsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.Asset, error) {
	var assets []models.Asset
	result := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&assets)
	return assets, result.Error
}

func (r *Repository) ListAvailableAssets(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	result := r.db.WithContext(ctx).
		Where("status = ? AND employee_id IS NULL", models.StatusAvailable).
		Order("created_at DESC").
		Find(&assets)
	return assets, result.Error
}

func (r *Repository) UpdateAsset(ctx context.Context, update *models.AssetUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Asset{}).
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

func (r *Repository) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Asset{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) AssetExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Asset{}).
		Where("name = ?", name).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

// CountInUseNotebooks returns how many Notebook assets the employee
// currently holds in the InUse status.
func (r *Repository) CountInUseNotebooks(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Asset{}).
		Where("employee_id = ? AND type = ? AND status = ?",
			employeeID, models.NotebookType, models.StatusInUse).
		Count(&count)
	return count, result.Error
}

// AssociateAsset transitions the asset to InUse and links it to the
// employee in a single status-guarded update. The status predicate makes
// the write a compare-and-swap: a concurrent associate that got there
// first leaves RowsAffected at zero, reported as false.
func (r *Repository) AssociateAsset(ctx context.Context, assetID, employeeID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Asset{}).
		Where("id = ? AND status = ?", assetID, models.StatusAvailable).
		Updates(map[string]interface{}{
			"status":      models.StatusInUse,
			"employee_id": employeeID,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DisassociateAsset transitions the asset back to Available and clears
// the employee link, guarded on the current status being InUse.
func (r *Repository) DisassociateAsset(ctx context.Context, assetID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Asset{}).
		Where("id = ? AND status = ?", assetID, models.StatusInUse).
		Updates(map[string]interface{}{
			"status":      models.StatusAvailable,
			"employee_id": nil,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
