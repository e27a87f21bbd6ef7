package handlers

import (
	"context"
	"net/http"

	"github.com/fortetech/assethub/internal/assethub/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssetController defines the business logic interface the asset
// handlers invoke.
type AssetController interface {
	CreateAsset(ctx context.Context, asset *models.Asset) (*models.Asset, error)
	GetAsset(ctx context.Context, id uuid.UUID) (*models.Asset, error)
	ListAssets(ctx context.Context) ([]models.Asset, error)
	ListAssetsByStatus(ctx context.Context, status models.AssetStatus) ([]models.Asset, error)
	ListAssetsByType(ctx context.Context, assetType string) ([]models.Asset, error)
	ListAssetsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.Asset, error)
	ListAvailableAssets(ctx context.Context) ([]models.Asset, error)
	UpdateAsset(ctx context.Context, update *models.AssetUpdate) (*models.Asset, error)
	DeleteAsset(ctx context.Context, id uuid.UUID) error
	AssociateAsset(ctx context.Context, assetID, employeeID uuid.UUID) (*models.Asset, error)
	DisassociateAsset(ctx context.Context, assetID uuid.UUID) (*models.Asset, error)
}

// AssetHandler serves the /assets resource, including the association
// endpoints.
type AssetHandler struct {
	service AssetController
	logger  *zap.Logger
}

func NewAssetHandler(service AssetController, logger *zap.Logger) *AssetHandler {
	return &AssetHandler{
		service: service,
		logger:  logger.Named("asset_handler"),
	}
}

func (h *AssetHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/assets", h.Create)
	router.GET("/assets", h.List)
	router.GET("/assets/available", h.ListAvailable)
	router.GET("/assets/employee/:employeeId", h.ListByEmployee)
	router.GET("/assets/:id", h.GetByID)
	router.PATCH("/assets/:id", h.Update)
	router.POST("/assets/:id/associate/:employeeId", h.Associate)
	router.POST("/assets/:id/disassociate", h.Disassociate)
	router.DELETE("/assets/:id", h.Delete)
}

type createAssetRequest struct {
	Name   string             `json:"name" binding:"required"`
	Type   string             `json:"type" binding:"required"`
	Status models.AssetStatus `json:"status" binding:"required"`
}

func (h *AssetHandler) Create(c *gin.Context) {
	var req createAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	asset, err := h.service.CreateAsset(c.Request.Context(), &models.Asset{
		Name:   req.Name,
		Type:   req.Type,
		Status: req.Status,
	})
	if err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, asset)
}

// List serves GET /assets with optional status and type query filters.
// Status takes precedence when both are supplied.
func (h *AssetHandler) List(c *gin.Context) {
	var (
		assets []models.Asset
		err    error
	)
	switch {
	case c.Query("status") != "":
		assets, err = h.service.ListAssetsByStatus(c.Request.Context(), models.AssetStatus(c.Query("status")))
	case c.Query("type") != "":
		assets, err = h.service.ListAssetsByType(c.Request.Context(), c.Query("type"))
	default:
		assets, err = h.service.ListAssets(c.Request.Context())
	}
	if err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

func (h *AssetHandler) ListAvailable(c *gin.Context) {
	assets, err := h.service.ListAvailableAssets(c.Request.Context())
	if err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

func (h *AssetHandler) ListByEmployee(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	assets, err := h.service.ListAssetsByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

func (h *AssetHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset ID"})
		return
	}

	asset, err := h.service.GetAsset(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset ID"})
		return
	}

	var update models.AssetUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	update.ID = id

	asset, err := h.service.UpdateAsset(c.Request.Context(), &update)
	if err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) Associate(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset ID"})
		return
	}
	employeeID, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	asset, err := h.service.AssociateAsset(c.Request.Context(), assetID, employeeID)
	if err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) Disassociate(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset ID"})
		return
	}

	asset, err := h.service.DisassociateAsset(c.Request.Context(), assetID)
	if err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

func (h *AssetHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset ID"})
		return
	}

	if err := h.service.DeleteAsset(c.Request.Context(), id); err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
