package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	e "github.com/fortetech/assethub/internal/assethub/errors"
	"github.com/fortetech/assethub/internal/assethub/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockAssetController struct {
	createAsset          func(context.Context, *models.Asset) (*models.Asset, error)
	getAsset             func(context.Context, uuid.UUID) (*models.Asset, error)
	listAssets           func(context.Context) ([]models.Asset, error)
	listAssetsByStatus   func(context.Context, models.AssetStatus) ([]models.Asset, error)
	listAssetsByType     func(context.Context, string) ([]models.Asset, error)
	listAssetsByEmployee func(context.Context, uuid.UUID) ([]models.Asset, error)
	listAvailableAssets  func(context.Context) ([]models.Asset, error)
	updateAsset          func(context.Context, *models.AssetUpdate) (*models.Asset, error)
	deleteAsset          func(context.Context, uuid.UUID) error
	associateAsset       func(context.Context, uuid.UUID, uuid.UUID) (*models.Asset, error)
	disassociateAsset    func(context.Context, uuid.UUID) (*models.Asset, error)
}

func (m *mockAssetController) CreateAsset(ctx context.Context, a *models.Asset) (*models.Asset, error) {
	return m.createAsset(ctx, a)
}

func (m *mockAssetController) GetAsset(ctx context.Context, id uuid.UUID) (*models.Asset, error) {
	return m.getAsset(ctx, id)
}

func (m *mockAssetController) ListAssets(ctx context.Context) ([]models.Asset, error) {
	return m.listAssets(ctx)
}

func (m *mockAssetController) ListAssetsByStatus(ctx context.Context, status models.AssetStatus) ([]models.Asset, error) {
	return m.listAssetsByStatus(ctx, status)
}

func (m *mockAssetController) ListAssetsByType(ctx context.Context, assetType string) ([]models.Asset, error) {
	return m.listAssetsByType(ctx, assetType)
}

func (m *mockAssetController) ListAssetsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.Asset, error) {
	return m.listAssetsByEmployee(ctx, employeeID)
}

func (m *mockAssetController) ListAvailableAssets(ctx context.Context) ([]models.Asset, error) {
	return m.listAvailableAssets(ctx)
}

func (m *mockAssetController) UpdateAsset(ctx context.Context, u *models.AssetUpdate) (*models.Asset, error) {
	return m.updateAsset(ctx, u)
}

func (m *mockAssetController) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return m.deleteAsset(ctx, id)
}

func (m *mockAssetController) AssociateAsset(ctx context.Context, assetID, employeeID uuid.UUID) (*models.Asset, error) {
	return m.associateAsset(ctx, assetID, employeeID)
}

func (m *mockAssetController) DisassociateAsset(ctx context.Context, assetID uuid.UUID) (*models.Asset, error) {
	return m.disassociateAsset(ctx, assetID)
}

func setupAssetRouter(t *testing.T, service AssetController) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAssetHandler(service, zaptest.NewLogger(t)).RegisterRoutes(router)
	return router
}

func TestAssetHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		testID := uuid.New()
		mock := &mockAssetController{
			createAsset: func(_ context.Context, a *models.Asset) (*models.Asset, error) {
				a.ID = testID
				return a, nil
			},
		}
		router := setupAssetRouter(t, mock)

		body := bytes.NewBufferString(`{"name":"Dell XPS 13","type":"Notebook","status":"Available"}`)
		req := httptest.NewRequest(http.MethodPost, "/assets", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var asset models.Asset
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &asset))
		assert.Equal(t, testID, asset.ID)
		assert.Nil(t, asset.EmployeeID)
	})

	t.Run("missing status", func(t *testing.T) {
		router := setupAssetRouter(t, &mockAssetController{})

		body := bytes.NewBufferString(`{"name":"Dell XPS 13","type":"Notebook"}`)
		req := httptest.NewRequest(http.MethodPost, "/assets", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAssetHandler_List(t *testing.T) {
	t.Run("status filter wins over type", func(t *testing.T) {
		mock := &mockAssetController{
			listAssetsByStatus: func(_ context.Context, status models.AssetStatus) ([]models.Asset, error) {
				assert.Equal(t, models.StatusInUse, status)
				return []models.Asset{}, nil
			},
			listAssetsByType: func(_ context.Context, _ string) ([]models.Asset, error) {
				panic("type filter must not run when status is present")
			},
		}
		router := setupAssetRouter(t, mock)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets?status=InUse&type=Notebook", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("type filter", func(t *testing.T) {
		mock := &mockAssetController{
			listAssetsByType: func(_ context.Context, assetType string) ([]models.Asset, error) {
				assert.Equal(t, "Monitor", assetType)
				return []models.Asset{{ID: uuid.New()}}, nil
			},
		}
		router := setupAssetRouter(t, mock)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets?type=Monitor", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no filters lists everything", func(t *testing.T) {
		mock := &mockAssetController{
			listAssets: func(_ context.Context) ([]models.Asset, error) {
				return []models.Asset{{ID: uuid.New()}, {ID: uuid.New()}}, nil
			},
		}
		router := setupAssetRouter(t, mock)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var assets []models.Asset
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assets))
		assert.Len(t, assets, 2)
	})

	t.Run("available shortcut", func(t *testing.T) {
		mock := &mockAssetController{
			listAvailableAssets: func(_ context.Context) ([]models.Asset, error) {
				return []models.Asset{{ID: uuid.New(), Status: models.StatusAvailable}}, nil
			},
		}
		router := setupAssetRouter(t, mock)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/available", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAssetHandler_Associate(t *testing.T) {
	assetID := uuid.New()
	employeeID := uuid.New()
	path := "/assets/" + assetID.String() + "/associate/" + employeeID.String()

	tests := []struct {
		name           string
		serviceError   error
		expectedStatus int
	}{
		{name: "associated", expectedStatus: http.StatusOK},
		{name: "asset missing", serviceError: e.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "not available", serviceError: e.ErrNotAvailable, expectedStatus: http.StatusBadRequest},
		{name: "notebook exclusivity", serviceError: e.ErrNotebookInUse, expectedStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAssetController{
				associateAsset: func(_ context.Context, aID, eID uuid.UUID) (*models.Asset, error) {
					if tt.serviceError != nil {
						return nil, tt.serviceError
					}
					assert.Equal(t, assetID, aID)
					assert.Equal(t, employeeID, eID)
					return &models.Asset{ID: aID, Status: models.StatusInUse, EmployeeID: &eID}, nil
				},
			}
			router := setupAssetRouter(t, mock)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var asset models.Asset
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &asset))
				assert.Equal(t, models.StatusInUse, asset.Status)
				require.NotNil(t, asset.EmployeeID)
				assert.Equal(t, employeeID, *asset.EmployeeID)
			}
		})
	}

	t.Run("malformed employee id", func(t *testing.T) {
		router := setupAssetRouter(t, &mockAssetController{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/assets/"+assetID.String()+"/associate/nope", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAssetHandler_Disassociate(t *testing.T) {
	assetID := uuid.New()

	t.Run("released", func(t *testing.T) {
		mock := &mockAssetController{
			disassociateAsset: func(_ context.Context, id uuid.UUID) (*models.Asset, error) {
				return &models.Asset{ID: id, Status: models.StatusAvailable}, nil
			},
		}
		router := setupAssetRouter(t, mock)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/assets/"+assetID.String()+"/disassociate", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var asset models.Asset
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &asset))
		assert.Nil(t, asset.EmployeeID)
	})

	t.Run("not in use", func(t *testing.T) {
		mock := &mockAssetController{
			disassociateAsset: func(_ context.Context, _ uuid.UUID) (*models.Asset, error) {
				return nil, e.ErrNotAvailable
			},
		}
		router := setupAssetRouter(t, mock)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/assets/"+assetID.String()+"/disassociate", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAssetHandler_Delete(t *testing.T) {
	t.Run("held asset returns conflict", func(t *testing.T) {
		mock := &mockAssetController{
			deleteAsset: func(_ context.Context, _ uuid.UUID) error {
				return e.ErrAssetAssociated
			},
		}
		router := setupAssetRouter(t, mock)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/assets/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("no content", func(t *testing.T) {
		mock := &mockAssetController{
			deleteAsset: func(_ context.Context, _ uuid.UUID) error { return nil },
		}
		router := setupAssetRouter(t, mock)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/assets/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestAssetHandler_ListByEmployee(t *testing.T) {
	employeeID := uuid.New()

	t.Run("employee missing", func(t *testing.T) {
		mock := &mockAssetController{
			listAssetsByEmployee: func(_ context.Context, _ uuid.UUID) ([]models.Asset, error) {
				return nil, e.ErrNotFound
			},
		}
		router := setupAssetRouter(t, mock)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/employee/"+employeeID.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns holder assets", func(t *testing.T) {
		mock := &mockAssetController{
			listAssetsByEmployee: func(_ context.Context, id uuid.UUID) ([]models.Asset, error) {
				return []models.Asset{{ID: uuid.New(), EmployeeID: &id}}, nil
			},
		}
		router := setupAssetRouter(t, mock)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/employee/"+employeeID.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
