package handlers

import (
	"context"
	"net/http"

	"github.com/fortetech/assethub/internal/assethub/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeController defines the business logic interface the employee
// handlers invoke.
type EmployeeController interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	ListEmployeesByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

// EmployeeHandler serves the /employees resource.
type EmployeeHandler struct {
	service EmployeeController
	logger  *zap.Logger
}

func NewEmployeeHandler(service EmployeeController, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		logger:  logger.Named("employee_handler"),
	}
}

func (h *EmployeeHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/employees", h.Create)
	router.GET("/employees", h.List)
	router.GET("/employees/company/:companyId", h.ListByCompany)
	router.GET("/employees/:id", h.GetByID)
	router.PATCH("/employees/:id", h.Update)
	router.DELETE("/employees/:id", h.Delete)
}

type createEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	NationalID string `json:"nationalId" binding:"required"`
	CompanyID  string `json:"companyId" binding:"required"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
		return
	}

	employee, err := h.service.CreateEmployee(c.Request.Context(), &models.Employee{
		Name:       req.Name,
		Email:      req.Email,
		NationalID: req.NationalID,
		CompanyID:  companyID,
	})
	if err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.service.ListEmployees(c.Request.Context())
	if err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) ListByCompany(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
		return
	}

	employees, err := h.service.ListEmployeesByCompany(c.Request.Context(), companyID)
	if err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	employee, err := h.service.GetEmployee(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	var update models.EmployeeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	update.ID = id

	employee, err := h.service.UpdateEmployee(c.Request.Context(), &update)
	if err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	if err := h.service.DeleteEmployee(c.Request.Context(), id); err != nil {
		mapServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
