package controller

import (
	"context"
	"sync"

	"github.com/fortetech/assethub/internal/assethub/events"
	"github.com/fortetech/assethub/internal/assethub/models"
	"github.com/google/uuid"
)

// MockProducer is a test double for the Kafka producer.
type MockProducer struct {
	mu             sync.Mutex
	producedEvents []events.EventType
	wg             *sync.WaitGroup
}

// Produce records the event type and signals the wait group.
func (m *MockProducer) Produce(eventType events.EventType, entityID uuid.UUID, entity interface{}) {
	m.mu.Lock()
	m.producedEvents = append(m.producedEvents, eventType)
	m.mu.Unlock()
	if m.wg != nil {
		m.wg.Done()
	}
}

func (m *MockProducer) Events() []events.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]events.EventType(nil), m.producedEvents...)
}

// MockCompanyRepo implements CompanyRepository for testing.
type MockCompanyRepo struct {
	createCompany        func(context.Context, *models.Company) error
	getCompany           func(context.Context, uuid.UUID) (*models.Company, error)
	listCompanies        func(context.Context) ([]models.Company, error)
	updateCompany        func(context.Context, *models.CompanyUpdate) error
	deleteCompany        func(context.Context, uuid.UUID) error
	companyExistsByName  func(context.Context, string) (bool, error)
	companyExistsByTaxID func(context.Context, string) (bool, error)
}

func (m *MockCompanyRepo) CreateCompany(ctx context.Context, c *models.Company) error {
	return m.createCompany(ctx, c)
}

func (m *MockCompanyRepo) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return m.getCompany(ctx, id)
}

func (m *MockCompanyRepo) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return m.listCompanies(ctx)
}

func (m *MockCompanyRepo) UpdateCompany(ctx context.Context, u *models.CompanyUpdate) error {
	return m.updateCompany(ctx, u)
}

func (m *MockCompanyRepo) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return m.deleteCompany(ctx, id)
}

func (m *MockCompanyRepo) CompanyExistsByName(ctx context.Context, name string) (bool, error) {
	return m.companyExistsByName(ctx, name)
}

func (m *MockCompanyRepo) CompanyExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	return m.companyExistsByTaxID(ctx, taxID)
}

// MockEmployeeRepo implements EmployeeRepository for testing.
type MockEmployeeRepo struct {
	createEmployee             func(context.Context, *models.Employee) error
	getEmployee                func(context.Context, uuid.UUID) (*models.Employee, error)
	listEmployees              func(context.Context) ([]models.Employee, error)
	listEmployeesByCompany     func(context.Context, uuid.UUID) ([]models.Employee, error)
	updateEmployee             func(context.Context, *models.EmployeeUpdate) error
	deleteEmployee             func(context.Context, uuid.UUID) error
	employeeExistsByEmail      func(context.Context, string) (bool, error)
	employeeExistsByNationalID func(context.Context, string) (bool, error)
	getCompany                 func(context.Context, uuid.UUID) (*models.Company, error)
}

func (m *MockEmployeeRepo) CreateEmployee(ctx context.Context, e *models.Employee) error {
	return m.createEmployee(ctx, e)
}

func (m *MockEmployeeRepo) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	return m.getEmployee(ctx, id)
}

func (m *MockEmployeeRepo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return m.listEmployees(ctx)
}

func (m *MockEmployeeRepo) ListEmployeesByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Employee, error) {
	return m.listEmployeesByCompany(ctx, companyID)
}

func (m *MockEmployeeRepo) UpdateEmployee(ctx context.Context, u *models.EmployeeUpdate) error {
	return m.updateEmployee(ctx, u)
}

func (m *MockEmployeeRepo) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return m.deleteEmployee(ctx, id)
}

func (m *MockEmployeeRepo) EmployeeExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.employeeExistsByEmail(ctx, email)
}

func (m *MockEmployeeRepo) EmployeeExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	return m.employeeExistsByNationalID(ctx, nationalID)
}

func (m *MockEmployeeRepo) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return m.getCompany(ctx, id)
}

// MockAssetRepo implements AssetRepository for testing.
type MockAssetRepo struct {
	createAsset          func(context.Context, *models.Asset) error
	getAsset             func(context.Context, uuid.UUID) (*models.Asset, error)
	listAssets           func(context.Context) ([]models.Asset, error)
	listAssetsByStatus   func(context.Context, models.AssetStatus) ([]models.Asset, error)
	listAssetsByType     func(context.Context, string) ([]models.Asset, error)
	listAssetsByEmployee func(context.Context, uuid.UUID) ([]models.Asset, error)
	listAvailableAssets  func(context.Context) ([]models.Asset, error)
	updateAsset          func(context.Context, *models.AssetUpdate) error
	deleteAsset          func(context.Context, uuid.UUID) error
	assetExistsByName    func(context.Context, string) (bool, error)
	countInUseNotebooks  func(context.Context, uuid.UUID) (int64, error)
	associateAsset       func(context.Context, uuid.UUID, uuid.UUID) (bool, error)
	disassociateAsset    func(context.Context, uuid.UUID) (bool, error)
	getEmployee          func(context.Context, uuid.UUID) (*models.Employee, error)
}

func (m *MockAssetRepo) CreateAsset(ctx context.Context, a *models.Asset) error {
	return m.createAsset(ctx, a)
}

func (m *MockAssetRepo) GetAsset(ctx context.Context, id uuid.UUID) (*models.Asset, error) {
	return m.getAsset(ctx, id)
}

func (m *MockAssetRepo) ListAssets(ctx context.Context) ([]models.Asset, error) {
	return m.listAssets(ctx)
}

func (m *MockAssetRepo) ListAssetsByStatus(ctx context.Context, status models.AssetStatus) ([]models.Asset, error) {
	return m.listAssetsByStatus(ctx, status)
}

func (m *MockAssetRepo) ListAssetsByType(ctx context.Context, assetType string) ([]models.Asset, error) {
	return m.listAssetsByType(ctx, assetType)
}

func (m *MockAssetRepo) ListAssetsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.Asset, error) {
	return m.listAssetsByEmployee(ctx, employeeID)
}

func (m *MockAssetRepo) ListAvailableAssets(ctx context.Context) ([]models.Asset, error) {
	return m.listAvailableAssets(ctx)
}

func (m *MockAssetRepo) UpdateAsset(ctx context.Context, u *models.AssetUpdate) error {
	return m.updateAsset(ctx, u)
}

func (m *MockAssetRepo) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return m.deleteAsset(ctx, id)
}

func (m *MockAssetRepo) AssetExistsByName(ctx context.Context, name string) (bool, error) {
	return m.assetExistsByName(ctx, name)
}

func (m *MockAssetRepo) CountInUseNotebooks(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	return m.countInUseNotebooks(ctx, employeeID)
}

func (m *MockAssetRepo) AssociateAsset(ctx context.Context, assetID, employeeID uuid.UUID) (bool, error) {
	return m.associateAsset(ctx, assetID, employeeID)
}

func (m *MockAssetRepo) DisassociateAsset(ctx context.Context, assetID uuid.UUID) (bool, error) {
	return m.disassociateAsset(ctx, assetID)
}

func (m *MockAssetRepo) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	return m.getEmployee(ctx, id)
}
