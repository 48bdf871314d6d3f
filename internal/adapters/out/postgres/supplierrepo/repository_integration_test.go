package supplierrepo_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/adapters/out/postgres/supplierrepo"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// SupplierRepositoryIntegrationTestSuite provides integration tests for
// SupplierRepository using PostgreSQL containers.
type SupplierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *supplierrepo.GormSupplierRepository
	tracker    *MockAggregateTracker
}

func (suite *SupplierRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// The referential check in Delete looks at purchase orders, so both
	// schemas are migrated.
	suite.Require().NoError(db.AutoMigrate(
		&supplierrepo.SupplierDTO{}, &orderrepo.OrderDTO{}, &orderrepo.LineDTO{},
	))
}

func (suite *SupplierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE suppliers, purchase_orders, purchase_order_lines",
	).Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = supplierrepo.NewGormSupplierRepository(suite.db, suite.tracker)
}

func (suite *SupplierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestAdd_ValidSupplier_Success() {
	ctx := context.Background()

	testSupplier := suite.createTestSupplier("ventas@elbodegon.gt")

	suite.tracker.On("TrackAggregate", testSupplier.ID(), testSupplier).Once()

	err := suite.repository.Add(ctx, testSupplier)
	suite.Require().NoError(err)

	suite.assertSupplierCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsAlreadyExistsError() {
	ctx := context.Background()

	first := suite.createTestSupplier("ventas@elbodegon.gt")
	second := suite.createTestSupplier("ventas@elbodegon.gt")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)

	suite.assertSupplierCount(1)
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestGet_ExistingSupplier_ReturnsSupplier() {
	ctx := context.Background()

	testSupplier := suite.createTestSupplier("ventas@elbodegon.gt")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testSupplier))

	retrieved, err := suite.repository.Get(ctx, testSupplier.ID())
	suite.Require().NoError(err)

	suite.Equal(testSupplier.ID(), retrieved.ID())
	suite.Equal(testSupplier.Name(), retrieved.Name())
	suite.Equal(testSupplier.TaxID(), retrieved.TaxID())
	suite.Equal(testSupplier.Contact(), retrieved.Contact())
	suite.True(retrieved.IsActive())
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestGet_NonExistentSupplier_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()

	testSupplier := suite.createTestSupplier("ventas@elbodegon.gt")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testSupplier))

	suite.Require().NoError(testSupplier.Rename("Distribuidora El Bodegón, S.A.", testSupplier.TaxID()))
	testSupplier.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, testSupplier))

	retrieved, err := suite.repository.Get(ctx, testSupplier.ID())
	suite.Require().NoError(err)
	suite.Equal("Distribuidora El Bodegón, S.A.", retrieved.Name())
	suite.False(retrieved.IsActive())

	var persisted string
	suite.Require().NoError(suite.db.Raw(
		"SELECT status FROM suppliers WHERE id = ?", testSupplier.ID().Bytes(),
	).Scan(&persisted).Error)
	suite.Equal("Inactivo", persisted)
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestUpdate_ClearsOptionalContactFields() {
	ctx := context.Background()

	testSupplier := suite.createTestSupplier("ventas@elbodegon.gt")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testSupplier))

	contact := testSupplier.Contact()
	contact.Phone = ""
	contact.Address = ""
	suite.Require().NoError(testSupplier.UpdateContact(contact))
	suite.Require().NoError(suite.repository.Update(ctx, testSupplier))

	retrieved, err := suite.repository.Get(ctx, testSupplier.ID())
	suite.Require().NoError(err)
	suite.Empty(retrieved.Contact().Phone)
	suite.Empty(retrieved.Contact().Address)
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestUpdate_NonExistentSupplier_ReturnsNotFoundError() {
	ctx := context.Background()

	testSupplier := suite.createTestSupplier("ventas@elbodegon.gt")

	err := suite.repository.Update(ctx, testSupplier)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestDelete_UnreferencedSupplier_Succeeds() {
	ctx := context.Background()

	testSupplier := suite.createTestSupplier("ventas@elbodegon.gt")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testSupplier))

	suite.Require().NoError(suite.repository.Delete(ctx, testSupplier.ID()))
	suite.assertSupplierCount(0)
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestDelete_ReferencedSupplier_ReturnsConflict() {
	ctx := context.Background()

	testSupplier := suite.createTestSupplier("ventas@elbodegon.gt")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testSupplier))

	// An order referencing the supplier blocks the hard delete
	orderRepo := orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	testOrder, err := order.NewPurchaseOrder(
		kernel.NewUUID(), testSupplier.ID(), "OC-2025-0001",
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		nil, kernel.GTQ, "", "", "",
	)
	suite.Require().NoError(err)
	line, err := order.NewLine(
		kernel.NewUUID(), 0, "PROD-001", "Cemento gris",
		10, decimal.RequireFromString("25.50"), decimal.Zero,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddLine(line))
	suite.Require().NoError(orderRepo.Add(ctx, testOrder))

	err = suite.repository.Delete(ctx, testSupplier.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertSupplierCount(1)
}

func (suite *SupplierRepositoryIntegrationTestSuite) TestDelete_NonExistentSupplier_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestSupplier builds an active supplier for persistence tests.
func (suite *SupplierRepositoryIntegrationTestSuite) createTestSupplier(email string) *supplier.Supplier {
	testSupplier, err := supplier.NewSupplier(
		kernel.NewUUID(),
		"Distribuidora El Bodegón",
		"1234567-8",
		supplier.ContactData{
			ContactName: "María López",
			Phone:       "+502 5555 1234",
			Email:       email,
			Address:     "4a avenida 5-55, zona 10",
			City:        "Guatemala",
			Country:     "Guatemala",
		},
	)
	suite.Require().NoError(err)
	return testSupplier
}

func (suite *SupplierRepositoryIntegrationTestSuite) assertSupplierCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&supplierrepo.SupplierDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestSupplierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierRepositoryIntegrationTestSuite))
}
