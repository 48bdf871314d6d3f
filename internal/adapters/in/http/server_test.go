package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "procurement/internal/adapters/in/http"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.PurchaseOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.PurchaseOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) GetByLineID(ctx context.Context, lineID kernel.UUID) (*order.PurchaseOrder, error) {
	args := m.Called(ctx, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) GetIDsWithStaleTotals(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockSupplierRepository struct{ mock.Mock }

func (m *MockSupplierRepository) Add(ctx context.Context, s *supplier.Supplier) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW serves every unit of work shape the command handlers need.
type MockUoW struct {
	mock.Mock
	orders    *MockOrderRepository
	suppliers *MockSupplierRepository
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository       { return m.orders }
func (m *MockUoW) SupplierRepository() ports.SupplierRepository { return m.suppliers }

type MockOrderUoWFactory struct{ uow *MockUoW }

func (f *MockOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type MockSupplierUoWFactory struct{ uow *MockUoW }

func (f *MockSupplierUoWFactory) Create() commands.SupplierUoW { return f.uow }

type MockUoWFactory struct{ uow *MockUoW }

func (f *MockUoWFactory) Create() commands.UoW { return f.uow }

// testServer wires a Server whose command handlers run against the given
// unit of work. Query handlers are zero values; the routed tests here only
// exercise the command side.
func testServer(uow *MockUoW) *httpadapter.Server {
	return httpadapter.NewServer(
		commands.NewCreateSupplierCommandHandler(&MockSupplierUoWFactory{uow: uow}),
		commands.NewUpdateSupplierCommandHandler(&MockSupplierUoWFactory{uow: uow}),
		commands.NewRemoveSupplierCommandHandler(&MockSupplierUoWFactory{uow: uow}),
		commands.NewCreateOrderCommandHandler(&MockUoWFactory{uow: uow}),
		commands.NewUpdateOrderCommandHandler(&MockOrderUoWFactory{uow: uow}),
		commands.NewChangeOrderStatusCommandHandler(&MockOrderUoWFactory{uow: uow}),
		commands.NewDeleteOrderCommandHandler(&MockOrderUoWFactory{uow: uow}),
		commands.NewAddOrderLineCommandHandler(&MockOrderUoWFactory{uow: uow}),
		commands.NewUpdateOrderLineCommandHandler(&MockOrderUoWFactory{uow: uow}),
		commands.NewRemoveOrderLineCommandHandler(&MockOrderUoWFactory{uow: uow}),
		queries.GetAllSuppliersQueryHandler{},
		queries.GetSupplierQueryHandler{},
		queries.GetAllOrdersQueryHandler{},
		queries.GetOrderQueryHandler{},
	)
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:    new(MockOrderRepository),
		suppliers: new(MockSupplierRepository),
	}
}

func doRequest(t *testing.T, server *httpadapter.Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	server.RegisterRoutes(e)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.Response {
	t.Helper()

	var resp httpadapter.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, testServer(newMockUoW()), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Healthy", resp.Message)
}

func TestCreateSupplier_Success(t *testing.T) {
	uow := newMockUoW()
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.suppliers.On("Add", mock.Anything, mock.Anything).Return(nil)

	body := `{"name":"Distribuidora El Bodegón","tax_id":"1234567-8","contact_name":"María López","email":"ventas@elbodegon.gt"}`
	rec := doRequest(t, testServer(uow), http.MethodPost, "/api/v1/suppliers", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	uow.suppliers.AssertExpectations(t)
}

func TestCreateSupplier_MissingName_ReturnsBadRequest(t *testing.T) {
	body := `{"tax_id":"1234567-8","email":"ventas@elbodegon.gt"}`
	rec := doRequest(t, testServer(newMockUoW()), http.MethodPost, "/api/v1/suppliers", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestCreateSupplier_StoreFailure_ReturnsInternalServerError(t *testing.T) {
	uow := newMockUoW()
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.suppliers.On("Add", mock.Anything, mock.Anything).
		Return(errs.NewStoreError("insert supplier", assert.AnError))

	body := `{"name":"Distribuidora El Bodegón","tax_id":"1234567-8","email":"ventas@elbodegon.gt"}`
	rec := doRequest(t, testServer(uow), http.MethodPost, "/api/v1/suppliers", body)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestCreateOrder_MissingOrderDate_ReturnsBadRequest(t *testing.T) {
	body := `{"order":{"supplier_id":"` + kernel.NewUUID().String() + `","order_number":"OC-2025-0001"},"lines":[]}`
	rec := doRequest(t, testServer(newMockUoW()), http.MethodPost, "/api/v1/orders", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Contains(t, resp.Error, "order_date")
}

func TestCreateOrder_MalformedSupplierID_ReturnsInvalidValueError(t *testing.T) {
	body := `{"order":{"supplier_id":"not-a-uuid","order_number":"OC-2025-0001","order_date":"2025-03-10"},"lines":[]}`
	rec := doRequest(t, testServer(newMockUoW()), http.MethodPost, "/api/v1/orders", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Contains(t, resp.Error, "supplier_id")
	assert.Contains(t, resp.Error, "invalid")
}

func TestCreateOrder_DuplicateOrderNumber_ReturnsConflict(t *testing.T) {
	supplierID := kernel.NewUUID()
	active, err := supplier.NewSupplier(supplierID, "Proveedor", "123-4", supplier.ContactData{
		Email: "compras@proveedor.gt",
	})
	require.NoError(t, err)

	uow := newMockUoW()
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.suppliers.On("Get", mock.Anything, supplierID).Return(active, nil)
	uow.orders.On("Add", mock.Anything, mock.Anything).
		Return(errs.NewObjectAlreadyExistsError("orderNumber", "OC-2025-0001"))

	body := `{"order":{"supplier_id":"` + supplierID.String() +
		`","order_number":"OC-2025-0001","order_date":"2025-03-10"},` +
		`"lines":[{"product_id":"PROD-001","description":"Cemento gris","quantity":10,"unit_price":"25.50","discount_pct":"5"}]}`
	rec := doRequest(t, testServer(uow), http.MethodPost, "/api/v1/orders", body)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
}

func TestChangeOrderStatus_UnrecognizedStatus_ReturnsBadRequest(t *testing.T) {
	rec := doRequest(t, testServer(newMockUoW()), http.MethodPut,
		"/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status":"DESCONOCIDA"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangeOrderStatus_TerminalOrder_ReturnsBadRequest(t *testing.T) {
	orderID := kernel.NewUUID()
	completed := completedOrder(t, orderID)

	uow := newMockUoW()
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.orders.On("GetForUpdate", mock.Anything, orderID).Return(completed, nil)

	rec := doRequest(t, testServer(uow), http.MethodPut,
		"/api/v1/orders/"+orderID.String()+"/status", `{"status":"APROBADA"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
}

func TestDeleteOrder_NotFound_ReturnsNotFound(t *testing.T) {
	orderID := kernel.NewUUID()

	uow := newMockUoW()
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.orders.On("GetForUpdate", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID.String()))

	rec := doRequest(t, testServer(uow), http.MethodDelete, "/api/v1/orders/"+orderID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteOrderLine_InvalidID_ReturnsBadRequest(t *testing.T) {
	rec := doRequest(t, testServer(newMockUoW()), http.MethodDelete, "/api/v1/lines/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteSupplier_HardWhileReferenced_ReturnsConflict(t *testing.T) {
	supplierID := kernel.NewUUID()
	active, err := supplier.NewSupplier(supplierID, "Proveedor", "123-4", supplier.ContactData{
		Email: "compras@proveedor.gt",
	})
	require.NoError(t, err)

	uow := newMockUoW()
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.suppliers.On("Get", mock.Anything, supplierID).Return(active, nil)
	uow.suppliers.On("Delete", mock.Anything, supplierID).
		Return(errs.NewObjectAlreadyExistsError("supplierId", supplierID.String()))

	rec := doRequest(t, testServer(uow), http.MethodDelete,
		"/api/v1/suppliers/"+supplierID.String()+"?hard=true", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func completedOrder(t *testing.T, id kernel.UUID) *order.PurchaseOrder {
	t.Helper()

	line, err := order.NewLine(
		kernel.NewUUID(), 1, "PROD-001", "Cemento gris",
		10, decimal.RequireFromString("25.50"), decimal.Zero,
	)
	require.NoError(t, err)

	po, err := order.RestorePurchaseOrder(
		id, kernel.NewUUID(), "OC-2025-0001",
		timeMustParse(t, "2025-03-10"), nil, order.Completed,
		kernel.GTQ, "", "", "", []*order.Line{line},
	)
	require.NoError(t, err)
	return po
}

func timeMustParse(t *testing.T, value string) (parsed time.Time) {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}
