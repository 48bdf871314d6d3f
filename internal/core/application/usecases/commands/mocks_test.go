package commands_test

import (
	"context"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.PurchaseOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.PurchaseOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSupplierUoW struct{ mock.Mock }

func (m *MockSupplierUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSupplierUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSupplierUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSupplierUoW) SupplierRepository() ports.SupplierRepository {
	args := m.Called()
	return args.Get(0).(ports.SupplierRepository)
}

type MockSupplierUoWFactory struct{ mock.Mock }

func (m *MockSupplierUoWFactory) Create() commands.SupplierUoW {
	args := m.Called()
	return args.Get(0).(commands.SupplierUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) SupplierRepository() ports.SupplierRepository {
	args := m.Called()
	return args.Get(0).(ports.SupplierRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
