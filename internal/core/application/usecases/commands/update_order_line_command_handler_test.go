package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderWithLine(t *testing.T, orderID, lineID kernel.UUID) *order.PurchaseOrder {
	t.Helper()

	aggregate := pendingOrder(t, orderID)
	spec := validLineSpec()
	line, err := order.NewLine(
		lineID, 0, spec.ProductID, spec.Description, spec.Quantity, spec.UnitPrice, spec.DiscountPct,
	)
	require.NoError(t, err)
	require.NoError(t, aggregate.AddLine(line))
	return aggregate
}

func TestUpdateOrderLineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID, lineID := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderLineCommand(
		lineID, 20, decimal.RequireFromString("25.50"), decimal.Zero,
	)
	require.NoError(t, err)

	aggregate := orderWithLine(t, orderID, lineID)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByLineID", mock.Anything, lineID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderLineCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// 20 × 25.50, no discount: 510.00 + 61.20 tax = 571.20
	assert.True(t, aggregate.Subtotal().Equal(decimal.RequireFromString("510.00")))
	assert.True(t, aggregate.Total().Equal(decimal.RequireFromString("571.20")))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderLineCommandHandler_Handle_LineNotFound(t *testing.T) {
	ctx := t.Context()
	lineID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderLineCommand(lineID, 5, decimal.NewFromInt(10), decimal.Zero)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByLineID", mock.Anything, lineID).
			Return(nil, errs.NewObjectNotFoundError("line", lineID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderLineCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderLineCommandHandler_Handle_InvalidTermsLeaveOrderUnchanged(t *testing.T) {
	ctx := t.Context()
	orderID, lineID := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderLineCommand(lineID, 0, decimal.NewFromInt(10), decimal.Zero)
	require.NoError(t, err)

	aggregate := orderWithLine(t, orderID, lineID)
	totalBefore := aggregate.Total()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByLineID", mock.Anything, lineID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderLineCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.True(t, aggregate.Total().Equal(totalBefore))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRemoveOrderLineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID, lineID := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewRemoveOrderLineCommand(lineID)
	require.NoError(t, err)

	aggregate := orderWithLine(t, orderID, lineID)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByLineID", mock.Anything, lineID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderLineCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// last line removed: all totals collapse to zero
	assert.Empty(t, aggregate.Lines())
	assert.True(t, aggregate.Subtotal().IsZero())
	assert.True(t, aggregate.Tax().IsZero())
	assert.True(t, aggregate.Total().IsZero())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveOrderLineCommandHandler_Handle_LineNotFound(t *testing.T) {
	ctx := t.Context()
	lineID := kernel.NewUUID()
	cmd, err := commands.NewRemoveOrderLineCommand(lineID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByLineID", mock.Anything, lineID).
			Return(nil, errs.NewObjectNotFoundError("line", lineID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveOrderLineCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
