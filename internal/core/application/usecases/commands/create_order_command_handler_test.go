package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/order"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	requesterID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, "CMD-2024-101", kernel.NewUUID(), kernel.NewUUID(), &requesterID, nil, "papier A4")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockOrderNotifier)

	h := commands.NewCreateOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, notifier.orders, 1)
	o := notifier.orders[0]
	assert.True(t, o.ID().IsEqual(orderID))
	assert.Equal(t, order.Pending, o.Status())
	require.NotNil(t, o.RequesterID())
	assert.True(t, o.RequesterID().IsEqual(requesterID))

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddErrorSkipsNotification(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "CMD-1", kernel.NewUUID(), kernel.NewUUID(), nil, nil, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Add", mock.Anything, mock.Anything).Return(errors.New("duplicate number"))

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	notifier := new(MockOrderNotifier)

	h := commands.NewCreateOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, notifier.orders)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
