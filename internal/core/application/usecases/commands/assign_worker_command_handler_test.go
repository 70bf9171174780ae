package commands_test

import (
	"testing"

	"floratrack/internal/core/application/usecases/commands"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignWorkerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	stored := createStoredOrder(t, id)
	cmd, _ := commands.NewAssignWorkerCommand(id, "grafter", "Maria")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignWorkerCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	worker, ok := stored.Workers().Worker(order.RoleGrafter)
	require.True(t, ok)
	require.Equal(t, "Maria", worker)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignWorkerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignWorkerCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewAssignWorkerCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
