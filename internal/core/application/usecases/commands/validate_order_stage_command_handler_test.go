package commands_test

import (
	"testing"

	"floratrack/internal/core/application/usecases/commands"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateOrderStageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	stored := createStoredOrder(t, id)
	cmd, _ := commands.NewValidateOrderStageCommand(id, orderDate.AddDate(0, 0, 1))

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

	h := commands.NewValidateOrderStageCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, result.ReadyForNextStage)
	require.Equal(t, 5, result.Summary.TotalChecks)

	cached := stored.StageValidation()
	require.NotNil(t, cached)
	require.Equal(t, result.ReadyForNextStage, cached.ReadyForNextStage)
	require.Equal(t, orderDate.AddDate(0, 0, 1), cached.ValidatedAt)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestValidateOrderStageCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewValidateOrderStageCommand(id, orderDate)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewValidateOrderStageCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestValidateOrderStageCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ValidateOrderStageCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewValidateOrderStageCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
