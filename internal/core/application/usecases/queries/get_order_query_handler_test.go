package queries_test

import (
	"context"
	"testing"

	"floratrack/internal/core/application/usecases/queries"
	"floratrack/internal/core/domain/model/budwood"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"
	"floratrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetOrderQueryHandlerTestSuite struct {
	queryTestSuite
	handler queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	suite.queryTestSuite.SetupSuite()
	suite.handler = queries.NewGetOrderQueryHandler(suite.db)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_FullOrder_ReturnsCompleteReadModel() {
	ctx := context.Background()

	o := suite.seedOrder(500, orderDate)

	suite.Require().NoError(o.AssignWorker(order.RoleGrafter, "Elena Petrova"))
	plan, err := budwood.Calculate(500, budwood.Grafting, 15.0, 10)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AttachBudwoodPlan(plan))
	suite.Require().NoError(o.SetContainerSize("10cm pots"))
	suite.Require().NoError(o.Transfer(
		order.BudwoodCollection, "Section A", 500, "Ivan Orlov", "collected",
		&order.WorkerPerformance{TimeInStageDays: 2, QualityScore: 4.5, EfficiencyRating: 0.9},
		orderDate.AddDate(0, 0, 2)))
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), detail.ID)
	suite.Equal(o.OrderNumber().String(), detail.OrderNumber)
	suite.Equal("apple", detail.CropType)
	suite.Equal("Gala", detail.Variety)
	suite.Equal("grafting", detail.Method)
	suite.Equal("budwood_collection", detail.Stage)
	suite.Equal("Section A", detail.CurrentSection)
	suite.Equal(500, detail.TotalQuantity)
	suite.Equal("10cm pots", detail.ContainerSize)
	suite.Equal(o.Version()+1, detail.Version)

	suite.Equal("Elena Petrova", detail.Workers["grafter"])

	suite.Require().NotNil(detail.BudwoodPlan)
	suite.Equal(600, detail.BudwoodPlan.RequiredBudwood)
	suite.Equal(700, detail.BudwoodPlan.TotalRequired)

	suite.Require().Len(detail.History, 2)
	suite.Equal("created", detail.History[0].Kind)
	suite.Equal("transfer", detail.History[1].Kind)
	suite.Equal("Ivan Orlov", detail.History[1].Operator)
	suite.Require().NotNil(detail.History[1].Performance)
	suite.InDelta(4.5, detail.History[1].Performance.QualityScore, 0.001)

	suite.Nil(detail.StageValidation)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_MinimalOrder_OptionalPartsEmpty() {
	ctx := context.Background()

	o := suite.seedOrder(100, orderDate)

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("order_created", detail.Stage)
	suite.Nil(detail.BudwoodPlan)
	suite.Nil(detail.StageValidation)
	suite.Empty(detail.Workers)
	suite.Require().Len(detail.History, 1)
	suite.Equal("System", detail.History[0].Operator)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
