package queries_test

import (
	"context"
	"testing"
	"time"

	"floratrack/internal/adapters/out/postgres/orderrepo"
	"floratrack/internal/core/application/usecases/queries"
	"floratrack/internal/core/domain/model/budwood"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

var orderDate = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

// queryTestSuite bundles the container plumbing shared by the query handler suites.
type queryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	sequence  int
}

func (suite *queryTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *queryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *queryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

// seedOrder creates and stores an order with a unique order number.
func (suite *queryTestSuite) seedOrder(totalQuantity int, createdOn time.Time) *order.Order {
	suite.sequence++
	number, err := kernel.GenerateOrderNumber(2024, suite.sequence)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), number, "apple", "Gala", budwood.Grafting, totalQuantity, createdOn, nil)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), o)
	suite.Require().NoError(err)
	return o
}

type GetActiveOrdersQueryHandlerTestSuite struct {
	queryTestSuite
	handler queries.GetActiveOrdersQueryHandler
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.queryTestSuite.SetupSuite()
	suite.handler = queries.NewGetActiveOrdersQueryHandler(suite.db)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_MixedStages_ReturnsOnlyActive() {
	ctx := context.Background()

	active1 := suite.seedOrder(500, orderDate)
	active2 := suite.seedOrder(200, orderDate.AddDate(0, 0, 1))

	dispatched := suite.seedOrder(100, orderDate.AddDate(0, 0, 2))
	err := dispatched.Transfer(
		order.Dispatched, "Loading dock", 100, "Maria Lind", "", nil, orderDate.AddDate(0, 0, 40))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Update(ctx, dispatched))

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(active1.ID(), result[0].ID)
	suite.Equal(active2.ID(), result[1].ID)
	suite.Equal("order_created", result[0].Stage)
	suite.Equal(active1.OrderNumber().String(), result[0].OrderNumber)
	suite.Equal(500, result[0].TotalQuantity)
	suite.Equal(500, result[0].CurrentStageQuantity)
	suite.Equal("grafting", result[0].Method)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ReflectsStageProgress() {
	ctx := context.Background()

	o := suite.seedOrder(300, orderDate)
	err := o.Transfer(
		order.PostGraftCare, "Greenhouse 3", 280, "Elena Petrova", "", nil, orderDate.AddDate(0, 0, 7))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("post_graft_care", result[0].Stage)
	suite.Equal(280, result[0].CurrentStageQuantity)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.seedOrder(100, orderDate)

	query := queries.NewGetActiveOrdersQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
