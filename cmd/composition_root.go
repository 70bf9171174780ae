package cmd

import (
	"floratrack/internal/adapters/out/postgres"
	"floratrack/internal/core/application/usecases/commands"
	"floratrack/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateTransferOrderCommandHandler() commands.TransferOrderCommandHandler {
	return commands.NewTransferOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordHealthAssessmentCommandHandler() commands.RecordHealthAssessmentCommandHandler {
	return commands.NewRecordHealthAssessmentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStageCommandHandler() commands.ChangeOrderStageCommandHandler {
	return commands.NewChangeOrderStageCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignWorkerCommandHandler() commands.AssignWorkerCommandHandler {
	return commands.NewAssignWorkerCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePlanBudwoodCommandHandler() commands.PlanBudwoodCommandHandler {
	return commands.NewPlanBudwoodCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateValidateOrderStageCommandHandler() commands.ValidateOrderStageCommandHandler {
	return commands.NewValidateOrderStageCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkerPerformanceQueryHandler() queries.GetWorkerPerformanceQueryHandler {
	return queries.NewGetWorkerPerformanceQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
