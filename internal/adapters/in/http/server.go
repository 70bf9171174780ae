// Package http exposes the propagation workflow over a REST API.
// It coordinates between HTTP handlers and application use cases, translating
// domain errors into status codes at the boundary.
package http

import (
	"errors"
	"net/http"
	"time"

	"floratrack/internal/core/application/usecases/commands"
	"floratrack/internal/core/application/usecases/queries"
	"floratrack/internal/core/domain/model/budwood"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"
	"floratrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the propagation order API.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	transferOrderHandler      commands.TransferOrderCommandHandler
	recordHealthHandler       commands.RecordHealthAssessmentCommandHandler
	changeStageHandler        commands.ChangeOrderStageCommandHandler
	assignWorkerHandler       commands.AssignWorkerCommandHandler
	planBudwoodHandler        commands.PlanBudwoodCommandHandler
	validateOrderStageHandler commands.ValidateOrderStageCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getActiveOrdersHandler      queries.GetActiveOrdersQueryHandler
	getWorkerPerformanceHandler queries.GetWorkerPerformanceQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transferOrderHandler commands.TransferOrderCommandHandler,
	recordHealthHandler commands.RecordHealthAssessmentCommandHandler,
	changeStageHandler commands.ChangeOrderStageCommandHandler,
	assignWorkerHandler commands.AssignWorkerCommandHandler,
	planBudwoodHandler commands.PlanBudwoodCommandHandler,
	validateOrderStageHandler commands.ValidateOrderStageCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getWorkerPerformanceHandler queries.GetWorkerPerformanceQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		transferOrderHandler:        transferOrderHandler,
		recordHealthHandler:         recordHealthHandler,
		changeStageHandler:          changeStageHandler,
		assignWorkerHandler:         assignWorkerHandler,
		planBudwoodHandler:          planBudwoodHandler,
		validateOrderStageHandler:   validateOrderStageHandler,
		getOrderHandler:             getOrderHandler,
		getActiveOrdersHandler:      getActiveOrdersHandler,
		getWorkerPerformanceHandler: getWorkerPerformanceHandler,
	}
}

// RegisterRoutes mounts all API endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/transfer", s.TransferOrder)
	api.POST("/orders/:orderID/health-assessment", s.RecordHealthAssessment)
	api.POST("/orders/:orderID/stage", s.ChangeOrderStage)
	api.POST("/orders/:orderID/workers", s.AssignWorker)
	api.POST("/orders/:orderID/budwood-plan", s.PlanBudwood)
	api.POST("/orders/:orderID/validate", s.ValidateOrderStage)
	api.POST("/budwood/calculate", s.CalculateBudwood)
	api.GET("/workers/performance", s.GetWorkerPerformance)
}

// CreateOrder handles POST /api/v1/orders - registers a new propagation order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.CropType, req.Variety, req.Method, req.TotalQuantity, req.OrderDate, req.RequestedDelivery)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderID - returns the full order detail.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// GetActiveOrders handles GET /api/v1/orders/active - lists non-dispatched orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toActiveOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransferOrder handles POST /api/v1/orders/:orderID/transfer - moves an order
// forward into a new stage.
func (s *Server) TransferOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req TransferOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var performance *order.WorkerPerformance
	if req.Performance != nil {
		performance = &order.WorkerPerformance{
			TimeInStageDays:  req.Performance.TimeInStageDays,
			QualityScore:     req.Performance.QualityScore,
			EfficiencyRating: req.Performance.EfficiencyRating,
		}
	}

	cmd, err := commands.NewTransferOrderCommand(
		orderID, req.ToStage, req.ToSection, req.Quantity, req.Operator, req.Notes, performance, req.Date)
	if err != nil {
		return badRequest(ctx, "Invalid transfer data: "+err.Error())
	}

	if err = s.transferOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordHealthAssessment handles POST /api/v1/orders/:orderID/health-assessment -
// books plant losses in the current stage.
func (s *Server) RecordHealthAssessment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req HealthAssessmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordHealthAssessmentCommand(
		orderID, req.LostQuantity, req.Operator, req.Notes, req.Date)
	if err != nil {
		return badRequest(ctx, "Invalid assessment data: "+err.Error())
	}

	if err = s.recordHealthHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStage handles POST /api/v1/orders/:orderID/stage - the
// administrative stage override.
func (s *Server) ChangeOrderStage(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req ChangeStageRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStageCommand(orderID, req.ToStage, req.Operator, req.Notes, req.Date)
	if err != nil {
		return badRequest(ctx, "Invalid stage data: "+err.Error())
	}

	if err = s.changeStageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignWorker handles POST /api/v1/orders/:orderID/workers - binds a worker
// to a production role.
func (s *Server) AssignWorker(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req AssignWorkerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignWorkerCommand(orderID, req.Role, req.Worker)
	if err != nil {
		return badRequest(ctx, "Invalid worker data: "+err.Error())
	}

	if err = s.assignWorkerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlanBudwood handles POST /api/v1/orders/:orderID/budwood-plan - computes and
// attaches the budwood plan for the order's quantity and method.
func (s *Server) PlanBudwood(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req PlanBudwoodRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	wasteFactor := budwood.DefaultWasteFactorPercent
	if req.WasteFactorPercent != nil {
		wasteFactor = *req.WasteFactorPercent
	}

	cmd, err := commands.NewPlanBudwoodCommand(orderID, wasteFactor, req.ExtraForSafety)
	if err != nil {
		return badRequest(ctx, "Invalid plan data: "+err.Error())
	}

	if err = s.planBudwoodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CalculateBudwood handles POST /api/v1/budwood/calculate - the stateless
// budwood calculator, unattached to any order.
func (s *Server) CalculateBudwood(ctx echo.Context) error {
	var req CalculateBudwoodRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, err := budwood.PropagationMethodFromString(req.Method)
	if err != nil {
		return badRequest(ctx, "Invalid propagation method: "+req.Method)
	}

	wasteFactor := budwood.DefaultWasteFactorPercent
	if req.WasteFactorPercent != nil {
		wasteFactor = *req.WasteFactorPercent
	}

	plan, err := budwood.Calculate(req.Quantity, method, wasteFactor, req.ExtraForSafety)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPlanResponse(plan))
}

// ValidateOrderStage handles POST /api/v1/orders/:orderID/validate - runs the
// stage validation rules and returns the verdict.
func (s *Server) ValidateOrderStage(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req ValidateStageRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	evaluationDate := time.Now()
	if req.EvaluationDate != nil {
		evaluationDate = *req.EvaluationDate
	}

	cmd, err := commands.NewValidateOrderStageCommand(orderID, evaluationDate)
	if err != nil {
		return badRequest(ctx, "Invalid validation data: "+err.Error())
	}

	result, err := s.validateOrderStageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toValidationResponse(result))
}

// GetWorkerPerformance handles GET /api/v1/workers/performance - the
// per-operator aggregation over all stage history.
func (s *Server) GetWorkerPerformance(ctx echo.Context) error {
	query := queries.NewGetWorkerPerformanceQuery()

	report, err := s.getWorkerPerformanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]WorkerPerformanceResponse, len(report))
	for i, worker := range report {
		response[i] = WorkerPerformanceResponse(worker)
	}

	return ctx.JSON(http.StatusOK, response)
}

// renderError translates domain errors into HTTP status codes.
func (s *Server) renderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrQuantityExceeded),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
