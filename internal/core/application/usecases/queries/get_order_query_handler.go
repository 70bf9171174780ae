package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"
	"floratrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order's full detail from the
// database, unpacking the JSONB documents into the read model.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order's detail.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			crop_type,
			variety,
			method,
			stage,
			current_section,
			total_quantity,
			current_stage_quantity,
			completed_quantity,
			order_date,
			requested_delivery,
			container_size,
			budwood_plan,
			workers,
			stage_validation,
			history,
			created_at,
			updated_at,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var stage int
	var planRaw, workersRaw, validationRaw, historyRaw []byte

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&resp.CropType,
		&resp.Variety,
		&resp.Method,
		&stage,
		&resp.CurrentSection,
		&resp.TotalQuantity,
		&resp.CurrentStageQuantity,
		&resp.CompletedQuantity,
		&resp.OrderDate,
		&resp.RequestedDelivery,
		&resp.ContainerSize,
		&planRaw,
		&workersRaw,
		&validationRaw,
		&historyRaw,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&resp.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Stage = order.Stage(stage).String()

	if err = json.Unmarshal(historyRaw, &resp.History); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(planRaw) > 0 {
		resp.BudwoodPlan = &BudwoodPlanModel{}
		if err = json.Unmarshal(planRaw, resp.BudwoodPlan); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}
	if len(workersRaw) > 0 {
		if err = json.Unmarshal(workersRaw, &resp.Workers); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}
	if len(validationRaw) > 0 {
		resp.StageValidation = &StageValidationModel{}
		if err = json.Unmarshal(validationRaw, resp.StageValidation); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	return resp, nil
}
