package queries

import (
	"context"

	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves orders still moving through the
// propagation workflow. Filters out dispatched orders to provide the active
// production workload.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(db)
//	query := NewGetActiveOrdersQuery()
//
//	activeOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%d orders in production\n", len(activeOrders))
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders.
// Returns orders at any stage before dispatch, oldest order date first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			crop_type,
			variety,
			method,
			stage,
			total_quantity,
			current_stage_quantity,
			completed_quantity,
			order_date,
			requested_delivery
		FROM orders
		WHERE stage != ?
		ORDER BY order_date, order_number
	`, int(order.Dispatched)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetActiveOrdersQueryResponse
		var id uuid.UUID
		var stage int

		err = rows.Scan(
			&id,
			&orderResp.OrderNumber,
			&orderResp.CropType,
			&orderResp.Variety,
			&orderResp.Method,
			&stage,
			&orderResp.TotalQuantity,
			&orderResp.CurrentStageQuantity,
			&orderResp.CompletedQuantity,
			&orderResp.OrderDate,
			&orderResp.RequestedDelivery,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Stage = order.Stage(stage).String()

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
