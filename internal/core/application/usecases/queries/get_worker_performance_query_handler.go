package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetWorkerPerformanceQueryHandler builds the per-operator performance report
// by unnesting the JSONB stage history of every order directly in PostgreSQL.
// Entries recorded by the system itself (order creation) are excluded.
//
// Example:
//
//	handler := NewGetWorkerPerformanceQueryHandler(db)
//	query := NewGetWorkerPerformanceQuery()
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to build performance report: %v", err)
//	    return err
//	}
type GetWorkerPerformanceQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkerPerformanceQueryHandler creates a handler for the performance report.
// Requires a GORM database connection for query execution.
func NewGetWorkerPerformanceQueryHandler(db *gorm.DB) GetWorkerPerformanceQueryHandler {
	return GetWorkerPerformanceQueryHandler{db: db}
}

// Handle executes the aggregation and returns one row per operator,
// alphabetically ordered.
func (h GetWorkerPerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerPerformanceQuery,
) ([]GetWorkerPerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report := make([]GetWorkerPerformanceQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			entry->>'operator' AS operator,
			COUNT(*) AS operations,
			COALESCE(SUM((entry->>'quantity')::int), 0) AS plants_handled,
			AVG((entry->'performance'->>'time_in_stage_days')::float) AS avg_time_in_stage_days,
			AVG((entry->'performance'->>'quality_score')::float) AS avg_quality_score,
			AVG((entry->'performance'->>'efficiency_rating')::float) AS avg_efficiency_rating
		FROM orders, jsonb_array_elements(history) AS entry
		WHERE entry->>'operator' != ?
		GROUP BY entry->>'operator'
		ORDER BY entry->>'operator'
	`, "System").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var workerResp GetWorkerPerformanceQueryResponse
		var avgTime, avgQuality, avgEfficiency sql.NullFloat64

		err = rows.Scan(
			&workerResp.Operator,
			&workerResp.Operations,
			&workerResp.PlantsHandled,
			&avgTime,
			&avgQuality,
			&avgEfficiency,
		)
		if err != nil {
			return nil, err
		}

		if avgTime.Valid {
			workerResp.AvgTimeInStageDays = &avgTime.Float64
		}
		if avgQuality.Valid {
			workerResp.AvgQualityScore = &avgQuality.Float64
		}
		if avgEfficiency.Valid {
			workerResp.AvgEfficiencyRating = &avgEfficiency.Float64
		}

		report = append(report, workerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
