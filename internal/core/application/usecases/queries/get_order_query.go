package queries

import (
	"errors"
	"time"

	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full detail of a single propagation order,
// including its stage history, worker assignments, budwood plan, and the
// cached validation verdict.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("%s: %d history entries\n", detail.OrderNumber, len(detail.History))
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order's detail.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID                   kernel.UUID
	OrderNumber          string
	CropType             string
	Variety              string
	Method               string
	Stage                string
	CurrentSection       string
	TotalQuantity        int
	CurrentStageQuantity int
	CompletedQuantity    int
	OrderDate            time.Time
	RequestedDelivery    *time.Time
	ContainerSize        string
	BudwoodPlan          *BudwoodPlanModel
	Workers              map[string]string
	StageValidation      *StageValidationModel
	History              []HistoryEntryModel
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Version              int
}

// BudwoodPlanModel is the read model of an attached budwood plan.
type BudwoodPlanModel struct {
	RequiredBudwood    int     `json:"required_budwood"`
	WasteFactorPercent float64 `json:"waste_factor_percent"`
	ExtraForSafety     int     `json:"extra_for_safety"`
	TotalRequired      int     `json:"total_required"`
	MethodRatio        float64 `json:"method_ratio"`
	BaseCalculation    string  `json:"base_calculation"`
	WithWaste          string  `json:"with_waste"`
	FinalTotal         string  `json:"final_total"`
}

// HistoryEntryModel is the read model of one stage history entry.
type HistoryEntryModel struct {
	Kind         string            `json:"kind"`
	Stage        string            `json:"stage"`
	Date         time.Time         `json:"date"`
	Quantity     int               `json:"quantity"`
	Operator     string            `json:"operator"`
	Notes        string            `json:"notes,omitempty"`
	Performance  *PerformanceModel `json:"performance,omitempty"`
	SurvivalRate *float64          `json:"survival_rate,omitempty"`
}

// PerformanceModel is the read model of worker performance figures.
type PerformanceModel struct {
	TimeInStageDays  int     `json:"time_in_stage_days"`
	QualityScore     float64 `json:"quality_score"`
	EfficiencyRating float64 `json:"efficiency_rating"`
}

// StageValidationModel is the read model of the cached validation verdict.
type StageValidationModel struct {
	CurrentStageComplete bool           `json:"current_stage_complete"`
	ReadyForNextStage    bool           `json:"ready_for_next_stage"`
	Blockers             []BlockerModel `json:"blockers"`
	ValidatedAt          time.Time      `json:"validated_at"`
}

// BlockerModel is the read model of a validation blocker.
type BlockerModel struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Action   string `json:"action"`
}
