package http

import (
	"time"

	"floratrack/internal/core/application/usecases/queries"
	"floratrack/internal/core/domain/model/budwood"
	"floratrack/internal/core/domain/model/order"
	"floratrack/internal/core/domain/services"
)

// ErrorResponse is the uniform error payload for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest carries the data for registering a propagation order.
type CreateOrderRequest struct {
	CropType          string     `json:"crop_type"`
	Variety           string     `json:"variety"`
	Method            string     `json:"method"`
	TotalQuantity     int        `json:"total_quantity"`
	OrderDate         time.Time  `json:"order_date"`
	RequestedDelivery *time.Time `json:"requested_delivery,omitempty"`
}

// CreateOrderResponse returns the identifier of the newly created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// WorkerPerformanceRequest carries optional performance figures on a transfer.
type WorkerPerformanceRequest struct {
	TimeInStageDays  int     `json:"time_in_stage_days"`
	QualityScore     float64 `json:"quality_score"`
	EfficiencyRating float64 `json:"efficiency_rating"`
}

// TransferOrderRequest moves an order forward into a new stage.
type TransferOrderRequest struct {
	ToStage     string                    `json:"to_stage"`
	ToSection   string                    `json:"to_section"`
	Quantity    int                       `json:"quantity"`
	Operator    string                    `json:"operator"`
	Notes       string                    `json:"notes,omitempty"`
	Performance *WorkerPerformanceRequest `json:"performance,omitempty"`
	Date        time.Time                 `json:"date"`
}

// HealthAssessmentRequest records plant losses in the current stage.
type HealthAssessmentRequest struct {
	LostQuantity int       `json:"lost_quantity"`
	Operator     string    `json:"operator"`
	Notes        string    `json:"notes,omitempty"`
	Date         time.Time `json:"date"`
}

// ChangeStageRequest is the administrative stage override.
type ChangeStageRequest struct {
	ToStage  string    `json:"to_stage"`
	Operator string    `json:"operator"`
	Notes    string    `json:"notes,omitempty"`
	Date     time.Time `json:"date"`
}

// AssignWorkerRequest binds a worker to a production role on the order.
type AssignWorkerRequest struct {
	Role   string `json:"role"`
	Worker string `json:"worker"`
}

// PlanBudwoodRequest computes and attaches a budwood plan to the order.
// The waste factor defaults to the standard percentage when omitted.
type PlanBudwoodRequest struct {
	WasteFactorPercent *float64 `json:"waste_factor_percent,omitempty"`
	ExtraForSafety     int      `json:"extra_for_safety"`
}

// CalculateBudwoodRequest is the stateless budwood calculator input.
type CalculateBudwoodRequest struct {
	Quantity           int      `json:"quantity"`
	Method             string   `json:"method"`
	WasteFactorPercent *float64 `json:"waste_factor_percent,omitempty"`
	ExtraForSafety     int      `json:"extra_for_safety"`
}

// BudwoodPlanResponse renders a budwood calculation result.
type BudwoodPlanResponse struct {
	RequiredBudwood    int                        `json:"required_budwood"`
	WasteFactorPercent float64                    `json:"waste_factor_percent"`
	ExtraForSafety     int                        `json:"extra_for_safety"`
	TotalRequired      int                        `json:"total_required"`
	MethodRatio        float64                    `json:"method_ratio"`
	Details            BudwoodPlanDetailsResponse `json:"calculation_details"`
}

// BudwoodPlanDetailsResponse shows the calculation steps for transparency.
type BudwoodPlanDetailsResponse struct {
	BaseCalculation string `json:"base_calculation"`
	WithWaste       string `json:"with_waste"`
	FinalTotal      string `json:"final_total"`
}

// ValidateStageRequest triggers a stage validation run.
// The evaluation date defaults to the current time when omitted.
type ValidateStageRequest struct {
	EvaluationDate *time.Time `json:"evaluation_date,omitempty"`
}

// BlockerResponse renders one validation blocker.
type BlockerResponse struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Action   string `json:"action"`
}

// ValidationSummaryResponse renders the check tallies.
type ValidationSummaryResponse struct {
	TotalChecks    int `json:"total_checks"`
	PassedChecks   int `json:"passed_checks"`
	CriticalIssues int `json:"critical_issues"`
	Warnings       int `json:"warnings"`
}

// ValidationResultResponse renders the full validation verdict.
type ValidationResultResponse struct {
	CurrentStageComplete bool                      `json:"current_stage_complete"`
	ReadyForNextStage    bool                      `json:"ready_for_next_stage"`
	Blockers             []BlockerResponse         `json:"blockers"`
	Recommendations      []string                  `json:"recommendations"`
	Summary              ValidationSummaryResponse `json:"summary"`
}

// ActiveOrderResponse renders one entry of the active order list.
type ActiveOrderResponse struct {
	ID                   string     `json:"id"`
	OrderNumber          string     `json:"order_number"`
	CropType             string     `json:"crop_type"`
	Variety              string     `json:"variety"`
	Method               string     `json:"method"`
	Stage                string     `json:"stage"`
	TotalQuantity        int        `json:"total_quantity"`
	CurrentStageQuantity int        `json:"current_stage_quantity"`
	CompletedQuantity    int        `json:"completed_quantity"`
	OrderDate            time.Time  `json:"order_date"`
	RequestedDelivery    *time.Time `json:"requested_delivery,omitempty"`
}

// OrderDetailResponse renders the full order read model.
type OrderDetailResponse struct {
	ID                   string                         `json:"id"`
	OrderNumber          string                         `json:"order_number"`
	CropType             string                         `json:"crop_type"`
	Variety              string                         `json:"variety"`
	Method               string                         `json:"method"`
	Stage                string                         `json:"stage"`
	CurrentSection       string                         `json:"current_section,omitempty"`
	TotalQuantity        int                            `json:"total_quantity"`
	CurrentStageQuantity int                            `json:"current_stage_quantity"`
	CompletedQuantity    int                            `json:"completed_quantity"`
	OrderDate            time.Time                      `json:"order_date"`
	RequestedDelivery    *time.Time                     `json:"requested_delivery,omitempty"`
	ContainerSize        string                         `json:"container_size,omitempty"`
	BudwoodPlan          *queries.BudwoodPlanModel      `json:"budwood_plan,omitempty"`
	Workers              map[string]string              `json:"workers,omitempty"`
	StageValidation      *queries.StageValidationModel  `json:"stage_validation,omitempty"`
	History              []queries.HistoryEntryModel    `json:"history"`
	CreatedAt            time.Time                      `json:"created_at"`
	UpdatedAt            time.Time                      `json:"updated_at"`
	Version              int                            `json:"version"`
}

func toOrderDetailResponse(detail queries.GetOrderQueryResponse) OrderDetailResponse {
	return OrderDetailResponse{
		ID:                   detail.ID.String(),
		OrderNumber:          detail.OrderNumber,
		CropType:             detail.CropType,
		Variety:              detail.Variety,
		Method:               detail.Method,
		Stage:                detail.Stage,
		CurrentSection:       detail.CurrentSection,
		TotalQuantity:        detail.TotalQuantity,
		CurrentStageQuantity: detail.CurrentStageQuantity,
		CompletedQuantity:    detail.CompletedQuantity,
		OrderDate:            detail.OrderDate,
		RequestedDelivery:    detail.RequestedDelivery,
		ContainerSize:        detail.ContainerSize,
		BudwoodPlan:          detail.BudwoodPlan,
		Workers:              detail.Workers,
		StageValidation:      detail.StageValidation,
		History:              detail.History,
		CreatedAt:            detail.CreatedAt,
		UpdatedAt:            detail.UpdatedAt,
		Version:              detail.Version,
	}
}

// WorkerPerformanceResponse renders one operator's aggregated record.
type WorkerPerformanceResponse struct {
	Operator            string   `json:"operator"`
	Operations          int      `json:"operations"`
	PlantsHandled       int      `json:"plants_handled"`
	AvgTimeInStageDays  *float64 `json:"avg_time_in_stage_days,omitempty"`
	AvgQualityScore     *float64 `json:"avg_quality_score,omitempty"`
	AvgEfficiencyRating *float64 `json:"avg_efficiency_rating,omitempty"`
}

func toPlanResponse(plan budwood.Plan) BudwoodPlanResponse {
	details := plan.Details()
	return BudwoodPlanResponse{
		RequiredBudwood:    plan.RequiredBudwood(),
		WasteFactorPercent: plan.WasteFactorPercent(),
		ExtraForSafety:     plan.ExtraForSafety(),
		TotalRequired:      plan.TotalRequired(),
		MethodRatio:        plan.MethodRatio(),
		Details: BudwoodPlanDetailsResponse{
			BaseCalculation: details.BaseCalculation,
			WithWaste:       details.WithWaste,
			FinalTotal:      details.FinalTotal,
		},
	}
}

func toValidationResponse(result services.ValidationResult) ValidationResultResponse {
	blockers := make([]BlockerResponse, 0, len(result.Blockers))
	for _, blocker := range result.Blockers {
		blockers = append(blockers, toBlockerResponse(blocker))
	}

	return ValidationResultResponse{
		CurrentStageComplete: result.CurrentStageComplete,
		ReadyForNextStage:    result.ReadyForNextStage,
		Blockers:             blockers,
		Recommendations:      result.Recommendations,
		Summary: ValidationSummaryResponse{
			TotalChecks:    result.Summary.TotalChecks,
			PassedChecks:   result.Summary.PassedChecks,
			CriticalIssues: result.Summary.CriticalIssues,
			Warnings:       result.Summary.Warnings,
		},
	}
}

func toBlockerResponse(blocker order.Blocker) BlockerResponse {
	return BlockerResponse{
		Type:     string(blocker.Type),
		Message:  blocker.Message,
		Severity: string(blocker.Severity),
		Action:   blocker.Action,
	}
}

func toActiveOrderResponse(o queries.GetActiveOrdersQueryResponse) ActiveOrderResponse {
	return ActiveOrderResponse{
		ID:                   o.ID.String(),
		OrderNumber:          o.OrderNumber,
		CropType:             o.CropType,
		Variety:              o.Variety,
		Method:               o.Method,
		Stage:                o.Stage,
		TotalQuantity:        o.TotalQuantity,
		CurrentStageQuantity: o.CurrentStageQuantity,
		CompletedQuantity:    o.CompletedQuantity,
		OrderDate:            o.OrderDate,
		RequestedDelivery:    o.RequestedDelivery,
	}
}
