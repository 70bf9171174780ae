// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"floratrack/internal/core/domain/model/budwood"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Scalar workflow fields map to columns for efficient querying by stage and
// order date; the nested structures (stage history, worker assignments,
// budwood plan, validation cache) persist as JSONB documents.
//
// The Version column carries the optimistic concurrency token: updates match
// on the previous version and bump it, so concurrent mutations computed from
// the same stale snapshot cannot overwrite each other.
type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber          string    `gorm:"uniqueIndex;size:16"`
	CropType             string
	Variety              string
	Method               string `gorm:"size:32"`
	TotalQuantity        int
	CurrentStageQuantity int
	CompletedQuantity    int
	Stage                int `gorm:"index"`
	CurrentSection       string
	OrderDate            time.Time
	RequestedDelivery    *time.Time
	ContainerSize        string
	BudwoodPlan          []byte `gorm:"type:jsonb"`
	Workers              []byte `gorm:"type:jsonb"`
	StageValidation      []byte `gorm:"type:jsonb"`
	History              []byte `gorm:"type:jsonb"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Version              int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// planJSON is the persisted form of a budwood plan.
type planJSON struct {
	RequiredBudwood    int     `json:"required_budwood"`
	WasteFactorPercent float64 `json:"waste_factor_percent"`
	ExtraForSafety     int     `json:"extra_for_safety"`
	TotalRequired      int     `json:"total_required"`
	MethodRatio        float64 `json:"method_ratio"`
	BaseCalculation    string  `json:"base_calculation"`
	WithWaste          string  `json:"with_waste"`
	FinalTotal         string  `json:"final_total"`
}

// historyEntryJSON is the persisted form of one stage history entry.
type historyEntryJSON struct {
	Kind         string           `json:"kind"`
	Stage        string           `json:"stage"`
	Date         time.Time        `json:"date"`
	Quantity     int              `json:"quantity"`
	Operator     string           `json:"operator"`
	Notes        string           `json:"notes,omitempty"`
	Performance  *performanceJSON `json:"performance,omitempty"`
	SurvivalRate *float64         `json:"survival_rate,omitempty"`
}

type performanceJSON struct {
	TimeInStageDays  int     `json:"time_in_stage_days"`
	QualityScore     float64 `json:"quality_score"`
	EfficiencyRating float64 `json:"efficiency_rating"`
}

// validationJSON is the persisted form of the cached validation snapshot.
type validationJSON struct {
	CurrentStageComplete bool          `json:"current_stage_complete"`
	ReadyForNextStage    bool          `json:"ready_for_next_stage"`
	Blockers             []blockerJSON `json:"blockers"`
	ValidatedAt          time.Time     `json:"validated_at"`
}

type blockerJSON struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Action   string `json:"action"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	history := aggregate.History()
	historyDocs := make([]historyEntryJSON, 0, len(history))
	for _, entry := range history {
		doc := historyEntryJSON{
			Kind:         string(entry.Kind()),
			Stage:        entry.Stage().String(),
			Date:         entry.Date(),
			Quantity:     entry.Quantity(),
			Operator:     entry.Operator(),
			Notes:        entry.Notes(),
			SurvivalRate: entry.SurvivalRate(),
		}
		if perf := entry.Performance(); perf != nil {
			doc.Performance = &performanceJSON{
				TimeInStageDays:  perf.TimeInStageDays,
				QualityScore:     perf.QualityScore,
				EfficiencyRating: perf.EfficiencyRating,
			}
		}
		historyDocs = append(historyDocs, doc)
	}

	historyRaw, err := json.Marshal(historyDocs)
	if err != nil {
		return OrderDTO{}, err
	}

	var planRaw []byte
	if plan := aggregate.BudwoodPlan(); plan != nil {
		details := plan.Details()
		planRaw, err = json.Marshal(planJSON{
			RequiredBudwood:    plan.RequiredBudwood(),
			WasteFactorPercent: plan.WasteFactorPercent(),
			ExtraForSafety:     plan.ExtraForSafety(),
			TotalRequired:      plan.TotalRequired(),
			MethodRatio:        plan.MethodRatio(),
			BaseCalculation:    details.BaseCalculation,
			WithWaste:          details.WithWaste,
			FinalTotal:         details.FinalTotal,
		})
		if err != nil {
			return OrderDTO{}, err
		}
	}

	var workersRaw []byte
	if workers := aggregate.Workers(); workers != nil {
		byRole := make(map[string]string, len(workers))
		for role, worker := range workers {
			byRole[role.String()] = worker
		}
		workersRaw, err = json.Marshal(byRole)
		if err != nil {
			return OrderDTO{}, err
		}
	}

	var validationRaw []byte
	if snapshot := aggregate.StageValidation(); snapshot != nil {
		blockers := make([]blockerJSON, 0, len(snapshot.Blockers))
		for _, blocker := range snapshot.Blockers {
			blockers = append(blockers, blockerJSON{
				Type:     string(blocker.Type),
				Message:  blocker.Message,
				Severity: string(blocker.Severity),
				Action:   blocker.Action,
			})
		}
		validationRaw, err = json.Marshal(validationJSON{
			CurrentStageComplete: snapshot.CurrentStageComplete,
			ReadyForNextStage:    snapshot.ReadyForNextStage,
			Blockers:             blockers,
			ValidatedAt:          snapshot.ValidatedAt,
		})
		if err != nil {
			return OrderDTO{}, err
		}
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		OrderNumber:          aggregate.OrderNumber().String(),
		CropType:             aggregate.CropType(),
		Variety:              aggregate.Variety(),
		Method:               aggregate.Method().String(),
		TotalQuantity:        aggregate.TotalQuantity(),
		CurrentStageQuantity: aggregate.CurrentStageQuantity(),
		CompletedQuantity:    aggregate.CompletedQuantity(),
		Stage:                int(aggregate.Stage()),
		CurrentSection:       aggregate.CurrentSection(),
		OrderDate:            aggregate.OrderDate(),
		RequestedDelivery:    aggregate.RequestedDelivery(),
		ContainerSize:        aggregate.ContainerSize(),
		BudwoodPlan:          planRaw,
		Workers:              workersRaw,
		StageValidation:      validationRaw,
		History:              historyRaw,
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
		Version:              aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.NewOrderNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	method, err := budwood.PropagationMethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	var historyDocs []historyEntryJSON
	if err = json.Unmarshal(dto.History, &historyDocs); err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(historyDocs))
	for _, doc := range historyDocs {
		stage, stageErr := order.StageFromString(doc.Stage)
		if stageErr != nil {
			return nil, stageErr
		}

		entry, entryErr := order.NewHistoryEntry(
			order.HistoryEntryKind(doc.Kind), stage, doc.Date, doc.Quantity, doc.Operator, doc.Notes)
		if entryErr != nil {
			return nil, entryErr
		}
		if doc.Performance != nil {
			entry = entry.WithPerformance(order.WorkerPerformance{
				TimeInStageDays:  doc.Performance.TimeInStageDays,
				QualityScore:     doc.Performance.QualityScore,
				EfficiencyRating: doc.Performance.EfficiencyRating,
			})
		}
		if doc.SurvivalRate != nil {
			entry = entry.WithSurvivalRate(*doc.SurvivalRate)
		}
		history = append(history, entry)
	}

	var plan *budwood.Plan
	if len(dto.BudwoodPlan) > 0 {
		var doc planJSON
		if err = json.Unmarshal(dto.BudwoodPlan, &doc); err != nil {
			return nil, err
		}

		restored, planErr := budwood.RestorePlan(
			doc.RequiredBudwood,
			doc.WasteFactorPercent,
			doc.ExtraForSafety,
			doc.TotalRequired,
			doc.MethodRatio,
			budwood.CalculationDetails{
				BaseCalculation: doc.BaseCalculation,
				WithWaste:       doc.WithWaste,
				FinalTotal:      doc.FinalTotal,
			},
		)
		if planErr != nil {
			return nil, planErr
		}
		plan = &restored
	}

	var workers order.WorkerAssignments
	if len(dto.Workers) > 0 {
		var byRole map[string]string
		if err = json.Unmarshal(dto.Workers, &byRole); err != nil {
			return nil, err
		}

		workers = order.NewWorkerAssignments()
		for roleName, worker := range byRole {
			role, roleErr := order.RoleFromString(roleName)
			if roleErr != nil {
				return nil, roleErr
			}
			if assignErr := workers.Assign(role, worker); assignErr != nil {
				return nil, assignErr
			}
		}
	}

	var validation *order.StageValidationSnapshot
	if len(dto.StageValidation) > 0 {
		var doc validationJSON
		if err = json.Unmarshal(dto.StageValidation, &doc); err != nil {
			return nil, err
		}

		blockers := make([]order.Blocker, 0, len(doc.Blockers))
		for _, blocker := range doc.Blockers {
			blockers = append(blockers, order.Blocker{
				Type:     order.BlockerType(blocker.Type),
				Message:  blocker.Message,
				Severity: order.Severity(blocker.Severity),
				Action:   blocker.Action,
			})
		}
		validation = &order.StageValidationSnapshot{
			CurrentStageComplete: doc.CurrentStageComplete,
			ReadyForNextStage:    doc.ReadyForNextStage,
			Blockers:             blockers,
			ValidatedAt:          doc.ValidatedAt,
		}
	}

	return order.RestoreOrder(
		id,
		number,
		dto.CropType,
		dto.Variety,
		method,
		dto.TotalQuantity,
		dto.CurrentStageQuantity,
		dto.CompletedQuantity,
		order.Stage(dto.Stage),
		dto.CurrentSection,
		dto.OrderDate,
		dto.RequestedDelivery,
		plan,
		workers,
		dto.ContainerSize,
		validation,
		history,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
