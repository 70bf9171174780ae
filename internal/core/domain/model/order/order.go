package order

import (
	"errors"
	"fmt"
	"time"

	"floratrack/internal/core/domain/model/budwood"
	"floratrack/internal/core/domain/model/kernel"
	"floratrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrQuantityExceeded is returned when a transfer or recorded loss asks for
	// more plants than the current stage holds. The order is left unmutated.
	ErrQuantityExceeded = errors.New("quantity exceeds current stage quantity")
)

// systemOperator is recorded on the synthetic history entry written at creation.
const systemOperator = "System"

// Order represents a propagation order moving through the production workflow.
// It is the aggregate root that manages quantities, staffing, material planning,
// and the append-only stage history from creation to dispatch.
//
// Order maintains these invariants:
//   - 0 <= currentStageQuantity <= totalQuantity at all times
//   - totalQuantity is set at creation and never changes
//   - every mutation appends exactly one history entry, dated on or after the
//     previous entry's date
//   - the stage is always a valid workflow stage; production transfers only
//     move forward in the stage sequence
//   - can only be created through NewOrder or RestoreOrder
//
// All operations are synchronous and deterministic: dates are passed in by the
// caller, never read from a wall clock. The aggregate holds no locks; the
// persistence layer must serialize concurrent mutations per order (the Version
// field carries the optimistic concurrency token it needs).
type Order struct {
	id          kernel.UUID
	orderNumber kernel.OrderNumber

	cropType string
	variety  string
	method   budwood.PropagationMethod

	totalQuantity        int
	currentStageQuantity int
	completedQuantity    int

	stage          Stage
	currentSection string

	orderDate         time.Time
	requestedDelivery *time.Time

	budwoodPlan   *budwood.Plan
	workers       WorkerAssignments
	containerSize string

	stageValidation *StageValidationSnapshot
	history         []HistoryEntry

	createdAt time.Time
	updatedAt time.Time
	version   int

	isConstructed bool
}

// NewOrder creates a new propagation Order with validation. This is the only
// way to create a valid new Order, ensuring all business invariants hold.
//
// The order starts in the OrderCreated stage with the full quantity available,
// nothing completed, and one synthetic history entry recorded by the system
// operator on the order date.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - orderNumber: human-readable PO-YYYY-NNN number
//   - cropType, variety: classification (both required)
//   - method: propagation method (must be a known method)
//   - totalQuantity: plants ordered (must be positive)
//   - orderDate: creation date (required)
//   - requestedDelivery: optional delivery deadline
func NewOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	cropType string,
	variety string,
	method budwood.PropagationMethod,
	totalQuantity int,
	orderDate time.Time,
	requestedDelivery *time.Time,
) (*Order, error) {
	o := &Order{
		stage:         OrderCreated,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCropType(cropType),
		o.setVariety(variety),
		o.setMethod(method),
		o.setTotalQuantity(totalQuantity),
		o.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	o.currentStageQuantity = totalQuantity
	o.completedQuantity = 0
	o.createdAt = orderDate
	o.updatedAt = orderDate
	if requestedDelivery != nil {
		d := *requestedDelivery
		o.requestedDelivery = &d
	}

	created, err := NewHistoryEntry(EntryCreated, OrderCreated, orderDate, totalQuantity, systemOperator, "")
	if err != nil {
		return nil, err
	}
	o.history = []HistoryEntry{created}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. It re-validates the
// quantity and history invariants so corrupted rows cannot re-enter the domain.
// This is the constructor repositories use; application code creates orders
// with NewOrder and mutates them through the aggregate's operations.
func RestoreOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	cropType string,
	variety string,
	method budwood.PropagationMethod,
	totalQuantity int,
	currentStageQuantity int,
	completedQuantity int,
	stage Stage,
	currentSection string,
	orderDate time.Time,
	requestedDelivery *time.Time,
	budwoodPlan *budwood.Plan,
	workers WorkerAssignments,
	containerSize string,
	stageValidation *StageValidationSnapshot,
	history []HistoryEntry,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCropType(cropType),
		o.setVariety(variety),
		o.setMethod(method),
		o.setTotalQuantity(totalQuantity),
		o.setOrderDate(orderDate),
		stage.Validate(),
	); err != nil {
		return nil, err
	}

	if currentStageQuantity < 0 || currentStageQuantity > totalQuantity {
		return nil, errs.NewValueIsOutOfRangeError(
			"current stage quantity", currentStageQuantity, 0, totalQuantity)
	}

	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("stage history")
	}
	for i, entry := range history {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		if i > 0 && entry.Date().Before(history[i-1].Date()) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"stage history",
				fmt.Errorf("entry %d dated %s precedes entry %d dated %s",
					i, entry.Date().Format(time.DateOnly), i-1, history[i-1].Date().Format(time.DateOnly)))
		}
	}

	o.stage = stage
	o.currentStageQuantity = currentStageQuantity
	o.completedQuantity = completedQuantity
	o.currentSection = currentSection
	if requestedDelivery != nil {
		d := *requestedDelivery
		o.requestedDelivery = &d
	}
	if budwoodPlan != nil {
		p := *budwoodPlan
		o.budwoodPlan = &p
	}
	o.workers = workers.Clone()
	o.containerSize = containerSize
	if stageValidation != nil {
		s := *stageValidation
		o.stageValidation = &s
	}
	o.history = append([]HistoryEntry(nil), history...)
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	o.version = version

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call this when receiving orders across a boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Transfer moves the order into a new production stage, carrying the given
// quantity of plants into it. This is the validated production path; callers
// typically gate it on a clean validation verdict, but the aggregate itself
// does not consult the validator: administrative overrides are a caller choice.
//
// Business rules:
//   - the target stage must not lie backward of the current stage; same-stage
//     transfers are legal and each appends its own history entry (moving plants
//     to another section within a stage is a real operation)
//   - quantity must be positive and must not exceed the current stage quantity
//   - the date must not precede the latest history entry
//
// On success the stage, section, and current stage quantity are replaced, a
// transfer history entry is appended (annotated with performance figures when
// supplied), and a transfer into the terminal stage books the transferred
// amount as completed.
//
// Returns ErrQuantityExceeded (wrapped) when quantity exceeds available stock;
// the order is left unmutated on any error.
func (o *Order) Transfer(
	toStage Stage,
	toSection string,
	quantity int,
	operator string,
	notes string,
	performance *WorkerPerformance,
	date time.Time,
) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStage, err := o.stage.TransferTo(toStage)
	if err != nil {
		return err
	}

	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > o.currentStageQuantity {
		return fmt.Errorf("%w: requested %d, available %d",
			ErrQuantityExceeded, quantity, o.currentStageQuantity)
	}

	entry, err := NewHistoryEntry(EntryTransfer, newStage, date, quantity, operator, notes)
	if err != nil {
		return err
	}
	if performance != nil {
		entry = entry.WithPerformance(*performance)
	}
	if err = o.validateAppendDate(date); err != nil {
		return err
	}

	o.stage = newStage
	o.currentSection = toSection
	o.currentStageQuantity = quantity
	if newStage.IsTerminal() {
		o.completedQuantity = quantity
	}
	o.history = append(o.history, entry)
	o.updatedAt = date
	return nil
}

// ChangeStage is the raw administrative stage-update path. Unlike Transfer it
// accepts any valid stage, including backward moves, and leaves the current
// stage quantity untouched. It exists for corrections that must go through
// even while blockers exist; the history entry still records who did it.
func (o *Order) ChangeStage(toStage Stage, operator string, notes string, date time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := toStage.Validate(); err != nil {
		return err
	}

	entry, err := NewHistoryEntry(EntryStageChange, toStage, date, o.currentStageQuantity, operator, notes)
	if err != nil {
		return err
	}
	if err = o.validateAppendDate(date); err != nil {
		return err
	}

	o.stage = toStage
	o.history = append(o.history, entry)
	o.updatedAt = date
	return nil
}

// RecordHealthAssessment books a plant loss in the current stage.
//
// The current stage quantity is reduced by lostQuantity and can reach exactly
// zero but never goes below it: a loss larger than the available stock fails
// with ErrQuantityExceeded and leaves the order unmutated. The appended history
// entry records the lost quantity and is annotated with the survival rate, the
// percentage of the originally ordered quantity still alive (0 when the order
// total is 0).
func (o *Order) RecordHealthAssessment(lostQuantity int, operator string, notes string, date time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if lostQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"lost quantity", fmt.Errorf("%d is negative", lostQuantity))
	}
	if lostQuantity > o.currentStageQuantity {
		return fmt.Errorf("%w: lost %d, available %d",
			ErrQuantityExceeded, lostQuantity, o.currentStageQuantity)
	}

	entry, err := NewHistoryEntry(EntryHealthAssessment, o.stage, date, lostQuantity, operator, notes)
	if err != nil {
		return err
	}
	if err = o.validateAppendDate(date); err != nil {
		return err
	}

	o.currentStageQuantity -= lostQuantity

	survivalRate := 0.0
	if o.totalQuantity > 0 {
		survivalRate = float64(o.currentStageQuantity) / float64(o.totalQuantity) * 100
	}
	o.history = append(o.history, entry.WithSurvivalRate(survivalRate))
	o.updatedAt = date
	return nil
}

// AssignWorker staffs a worker on a production role.
func (o *Order) AssignWorker(role Role, worker string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if o.workers == nil {
		o.workers = NewWorkerAssignments()
	}
	return o.workers.Assign(role, worker)
}

// AttachBudwoodPlan stores the material requirement plan on the order.
// Grafting-stage validation requires a plan with a positive total.
func (o *Order) AttachBudwoodPlan(plan budwood.Plan) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := plan.Validate(); err != nil {
		return err
	}

	p := plan
	o.budwoodPlan = &p
	return nil
}

// SetContainerSize records the dispatch packaging specification.
func (o *Order) SetContainerSize(containerSize string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	o.containerSize = containerSize
	return nil
}

// CacheStageValidation stores the latest validation verdict for read paths.
// The cache is denormalized state only; the validator is the source of truth.
func (o *Order) CacheStageValidation(snapshot StageValidationSnapshot) error {
	if err := o.Validate(); err != nil {
		return err
	}

	s := snapshot
	s.Blockers = append([]Blocker(nil), snapshot.Blockers...)
	o.stageValidation = &s
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() kernel.OrderNumber {
	return o.orderNumber
}

// CropType returns the crop classification.
func (o *Order) CropType() string {
	return o.cropType
}

// Variety returns the plant variety.
func (o *Order) Variety() string {
	return o.variety
}

// Method returns the propagation method.
func (o *Order) Method() budwood.PropagationMethod {
	return o.method
}

// TotalQuantity returns the quantity ordered at creation. Immutable.
func (o *Order) TotalQuantity() int {
	return o.totalQuantity
}

// CurrentStageQuantity returns the plants available in the current stage.
func (o *Order) CurrentStageQuantity() int {
	return o.currentStageQuantity
}

// CompletedQuantity returns the quantity booked as completed at dispatch.
func (o *Order) CompletedQuantity() int {
	return o.completedQuantity
}

// Stage returns the current workflow stage.
func (o *Order) Stage() Stage {
	return o.stage
}

// CurrentSection returns the physical or logical location label.
func (o *Order) CurrentSection() string {
	return o.currentSection
}

// OrderDate returns the creation date.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// RequestedDelivery returns the optional delivery deadline, or nil.
func (o *Order) RequestedDelivery() *time.Time {
	if o.requestedDelivery == nil {
		return nil
	}
	d := *o.requestedDelivery
	return &d
}

// BudwoodPlan returns the attached material plan, or nil when none exists yet.
func (o *Order) BudwoodPlan() *budwood.Plan {
	if o.budwoodPlan == nil {
		return nil
	}
	p := *o.budwoodPlan
	return &p
}

// Workers returns a copy of the role assignments. Nil when staffing has never
// been recorded.
func (o *Order) Workers() WorkerAssignments {
	return o.workers.Clone()
}

// ContainerSize returns the dispatch packaging specification, if set.
func (o *Order) ContainerSize() string {
	return o.containerSize
}

// StageValidation returns the cached validation snapshot, or nil when the
// order has never been validated.
func (o *Order) StageValidation() *StageValidationSnapshot {
	if o.stageValidation == nil {
		return nil
	}
	s := *o.stageValidation
	s.Blockers = append([]Blocker(nil), o.stageValidation.Blockers...)
	return &s
}

// History returns a copy of the append-only stage history, oldest first.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// LatestEntryForStage returns the most recent history entry recorded for the
// given stage, or false when the stage never appears in the history.
func (o *Order) LatestEntryForStage(stage Stage) (HistoryEntry, bool) {
	for i := len(o.history) - 1; i >= 0; i-- {
		if o.history[i].Stage() == stage {
			return o.history[i], true
		}
	}
	return HistoryEntry{}, false
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the date of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic concurrency token the persistence layer uses
// to serialize concurrent mutations of the same order.
func (o *Order) Version() int {
	return o.version
}

// validateAppendDate enforces that history only ever moves forward in time.
func (o *Order) validateAppendDate(date time.Time) error {
	if len(o.history) == 0 {
		return nil
	}
	last := o.history[len(o.history)-1].Date()
	if date.Before(last) {
		return errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%s precedes the latest history entry dated %s",
				date.Format(time.DateOnly), last.Format(time.DateOnly)))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCropType(cropType string) error {
	if cropType == "" {
		return errs.NewValueIsRequiredError("crop type")
	}
	o.cropType = cropType
	return nil
}

func (o *Order) setVariety(variety string) error {
	if variety == "" {
		return errs.NewValueIsRequiredError("variety")
	}
	o.variety = variety
	return nil
}

func (o *Order) setMethod(method budwood.PropagationMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.method = method
	return nil
}

func (o *Order) setTotalQuantity(totalQuantity int) error {
	if totalQuantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"total quantity", fmt.Errorf("%d is not greater than 0", totalQuantity))
	}
	o.totalQuantity = totalQuantity
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.orderDate = orderDate
	return nil
}
