package order

import (
	"errors"
	"time"

	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a trade between two organizations.
// It manages the order lifecycle from draft creation through publication,
// negotiation, fulfillment and delivery.
//
// Order maintains these invariants:
//   - The buyer organization and the creator are set at creation and immutable.
//   - The supplier organization is unset until a counterparty accepts, and the
//     buyer organization can never become its own supplier.
//   - Items are mutable only while the order is Pending.
//   - The total price is always recomputable as the sum of item totals; it is
//     never stored or mutated independently.
//   - Every status change walks the legal transition graph owned by Status.
//   - Every transition appends exactly one typed Event to the history.
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated methods.
type Order struct {
	id          kernel.UUID
	number      int64
	orderType   Type
	title       string
	status      Status
	buyerOrgID  kernel.UUID
	supplierOrg *kernel.UUID
	createdByID kernel.UUID

	items []*Item

	deliveryDate        time.Time
	deliveryAddress     string
	paymentTerms        string
	specialInstructions string

	confirmedAt  *time.Time
	counterOffer *CounterOffer
	events       []Event

	// version is the optimistic-concurrency token checked by the store on
	// every conditional write.
	version int64

	isConstructed bool
}

// NewOrder creates a draft order in Pending status on behalf of the buyer
// organization. The order number must come from the monotonic sequence owned
// by the store.
//
// Example:
//
//	o, err := order.NewOrder(
//	    kernel.NewUUID(), number, order.TypeBuy, "Winter wheat",
//	    buyerOrg, creator, deliveryDate, "12 Mill Road", "net 30", "",
//	    items,
//	)
func NewOrder(
	id kernel.UUID,
	number int64,
	orderType Type,
	title string,
	buyerOrgID kernel.UUID,
	createdByID kernel.UUID,
	deliveryDate time.Time,
	deliveryAddress string,
	paymentTerms string,
	specialInstructions string,
	items []*Item,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	o.id = id

	if number <= 0 {
		return nil, errs.NewValueIsInvalidError("order number")
	}
	o.number = number

	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	o.orderType = orderType

	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	o.title = title

	if err := buyerOrgID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("buyerOrgId", err)
	}
	o.buyerOrgID = buyerOrgID

	if err := createdByID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("createdById", err)
	}
	o.createdByID = createdByID

	if err := o.setDelivery(deliveryDate, deliveryAddress); err != nil {
		return nil, err
	}
	o.paymentTerms = paymentTerms
	o.specialInstructions = specialInstructions

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	o.items = items

	return o, nil
}

// RestoreOrderParams carries the persisted state of an order aggregate.
type RestoreOrderParams struct {
	ID                  kernel.UUID
	Number              int64
	Type                Type
	Title               string
	Status              Status
	BuyerOrgID          kernel.UUID
	SupplierOrgID       *kernel.UUID
	CreatedByID         kernel.UUID
	Items               []*Item
	DeliveryDate        time.Time
	DeliveryAddress     string
	PaymentTerms        string
	SpecialInstructions string
	ConfirmedAt         *time.Time
	CounterOffer        *CounterOffer
	Events              []Event
	Version             int64
}

// RestoreOrder reconstructs an order from persistence, re-validating the
// invariants the store cannot express.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o, err := NewOrder(
		p.ID, p.Number, p.Type, p.Title, p.BuyerOrgID, p.CreatedByID,
		p.DeliveryDate, p.DeliveryAddress, p.PaymentTerms, p.SpecialInstructions,
		p.Items,
	)
	if err != nil {
		return nil, err
	}

	if err = p.Status.Validate(); err != nil {
		return nil, err
	}
	o.status = p.Status

	if p.SupplierOrgID != nil {
		if err = p.SupplierOrgID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("supplierOrgId", err)
		}
		if p.SupplierOrgID.IsEqual(p.BuyerOrgID) {
			return nil, errs.NewValueIsInvalidError("supplierOrgId equals buyerOrgId")
		}
	}
	o.supplierOrg = p.SupplierOrgID

	if p.Version <= 0 {
		return nil, errs.NewVersionIsInvalidError("order version")
	}
	o.version = p.Version

	o.confirmedAt = p.ConfirmedAt
	o.counterOffer = p.CounterOffer
	o.events = p.Events

	return o, nil
}

// Validate ensures the Order instance was constructed through NewOrder.
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

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable monotonic order number.
func (o *Order) Number() int64 {
	return o.number
}

// Type returns the order classification (buy or sell).
func (o *Order) Type() Type {
	return o.orderType
}

// Title returns the order title.
func (o *Order) Title() string {
	return o.title
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// BuyerOrgID returns the organization that initiated the order.
func (o *Order) BuyerOrgID() kernel.UUID {
	return o.buyerOrgID
}

// SupplierOrgID returns the counterparty organization, or nil if no
// counterparty has accepted yet.
func (o *Order) SupplierOrgID() *kernel.UUID {
	return o.supplierOrg
}

// CreatedByID returns the user who created the order.
func (o *Order) CreatedByID() kernel.UUID {
	return o.createdByID
}

// Items returns the order's commercial lines.
func (o *Order) Items() []*Item {
	return o.items
}

// DeliveryDate returns the requested delivery date.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// DeliveryAddress returns the delivery destination.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PaymentTerms returns the free-form payment terms.
func (o *Order) PaymentTerms() string {
	return o.paymentTerms
}

// SpecialInstructions returns free-form handling instructions.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// ConfirmedAt returns when the creator stamped the finalize marker, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// CounterOffer returns the open negotiation proposal, or nil.
func (o *Order) CounterOffer() *CounterOffer {
	return o.counterOffer
}

// Events returns the typed transition history, oldest first.
func (o *Order) Events() []Event {
	return o.events
}

// Version returns the optimistic-concurrency token as loaded from the store.
func (o *Order) Version() int64 {
	return o.version
}

// TotalPrice returns the sum of quantity × unit price over all items.
// The total is always derived, never stored. An error means the order
// total does not fit in int64 cents.
func (o *Order) TotalPrice() (kernel.Money, error) {
	var total kernel.Money
	for _, item := range o.items {
		lineTotal, err := item.Total()
		if err != nil {
			return kernel.Money{}, err
		}
		total, err = total.Add(lineTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

// IsParticipant reports whether the given organization is the buyer or the
// assigned supplier.
func (o *Order) IsParticipant(orgID kernel.UUID) bool {
	if o.buyerOrgID.IsEqual(orgID) {
		return true
	}
	return o.supplierOrg != nil && o.supplierOrg.IsEqual(orgID)
}

// UpdateDetails patches the title, delivery terms and free-form terms of a
// draft. Nil fields are left untouched. Allowed only while Pending.
func (o *Order) UpdateDetails(changes ProposedChanges) error {
	if o.status != Pending {
		return errs.NewInvalidStatusTransitionError("update order", o.status.String())
	}

	if changes.Title != nil {
		if *changes.Title == "" {
			return errs.NewValueIsRequiredError("title")
		}
		o.title = *changes.Title
	}
	if changes.DeliveryDate != nil || changes.DeliveryAddress != nil {
		date := o.deliveryDate
		address := o.deliveryAddress
		if changes.DeliveryDate != nil {
			date = *changes.DeliveryDate
		}
		if changes.DeliveryAddress != nil {
			address = *changes.DeliveryAddress
		}
		if err := o.setDelivery(date, address); err != nil {
			return err
		}
	}
	if changes.PaymentTerms != nil {
		o.paymentTerms = *changes.PaymentTerms
	}
	if changes.SpecialInstructions != nil {
		o.specialInstructions = *changes.SpecialInstructions
	}

	return nil
}

// EnsureDeletable checks that the order may still be removed.
// Orders are hard-deleted only while Pending; once published they keep
// their identity and audit trail forever.
func (o *Order) EnsureDeletable() error {
	if o.status != Pending {
		return errs.NewInvalidStatusTransitionError("delete order", o.status.String())
	}
	return nil
}

// AddItem appends a commercial line. Allowed only while Pending.
func (o *Order) AddItem(item *Item) error {
	if o.status != Pending {
		return errs.NewInvalidStatusTransitionError("add order item", o.status.String())
	}
	if err := item.Validate(); err != nil {
		return err
	}
	for _, existing := range o.items {
		if existing.ID().IsEqual(item.ID()) {
			return errs.NewValueIsInvalidError("item id already present")
		}
	}

	o.items = append(o.items, item)
	return nil
}

// UpdateItem revises the quantity, unit price or inventory lot of a line.
// Allowed only while Pending.
func (o *Order) UpdateItem(itemID kernel.UUID, quantity int64, unitPrice kernel.Money, lotID *kernel.UUID) error {
	if o.status != Pending {
		return errs.NewInvalidStatusTransitionError("update order item", o.status.String())
	}

	item := o.findItem(itemID)
	if item == nil {
		return errs.NewObjectNotFoundError("orderItem", itemID.String())
	}
	return item.change(quantity, unitPrice, lotID)
}

// RemoveItem deletes a line. Allowed only while Pending.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if o.status != Pending {
		return errs.NewInvalidStatusTransitionError("remove order item", o.status.String())
	}

	for i, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("orderItem", itemID.String())
}

// Publish lists the order: Pending -> Confirmed. A published order must
// carry at least one item so that counterparties see binding terms.
// Publishing supersedes any open counter-offer.
func (o *Order) Publish(actorID kernel.UUID, now time.Time) error {
	if len(o.items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	newStatus, err := o.status.Publish()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.counterOffer = nil
	return o.appendEvent(EventPublished, actorID, now, EventPayload{})
}

// Accept assigns a counterparty organization as the supplier.
//
// Business rules:
//   - The order must be Confirmed.
//   - The buyer organization can never accept its own order.
//   - The supplier is assigned once; after a negotiation round only the
//     already-assigned supplier may re-accept.
//   - With requiresNegotiation the order returns to Pending (the
//     negotiation back-edge); otherwise it stays Confirmed.
func (o *Order) Accept(
	supplierOrgID kernel.UUID,
	requiresNegotiation bool,
	message string,
	actorID kernel.UUID,
	now time.Time,
) error {
	if err := supplierOrgID.Validate(); err != nil {
		return err
	}
	if supplierOrgID.IsEqual(o.buyerOrgID) {
		return errs.NewAccessDeniedError("an order cannot be supplied by the organization that created it")
	}
	if o.supplierOrg != nil && !o.supplierOrg.IsEqual(supplierOrgID) {
		return errs.NewAccessDeniedError("the order already has an assigned supplier")
	}

	newStatus, err := o.status.Accept(requiresNegotiation)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.supplierOrg = &supplierOrgID
	return o.appendEvent(EventAccepted, actorID, now, EventPayload{
		Message:             message,
		SupplierOrgID:       supplierOrgID.String(),
		RequiresNegotiation: requiresNegotiation,
	})
}

// Reject cancels the order from any non-terminal status, recording the
// reason. The order is never deleted; the audit trail survives.
func (o *Order) Reject(reason, message string, actorID kernel.UUID, now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.counterOffer = nil
	return o.appendEvent(EventRejected, actorID, now, EventPayload{
		Reason:  reason,
		Message: message,
	})
}

// Counter records a negotiation proposal and returns the order to Pending.
// The proposal does not change the parties; it replaces any previous open
// proposal.
func (o *Order) Counter(
	proposedByOrgID kernel.UUID,
	message string,
	changes ProposedChanges,
	expiresAt time.Time,
	actorID kernel.UUID,
	now time.Time,
) error {
	offer, err := NewCounterOffer(proposedByOrgID, message, changes, expiresAt, now)
	if err != nil {
		return err
	}

	newStatus, err := o.status.Counter()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.counterOffer = offer
	expiry := expiresAt
	return o.appendEvent(EventCounterOffered, actorID, now, EventPayload{
		Message:   message,
		Changes:   &changes,
		ExpiresAt: &expiry,
	})
}

// Confirm stamps the finalize marker on a Confirmed order.
// The first call records the confirmation timestamp; repeating it is a
// documented no-op, the one exception to fail-fast semantics.
func (o *Order) Confirm(actorID kernel.UUID, now time.Time) error {
	if err := o.status.ValidateConfirm(); err != nil {
		return err
	}
	if o.confirmedAt != nil {
		return nil
	}

	confirmedAt := now
	o.confirmedAt = &confirmedAt
	return o.appendEvent(EventConfirmed, actorID, now, EventPayload{})
}

// StartFulfillment moves the order to InTransit, recording tracking details.
// Only callable once a supplier is assigned.
func (o *Order) StartFulfillment(
	trackingInfo string,
	estimatedCompletion *time.Time,
	actorID kernel.UUID,
	now time.Time,
) error {
	if o.supplierOrg == nil {
		return errs.NewInvalidStatusTransitionError("start fulfillment without a supplier", o.status.String())
	}

	newStatus, err := o.status.StartFulfillment()
	if err != nil {
		return err
	}

	o.status = newStatus
	return o.appendEvent(EventFulfillmentStarted, actorID, now, EventPayload{
		TrackingInfo:        trackingInfo,
		EstimatedCompletion: estimatedCompletion,
	})
}

// CompleteDelivery moves the order to Delivered, recording the delivery
// confirmation and quality assessment.
func (o *Order) CompleteDelivery(
	deliveryConfirmation string,
	qualityAssessment string,
	actorID kernel.UUID,
	now time.Time,
) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return o.appendEvent(EventCompleted, actorID, now, EventPayload{
		DeliveryConfirmation: deliveryConfirmation,
		QualityAssessment:    qualityAssessment,
	})
}

// ExpireCounterOffer closes an open proposal whose advisory deadline has
// passed. Called by the expiry sweep, never by the engine itself. The
// order stays Pending; only the open proposal is cleared.
func (o *Order) ExpireCounterOffer(now time.Time) error {
	if o.counterOffer == nil {
		return errs.NewObjectNotFoundError("counterOffer", o.id.String())
	}
	if !o.counterOffer.IsExpired(now) {
		return errs.NewValueIsInvalidError("counter-offer has not expired yet")
	}

	expiry := o.counterOffer.ExpiresAt()
	o.counterOffer = nil
	return o.appendEvent(EventCounterExpired, kernel.UUID{}, now, EventPayload{
		ExpiresAt: &expiry,
	})
}

func (o *Order) appendEvent(kind EventKind, actorID kernel.UUID, at time.Time, payload EventPayload) error {
	event, err := NewEvent(kind, actorID, at, payload)
	if err != nil {
		return err
	}
	o.events = append(o.events, event)
	return nil
}

func (o *Order) setDelivery(date time.Time, address string) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryDate = date
	o.deliveryAddress = address
	return nil
}

func (o *Order) findItem(itemID kernel.UUID) *Item {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item
		}
	}
	return nil
}
