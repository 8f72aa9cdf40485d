// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows: the order header, its lines, the typed event history and the open
// counter-offer (stored as a jsonb payload).
package orderrepo

import (
	"encoding/json"
	"time"

	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number              int64      `gorm:"uniqueIndex"`
	OrderType           string     `gorm:"type:varchar(8)"`
	Title               string     `gorm:"type:text"`
	Status              int        `gorm:"index"`
	BuyerOrgID          uuid.UUID  `gorm:"type:uuid;index"`
	SupplierOrgID       *uuid.UUID `gorm:"type:uuid;index"`
	CreatedByID         uuid.UUID  `gorm:"type:uuid"`
	DeliveryDate        time.Time
	DeliveryAddress     string `gorm:"type:text"`
	PaymentTerms        string `gorm:"type:text"`
	SpecialInstructions string `gorm:"type:text"`
	ConfirmedAt         *time.Time
	CounterOffer        *string `gorm:"type:jsonb"`
	Version             int64

	Items  []ItemDTO  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Events []EventDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one commercial line of an order.
type ItemDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;index"`
	CommodityID    uuid.UUID  `gorm:"type:uuid"`
	InventoryLotID *uuid.UUID `gorm:"type:uuid"`
	Quantity       int64
	UnitPriceCents int64
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// EventDTO represents one entry of an order's typed event history.
// The actor is null for system events such as counter-offer expiry.
type EventDTO struct {
	ID      int64      `gorm:"primaryKey;autoIncrement"`
	OrderID uuid.UUID  `gorm:"type:uuid;index"`
	Kind    string     `gorm:"type:varchar(32)"`
	ActorID *uuid.UUID `gorm:"type:uuid"`
	At      time.Time
	Payload string `gorm:"type:jsonb"`
}

// TableName specifies the database table name for order events.
func (EventDTO) TableName() string {
	return "order_events"
}

// MessageDTO represents one message of an order's thread.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	AuthorID    uuid.UUID `gorm:"type:uuid"`
	Body        string    `gorm:"type:text"`
	Attachments string    `gorm:"type:jsonb"`
	Urgent      bool
	SentAt      time.Time `gorm:"index"`
	ReadAt      *time.Time
}

// TableName specifies the database table name for order messages.
func (MessageDTO) TableName() string {
	return "order_messages"
}

// counterOfferJSON is the jsonb shape of an open negotiation proposal.
type counterOfferJSON struct {
	ProposedByOrgID string                `json:"proposedByOrgId"`
	Message         string                `json:"message,omitempty"`
	Changes         order.ProposedChanges `json:"changes"`
	ExpiresAt       time.Time             `json:"expiresAt"`
	ProposedAt      time.Time             `json:"proposedAt"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var supplierOrgID *uuid.UUID
	if id := aggregate.SupplierOrgID(); id != nil {
		raw := id.Bytes()
		supplierOrgID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	events := make([]EventDTO, 0, len(aggregate.Events()))
	for _, event := range aggregate.Events() {
		dto, err := eventFromDomain(aggregate.ID(), event)
		if err != nil {
			return OrderDTO{}, err
		}
		events = append(events, dto)
	}

	counterOffer, err := counterOfferFromDomain(aggregate.CounterOffer())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		Number:              aggregate.Number(),
		OrderType:           aggregate.Type().String(),
		Title:               aggregate.Title(),
		Status:              int(aggregate.Status()),
		BuyerOrgID:          aggregate.BuyerOrgID().Bytes(),
		SupplierOrgID:       supplierOrgID,
		CreatedByID:         aggregate.CreatedByID().Bytes(),
		DeliveryDate:        aggregate.DeliveryDate(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		PaymentTerms:        aggregate.PaymentTerms(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		ConfirmedAt:         aggregate.ConfirmedAt(),
		CounterOffer:        counterOffer,
		Version:             aggregate.Version(),
		Items:               items,
		Events:              events,
	}, nil
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) ItemDTO {
	var lotID *uuid.UUID
	if id := item.InventoryLotID(); id != nil {
		raw := id.Bytes()
		lotID = &raw
	}

	return ItemDTO{
		ID:             item.ID().Bytes(),
		OrderID:        orderID.Bytes(),
		CommodityID:    item.CommodityID().Bytes(),
		InventoryLotID: lotID,
		Quantity:       item.Quantity(),
		UnitPriceCents: item.UnitPrice().Cents(),
	}
}

func eventFromDomain(orderID kernel.UUID, event order.Event) (EventDTO, error) {
	payload, err := json.Marshal(event.Payload())
	if err != nil {
		return EventDTO{}, err
	}

	var actorID *uuid.UUID
	if event.ActorID().Validate() == nil {
		raw := event.ActorID().Bytes()
		actorID = &raw
	}

	return EventDTO{
		OrderID: orderID.Bytes(),
		Kind:    string(event.Kind()),
		ActorID: actorID,
		At:      event.At(),
		Payload: string(payload),
	}, nil
}

func counterOfferFromDomain(offer *order.CounterOffer) (*string, error) {
	if offer == nil {
		return nil, nil
	}

	raw, err := json.Marshal(counterOfferJSON{
		ProposedByOrgID: offer.ProposedByOrgID().String(),
		Message:         offer.Message(),
		Changes:         offer.Changes(),
		ExpiresAt:       offer.ExpiresAt(),
		ProposedAt:      offer.ProposedAt(),
	})
	if err != nil {
		return nil, err
	}

	encoded := string(raw)
	return &encoded, nil
}

func messageFromDomain(message *order.Message) (MessageDTO, error) {
	attachments, err := json.Marshal(message.Attachments())
	if err != nil {
		return MessageDTO{}, err
	}

	return MessageDTO{
		ID:          message.ID().Bytes(),
		OrderID:     message.OrderID().Bytes(),
		AuthorID:    message.AuthorID().Bytes(),
		Body:        message.Body(),
		Attachments: string(attachments),
		Urgent:      message.IsUrgent(),
		SentAt:      message.SentAt(),
		ReadAt:      message.ReadAt(),
	}, nil
}

// toDomain converts a database DTO to an order aggregate, reconstructing
// the items, event history and open counter-offer.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerOrgID, err := kernel.UUIDFromBytes(dto.BuyerOrgID[:])
	if err != nil {
		return nil, err
	}

	createdByID, err := kernel.UUIDFromBytes(dto.CreatedByID[:])
	if err != nil {
		return nil, err
	}

	var supplierOrgID *kernel.UUID
	if dto.SupplierOrgID != nil {
		sID, supplierErr := kernel.UUIDFromBytes((*dto.SupplierOrgID)[:])
		if supplierErr != nil {
			return nil, supplierErr
		}
		supplierOrgID = &sID
	}

	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	events := make([]order.Event, 0, len(dto.Events))
	for _, eventDTO := range dto.Events {
		event, eventErr := eventToDomain(eventDTO)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	counterOffer, err := counterOfferToDomain(dto.CounterOffer)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                  id,
		Number:              dto.Number,
		Type:                orderType,
		Title:               dto.Title,
		Status:              order.Status(dto.Status),
		BuyerOrgID:          buyerOrgID,
		SupplierOrgID:       supplierOrgID,
		CreatedByID:         createdByID,
		Items:               items,
		DeliveryDate:        dto.DeliveryDate,
		DeliveryAddress:     dto.DeliveryAddress,
		PaymentTerms:        dto.PaymentTerms,
		SpecialInstructions: dto.SpecialInstructions,
		ConfirmedAt:         dto.ConfirmedAt,
		CounterOffer:        counterOffer,
		Events:              events,
		Version:             dto.Version,
	})
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	commodityID, err := kernel.UUIDFromBytes(dto.CommodityID[:])
	if err != nil {
		return nil, err
	}

	var lotID *kernel.UUID
	if dto.InventoryLotID != nil {
		lID, lotErr := kernel.UUIDFromBytes((*dto.InventoryLotID)[:])
		if lotErr != nil {
			return nil, lotErr
		}
		lotID = &lID
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, commodityID, lotID, dto.Quantity, unitPrice)
}

func eventToDomain(dto EventDTO) (order.Event, error) {
	var payload order.EventPayload
	if err := json.Unmarshal([]byte(dto.Payload), &payload); err != nil {
		return order.Event{}, err
	}

	var actorID kernel.UUID
	if dto.ActorID != nil {
		aID, err := kernel.UUIDFromBytes((*dto.ActorID)[:])
		if err != nil {
			return order.Event{}, err
		}
		actorID = aID
	}

	return order.NewEvent(order.EventKind(dto.Kind), actorID, dto.At, payload)
}

func counterOfferToDomain(raw *string) (*order.CounterOffer, error) {
	if raw == nil {
		return nil, nil
	}

	var decoded counterOfferJSON
	if err := json.Unmarshal([]byte(*raw), &decoded); err != nil {
		return nil, err
	}

	proposedByOrgID, err := kernel.UUIDFromString(decoded.ProposedByOrgID)
	if err != nil {
		return nil, err
	}

	return order.RestoreCounterOffer(
		proposedByOrgID, decoded.Message, decoded.Changes,
		decoded.ExpiresAt, decoded.ProposedAt,
	), nil
}

func messageToDomain(dto MessageDTO) (*order.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return nil, err
	}

	var attachments []string
	if dto.Attachments != "" {
		if err = json.Unmarshal([]byte(dto.Attachments), &attachments); err != nil {
			return nil, err
		}
	}

	return order.RestoreMessage(
		id, orderID, authorID, dto.Body, attachments,
		dto.Urgent, dto.SentAt, dto.ReadAt,
	)
}
