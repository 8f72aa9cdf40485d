// Package http implements the inbound HTTP adapter. It translates requests
// into commands and queries, and domain results back into API responses.
package http

import (
	"net/http"

	"agritrade/internal/core/application/usecases/commands"
	"agritrade/internal/core/application/usecases/queries"
	"agritrade/internal/core/domain/model/dispute"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder      commands.CreateOrderCommandHandler
	UpdateOrder      commands.UpdateOrderCommandHandler
	DeleteOrder      commands.DeleteOrderCommandHandler
	PublishOrder     commands.PublishOrderCommandHandler
	AcceptOrder      commands.AcceptOrderCommandHandler
	RejectOrder      commands.RejectOrderCommandHandler
	CounterOffer     commands.CounterOfferCommandHandler
	ConfirmOrder     commands.ConfirmOrderCommandHandler
	StartFulfillment commands.StartFulfillmentCommandHandler
	CompleteOrder    commands.CompleteOrderCommandHandler
	AddOrderItem     commands.AddOrderItemCommandHandler
	UpdateOrderItem  commands.UpdateOrderItemCommandHandler
	RemoveOrderItem  commands.RemoveOrderItemCommandHandler
	SendOrderMessage commands.SendOrderMessageCommandHandler
	MarkMessageRead  commands.MarkMessageReadCommandHandler
	CreateDispute    commands.CreateDisputeCommandHandler
	RespondToDispute commands.RespondToDisputeCommandHandler
	ResolveDispute   commands.ResolveDisputeCommandHandler

	GetOrder       queries.GetOrderQueryHandler
	ListOpenOrders queries.ListOpenOrdersQueryHandler
}

// Server implements the generated ServerInterface.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// ListOpenOrders handles GET /api/v1/orders/open. The listing is the public
// marketplace view and needs no acting identity.
func (s *Server) ListOpenOrders(ctx echo.Context) error {
	query := queries.NewListOpenOrdersQuery()

	rows, err := s.handlers.ListOpenOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]servers.OpenOrderSummary, 0, len(rows))
	for _, row := range rows {
		response = append(response, toOpenOrderSummary(row))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return writeDomainError(ctx, err)
	}

	orderType, err := order.TypeFromString(string(body.Type))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	items := make([]commands.CreateOrderItemParams, 0, len(body.Items))
	for _, item := range body.Items {
		params, itemErr := toItemParams(item)
		if itemErr != nil {
			return writeDomainError(ctx, itemErr)
		}
		items = append(items, params)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), a, orderType, body.Title,
		body.DeliveryDate, body.DeliveryAddress, body.PaymentTerms, body.SpecialInstructions,
		items,
	)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusCreated, created)
}

// GetOrder handles GET /api/v1/orders/{orderId}. The response is the full
// order document: the order, its message thread and its disputes.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, a)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	doc, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	orderResp, err := toOrderResponse(doc.Order)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := servers.OrderDocument{
		Order:    orderResp,
		Messages: make([]servers.Message, 0, len(doc.Messages)),
		Disputes: make([]servers.Dispute, 0, len(doc.Disputes)),
	}
	for _, message := range doc.Messages {
		response.Messages = append(response.Messages, toMessageResponse(message))
	}
	for _, d := range doc.Disputes {
		response.Disputes = append(response.Disputes, toDisputeResponse(d))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body servers.ProposedChanges
	if err = ctx.Bind(&body); err != nil {
		return writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, a, toProposedChanges(body))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	updated, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusOK, updated)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, a)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PublishOrder handles POST /api/v1/orders/{orderId}/publish.
func (s *Server) PublishOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewPublishOrderCommand(orderID, a)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	published, err := s.handlers.PublishOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusOK, published)
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body servers.AcceptOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, a, body.RequiresNegotiation, body.Message)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	accepted, err := s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusOK, accepted)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject.
func (s *Server) RejectOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body servers.RejectOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, a, body.Reason, body.Message)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	rejected, err := s.handlers.RejectOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusOK, rejected)
}

// CounterOffer handles POST /api/v1/orders/{orderId}/counter-offer.
func (s *Server) CounterOffer(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body servers.CounterOfferRequest
	if err = ctx.Bind(&body); err != nil {
		return writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewCounterOfferCommand(
		orderID, a, body.Message, toProposedChanges(body.Changes), body.ExpiresAt)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	countered, err := s.handlers.CounterOffer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusOK, countered)
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, a)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	confirmed, err := s.handlers.ConfirmOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusOK, confirmed)
}

// StartFulfillment handles POST /api/v1/orders/{orderId}/start-fulfillment.
func (s *Server) StartFulfillment(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body servers.StartFulfillmentRequest
	if err = ctx.Bind(&body); err != nil {
		return writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewStartFulfillmentCommand(orderID, a, body.TrackingInfo, body.EstimatedCompletion)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	started, err := s.handlers.StartFulfillment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusOK, started)
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body servers.CompleteOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, a, body.DeliveryConfirmation, body.QualityAssessment)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	completed, err := s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusOK, completed)
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddOrderItem(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body servers.NewOrderItem
	if err = ctx.Bind(&body); err != nil {
		return writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	params, err := toItemParams(body)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemCommand(
		orderID, a, params.CommodityID, params.InventoryLotID, params.Quantity, params.UnitPrice)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	updated, err := s.handlers.AddOrderItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusOK, updated)
}

// UpdateOrderItem handles PATCH /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) UpdateOrderItem(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body servers.NewOrderItem
	if err = ctx.Bind(&body); err != nil {
		return writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}
	itemID, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	unitPrice, err := kernel.NewMoney(body.UnitPriceCents)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	var lotID *kernel.UUID
	if body.InventoryLotId != nil {
		lot, lotErr := kernel.UUIDFromBytes(body.InventoryLotId[:])
		if lotErr != nil {
			return writeDomainError(ctx, lotErr)
		}
		lotID = &lot
	}

	cmd, err := commands.NewUpdateOrderItemCommand(orderID, itemID, a, body.Quantity, unitPrice, lotID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	updated, err := s.handlers.UpdateOrderItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusOK, updated)
}

// RemoveOrderItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveOrderItem(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}
	itemID, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID, a)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	updated, err := s.handlers.RemoveOrderItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusOK, updated)
}

// SendOrderMessage handles POST /api/v1/orders/{orderId}/messages.
func (s *Server) SendOrderMessage(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body servers.NewMessage
	if err = ctx.Bind(&body); err != nil {
		return writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewSendOrderMessageCommand(orderID, a, body.Body, body.Attachments, body.Urgent)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	message, err := s.handlers.SendOrderMessage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toMessageResponse(message))
}

// MarkMessageRead handles POST /api/v1/messages/{messageId}/read.
func (s *Server) MarkMessageRead(ctx echo.Context, messageId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	messageID, err := kernel.UUIDFromBytes(messageId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewMarkMessageReadCommand(messageID, a)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	message, err := s.handlers.MarkMessageRead.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMessageResponse(message))
}

// CreateDispute handles POST /api/v1/orders/{orderId}/disputes.
func (s *Server) CreateDispute(ctx echo.Context, orderId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body servers.NewDispute
	if err = ctx.Bind(&body); err != nil {
		return writeDomainError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewCreateDisputeCommand(
		orderID, a, body.Type, body.Description, body.Evidence,
		body.RequestedResolution, dispute.Severity(body.Severity))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	created, err := s.handlers.CreateDispute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDisputeResponse(created))
}

// RespondToDispute handles POST /api/v1/disputes/{disputeId}/respond.
func (s *Server) RespondToDispute(ctx echo.Context, disputeId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body servers.RespondToDisputeRequest
	if err = ctx.Bind(&body); err != nil {
		return writeDomainError(ctx, err)
	}

	disputeID, err := kernel.UUIDFromBytes(disputeId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewRespondToDisputeCommand(disputeID, a, body.Message, body.Evidence)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	responded, err := s.handlers.RespondToDispute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDisputeResponse(responded))
}

// ResolveDispute handles POST /api/v1/disputes/{disputeId}/resolve.
func (s *Server) ResolveDispute(ctx echo.Context, disputeId openapi_types.UUID) error {
	a, err := actorFromRequest(ctx)
	if err != nil {
		return err
	}

	var body servers.ResolveDisputeRequest
	if err = ctx.Bind(&body); err != nil {
		return writeDomainError(ctx, err)
	}

	disputeID, err := kernel.UUIDFromBytes(disputeId[:])
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewResolveDisputeCommand(disputeID, a, body.Outcome, body.CompensationTerms)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	resolved, err := s.handlers.ResolveDispute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDisputeResponse(resolved))
}

func (s *Server) writeOrder(ctx echo.Context, status int, o *order.Order) error {
	resp, err := toOrderResponse(o)
	if err != nil {
		return writeDomainError(ctx, err)
	}
	return ctx.JSON(status, resp)
}

func toItemParams(item servers.NewOrderItem) (commands.CreateOrderItemParams, error) {
	commodityID, err := kernel.UUIDFromBytes(item.CommodityId[:])
	if err != nil {
		return commands.CreateOrderItemParams{}, err
	}

	unitPrice, err := kernel.NewMoney(item.UnitPriceCents)
	if err != nil {
		return commands.CreateOrderItemParams{}, err
	}

	params := commands.CreateOrderItemParams{
		CommodityID: commodityID,
		Quantity:    item.Quantity,
		UnitPrice:   unitPrice,
	}

	if item.InventoryLotId != nil {
		lotID, lotErr := kernel.UUIDFromBytes(item.InventoryLotId[:])
		if lotErr != nil {
			return commands.CreateOrderItemParams{}, lotErr
		}
		params.InventoryLotID = &lotID
	}

	return params, nil
}
