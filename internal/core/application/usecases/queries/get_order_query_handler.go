package queries

import (
	"context"

	"agritrade/internal/core/application/access"
	"agritrade/internal/core/domain/model/dispute"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/core/ports"
)

// GetOrderQueryResponse is the full order document returned to participants.
type GetOrderQueryResponse struct {
	Order    *order.Order
	Messages []*order.Message
	Disputes []*dispute.Dispute
}

// GetOrderQueryHandler assembles the full order document. It reads through
// the repository ports so the participation policy applies exactly as it
// does on the write side.
type GetOrderQueryHandler struct {
	orders   ports.OrderRepository
	disputes ports.DisputeRepository
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(orders ports.OrderRepository, disputes ports.DisputeRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders:   orders,
		disputes: disputes,
	}
}

// Handle resolves the order under the participation policy and attaches the
// message thread and disputes.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := access.ResolveOrder(ctx, h.orders, query.OrderID(), query.Actor(), access.Participation)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	messages, err := h.orders.GetMessages(ctx, aggregate.ID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	disputes, err := h.disputes.GetByOrder(ctx, aggregate.ID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		Order:    aggregate,
		Messages: messages,
		Disputes: disputes,
	}, nil
}
