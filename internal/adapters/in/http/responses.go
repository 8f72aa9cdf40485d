package http

import (
	"encoding/json"

	"agritrade/internal/core/application/usecases/queries"
	"agritrade/internal/core/domain/model/dispute"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/generated/servers"
)

func toOrderResponse(o *order.Order) (servers.Order, error) {
	total, err := o.TotalPrice()
	if err != nil {
		return servers.Order{}, err
	}

	resp := servers.Order{
		Id:                  o.ID().Bytes(),
		Number:              o.Number(),
		Type:                servers.OrderType(o.Type().String()),
		Title:               o.Title(),
		Status:              o.Status().String(),
		BuyerOrgId:          o.BuyerOrgID().Bytes(),
		CreatedById:         o.CreatedByID().Bytes(),
		DeliveryDate:        o.DeliveryDate(),
		DeliveryAddress:     o.DeliveryAddress(),
		PaymentTerms:        o.PaymentTerms(),
		SpecialInstructions: o.SpecialInstructions(),
		ConfirmedAt:         o.ConfirmedAt(),
		TotalPriceCents:     total.Cents(),
		Version:             o.Version(),
	}

	if supplier := o.SupplierOrgID(); supplier != nil {
		id := supplier.Bytes()
		resp.SupplierOrgId = &id
	}

	if offer := o.CounterOffer(); offer != nil {
		resp.CounterOffer = &servers.CounterOffer{
			ProposedByOrgId: offer.ProposedByOrgID().Bytes(),
			Message:         offer.Message(),
			Changes:         toChangesResponse(offer.Changes()),
			ExpiresAt:       offer.ExpiresAt(),
			ProposedAt:      offer.ProposedAt(),
		}
	}

	resp.Items = make([]servers.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		resp.Items = append(resp.Items, toItemResponse(item))
	}

	resp.Events = make([]servers.OrderEvent, 0, len(o.Events()))
	for _, event := range o.Events() {
		eventResp, err := toEventResponse(event)
		if err != nil {
			return servers.Order{}, err
		}
		resp.Events = append(resp.Events, eventResp)
	}

	return resp, nil
}

func toItemResponse(item *order.Item) servers.OrderItem {
	resp := servers.OrderItem{
		Id:             item.ID().Bytes(),
		CommodityId:    item.CommodityID().Bytes(),
		Quantity:       item.Quantity(),
		UnitPriceCents: item.UnitPrice().Cents(),
	}
	if lot := item.InventoryLotID(); lot != nil {
		id := lot.Bytes()
		resp.InventoryLotId = &id
	}
	return resp
}

func toEventResponse(event order.Event) (servers.OrderEvent, error) {
	resp := servers.OrderEvent{
		Kind: string(event.Kind()),
		At:   event.At(),
	}

	// System events, like counter-offer expiry, carry no actor.
	if err := event.ActorID().Validate(); err == nil {
		id := event.ActorID().Bytes()
		resp.ActorId = &id
	}

	raw, err := json.Marshal(event.Payload())
	if err != nil {
		return servers.OrderEvent{}, err
	}
	if err = json.Unmarshal(raw, &resp.Payload); err != nil {
		return servers.OrderEvent{}, err
	}

	return resp, nil
}

func toMessageResponse(message *order.Message) servers.Message {
	return servers.Message{
		Id:          message.ID().Bytes(),
		OrderId:     message.OrderID().Bytes(),
		AuthorId:    message.AuthorID().Bytes(),
		Body:        message.Body(),
		Attachments: message.Attachments(),
		Urgent:      message.IsUrgent(),
		SentAt:      message.SentAt(),
		ReadAt:      message.ReadAt(),
	}
}

func toDisputeResponse(d *dispute.Dispute) servers.Dispute {
	resp := servers.Dispute{
		Id:                  d.ID().Bytes(),
		OrderId:             d.OrderID().Bytes(),
		RaisedById:          d.RaisedByID().Bytes(),
		Type:                d.Type(),
		Description:         d.Description(),
		Evidence:            d.Evidence(),
		RequestedResolution: d.RequestedResolution(),
		Severity:            servers.DisputeSeverity(d.Severity()),
		Status:              d.Status().String(),
		RaisedAt:            d.RaisedAt(),
	}

	if response := d.Response(); response != nil {
		resp.Response = &servers.DisputeResponse{
			ResponderId: response.ResponderID.Bytes(),
			Message:     response.Message,
			Evidence:    response.Evidence,
			At:          response.At,
		}
	}

	if resolution := d.Resolution(); resolution != nil {
		resp.Resolution = &servers.DisputeResolution{
			ResolvedById:      resolution.ResolvedByID.Bytes(),
			Outcome:           resolution.Outcome,
			CompensationTerms: resolution.CompensationTerms,
			At:                resolution.At,
		}
	}

	return resp
}

func toOpenOrderSummary(row queries.ListOpenOrdersQueryResponse) servers.OpenOrderSummary {
	return servers.OpenOrderSummary{
		Id:              row.ID.Bytes(),
		Number:          row.Number,
		Type:            servers.OrderType(row.Type.String()),
		Title:           row.Title,
		BuyerOrgId:      row.BuyerOrgID.Bytes(),
		DeliveryDate:    row.DeliveryDate,
		DeliveryAddress: row.DeliveryAddress,
		TotalPriceCents: row.TotalPrice.Cents(),
	}
}

func toChangesResponse(changes order.ProposedChanges) servers.ProposedChanges {
	return servers.ProposedChanges{
		Title:               changes.Title,
		DeliveryDate:        changes.DeliveryDate,
		DeliveryAddress:     changes.DeliveryAddress,
		PaymentTerms:        changes.PaymentTerms,
		SpecialInstructions: changes.SpecialInstructions,
	}
}

func toProposedChanges(changes servers.ProposedChanges) order.ProposedChanges {
	return order.ProposedChanges{
		Title:               changes.Title,
		DeliveryDate:        changes.DeliveryDate,
		DeliveryAddress:     changes.DeliveryAddress,
		PaymentTerms:        changes.PaymentTerms,
		SpecialInstructions: changes.SpecialInstructions,
	}
}
