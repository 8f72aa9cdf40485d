package cmd

import (
	httpin "agritrade/internal/adapters/in/http"
	"agritrade/internal/adapters/out/postgres"
	"agritrade/internal/core/application/usecases/commands"
	"agritrade/internal/core/application/usecases/queries"
	"agritrade/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) disputeUoWFactory() commands.DisputeUoWFactory {
	return FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
}

// CreateHTTPHandlers wires every use case handler the HTTP server dispatches to.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	orders := c.orderUoWFactory()
	disputes := c.disputeUoWFactory()

	return httpin.Handlers{
		CreateOrder:      commands.NewCreateOrderCommandHandler(orders),
		UpdateOrder:      commands.NewUpdateOrderCommandHandler(orders),
		DeleteOrder:      commands.NewDeleteOrderCommandHandler(orders),
		PublishOrder:     commands.NewPublishOrderCommandHandler(orders),
		AcceptOrder:      commands.NewAcceptOrderCommandHandler(orders),
		RejectOrder:      commands.NewRejectOrderCommandHandler(orders),
		CounterOffer:     commands.NewCounterOfferCommandHandler(orders),
		ConfirmOrder:     commands.NewConfirmOrderCommandHandler(orders),
		StartFulfillment: commands.NewStartFulfillmentCommandHandler(orders),
		CompleteOrder:    commands.NewCompleteOrderCommandHandler(orders),
		AddOrderItem:     commands.NewAddOrderItemCommandHandler(orders),
		UpdateOrderItem:  commands.NewUpdateOrderItemCommandHandler(orders),
		RemoveOrderItem:  commands.NewRemoveOrderItemCommandHandler(orders),
		SendOrderMessage: commands.NewSendOrderMessageCommandHandler(orders),
		MarkMessageRead:  commands.NewMarkMessageReadCommandHandler(orders),
		CreateDispute:    commands.NewCreateDisputeCommandHandler(disputes),
		RespondToDispute: commands.NewRespondToDisputeCommandHandler(disputes),
		ResolveDispute:   commands.NewResolveDisputeCommandHandler(disputes),

		GetOrder:       c.CreateGetOrderQueryHandler(),
		ListOpenOrders: c.CreateListOpenOrdersQueryHandler(),
	}
}

func (c *CompositionRoot) CreateExpireCounterOffersCommandHandler() commands.ExpireCounterOffersCommandHandler {
	return commands.NewExpireCounterOffersCommandHandler(c.orderUoWFactory())
}

// CreateGetOrderQueryHandler builds the single order read handler. Reads run
// outside a transaction, on repositories bound to the base connection.
func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOrderQueryHandler(c.orderRepository(uow), c.disputeRepository(uow))
}

func (c *CompositionRoot) CreateListOpenOrdersQueryHandler() queries.ListOpenOrdersQueryHandler {
	return queries.NewListOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderRepository(uow ports.UnitOfWork) ports.OrderRepository {
	return uow.OrderRepository()
}

func (c *CompositionRoot) disputeRepository(uow ports.UnitOfWork) ports.DisputeRepository {
	return uow.DisputeRepository()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDisputeUoWFactory func() commands.DisputeUoW

func (f FuncDisputeUoWFactory) Create() commands.DisputeUoW {
	return f()
}
