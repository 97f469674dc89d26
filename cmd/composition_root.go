package cmd

import (
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires application handlers over the shared database
// connection and the payment gateway adapter.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.PaymentGateway
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, gateway ports.PaymentGateway) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCheckoutOnlineCommandHandler() commands.CheckoutOnlineCommandHandler {
	return commands.NewCheckoutOnlineCommandHandler(c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCODCommandHandler() commands.CheckoutCODCommandHandler {
	return commands.NewCheckoutCODCommandHandler(c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateInitiatePaymentCommandHandler() commands.InitiatePaymentCommandHandler {
	return commands.NewInitiatePaymentCommandHandler(c.orderUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateConfirmPaymentSuccessCommandHandler() commands.ConfirmPaymentSuccessCommandHandler {
	return commands.NewConfirmPaymentSuccessCommandHandler(c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPaymentFailureCommandHandler() commands.ConfirmPaymentFailureCommandHandler {
	return commands.NewConfirmPaymentFailureCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmCODDeliveredCommandHandler() commands.ConfirmCODDeliveredCommandHandler {
	return commands.NewConfirmCODDeliveredCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateExpireStalePaymentsCommandHandler() commands.ExpireStalePaymentsCommandHandler {
	return commands.NewExpireStalePaymentsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderCountsQueryHandler() queries.GetOrderCountsQueryHandler {
	return queries.NewGetOrderCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipperStatsQueryHandler() queries.GetShipperStatsQueryHandler {
	return queries.NewGetShipperStatsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
