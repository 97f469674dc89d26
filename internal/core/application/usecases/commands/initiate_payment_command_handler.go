package commands

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// InitiatePaymentCommandHandler builds the gateway redirect URL for an
// order awaiting online payment. The order id travels in the gateway's
// transaction reference field so the return callback can be correlated
// without parsing descriptive text.
type InitiatePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

// NewInitiatePaymentCommandHandler creates a handler for payment initiation.
func NewInitiatePaymentCommandHandler(uowFactory OrderUoWFactory, gateway ports.PaymentGateway) InitiatePaymentCommandHandler {
	return InitiatePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle loads the order and returns the signed redirect URL the buyer is
// sent to. Only online orders with payment still pending can start a
// payment.
func (h InitiatePaymentCommandHandler) Handle(ctx context.Context, cmd InitiatePaymentCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	if aggregate.PaymentMethod() != order.PaymentOnline || aggregate.PaymentStatus() != order.PaymentPending {
		return "", errs.NewInvalidStateError("initiate payment", aggregate.PaymentStatus().String())
	}

	redirectURL, err := h.gateway.BuildRedirectURL(ports.PaymentRequest{
		OrderID:   aggregate.ID(),
		Amount:    aggregate.Total(),
		OrderInfo: fmt.Sprintf("Payment for order %s", aggregate.OrderNumber()),
		ClientIP:  cmd.ClientIP(),
		CreatedAt: time.Now(),
	})
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return redirectURL, nil
}
