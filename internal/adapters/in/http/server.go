// Package http exposes the order-fulfillment operations over an echo server.
// Every endpoint responds with the {success, message, data} envelope; list
// endpoints wrap their data as {items, total, page, size}.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CallbackGuard deduplicates gateway callback deliveries before they reach
// the application layer. The store-level claim remains authoritative.
type CallbackGuard interface {
	TryAcquire(ctx context.Context, orderID, transactionID string) (bool, error)
	Release(ctx context.Context, orderID, transactionID string) error
}

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CheckoutOnline      commands.CheckoutOnlineCommandHandler
	CheckoutCOD         commands.CheckoutCODCommandHandler
	InitiatePayment     commands.InitiatePaymentCommandHandler
	ConfirmSuccess      commands.ConfirmPaymentSuccessCommandHandler
	ConfirmFailure      commands.ConfirmPaymentFailureCommandHandler
	AcceptOrder         commands.AcceptOrderCommandHandler
	DeliverOrder        commands.DeliverOrderCommandHandler
	ConfirmCODDelivered commands.ConfirmCODDeliveredCommandHandler
	SetOrderStatus      commands.SetOrderStatusCommandHandler

	GetOrder         queries.GetOrderQueryHandler
	GetOrderByNumber queries.GetOrderByNumberQueryHandler
	ListOrders       queries.ListOrdersQueryHandler
	GetOrderCounts   queries.GetOrderCountsQueryHandler
	GetShipperStats  queries.GetShipperStatsQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers      Handlers
	gateway       ports.PaymentGateway
	callbackGuard CallbackGuard
	logger        *slog.Logger
}

// NewServer creates an HTTP server over the given handlers. The callback
// guard may be nil, in which case every callback delivery is processed.
func NewServer(
	handlers Handlers,
	gateway ports.PaymentGateway,
	callbackGuard CallbackGuard,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers:      handlers,
		gateway:       gateway,
		callbackGuard: callbackGuard,
		logger:        logger.With("component", "http"),
	}
}

// NewRouter builds the echo engine with middleware and all routes registered.
func NewRouter(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover(), MetricsMiddleware())

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]bool{"ok": true})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.POST("/orders/online", s.CheckoutOnline)
	v1.POST("/orders/cod", s.CheckoutCOD)
	v1.GET("/payment/vnpay/return", s.PaymentReturn)
	v1.GET("/orders", s.ListOrders)
	v1.GET("/orders/counts", s.GetOrderCounts)
	v1.GET("/orders/number/:number", s.GetOrderByNumber)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PUT("/admin/orders/:id/status", s.SetOrderStatus)
	v1.POST("/shipper/orders/:id/accept", s.AcceptOrder)
	v1.POST("/shipper/orders/:id/deliver", s.DeliverOrder)
	v1.POST("/shipper/orders/:id/cod-delivered", s.ConfirmCODDelivered)
	v1.GET("/shipper/:shipperId/stats", s.GetShipperStats)

	return e
}

type recipientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type checkoutRequest struct {
	UserID    string           `json:"userId"`
	SessionID string           `json:"sessionId"`
	Recipient recipientRequest `json:"recipient"`
}

type shipperRequest struct {
	ShipperID string `json:"shipperId"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// CheckoutOnline handles POST /api/v1/orders/online. The order is created
// pending payment and the response carries the gateway redirect URL the
// buyer must be sent to.
func (s *Server) CheckoutOnline(ctx echo.Context) error {
	var req checkoutRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{Success: false, Message: "invalid request body"})
	}

	cmd, err := commands.NewCheckoutOnlineCommand(
		kernel.NewUUID(),
		req.UserID, req.SessionID,
		req.Recipient.Name, req.Recipient.Phone, req.Recipient.Address, req.Recipient.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.handlers.CheckoutOnline.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	payCmd, err := commands.NewInitiatePaymentCommand(placed.ID(), ctx.RealIP())
	if err != nil {
		return respondError(ctx, err)
	}

	redirectURL, err := s.handlers.InitiatePayment.Handle(ctx.Request().Context(), payCmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.logger.Info("online checkout placed",
		"orderId", placed.ID().String(), "orderNumber", placed.OrderNumber())

	return respondOK(ctx, http.StatusCreated, "order created, redirect to payment", map[string]any{
		"order":      orderData(placed),
		"paymentUrl": redirectURL,
	})
}

// CheckoutCOD handles POST /api/v1/orders/cod. Stock is reserved and the
// cart cleared in the same transaction; the order comes back committed.
func (s *Server) CheckoutCOD(ctx echo.Context) error {
	var req checkoutRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{Success: false, Message: "invalid request body"})
	}

	cmd, err := commands.NewCheckoutCODCommand(
		kernel.NewUUID(),
		req.UserID, req.SessionID,
		req.Recipient.Name, req.Recipient.Phone, req.Recipient.Address, req.Recipient.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.handlers.CheckoutCOD.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	s.logger.Info("cod checkout placed",
		"orderId", placed.ID().String(), "orderNumber", placed.OrderNumber())

	return respondOK(ctx, http.StatusCreated, "order created", orderData(placed))
}

// PaymentReturn handles GET /api/v1/payment/vnpay/return, the gateway's
// signed callback. Deliveries are deduplicated through the callback guard;
// signature failures never touch order state.
func (s *Server) PaymentReturn(ctx echo.Context) error {
	callback, err := s.gateway.ParseCallback(ctx.QueryParams())
	if err != nil {
		s.logger.Warn("payment callback rejected", "error", err)
		return respondError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	orderID := callback.OrderID.String()

	if s.callbackGuard != nil {
		acquired, lockErr := s.callbackGuard.TryAcquire(reqCtx, orderID, callback.TransactionID)
		if lockErr != nil {
			s.logger.Warn("callback guard unavailable, proceeding on store claim", "error", lockErr)
		} else if !acquired {
			s.logger.Info("duplicate payment callback ignored",
				"orderId", orderID, "transactionId", callback.TransactionID)
			return respondOK(ctx, http.StatusOK, "callback already processed", nil)
		}
	}

	settled, err := s.settleCallback(reqCtx, callback)
	if err != nil {
		if s.callbackGuard != nil {
			if releaseErr := s.callbackGuard.Release(reqCtx, orderID, callback.TransactionID); releaseErr != nil {
				s.logger.Warn("callback guard release failed", "error", releaseErr)
			}
		}
		return respondError(ctx, err)
	}

	message := "payment failed, order cancelled"
	if callback.Succeeded {
		message = "payment confirmed"
	}
	s.logger.Info("payment callback processed",
		"orderId", orderID, "transactionId", callback.TransactionID, "succeeded", callback.Succeeded)

	return respondOK(ctx, http.StatusOK, message, orderData(settled))
}

func (s *Server) settleCallback(ctx context.Context, callback ports.PaymentCallback) (*order.Order, error) {
	if callback.Succeeded {
		cmd, err := commands.NewConfirmPaymentSuccessCommand(
			callback.OrderID, callback.TransactionID, callback.Amount, callback.PaidAt)
		if err != nil {
			return nil, err
		}
		return s.handlers.ConfirmSuccess.Handle(ctx, cmd)
	}

	cmd, err := commands.NewConfirmPaymentFailureCommand(callback.OrderID)
	if err != nil {
		return nil, err
	}
	return s.handlers.ConfirmFailure.Handle(ctx, cmd)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, http.StatusOK, "", response)
}

// GetOrderByNumber handles GET /api/v1/orders/number/:number.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	query, err := queries.NewGetOrderByNumberQuery(ctx.Param("number"))
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.GetOrderByNumber.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, http.StatusOK, "", response)
}

// ListOrders handles GET /api/v1/orders with filter and pagination params.
func (s *Server) ListOrders(ctx echo.Context) error {
	filter, err := listFilterFromParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	size, _ := strconv.Atoi(ctx.QueryParam("size"))

	query, err := queries.NewListOrdersQuery(filter, page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, http.StatusOK, "", response)
}

func listFilterFromParams(ctx echo.Context) (queries.ListOrdersFilter, error) {
	filter := queries.ListOrdersFilter{
		Status:        ctx.QueryParam("status"),
		PaymentStatus: ctx.QueryParam("paymentStatus"),
		OwnerIdentity: ctx.QueryParam("owner"),
		UsernameLike:  ctx.QueryParam("username"),
	}

	if raw := ctx.QueryParam("shipperId"); raw != "" {
		shipperID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return queries.ListOrdersFilter{}, err
		}
		filter.ShipperID = &shipperID
	}
	if raw := ctx.QueryParam("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return queries.ListOrdersFilter{}, err
		}
		filter.CreatedFrom = &from
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return queries.ListOrdersFilter{}, err
		}
		filter.CreatedTo = &to
	}

	return filter, nil
}

// GetOrderCounts handles GET /api/v1/orders/counts?owner=...
func (s *Server) GetOrderCounts(ctx echo.Context) error {
	query, err := queries.NewGetOrderCountsQuery(ctx.QueryParam("owner"))
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.GetOrderCounts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, http.StatusOK, "", response)
}

// GetShipperStats handles GET /api/v1/shipper/:shipperId/stats.
func (s *Server) GetShipperStats(ctx echo.Context) error {
	shipperID, err := kernel.UUIDFromString(ctx.Param("shipperId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetShipperStatsQuery(shipperID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.GetShipperStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, http.StatusOK, "", response)
}

// AcceptOrder handles POST /api/v1/shipper/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, shipperID, err := orderAndShipperIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, shipperID)
	if err != nil {
		return respondError(ctx, err)
	}

	accepted, err := s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, http.StatusOK, "order accepted", orderData(accepted))
}

// DeliverOrder handles POST /api/v1/shipper/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, shipperID, err := orderAndShipperIDs(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, shipperID)
	if err != nil {
		return respondError(ctx, err)
	}

	delivered, err := s.handlers.DeliverOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, http.StatusOK, "order delivered", orderData(delivered))
}

// ConfirmCODDelivered handles POST /api/v1/shipper/orders/:id/cod-delivered.
func (s *Server) ConfirmCODDelivered(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmCODDeliveredCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	delivered, err := s.handlers.ConfirmCODDelivered.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, http.StatusOK, "cod delivery confirmed", orderData(delivered))
}

// SetOrderStatus handles PUT /api/v1/admin/orders/:id/status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req statusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{Success: false, Message: "invalid request body"})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.SetOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondOK(ctx, http.StatusOK, "order status updated", orderData(updated))
}

func orderAndShipperIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	var req shipperRequest
	if err := ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	shipperID, err := kernel.UUIDFromString(req.ShipperID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, shipperID, nil
}

// orderData maps a write-side aggregate to the read model shape so command
// responses look the same as query responses.
func orderData(o *order.Order) queries.OrderResponse {
	items := make([]queries.OrderItemResponse, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = queries.OrderItemResponse{
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal(),
		}
	}

	response := queries.OrderResponse{
		ID:               o.ID().Bytes(),
		OrderNumber:      o.OrderNumber(),
		UserID:           o.UserID(),
		SessionID:        o.SessionID(),
		RecipientName:    o.Recipient().Name(),
		RecipientPhone:   o.Recipient().Phone(),
		RecipientAddress: o.Recipient().Address(),
		RecipientNotes:   o.Recipient().Notes(),
		Items:            items,
		Total:            o.Total(),
		Status:           o.Status().String(),
		PaymentMethod:    o.PaymentMethod().String(),
		PaymentStatus:    o.PaymentStatus().String(),
		TransactionID:    o.TransactionID(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
		PaidAt:           o.PaidAt(),
		DeliveredAt:      o.DeliveredAt(),
	}
	if shipper := o.Shipper(); shipper != nil {
		id := shipper.Bytes()
		response.ShipperID = &id
	}
	return response
}
