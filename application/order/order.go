package order

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	configuratorApp "github.com/heolazz/aerotech/application/configurator"
	"github.com/heolazz/aerotech/cmd/config"
	"github.com/heolazz/aerotech/constant"
	"github.com/heolazz/aerotech/model"
	"github.com/heolazz/aerotech/pricing"
	cartRepo "github.com/heolazz/aerotech/repository/cart"
	orderRepo "github.com/heolazz/aerotech/repository/order"
	"github.com/heolazz/aerotech/thirdparty/rabbitmq"
	"github.com/heolazz/aerotech/utils/errors"
	"github.com/heolazz/aerotech/utils/logger"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderApp interface {
	Checkout(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
	SubmitCustomOrder(ctx context.Context, req *model.CustomOrderRequest) (*model.CheckoutResponse, error)
	TrackOrder(ctx context.Context, orderID string) (*model.TrackingResponse, error)
	ListOrders(ctx context.Context) ([]model.OrderEntity, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status constant.OrderStatus) error
	DeleteOrder(ctx context.Context, orderID string) error
}

type orderAppImpl struct {
	config       *config.Config
	orderRepo    orderRepo.OrderRepository
	cartRepo     cartRepo.CartRepository
	configurator configuratorApp.ConfiguratorApp
	publisher    *rabbitmq.Publisher
	taxRate      decimal.Decimal
}

func NewOrderApp(config *config.Config, orderRepo orderRepo.OrderRepository, cartRepo cartRepo.CartRepository, configurator configuratorApp.ConfiguratorApp, publisher *rabbitmq.Publisher) OrderApp {
	taxRate, err := pricing.ParseTaxRate(config.Order.TaxRate)
	if err != nil {
		logger.Warn("[NewOrderApp] invalid tax rate, using default", zap.String("rate", config.Order.TaxRate))
		taxRate = pricing.DefaultTaxRate
	}

	return &orderAppImpl{
		config:       config,
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		configurator: configurator,
		publisher:    publisher,
		taxRate:      taxRate,
	}
}

// Checkout submits the session cart as a CATALOG order. Validation runs
// before any store call; a failed insert leaves the cart untouched so the
// customer can retry without re-entering anything.
func (s *orderAppImpl) Checkout(ctx context.Context, sessionID string, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	req.Customer.Trim()
	if !req.Customer.Complete() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[Checkout] error cartRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cart.IsEmpty() {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}

	totals := pricing.ComputeTotals(cart.Subtotal(), s.taxRate)
	entity := &model.OrderEntity{
		OrderID:         generateOrderID(),
		CustomerName:    req.Customer.Name,
		CustomerPhone:   req.Customer.Phone,
		CustomerAddress: req.Customer.Address,
		ItemsSummary:    cart.Summary(),
		TotalPrice:      totals.Total,
		Status:          constant.OrderStatusPending,
		Type:            constant.OrderTypeCatalog,
	}

	if _, err := s.orderRepo.Insert(ctx, entity); err != nil {
		logger.Error("[Checkout] error orderRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}

	// the order is durable now; a failed cart delete only leaves a stale
	// cart behind, it must not fail the checkout
	if err := s.cartRepo.Delete(ctx, sessionID); err != nil {
		logger.Warn("[Checkout] error cartRepo.Delete", zap.String("error", err.Error()))
	}

	s.publishEvent(rabbitmq.EventOrderCreated, entity.OrderID, entity.Status)

	return &model.CheckoutResponse{
		OrderID:      entity.OrderID,
		TotalPrice:   totals.Total,
		TotalDisplay: pricing.FormatRupiah(totals.Total),
	}, nil
}

// SubmitCustomOrder submits a configurator build as a CUSTOM order. The
// quote is recomputed server-side; client-sent prices are never trusted.
func (s *orderAppImpl) SubmitCustomOrder(ctx context.Context, req *model.CustomOrderRequest) (*model.CheckoutResponse, error) {
	req.Customer.Trim()
	if !req.Customer.Complete() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	quote, err := s.configurator.Quote(&model.QuoteRequest{
		Archetype:    req.Archetype,
		ComponentIDs: req.ComponentIDs,
	})
	if err != nil {
		return nil, err
	}

	summaryParts := lo.Map(quote.Lines, func(l model.QuoteLine, _ int) string {
		return l.Label + " (x1)"
	})

	entity := &model.OrderEntity{
		OrderID:         generateOrderID(),
		CustomerName:    req.Customer.Name,
		CustomerPhone:   req.Customer.Phone,
		CustomerAddress: req.Customer.Address,
		ItemsSummary:    strings.Join(summaryParts, ", "),
		Notes:           strings.TrimSpace(req.Details),
		TotalPrice:      quote.Totals.Total,
		Status:          constant.OrderStatusPending,
		Type:            constant.OrderTypeCustom,
	}

	if _, err := s.orderRepo.Insert(ctx, entity); err != nil {
		logger.Error("[SubmitCustomOrder] error orderRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}

	s.publishEvent(rabbitmq.EventOrderCreated, entity.OrderID, entity.Status)

	return &model.CheckoutResponse{
		OrderID:      entity.OrderID,
		TotalPrice:   quote.Totals.Total,
		TotalDisplay: pricing.FormatRupiah(quote.Totals.Total),
	}, nil
}

func (s *orderAppImpl) TrackOrder(ctx context.Context, orderID string) (*model.TrackingResponse, error) {
	entity, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		logger.Error("[TrackOrder] error orderRepo.GetByOrderID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return &model.TrackingResponse{
		OrderID:      entity.OrderID,
		Status:       entity.Status,
		ItemsSummary: entity.ItemsSummary,
		TotalPrice:   entity.TotalPrice,
		TotalDisplay: pricing.FormatRupiah(entity.TotalPrice),
		CreatedAt:    entity.CreatedAt,
	}, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context) ([]model.OrderEntity, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		logger.Error("[ListOrders] error orderRepo.ListAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}
	return orders, nil
}

// UpdateOrderStatus sets a stored order's status. Membership in the status
// set is checked; the linear fulfillment flow is not, so an administrator
// may move an order straight from PENDING to DELIVERED.
func (s *orderAppImpl) UpdateOrderStatus(ctx context.Context, orderID string, status constant.OrderStatus) error {
	if !constant.IsValidOrderStatus(status) {
		return errors.SetCustomError(constant.ErrInvalidStatus)
	}

	entity, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		logger.Error("[UpdateOrderStatus] error orderRepo.GetByOrderID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		logger.Error("[UpdateOrderStatus] error orderRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}

	s.publishEvent(rabbitmq.EventOrderStatusChanged, orderID, status)
	return nil
}

func (s *orderAppImpl) DeleteOrder(ctx context.Context, orderID string) error {
	entity, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		logger.Error("[DeleteOrder] error orderRepo.GetByOrderID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		logger.Error("[DeleteOrder] error orderRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}

	s.publishEvent(rabbitmq.EventOrderDeleted, orderID, entity.Status)
	return nil
}

func (s *orderAppImpl) publishEvent(event, orderID string, status constant.OrderStatus) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.OrderEventMessage{
		Event:      event,
		OrderID:    orderID,
		Status:     status,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishOrderEvent(msg); err != nil {
		logger.Error("[publishEvent] error publisher.PublishOrderEvent", zap.String("error", err.Error()))
	}
}

// generateOrderID mints a human-readable identifier: fixed prefix plus ten
// uppercase hex chars drawn from a UUID, large enough that collisions under
// concurrent submissions are negligible.
func generateOrderID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return constant.OrderIDPrefix + strings.ToUpper(raw[:10])
}
