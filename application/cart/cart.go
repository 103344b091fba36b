package cart

import (
	"context"

	"github.com/heolazz/aerotech/cmd/config"
	"github.com/heolazz/aerotech/constant"
	"github.com/heolazz/aerotech/model"
	"github.com/heolazz/aerotech/pricing"
	cartRepo "github.com/heolazz/aerotech/repository/cart"
	droneRepo "github.com/heolazz/aerotech/repository/drone"
	"github.com/heolazz/aerotech/utils/errors"
	"github.com/heolazz/aerotech/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CartApp interface {
	GetCart(ctx context.Context, sessionID string) (*model.CartResponse, error)
	AddItem(ctx context.Context, sessionID string, req *model.AddItemRequest) (*model.CartResponse, error)
	UpdateQuantity(ctx context.Context, sessionID, droneID string, delta int) (*model.CartResponse, error)
	RemoveItem(ctx context.Context, sessionID, droneID string) (*model.CartResponse, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type cartAppImpl struct {
	config    *config.Config
	cartRepo  cartRepo.CartRepository
	droneRepo droneRepo.DroneRepository
	taxRate   decimal.Decimal
}

func NewCartApp(config *config.Config, cartRepo cartRepo.CartRepository, droneRepo droneRepo.DroneRepository) CartApp {
	taxRate, err := pricing.ParseTaxRate(config.Order.TaxRate)
	if err != nil {
		logger.Warn("[NewCartApp] invalid tax rate, using default", zap.String("rate", config.Order.TaxRate))
		taxRate = pricing.DefaultTaxRate
	}

	return &cartAppImpl{
		config:    config,
		cartRepo:  cartRepo,
		droneRepo: droneRepo,
		taxRate:   taxRate,
	}
}

func (s *cartAppImpl) GetCart(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[GetCart] error cartRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.toResponse(cart), nil
}

func (s *cartAppImpl) AddItem(ctx context.Context, sessionID string, req *model.AddItemRequest) (*model.CartResponse, error) {
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// the catalog is the source of truth for name and price
	drone, err := s.droneRepo.GetByID(ctx, req.DroneID)
	if err != nil {
		logger.Error("[AddItem] error droneRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if drone == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[AddItem] error cartRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	item := model.CartItem{
		ID:        drone.ID,
		Name:      drone.Name,
		UnitPrice: drone.Price,
		Image:     drone.Image,
	}
	if err := cart.AddItem(item, qty); err != nil {
		return nil, err
	}

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return s.toResponse(cart), nil
}

func (s *cartAppImpl) UpdateQuantity(ctx context.Context, sessionID, droneID string, delta int) (*model.CartResponse, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[UpdateQuantity] error cartRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := cart.UpdateQuantity(droneID, delta); err != nil {
		return nil, err
	}

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return s.toResponse(cart), nil
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, sessionID, droneID string) (*model.CartResponse, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("[RemoveItem] error cartRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	cart.RemoveItem(droneID)

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return s.toResponse(cart), nil
}

func (s *cartAppImpl) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.cartRepo.Delete(ctx, sessionID); err != nil {
		logger.Error("[ClearCart] error cartRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *cartAppImpl) save(ctx context.Context, sessionID string, cart *model.Cart) error {
	if err := s.cartRepo.Save(ctx, sessionID, cart, s.config.Order.CartTTL); err != nil {
		logger.Error("[save] error cartRepo.Save", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *cartAppImpl) toResponse(cart *model.Cart) *model.CartResponse {
	items := cart.Items
	if items == nil {
		items = []model.CartItem{}
	}
	return &model.CartResponse{
		Items:  items,
		Totals: pricing.ComputeTotals(cart.Subtotal(), s.taxRate),
	}
}
