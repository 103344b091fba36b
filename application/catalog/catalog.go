package catalog

import (
	"context"

	"github.com/heolazz/aerotech/constant"
	"github.com/heolazz/aerotech/model"
	droneRepo "github.com/heolazz/aerotech/repository/drone"
	"github.com/heolazz/aerotech/utils/errors"
	"github.com/heolazz/aerotech/utils/logger"
	"go.uber.org/zap"
)

type CatalogApp interface {
	ListDrones(ctx context.Context, category string, page, perPage int) (*model.DroneListResponse, error)
	GetDrone(ctx context.Context, id string) (*model.DroneDetail, error)
}

type catalogAppImpl struct {
	droneRepo droneRepo.DroneRepository
}

func NewCatalogApp(droneRepo droneRepo.DroneRepository) CatalogApp {
	return &catalogAppImpl{droneRepo: droneRepo}
}

func (s *catalogAppImpl) ListDrones(ctx context.Context, category string, page, perPage int) (*model.DroneListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	cat := constant.DroneCategory(category)
	if category != "" && !constant.IsValidDroneCategory(cat) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	items, total, err := s.droneRepo.List(ctx, cat, page, perPage)
	if err != nil {
		logger.Error("[ListDrones] error droneRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.DroneListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *catalogAppImpl) GetDrone(ctx context.Context, id string) (*model.DroneDetail, error) {
	detail, err := s.droneRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetDrone] error droneRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if detail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return detail, nil
}
