package order

import (
	"context"

	"github.com/heolazz/aerotech/constant"
	"github.com/heolazz/aerotech/model"
	"github.com/stretchr/testify/mock"
)

// OrderRepository is a mock type for the repository/order.OrderRepository interface
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) Insert(ctx context.Context, order *model.OrderEntity) (uint64, error) {
	ret := _m.Called(ctx, order)

	var r0 uint64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uint64)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) GetByOrderID(ctx context.Context, orderID string) (*model.OrderEntity, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *model.OrderEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.OrderEntity)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListAll(ctx context.Context) ([]model.OrderEntity, error) {
	ret := _m.Called(ctx)

	var r0 []model.OrderEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.OrderEntity)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateStatus(ctx context.Context, orderID string, status constant.OrderStatus) error {
	ret := _m.Called(ctx, orderID, status)
	return ret.Error(0)
}

func (_m *OrderRepository) Delete(ctx context.Context, orderID string) error {
	ret := _m.Called(ctx, orderID)
	return ret.Error(0)
}

type mockConstructorTestingTNewOrderRepository interface {
	mock.TestingT
	Cleanup(func())
}

// NewOrderRepository creates a new mock instance and registers expectation
// assertion as a test cleanup.
func NewOrderRepository(t mockConstructorTestingTNewOrderRepository) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
