package cart

import (
	"context"
	"time"

	"github.com/heolazz/aerotech/model"
	"github.com/stretchr/testify/mock"
)

// CartRepository is a mock type for the repository/cart.CartRepository interface
type CartRepository struct {
	mock.Mock
}

func (_m *CartRepository) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	ret := _m.Called(ctx, sessionID)

	var r0 *model.Cart
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Cart)
	}
	return r0, ret.Error(1)
}

func (_m *CartRepository) Save(ctx context.Context, sessionID string, cart *model.Cart, ttl time.Duration) error {
	ret := _m.Called(ctx, sessionID, cart, ttl)
	return ret.Error(0)
}

func (_m *CartRepository) Delete(ctx context.Context, sessionID string) error {
	ret := _m.Called(ctx, sessionID)
	return ret.Error(0)
}

type mockConstructorTestingTNewCartRepository interface {
	mock.TestingT
	Cleanup(func())
}

// NewCartRepository creates a new mock instance and registers expectation
// assertion as a test cleanup.
func NewCartRepository(t mockConstructorTestingTNewCartRepository) *CartRepository {
	m := &CartRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
