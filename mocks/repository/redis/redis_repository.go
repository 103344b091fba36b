package redis

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// Repository is a mock type for the repository/redis.Repository interface
type Repository struct {
	mock.Mock
}

func (_m *Repository) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	ret := _m.Called(ctx, sessionID, userID, ttl)
	return ret.Error(0)
}

func (_m *Repository) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	ret := _m.Called(ctx, sessionID)

	var r0 uint64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uint64)
	}
	return r0, ret.Error(1)
}

func (_m *Repository) DeleteSession(ctx context.Context, sessionID string) error {
	ret := _m.Called(ctx, sessionID)
	return ret.Error(0)
}

type mockConstructorTestingTNewRepository interface {
	mock.TestingT
	Cleanup(func())
}

// NewRepository creates a new mock instance and registers expectation
// assertion as a test cleanup.
func NewRepository(t mockConstructorTestingTNewRepository) *Repository {
	m := &Repository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
