package user

import (
	"context"

	"github.com/heolazz/aerotech/model"
	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock type for the repository/user.UserRepository interface
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	ret := _m.Called(ctx, filter)

	var r0 *model.UserEntity
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.UserEntity)
	}
	return r0, ret.Error(1)
}

type mockConstructorTestingTNewUserRepository interface {
	mock.TestingT
	Cleanup(func())
}

// NewUserRepository creates a new mock instance and registers expectation
// assertion as a test cleanup.
func NewUserRepository(t mockConstructorTestingTNewUserRepository) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
