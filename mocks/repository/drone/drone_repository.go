package drone

import (
	"context"

	"github.com/heolazz/aerotech/constant"
	"github.com/heolazz/aerotech/model"
	"github.com/stretchr/testify/mock"
)

// DroneRepository is a mock type for the repository/drone.DroneRepository interface
type DroneRepository struct {
	mock.Mock
}

func (_m *DroneRepository) List(ctx context.Context, category constant.DroneCategory, page, perPage int) ([]model.DroneListItem, int64, error) {
	ret := _m.Called(ctx, category, page, perPage)

	var r0 []model.DroneListItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.DroneListItem)
	}
	var r1 int64
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(int64)
	}
	return r0, r1, ret.Error(2)
}

func (_m *DroneRepository) GetByID(ctx context.Context, id string) (*model.DroneDetail, error) {
	ret := _m.Called(ctx, id)

	var r0 *model.DroneDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.DroneDetail)
	}
	return r0, ret.Error(1)
}

type mockConstructorTestingTNewDroneRepository interface {
	mock.TestingT
	Cleanup(func())
}

// NewDroneRepository creates a new mock instance and registers expectation
// assertion as a test cleanup.
func NewDroneRepository(t mockConstructorTestingTNewDroneRepository) *DroneRepository {
	m := &DroneRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
