package catalog_test

import (
	"context"
	"errors"
	"testing"

	appcatalog "github.com/heolazz/aerotech/application/catalog"
	"github.com/heolazz/aerotech/constant"
	dronemocks "github.com/heolazz/aerotech/mocks/repository/drone"
	"github.com/heolazz/aerotech/model"
	cerr "github.com/heolazz/aerotech/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestCatalogApp_ListDrones(t *testing.T) {
	type fields struct {
		droneRepo *dronemocks.DroneRepository
	}
	tests := []struct {
		name      string
		fields    fields
		category  string
		page      int
		perPage   int
		mockCall  func(f fields)
		wantErr   bool
		errCode   constant.ErrorType
		wantPage  int
		wantTotal int64
	}{
		{
			name:    "success: no filter, zero paging falls back to defaults",
			fields:  fields{droneRepo: dronemocks.NewDroneRepository(t)},
			page:    0,
			perPage: 0,
			mockCall: func(f fields) {
				f.droneRepo.On("List", mock.Anything, constant.DroneCategory(""), 1, 10).
					Return([]model.DroneListItem{
						{ID: "d1", Name: "SkyMaster Pro", Category: constant.CategoryPhotography, Price: 15000000},
						{ID: "d2", Name: "AgriFly X", Category: constant.CategoryAgriculture, Price: 25000000},
					}, int64(2), nil).Once()
			},
			wantPage:  1,
			wantTotal: 2,
		},
		{
			name:     "success: category filter passed through",
			fields:   fields{droneRepo: dronemocks.NewDroneRepository(t)},
			category: "Racing",
			page:     2,
			perPage:  5,
			mockCall: func(f fields) {
				f.droneRepo.On("List", mock.Anything, constant.CategoryRacing, 2, 5).
					Return([]model.DroneListItem{}, int64(0), nil).Once()
			},
			wantPage:  2,
			wantTotal: 0,
		},
		{
			name:     "error: unknown category",
			fields:   fields{droneRepo: dronemocks.NewDroneRepository(t)},
			category: "Submarine",
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name:   "error: store failure",
			fields: fields{droneRepo: dronemocks.NewDroneRepository(t)},
			mockCall: func(f fields) {
				f.droneRepo.On("List", mock.Anything, constant.DroneCategory(""), 1, 10).
					Return(nil, int64(0), errors.New("conn refused")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcatalog.NewCatalogApp(tt.fields.droneRepo)

			got, err := app.ListDrones(context.Background(), tt.category, tt.page, tt.perPage)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListDrones() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.Type() != tt.errCode {
					t.Fatalf("error type = %v, want %v", ce.Type(), tt.errCode)
				}
				return
			}
			if got.Page != tt.wantPage {
				t.Fatalf("Page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.TotalCount != tt.wantTotal {
				t.Fatalf("TotalCount = %d, want %d", got.TotalCount, tt.wantTotal)
			}
		})
	}
}

func TestCatalogApp_GetDrone(t *testing.T) {
	droneRepo := dronemocks.NewDroneRepository(t)
	app := appcatalog.NewCatalogApp(droneRepo)

	droneRepo.On("GetByID", mock.Anything, "d1").Return(&model.DroneDetail{
		ID:    "d1",
		Name:  "SkyMaster Pro",
		Price: 15000000,
	}, nil).Once()

	got, err := app.GetDrone(context.Background(), "d1")
	if err != nil {
		t.Fatalf("GetDrone() error = %v", err)
	}
	if got.Name != "SkyMaster Pro" {
		t.Fatalf("Name = %q, want SkyMaster Pro", got.Name)
	}
}

func TestCatalogApp_GetDrone_NotFound(t *testing.T) {
	droneRepo := dronemocks.NewDroneRepository(t)
	app := appcatalog.NewCatalogApp(droneRepo)

	droneRepo.On("GetByID", mock.Anything, "d99").Return(nil, nil).Once()

	_, err := app.GetDrone(context.Background(), "d99")
	var ce cerr.CustomError
	if !errors.As(err, &ce) || ce.Type() != constant.ErrNotFound {
		t.Fatalf("GetDrone() error = %v, want not found", err)
	}
}
